package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/lucaskane/eventboard/internal/model"
	"github.com/lucaskane/eventboard/internal/repository"
)

// EventService orchestrates event catalog operations.
type EventService struct {
	events   EventStore
	validate *validator.Validate
}

// NewEventService constructs an EventService with its dependencies.
func NewEventService(events EventStore) *EventService {
	return &EventService{events: events, validate: newValidator()}
}

// CreateEvent validates the request and persists a new event owned by the
// caller. Price defaults to zero when the payload omits it.
func (s *EventService) CreateEvent(ctx context.Context, organizerID string, req model.CreateEventRequest) (*model.Event, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Location = strings.TrimSpace(req.Location)
	if err := s.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	event, err := s.events.Create(ctx, organizerID, req)
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

// ListEvents returns events matching the filter, soonest first.
func (s *EventService) ListEvents(ctx context.Context, filter model.EventFilter) ([]model.Event, error) {
	return s.events.List(ctx, filter)
}

// GetEvent returns a single event with its organizer's name.
func (s *EventService) GetEvent(ctx context.Context, id string) (*model.Event, error) {
	if !validID(id) {
		return nil, repository.ErrNotFound
	}
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

// DeleteEvent removes an event the caller organizes. A missing event and an
// event owned by someone else both come back as not-found, deliberately, so
// the endpoint never confirms existence to a non-owner.
func (s *EventService) DeleteEvent(ctx context.Context, principalID, id string) error {
	if !validID(id) {
		return repository.ErrNotFound
	}
	if err := s.events.Delete(ctx, id, principalID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
