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

// RegistrationService orchestrates registration ledger operations.
type RegistrationService struct {
	events        EventStore
	registrations RegistrationStore
	validate      *validator.Validate
}

// NewRegistrationService constructs a RegistrationService with its
// dependencies.
func NewRegistrationService(events EventStore, registrations RegistrationStore) *RegistrationService {
	return &RegistrationService{
		events:        events,
		registrations: registrations,
		validate:      newValidator(),
	}
}

// Register creates a confirmed registration for the caller. The existence and
// duplicate checks here are a fast path for friendlier errors; the database
// unique constraint on (event_id, user_id) is what actually guarantees at
// most one registration per user per event under concurrent requests.
func (s *RegistrationService) Register(ctx context.Context, userID string, req model.RegisterRequest) (*model.Registration, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if !validID(req.EventID) {
		return nil, repository.ErrNotFound
	}

	if _, err := s.events.GetByID(ctx, req.EventID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("check event: %w", err)
	}

	exists, err := s.registrations.Exists(ctx, req.EventID, userID)
	if err != nil {
		return nil, fmt.Errorf("check duplicate: %w", err)
	}
	if exists {
		return nil, repository.ErrDuplicateRegistration
	}

	ticketType := strings.TrimSpace(req.TicketType)
	if ticketType == "" {
		ticketType = model.DefaultTicketType
	}

	reg, err := s.registrations.Create(ctx, req.EventID, userID, ticketType)
	if err != nil {
		// A concurrent request may have won the race since the Exists check.
		if errors.Is(err, repository.ErrDuplicateRegistration) {
			return nil, repository.ErrDuplicateRegistration
		}
		return nil, fmt.Errorf("create registration: %w", err)
	}
	return reg, nil
}

// ListMyRegistrations returns the caller's registrations with event
// summaries, newest first.
func (s *RegistrationService) ListMyRegistrations(ctx context.Context, userID string) ([]model.UserRegistration, error) {
	return s.registrations.ListByUser(ctx, userID)
}

// ListAttendees returns the roster for an event the caller organizes.
// Ownership is checked before the attendee query runs; a non-organizer gets
// ErrForbidden, which does reveal that the event exists. That disclosure is
// accepted here: the roster endpoint is organizer-facing and event ids are
// already public through the catalog.
func (s *RegistrationService) ListAttendees(ctx context.Context, principalID, eventID string) ([]model.Attendee, error) {
	if !validID(eventID) {
		return nil, repository.ErrNotFound
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("check event: %w", err)
	}
	if event.OrganizerID != principalID {
		return nil, ErrForbidden
	}

	return s.registrations.ListAttendees(ctx, eventID)
}
