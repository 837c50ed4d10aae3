// Package service implements business rules, validation, and authorization
// between HTTP handlers and the repository layer.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/lucaskane/eventboard/internal/model"
)

// ErrValidation marks malformed or missing input the client must correct.
var ErrValidation = errors.New("validation failed")

// ErrForbidden marks an authenticated caller acting on a resource they do not
// own. Only attendee listing uses it; owner-scoped deletes fold ownership into
// not-found instead, so non-owners cannot probe for existence.
var ErrForbidden = errors.New("forbidden")

// EventStore is the persistence surface the event service needs.
type EventStore interface {
	Create(ctx context.Context, organizerID string, req model.CreateEventRequest) (*model.Event, error)
	List(ctx context.Context, filter model.EventFilter) ([]model.Event, error)
	GetByID(ctx context.Context, id string) (*model.Event, error)
	Delete(ctx context.Context, id, organizerID string) error
}

// RegistrationStore is the persistence surface the registration service needs.
type RegistrationStore interface {
	Create(ctx context.Context, eventID, userID, ticketType string) (*model.Registration, error)
	Exists(ctx context.Context, eventID, userID string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]model.UserRegistration, error)
	ListAttendees(ctx context.Context, eventID string) ([]model.Attendee, error)
}

// UserStore is the persistence surface the auth service needs.
type UserStore interface {
	Create(ctx context.Context, username, email, passwordHash string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// validationError converts validator output into a single ErrValidation with
// the offending fields named.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		return fmt.Errorf("%w: invalid or missing fields %v", ErrValidation, fields)
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}

// validID reports whether id parses as a UUID. Identifiers that cannot parse
// cannot match any row, so callers treat them as not-found rather than
// letting the uuid column comparison fail.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
