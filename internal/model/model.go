// Package model defines the domain types and request/response payloads for
// the event listing and registration service.
package model

import "time"

// Registration lifecycle values. Payment is mocked, so every registration is
// created confirmed and paid; no cancellation or refund path exists.
const (
	StatusConfirmed = "confirmed"
	PaymentPaid     = "paid"

	DefaultTicketType = "General"
)

// User is a principal from the identity store. The password hash never leaves
// the repository and service layers.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Event is a published event. OrganizerName is populated only by the
// single-event lookup, which joins the identity store for display.
type Event struct {
	ID            string    `json:"id"`
	OrganizerID   string    `json:"organizer_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Date          time.Time `json:"date"`
	Location      string    `json:"location"`
	Price         float64   `json:"price"`
	CreatedAt     time.Time `json:"created_at"`
	OrganizerName string    `json:"organizer,omitempty"`
}

// Registration records one user's confirmed spot at one event. The pair
// (EventID, UserID) is unique, enforced by the database constraint.
type Registration struct {
	ID               string    `json:"id"`
	EventID          string    `json:"event_id"`
	UserID           string    `json:"user_id"`
	TicketType       string    `json:"ticket_type"`
	Status           string    `json:"status"`
	PaymentStatus    string    `json:"payment_status"`
	RegistrationDate time.Time `json:"registration_date"`
}

// UserRegistration is a registration joined with a summary of its event, as
// returned by the my-registrations listing.
type UserRegistration struct {
	Registration
	EventTitle    string    `json:"title"`
	EventDate     time.Time `json:"date"`
	EventLocation string    `json:"location"`
}

// Attendee is a registration joined with the registrant's identity, visible
// only to the event's organizer.
type Attendee struct {
	Registration
	Username string `json:"username"`
	Email    string `json:"email"`
}

// SignupRequest is the payload for creating an account.
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest is the payload for exchanging credentials for a token.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateEventRequest is the payload for publishing a new event.
type CreateEventRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" validate:"required"`
	Location    string    `json:"location" validate:"required"`
	Price       float64   `json:"price" validate:"gte=0"`
}

// RegisterRequest is the payload for registering for an event.
type RegisterRequest struct {
	EventID    string `json:"eventId" validate:"required"`
	TicketType string `json:"ticketType"`
}

// EventFilter narrows the event listing. Both fields are case-insensitive
// substring matches and conjunctive when both are set.
type EventFilter struct {
	Search   string
	Location string
}

// AuthResponse carries a freshly issued token and its owner.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ErrorResponse is the standard JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
