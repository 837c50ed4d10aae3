package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lucaskane/eventboard/internal/model"
)

// RegistrationRepository handles persistence for registrations.
type RegistrationRepository struct {
	db *pgxpool.Pool
}

// NewRegistrationRepository constructs a RegistrationRepository.
func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// Create inserts a confirmed, paid registration. The UNIQUE(event_id, user_id)
// constraint is the enforcement point for the one-registration-per-user
// invariant: when two concurrent inserts race, the loser's unique violation
// comes back as ErrDuplicateRegistration.
func (r *RegistrationRepository) Create(ctx context.Context, eventID, userID, ticketType string) (*model.Registration, error) {
	reg := &model.Registration{
		ID:               uuid.New().String(),
		EventID:          eventID,
		UserID:           userID,
		TicketType:       ticketType,
		Status:           model.StatusConfirmed,
		PaymentStatus:    model.PaymentPaid,
		RegistrationDate: time.Now().UTC(),
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO registrations (id, event_id, user_id, ticket_type, status, payment_status, registration_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		reg.ID, reg.EventID, reg.UserID, reg.TicketType,
		reg.Status, reg.PaymentStatus, reg.RegistrationDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateRegistration
		}
		return nil, fmt.Errorf("insert registration: %w", err)
	}
	return reg, nil
}

// Exists reports whether a registration already exists for the pair. Used as
// a fast path for a friendlier error before the insert; the constraint still
// backstops races.
func (r *RegistrationRepository) Exists(ctx context.Context, eventID, userID string) (bool, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM registrations WHERE event_id = $1 AND user_id = $2`,
		eventID, userID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check duplicate registration: %w", err)
	}
	return count > 0, nil
}

// ListByUser returns the user's registrations joined with event summaries,
// newest registration first.
func (r *RegistrationRepository) ListByUser(ctx context.Context, userID string) ([]model.UserRegistration, error) {
	rows, err := r.db.Query(ctx,
		`SELECT r.id, r.event_id, r.user_id, r.ticket_type, r.status,
		        r.payment_status, r.registration_date,
		        e.title, e.date, e.location
		 FROM registrations r
		 JOIN events e ON r.event_id = e.id
		 WHERE r.user_id = $1
		 ORDER BY r.registration_date DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	var regs []model.UserRegistration
	for rows.Next() {
		var reg model.UserRegistration
		if err := rows.Scan(&reg.ID, &reg.EventID, &reg.UserID, &reg.TicketType,
			&reg.Status, &reg.PaymentStatus, &reg.RegistrationDate,
			&reg.EventTitle, &reg.EventDate, &reg.EventLocation); err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

// ListAttendees returns all registrations for an event joined with each
// attendee's identity. Authorization happens in the service layer before this
// query runs.
func (r *RegistrationRepository) ListAttendees(ctx context.Context, eventID string) ([]model.Attendee, error) {
	rows, err := r.db.Query(ctx,
		`SELECT r.id, r.event_id, r.user_id, r.ticket_type, r.status,
		        r.payment_status, r.registration_date,
		        u.username, u.email
		 FROM registrations r
		 JOIN users u ON r.user_id = u.id
		 WHERE r.event_id = $1
		 ORDER BY r.registration_date ASC`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	defer rows.Close()

	var attendees []model.Attendee
	for rows.Next() {
		var a model.Attendee
		if err := rows.Scan(&a.ID, &a.EventID, &a.UserID, &a.TicketType,
			&a.Status, &a.PaymentStatus, &a.RegistrationDate,
			&a.Username, &a.Email); err != nil {
			return nil, fmt.Errorf("scan attendee: %w", err)
		}
		attendees = append(attendees, a)
	}
	return attendees, rows.Err()
}
