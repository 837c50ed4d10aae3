package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lucaskane/eventboard/internal/model"
)

// EventRepository handles persistence for events.
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository constructs an EventRepository.
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

// Create inserts a new event owned by organizerID and returns it with a
// generated UUID.
func (r *EventRepository) Create(ctx context.Context, organizerID string, req model.CreateEventRequest) (*model.Event, error) {
	event := &model.Event{
		ID:          uuid.New().String(),
		OrganizerID: organizerID,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		Price:       req.Price,
		CreatedAt:   time.Now().UTC(),
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO events (id, organizer_id, title, description, date, location, price, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		event.ID, event.OrganizerID, event.Title, event.Description,
		event.Date, event.Location, event.Price, event.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}
	return event, nil
}

// List returns events matching the filter, ordered by date ascending.
// Search matches title or description; location matches location; both are
// case-insensitive substring matches and conjunctive when both are present.
func (r *EventRepository) List(ctx context.Context, filter model.EventFilter) ([]model.Event, error) {
	query := `SELECT id, organizer_id, title, description, date, location, price, created_at
	          FROM events WHERE 1=1`
	var args []any

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND (title ILIKE $%d OR description ILIKE $%d)", len(args), len(args))
	}
	if filter.Location != "" {
		args = append(args, "%"+filter.Location+"%")
		query += fmt.Sprintf(" AND location ILIKE $%d", len(args))
	}
	query += " ORDER BY date ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.OrganizerID, &e.Title, &e.Description,
			&e.Date, &e.Location, &e.Price, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// GetByID returns a single event with its organizer's username joined in,
// or ErrNotFound.
func (r *EventRepository) GetByID(ctx context.Context, id string) (*model.Event, error) {
	var e model.Event
	err := r.db.QueryRow(ctx,
		`SELECT e.id, e.organizer_id, e.title, e.description, e.date, e.location,
		        e.price, e.created_at, u.username
		 FROM events e
		 JOIN users u ON e.organizer_id = u.id
		 WHERE e.id = $1`,
		id,
	).Scan(&e.ID, &e.OrganizerID, &e.Title, &e.Description, &e.Date,
		&e.Location, &e.Price, &e.CreatedAt, &e.OrganizerName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return &e, nil
}

// Delete removes the event only when organizerID owns it. The ownership
// predicate lives in the statement itself, so a missing event and someone
// else's event are indistinguishable: both affect zero rows and return
// ErrNotFound.
func (r *EventRepository) Delete(ctx context.Context, id, organizerID string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM events WHERE id = $1 AND organizer_id = $2`,
		id, organizerID,
	)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
