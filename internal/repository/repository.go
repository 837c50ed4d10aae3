// Package repository implements all database queries for the event listing
// and registration service. It uses pgx directly (no ORM) for transparency
// and performance.
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when a requested resource does not exist, and by
// owner-scoped deletes when the row exists but belongs to someone else.
var ErrNotFound = errors.New("not found")

// ErrDuplicateRegistration is returned when a (event, user) pair already has
// a registration.
var ErrDuplicateRegistration = errors.New("already registered for this event")

// ErrDuplicateUser is returned when a username or email is already taken.
var ErrDuplicateUser = errors.New("username or email already in use")

// uniqueViolation is the Postgres SQLSTATE for a unique constraint breach.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
