// Package store persists the user collection for the reference server.
// Two database/sql drivers are supported: PostgreSQL (pgx) and SQLite.
package store

import (
	"context"

	"github.com/mkhayatov/go-user-manager/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository provides access to the "users" table.
type UserRepository interface {
	GetAllUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// ErrorClassificator translates driver-level errors into
// driver-independent classifications the repositories can act on.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify].
type ErrorClassification int

const (
	// Unclassified is the default classification for unrecognised errors.
	Unclassified ErrorClassification = iota

	// UniqueViolation indicates an INSERT collided with an existing record.
	UniqueViolation

	// NoDataFound indicates the statement matched no records.
	NoDataFound
)
