// Package adapter provides the transport layer for talking to the remote
// user collection.
//
// The primary abstraction is [UserCollection], which decouples the
// reconciliation layer from the underlying protocol. The package ships a
// single HTTP/REST implementation ([NewHTTPUserCollection]) speaking plain
// JSON against a configured base resource URL: there is no authentication,
// no content negotiation and no retry logic — every method issues exactly
// one network attempt.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrConflict] for 409).
package adapter

import (
	"context"

	"github.com/mkhayatov/go-user-manager/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_collection_mock.go -package=mock

// UserCollection defines transport-agnostic access to the remote user
// collection. Implementations are responsible for serialisation and for
// mapping transport-level errors to the sentinel values defined in this
// package.
type UserCollection interface {
	// List fetches every record of the collection in the order the server
	// returns them. Returns an error if the request fails or the server
	// responds with a non-2xx status.
	List(ctx context.Context) ([]models.User, error)

	// Create stores a new record. The identifier is supplied by the caller;
	// the server imposes no constraint on it. Returns the server's
	// representation of the stored record.
	Create(ctx context.Context, user models.User) (models.User, error)

	// Update replaces the record with the given identifier by the full body
	// of user. Returns the server's representation of the stored record.
	Update(ctx context.Context, id int64, user models.User) (models.User, error)

	// Delete removes the record with the given identifier.
	Delete(ctx context.Context, id int64) error
}
