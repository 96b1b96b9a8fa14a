// Package service contains the client-side user list controller and the
// reference server's business logic.
package service

import (
	"context"

	"github.com/mkhayatov/go-user-manager/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientUserService manages the local user list and keeps it converged
// with the remote collection on a best-effort basis. Every mutating
// operation attempts the remote call once; on failure the list is still
// updated locally so the user never loses their changes.
type ClientUserService interface {
	// Load fetches the remote collection and replaces the local list with
	// the result. When the collection is empty or unreachable, the list is
	// populated with the built-in records instead.
	Load(ctx context.Context) []models.User

	// Create validates nothing itself: it assigns the next identifier,
	// attempts the remote create and appends the record to the local list
	// regardless of the outcome.
	Create(ctx context.Context, draft models.UserDraft) []models.User

	// Update replaces the record selected with BeginEdit. Without an edit
	// in progress it is a no-op. The edit session ends either way the
	// remote call goes.
	Update(ctx context.Context, draft models.UserDraft) []models.User

	// Delete removes the record from the local list unconditionally and
	// attempts the remote delete once.
	Delete(ctx context.Context, id int64) []models.User

	// BeginEdit starts an edit session for the given record and returns a
	// draft prefilled with its current values. The second result is false
	// when no record with the given identifier exists.
	BeginEdit(id int64) (models.UserDraft, bool)

	// CancelEdit discards the current edit session, if any.
	CancelEdit()

	// Users returns a snapshot of the local list.
	Users() []models.User

	// EditingID reports the record currently being edited.
	EditingID() (int64, bool)
}
