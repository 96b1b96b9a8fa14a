package service

import "github.com/mkhayatov/go-user-manager/models"

// NextID returns the identifier for the next user appended to the list.
// Identifiers follow the last element of the list: an empty list starts
// at 1, otherwise the result is the last element's ID plus one.
func NextID(users []models.User) int64 {
	if len(users) == 0 {
		return 1
	}

	return users[len(users)-1].ID + 1
}
