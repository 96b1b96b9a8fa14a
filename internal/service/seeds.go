package service

import "github.com/mkhayatov/go-user-manager/models"

// SeedUsers returns the built-in records shown when the remote collection
// is empty or unreachable on startup.
func SeedUsers() []models.User {
	return []models.User{
		{
			ID:        1,
			Name:      "John Doe",
			Email:     "john.doe@example.com",
			Password:  "password1",
			Birthday:  "1990-01-01",
			AvatarURL: "/avatars/1.png",
		},
		{
			ID:        2,
			Name:      "Jane Doe",
			Email:     "jane.doe@example.com",
			Password:  "password2",
			Birthday:  "1992-05-17",
			AvatarURL: "/avatars/2.png",
		},
	}
}
