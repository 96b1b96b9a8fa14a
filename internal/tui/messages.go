package tui

import (
	"github.com/mkhayatov/go-user-manager/models"
)

type listLoadedMsg struct {
	users []models.User
}

type userSavedMsg struct {
	users []models.User
}

type userDeletedMsg struct {
	users []models.User
}
