package service

import (
	"github.com/mkhayatov/go-user-manager/internal/adapter"
	"github.com/mkhayatov/go-user-manager/internal/logger"
	"github.com/mkhayatov/go-user-manager/internal/validators"
)

// ClientServices aggregates everything the terminal client needs.
type ClientServices struct {
	UserService    ClientUserService
	DraftValidator *validators.UserDraftValidator
}

// NewClientServices wires the user list controller and the draft validator.
func NewClientServices(collection adapter.UserCollection, l *logger.Logger) *ClientServices {
	return &ClientServices{
		UserService:    NewUserListService(collection, l),
		DraftValidator: validators.NewUserDraftValidator(),
	}
}
