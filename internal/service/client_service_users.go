package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mkhayatov/go-user-manager/internal/adapter"
	"github.com/mkhayatov/go-user-manager/internal/logger"
	"github.com/mkhayatov/go-user-manager/models"
)

// userListService is the default ClientUserService implementation. All
// operations are serialized with a mutex: the TUI runtime executes
// commands on separate goroutines.
type userListService struct {
	mu         sync.Mutex
	collection adapter.UserCollection
	logger     *logger.Logger

	users  []models.User
	draft  *models.UserDraft
	editID int64
}

// NewUserListService creates a ClientUserService backed by the given
// remote collection.
func NewUserListService(collection adapter.UserCollection, l *logger.Logger) ClientUserService {
	childLogger := l.GetChildLogger()
	childLogger.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("service", "users")
	})

	return &userListService{
		collection: collection,
		logger:     childLogger,
	}
}

func (s *userListService) Load(ctx context.Context) []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	remote, err := s.collection.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("list users: remote collection unavailable, using built-in records")
		s.users = SeedUsers()
		return s.snapshot()
	}

	if len(remote) == 0 {
		s.users = SeedUsers()
		s.adoptSeeds(ctx)
		return s.snapshot()
	}

	s.users = remote
	return s.snapshot()
}

// adoptSeeds pushes the built-in records to the remote collection so that
// the next Load finds them there. Failures are logged and ignored.
func (s *userListService) adoptSeeds(ctx context.Context) {
	for _, user := range s.users {
		if _, err := s.collection.Create(ctx, user); err != nil {
			s.logger.Error().Err(err).Int64("user_id", user.ID).Msg("create seed user: remote collection unavailable")
		}
	}
}

func (s *userListService) Create(ctx context.Context, draft models.UserDraft) []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := draft.User(NextID(s.users))

	stored, err := s.collection.Create(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", user.ID).Msg("create user: remote collection unavailable, keeping local record")
		stored = user
	}

	s.users = append(s.users, stored)
	return s.snapshot()
}

func (s *userListService) Update(ctx context.Context, draft models.UserDraft) []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return s.snapshot()
	}

	id := s.editID
	s.draft = nil
	s.editID = 0

	user := draft.User(id)

	stored, err := s.collection.Update(ctx, id, user)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", id).Msg("update user: remote collection unavailable, keeping local record")
		stored = user
	}

	for idx := range s.users {
		if s.users[idx].ID == id {
			s.users[idx] = stored
			break
		}
	}

	return s.snapshot()
}

func (s *userListService) Delete(ctx context.Context, id int64) []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.collection.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("user_id", id).Msg("delete user: remote collection unavailable, removing local record anyway")
	}

	for idx := range s.users {
		if s.users[idx].ID == id {
			s.users = append(s.users[:idx], s.users[idx+1:]...)
			break
		}
	}

	if s.draft != nil && s.editID == id {
		s.draft = nil
		s.editID = 0
	}

	return s.snapshot()
}

func (s *userListService) BeginEdit(id int64) (models.UserDraft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.ID == id {
			draft := models.DraftFromUser(user)
			s.draft = &draft
			s.editID = id
			return draft, true
		}
	}

	return models.UserDraft{}, false
}

func (s *userListService) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft = nil
	s.editID = 0
}

func (s *userListService) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot()
}

func (s *userListService) EditingID() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return 0, false
	}

	return s.editID, true
}

// snapshot copies the list so callers never observe later mutations.
// Callers must hold s.mu.
func (s *userListService) snapshot() []models.User {
	users := make([]models.User, len(s.users))
	copy(users, s.users)
	return users
}
