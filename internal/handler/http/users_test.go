package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mkhayatov/go-user-manager/internal/logger"
	"github.com/mkhayatov/go-user-manager/internal/mock"
	"github.com/mkhayatov/go-user-manager/internal/store"
	"github.com/mkhayatov/go-user-manager/models"
)

// newTestHandler — хелпер для создания Handler с моком репозитория
func newTestHandler(t *testing.T, ctrl *gomock.Controller) (*Handler, *mock.MockUserRepository) {
	t.Helper()
	mockRepo := mock.NewMockUserRepository(ctrl)

	h := &Handler{
		users:  mockRepo,
		logger: logger.Nop(),
	}

	return h, mockRepo
}

func sampleUser() models.User {
	return models.User{
		ID:        1,
		Name:      "John Doe",
		Email:     "john.doe@example.com",
		Password:  "password1",
		Birthday:  "1990-01-01",
		AvatarURL: "/avatars/1.png",
	}
}

func TestListUsers_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockRepo := newTestHandler(t, ctrl)

	mockRepo.EXPECT().GetAllUsers(gomock.Any()).Return([]models.User{sampleUser()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))

	var users []models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	require.Len(t, users, 1)
	assert.Equal(t, sampleUser(), users[0])
}

func TestListUsers_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockRepo := newTestHandler(t, ctrl)

	mockRepo.EXPECT().GetAllUsers(gomock.Any()).Return(nil, store.ErrExecutingQuery)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCreateUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockRepo := newTestHandler(t, ctrl)

	user := sampleUser()
	mockRepo.EXPECT().CreateUser(gomock.Any(), user).Return(user, nil)

	body, err := json.Marshal(user)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, user, created)
}

func TestCreateUser_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateUser_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockRepo := newTestHandler(t, ctrl)

	user := sampleUser()
	mockRepo.EXPECT().CreateUser(gomock.Any(), user).Return(models.User{}, store.ErrUserAlreadyExists)

	body, err := json.Marshal(user)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUpdateUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockRepo := newTestHandler(t, ctrl)

	user := sampleUser()
	user.Name = "Johnny Doe"
	mockRepo.EXPECT().UpdateUser(gomock.Any(), user).Return(user, nil)

	body, err := json.Marshal(user)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/api/users/1", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Johnny Doe", updated.Name)
}

func TestUpdateUser_PathIdentifierWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockRepo := newTestHandler(t, ctrl)

	user := sampleUser()
	user.ID = 99 // тело несёт другой идентификатор

	expected := user
	expected.ID = 1
	mockRepo.EXPECT().UpdateUser(gomock.Any(), expected).Return(expected, nil)

	body, err := json.Marshal(user)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/api/users/1", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateUser_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockRepo := newTestHandler(t, ctrl)

	mockRepo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserNotFound)

	body, err := json.Marshal(sampleUser())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/api/users/42", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateUser_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)

	req := httptest.NewRequest(http.MethodPut, "/api/users/abc", strings.NewReader("{}"))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockRepo := newTestHandler(t, ctrl)

	mockRepo.EXPECT().DeleteUser(gomock.Any(), int64(1)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/users/1", nil)
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteUser_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockRepo := newTestHandler(t, ctrl)

	mockRepo.EXPECT().DeleteUser(gomock.Any(), int64(42)).Return(store.ErrUserNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/api/users/42", nil)
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWithTraceID_PropagatesIncomingHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockRepo := newTestHandler(t, ctrl)

	mockRepo.EXPECT().GetAllUsers(gomock.Any()).Return([]models.User{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set(traceIDHeader, "trace-from-client")
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, "trace-from-client", rec.Header().Get(traceIDHeader))
}

func TestStatusFromError_Unknown(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, statusFromError(errors.New("unknown")))
}
