package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mkhayatov/go-user-manager/internal/logger"
	"github.com/mkhayatov/go-user-manager/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	users, err := h.users.GetAllUsers(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listUsers").Msg("error getting users")
		http.Error(w, "error getting users", statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, users)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var userFromBody models.User
	if err := json.NewDecoder(r.Body).Decode(&userFromBody); err != nil {
		log.Err(err).Str("func", "*Handler.createUser").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.users.CreateUser(r.Context(), userFromBody)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createUser").Msg("error creating user")
		http.Error(w, "error creating user", statusFromError(err))
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateUser").Msg("invalid user id")
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	var userFromBody models.User
	if err := json.NewDecoder(r.Body).Decode(&userFromBody); err != nil {
		log.Err(err).Str("func", "*Handler.updateUser").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	// identifier in the path wins over the one in the body
	userFromBody.ID = userID

	updated, err := h.users.UpdateUser(r.Context(), userFromBody)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateUser").Msg("error updating user")
		http.Error(w, "error updating user", statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteUser").Msg("invalid user id")
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	if err := h.users.DeleteUser(r.Context(), userID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteUser").Msg("error deleting user")
		http.Error(w, "error deleting user", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
