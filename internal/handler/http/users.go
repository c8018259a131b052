package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/internal/store"
	"github.com/MKhiriev/go-user-api/internal/utils"
	"github.com/MKhiriev/go-user-api/models"
	"github.com/go-chi/chi/v5"
)

// userIDFromRequest parses the {id} URL parameter. A value that is not a
// valid integer cannot identify any stored user, so callers treat the error
// as "not found" rather than "bad request".
func userIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.List(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDFromRequest(r)
	if err != nil {
		h.respondError(w, r, store.ErrUserNotFound)
		return
	}

	user, err := h.services.UserService.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.createUser").Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ValidationErrorsResponse{Errors: []string{"Invalid JSON was passed"}}, http.StatusBadRequest)
		return
	}

	createdUser, err := h.services.UserService.Create(ctx, request)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", createdUser.ID).Msg("user created")

	w.Header().Set("Location", fmt.Sprintf("/users/%d", createdUser.ID))
	utils.WriteJSON(w, createdUser, http.StatusCreated)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := userIDFromRequest(r)
	if err != nil {
		h.respondError(w, r, store.ErrUserNotFound)
		return
	}

	var request models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.updateUser").Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ValidationErrorsResponse{Errors: []string{"Invalid JSON was passed"}}, http.StatusBadRequest)
		return
	}

	updatedUser, err := h.services.UserService.Update(ctx, id, request)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, updatedUser, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDFromRequest(r)
	if err != nil {
		h.respondError(w, r, store.ErrUserNotFound)
		return
	}

	if err := h.services.UserService.Delete(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
