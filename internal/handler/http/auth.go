package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/internal/utils"
	"github.com/MKhiriev/go-user-api/models"
)

// login authenticates the submitted credentials and returns a signed JWT.
//
// Any login failure that is not a validation problem answers 401 with a
// single "invalid credentials" message, so callers cannot probe which
// emails have accounts.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ValidationErrorsResponse{Errors: []string{"Invalid JSON was passed"}}, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Debug().Str("email", token.Email).Msg("user successfully logged in")

	utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusOK)
}
