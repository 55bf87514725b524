package http

import (
	"net/http"

	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/utils"
	"github.com/MKhiriev/go-diary/models"
)

// register creates an account. It never logs the caller in; the client is
// expected to call login afterwards.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var creds models.Credentials
	if err := decodeJSON(w, r, maxCredentialsBodyBytes, &creds); err != nil {
		writeServiceError(w, r, err, "reading credentials failed")
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, creds.Username, creds.Password)
	if err != nil {
		writeServiceError(w, r, err, "user registration failed")
		return
	}

	logger.FromRequest(r).Info().Int64("id", registeredUser.UserID).Msg("user registered")
	_, _ = utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := decodeJSON(w, r, maxCredentialsBodyBytes, &creds); err != nil {
		writeServiceError(w, r, err, "reading credentials failed")
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, creds.Username, creds.Password)
	if err != nil {
		writeServiceError(w, r, err, "user login failed")
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeServiceError(w, r, err, "creation of token failed")
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	w.Header().Set("Authorization", utils.BearerHeader(token.SignedString))
	_, _ = utils.WriteJSON(w, models.LoginResponse{
		UserID:   foundUser.UserID,
		Username: foundUser.Username,
		Token:    token.SignedString,
	}, http.StatusOK)
}
