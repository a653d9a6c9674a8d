package http

import (
	"net/http"

	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/internal/utils"
	"github.com/MKhiriev/go-social-api/models"
)

// register creates an account and answers with the stored user record.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err, "invalid register request body")
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, request)
	if err != nil {
		writeError(w, r, err, "user registration failed")
		return
	}

	log.Debug().Str("id", registeredUser.ID.String()).Msg("user registered")
	utils.WriteJSON(w, registeredUser, http.StatusOK)
}

// login checks the credentials, opens a new session and returns its token.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err, "invalid login request body")
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		writeError(w, r, err, "user login failed")
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeError(w, r, err, "creation of token failed")
		return
	}

	log.Debug().Str("id", foundUser.ID.String()).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{
		Token:  token.SignedString,
		UserID: foundUser.ID,
		Name:   foundUser.Name,
	}, http.StatusOK)
}
