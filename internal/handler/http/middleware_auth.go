package http

import (
	"net/http"

	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/internal/utils"
)

// auth is an HTTP middleware that enforces session-token authentication.
//
// The whole value of the "Authorization" header is the token; no scheme
// prefix is expected. The token must be a valid signed session token AND be
// the token currently stored for its owner, so a newer login invalidates
// older tokens. On success the user's ID and name are stored in the request
// context via [utils.WithUser].
//
// Every rejection is answered with HTTP 401 and the plain-text body
// "Unauthorised". The reason is only logged.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString := r.Header.Get("Authorization")
		if tokenString == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteText(w, msgUnauthorised, "text/plain; charset=utf-8", http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			log.Warn().Err(err).Msg("request authentication failed")
			utils.WriteText(w, msgUnauthorised, "text/plain; charset=utf-8", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, token.UserID, token.Name)))
	})
}
