package http

import (
	"net/http"

	"github.com/MKhiriev/go-social-api/internal/utils"
	"github.com/MKhiriev/go-social-api/models"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

// withProxyHeaders rewrites r.RemoteAddr from the forwarding headers when
// the server is configured to trust them. Otherwise the socket address is
// kept so that clients cannot choose their own rate limit key.
func (h *Handler) withProxyHeaders() func(http.Handler) http.Handler {
	if h.cfg.TrustProxyHeaders {
		return middleware.RealIP
	}
	return func(next http.Handler) http.Handler { return next }
}

// withRateLimit limits every client IP to cfg.RateLimit.Requests requests
// per cfg.RateLimit.Window. X-RateLimit-* headers are set on every response;
// requests over the limit get 429.
//
// The limiter state lives in memory and is not shared between instances.
// A non-positive request count disables limiting.
func (h *Handler) withRateLimit() func(http.Handler) http.Handler {
	if h.cfg.RateLimit.Requests <= 0 || h.cfg.RateLimit.Window <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return httprate.Limit(
		h.cfg.RateLimit.Requests,
		h.cfg.RateLimit.Window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.WriteJSON(w, models.ErrorResponse{Error: msgTooManyRequests}, http.StatusTooManyRequests)
		}),
	)
}
