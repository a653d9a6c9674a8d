package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.Recoverer,
		h.withProxyHeaders(),
		h.withTraceID,
		h.withLogging,
		h.withCORS(),
		h.withRateLimit(),
	)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.Get("/version", h.getServerVersion)
		r.Post("/register", h.register)
		r.Post("/login", h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/post", h.createPost)
		r.Put("/post/{id}", h.updatePost)
		r.Delete("/post/{id}", h.deletePost)

		r.Put("/user/follow/{id}", h.follow)
		r.Put("/user/unfollow/{id}", h.unfollow)
		r.Get("/user/following", h.following)
		r.Get("/user/followers", h.followers)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
