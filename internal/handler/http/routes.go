package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerInfo)
	})

	// the account endpoint answers no_account to anonymous callers
	router.Group(func(r chi.Router) {
		r.Use(h.optionalAuth, withGZip)
		r.Get("/api/account", h.getAccount)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		// websocket upgrades need the raw connection, so no gzip here
		r.Get("/api/notifications", h.notifications)

		r.Group(func(r chi.Router) {
			r.Use(withGZip)

			r.Post("/api/zones", h.createZone)
			r.Get("/api/zones/{zone}", h.fetchZone)
			r.Delete("/api/zones/{zone}", h.deleteZone)
			r.Put("/api/zones/{zone}/subscriptions", h.createSubscription)
			r.Get("/api/zones/{zone}/subscriptions/{id}", h.fetchSubscription)
			r.Post("/api/zones/{zone}/records/modify", h.modifyRecords)
			r.Get("/api/zones/{zone}/changes", h.fetchChanges)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
