package wire

import (
	"amc-tools/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireSystem mounts the operational and discovery endpoints.
func wireSystem(r chi.Router, handler *adaptor.Handler) {
	r.Get("/health", handler.System.Health)
	r.Get("/validate", handler.System.ValidateKey)
	r.Get("/manifest.json", handler.System.Manifest)
	r.Get("/sessions", handler.Booking.Sessions)
}
