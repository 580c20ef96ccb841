package wire

import (
	"amc-tools/internal/adaptor"
	"amc-tools/internal/automation"
	"amc-tools/internal/usecase"
	"amc-tools/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers, and routes
func Wiring(api usecase.VendorGateway, booker usecase.TicketBooker, sessions *automation.SessionStore, logger *zap.Logger) *App {
	service := usecase.NewService(api, booker, sessions, logger)
	handler := adaptor.NewHandler(service, api, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireTools(r, handler)
	wireSystem(r, handler)

	return r
}
