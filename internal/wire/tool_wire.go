package wire

import (
	"amc-tools/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireTools mounts one POST endpoint per tool.
func wireTools(r chi.Router, handler *adaptor.Handler) {
	r.Route("/tools", func(r chi.Router) {
		r.Post("/list_theaters", handler.Theater.ListTheaters)
		r.Post("/list_movies", handler.Movie.ListMovies)
		r.Post("/list_showtimes", handler.Showtime.ListShowtimes)
		r.Post("/reserve_tickets", handler.Booking.ReserveTickets)
		r.Post("/book_tickets", handler.Booking.BookTickets)
	})
}
