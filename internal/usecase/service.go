package usecase

import (
	"context"

	"amc-tools/internal/amc"
	"amc-tools/internal/automation"

	"go.uber.org/zap"
)

// VendorGateway is what the tool layer needs from the AMC adapter.
// Satisfied by *amc.Client; faked in tests.
type VendorGateway interface {
	NowPlaying(ctx context.Context) ([]amc.Movie, error)
	TheatersByZip(ctx context.Context, zip string, radius int) ([]amc.Theater, error)
	Showtimes(ctx context.Context, theaterID, date string) ([]amc.Showtime, error)
	TheaterByID(ctx context.Context, id string) (*amc.Theater, error)
	ValidateKey(ctx context.Context) error
}

// TicketBooker is what the tool layer needs from the browser automation
// driver. Satisfied by *automation.Driver; faked in tests.
type TicketBooker interface {
	Book(ctx context.Context, req automation.BookingRequest) automation.BookingResult
}

type Service struct {
	Theater  TheaterService
	Movie    MovieService
	Showtime ShowtimeService
	Booking  BookingService
}

func NewService(api VendorGateway, booker TicketBooker, sessions *automation.SessionStore, log *zap.Logger) *Service {
	return &Service{
		Theater:  NewTheaterService(api, log),
		Movie:    NewMovieService(api, log),
		Showtime: NewShowtimeService(api, log),
		Booking:  NewBookingService(booker, sessions, log),
	}
}
