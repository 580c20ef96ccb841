package usecase

import (
	"context"

	"amc-tools/internal/amc"
	"amc-tools/internal/automation"
)

// fakeGateway is a hand-written VendorGateway fake counting every call,
// so tests can prove validation happens before any network access.
type fakeGateway struct {
	calls     int
	movies    []amc.Movie
	theaters  []amc.Theater
	showtimes []amc.Showtime
	theater   *amc.Theater
	err       error
}

func (f *fakeGateway) NowPlaying(ctx context.Context) ([]amc.Movie, error) {
	f.calls++
	return f.movies, f.err
}

func (f *fakeGateway) TheatersByZip(ctx context.Context, zip string, radius int) ([]amc.Theater, error) {
	f.calls++
	return f.theaters, f.err
}

func (f *fakeGateway) Showtimes(ctx context.Context, theaterID, date string) ([]amc.Showtime, error) {
	f.calls++
	return f.showtimes, f.err
}

func (f *fakeGateway) TheaterByID(ctx context.Context, id string) (*amc.Theater, error) {
	f.calls++
	if f.theater != nil {
		theater := *f.theater
		theater.ID = id
		return &theater, f.err
	}
	return nil, f.err
}

func (f *fakeGateway) ValidateKey(ctx context.Context) error {
	f.calls++
	return f.err
}

// fakeBooker is a hand-written TicketBooker fake.
type fakeBooker struct {
	calls   int
	lastReq automation.BookingRequest
	result  automation.BookingResult
}

func (f *fakeBooker) Book(ctx context.Context, req automation.BookingRequest) automation.BookingResult {
	f.calls++
	f.lastReq = req
	return f.result
}
