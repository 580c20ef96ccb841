package response

import "amc-tools/internal/amc"

type ListTheatersResponse struct {
	Theaters   []amc.Theater `json:"theaters"`
	TotalCount int           `json:"totalCount"`
}

type ListMoviesResponse struct {
	Movies     []amc.Movie `json:"movies"`
	TotalCount int         `json:"totalCount"`
}

type ListShowtimesResponse struct {
	Showtimes  []amc.Showtime `json:"showtimes"`
	TotalCount int            `json:"totalCount"`
	Theater    amc.Theater    `json:"theater"`
}

// ReservationResponse is the stub reservation contract. Status is always
// "pending"; no vendor-side effect ever occurs.
type ReservationResponse struct {
	ReservationID string `json:"reservationId"`
	Status        string `json:"status"`
	Message       string `json:"message"`
}
