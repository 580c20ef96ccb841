package amc

import "time"

// Movie is the normalized movie shape served to tools, independent of
// which vendor API version produced it.
type Movie struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	RunTime     int      `json:"runTime"`
	ReleaseDate string   `json:"releaseDate"`
	PosterURL   *string  `json:"posterUrl,omitempty"`
	Synopsis    *string  `json:"synopsis,omitempty"`
	MPAARating  *string  `json:"mpaaRating,omitempty"`
	Genres      []string `json:"genres,omitempty"`
}

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

type Theater struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Address   Address  `json:"address"`
	Phone     *string  `json:"phone,omitempty"`
	Amenities []string `json:"amenities,omitempty"`
	// Distance from the query point in miles; only present for
	// coordinate-based searches.
	Distance *float64 `json:"distance,omitempty"`
}

type Showtime struct {
	ID         string    `json:"id"`
	MovieID    string    `json:"movieId"`
	MovieTitle string    `json:"movieTitle"`
	StartsAt   time.Time `json:"startsAt"`
	EndsAt     time.Time `json:"endsAt"`
	Auditorium string    `json:"auditorium"`
	Format     *string   `json:"format,omitempty"`
	Price      *float64  `json:"price,omitempty"`
	// The basic API tier does not expose live inventory, so this is
	// usually nil.
	AvailableSeats *int `json:"availableSeats,omitempty"`
}
