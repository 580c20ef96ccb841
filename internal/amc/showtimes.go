package amc

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	"go.uber.org/zap"
)

type showtimeDoc struct {
	ID         json.Number `json:"id"`
	MovieID    json.Number `json:"movieId"`
	MovieName  string      `json:"movieName"`
	MovieTitle string      `json:"movieTitle"`
	StartsAt   string      `json:"showDateTimeUtc"`
	EndsAt     string      `json:"sellUntilDateTimeUtc"`
	Auditorium string      `json:"auditorium"`
	Format     string      `json:"premiumFormat"`
	Price      *float64    `json:"ticketPrice"`
	// usually absent: live inventory is not in the basic API tier
	AvailableSeats *int `json:"availableSeats"`
}

func (d showtimeDoc) toShowtime() Showtime {
	s := Showtime{
		ID:             d.ID.String(),
		MovieID:        d.MovieID.String(),
		MovieTitle:     firstNonEmpty(d.MovieName, d.MovieTitle),
		StartsAt:       parseUTC(d.StartsAt),
		EndsAt:         parseUTC(d.EndsAt),
		Auditorium:     d.Auditorium,
		Price:          d.Price,
		AvailableSeats: d.AvailableSeats,
	}

	if d.Format != "" {
		format := d.Format
		s.Format = &format
	}

	// end time should follow start time; vendor data is not trusted here
	if !s.EndsAt.After(s.StartsAt) {
		s.EndsAt = s.StartsAt
	}

	return s
}

func parseUTC(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

// Showtimes fetches the showtimes for one theater on one date. The date is
// part of the URL path in the vendor's scheme, not a query parameter.
func (c *Client) Showtimes(ctx context.Context, theaterID, date string) ([]Showtime, error) {
	path := "/v2/theatres/" + url.PathEscape(theaterID) + "/showtimes/" + url.PathEscape(date)

	var envelope showtimeEnvelope
	if err := c.get(ctx, path, nil, &envelope); err != nil {
		return nil, err
	}

	showtimes := envelope.normalize()
	c.log.Debug("Showtimes fetched",
		zap.String("theater_id", theaterID),
		zap.String("date", date),
		zap.Int("count", len(showtimes)),
	)
	return showtimes, nil
}
