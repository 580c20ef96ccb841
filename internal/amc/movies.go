package amc

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// movieDoc is the raw vendor movie document. The vendor renamed several
// fields between API versions; both namings are accepted and the newer
// one wins.
type movieDoc struct {
	ID   json.Number `json:"id"`
	Name string      `json:"name"`
	// legacy naming
	Title            string   `json:"title"`
	RunTime          int      `json:"runTime"`
	Runtime          int      `json:"runtime"`
	ReleaseDateUTC   string   `json:"releaseDateUtc"`
	ReleaseDate      string   `json:"releaseDate"`
	PosterDynamicURL string   `json:"posterDynamicUrl"`
	PosterURL        string   `json:"posterUrl"`
	Synopsis         string   `json:"synopsis"`
	MPAARating       string   `json:"mpaaRating"`
	Rating           string   `json:"rating"`
	Genre            string   `json:"genre"`
	Genres           []string `json:"genres"`
}

func (d movieDoc) toMovie() Movie {
	m := Movie{
		ID:          d.ID.String(),
		Title:       firstNonEmpty(d.Name, d.Title),
		RunTime:     firstNonZero(d.RunTime, d.Runtime),
		ReleaseDate: firstNonEmpty(d.ReleaseDateUTC, d.ReleaseDate),
	}

	if poster := firstNonEmpty(d.PosterDynamicURL, d.PosterURL); poster != "" {
		m.PosterURL = &poster
	}
	if d.Synopsis != "" {
		synopsis := d.Synopsis
		m.Synopsis = &synopsis
	}
	if rating := firstNonEmpty(d.MPAARating, d.Rating); rating != "" {
		m.MPAARating = &rating
	}

	switch {
	case len(d.Genres) > 0:
		m.Genres = d.Genres
	case d.Genre != "":
		m.Genres = strings.Split(d.Genre, ",")
		for i := range m.Genres {
			m.Genres[i] = strings.TrimSpace(m.Genres[i])
		}
	}

	return m
}

// NowPlaying fetches the current now-playing movie list.
func (c *Client) NowPlaying(ctx context.Context) ([]Movie, error) {
	query := url.Values{}
	query.Set("page-size", "100")

	var envelope movieEnvelope
	if err := c.get(ctx, "/v2/movies/views/now-playing", query, &envelope); err != nil {
		return nil, err
	}

	movies := envelope.normalize()
	c.log.Debug("Now-playing movies fetched", zap.Int("count", len(movies)))
	return movies, nil
}

// MovieByID looks up a single movie.
func (c *Client) MovieByID(ctx context.Context, id string) (*Movie, error) {
	var doc movieDoc
	if err := c.get(ctx, "/v2/movies/"+url.PathEscape(id), nil, &doc); err != nil {
		return nil, err
	}

	movie := doc.toMovie()
	return &movie, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstNonZero(values ...int) int {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}
