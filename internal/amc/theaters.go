package amc

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"go.uber.org/zap"
)

// theaterDoc is the raw vendor theatre document. Address fields live in a
// nested location object and amenities in a nested attributes array.
type theaterDoc struct {
	ID       json.Number `json:"id"`
	Name     string      `json:"name"`
	LongName string      `json:"longName"`
	Location struct {
		AddressLine1 string `json:"addressLine1"`
		Address      string `json:"address"`
		City         string `json:"city"`
		State        string `json:"state"`
		StateName    string `json:"stateName"`
		PostalCode   string `json:"postalCode"`
		Zip          string `json:"zip"`
		Country      string `json:"country"`
	} `json:"location"`
	Phone      string `json:"guestServicesPhoneNumber"`
	PhoneAlt   string `json:"phoneNumber"`
	Attributes []struct {
		Code string `json:"code"`
		Name string `json:"name"`
	} `json:"attributes"`
	Distance *float64 `json:"distance"`
}

func (d theaterDoc) toTheater() Theater {
	t := Theater{
		ID:   d.ID.String(),
		Name: firstNonEmpty(d.Name, d.LongName),
		Address: Address{
			Street:  firstNonEmpty(d.Location.AddressLine1, d.Location.Address),
			City:    d.Location.City,
			State:   firstNonEmpty(d.Location.State, d.Location.StateName),
			Zip:     firstNonEmpty(d.Location.PostalCode, d.Location.Zip),
			Country: d.Location.Country,
		},
		Distance: d.Distance,
	}

	if phone := firstNonEmpty(d.Phone, d.PhoneAlt); phone != "" {
		t.Phone = &phone
	}

	for _, attr := range d.Attributes {
		if name := firstNonEmpty(attr.Name, attr.Code); name != "" {
			t.Amenities = append(t.Amenities, name)
		}
	}

	return t
}

// TheatersByZip resolves a ZIP code to theaters. The newer API has no
// direct ZIP search, so this is a two-step lookup: the ZIP goes to the
// location-suggestion endpoint as a free-text query, and the first
// suggestion's coordinates feed the coordinate search. When no suggestion
// carries usable coordinates the legacy ZIP-search endpoint is the
// fallback.
func (c *Client) TheatersByZip(ctx context.Context, zip string, radius int) ([]Theater, error) {
	if radius <= 0 {
		radius = 25
	}

	query := url.Values{}
	query.Set("query", zip)

	var suggestions suggestionEnvelope
	if err := c.get(ctx, "/v2/location-suggestions", query, &suggestions); err != nil {
		return nil, err
	}

	lat, lon, ok := suggestions.firstCoordinates()
	if !ok {
		c.log.Debug("No coordinates for ZIP, using legacy search", zap.String("zip", zip))
		return c.theatersByZipLegacy(ctx, zip)
	}

	return c.searchTheaters(ctx, lat, lon, 50, radius)
}

// TheatersByCoordinates searches theaters around a coordinate point.
func (c *Client) TheatersByCoordinates(ctx context.Context, lat, lon float64, pageSize int) ([]Theater, error) {
	return c.searchTheaters(ctx, lat, lon, pageSize, 0)
}

func (c *Client) searchTheaters(ctx context.Context, lat, lon float64, pageSize, radius int) ([]Theater, error) {
	if pageSize <= 0 {
		pageSize = 50
	}

	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	query.Set("page-size", strconv.Itoa(pageSize))
	if radius > 0 {
		query.Set("radius", strconv.Itoa(radius))
	}

	var envelope theaterEnvelope
	if err := c.get(ctx, "/v2/theatres", query, &envelope); err != nil {
		return nil, err
	}

	theaters := envelope.normalize()
	c.log.Debug("Theaters fetched by coordinates",
		zap.Float64("lat", lat),
		zap.Float64("lon", lon),
		zap.Int("count", len(theaters)),
	)
	return theaters, nil
}

// theatersByZipLegacy hits the v1 direct postal-code search.
func (c *Client) theatersByZipLegacy(ctx context.Context, zip string) ([]Theater, error) {
	query := url.Values{}
	query.Set("postal-code", zip)

	var envelope theaterEnvelope
	if err := c.get(ctx, "/v1/theatres", query, &envelope); err != nil {
		return nil, err
	}

	return envelope.normalize(), nil
}

// TheaterByID looks up a single theater.
func (c *Client) TheaterByID(ctx context.Context, id string) (*Theater, error) {
	var doc theaterDoc
	if err := c.get(ctx, "/v2/theatres/"+url.PathEscape(id), nil, &doc); err != nil {
		return nil, err
	}

	theater := doc.toTheater()
	return &theater, nil
}
