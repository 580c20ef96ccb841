package amc

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const theaterBody = `{"data":[{
	"id":610,
	"name":"AMC Century City 15",
	"location":{
		"addressLine1":"10250 Santa Monica Blvd",
		"city":"Los Angeles",
		"state":"CA",
		"postalCode":"90067",
		"country":"USA"
	},
	"guestServicesPhoneNumber":"310-289-4262",
	"attributes":[{"code":"imax","name":"IMAX"},{"code":"reserved","name":"Reserved Seating"}],
	"distance":3.2
}]}`

func TestTheatersByZip_TwoStepResolution(t *testing.T) {
	var paths []string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		switch r.URL.Path {
		case "/v2/location-suggestions":
			assert.Equal(t, "90210", r.URL.Query().Get("query"))
			w.Write([]byte(`{"_embedded":{"suggestions":[{"latitude":34.09,"longitude":-118.41}]}}`))
		case "/v2/theatres":
			assert.Equal(t, "34.09", r.URL.Query().Get("latitude"))
			assert.Equal(t, "-118.41", r.URL.Query().Get("longitude"))
			assert.Equal(t, "25", r.URL.Query().Get("radius"))
			w.Write([]byte(theaterBody))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))

	theaters, err := client.TheatersByZip(context.Background(), "90210", 25)
	require.NoError(t, err)
	require.Len(t, theaters, 1)

	assert.Equal(t, []string{"/v2/location-suggestions", "/v2/theatres"}, paths)

	theater := theaters[0]
	assert.Equal(t, "610", theater.ID)
	assert.Equal(t, "AMC Century City 15", theater.Name)
	assert.Equal(t, "10250 Santa Monica Blvd", theater.Address.Street)
	assert.Equal(t, "Los Angeles", theater.Address.City)
	assert.Equal(t, "CA", theater.Address.State)
	assert.Equal(t, "90067", theater.Address.Zip)
	require.NotNil(t, theater.Phone)
	assert.Equal(t, "310-289-4262", *theater.Phone)
	assert.Equal(t, []string{"IMAX", "Reserved Seating"}, theater.Amenities)
	require.NotNil(t, theater.Distance)
	assert.InDelta(t, 3.2, *theater.Distance, 0.001)
}

func TestTheatersByZip_RadiusForwarded(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v2/location-suggestions":
			w.Write([]byte(`{"_embedded":{"suggestions":[{"latitude":34.09,"longitude":-118.41}]}}`))
		case "/v2/theatres":
			assert.Equal(t, "5", r.URL.Query().Get("radius"))
			w.Write([]byte(theaterBody))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))

	_, err := client.TheatersByZip(context.Background(), "90210", 5)
	require.NoError(t, err)
}

func TestTheatersByZip_ZeroRadiusDefaults(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v2/location-suggestions":
			w.Write([]byte(`{"_embedded":{"suggestions":[{"latitude":34.09,"longitude":-118.41}]}}`))
		case "/v2/theatres":
			assert.Equal(t, "25", r.URL.Query().Get("radius"))
			w.Write([]byte(theaterBody))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))

	_, err := client.TheatersByZip(context.Background(), "90210", 0)
	require.NoError(t, err)
}

func TestTheatersByCoordinates_NoRadiusParam(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/theatres", r.URL.Path)
		assert.False(t, r.URL.Query().Has("radius"))
		assert.Equal(t, "50", r.URL.Query().Get("page-size"))
		w.Write([]byte(theaterBody))
	}))

	_, err := client.TheatersByCoordinates(context.Background(), 34.09, -118.41, 0)
	require.NoError(t, err)
}

func TestTheatersByZip_LegacyFallback(t *testing.T) {
	var paths []string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		switch r.URL.Path {
		case "/v2/location-suggestions":
			// no usable coordinates
			w.Write([]byte(`{"_embedded":{"suggestions":[]}}`))
		case "/v1/theatres":
			assert.Equal(t, "90210", r.URL.Query().Get("postal-code"))
			w.Write([]byte(theaterBody))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))

	theaters, err := client.TheatersByZip(context.Background(), "90210", 25)
	require.NoError(t, err)
	require.Len(t, theaters, 1)
	assert.Equal(t, []string{"/v2/location-suggestions", "/v1/theatres"}, paths)
}

func TestTheaterByID(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/theatres/610", r.URL.Path)
		w.Write([]byte(`{"id":610,"name":"AMC Century City 15","location":{"city":"Los Angeles","state":"CA"}}`))
	}))

	theater, err := client.TheaterByID(context.Background(), "610")
	require.NoError(t, err)
	assert.Equal(t, "610", theater.ID)
	assert.Equal(t, "Los Angeles", theater.Address.City)
}

func TestShowtimes_DateInPath(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/theatres/610/showtimes/2024-01-15", r.URL.Path)
		w.Write([]byte(`{"_embedded":{"showtimes":[{
			"id":9001,
			"movieId":123,
			"movieName":"Dune: Part Two",
			"showDateTimeUtc":"2024-01-15T19:30:00Z",
			"sellUntilDateTimeUtc":"2024-01-15T22:16:00Z",
			"auditorium":"7",
			"premiumFormat":"IMAX",
			"ticketPrice":18.99
		}]}}`))
	}))

	showtimes, err := client.Showtimes(context.Background(), "610", "2024-01-15")
	require.NoError(t, err)
	require.Len(t, showtimes, 1)

	st := showtimes[0]
	assert.Equal(t, "9001", st.ID)
	assert.Equal(t, "123", st.MovieID)
	assert.Equal(t, "Dune: Part Two", st.MovieTitle)
	assert.Equal(t, "7", st.Auditorium)
	require.NotNil(t, st.Format)
	assert.Equal(t, "IMAX", *st.Format)
	require.NotNil(t, st.Price)
	assert.InDelta(t, 18.99, *st.Price, 0.001)
	assert.True(t, st.EndsAt.After(st.StartsAt))
}

func TestShowtimes_MissingKeyYieldsEmptyList(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"_embedded":{}}`))
	}))

	showtimes, err := client.Showtimes(context.Background(), "610", "2024-01-15")
	require.NoError(t, err)
	assert.Empty(t, showtimes)
}

func TestShowtimes_EndBeforeStartClamped(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{
			"id":1,"movieId":2,"movieName":"X",
			"showDateTimeUtc":"2024-01-15T19:30:00Z",
			"sellUntilDateTimeUtc":"2024-01-15T10:00:00Z"
		}]}`))
	}))

	showtimes, err := client.Showtimes(context.Background(), "610", "2024-01-15")
	require.NoError(t, err)
	require.Len(t, showtimes, 1)
	assert.False(t, showtimes[0].EndsAt.Before(showtimes[0].StartsAt))
}
