package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"amc-tools/internal/amc"
	"amc-tools/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestListShowtimes_TheaterMatchesRequestedID(t *testing.T) {
	gateway := &fakeGateway{
		showtimes: []amc.Showtime{{
			ID:       "9001",
			MovieID:  "123",
			StartsAt: time.Date(2024, 1, 15, 19, 30, 0, 0, time.UTC),
			EndsAt:   time.Date(2024, 1, 15, 22, 16, 0, 0, time.UTC),
		}},
		theater: &amc.Theater{Name: "AMC Century City 15"},
	}
	svc := NewShowtimeService(gateway, zap.NewNop())

	result, err := svc.ListShowtimes(context.Background(), &request.ListShowtimesRequest{
		TheaterID: "610",
		Date:      "2024-01-15",
	})
	require.NoError(t, err)

	assert.Equal(t, "610", result.Theater.ID)
	assert.Equal(t, 1, result.TotalCount)
	assert.Equal(t, "9001", result.Showtimes[0].ID)
}

func TestListShowtimes_InvalidDateRejected(t *testing.T) {
	for _, date := range []string{"", "01-15-2024", "2024/01/15", "not-a-date"} {
		gateway := &fakeGateway{}
		svc := NewShowtimeService(gateway, zap.NewNop())

		_, err := svc.ListShowtimes(context.Background(), &request.ListShowtimesRequest{
			TheaterID: "610",
			Date:      date,
		})
		require.Error(t, err, "date %q", date)

		var toolErr *ToolError
		require.True(t, errors.As(err, &toolErr))
		assert.Equal(t, CodeValidation, toolErr.Code)
		assert.Zero(t, gateway.calls)
	}
}

func TestListShowtimes_EmptyShowtimesStillReturnsTheater(t *testing.T) {
	gateway := &fakeGateway{theater: &amc.Theater{Name: "AMC Empire 25"}}
	svc := NewShowtimeService(gateway, zap.NewNop())

	result, err := svc.ListShowtimes(context.Background(), &request.ListShowtimesRequest{
		TheaterID: "375",
		Date:      "2024-01-15",
	})
	require.NoError(t, err)
	assert.NotNil(t, result.Showtimes)
	assert.Zero(t, result.TotalCount)
	assert.Equal(t, "375", result.Theater.ID)
}

func TestListShowtimes_VendorErrorWrapped(t *testing.T) {
	gateway := &fakeGateway{err: &amc.APIError{StatusCode: 404, Message: "no such theatre"}}
	svc := NewShowtimeService(gateway, zap.NewNop())

	_, err := svc.ListShowtimes(context.Background(), &request.ListShowtimesRequest{
		TheaterID: "0",
		Date:      "2024-01-15",
	})
	require.Error(t, err)

	var toolErr *ToolError
	require.True(t, errors.As(err, &toolErr))
	assert.Equal(t, CodeAMCAPI, toolErr.Code)
}
