package automation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"plain dollars", "$34.50", 34.50},
		{"with label", "Total: $18.99", 18.99},
		{"thousands separator", "$1,234.00", 1234.00},
		{"whole number", "25", 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price := parsePrice(tt.text)
			require.NotNil(t, price)
			assert.InDelta(t, tt.want, *price, 0.001)
		})
	}
}

func TestParsePrice_NoDigits(t *testing.T) {
	assert.Nil(t, parsePrice("free with benefit"))
	assert.Nil(t, parsePrice(""))
}

func TestBookingStateString(t *testing.T) {
	states := map[bookingState]string{
		stateIdle:            "idle",
		stateContextOpen:     "context_open",
		stateLoginPending:    "login_pending",
		stateLoggedIn:        "logged_in",
		stateShowtimeOpen:    "showtime_open",
		stateSeatsSelected:   "seats_selected",
		stateCheckoutPending: "checkout_pending",
		stateConfirmed:       "confirmed",
	}
	for state, want := range states {
		assert.Equal(t, want, state.String())
	}
	assert.Equal(t, "unknown", bookingState(99).String())
}

func TestCheckSeatAvailability(t *testing.T) {
	assert.Equal(t, "Only 1 seats available, requested 2", checkSeatAvailability(1, 2))
	assert.Equal(t, "Only 0 seats available, requested 4", checkSeatAvailability(0, 4))
	assert.Empty(t, checkSeatAvailability(2, 2))
	assert.Empty(t, checkSeatAvailability(10, 3))
}

func TestExtractConfirmation(t *testing.T) {
	confirmation, msg := extractConfirmation("  ABC-12345 \n")
	assert.Empty(t, msg)
	assert.Equal(t, "ABC-12345", confirmation)
}

func TestExtractConfirmation_MissingNumberIsFailure(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		confirmation, msg := extractConfirmation(text)
		assert.Empty(t, confirmation)
		assert.Equal(t, "completed but no confirmation number found", msg)
	}
}

func TestFailure_ShapesResult(t *testing.T) {
	result := failure("Only %d seats available, requested %d", 1, 2)

	assert.False(t, result.Success)
	assert.Nil(t, result.ConfirmationNumber)
	require.NotNil(t, result.ErrorMessage)
	assert.Equal(t, "Only 1 seats available, requested 2", *result.ErrorMessage)
}
