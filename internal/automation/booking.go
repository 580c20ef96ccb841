package automation

import (
	"fmt"
	"strconv"
	"strings"
)

// SeatPreferences is accepted and validated upstream but does not
// currently influence which seats get picked; seats are clicked in
// enumeration order. Known gap carried over from the observed behavior of
// the site flow, kept so the input contract stays stable.
type SeatPreferences struct {
	Row      string `json:"row,omitempty"`
	Position string `json:"position,omitempty"`
}

type BookingRequest struct {
	Email           string
	Password        string
	TheaterID       string
	ShowtimeID      string
	SeatCount       int
	SeatPreferences *SeatPreferences
	// UseBenefit runs the loyalty free-reservation flow instead of a
	// paid checkout.
	UseBenefit bool
}

// BookingDetails is a best-effort snapshot scraped from the confirmation
// page; text fields are not guaranteed machine-exact.
type BookingDetails struct {
	Movie      string   `json:"movie,omitempty"`
	Theater    string   `json:"theater,omitempty"`
	Showtime   string   `json:"showtime,omitempty"`
	Seats      []string `json:"seats,omitempty"`
	TotalPrice *float64 `json:"totalPrice,omitempty"`
}

// BookingResult is the single outcome shape for every booking attempt.
// Success is true if and only if ConfirmationNumber is present.
type BookingResult struct {
	Success            bool            `json:"success"`
	ConfirmationNumber *string         `json:"confirmationNumber,omitempty"`
	ErrorMessage       *string         `json:"errorMessage,omitempty"`
	Details            *BookingDetails `json:"details,omitempty"`
}

func failure(format string, args ...any) BookingResult {
	message := fmt.Sprintf(format, args...)
	return BookingResult{Success: false, ErrorMessage: &message}
}

// bookingState makes the flow's progress explicit so each transition can
// be logged and tested independently.
type bookingState int

const (
	stateIdle bookingState = iota
	stateContextOpen
	stateLoginPending
	stateLoggedIn
	stateShowtimeOpen
	stateSeatsSelected
	stateCheckoutPending
	stateConfirmed
)

func (s bookingState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateContextOpen:
		return "context_open"
	case stateLoginPending:
		return "login_pending"
	case stateLoggedIn:
		return "logged_in"
	case stateShowtimeOpen:
		return "showtime_open"
	case stateSeatsSelected:
		return "seats_selected"
	case stateCheckoutPending:
		return "checkout_pending"
	case stateConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

func trimText(text string) string {
	return strings.TrimSpace(text)
}

// checkSeatAvailability enforces the no-partial-booking rule: a shortage
// fails before any seat is clicked. Returns an empty string when enough
// seats are available.
func checkSeatAvailability(available, requested int) string {
	if available < requested {
		return fmt.Sprintf("Only %d seats available, requested %d", available, requested)
	}
	return ""
}

// extractConfirmation applies the success contract to text scraped from
// the confirmation page: success means a non-empty confirmation number,
// full stop. Returns the trimmed number or a failure message.
func extractConfirmation(text string) (string, string) {
	confirmation := trimText(text)
	if confirmation == "" {
		return "", "completed but no confirmation number found"
	}
	return confirmation, ""
}

// parsePrice extracts a numeric total from currency text like "$34.50" or
// "Total: $1,234.00" by stripping everything but digits and the decimal
// point.
func parsePrice(text string) *float64 {
	var builder strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' {
			builder.WriteRune(r)
		}
	}

	cleaned := builder.String()
	if cleaned == "" {
		return nil
	}

	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &price
}
