package automation

import (
	"time"

	"github.com/playwright-community/playwright-go"
)

// The vendor's consumer site carries no markup contract, so every lookup
// is an ordered list of candidate selectors tried in sequence. Chains were
// assembled empirically and are best-effort by nature.

var signInSelectors = []string{
	"a[href*='sign-in']",
	"button[data-testid='sign-in']",
	"button:has-text('Sign In')",
	"a:has-text('Sign In')",
}

var emailFieldSelectors = []string{
	"input[type='email']",
	"input[name='email']",
	"input[id='email']",
	"input[autocomplete='username']",
}

var passwordFieldSelectors = []string{
	"input[type='password']",
	"input[name='password']",
	"input[id='password']",
}

var loginSubmitSelectors = []string{
	"button[type='submit']",
	"button:has-text('Sign In')",
	"input[type='submit']",
}

var signedInIndicatorSelectors = []string{
	"[data-testid='account-menu']",
	"a[href*='account']",
	"button:has-text('My AMC')",
	".account-avatar",
}

var loginErrorSelectors = []string{
	"[role='alert']",
	".error-message",
	".form-error",
}

var seatMapSelectors = []string{
	"[data-testid='seat-map']",
	".seat-map",
	"svg.seating-chart",
}

var availableSeatSelectors = []string{
	"[data-testid='seat-available']",
	"button.seat--available",
	".seat.available:not(.occupied)",
}

var selectedSeatSelectors = []string{
	"[data-testid='seat-selected']",
	"button.seat--selected",
	".seat.selected",
}

var continueSelectors = []string{
	"button:has-text('Continue')",
	"button[data-testid='continue']",
	"button:has-text('Proceed')",
}

var confirmSelectors = []string{
	"button:has-text('Confirm')",
	"button:has-text('Complete Purchase')",
	"button:has-text('Book')",
	"button[data-testid='confirm-booking']",
}

var confirmationIndicatorSelectors = []string{
	"[data-testid='confirmation-number']",
	".confirmation-number",
	"h1:has-text('Confirmed')",
	".order-confirmation",
}

var confirmationNumberSelectors = []string{
	"[data-testid='confirmation-number']",
	".confirmation-number",
	".order-number",
}

var benefitCheckboxSelectors = []string{
	"input[type='checkbox'][name*='benefit']",
	"input[type='checkbox'][id*='reward']",
	"[data-testid='benefit-opt-in'] input[type='checkbox']",
}

var benefitTextSelectors = []string{
	"label:has-text('free reservation')",
	"label:has-text('benefit')",
	"*:has-text('A-List benefit')",
}

var benefitButtonSelectors = []string{
	"button:has-text('Apply Benefit')",
	"button:has-text('Use Benefit')",
}

var detailSelectors = map[string][]string{
	"movie":    {"[data-testid='movie-title']", ".movie-title", "h2.film-title"},
	"theater":  {"[data-testid='theatre-name']", ".theatre-name"},
	"showtime": {"[data-testid='showtime']", ".showtime-text"},
	"price":    {"[data-testid='order-total']", ".order-total", ".total-price"},
}

const pollInterval = 250 * time.Millisecond

// pollUntil retries fn until it reports success or the timeout elapses.
// fn always runs at least once, so a zero timeout degrades to a single
// instantaneous scan.
func pollUntil(timeout time.Duration, fn func() bool) bool {
	deadline := time.Now().Add(timeout)
	for {
		if fn() {
			return true
		}
		if !time.Now().Before(deadline) {
			return false
		}
		time.Sleep(pollInterval)
	}
}

// waitVisible polls a candidate chain until one selector has a visible
// match or the timeout elapses. Pages render asynchronously, so a single
// instantaneous scan would miss elements still streaming in after a click
// or navigation.
func waitVisible(page playwright.Page, candidates []string, timeout time.Duration) (playwright.Locator, bool) {
	var found playwright.Locator
	ok := pollUntil(timeout, func() bool {
		locator, ok := firstVisible(page, candidates)
		if ok {
			found = locator
		}
		return ok
	})
	return found, ok
}

// waitPresent is like waitVisible but only requires the element to exist
// in the DOM.
func waitPresent(page playwright.Page, candidates []string, timeout time.Duration) (playwright.Locator, bool) {
	var found playwright.Locator
	ok := pollUntil(timeout, func() bool {
		locator, ok := firstPresent(page, candidates)
		if ok {
			found = locator
		}
		return ok
	})
	return found, ok
}

// firstVisible walks a candidate chain and returns the first selector with
// a visible match on the page.
func firstVisible(page playwright.Page, candidates []string) (playwright.Locator, bool) {
	for _, selector := range candidates {
		locator := page.Locator(selector).First()
		visible, err := locator.IsVisible()
		if err == nil && visible {
			return locator, true
		}
	}
	return nil, false
}

// firstPresent is like firstVisible but only requires the element to exist
// in the DOM, which matters for hidden checkbox inputs.
func firstPresent(page playwright.Page, candidates []string) (playwright.Locator, bool) {
	for _, selector := range candidates {
		locator := page.Locator(selector)
		count, err := locator.Count()
		if err == nil && count > 0 {
			return locator.First(), true
		}
	}
	return nil, false
}
