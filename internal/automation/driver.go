package automation

import (
	"context"
	"fmt"
	"time"

	"amc-tools/pkg/utils"

	"github.com/google/uuid"
	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"
)

const defaultSiteURL = "https://www.amctheatres.com"

// Driver emulates a human completing a ticket purchase on the vendor's
// consumer website. One Chromium process is shared across the service
// lifetime; every booking attempt gets its own isolated browser context
// and page so concurrent bookings never share cookies or storage.
type Driver struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	cfg     utils.BrowserConfig
	store   *SessionStore
	siteURL string
	log     *zap.Logger
}

func NewDriver(cfg utils.BrowserConfig, store *SessionStore, log *zap.Logger) (*Driver, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
		SlowMo:   playwright.Float(float64(cfg.SlowMoMs)),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	return &Driver{
		pw:      pw,
		browser: browser,
		cfg:     cfg,
		store:   store,
		siteURL: defaultSiteURL,
		log:     log.With(zap.String("component", "booking_driver")),
	}, nil
}

// Close shuts the shared browser down. Only called on service shutdown,
// never per booking.
func (d *Driver) Close() error {
	if err := d.browser.Close(); err != nil {
		d.pw.Stop()
		return fmt.Errorf("close browser: %w", err)
	}
	return d.pw.Stop()
}

func (d *Driver) timeout() float64 {
	return float64(d.cfg.StepTimeoutMs)
}

func (d *Driver) stepTimeout() time.Duration {
	return time.Duration(d.cfg.StepTimeoutMs) * time.Millisecond
}

// optionalWait bounds the poll for controls that may legitimately be
// absent, so skippable steps don't burn a full step timeout each.
const optionalWait = 2 * time.Second

// Book runs the full purchase flow. Every step failure is converted into
// a BookingResult with Success=false; nothing propagates as an error or a
// panic past this call.
func (d *Driver) Book(ctx context.Context, req BookingRequest) (result BookingResult) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error("Booking panicked", zap.Any("panic", r))
			result = failure("unexpected booking failure: %v", r)
		}
	}()

	state := stateIdle
	log := d.log.With(
		zap.String("email", req.Email),
		zap.String("showtime_id", req.ShowtimeID),
	)

	browserCtx, err := d.browser.NewContext()
	if err != nil {
		return failure("open browser context: %v", err)
	}
	defer browserCtx.Close()

	page, err := browserCtx.NewPage()
	if err != nil {
		return failure("open page: %v", err)
	}
	defer page.Close()

	state = stateContextOpen
	log.Info("Booking started", zap.Stringer("state", state))

	if err := ctx.Err(); err != nil {
		return failure("booking canceled: %v", err)
	}

	state = stateLoginPending
	if msg := d.login(page, req.Email, req.Password); msg != "" {
		log.Warn("Login failed", zap.Stringer("state", state), zap.String("reason", msg))
		return failure("%s", msg)
	}
	state = stateLoggedIn
	log.Info("Logged in", zap.Stringer("state", state))

	if err := ctx.Err(); err != nil {
		return failure("booking canceled: %v", err)
	}

	if msg := d.openShowtime(page, req.TheaterID, req.ShowtimeID); msg != "" {
		return failure("%s", msg)
	}
	state = stateShowtimeOpen

	seats, msg := d.selectSeats(page, req.SeatCount)
	if msg != "" {
		log.Warn("Seat selection failed", zap.Stringer("state", state), zap.String("reason", msg))
		return failure("%s", msg)
	}
	state = stateSeatsSelected
	log.Info("Seats selected", zap.Stringer("state", state), zap.Int("count", len(seats)))

	if req.UseBenefit {
		if msg := d.applyBenefit(page); msg != "" {
			return failure("%s", msg)
		}
	}

	state = stateCheckoutPending
	confirmation, details, msg := d.checkout(page)
	if msg != "" {
		log.Warn("Checkout failed", zap.Stringer("state", state), zap.String("reason", msg))
		return failure("%s", msg)
	}
	state = stateConfirmed

	details.Seats = seats

	d.store.Put(Session{
		ID:        uuid.NewString(),
		Email:     req.Email,
		LastLogin: time.Now(),
		Active:    true,
	})

	log.Info("Booking confirmed",
		zap.Stringer("state", state),
		zap.String("confirmation", confirmation),
	)

	return BookingResult{
		Success:            true,
		ConfirmationNumber: &confirmation,
		Details:            details,
	}
}

// login opens the sign-in surface and authenticates. The sign-in control
// may open an inline popup or navigate; both end with the same fields on
// the page. Returns an empty string on success, a failure message
// otherwise.
func (d *Driver) login(page playwright.Page, email, password string) string {
	if _, err := page.Goto(d.siteURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(d.timeout()),
	}); err != nil {
		return fmt.Sprintf("open site: %v", err)
	}

	signIn, ok := waitVisible(page, signInSelectors, d.stepTimeout())
	if !ok {
		return "sign-in control not found"
	}
	if err := signIn.Click(playwright.LocatorClickOptions{Timeout: playwright.Float(d.timeout())}); err != nil {
		return fmt.Sprintf("click sign-in: %v", err)
	}

	// the sign-in surface renders after the click, so the field lookups
	// poll rather than scan once
	emailField, ok := waitVisible(page, emailFieldSelectors, d.stepTimeout())
	if !ok {
		return "email field not found"
	}
	if err := emailField.Fill(email); err != nil {
		return fmt.Sprintf("fill email: %v", err)
	}

	passwordField, ok := waitVisible(page, passwordFieldSelectors, d.stepTimeout())
	if !ok {
		return "password field not found"
	}
	if err := passwordField.Fill(password); err != nil {
		return fmt.Sprintf("fill password: %v", err)
	}

	submit, ok := waitVisible(page, loginSubmitSelectors, d.stepTimeout())
	if !ok {
		return "login submit button not found"
	}
	if err := submit.Click(playwright.LocatorClickOptions{Timeout: playwright.Float(d.timeout())}); err != nil {
		return fmt.Sprintf("submit login: %v", err)
	}

	if err := page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State:   playwright.LoadStateNetworkidle,
		Timeout: playwright.Float(d.timeout()),
	}); err != nil {
		// the indicator poll below decides success either way
		d.log.Debug("Post-login network idle wait ended early", zap.Error(err))
	}

	if _, ok := waitVisible(page, signedInIndicatorSelectors, d.stepTimeout()); ok {
		return ""
	}

	// no signed-in indicator: surface the site's own error text when
	// there is one
	if errorElem, ok := firstVisible(page, loginErrorSelectors); ok {
		if text, err := errorElem.TextContent(); err == nil && text != "" {
			return fmt.Sprintf("login failed: %s", text)
		}
	}
	return "login failed: signed-in indicator not found"
}

// openShowtime navigates straight to the seat-selection page for a
// showtime. Whether the vendor's URL scheme actually needs the theater id
// is unverified against the live site; it is kept in the path to be safe.
func (d *Driver) openShowtime(page playwright.Page, theaterID, showtimeID string) string {
	url := fmt.Sprintf("%s/showtimes/%s/%s/seats", d.siteURL, theaterID, showtimeID)
	if _, err := page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(d.timeout()),
	}); err != nil {
		return fmt.Sprintf("open showtime page: %v", err)
	}
	return ""
}

// selectSeats waits for the seat map, verifies availability, and clicks
// the first requested seats in enumeration order. No partial bookings: a
// shortage fails before any seat is clicked.
func (d *Driver) selectSeats(page playwright.Page, requested int) ([]string, string) {
	seatMap, ok := waitPresent(page, seatMapSelectors, d.stepTimeout())
	if !ok {
		return nil, "seat map not found"
	}
	if err := seatMap.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(d.timeout()),
	}); err != nil {
		return nil, fmt.Sprintf("seat map did not render: %v", err)
	}

	var available playwright.Locator
	availableCount := 0
	for _, selector := range availableSeatSelectors {
		locator := page.Locator(selector)
		count, err := locator.Count()
		if err == nil && count > 0 {
			available = locator
			availableCount = count
			break
		}
	}

	if msg := checkSeatAvailability(availableCount, requested); msg != "" {
		return nil, msg
	}

	seats := make([]string, 0, requested)
	for i := 0; i < requested; i++ {
		seat := available.Nth(i)
		if err := seat.Click(playwright.LocatorClickOptions{Timeout: playwright.Float(d.timeout())}); err != nil {
			return nil, fmt.Sprintf("click seat %d: %v", i+1, err)
		}
		if label, err := seat.GetAttribute("aria-label"); err == nil && label != "" {
			seats = append(seats, label)
		} else {
			seats = append(seats, fmt.Sprintf("seat-%d", i+1))
		}
	}

	// verify the page agrees with what was clicked
	selected := 0
	for _, selector := range selectedSeatSelectors {
		count, err := page.Locator(selector).Count()
		if err == nil && count > 0 {
			selected = count
			break
		}
	}
	if selected != requested {
		return nil, fmt.Sprintf("selected %d seats but requested %d", selected, requested)
	}

	return seats, ""
}

// applyBenefit checks the loyalty free-reservation opt-in before
// checkout. Fallback chain: direct checkbox selector, then benefit text,
// then a secondary apply button. Missing all three is a failure, never a
// silent skip.
func (d *Driver) applyBenefit(page playwright.Page) string {
	if checkbox, ok := waitPresent(page, benefitCheckboxSelectors, optionalWait); ok {
		checked, err := checkbox.IsChecked()
		if err != nil {
			return fmt.Sprintf("read benefit checkbox: %v", err)
		}
		if !checked {
			if err := checkbox.Check(); err != nil {
				return fmt.Sprintf("check benefit opt-in: %v", err)
			}
		}
		return ""
	}

	if label, ok := firstVisible(page, benefitTextSelectors); ok {
		if err := label.Click(playwright.LocatorClickOptions{Timeout: playwright.Float(d.timeout())}); err == nil {
			return ""
		}
	}

	if button, ok := firstVisible(page, benefitButtonSelectors); ok {
		if err := button.Click(playwright.LocatorClickOptions{Timeout: playwright.Float(d.timeout())}); err != nil {
			return fmt.Sprintf("click benefit button: %v", err)
		}
		return ""
	}

	return "benefit opt-in control not found"
}

// checkout clicks through continue/confirm (both optional; some flows are
// already on the final step), waits for the confirmation indicator, and
// extracts the confirmation number plus best-effort booking details. A
// page that confirms without an extractable number is a failure: success
// means a confirmation number, full stop.
func (d *Driver) checkout(page playwright.Page) (string, *BookingDetails, string) {
	if cont, ok := waitVisible(page, continueSelectors, optionalWait); ok {
		if err := cont.Click(playwright.LocatorClickOptions{Timeout: playwright.Float(d.timeout())}); err != nil {
			return "", nil, fmt.Sprintf("click continue: %v", err)
		}
	}

	if confirm, ok := waitVisible(page, confirmSelectors, optionalWait); ok {
		if err := confirm.Click(playwright.LocatorClickOptions{Timeout: playwright.Float(d.timeout())}); err != nil {
			return "", nil, fmt.Sprintf("click confirm: %v", err)
		}
	}

	indicator, ok := waitPresent(page, confirmationIndicatorSelectors, d.stepTimeout())
	if !ok {
		return "", nil, "confirmation page not reached"
	}
	if err := indicator.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(d.timeout()),
	}); err != nil {
		return "", nil, fmt.Sprintf("confirmation did not appear: %v", err)
	}

	raw := ""
	if numberElem, ok := firstVisible(page, confirmationNumberSelectors); ok {
		if text, err := numberElem.TextContent(); err == nil {
			raw = text
		}
	}
	confirmation, msg := extractConfirmation(raw)
	if msg != "" {
		return "", nil, msg
	}

	return confirmation, d.scrapeDetails(page), ""
}

func (d *Driver) scrapeDetails(page playwright.Page) *BookingDetails {
	details := &BookingDetails{}

	if elem, ok := firstVisible(page, detailSelectors["movie"]); ok {
		if text, err := elem.TextContent(); err == nil {
			details.Movie = trimText(text)
		}
	}
	if elem, ok := firstVisible(page, detailSelectors["theater"]); ok {
		if text, err := elem.TextContent(); err == nil {
			details.Theater = trimText(text)
		}
	}
	if elem, ok := firstVisible(page, detailSelectors["showtime"]); ok {
		if text, err := elem.TextContent(); err == nil {
			details.Showtime = trimText(text)
		}
	}
	if elem, ok := firstVisible(page, detailSelectors["price"]); ok {
		if text, err := elem.TextContent(); err == nil {
			details.TotalPrice = parsePrice(text)
		}
	}

	return details
}
