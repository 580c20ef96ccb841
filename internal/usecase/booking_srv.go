package usecase

import (
	"context"

	"amc-tools/internal/automation"
	"amc-tools/internal/dto/request"
	"amc-tools/internal/dto/response"
	"amc-tools/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	Book(ctx context.Context, req *request.BookTicketsRequest) (*automation.BookingResult, error)
	Reserve(ctx context.Context, req *request.ReserveTicketsRequest) (*response.ReservationResponse, error)
	Sessions() []automation.Session
}

type bookingService struct {
	booker   TicketBooker
	sessions *automation.SessionStore
	log      *zap.Logger
}

func NewBookingService(booker TicketBooker, sessions *automation.SessionStore, log *zap.Logger) BookingService {
	return &bookingService{
		booker:   booker,
		sessions: sessions,
		log:      log.With(zap.String("service", "booking")),
	}
}

// Book drives the browser purchase flow. Failed attempts come back as a
// BookingResult with Success=false and are returned to the caller as the
// tool's output, not as an error; the driver never lets a step failure
// escape.
func (s *bookingService) Book(ctx context.Context, req *request.BookTicketsRequest) (*automation.BookingResult, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Book tickets validation failed", zap.Any("errors", errs))
		return nil, NewValidationError(errs)
	}

	driverReq := automation.BookingRequest{
		Email:      req.Email,
		Password:   req.Password,
		TheaterID:  req.TheaterID,
		ShowtimeID: req.ShowtimeID,
		SeatCount:  req.SeatCount,
		UseBenefit: req.UseBenefit,
	}
	if req.SeatPreferences != nil {
		driverReq.SeatPreferences = &automation.SeatPreferences{
			Row:      req.SeatPreferences.Row,
			Position: req.SeatPreferences.Position,
		}
	}

	result := s.booker.Book(ctx, driverReq)

	if result.Success {
		s.log.Info("Booking succeeded",
			zap.String("showtime_id", req.ShowtimeID),
			zap.Stringp("confirmation", result.ConfirmationNumber),
		)
	} else {
		s.log.Warn("Booking failed",
			zap.String("showtime_id", req.ShowtimeID),
			zap.Stringp("reason", result.ErrorMessage),
		)
	}

	return &result, nil
}

// Reserve is an intentional stub until a commerce-capable vendor
// credential exists: it validates input and returns a synthetic pending
// reservation. It never touches the vendor API or the browser driver.
func (s *bookingService) Reserve(ctx context.Context, req *request.ReserveTicketsRequest) (*response.ReservationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Reserve tickets validation failed", zap.Any("errors", errs))
		return nil, NewValidationError(errs)
	}

	reservationID := utils.GenerateReservationID()

	s.log.Info("Stub reservation created",
		zap.String("reservation_id", reservationID),
		zap.String("showtime_id", req.ShowtimeID),
		zap.Int("quantity", req.Quantity),
	)

	return &response.ReservationResponse{
		ReservationID: reservationID,
		Status:        "pending",
		Message:       "Reservation recorded locally; ticketing is not yet wired to the vendor. Use book_tickets for a real purchase.",
	}, nil
}

// Sessions lists the in-memory login sessions for diagnostics.
func (s *bookingService) Sessions() []automation.Session {
	return s.sessions.List()
}
