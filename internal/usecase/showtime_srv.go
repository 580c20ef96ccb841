package usecase

import (
	"context"

	"amc-tools/internal/amc"
	"amc-tools/internal/dto/request"
	"amc-tools/internal/dto/response"
	"amc-tools/pkg/utils"

	"go.uber.org/zap"
)

type ShowtimeService interface {
	ListShowtimes(ctx context.Context, req *request.ListShowtimesRequest) (*response.ListShowtimesResponse, error)
}

type showtimeService struct {
	api VendorGateway
	log *zap.Logger
}

func NewShowtimeService(api VendorGateway, log *zap.Logger) ShowtimeService {
	return &showtimeService{
		api: api,
		log: log.With(zap.String("service", "showtime")),
	}
}

func (s *showtimeService) ListShowtimes(ctx context.Context, req *request.ListShowtimesRequest) (*response.ListShowtimesResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("List showtimes validation failed", zap.Any("errors", errs))
		return nil, NewValidationError(errs)
	}

	// the two reads are independent, so they run concurrently
	type showtimesResult struct {
		showtimes []amc.Showtime
		err       error
	}
	type theaterResult struct {
		theater *amc.Theater
		err     error
	}

	showtimesCh := make(chan showtimesResult, 1)
	theaterCh := make(chan theaterResult, 1)

	go func() {
		showtimes, err := s.api.Showtimes(ctx, req.TheaterID, req.Date)
		showtimesCh <- showtimesResult{showtimes, err}
	}()
	go func() {
		theater, err := s.api.TheaterByID(ctx, req.TheaterID)
		theaterCh <- theaterResult{theater, err}
	}()

	st := <-showtimesCh
	th := <-theaterCh

	if st.err != nil {
		s.log.Error("Failed to fetch showtimes",
			zap.Error(st.err),
			zap.String("theater_id", req.TheaterID),
			zap.String("date", req.Date),
		)
		return nil, WrapVendorError(st.err)
	}
	if th.err != nil {
		s.log.Error("Failed to fetch theater",
			zap.Error(th.err),
			zap.String("theater_id", req.TheaterID),
		)
		return nil, WrapVendorError(th.err)
	}
	if th.theater == nil {
		return nil, &ToolError{
			Code:    CodeAMCAPI,
			Message: "Theater not found",
			Details: req.TheaterID,
		}
	}

	showtimes := st.showtimes
	if showtimes == nil {
		showtimes = []amc.Showtime{}
	}

	s.log.Info("Showtimes listed",
		zap.String("theater_id", req.TheaterID),
		zap.String("date", req.Date),
		zap.Int("count", len(showtimes)),
	)

	return &response.ListShowtimesResponse{
		Showtimes:  showtimes,
		TotalCount: len(showtimes),
		Theater:    *th.theater,
	}, nil
}
