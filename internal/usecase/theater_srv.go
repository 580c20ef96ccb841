package usecase

import (
	"context"

	"amc-tools/internal/amc"
	"amc-tools/internal/dto/request"
	"amc-tools/internal/dto/response"
	"amc-tools/pkg/utils"

	"go.uber.org/zap"
)

type TheaterService interface {
	ListTheaters(ctx context.Context, req *request.ListTheatersRequest) (*response.ListTheatersResponse, error)
}

type theaterService struct {
	api VendorGateway
	log *zap.Logger
}

func NewTheaterService(api VendorGateway, log *zap.Logger) TheaterService {
	return &theaterService{
		api: api,
		log: log.With(zap.String("service", "theater")),
	}
}

func (s *theaterService) ListTheaters(ctx context.Context, req *request.ListTheatersRequest) (*response.ListTheatersResponse, error) {
	// validation happens before any network call
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("List theaters validation failed", zap.Any("errors", errs))
		return nil, NewValidationError(errs)
	}

	theaters, err := s.api.TheatersByZip(ctx, req.Zip, req.Radius)
	if err != nil {
		s.log.Error("Failed to fetch theaters", zap.Error(err), zap.String("zip", req.Zip))
		return nil, WrapVendorError(err)
	}

	if theaters == nil {
		theaters = []amc.Theater{}
	}

	s.log.Info("Theaters listed", zap.String("zip", req.Zip), zap.Int("count", len(theaters)))

	return &response.ListTheatersResponse{
		Theaters:   theaters,
		TotalCount: len(theaters),
	}, nil
}
