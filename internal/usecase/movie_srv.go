package usecase

import (
	"context"

	"amc-tools/internal/amc"
	"amc-tools/internal/dto/response"

	"go.uber.org/zap"
)

type MovieService interface {
	ListMovies(ctx context.Context) (*response.ListMoviesResponse, error)
}

type movieService struct {
	api VendorGateway
	log *zap.Logger
}

func NewMovieService(api VendorGateway, log *zap.Logger) MovieService {
	return &movieService{
		api: api,
		log: log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) ListMovies(ctx context.Context) (*response.ListMoviesResponse, error) {
	movies, err := s.api.NowPlaying(ctx)
	if err != nil {
		s.log.Error("Failed to fetch now-playing movies", zap.Error(err))
		return nil, WrapVendorError(err)
	}

	if movies == nil {
		movies = []amc.Movie{}
	}

	s.log.Info("Movies listed", zap.Int("count", len(movies)))

	return &response.ListMoviesResponse{
		Movies:     movies,
		TotalCount: len(movies),
	}, nil
}
