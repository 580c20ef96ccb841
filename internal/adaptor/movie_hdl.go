package adaptor

import (
	"net/http"

	"amc-tools/internal/usecase"
	"amc-tools/pkg/utils"

	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// ListMovies handles POST /tools/list_movies. The body is an empty
// object; it is read and discarded so malformed JSON still fails fast.
func (h *MovieHandler) ListMovies(w http.ResponseWriter, r *http.Request) {
	var req struct{}
	if r.ContentLength != 0 && !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.service.ListMovies(r.Context())
	if err != nil {
		handleToolError(w, h.log, err, "list_movies")
		return
	}

	utils.ResponseSuccess(w, result)
}
