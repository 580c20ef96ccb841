package adaptor

import (
	"net/http"

	"amc-tools/internal/dto/request"
	"amc-tools/internal/usecase"
	"amc-tools/pkg/utils"

	"go.uber.org/zap"
)

type TheaterHandler struct {
	service usecase.TheaterService
	log     *zap.Logger
}

func NewTheaterHandler(service usecase.TheaterService, log *zap.Logger) *TheaterHandler {
	return &TheaterHandler{
		service: service,
		log:     log.With(zap.String("handler", "theater")),
	}
}

// ListTheaters handles POST /tools/list_theaters
func (h *TheaterHandler) ListTheaters(w http.ResponseWriter, r *http.Request) {
	var req request.ListTheatersRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.service.ListTheaters(r.Context(), &req)
	if err != nil {
		handleToolError(w, h.log, err, "list_theaters")
		return
	}

	utils.ResponseSuccess(w, result)
}
