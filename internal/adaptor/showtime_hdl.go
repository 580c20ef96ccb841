package adaptor

import (
	"net/http"

	"amc-tools/internal/dto/request"
	"amc-tools/internal/usecase"
	"amc-tools/pkg/utils"

	"go.uber.org/zap"
)

type ShowtimeHandler struct {
	service usecase.ShowtimeService
	log     *zap.Logger
}

func NewShowtimeHandler(service usecase.ShowtimeService, log *zap.Logger) *ShowtimeHandler {
	return &ShowtimeHandler{
		service: service,
		log:     log.With(zap.String("handler", "showtime")),
	}
}

// ListShowtimes handles POST /tools/list_showtimes
func (h *ShowtimeHandler) ListShowtimes(w http.ResponseWriter, r *http.Request) {
	var req request.ListShowtimesRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.service.ListShowtimes(r.Context(), &req)
	if err != nil {
		handleToolError(w, h.log, err, "list_showtimes")
		return
	}

	utils.ResponseSuccess(w, result)
}
