package adaptor

import (
	"net/http"

	"amc-tools/internal/dto/request"
	"amc-tools/internal/usecase"
	"amc-tools/pkg/utils"

	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// ReserveTickets handles POST /tools/reserve_tickets
func (h *BookingHandler) ReserveTickets(w http.ResponseWriter, r *http.Request) {
	var req request.ReserveTicketsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.service.Reserve(r.Context(), &req)
	if err != nil {
		handleToolError(w, h.log, err, "reserve_tickets")
		return
	}

	utils.ResponseSuccess(w, result)
}

// BookTickets handles POST /tools/book_tickets. A failed booking attempt
// is still the tool's output (success=false with an error message), not
// an HTTP error.
func (h *BookingHandler) BookTickets(w http.ResponseWriter, r *http.Request) {
	var req request.BookTicketsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.service.Book(r.Context(), &req)
	if err != nil {
		handleToolError(w, h.log, err, "book_tickets")
		return
	}

	utils.ResponseSuccess(w, result)
}

// Sessions handles GET /sessions, a diagnostic listing of in-memory
// login sessions from this process run.
func (h *BookingHandler) Sessions(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, map[string]any{
		"sessions": h.service.Sessions(),
	})
}
