package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"amc-tools/internal/usecase"
	"amc-tools/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Theater  *TheaterHandler
	Movie    *MovieHandler
	Showtime *ShowtimeHandler
	Booking  *BookingHandler
	System   *SystemHandler
}

func NewHandler(service *usecase.Service, api usecase.VendorGateway, log *zap.Logger) *Handler {
	return &Handler{
		Theater:  NewTheaterHandler(service.Theater, log),
		Movie:    NewMovieHandler(service.Movie, log),
		Showtime: NewShowtimeHandler(service.Showtime, log),
		Booking:  NewBookingHandler(service.Booking, log),
		System:   NewSystemHandler(api, service.Booking, log),
	}
}

// decodeJSON reads a tool request body. A malformed body (including
// non-integer numbers aimed at integer fields) is a validation error.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, usecase.CodeValidation, "Invalid request body", err.Error())
		return false
	}
	return true
}

// handleToolError maps service failures onto the wire contract:
// validation and business errors are 400 with their stable code,
// anything unrecognized is a 500 UNKNOWN_ERROR.
func handleToolError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var toolErr *usecase.ToolError
	if errors.As(err, &toolErr) {
		log.Warn("Tool operation failed",
			zap.String("operation", operation),
			zap.String("code", toolErr.Code),
			zap.String("message", toolErr.Message),
		)
		utils.ResponseBadRequest(w, toolErr.Code, toolErr.Message, toolErr.Details)
		return
	}

	log.Error("Unexpected failure",
		zap.String("operation", operation),
		zap.Error(err),
	)
	utils.ResponseInternalError(w, usecase.CodeUnknown, "Internal server error")
}
