package adaptor

import (
	"net/http"

	"amc-tools/internal/usecase"
	"amc-tools/pkg/utils"

	"go.uber.org/zap"
)

type SystemHandler struct {
	api     usecase.VendorGateway
	booking usecase.BookingService
	log     *zap.Logger
}

func NewSystemHandler(api usecase.VendorGateway, booking usecase.BookingService, log *zap.Logger) *SystemHandler {
	return &SystemHandler{
		api:     api,
		booking: booking,
		log:     log.With(zap.String("handler", "system")),
	}
}

// Health handles GET /health
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, map[string]string{"status": "ok"})
}

// ValidateKey handles GET /validate with a live minimal vendor call.
func (h *SystemHandler) ValidateKey(w http.ResponseWriter, r *http.Request) {
	if err := h.api.ValidateKey(r.Context()); err != nil {
		h.log.Warn("Vendor key validation failed", zap.Error(err))
		utils.ResponseSuccess(w, map[string]any{
			"valid":   false,
			"message": err.Error(),
		})
		return
	}

	utils.ResponseSuccess(w, map[string]any{"valid": true})
}

// Manifest handles GET /manifest.json
func (h *SystemHandler) Manifest(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, usecase.BuildManifest())
}
