package usecase

import (
	"errors"
	"fmt"

	"amc-tools/internal/amc"
	"amc-tools/pkg/utils"
)

// Error codes returned to callers. Stable contract: callers branch on the
// code, the message is best-effort human text.
const (
	CodeValidation  = "VALIDATION_ERROR"
	CodeAMCAPI      = "AMC_API_ERROR"
	CodeBooking     = "BOOKING_ERROR"
	CodeReservation = "RESERVATION_ERROR"
	CodeUnknown     = "UNKNOWN_ERROR"
)

// ToolError is the single error shape tools surface. The original
// adapter/driver message is retained in Details.
type ToolError struct {
	Code    string
	Message string
	Details any
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(fieldErrors map[string]string) *ToolError {
	return &ToolError{
		Code:    CodeValidation,
		Message: "Invalid input: " + utils.FormatValidationErrors(fieldErrors),
		Details: fieldErrors,
	}
}

// WrapVendorError converts an adapter failure into the AMC_API_ERROR
// kind, keeping the vendor status and message as detail.
func WrapVendorError(err error) *ToolError {
	var apiErr *amc.APIError
	if errors.As(err, &apiErr) {
		return &ToolError{
			Code:    CodeAMCAPI,
			Message: fmt.Sprintf("AMC API request failed with status %d", apiErr.StatusCode),
			Details: apiErr.Message,
		}
	}
	return &ToolError{
		Code:    CodeAMCAPI,
		Message: "AMC API request failed",
		Details: err.Error(),
	}
}
