package usecase

import (
	"errors"
	"fmt"
	"testing"

	"amc-tools/internal/amc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidationError_MessageNamesFields(t *testing.T) {
	toolErr := NewValidationError(map[string]string{
		"Zip": "Must be a 5-digit ZIP code (12345 or 12345-6789)",
	})

	assert.Equal(t, CodeValidation, toolErr.Code)
	assert.Contains(t, toolErr.Message, "Invalid input: ")
	assert.Contains(t, toolErr.Message, "Zip:")
	assert.Contains(t, toolErr.Message, "5-digit ZIP code")
}

func TestWrapVendorError_APIError(t *testing.T) {
	wrapped := fmt.Errorf("list theaters: %w", &amc.APIError{StatusCode: 503, Message: "maintenance"})

	toolErr := WrapVendorError(wrapped)
	assert.Equal(t, CodeAMCAPI, toolErr.Code)
	assert.Contains(t, toolErr.Message, "503")
	assert.Equal(t, "maintenance", toolErr.Details)
}

func TestWrapVendorError_TransportError(t *testing.T) {
	toolErr := WrapVendorError(errors.New("dial tcp: connection refused"))

	assert.Equal(t, CodeAMCAPI, toolErr.Code)
	assert.Equal(t, "AMC API request failed", toolErr.Message)
	require.NotNil(t, toolErr.Details)
}
