package automation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPollUntil_ImmediateSuccess(t *testing.T) {
	calls := 0
	ok := pollUntil(time.Second, func() bool {
		calls++
		return true
	})
	assert.True(t, ok)
	assert.Equal(t, 1, calls)
}

func TestPollUntil_RetriesUntilSuccess(t *testing.T) {
	calls := 0
	ok := pollUntil(5*time.Second, func() bool {
		calls++
		return calls >= 3
	})
	assert.True(t, ok)
	assert.Equal(t, 3, calls)
}

func TestPollUntil_TimesOut(t *testing.T) {
	calls := 0
	ok := pollUntil(pollInterval*2, func() bool {
		calls++
		return false
	})
	assert.False(t, ok)
	assert.GreaterOrEqual(t, calls, 2)
}

func TestPollUntil_ZeroTimeoutScansOnce(t *testing.T) {
	calls := 0
	ok := pollUntil(0, func() bool {
		calls++
		return false
	})
	assert.False(t, ok)
	assert.Equal(t, 1, calls)
}
