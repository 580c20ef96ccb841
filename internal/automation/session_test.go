package automation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_PutOverwritesPerEmail(t *testing.T) {
	store := NewSessionStore()

	store.Put(Session{ID: "a", Email: "alice@example.com", LastLogin: time.Now(), Active: true})
	store.Put(Session{ID: "b", Email: "alice@example.com", LastLogin: time.Now(), Active: true})
	store.Put(Session{ID: "c", Email: "bob@example.com", LastLogin: time.Now(), Active: true})

	// repeat bookings overwrite, they do not accumulate
	assert.Len(t, store.List(), 2)

	session, ok := store.Get("alice@example.com")
	require.True(t, ok)
	assert.Equal(t, "b", session.ID)
}

func TestSessionStore_GetMissing(t *testing.T) {
	store := NewSessionStore()

	_, ok := store.Get("nobody@example.com")
	assert.False(t, ok)
}
