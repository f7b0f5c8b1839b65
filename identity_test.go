package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitorIDStableAcrossCalls(t *testing.T) {
	store := memStore{}

	first := getVisitorID(store)
	second := getVisitorID(store)

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, "user_"))
}

func TestVisitorIDRegeneratedAfterStoreCleared(t *testing.T) {
	store := memStore{}
	first := getVisitorID(store)

	delete(store, visitorIDKey)

	second := getVisitorID(store)
	assert.NotEqual(t, first, second)
}

func TestSessionIDScopedToStore(t *testing.T) {
	store := memStore{}
	id := getSessionID(store)
	assert.True(t, strings.HasPrefix(id, "session_"))
	assert.Equal(t, id, getSessionID(store))

	// A fresh session store means a fresh session identity.
	other := getSessionID(memStore{})
	assert.NotEqual(t, id, other)
}

func TestVisitorAndSessionKeysIndependent(t *testing.T) {
	store := memStore{}
	visitor := getVisitorID(store)
	session := getSessionID(store)

	assert.NotEqual(t, visitor, session)
	assert.Equal(t, visitor, getVisitorID(store))
	assert.Equal(t, session, getSessionID(store))
}

func TestNewIDShape(t *testing.T) {
	id := newID("user")
	parts := strings.SplitN(id, "_", 3)
	require.Len(t, parts, 3)
	assert.Equal(t, "user", parts[0])
	assert.Len(t, parts[2], 9)
}
