// identity.go - Visitor and session identity resolution
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	visitorIDKey = "portfolio_user_id"
	sessionIDKey = "portfolio_session_id"

	visitorCookieMaxAge = 365 * 24 * 3600
	sessionCookieMaxAge = 0 // session-scoped, dropped when the browser closes
)

// Store is a small key-value store for identity values. Identity
// resolution is the only code that touches it, so a visitor id is never
// created from two places. The HTTP layer backs it with cookies; tests
// use an in-memory map.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// getVisitorID returns the durable visitor identity, creating and
// persisting one on first visit. Repeated calls against the same store
// return the same value.
func getVisitorID(s Store) string {
	return readOrCreateID(s, visitorIDKey, "user")
}

// getSessionID returns the identity for the current browsing session,
// synthesizing a new one when the session store is empty (new tab or
// expired session).
func getSessionID(s Store) string {
	return readOrCreateID(s, sessionIDKey, "session")
}

func readOrCreateID(s Store, key, prefix string) string {
	if id, ok := s.Get(key); ok && id != "" {
		return id
	}
	id := newID(prefix)
	s.Set(key, id)
	return id
}

// newID builds an opaque identifier: prefix, creation timestamp, random
// suffix. The timestamp keeps ids roughly sortable in the events table.
func newID(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), suffix)
}

// cookieStore adapts a gin request/response pair to the Store interface.
// Writes are buffered into Set-Cookie headers on the response and also
// kept locally so a read in the same request sees the new value.
type cookieStore struct {
	c      *gin.Context
	maxAge int
	staged map[string]string
}

func newCookieStore(c *gin.Context, maxAge int) *cookieStore {
	return &cookieStore{c: c, maxAge: maxAge, staged: make(map[string]string)}
}

func (s *cookieStore) Get(key string) (string, bool) {
	if v, ok := s.staged[key]; ok {
		return v, true
	}
	v, err := s.c.Cookie(key)
	if err != nil {
		return "", false
	}
	return v, true
}

func (s *cookieStore) Set(key, value string) {
	s.staged[key] = value
	s.c.SetCookie(key, value, s.maxAge, "/", "", false, true)
}

// memStore is the in-memory Store used by tests.
type memStore map[string]string

func (m memStore) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m memStore) Set(key, value string) { m[key] = value }
