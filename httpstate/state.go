package httpstate

import (
	"net/http"
	"strings"
	"sync"
)

// RefreshFunc returns the latest response headers as a mapping from
// lower-cased header name to value.
type RefreshFunc func() map[string]string

// State is a mutable snapshot of the most recent HTTP exchange. Headers
// can change between requests, so readers refresh before trusting the
// snapshot.
type State struct {
	mu      sync.RWMutex
	headers map[string]string
	cookie  string
	refresh RefreshFunc
}

// NewState creates an empty snapshot.
func NewState() *State {
	return &State{headers: make(map[string]string)}
}

var defaultState = NewState()

// Default returns the process-wide snapshot shared by providers that are
// not given an explicit one.
func Default() *State {
	return defaultState
}

// SetRefreshFunc registers the function that produces the latest response
// headers. Refresh pulls through it on demand.
func (s *State) SetRefreshFunc(fn RefreshFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refresh = fn
}

// Refresh re-pulls the response headers through the registered refresh
// function. Without one, the last captured snapshot stays in place.
func (s *State) Refresh() {
	s.mu.RLock()
	fn := s.refresh
	s.mu.RUnlock()
	if fn == nil {
		return
	}
	s.SetHeaders(fn())
}

// SetHeaders replaces the response-header snapshot. Names are stored
// lower-cased.
func (s *State) SetHeaders(headers map[string]string) {
	normalized := make(map[string]string, len(headers))
	for name, value := range headers {
		normalized[strings.ToLower(name)] = value
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.headers = normalized
}

// CaptureHeaders replaces the snapshot from an http.Header. Multiple
// values for the same name are joined with ", ".
func (s *State) CaptureHeaders(h http.Header) {
	normalized := make(map[string]string, len(h))
	for name, values := range h {
		normalized[strings.ToLower(name)] = strings.Join(values, ", ")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.headers = normalized
}

// Header returns the snapshot value for name (case-insensitive), or ""
// when the header is absent.
func (s *State) Header(name string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.headers[strings.ToLower(name)]
}

// SetCookieHeader records the raw request Cookie header.
func (s *State) SetCookieHeader(raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cookie = raw
}

// CookieHeader returns the most recently recorded request Cookie header.
func (s *State) CookieHeader() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cookie
}
