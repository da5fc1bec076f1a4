package tui

// Cross-page transient state, scoped to one application run

import "sync"

// Session key names. Each key is written by one page and read by exactly one
// later page.
const (
	SessionRedirect           = "redirect"
	SessionOnboardingSchool   = "frontiers.onboarding.school"
	SessionOnboardingProvider = "frontiers.onboarding.provider"
)

// Session holds small string values that outlive a single page but not the
// process, the way a login page stashes a redirect target for the page that
// runs after authentication completes.
type Session struct {
	mu     sync.Mutex
	values map[string]string
}

// NewSession creates an empty session store.
func NewSession() *Session {
	return &Session{values: make(map[string]string)}
}

// Set stores or overwrites a value.
func (s *Session) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Get returns the value for key, and whether it was present.
func (s *Session) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

// Take returns the value for key and removes it, so one consumer reads it
// exactly once.
func (s *Session) Take(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	if ok {
		delete(s.values, key)
	}
	return v, ok
}

// Clear removes every value.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = make(map[string]string)
}
