package tui

import "testing"

func TestSessionSetGet(t *testing.T) {
	s := NewSession()

	if _, ok := s.Get(SessionRedirect); ok {
		t.Error("Expected miss on empty session")
	}

	s.Set(SessionRedirect, "/admin/courses")
	v, ok := s.Get(SessionRedirect)
	if !ok || v != "/admin/courses" {
		t.Errorf("Expected stored redirect, got %q (%t)", v, ok)
	}

	// Get does not consume
	if _, ok := s.Get(SessionRedirect); !ok {
		t.Error("Expected value still present after Get")
	}
}

func TestSessionTakeConsumes(t *testing.T) {
	s := NewSession()
	s.Set(SessionOnboardingSchool, "ucsb")

	v, ok := s.Take(SessionOnboardingSchool)
	if !ok || v != "ucsb" {
		t.Errorf("Expected take to return stored value, got %q (%t)", v, ok)
	}
	if _, ok := s.Take(SessionOnboardingSchool); ok {
		t.Error("Expected value consumed by first Take")
	}
}

func TestSessionOverwrite(t *testing.T) {
	s := NewSession()
	s.Set(SessionOnboardingProvider, "github")
	s.Set(SessionOnboardingProvider, "google")

	v, _ := s.Get(SessionOnboardingProvider)
	if v != "google" {
		t.Errorf("Expected overwrite, got %q", v)
	}
}

func TestSessionClear(t *testing.T) {
	s := NewSession()
	s.Set(SessionRedirect, "/")
	s.Clear()
	if _, ok := s.Get(SessionRedirect); ok {
		t.Error("Expected empty session after Clear")
	}
}
