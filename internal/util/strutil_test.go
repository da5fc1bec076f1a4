package util

import "testing"

func TestFirstNonEmpty(t *testing.T) {
	if got := FirstNonEmpty("value", "fallback"); got != "value" {
		t.Errorf("Expected value, got %q", got)
	}
	if got := FirstNonEmpty("   ", "fallback"); got != "fallback" {
		t.Errorf("Expected fallback for whitespace, got %q", got)
	}
	if got := FirstNonEmpty("", "fallback"); got != "fallback" {
		t.Errorf("Expected fallback for empty, got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 50); got != "short" {
		t.Errorf("Expected unchanged string, got %q", got)
	}
	if got := Truncate("abcdefghij", 8); got != "abcde..." {
		t.Errorf("Expected abcde..., got %q", got)
	}
	if got := Truncate("abcdefghij", 3); got != "abcdefghij" {
		t.Errorf("Expected unchanged string for tiny max, got %q", got)
	}
}
