package tui

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{"cgaucho@ucsb.edu", "instructor1@example.com"}
	for _, s := range valid {
		if err := validateEmail(s); err != nil {
			t.Errorf("Expected %q valid, got %v", s, err)
		}
	}

	invalid := []string{"", "not-an-email", "missing@tld@twice", "@example.com"}
	for _, s := range invalid {
		if err := validateEmail(s); err == nil {
			t.Errorf("Expected %q rejected", s)
		}
	}
}

func TestValidateRequired(t *testing.T) {
	if err := validateRequired("x"); err != nil {
		t.Errorf("Expected non-empty value valid, got %v", err)
	}
	if err := validateRequired(""); err == nil {
		t.Error("Expected empty value rejected")
	}
}

func TestValidateDate(t *testing.T) {
	if err := validateDate("2025-09-25"); err != nil {
		t.Errorf("Expected ISO date valid, got %v", err)
	}
	for _, s := range []string{"", "09/25/2025", "2025-13-40"} {
		if err := validateDate(s); err == nil {
			t.Errorf("Expected %q rejected", s)
		}
	}
}
