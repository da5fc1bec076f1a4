package config

import (
	"strings"
	"testing"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("Expected default base URL %q, got %q", DefaultBaseURL, cfg.BaseURL)
	}
	if cfg.PageSize != DefaultPageSize {
		t.Errorf("Expected default page size %d, got %d", DefaultPageSize, cfg.PageSize)
	}
	if cfg.Environment != "Development" {
		t.Errorf("Expected default environment Development, got %q", cfg.Environment)
	}
	if len(cfg.OAuth2.Scopes) == 0 {
		t.Error("Expected default OAuth2 scopes to be set")
	}
}

func TestValidateAndUpdateSetting(t *testing.T) {
	tests := []struct {
		name    string
		setting string
		value   string
		wantErr bool
	}{
		{"valid base url", "baseUrl", "https://frontiers.example.org", false},
		{"base url without scheme", "baseUrl", "frontiers.example.org", true},
		{"base url garbage", "baseUrl", "://nope", true},
		{"valid page size", "pageSize", "25", false},
		{"zero page size", "pageSize", "0", true},
		{"negative page size", "pageSize", "-5", true},
		{"non-numeric page size", "pageSize", "lots", true},
		{"valid environment", "environment", "Production", false},
		{"empty environment", "environment", "", true},
		{"client id may be cleared", "githubClientId", "", false},
		{"unknown setting", "nope", "x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			err := cfg.ValidateAndUpdateSetting(tt.setting, tt.value)
			if tt.wantErr && err == nil {
				t.Errorf("Expected error for %s=%q", tt.setting, tt.value)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected error for %s=%q: %v", tt.setting, tt.value, err)
			}
		})
	}
}

func TestValidateAndUpdateSettingTrimsTrailingSlash(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.ValidateAndUpdateSetting("baseUrl", "https://frontiers.example.org/"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.BaseURL != "https://frontiers.example.org" {
		t.Errorf("Expected trailing slash to be trimmed, got %q", cfg.BaseURL)
	}
}

func TestGetSettingValue(t *testing.T) {
	cfg := NewConfig()
	cfg.BaseURL = "https://frontiers.example.org"
	cfg.PageSize = 25

	if v, err := cfg.GetSettingValue("baseUrl"); err != nil || v != "https://frontiers.example.org" {
		t.Errorf("baseUrl = %q, %v", v, err)
	}
	if v, err := cfg.GetSettingValue("pageSize"); err != nil || v != "25" {
		t.Errorf("pageSize = %q, %v", v, err)
	}
	if _, err := cfg.GetSettingValue("bogus"); err == nil {
		t.Error("Expected error for unknown setting")
	}
}

func TestClientIDMasking(t *testing.T) {
	cfg := NewConfig()

	if v, _ := cfg.GetSettingValue("githubClientId"); v != "(not set)" {
		t.Errorf("Expected (not set) for empty client id, got %q", v)
	}

	cfg.OAuth2.ClientID = "Iv1.abcdef0123456789"
	v, _ := cfg.GetSettingValue("githubClientId")
	if strings.Contains(v, "abcdef0123") {
		t.Errorf("Expected client id middle to be masked, got %q", v)
	}
	if !strings.HasPrefix(v, "Iv1.") || !strings.HasSuffix(v, "6789") {
		t.Errorf("Expected masked client id to keep edges, got %q", v)
	}

	cfg.OAuth2.ClientID = "short"
	if v, _ := cfg.GetSettingValue("githubClientId"); v != "***" {
		t.Errorf("Expected *** for short client id, got %q", v)
	}
}

func TestListAllSettings(t *testing.T) {
	cfg := NewConfig()
	settings := cfg.ListAllSettings()

	for _, key := range []string{"baseUrl", "pageSize", "environment", "githubClientId"} {
		if _, ok := settings[key]; !ok {
			t.Errorf("Expected setting %q in listing", key)
		}
	}
}
