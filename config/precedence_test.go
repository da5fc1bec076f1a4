package config

import (
	"testing"
)

// Precedence: defaults < config file < environment < flags.

func newLoaderWithFile(t *testing.T, path, contents string) (*ConfigLoader, *MemFileSystem) {
	t.Helper()
	memFS := NewMemFileSystem()
	if contents != "" {
		if err := memFS.WriteFile(path, []byte(contents), 0o644); err != nil {
			t.Fatalf("failed to seed config file: %v", err)
		}
	}
	return NewTestConfigLoader(memFS, []string{path}), memFS
}

func TestDefaultsWhenNothingConfigured(t *testing.T) {
	loader, _ := newLoaderWithFile(t, "/cfg/config.json", "")

	cfg := loader.LoadWithArgs(nil)

	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("Expected default base URL, got %q", cfg.BaseURL)
	}
	if cfg.PageSize != DefaultPageSize {
		t.Errorf("Expected default page size, got %d", cfg.PageSize)
	}
}

func TestFileOverridesDefaults(t *testing.T) {
	loader, _ := newLoaderWithFile(t, "/cfg/config.json",
		`{"baseUrl":"https://frontiers.example.org","pageSize":10}`)

	cfg := loader.LoadWithArgs(nil)

	if cfg.BaseURL != "https://frontiers.example.org" {
		t.Errorf("Expected file base URL, got %q", cfg.BaseURL)
	}
	if cfg.PageSize != 10 {
		t.Errorf("Expected file page size 10, got %d", cfg.PageSize)
	}
	// Untouched fields keep defaults
	if cfg.Environment != "Development" {
		t.Errorf("Expected default environment, got %q", cfg.Environment)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	loader, _ := newLoaderWithFile(t, "/cfg/config.json",
		`{"baseUrl":"https://file.example.org","pageSize":10}`)

	t.Setenv("FRONTIERS_BASE_URL", "https://env.example.org")
	t.Setenv("FRONTIERS_PAGE_SIZE", "20")

	cfg := loader.LoadWithArgs(nil)

	if cfg.BaseURL != "https://env.example.org" {
		t.Errorf("Expected env base URL to win over file, got %q", cfg.BaseURL)
	}
	if cfg.PageSize != 20 {
		t.Errorf("Expected env page size 20, got %d", cfg.PageSize)
	}
}

func TestFlagsOverrideEverything(t *testing.T) {
	loader, _ := newLoaderWithFile(t, "/cfg/config.json",
		`{"baseUrl":"https://file.example.org"}`)
	t.Setenv("FRONTIERS_BASE_URL", "https://env.example.org")

	flagURL := "https://flag.example.org"
	flagSize := 5
	loader.flagParser.(*MockFlagParser).SetFlags(&ParsedFlags{
		baseURL:  &flagURL,
		pageSize: &flagSize,
	})

	cfg := loader.LoadWithArgs(nil)

	if cfg.BaseURL != "https://flag.example.org" {
		t.Errorf("Expected flag base URL to win, got %q", cfg.BaseURL)
	}
	if cfg.PageSize != 5 {
		t.Errorf("Expected flag page size 5, got %d", cfg.PageSize)
	}
}

func TestInvalidEnvValuesIgnored(t *testing.T) {
	loader, _ := newLoaderWithFile(t, "/cfg/config.json", "")

	t.Setenv("FRONTIERS_PAGE_SIZE", "not-a-number")

	cfg := loader.LoadWithArgs(nil)

	if cfg.PageSize != DefaultPageSize {
		t.Errorf("Expected default page size on invalid env value, got %d", cfg.PageSize)
	}
}

func TestMalformedConfigFileFallsBackToDefaults(t *testing.T) {
	loader, _ := newLoaderWithFile(t, "/cfg/config.json", `{not json`)

	cfg := loader.LoadWithArgs(nil)

	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("Expected defaults when file is malformed, got %q", cfg.BaseURL)
	}
}

func TestExplicitConfigFlagWins(t *testing.T) {
	memFS := NewMemFileSystem()
	if err := memFS.WriteFile("/search/config.json", []byte(`{"pageSize":10}`), 0o644); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if err := memFS.WriteFile("/explicit/other.json", []byte(`{"pageSize":30}`), 0o644); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	loader := NewTestConfigLoader(memFS, []string{"/search/config.json"})
	explicit := "/explicit/other.json"
	loader.flagParser.(*MockFlagParser).SetFlags(&ParsedFlags{configFile: &explicit})

	cfg := loader.LoadWithArgs(nil)

	if cfg.PageSize != 30 {
		t.Errorf("Expected explicit config file to be used, got page size %d", cfg.PageSize)
	}
}

func TestEnvDebugCaptureToggle(t *testing.T) {
	loader, _ := newLoaderWithFile(t, "/cfg/config.json", "")

	t.Setenv("FRONTIERS_DEBUG_HTTP_RAW", "true")
	t.Setenv("FRONTIERS_DEBUG_HTTP_RAW_FILE", "/tmp/raw.yaml")

	cfg := loader.LoadWithArgs(nil)

	if !cfg.DebugHTTPRawEnable {
		t.Error("Expected debug capture to be enabled from env")
	}
	if cfg.DebugHTTPRawFile != "/tmp/raw.yaml" {
		t.Errorf("Expected capture file path from env, got %q", cfg.DebugHTTPRawFile)
	}
}
