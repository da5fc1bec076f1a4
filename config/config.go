package config

// Application configuration logic

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// Default values applied before file/env/flag overrides.
const (
	DefaultBaseURL  = "http://localhost:8080"
	DefaultPageSize = 50
)

// OAuth2Config holds the settings for the GitHub device authorization flow.
type OAuth2Config struct {
	ClientID string   `json:"clientId"`
	Scopes   []string `json:"scopes"`
}

// Config holds application settings
type Config struct {
	BaseURL     string       `json:"baseUrl"`
	PageSize    int          `json:"pageSize"`
	Environment string       `json:"environment"`
	OAuth2      OAuth2Config `json:"oauth2"`

	// Raw HTTP capture for diagnosing backend contract issues
	DebugHTTPRawEnable   bool   `json:"debugHttpRawEnable"`
	DebugHTTPRawFile     string `json:"debugHttpRawFile"`
	DebugHTTPRawMaxBytes int    `json:"debugHttpRawMaxBytes"`
}

// NewConfig returns a Config populated with defaults only.
func NewConfig() Config {
	return Config{
		BaseURL:     DefaultBaseURL,
		PageSize:    DefaultPageSize,
		Environment: "Development",
		OAuth2: OAuth2Config{
			Scopes: []string{"read:user", "user:email"},
		},
		DebugHTTPRawMaxBytes: 65536,
	}
}

// LoadConfig loads configuration using default search paths, env and os.Args flags.
func LoadConfig() Config {
	return NewConfigLoader().LoadWithArgs(os.Args[1:])
}

// LoadConfigWithArgs loads configuration with explicit command line arguments.
// Pass nil for "no flags", which is what non-UI callers normally want.
func LoadConfigWithArgs(args []string) Config {
	return NewConfigLoader().LoadWithArgs(args)
}

// applyEnvironmentVariables overlays FRONTIERS_* environment variables onto cfg.
func applyEnvironmentVariables(cfg *Config) {
	if val := strings.TrimSpace(os.Getenv("FRONTIERS_BASE_URL")); val != "" {
		cfg.BaseURL = val
	}
	if val := os.Getenv("FRONTIERS_PAGE_SIZE"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			cfg.PageSize = parsed
		}
		// Invalid values fall back to whatever was already configured
	}
	if val := os.Getenv("FRONTIERS_ENVIRONMENT"); val != "" {
		cfg.Environment = val
	}
	if val := strings.TrimSpace(os.Getenv("FRONTIERS_GITHUB_CLIENT_ID")); val != "" {
		cfg.OAuth2.ClientID = val
	}
	if val := strings.TrimSpace(os.Getenv("FRONTIERS_DEBUG_HTTP_RAW")); val != "" {
		cfg.DebugHTTPRawEnable = val == "1" || strings.EqualFold(val, "true") || strings.EqualFold(val, "yes")
	}
	if val := strings.TrimSpace(os.Getenv("FRONTIERS_DEBUG_HTTP_RAW_FILE")); val != "" {
		cfg.DebugHTTPRawFile = val
	}
	if val := os.Getenv("FRONTIERS_DEBUG_HTTP_RAW_MAX_BYTES"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed >= 0 {
			cfg.DebugHTTPRawMaxBytes = parsed
		}
	}
}

// mergeConfig overlays non-zero fields of src onto dst.
func mergeConfig(dst *Config, src *Config) {
	if src == nil {
		return
	}
	if strings.TrimSpace(src.BaseURL) != "" {
		dst.BaseURL = src.BaseURL
	}
	if src.PageSize > 0 {
		dst.PageSize = src.PageSize
	}
	if src.Environment != "" {
		dst.Environment = src.Environment
	}
	if src.OAuth2.ClientID != "" {
		dst.OAuth2.ClientID = src.OAuth2.ClientID
	}
	if len(src.OAuth2.Scopes) > 0 {
		dst.OAuth2.Scopes = src.OAuth2.Scopes
	}
	if src.DebugHTTPRawEnable {
		dst.DebugHTTPRawEnable = true
	}
	if src.DebugHTTPRawFile != "" {
		dst.DebugHTTPRawFile = src.DebugHTTPRawFile
	}
	if src.DebugHTTPRawMaxBytes > 0 {
		dst.DebugHTTPRawMaxBytes = src.DebugHTTPRawMaxBytes
	}
}

// ValidateAndUpdateSetting validates and updates a configuration setting
func (c *Config) ValidateAndUpdateSetting(name, value string) error {
	switch name {
	case "baseUrl":
		u, err := url.Parse(value)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("baseUrl must be an absolute http(s) URL, got: %s", value)
		}
		c.BaseURL = strings.TrimRight(value, "/")
	case "pageSize":
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed <= 0 {
			return fmt.Errorf("pageSize must be a positive integer, got: %s", value)
		}
		c.PageSize = parsed
	case "environment":
		if value == "" {
			return fmt.Errorf("environment cannot be empty")
		}
		c.Environment = value
	case "githubClientId":
		// Allow empty for clearing the client id
		c.OAuth2.ClientID = value
	default:
		return fmt.Errorf("unknown setting: %s", name)
	}
	return nil
}

// GetSettingValue returns the current value of a setting as a string
func (c *Config) GetSettingValue(name string) (string, error) {
	switch name {
	case "baseUrl":
		return c.BaseURL, nil
	case "pageSize":
		return strconv.Itoa(c.PageSize), nil
	case "environment":
		return c.Environment, nil
	case "githubClientId":
		return maskClientID(c.OAuth2.ClientID), nil
	default:
		return "", fmt.Errorf("unknown setting: %s", name)
	}
}

// ListAllSettings returns a map of all settings and their current values
func (c *Config) ListAllSettings() map[string]string {
	return map[string]string{
		"baseUrl":        c.BaseURL,
		"pageSize":       strconv.Itoa(c.PageSize),
		"environment":    c.Environment,
		"githubClientId": maskClientID(c.OAuth2.ClientID),
	}
}

// maskClientID hides the middle of the client id for display.
func maskClientID(id string) string {
	if id == "" {
		return "(not set)"
	}
	if len(id) > 8 {
		return id[:4] + "..." + id[len(id)-4:]
	}
	return "***"
}
