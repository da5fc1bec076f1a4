package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"path/filepath"
)

// Flag names shared between parser and loader.
const (
	flagBaseURL     = "baseUrl"
	flagPageSize    = "pageSize"
	flagEnvironment = "environment"
	flagClientID    = "githubClientId"
)

// FlagParser abstracts command line flag parsing for testability
type FlagParser interface {
	Parse(args []string) *ParsedFlags
}

// ParsedFlags represents parsed command line flags
type ParsedFlags struct {
	configFile  *string
	baseURL     *string
	pageSize    *int
	environment *string
	clientID    *string
}

// OsFlagParser implements FlagParser using the real flag package
type OsFlagParser struct{}

// Parse implements FlagParser.Parse using the real flag package
func (fp *OsFlagParser) Parse(args []string) *ParsedFlags {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)

	configFile := fs.String("config", "", "Configuration file path")
	baseURL := fs.String(flagBaseURL, "", "Frontiers backend base URL")
	pageSize := fs.Int(flagPageSize, 0, "Rows requested per page")
	environment := fs.String(flagEnvironment, "", "Environment name")
	clientID := fs.String(flagClientID, "", "GitHub OAuth client id for device flow login")

	_ = fs.Parse(args) // Ignore parse errors for now

	flags := &ParsedFlags{}

	// Only set pointers if flags were actually provided
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "config":
			flags.configFile = configFile
		case flagBaseURL:
			flags.baseURL = baseURL
		case flagPageSize:
			flags.pageSize = pageSize
		case flagEnvironment:
			flags.environment = environment
		case flagClientID:
			flags.clientID = clientID
		}
	})

	return flags
}

// ConfigLoader handles configuration loading with injected dependencies
type ConfigLoader struct {
	fs          FileSystem
	flagParser  FlagParser
	searchPaths []string
}

// NewConfigLoader creates a ConfigLoader for production use
func NewConfigLoader() *ConfigLoader {
	osFS := &OsFileSystem{}
	searchPaths := getDefaultSearchPaths(osFS)

	return &ConfigLoader{
		fs:          osFS,
		flagParser:  &OsFlagParser{},
		searchPaths: searchPaths,
	}
}

// NewTestConfigLoader creates a ConfigLoader for testing with custom dependencies
func NewTestConfigLoader(fs FileSystem, searchPaths []string) *ConfigLoader {
	return &ConfigLoader{
		fs:          fs,
		flagParser:  &MockFlagParser{},
		searchPaths: searchPaths,
	}
}

// LoadWithArgs loads configuration with the specified command line arguments.
// Precedence: defaults < config file < environment < flags.
func (cl *ConfigLoader) LoadWithArgs(args []string) Config {
	cfg := NewConfig()

	flags := cl.flagParser.Parse(args)

	cl.loadFromFile(&cfg, flags.configFile)
	applyEnvironmentVariables(&cfg)
	cl.applyFlags(&cfg, flags)

	return cfg
}

// loadFromFile loads configuration from file using the injected filesystem
func (cl *ConfigLoader) loadFromFile(cfg *Config, configFile *string) {
	var filePath string

	if configFile != nil && *configFile != "" {
		filePath = *configFile
	} else {
		filePath = cl.findConfigFile()
	}

	if filePath != "" {
		if fileConfig, err := cl.loadConfigFromFile(filePath); err == nil {
			mergeConfig(cfg, fileConfig)
		}
	}
}

// findConfigFile looks for configuration files in the search paths
func (cl *ConfigLoader) findConfigFile() string {
	for _, path := range cl.searchPaths {
		if _, err := cl.fs.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// loadConfigFromFile loads configuration from a JSON file using the injected filesystem
func (cl *ConfigLoader) loadConfigFromFile(filename string) (*Config, error) {
	data, err := cl.fs.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}

	return &cfg, nil
}

// applyFlags applies command line flags to the configuration
func (cl *ConfigLoader) applyFlags(cfg *Config, flags *ParsedFlags) {
	if flags.baseURL != nil && *flags.baseURL != "" {
		cfg.BaseURL = *flags.baseURL
	}
	if flags.pageSize != nil && *flags.pageSize > 0 {
		cfg.PageSize = *flags.pageSize
	}
	if flags.environment != nil {
		cfg.Environment = *flags.environment // Allow empty string to override
	}
	if flags.clientID != nil && *flags.clientID != "" {
		cfg.OAuth2.ClientID = *flags.clientID
	}
}

// getDefaultSearchPaths returns the default search paths for config files
func getDefaultSearchPaths(fs FileSystem) []string {
	var paths []string

	// Current directory files
	if cwd, err := fs.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, "config.json"))
		paths = append(paths, filepath.Join(cwd, "frontiers-tui.json"))
	}

	// User config directory (where SaveConfig saves files) - HIGHEST PRIORITY
	if configDir, err := fs.UserConfigDir(); err == nil {
		appConfigDir := filepath.Join(configDir, "frontiers-tui")
		paths = append(paths, filepath.Join(appConfigDir, "config.json"))
	}

	// Home directory files (legacy support)
	if home, err := fs.UserHomeDir(); err == nil {
		appDir := filepath.Join(home, ".frontiers-tui")
		paths = append(paths, filepath.Join(appDir, "config.json"))
	}

	return paths
}

// MockFlagParser implements FlagParser for testing
type MockFlagParser struct {
	flags *ParsedFlags
}

// SetFlags allows tests to set mock flag values
func (mfp *MockFlagParser) SetFlags(flags *ParsedFlags) {
	mfp.flags = flags
}

// Parse implements FlagParser.Parse returning mock values
func (mfp *MockFlagParser) Parse(args []string) *ParsedFlags {
	if mfp.flags != nil {
		return mfp.flags
	}
	return &ParsedFlags{}
}
