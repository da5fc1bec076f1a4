package debugdump

// Lightweight helper to write raw API request/response debug captures

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// RawHeaders represents selected HTTP headers with redactions applied.
type RawHeaders map[string]string

// RawRequest captures request details
type RawRequest struct {
	StartedAt string     `yaml:"startedAt"`
	Method    string     `yaml:"method"`
	URL       string     `yaml:"url"`
	Headers   RawHeaders `yaml:"headers"`
	Body      string     `yaml:"body"`
	BodyBytes int        `yaml:"bodyBytes"`
	Truncated bool       `yaml:"truncated"`
}

// RawResponse captures response details
type RawResponse struct {
	CompletedAt string     `yaml:"completedAt"`
	Status      int        `yaml:"status"`
	DurationMs  int64      `yaml:"durationMs"`
	Headers     RawHeaders `yaml:"headers"`
	Body        string     `yaml:"body"`
	BodyBytes   int        `yaml:"bodyBytes"`
	Truncated   bool       `yaml:"truncated"`
}

// RawError represents an error payload
type RawError struct {
	Message string `yaml:"message"`
}

// RawCapture is the root document for a capture.
type RawCapture struct {
	Version    int          `yaml:"version"`
	CapturedAt string       `yaml:"capturedAt"`
	Request    RawRequest   `yaml:"request"`
	Response   *RawResponse `yaml:"response,omitempty"`
	Error      *RawError    `yaml:"error"`
}

// RedactHeaders returns a copy of selected headers with secrets redacted.
func RedactHeaders(in map[string]string) RawHeaders {
	out := make(RawHeaders, len(in))
	for k, v := range in {
		lk := strings.ToLower(strings.TrimSpace(k))
		switch lk {
		case "authorization":
			out[k] = "Bearer <redacted>"
		case "cookie", "set-cookie", "x-api-key", "api-key":
			out[k] = "<redacted>"
		default:
			out[k] = v
		}
	}
	return out
}

// FormatBodyPrettyJSON attempts to pretty-print JSON; if parsing fails, falls back to raw string.
// Returns the string to write (possibly truncated), the original network payload size in bytes,
// and whether truncation occurred. maxBytes == 0 means unlimited.
func FormatBodyPrettyJSON(b []byte, maxBytes int) (string, int, bool) {
	if b == nil {
		return "", 0, false
	}
	origLen := len(b)
	var parsed interface{}
	var pretty []byte
	if err := json.Unmarshal(b, &parsed); err == nil {
		if pb, perr := json.MarshalIndent(parsed, "", "  "); perr == nil {
			pretty = pb
		}
	}
	if len(pretty) == 0 {
		if maxBytes <= 0 || origLen <= maxBytes {
			return string(b), origLen, false
		}
		return string(b[:maxBytes]), origLen, true
	}
	// Truncation applies to the pretty output; BodyBytes stays the original network size
	if maxBytes <= 0 || len(pretty) <= maxBytes {
		return string(pretty), origLen, false
	}
	return string(pretty[:maxBytes]), origLen, true
}

// WriteCapture writes the capture atomically.
func WriteCapture(path string, doc RawCapture) error {
	return writeYAMLAtomic(path, doc)
}

// ResolvePath ensures a sane default location and extension for the raw file.
// If path is empty, use logs/frontiers-raw.yaml. If relative with no dir, put it under logs/.
func ResolvePath(in string) (string, error) {
	p := strings.TrimSpace(in)
	if p == "" {
		p = filepath.Join("logs", "frontiers-raw.yaml")
	}
	if !filepath.IsAbs(p) {
		if dir := filepath.Dir(p); dir == "." {
			p = filepath.Join("logs", p)
		}
	}
	if ext := strings.ToLower(filepath.Ext(p)); ext == "" {
		p = p + ".yaml"
	}
	p = filepath.Clean(filepath.FromSlash(p))
	return p, nil
}

func writeYAMLAtomic(path string, doc any) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("empty path for raw capture")
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create capture dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "raw-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	enc := yaml.NewEncoder(tmp)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil { // flush encoder
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to close yaml encoder: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	// Atomic replace
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to move temp into place: %w", err)
	}
	return nil
}

// Now returns UTC RFC3339Nano time string for timestamps
func Now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
