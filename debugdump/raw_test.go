package debugdump

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestRedactHeaders(t *testing.T) {
	in := map[string]string{
		"Authorization": "Bearer secret-token",
		"Cookie":        "session=abc",
		"Content-Type":  "application/json",
	}

	out := RedactHeaders(in)

	if out["Authorization"] != "Bearer <redacted>" {
		t.Errorf("Expected authorization to be redacted, got %q", out["Authorization"])
	}
	if out["Cookie"] != "<redacted>" {
		t.Errorf("Expected cookie to be redacted, got %q", out["Cookie"])
	}
	if out["Content-Type"] != "application/json" {
		t.Errorf("Expected content type untouched, got %q", out["Content-Type"])
	}
}

func TestFormatBodyPrettyJSON(t *testing.T) {
	body, size, truncated := FormatBodyPrettyJSON([]byte(`{"a":1,"b":[2,3]}`), 0)
	if truncated {
		t.Error("Expected no truncation with unlimited max")
	}
	if size != len(`{"a":1,"b":[2,3]}`) {
		t.Errorf("Expected original size, got %d", size)
	}
	if !strings.Contains(body, "\n") {
		t.Error("Expected pretty-printed output with newlines")
	}

	raw, size, _ := FormatBodyPrettyJSON([]byte("not json"), 0)
	if raw != "not json" || size != 8 {
		t.Errorf("Expected raw fallback for non-JSON, got %q (%d)", raw, size)
	}

	_, size, truncated = FormatBodyPrettyJSON([]byte(`{"key":"0123456789012345678901234567890123456789"}`), 10)
	if !truncated {
		t.Error("Expected truncation with small max")
	}
	if size <= 10 {
		t.Errorf("Expected BodyBytes to stay original size, got %d", size)
	}

	if s, n, tr := FormatBodyPrettyJSON(nil, 0); s != "" || n != 0 || tr {
		t.Error("Expected empty result for nil body")
	}
}

func TestResolvePath(t *testing.T) {
	p, err := ResolvePath("")
	if err != nil {
		t.Fatalf("ResolvePath failed: %v", err)
	}
	if p != filepath.Join("logs", "frontiers-raw.yaml") {
		t.Errorf("Expected default path under logs/, got %q", p)
	}

	p, _ = ResolvePath("mycapture")
	if p != filepath.Join("logs", "mycapture.yaml") {
		t.Errorf("Expected bare name to land under logs/ with yaml ext, got %q", p)
	}

	p, _ = ResolvePath("/abs/path/capture.yml")
	if p != filepath.Clean("/abs/path/capture.yml") {
		t.Errorf("Expected absolute path kept, got %q", p)
	}
}

func TestWriteCaptureAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "capture.yaml")

	doc := RawCapture{
		Version:    1,
		CapturedAt: Now(),
		Request: RawRequest{
			Method:  "DELETE",
			URL:     "https://frontiers.example.org/api/admin/admins?email=x%40example.org",
			Headers: RedactHeaders(map[string]string{"Authorization": "Bearer tok"}),
		},
		Response: &RawResponse{Status: 200, Body: "{}", BodyBytes: 2},
	}

	if err := WriteCapture(path, doc); err != nil {
		t.Fatalf("WriteCapture failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected capture file: %v", err)
	}

	var back RawCapture
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("Capture is not valid YAML: %v", err)
	}
	if back.Request.Method != "DELETE" {
		t.Errorf("Expected method round-trip, got %q", back.Request.Method)
	}
	if back.Request.Headers["Authorization"] != "Bearer <redacted>" {
		t.Errorf("Expected redacted header in capture, got %q", back.Request.Headers["Authorization"])
	}
	if back.Response == nil || back.Response.Status != 200 {
		t.Error("Expected response status round-trip")
	}

	// No leftover temp files
	entries, _ := os.ReadDir(dir)
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("Leftover temp file: %s", e.Name())
		}
	}
}
