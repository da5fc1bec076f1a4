package detail

import "testing"

func fieldMap(fields []Field) map[string]string {
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		out[f.Key] = f.Value
	}
	return out
}

func TestFieldsFlattensNested(t *testing.T) {
	obj := map[string]any{
		"id":     float64(7),
		"status": "COMPLETE",
		"user": map[string]any{
			"email": "cgaucho@ucsb.edu",
			"roles": []any{"ROLE_USER", "ROLE_ADMIN"},
		},
	}

	fields := Fields(obj)
	got := fieldMap(fields)

	if got["id"] != "7" {
		t.Errorf("Expected integral number without decimal, got %q", got["id"])
	}
	if got["status"] != "COMPLETE" {
		t.Errorf("Unexpected status: %q", got["status"])
	}
	if got["user.email"] != "cgaucho@ucsb.edu" {
		t.Errorf("Expected dotted nested key, got %v", got)
	}
	if got["user.roles[0]"] != "ROLE_USER" || got["user.roles[1]"] != "ROLE_ADMIN" {
		t.Errorf("Expected bracketed array keys, got %v", got)
	}
}

func TestFieldsSortedCaseInsensitive(t *testing.T) {
	obj := map[string]any{
		"Zeta":  "1",
		"alpha": "2",
		"Beta":  "3",
	}

	fields := Fields(obj)

	want := []string{"alpha", "Beta", "Zeta"}
	for i, f := range fields {
		if f.Key != want[i] {
			t.Fatalf("Expected order %v, got %+v", want, fields)
		}
	}
}

func TestFieldsDepthLimitStringifies(t *testing.T) {
	obj := map[string]any{
		"a": map[string]any{
			"b": map[string]any{
				"c": map[string]any{"d": "deep"},
			},
		},
	}

	got := fieldMap(Fields(obj))

	if got["a.b.c"] != `{"d":"deep"}` {
		t.Errorf("Expected minified JSON past depth limit, got %v", got)
	}
}

func TestFieldsEmptyComposites(t *testing.T) {
	obj := map[string]any{
		"emptyMap":  map[string]any{},
		"emptyList": []any{},
		"nothing":   nil,
	}

	got := fieldMap(Fields(obj))

	if got["emptyMap"] != "{}" || got["emptyList"] != "[]" || got["nothing"] != "" {
		t.Errorf("Unexpected empty-composite rendering: %v", got)
	}
}

func TestFromJSON(t *testing.T) {
	fields := FromJSON([]byte(`{"log":"started\nfinished","ok":true}`))
	got := fieldMap(fields)
	if got["ok"] != "true" {
		t.Errorf("Expected boolean rendering, got %v", got)
	}
	if got["log"] != "started\nfinished" {
		t.Errorf("Unexpected log value: %q", got["log"])
	}

	fields = FromJSON([]byte(`not json`))
	if len(fields) != 1 || fields[0].Key != "raw" || fields[0].Value != "not json" {
		t.Errorf("Expected raw fallback for invalid JSON, got %+v", fields)
	}
}
