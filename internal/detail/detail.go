package detail

// Flattening of JSON objects into ordered key/value fields for detail views

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Field is one normalized key/value for display.
type Field struct {
	Key   string
	Value string
}

const maxDepth = 2

// Fields flattens a decoded JSON object into display fields using
// dot/bracket key notation, sorted case-insensitively by key. Compound
// values deeper than two levels are stringified as minified JSON.
func Fields(obj map[string]any) []Field {
	flattened := make(map[string]string)
	if len(obj) > 0 {
		flattenInto(flattened, obj, "", 0, maxDepth)
	}

	keys := make([]string, 0, len(flattened))
	for k := range flattened {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		li, lj := strings.ToLower(keys[i]), strings.ToLower(keys[j])
		if li == lj {
			return keys[i] < keys[j]
		}
		return li < lj
	})

	fields := make([]Field, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, Field{Key: k, Value: flattened[k]})
	}
	return fields
}

// FromJSON decodes a JSON object body and flattens it. A body that is not a
// JSON object yields a single "raw" field rather than an error, so detail
// views degrade instead of failing.
func FromJSON(body []byte) []Field {
	var obj map[string]any
	if err := json.Unmarshal(body, &obj); err != nil {
		return []Field{{Key: "raw", Value: strings.TrimSpace(string(body))}}
	}
	return Fields(obj)
}

// flattenInto flattens v into out with keys composed from prefix.
// Depth is zero-based; compound values deeper than maxDepth are stringified.
func flattenInto(out map[string]string, v any, prefix string, depth, maxDepth int) {
	if v == nil {
		out[nonEmpty(prefix, "")] = ""
		return
	}
	if depth > maxDepth {
		out[nonEmpty(prefix, "")] = jsonCompact(v)
		return
	}
	switch vv := v.(type) {
	case map[string]any:
		if len(vv) == 0 {
			out[nonEmpty(prefix, "")] = "{}"
			return
		}
		ks := make([]string, 0, len(vv))
		for k := range vv {
			ks = append(ks, k)
		}
		sort.Strings(ks)
		for _, k := range ks {
			childKey := k
			if prefix != "" {
				childKey = prefix + "." + k
			}
			flattenInto(out, vv[k], childKey, depth+1, maxDepth)
		}
	case []any:
		if len(vv) == 0 {
			out[nonEmpty(prefix, "")] = "[]"
			return
		}
		for i, elem := range vv {
			idxKey := fmt.Sprintf("%s[%d]", prefix, i)
			if prefix == "" {
				idxKey = fmt.Sprintf("[%d]", i)
			}
			flattenInto(out, elem, idxKey, depth+1, maxDepth)
		}
	case string:
		out[nonEmpty(prefix, "")] = vv
	case bool:
		if vv {
			out[nonEmpty(prefix, "")] = "true"
		} else {
			out[nonEmpty(prefix, "")] = "false"
		}
	case float64:
		out[nonEmpty(prefix, "")] = formatNumber(vv)
	default:
		s := jsonCompact(v)
		if s == "" || s == "null" {
			s = fmt.Sprint(v)
		}
		out[nonEmpty(prefix, "")] = s
	}
}

// formatNumber renders integral JSON numbers without a decimal point.
func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprint(f)
}

func jsonCompact(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

func nonEmpty(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}
	return b
}
