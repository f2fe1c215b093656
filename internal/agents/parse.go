package agents

import (
	"encoding/json"
	"strings"
)

// Fields is a decoded JSON object whose values are read lazily with
// per-field defaults.
type Fields map[string]json.RawMessage

// String returns the string at key, or def when the key is missing, is not a
// string, or is empty.
func (f Fields) String(key, def string) string {
	raw, ok := f[key]
	if !ok {
		return def
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil || s == "" {
		return def
	}
	return s
}

// Strings returns the string elements of the array at key. Non-string
// elements are skipped. The result is never nil.
func (f Fields) Strings(key string) []string {
	out := []string{}
	for _, raw := range f.array(key) {
		var s *string
		if err := json.Unmarshal(raw, &s); err == nil && s != nil {
			out = append(out, *s)
		}
	}
	return out
}

// Objects returns the object elements of the array at key. Non-object
// elements are skipped. The result is never nil.
func (f Fields) Objects(key string) []Fields {
	out := []Fields{}
	for _, raw := range f.array(key) {
		if obj, ok := decodeObject(raw); ok {
			out = append(out, obj)
		}
	}
	return out
}

func (f Fields) array(key string) []json.RawMessage {
	raw, ok := f[key]
	if !ok {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	return items
}

// ParseStructured turns a model completion into a T. It strips an optional
// Markdown fence, decodes a JSON object and hands it to build. Anything that
// is not a JSON object yields fallback() and false. It never panics on input.
func ParseStructured[T any](raw string, build func(Fields) T, fallback func() T) (T, bool) {
	obj, ok := decodeObject([]byte(StripFence(raw)))
	if !ok {
		return fallback(), false
	}
	return build(obj), true
}

// StripFence trims s and removes a leading ``` or ```json line marker and a
// trailing ``` marker.
func StripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimPrefix(s, "\n")
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSuffix(s, "\n")
	}
	return s
}

func decodeObject(data []byte) (Fields, bool) {
	var obj Fields
	if err := json.Unmarshal(data, &obj); err != nil || obj == nil {
		return nil, false
	}
	return obj, true
}
