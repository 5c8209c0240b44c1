package env

import "strings"

// Map is an in-memory Accessor keyed by variable name.
type Map map[string]string

// String returns the trimmed value for name, or def when it is missing or blank.
func (m Map) String(name, def string) string {
	if v := strings.TrimSpace(m[name]); v != "" {
		return v
	}
	return def
}

// Int returns the value for name parsed as an integer.
// Missing, blank and malformed values all resolve to def.
func (m Map) Int(name string, def int) int {
	raw := m.String(name, "")
	if raw == "" {
		return def
	}
	n, err := parseInt(raw)
	if err != nil {
		return def
	}
	return n
}
