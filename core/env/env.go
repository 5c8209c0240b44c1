package env

import (
	"strconv"
	"strings"
)

// Accessor is the capability used to read typed configuration values.
type Accessor interface {
	// String returns the named value if it is set and non-empty, else def.
	String(name, def string) string
	// Int returns the named value parsed as an integer, else def.
	Int(name string, def int) int
}

// parseInt converts a trimmed raw value into a base-10 int.
// Leading zeros are decimal; prefixes such as 0x are rejected.
func parseInt(raw string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(raw))
}

var (
	_ Accessor = (*Source)(nil)
	_ Accessor = Map(nil)
)
