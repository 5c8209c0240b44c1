package server

import (
	"strings"

	"github.com/google/uuid"
)

// NewSecret returns a random 32 character lowercase hex string, the same length
// and alphabet as DefaultAdminJWTSecret. It is a version 4 UUID without dashes,
// so it carries 122 random bits: the 13th character is always "4" and the 17th
// is one of 8, 9, a or b.
func NewSecret() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
