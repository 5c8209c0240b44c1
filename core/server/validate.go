package server

import (
	"errors"
	"fmt"
	"net"
	"strconv"
)

var (
	ErrInvalidPort = errors.New("port must be between 1 and 65535")
	ErrEmptyHost   = errors.New("host must not be empty")
	ErrEmptySecret = errors.New("admin auth secret must not be empty")
)

const maxPort = 65535

// Validate reports every problem with the settings as a single joined error.
// It returns nil when the settings are usable.
func (s Settings) Validate() error {
	var errs []error

	if s.Host == "" {
		errs = append(errs, ErrEmptyHost)
	}
	if s.Port < 1 || s.Port > maxPort {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInvalidPort, s.Port))
	}
	if s.Admin.Auth.Secret == "" {
		errs = append(errs, ErrEmptySecret)
	}

	return errors.Join(errs...)
}

// UsesDefaultSecret checks if the committed placeholder secret is in use.
func (s Settings) UsesDefaultSecret() bool {
	return s.Admin.Auth.Secret == DefaultAdminJWTSecret
}

// Address returns the host:port listen address.
func (s Settings) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Redacted returns a copy with the admin secret masked, for logging and display.
// An empty secret stays empty.
func (s Settings) Redacted() Settings {
	s.Admin.Auth.Secret = redact(s.Admin.Auth.Secret)
	return s
}

func redact(secret string) string {
	const visible = 4
	if secret == "" {
		return ""
	}
	runes := []rune(secret)
	if len(runes) <= visible {
		return "****"
	}
	return string(runes[:visible]) + "****"
}
