package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Format names an output encoding for Encode.
type Format string

const (
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatDotenv Format = "env"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Encode writes s to w in the given format.
func Encode(w io.Writer, s Settings, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case FormatDotenv:
		out, err := godotenv.Marshal(s.Environ())
		if err != nil {
			return fmt.Errorf("failed to encode env: %w", err)
		}
		_, err = io.WriteString(w, out+"\n")
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Environ returns the settings keyed by the environment variables they resolve from.
func (s Settings) Environ() map[string]string {
	return map[string]string{
		EnvHost:           s.Host,
		EnvPort:           strconv.Itoa(s.Port),
		EnvAdminJWTSecret: s.Admin.Auth.Secret,
	}
}
