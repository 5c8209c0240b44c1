package env

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Source reads values from the process environment, falling back to the
// entries of an optional .env file.
type Source struct {
	v   *viper.Viper
	log *zap.Logger
}

// New creates a Source. When dotenvPath is non-empty and the file exists, its
// entries are registered as defaults underneath the process environment.
// A missing file is ignored; any other read or parse failure is returned.
func New(dotenvPath string, log *zap.Logger) (*Source, error) {
	if log == nil {
		log = zap.NewNop()
	}

	v := viper.New()
	v.AutomaticEnv()

	if dotenvPath != "" {
		values, err := godotenv.Read(dotenvPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// Optional file (e.g. production without .env)
		case err != nil:
			return nil, fmt.Errorf("failed to read env file %s: %w", dotenvPath, err)
		default:
			for key, value := range values {
				v.SetDefault(key, value)
			}
		}
	}

	return &Source{v: v, log: log}, nil
}

// WithLogger returns a copy of the Source that reports malformed values to l.
func (s *Source) WithLogger(l *zap.Logger) *Source {
	if l == nil {
		l = zap.NewNop()
	}
	return &Source{v: s.v, log: l}
}

// String returns the named value if it is set and non-empty, else def.
func (s *Source) String(name, def string) string {
	if v := s.lookup(name); v != "" {
		return v
	}
	return def
}

// Int returns the named value parsed as an integer. Malformed values are
// logged and replaced by def.
func (s *Source) Int(name string, def int) int {
	raw := s.lookup(name)
	if raw == "" {
		return def
	}
	n, err := parseInt(raw)
	if err != nil {
		s.log.Warn("Ignoring malformed integer variable",
			zap.String("name", name),
			zap.String("value", raw),
			zap.Int("default", def),
		)
		return def
	}
	return n
}

func (s *Source) lookup(name string) string {
	return strings.TrimSpace(s.v.GetString(name))
}
