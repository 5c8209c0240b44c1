package config

import (
	"fmt"
	"reflect"
	"strings"

	"serverconf/core/env"
	"serverconf/core/logger"

	"github.com/spf13/viper"
)

// Config holds the configuration of the serverconf tool itself.
// The server settings it resolves live in core/server.
type Config struct {
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`

	source *env.Source
}

// Env returns the environment source the configuration was loaded from.
// Server settings are resolved against the same source.
func (c *Config) Env() *env.Source {
	return c.source
}

var keyReplacer = strings.NewReplacer(".", "_")

// LoadConfig loads configuration from environment variables and the given
// .env file. A missing .env file is not an error.
func LoadConfig(envFile string) (*Config, error) {
	src, err := env.New(envFile, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, src, Config{}, "")

	// Map environment variables to nested keys (e.g. LOG_LEVEL -> log.level)
	v.SetEnvKeyReplacer(keyReplacer)
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	config.source = src

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags. Values present in the env source
// (including its .env file) take the place of the tag default.
func bindValues(v *viper.Viper, src env.Accessor, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, src, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		envName := strings.ToUpper(keyReplacer.Replace(key))
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, src.String(envName, defaultValue))
	}
}
