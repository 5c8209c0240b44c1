// Package config provides configuration management for the serverconf tool.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file (read with godotenv). Defaults are declared on the struct
// fields with `default` tags and registered by reflection.
//
// # Configuration Structure
//
//   - Log: Logging level and format (LOG_LEVEL, LOG_FORMAT)
//
// The loaded Config also carries the env.Source it was read from, so the server
// settings are resolved against exactly the same environment.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".env")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	settings := server.Resolve(cfg.Env())
package config
