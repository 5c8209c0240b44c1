package server

import "serverconf/core/env"

// Resolve builds Settings from the accessor, using the package defaults for
// anything the accessor does not provide.
func Resolve(e env.Accessor) Settings {
	return Settings{
		Host: e.String(EnvHost, DefaultHost),
		Port: e.Int(EnvPort, DefaultPort),
		Admin: Admin{
			Auth: Auth{
				Secret: e.String(EnvAdminJWTSecret, DefaultAdminJWTSecret),
			},
		},
	}
}
