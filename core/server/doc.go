// Package server resolves the HTTP server binding and admin authentication
// settings consumed by the application runtime at startup.
//
// # Resolution
//
// Resolve reads HOST, PORT and ADMIN_JWT_SECRET through an env.Accessor and
// substitutes the package defaults for anything unset. It never fails and has
// no side effects beyond the accessor reads, so it is safe to call repeatedly.
//
// # Validation
//
// Resolve performs no validation. Callers that want to reject unusable values
// (out of range ports, empty secrets) call Settings.Validate explicitly.
//
// # Output Shape
//
//	{
//	  "host": "0.0.0.0",
//	  "port": 1337,
//	  "admin": { "auth": { "secret": "..." } }
//	}
//
// Encode renders this shape as JSON or YAML, or as dotenv assignments.
package server
