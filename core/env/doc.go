// Package env provides typed, defaulted lookups into environment variables.
//
// Consumers depend on the Accessor interface rather than on the process
// environment, so the same resolution code runs against the real environment,
// a .env file, or an in-memory map in tests.
//
// # Sources
//
//   - Source: process environment through Viper, optionally layered over a
//     .env file read with godotenv. Real environment variables win over the file.
//   - Map: a plain map, useful for tests and embedding programs.
//
// # Lookup Rules
//
// A variable that is unset, empty, or only whitespace resolves to the supplied
// default. Int falls back to the default when the value is not a valid integer.
//
// # Usage
//
//	src, err := env.New(".env", logg)
//	if err != nil {
//	    return err
//	}
//	port := src.Int("PORT", 1337)
package env
