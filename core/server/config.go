package server

// Settings holds the server binding and admin authentication settings.
// Values are passed around by copy and never mutated after Resolve.
type Settings struct {
	// Host is the network interface to bind.
	Host string `json:"host" yaml:"host"`
	// Port is the TCP port to listen on.
	Port int `json:"port" yaml:"port"`
	// Admin holds the admin panel settings.
	Admin Admin `json:"admin" yaml:"admin"`
}

// Admin holds admin panel settings.
type Admin struct {
	Auth Auth `json:"auth" yaml:"auth"`
}

// Auth holds admin authentication settings.
type Auth struct {
	// Secret signs and verifies admin session tokens.
	Secret string `json:"secret" yaml:"secret"`
}

// Environment variable names.
const (
	EnvHost           = "HOST"
	EnvPort           = "PORT"
	EnvAdminJWTSecret = "ADMIN_JWT_SECRET"
)

const (
	DefaultHost = "0.0.0.0"
	DefaultPort = 1337
	// DefaultAdminJWTSecret is a committed placeholder, not a secret.
	DefaultAdminJWTSecret = "bf9f5023dae53bf8d8a67a74f909e43f"
)
