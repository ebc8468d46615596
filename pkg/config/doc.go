// Package config loads typed configuration from environment variables and
// optional YAML override files.
//
// Environment binding uses `env` struct tags with envDefault fallbacks, so a
// zero-configuration deployment still produces fully-populated structs. A
// .env file in the working directory is honored once per process.
//
// # Usage
//
//	type Config struct {
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// YAML overrides layer on top of whatever the struct already contains:
//
//	cfg := DefaultTierTables()
//	if err := config.LoadFile("tiers.yaml", &cfg); err != nil {
//		// Handle error
//	}
//
// # Error Handling
//
// All failures wrap one of the package sentinel errors (ErrParsingEnv,
// ErrReadingFile, ErrParsingFile, ErrNilPointer) via errors.Join, so callers
// can branch with errors.Is while keeping the underlying cause.
package config
