package config

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var defaultEnvLoaded sync.Once

// Load binds environment variables into the provided configuration struct
// based on its `env` field tags. The default .env file is loaded once per
// process before the first parse; a missing .env file is not an error.
//
// Example:
//
//	type CacheConfig struct {
//		MaxSize     int  `env:"CACHE_MAX_SIZE" envDefault:"1000"`
//		PruneAmount int  `env:"CACHE_PRUNE_AMOUNT" envDefault:"100"`
//		Enabled     bool `env:"CACHE_ENABLED" envDefault:"true"`
//	}
//
//	var cfg CacheConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	defaultEnvLoaded.Do(func() {
		// The .env file might not exist and that's ok
		_ = godotenv.Load()
	})

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingEnv, err)
	}

	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Useful for configurations required at startup.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadFile unmarshals a YAML file into the provided struct. Fields absent
// from the file keep whatever values the struct already holds, which makes
// it suitable for layering file overrides on top of defaults.
func LoadFile(path string, v any) error {
	if v == nil {
		return ErrNilPointer
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(ErrReadingFile, err)
	}

	if err := yaml.Unmarshal(data, v); err != nil {
		return errors.Join(ErrParsingFile, err)
	}

	return nil
}
