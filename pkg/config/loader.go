package config

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var dotenvOnce sync.Once

// Load parses environment variables into the provided struct based on its
// `env` field tags. A .env file in the working directory is loaded once per
// process before the first parse; a missing file is not an error, which
// keeps local development and CI behavior identical.
//
// Example:
//
//	type CLIConfig struct {
//		ProfilePath string `env:"INPUTKIT_PROFILE" envDefault:"profiles.yaml"`
//		LogLevel    string `env:"INPUTKIT_LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg CLIConfig
//	if err := config.Load(&cfg); err != nil {
//		// abort startup
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure. Intended for settings the
// process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(err)
	}
}
