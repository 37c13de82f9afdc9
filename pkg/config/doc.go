// Package config loads process settings from environment variables into
// tagged structs, with optional .env file support for local development.
//
// It is a thin wrapper over caarlos0/env and godotenv: Load parses `env`
// tags, MustLoad panics for settings the process cannot run without. The
// .env file is read at most once per process, before the first parse.
package config
