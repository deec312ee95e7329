// Package config loads typed configuration structs from environment
// variables, with optional .env file support for local development.
//
// Each package in this repository declares its own Config struct with `env:`
// tags next to the code that consumes it; this package only provides the
// shared loading mechanics (github.com/caarlos0/env parsing plus a one-time
// godotenv load).
package config
