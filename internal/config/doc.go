// Package config handles configuration loading, parsing, and validation
// from environment variables, an optional .env file and an optional YAML
// config file. Environment variables use the JUNCTION_ prefix, with nested
// keys joined by underscores (server.port -> JUNCTION_SERVER_PORT).
package config
