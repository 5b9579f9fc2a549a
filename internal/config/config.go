package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port      int    `mapstructure:"port"       validate:"required,gt=0,lt=65536"`
	LogLevel  string `mapstructure:"log_level"  validate:"required,oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"required,oneof=json text"`

	// ShutdownTimeoutSeconds bounds graceful shutdown of in-flight requests.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gte=0"`
}

// Database drivers.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	// Driver selects the store implementation: "postgres" or "memory".
	Driver string `mapstructure:"driver" validate:"required,oneof=postgres memory"`

	// URL is the PostgreSQL connection string. Required for the postgres driver.
	URL string `mapstructure:"url" validate:"required_if=Driver postgres"`

	MaxOpenConns int `mapstructure:"max_open_conns" validate:"gte=1"`
	MaxIdleConns int `mapstructure:"max_idle_conns" validate:"gte=0"`
}
