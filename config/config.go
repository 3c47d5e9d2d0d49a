package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings and calendar engine parameters.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	TIMEZONE_OFFSET=7.0
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Calendar CalendarConfig // Conversion engine settings
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// CalendarConfig defines parameters of the conversion engine.
//
// Fields:
//   - Timezone: UTC offset in hours used by the astronomical tier.
//     The official Vietnamese calendar uses 7.0; changing this shifts
//     which local day a new moon falls on.
type CalendarConfig struct {
	Timezone float64
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
// All services should import this package and read from AppConfig instead of
// reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Behavior:
//   - Sets defaults for all required fields.
//   - Reads environment variables automatically with viper.AutomaticEnv().
//   - Calls validateConfig() to ensure required fields are sane.
//
// Fatal exit:
//   - If required variables are missing or out of range, validateConfig()
//     will terminate the app with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("TIMEZONE_OFFSET", 7.0)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Calendar: CalendarConfig{
			Timezone: viper.GetFloat64("TIMEZONE_OFFSET"),
		},
	}

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and sane, and
// terminates the application if they are not.
//
// Behavior:
//   - Checks each critical field of AppConfig.
//   - Collects problems in a slice.
//   - If any are found, logs them and terminates the app with log.Fatalf().
func validateConfig() {
	var problems []string

	if AppConfig.Server.Port == "" {
		problems = append(problems, "SERVER_PORT is empty")
	}
	if tz := AppConfig.Calendar.Timezone; tz < -12 || tz > 14 {
		problems = append(problems, "TIMEZONE_OFFSET must be between -12 and 14")
	}

	if len(problems) > 0 {
		log.Fatalf("invalid configuration: %v", problems)
	}
}
