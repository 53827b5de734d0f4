package app

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/llamafi/internal/cmd/output"
	"github.com/agentstation/llamafi/pkg/constants"
	"github.com/agentstation/llamafi/pkg/errors"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Client configuration
	Timeout   time.Duration
	RateLimit float64
	RateBurst int

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables
// 3. .env files
// 4. Config file (~/.llamafi.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	return LoadConfigFile("")
}

// LoadConfigFile is LoadConfig with an explicit config file path. An empty
// path searches the standard locations; an explicit file must be readable.
func LoadConfigFile(path string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	// Set up Viper for environment variables
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	v.SetDefault("timeout", constants.DefaultHTTPTimeout)
	v.SetDefault("rate_burst", constants.DefaultRateBurst)

	// Try to read config file if it exists
	configFile := path
	if configFile == "" {
		configFile = v.GetString("config")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config", "cannot read "+configFile, err)
		}
	} else {
		// Search for config in standard locations
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
			v.AddConfigPath(".")
			v.SetConfigType("yaml")
			v.SetConfigName(constants.ConfigName)
		}

		// Read config file (ignore error if not found)
		_ = v.ReadInConfig()
	}

	// Build config from viper
	config := &Config{
		// Global flags (may be overridden by cobra flags later)
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color"),
		Format:  v.GetString("format"),

		// Config file
		ConfigFile: v.ConfigFileUsed(),

		// Client configuration
		Timeout:   v.GetDuration("timeout"),
		RateLimit: v.GetFloat64("rate_limit"),
		RateBurst: v.GetInt("rate_burst"),

		// Logging configuration
		LogLevel:  v.GetString("log_level"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", v.GetString("log_format")),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", v.GetString("log_output")),
	}

	// Set defaults
	if config.LogFormat == "" {
		config.LogFormat = "auto"
	}
	if config.LogOutput == "" {
		config.LogOutput = "stderr"
	}

	return config, nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string, timeout time.Duration) {
	c.Verbose = c.Verbose || verbose
	c.Quiet = c.Quiet || quiet
	c.NoColor = c.NoColor || noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	if timeout != 0 {
		c.Timeout = timeout
	}
}

// Validate reports settings the client cannot work with.
func (c *Config) Validate() error {
	if _, err := output.ParseFormat(c.Format); err != nil {
		return errors.NewConfigError("format", "invalid output format "+c.Format, err)
	}
	if c.Timeout <= 0 {
		return errors.NewConfigError("timeout", "timeout must be positive, got "+c.Timeout.String(), nil)
	}
	if c.RateLimit < 0 {
		return errors.NewConfigError("rate_limit", "rate limit cannot be negative", nil)
	}
	return nil
}

// loadEnvFiles loads environment variables from .env files.
func loadEnvFiles() {
	// godotenv.Load never overrides a variable that is already set,
	// so .env.local goes first to take precedence over .env
	envFiles := []string{
		".env.local",
		".env",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
