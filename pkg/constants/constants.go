// Package constants provides shared constants used throughout the llamafi codebase.
// This includes API hosts, timeouts, limits, and other values that should be
// consistent between the client library and the CLI.
package constants

import "time"

// API hosts. These are fixed; operations pick one through their descriptor.
const (
	// TVLHost serves protocol and chain TVL, volumes and fees
	TVLHost = "https://api.llama.fi"

	// CoinsHost serves token prices and blocks
	CoinsHost = "https://coins.llama.fi"

	// StablecoinsHost serves stablecoin supply and prices
	StablecoinsHost = "https://stablecoins.llama.fi"

	// YieldsHost serves pool yields
	YieldsHost = "https://yields.llama.fi"

	// BridgesHost serves bridge volumes and stats
	BridgesHost = "https://bridges.llama.fi"
)

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to the API hosts
	DefaultHTTPTimeout = 30 * time.Second

	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 2 * time.Minute

	// ShutdownTimeout bounds graceful shutdown after a failed command
	ShutdownTimeout = 5 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Limit constants define various limits and capacities
const (
	// MaxResponseBytes caps how much of a response body is read into memory (64 MB).
	// Some endpoints (pools, protocols) return tens of megabytes.
	MaxResponseBytes = 64 << 20

	// MaxErrorBodyBytes caps the body kept on a failed call
	MaxErrorBodyBytes = 4 << 10
)

// Rate limiting constants
const (
	// DefaultRateBurst is the token bucket burst size when a rate limit is set without one
	DefaultRateBurst = 1
)

// Client identification
const (
	// UserAgent is sent with every request
	UserAgent = "llamafi-go"

	// AcceptJSON is the Accept header value sent with every request
	AcceptJSON = "application/json"
)

// Path constants
const (
	// ConfigName is the config file base name searched in $HOME and the working directory
	ConfigName = ".llamafi"
)
