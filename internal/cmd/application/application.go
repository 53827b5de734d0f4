// Package application provides the application interface for llamafi commands.
//
// The Application interface defines the contract between the application layer
// and command implementations, so commands can be tested against a Mock
// instead of the real App.
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            client, err := app.Client()
//	            if err != nil {
//	                return err
//	            }
//	            outcome, err := client.Chains(cmd.Context())
//	            // ...
//	        },
//	    }
//	}
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/llamafi"
)

// Application provides what commands need from the app.
// All methods must be safe for concurrent access.
type Application interface {
	// Client returns the shared API client, creating it on first use.
	Client() (*llamafi.Client, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, wide).
	// An empty string means the format should be detected.
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
