package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/llamafi"
)

// Mock provides a mock implementation of Application for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
//
// Example Usage:
//
//	mock := &application.Mock{
//	    ClientFunc: func() (*llamafi.Client, error) {
//	        return llamafi.New(llamafi.WithHTTPClient(fake))
//	    },
//	    OutputFormatFunc: func() string { return "json" },
//	}
//	cmd := call.NewCommand(mock)
//	// ... test command
type Mock struct {
	ClientFunc       func() (*llamafi.Client, error)
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

// Client calls ClientFunc or builds a default client.
func (m *Mock) Client() (*llamafi.Client, error) {
	if m.ClientFunc != nil {
		return m.ClientFunc()
	}
	return llamafi.New()
}

// Logger calls LoggerFunc or returns a nop logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat calls OutputFormatFunc or returns "json".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "json"
}

// Version calls VersionFunc or returns "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit calls CommitFunc or returns "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date calls DateFunc or returns "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy calls BuiltByFunc or returns "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

var _ Application = (*Mock)(nil)
