// Package hints provides actionable user guidance for CLI errors.
package hints

import (
	"fmt"
	"strings"

	"github.com/agentstation/llamafi/pkg/endpoints"
	"github.com/agentstation/llamafi/pkg/errors"
)

// Hint represents actionable user guidance.
type Hint struct {
	Message string // Human-readable guidance message
	Command string // Optional specific command to run
}

// New creates a new hint with the given message.
func New(message string) *Hint {
	return &Hint{
		Message: message,
	}
}

// WithCommand adds a command to the hint.
func (h *Hint) WithCommand(command string) *Hint {
	h.Command = command
	return h
}

// String returns a string representation of the hint.
func (h *Hint) String() string {
	parts := []string{"hint: " + h.Message}
	if h.Command != "" {
		parts = append(parts, fmt.Sprintf("  run: %s", h.Command))
	}
	return strings.Join(parts, "\n")
}

// ForError returns guidance for err, or nil when there is nothing useful to add.
func ForError(err error) *Hint {
	var apiErr *errors.APIError
	if errors.As(err, &apiErr) {
		switch {
		case errors.IsRateLimited(err):
			return New("the API is rate limiting requests; slow down with RATE_LIMIT or rate_limit in ~/.llamafi.yaml")
		case errors.IsNotFound(err):
			return New("the API did not recognise a parameter value (protocol slug, chain name or ID)").
				WithCommand("llamafi endpoints " + apiErr.Operation)
		case errors.IsProviderUnavailable(err):
			return New("the API host is having trouble; try again later")
		}
		return nil
	}

	var verr *errors.ValidationError
	if errors.As(err, &verr) {
		if verr.Field == "operation" {
			return New("see the available operations").WithCommand("llamafi endpoints")
		}
		if op, ok := operationOf(verr); ok {
			return New("check the parameters this operation accepts").WithCommand("llamafi endpoints " + string(op))
		}
		return nil
	}

	return nil
}

// operationOf extracts the operation named in a parameter validation message.
func operationOf(verr *errors.ValidationError) (endpoints.Operation, bool) {
	const marker = "for operation "
	i := strings.LastIndex(verr.Message, marker)
	if i < 0 {
		return "", false
	}
	op, err := endpoints.ParseOperation(verr.Message[i+len(marker):])
	if err != nil {
		return "", false
	}
	return op, true
}
