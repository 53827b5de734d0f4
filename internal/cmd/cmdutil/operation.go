// Package cmdutil provides the shared plumbing behind the commands that
// execute catalog operations: parameter parsing, per-parameter flags, and
// running a call and printing its outcome.
package cmdutil

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/llamafi/internal/cmd/application"
	"github.com/agentstation/llamafi/internal/cmd/output"
	"github.com/agentstation/llamafi/pkg/endpoints"
	"github.com/agentstation/llamafi/pkg/errors"
)

// ParseAssignments turns "name=value" arguments into Params.
// Values stay strings; the endpoint validates and converts them.
func ParseAssignments(args []string) (endpoints.Params, error) {
	params := endpoints.Params{}
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, errors.NewValidationError("argument", arg, "expected name=value")
		}
		if _, dup := params[name]; dup {
			return nil, errors.NewValidationError(name, value, "parameter given more than once")
		}
		params[name] = value
	}
	return params, nil
}

// FlagName returns the command line flag for p, e.g. "chain-slug".
func FlagName(p endpoints.Param) string {
	return strings.ReplaceAll(p.Name, "_", "-")
}

// AddParamFlags adds one flag per parameter of d to cmd and marks the
// required ones. The returned function collects the flags the user set.
func AddParamFlags(cmd *cobra.Command, d endpoints.Descriptor) func() endpoints.Params {
	flags := cmd.Flags()
	for _, p := range d.Params {
		name := FlagName(p)
		usage := p.Description
		switch p.Kind {
		case endpoints.KindBool:
			flags.Bool(name, false, usage)
		case endpoints.KindInteger:
			flags.Int64(name, 0, usage)
		default:
			flags.String(name, "", usage)
		}
		if p.Required {
			_ = cmd.MarkFlagRequired(name)
		}
	}

	return func() endpoints.Params {
		params := endpoints.Params{}
		for _, p := range d.Params {
			f := flags.Lookup(FlagName(p))
			if f == nil || !f.Changed {
				continue
			}
			params[p.Name] = f.Value.String()
		}
		return params
	}
}

// Format resolves the output format the app is configured with.
func Format(app application.Application) (output.Format, error) {
	format, err := output.ParseFormat(app.OutputFormat())
	if err != nil {
		return "", err
	}
	if format == "" {
		format = output.DetectFormat("")
	}
	return format, nil
}

// RunOperation executes op and writes the payload to the command's output.
// With dryRun it only prints the resolved URL. A failed outcome is returned
// as its *errors.APIError so the process exits non-zero.
func RunOperation(cmd *cobra.Command, app application.Application, op endpoints.Operation, params endpoints.Params, dryRun bool) error {
	client, err := app.Client()
	if err != nil {
		return err
	}

	if dryRun {
		url, err := client.Resolve(op, params)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), url)
		return err
	}

	format, err := Format(app)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	outcome, err := client.Call(ctx, op, params)
	if err != nil {
		return err
	}
	if !outcome.Succeeded() {
		return outcome.Err()
	}

	return output.FormatPayload(cmd.OutOrStdout(), outcome.Payload(), format)
}
