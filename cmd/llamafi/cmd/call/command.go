// Package call provides the generic operation dispatcher command.
package call

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/llamafi/internal/cmd/application"
	"github.com/agentstation/llamafi/internal/cmd/cmdutil"
	"github.com/agentstation/llamafi/pkg/endpoints"
)

// NewCommand creates the call command.
func NewCommand(app application.Application) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "call <operation> [name=value ...]",
		GroupID: "core",
		Short:   "Call any operation by name",
		Long: `Call executes one catalog operation and prints the response body.

Parameters are given as name=value pairs using the logical parameter
names shown by 'llamafi endpoints <operation>'. Unknown or missing
parameters are rejected before any request is sent.`,
		Example: `  llamafi call protocols
  llamafi call historical-prices timestamp=1648680149 coins=ethereum:0xdF574c24545E5FfEcb9a659c229253D4111d87e1
  llamafi call bridge-volume chain_slug=ethereum bridge_id=5 --dry-run`,
		Args: cobra.MinimumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			ops := endpoints.Operations()
			names := make([]string, len(ops))
			for i, op := range ops {
				names[i] = string(op)
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := endpoints.ParseOperation(args[0])
			if err != nil {
				return err
			}
			params, err := cmdutil.ParseAssignments(args[1:])
			if err != nil {
				return err
			}
			return cmdutil.RunOperation(cmd, app, op, params, dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the resolved URL without sending the request")

	return cmd
}
