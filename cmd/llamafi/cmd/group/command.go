// Package group builds one command per endpoint group with one subcommand per
// operation, generated from the catalog.
package group

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/llamafi/internal/cmd/application"
	"github.com/agentstation/llamafi/internal/cmd/cmdutil"
	"github.com/agentstation/llamafi/internal/cmd/table"
	"github.com/agentstation/llamafi/pkg/endpoints"
)

// NewCommands creates a command for every group in catalog order.
func NewCommands(app application.Application) []*cobra.Command {
	groups := endpoints.Groups()
	cmds := make([]*cobra.Command, 0, len(groups))
	for _, g := range groups {
		cmds = append(cmds, NewCommand(app, g))
	}
	return cmds
}

// NewCommand creates the command for group g.
func NewCommand(app application.Application, g endpoints.Group) *cobra.Command {
	cmd := &cobra.Command{
		Use:     string(g) + " <operation>",
		GroupID: "endpoints",
		Short:   table.GroupTitle(g) + " endpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown %s operation: %s", g, args[0])
		},
	}

	for _, d := range endpoints.ForGroup(g) {
		cmd.AddCommand(newOperationCommand(app, d))
	}

	return cmd
}

func newOperationCommand(app application.Application, d endpoints.Descriptor) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   string(d.Operation),
		Short: d.Summary,
		Long:  d.Summary + "\n\nGET " + d.Template(),
		Args:  cobra.NoArgs,
	}

	params := cmdutil.AddParamFlags(cmd, d)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the resolved URL without sending the request")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return cmdutil.RunOperation(cmd, app, d.Operation, params(), dryRun)
	}

	return cmd
}
