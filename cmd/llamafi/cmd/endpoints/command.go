// Package endpoints provides the command that lists the endpoint catalog.
package endpoints

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/llamafi/internal/cmd/application"
	"github.com/agentstation/llamafi/internal/cmd/cmdutil"
	"github.com/agentstation/llamafi/internal/cmd/output"
	"github.com/agentstation/llamafi/pkg/endpoints"
	"github.com/agentstation/llamafi/pkg/errors"
)

// NewCommand creates the endpoints command.
func NewCommand(app application.Application) *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:     "endpoints [operation]",
		GroupID: "core",
		Aliases: []string{"ls"},
		Short:   "List the endpoint catalog",
		Example: `  llamafi endpoints                  # All operations
  llamafi endpoints --group bridges  # One group
  llamafi endpoints bridge-volume    # Parameters of one operation
  llamafi endpoints -o wide          # Include parameters and summaries`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cmdutil.Format(app)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				d, err := endpoints.Lookup(endpoints.Operation(args[0]))
				if err != nil {
					return err
				}
				return output.FormatParams(cmd.OutOrStdout(), *d, format)
			}

			descs := endpoints.All()
			if group != "" {
				descs = endpoints.ForGroup(endpoints.Group(group))
				if len(descs) == 0 {
					return errors.NewValidationError("group", group, "unknown group")
				}
			}

			app.Logger().Debug().Int("count", len(descs)).Str("group", group).Msg("Listing endpoints")
			return output.FormatEndpoints(cmd.OutOrStdout(), descs, format)
		},
	}

	cmd.Flags().StringVarP(&group, "group", "g", "", "only list operations in this group")

	return cmd
}
