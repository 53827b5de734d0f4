package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/llamafi/cmd/llamafi/cmd/call"
	"github.com/agentstation/llamafi/cmd/llamafi/cmd/endpoints"
	"github.com/agentstation/llamafi/cmd/llamafi/cmd/group"
	"github.com/agentstation/llamafi/internal/cmd/output"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(call.NewCommand(a))
	rootCmd.AddCommand(endpoints.NewCommand(a))

	// One command per endpoint group
	rootCmd.AddCommand(group.NewCommands(a)...)

	// Utility commands
	rootCmd.AddCommand(a.CreateVersionCommand())
}

// versionInfo is the structured form of the version command output.
type versionInfo struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
	BuiltBy string `json:"built_by" yaml:"built_by"`
}

// tableData lists the version fields as property/value rows.
func (v versionInfo) tableData() output.Data {
	return output.Data{
		Headers: []string{"Property", "Value"},
		Rows: [][]string{
			{"Version", v.Version},
			{"Commit", v.Commit},
			{"Date", v.Date},
			{"Built By", v.BuiltBy},
		},
	}
}

// CreateVersionCommand creates the version command.
func (a *App) CreateVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			// Plain text unless a structured format was asked for explicitly
			format, err := output.ParseFormat(a.config.Format)
			if err != nil {
				return err
			}
			info := versionInfo{
				Version: a.version,
				Commit:  a.commit,
				Date:    a.date,
				BuiltBy: a.builtBy,
			}
			switch format {
			case output.FormatJSON, output.FormatYAML:
				return output.NewFormatter(format).Format(out, info)
			case output.FormatWide:
				return output.NewFormatter(format).Format(out, info.tableData())
			}

			fmt.Fprintf(out, "llamafi %s\n", a.version)
			if a.config.Verbose {
				fmt.Fprintf(out, "  commit:   %s\n", a.commit)
				fmt.Fprintf(out, "  built:    %s\n", a.date)
				fmt.Fprintf(out, "  built by: %s\n", a.builtBy)
			}
			return nil
		},
	}
}
