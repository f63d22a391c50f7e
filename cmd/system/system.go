package system

import "github.com/spf13/cobra"

// NewSystemCommand groups one-off operational tasks: first-run setup,
// schema migration and CLI doc generation.
func NewSystemCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "system",
		Short: "Operational tasks (init, migrate, docs)",
	}

	cmd.AddCommand(
		NewInitCommand(),
		NewMigrateCommand(),
		NewGenDocsCommand(),
	)

	return cmd
}
