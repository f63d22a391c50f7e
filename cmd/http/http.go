package http

import "github.com/spf13/cobra"

// NewHTTPCommand groups the commands that run the API server.
func NewHTTPCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "http",
		Short: "Run the AcneLog HTTP API",
	}

	cmd.AddCommand(NewStartCommand())

	return cmd
}
