package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fastygo/planner/internal/app"
)

func (c *command) serveCmd() *cobra.Command {
	var host, port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the planner over a local JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App, _ printer) error {
				if cmd.Flags().Changed("host") {
					a.Config.HTTP.Host = host
				}
				if cmd.Flags().Changed("port") {
					a.Config.HTTP.Port = port
				}
				return a.Serve(ctx)
			})
		},
	}
	cmd.Flags().StringVar(&host, "host", "", "Listen host (overrides SERVER_HOST)")
	cmd.Flags().StringVar(&port, "port", "", "Listen port (overrides SERVER_PORT)")
	return cmd
}
