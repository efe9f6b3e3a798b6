package cli

import (
	"context"

	"grimoire/browser/internal/container"

	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web browser",
		Long:  `Start the HTTP server and serve pages until interrupted.`,
		Example: `  grimoire serve
  grimoire serve --port 8000 --api-url http://grimoire.local/api/v1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withContainer(cmd, func(ctx context.Context, app *container.Container) error {
				return app.Run(ctx)
			})
		},
	}

	cmd.Flags().String("host", "", "Host to listen on")
	cmd.Flags().Int("port", 0, "Port to listen on")

	return cmd
}
