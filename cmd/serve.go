package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/s0up4200/myshows-mcp/server"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server on stdio",
	Long: `Serve the myshows tool catalog over the Model Context Protocol on
stdin/stdout. This is also the default when no subcommand is given.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(client, version, logger)

	err := srv.Run(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Info().Msg("MCP server stopped")
		return nil
	}
	return err
}
