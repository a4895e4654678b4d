package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"sprintwise_backend/internal/app"
	"sprintwise_backend/internal/mcp"
	"sprintwise_backend/pkg/logger"

	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server on stdio",
	Long: `Start the Model Context Protocol server over stdio so that AI agents can
call the parse_goals, generate_plan and list_poster_templates tools.

This command is typically launched by an agent rather than by a user.
Logs go to stderr and the log file; stdout carries the protocol.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			exitWithError(err)
		}
		logger.InitLogger(cfg)
		defer logger.Log.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		services := app.NewServices(cfg)
		server := mcp.NewServer(services.Goals, services.Plans, cfg)

		fmt.Fprintln(os.Stderr, "MCP server started on stdio")
		if err := server.Run(ctx); err != nil {
			exitWithError(fmt.Errorf("MCP server error: %w", err))
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
