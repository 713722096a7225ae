package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jsphweid/modeviz/bridge"
	"github.com/jsphweid/modeviz/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(mcpCmd)
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Runs the assistant bridge",
	Long: `Serves the get_state, set_key and set_mode tools over stdio and the current
state on http://127.0.0.1:MCP_STATE_PORT/state for the UI`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		svc, err := newService()
		if err != nil {
			return err
		}

		addr := fmt.Sprintf("127.0.0.1:%d", constants.GetStatePort())
		go func() {
			if err := serveHTTP(ctx, addr, svc); err != nil {
				logger.Error("state HTTP server stopped", zap.Error(err))
			}
		}()

		return bridge.ServeStdio(bridge.NewMCPServer(svc, logger), logger)
	},
}
