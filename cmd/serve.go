package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jsphweid/modeviz/bridge"
	"github.com/jsphweid/modeviz/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the state and theory API",
	Long:  `Serves /state, /modes, /view and /progression over HTTP on SERVE_ADDR`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		svc, err := newService()
		if err != nil {
			return err
		}
		return serveHTTP(ctx, constants.GetServeAddr(), svc)
	},
}

func newService() (*bridge.Service, error) {
	store, err := newStore()
	if err != nil {
		return nil, err
	}
	logger.Info("using state backend", zap.String("backend", constants.GetStateBackend()))
	return bridge.NewService(store, constants.GetDefaultOctave(), logger), nil
}

func serveHTTP(ctx context.Context, addr string, svc *bridge.Service) error {
	err := bridge.ListenAndServe(ctx, addr, bridge.NewRouter(svc, logger), logger)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
