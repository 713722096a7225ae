package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jsphweid/modeviz/midi"
	"github.com/spf13/cobra"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
	"go.uber.org/zap"
)

var (
	listenPort   string
	listenSettle time.Duration
)

func init() {
	listenCmd.Flags().StringVarP(&listenPort, "port", "p", "0", "MIDI in port number or name")
	listenCmd.Flags().DurationVar(&listenSettle, "settle", midi.DefaultSettle, "how long keys must stay still before a chord is named")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Names the chords played on a MIDI keyboard",
	Long:  `Listens on a MIDI in port and names each chord once the keys settle`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		defer midi.CloseDriver()
		in, err := midi.OpenInput(listenPort)
		if err != nil {
			return err
		}

		tracker := midi.NewTracker(listenSettle, func(res midi.Result) {
			if !res.Identified {
				logger.Debug("unknown chord", zap.Any("keys", res.Keys))
				return
			}
			fmt.Printf("%-10s %v\n", res.Identification.Symbol, res.Keys)
		})

		stopListening, err := midi.Listen(in, tracker)
		if err != nil {
			return fmt.Errorf("could not listen on %s: %w", in, err)
		}
		defer stopListening()
		logger.Info("listening", zap.String("port", in.String()))

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		<-ctx.Done()
		return nil
	},
}
