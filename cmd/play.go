package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/jsphweid/modeviz/audio"
	"github.com/jsphweid/modeviz/midi"
	"github.com/jsphweid/modeviz/progression"
	"github.com/spf13/cobra"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
	"go.uber.org/zap"
)

var (
	playPort       string
	playChannel    uint8
	playArpeggiate bool
)

func init() {
	playCmd.Flags().StringVarP(&playPort, "port", "p", "0", "MIDI out port number or name")
	playCmd.Flags().Uint8Var(&playChannel, "channel", 0, "MIDI channel, 0-15")
	playCmd.Flags().BoolVar(&playArpeggiate, "arpeggiate", false, "arpeggiate each chord")
	rootCmd.AddCommand(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play <root> <mode> [entries]",
	Short: "Plays a chord progression",
	Long:  `Plays a chord progression on a MIDI out port`,
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		chords, err := voiceArgs(args)
		if err != nil {
			return err
		}

		defer midi.CloseDriver()
		out, err := midi.OpenOutput(playPort, playChannel)
		if err != nil {
			return err
		}
		defer out.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		for _, c := range chords {
			logger.Info("queued chord",
				zap.String("numeral", c.Numeral),
				zap.String("symbol", c.Symbol),
				zap.Any("keys", c.Keys),
			)
		}
		err = audio.NewPlayer(out).PlaySequence(ctx, progression.Keys(chords), playArpeggiate)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}
