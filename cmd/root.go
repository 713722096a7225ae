package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/jsphweid/modeviz/constants"
	"github.com/jsphweid/modeviz/logging"
	"github.com/jsphweid/modeviz/model"
	"github.com/jsphweid/modeviz/note"
	"github.com/jsphweid/modeviz/state"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:     constants.AppName,
	Short:   "Modes, chords and their spellings",
	Long:    `modeviz works out the notes, chords and spellings of a mode from any root, and serves them to a UI or an assistant.`,
	Version: constants.AppVersion,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("could not load .env: %w", err)
		}
		logger = logging.New(constants.GetLogFile(), constants.IsProduction())
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
	SilenceUsage: true,
}

func Execute() {
	cobra.CheckErr(rootCmd.ExecuteContext(context.Background()))
}

func parseRoot(text string) (model.Note, error) {
	root, err := note.Parse(text)
	if err != nil {
		return model.Note{}, fmt.Errorf("%w (use notes like C3, F#2 or Eb4)", err)
	}
	return root, nil
}

// newStore picks the bridge state backend from STATE_BACKEND.
func newStore() (state.Store, error) {
	octave := constants.GetDefaultOctave()
	switch backend := constants.GetStateBackend(); backend {
	case "file":
		return state.NewFileStore(constants.GetStateFile(), octave), nil
	case "dynamodb":
		return state.NewDynamoStore(state.DynamoConfig{
			Endpoint: constants.GetDynamoEndpoint(),
			Region:   constants.GetAWSRegion(),
			Table:    constants.GetDynamoTable(),
		}, octave)
	default:
		return nil, fmt.Errorf("unknown state backend %q, use file or dynamodb", backend)
	}
}
