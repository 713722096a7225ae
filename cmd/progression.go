package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jsphweid/modeviz/midi"
	"github.com/jsphweid/modeviz/progression"
	"github.com/jsphweid/modeviz/render"
	"github.com/spf13/cobra"
)

var (
	progressionMid        string
	progressionWav        string
	progressionArpeggiate bool
	progressionBPM        float64
)

func init() {
	progressionCmd.Flags().StringVar(&progressionMid, "mid", "", "write the progression to this MIDI file")
	progressionCmd.Flags().StringVar(&progressionWav, "wav", "", "render the progression to this WAV file")
	progressionCmd.Flags().BoolVar(&progressionArpeggiate, "arpeggiate", false, "arpeggiate each chord")
	progressionCmd.Flags().Float64Var(&progressionBPM, "bpm", midi.DefaultBPM, "tempo for the exported files, one chord per bar")
	rootCmd.AddCommand(progressionCmd)
}

var progressionCmd = &cobra.Command{
	Use:   "progression <root> <mode> [entries]",
	Short: "Voices a chord progression",
	Long: `Voices a chord progression such as "1,4:7,5/1,1" in a mode. Each entry is a
degree, optional extensions after ":" joined by "+", and an optional "/bass" degree.
Without entries it plays I-IV-V-I.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		chords, err := voiceArgs(args)
		if err != nil {
			return err
		}
		for _, c := range chords {
			fmt.Printf("%-5s %-10s %s\n", c.Numeral, c.Symbol, strings.Join(c.Names, " "))
		}

		keys := progression.Keys(chords)
		if progressionMid != "" {
			if err := writeMid(progressionMid, keys); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", progressionMid)
		}
		if progressionWav != "" {
			if err := writeWav(progressionWav, keys); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", progressionWav)
		}
		return nil
	},
}

func voiceArgs(args []string) ([]progression.Chord, error) {
	root, err := parseRoot(args[0])
	if err != nil {
		return nil, err
	}
	entries := progression.Default()
	if len(args) == 3 {
		entries, err = progression.Parse(args[2])
		if err != nil {
			return nil, err
		}
	}
	return progression.Voice(root, args[1], entries, nil)
}

func writeMid(path string, keys [][]uint8) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := midi.WriteProgression(f, keys, midi.WriteOptions{
		BPM:        progressionBPM,
		Arpeggiate: progressionArpeggiate,
	}); err != nil {
		return fmt.Errorf("could not write %s: %w", path, err)
	}
	return f.Close()
}

func writeWav(path string, keys [][]uint8) error {
	bpm := progressionBPM
	if bpm <= 0 {
		bpm = midi.DefaultBPM
	}
	bar := time.Duration(float64(4*time.Minute) / bpm)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := render.WriteWAV(f, keys, render.Options{
		ChordDuration: bar,
		Arpeggiate:    progressionArpeggiate,
	}); err != nil {
		return fmt.Errorf("could not render %s: %w", path, err)
	}
	return f.Close()
}
