package cmd

import (
	"fmt"

	"github.com/jsphweid/modeviz/chord"
	"github.com/jsphweid/modeviz/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.mid>",
	Short: "Names the chords in a MIDI file",
	Long:  `Reads a MIDI file and names every set of notes that sound together`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := midi.ReadMidiFile(args[0])
		if err != nil {
			return err
		}
		chords, err := midi.GetChords(s)
		if err != nil {
			return err
		}
		for _, c := range chords {
			name := "?"
			if id, ok := chord.Identify(c.Keys); ok {
				name = id.Symbol
			}
			fmt.Printf("%10s  %-10s %v\n", c.Offset, name, c.Keys)
		}
		return nil
	},
}
