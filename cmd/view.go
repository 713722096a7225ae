package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jsphweid/modeviz/degree"
	"github.com/jsphweid/modeviz/mode"
	"github.com/jsphweid/modeviz/model"
	"github.com/jsphweid/modeviz/visualizer"
	"github.com/spf13/cobra"
)

var (
	viewChordType string
	viewExt       string
	viewSlash     string
	viewJSON      bool
)

func init() {
	viewCmd.Flags().StringVarP(&viewChordType, "type", "t", "triads", "triads or sevenths")
	viewCmd.Flags().StringVar(&viewExt, "ext", "", `extensions per degree, e.g. "2=m,7;5=7"`)
	viewCmd.Flags().StringVar(&viewSlash, "slash", "", `slash bass per degree, e.g. "5=1"`)
	viewCmd.Flags().BoolVar(&viewJSON, "json", false, "print the view as JSON")
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(spellCmd)
}

var viewCmd = &cobra.Command{
	Use:   "view <root> <mode>",
	Short: "Shows the chords of a mode",
	Long:  `Shows the notes, chromatic row and per-degree chords of a mode`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		chordType, ok := model.ParseChordType(viewChordType)
		if !ok {
			return fmt.Errorf("unknown chord type %q", viewChordType)
		}
		v, err := buildView(args[0], args[1], chordType, viewExt, viewSlash)
		if err != nil {
			return err
		}
		if viewJSON {
			return printJSON(v)
		}
		printView(v)
		return nil
	},
}

var spellCmd = &cobra.Command{
	Use:   "spell <root> <mode>",
	Short: "Spells the notes of a mode",
	Long:  `Spells the notes of a mode, overflow included, so each letter is used once`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := buildView(args[0], args[1], model.Triads, "", "")
		if err != nil {
			return err
		}
		core := len(v.Intervals)
		left := strings.Join(v.Labels[:v.LeftOverflow], " ")
		mid := strings.Join(v.Labels[v.LeftOverflow:v.LeftOverflow+core], " ")
		right := strings.Join(v.Labels[v.LeftOverflow+core:], " ")
		fmt.Printf("(%s) %s (%s)\n", left, mid, right)
		return nil
	},
}

func buildView(rootText, modeName string, chordType model.ChordType, ext, slash string) (visualizer.View, error) {
	root, err := parseRoot(rootText)
	if err != nil {
		return visualizer.View{}, err
	}
	m, ok := mode.Resolve(modeName)
	if !ok {
		return visualizer.View{}, fmt.Errorf("%w: %q", visualizer.ErrUnknownMode, modeName)
	}
	exts, err := degree.ParseAssignments(ext)
	if err != nil {
		return visualizer.View{}, err
	}
	slashes, err := degree.ParseSlash(slash)
	if err != nil {
		return visualizer.View{}, err
	}
	states := degree.New(mode.DegreeCount(m.Intervals))
	if err := states.Apply(exts, slashes); err != nil {
		return visualizer.View{}, err
	}
	return visualizer.Build(root, m.Name, states, visualizer.Options{ChordType: chordType})
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func printView(v visualizer.View) {
	fmt.Printf("%s %s\n", v.Root, v.Mode)
	fmt.Printf("%s\n\n", v.Description)
	fmt.Printf("notes:     %s\n", strings.Join(v.Labels[v.LeftOverflow:v.LeftOverflow+len(v.Intervals)], " "))

	var row []string
	for _, slot := range v.Chromatic {
		if slot.InMode {
			row = append(row, slot.Label)
		} else {
			row = append(row, "·")
		}
	}
	fmt.Printf("chromatic: %s\n\n", strings.Join(row, " "))

	for _, d := range v.Degrees {
		fmt.Printf("%-4s %-10s %-16s %s\n",
			d.Numeral,
			d.Symbol,
			strings.Join(d.ToneNames, " "),
			strings.Join(d.ToneDegrees, " "),
		)
	}
}
