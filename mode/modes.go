package mode

import (
	"strings"

	"github.com/jsphweid/modeviz/model"
)

const Octave model.Interval = 12

var catalog = []model.Mode{
	{
		Name:        "Ionian (major)",
		Intervals:   model.Intervals(0, 2, 4, 5, 7, 9, 11, 12),
		Description: "The natural major scale, bright and resolved",
	},
	{
		Name:        "Dorian",
		Intervals:   model.Intervals(0, 2, 3, 5, 7, 9, 10, 12),
		Description: "Minor with a raised 6th, jazzy and warm",
	},
	{
		Name:        "Phrygian",
		Intervals:   model.Intervals(0, 1, 3, 5, 7, 8, 10, 12),
		Description: "Minor with a flat 2nd, dark and Spanish-flavored",
	},
	{
		Name:        "Lydian",
		Intervals:   model.Intervals(0, 2, 4, 6, 7, 9, 11, 12),
		Description: "Major with a raised 4th, dreamy and floating",
	},
	{
		Name:        "Mixolydian",
		Intervals:   model.Intervals(0, 2, 4, 5, 7, 9, 10, 12),
		Description: "Major with a flat 7th, bluesy and dominant",
	},
	{
		Name:        "Aeolian (natural minor)",
		Intervals:   model.Intervals(0, 2, 3, 5, 7, 8, 10, 12),
		Description: "The natural minor scale, sad and introspective",
	},
	{
		Name:        "Locrian",
		Intervals:   model.Intervals(0, 1, 3, 5, 6, 8, 10, 12),
		Description: "Diminished, unstable and dissonant",
	},
	{
		Name:        "Harmonic Minor",
		Intervals:   model.Intervals(0, 2, 3, 5, 7, 8, 11, 12),
		Description: "Minor with a raised 7th, exotic and dramatic",
	},
	{
		Name:        "Melodic Minor",
		Intervals:   model.Intervals(0, 2, 3, 5, 7, 9, 11, 12),
		Description: "Minor with raised 6th and 7th, smooth and jazzy",
	},
	{
		Name:        "Whole Tone",
		Intervals:   model.Intervals(0, 2, 4, 6, 8, 10, 12),
		Description: "All whole steps, symmetrical and unresolved",
	},
}

const IonianName = "Ionian (major)"

// Ionian returns a copy of the reference scale chord construction measures
// against.
func Ionian() []model.Interval {
	return IntervalsFor(IonianName)
}

// All returns a copy of the catalog in display order.
func All() []model.Mode {
	res := make([]model.Mode, len(catalog))
	for i, m := range catalog {
		res[i] = copyMode(m)
	}
	return res
}

func Names() []string {
	res := make([]string, len(catalog))
	for i, m := range catalog {
		res[i] = m.Name
	}
	return res
}

func Lookup(name string) (model.Mode, bool) {
	for _, m := range catalog {
		if m.Name == name {
			return copyMode(m), true
		}
	}
	return model.Mode{}, false
}

// IntervalsFor returns nil for an unknown mode, which callers treat as
// "no mode selected".
func IntervalsFor(name string) []model.Interval {
	m, ok := Lookup(name)
	if !ok {
		return nil
	}
	return m.Intervals
}

// Resolve is a lenient Lookup: case-insensitive, and "aeolian" matches
// "Aeolian (natural minor)".
func Resolve(input string) (model.Mode, bool) {
	wanted := strings.ToLower(strings.TrimSpace(input))
	if wanted == "" {
		return model.Mode{}, false
	}
	for _, m := range catalog {
		name := strings.ToLower(m.Name)
		short := name
		if i := strings.Index(name, " ("); i >= 0 {
			short = name[:i]
		}
		if wanted == name || wanted == short {
			return copyMode(m), true
		}
	}
	return model.Mode{}, false
}

func copyMode(m model.Mode) model.Mode {
	m.Intervals = append([]model.Interval(nil), m.Intervals...)
	return m
}
