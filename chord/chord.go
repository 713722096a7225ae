package chord

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/modeviz/mode"
	"github.com/jsphweid/modeviz/model"
	"golang.org/x/exp/constraints"
)

// private copy; the interval helpers all measure against it
var ionian = mode.Ionian()

func second(root model.NoteIndex) model.NoteIndex     { return root.Add(ionian[1]) }
func third(root model.NoteIndex) model.NoteIndex      { return root.Add(ionian[2]) }
func fourth(root model.NoteIndex) model.NoteIndex     { return root.Add(ionian[3]) }
func fifth(root model.NoteIndex) model.NoteIndex      { return root.Add(ionian[4]) }
func sixth(root model.NoteIndex) model.NoteIndex      { return root.Add(ionian[5]) }
func seventh(root model.NoteIndex) model.NoteIndex    { return root.Add(ionian[6]) }
func ninth(root model.NoteIndex) model.NoteIndex      { return second(root).Add(mode.Octave) }
func eleventh(root model.NoteIndex) model.NoteIndex   { return fourth(root).Add(mode.Octave) }
func thirteenth(root model.NoteIndex) model.NoteIndex { return sixth(root).Add(mode.Octave) }
func flatten(n model.NoteIndex) model.NoteIndex       { return n - 1 }
func sharpen(n model.NoteIndex) model.NoteIndex       { return n + 1 }

var offsetsByType = map[model.ChordType][]int{
	model.Triads:   {0, 2, 4},
	model.Sevenths: {0, 2, 4, 6},
}

// GetChordNotes returns the stacked-third triad on degreeIdx. modeNotes must
// hold at least degreeIdx+5 entries; overflow padding guarantees that.
func GetChordNotes(modeNotes []model.NoteIndex, degreeIdx int) []model.NoteIndex {
	return GetChordNotesOfType(modeNotes, degreeIdx, model.Triads)
}

func GetChordNotesOfType(modeNotes []model.NoteIndex, degreeIdx int, chordType model.ChordType) []model.NoteIndex {
	offsets, ok := offsetsByType[chordType]
	if !ok {
		offsets = offsetsByType[model.Triads]
	}
	res := make([]model.NoteIndex, len(offsets))
	for i, o := range offsets {
		res[i] = modeNotes[degreeIdx+o]
	}
	return res
}

// GetChordDescriptor classifies a triad by how far its 3rd and 5th sit from
// the major-scale 3rd and 5th of its root.
func GetChordDescriptor(chordNotes []model.NoteIndex) model.ChordQuality {
	if len(chordNotes) < 3 {
		return model.QualityUnknown
	}
	root := chordNotes[0]
	thirdDev := chordNotes[1] - third(root)
	fifthDev := chordNotes[2] - fifth(root)

	switch {
	case thirdDev == 0 && fifthDev == 0:
		return model.QualityMajor
	case thirdDev == -1 && fifthDev == 0:
		return model.QualityMinor
	case thirdDev == -1 && fifthDev == -1:
		return model.QualityDiminished
	case thirdDev == 0 && fifthDev == 1:
		return model.QualityAugmented
	case thirdDev == 1 && fifthDev == 0:
		return model.QualitySus4
	case thirdDev == -2 && fifthDev == 0:
		return model.QualitySus2
	}
	return model.QualityUnknown
}

type Slot struct {
	Note    model.NoteIndex
	Present bool
}

// GetChordNotesInChromaticScale lays chord tones onto a chromatic row of
// length slots that starts at the chord root.
func GetChordNotesInChromaticScale(chordNotes []model.NoteIndex, length int) []Slot {
	res := make([]Slot, length)
	if len(chordNotes) == 0 {
		return res
	}
	root := chordNotes[0]
	for _, n := range chordNotes {
		pos := int(n.Sub(root))
		if pos >= 0 && pos < length {
			res[pos] = Slot{Note: n, Present: true}
		}
	}
	return res
}

// CreateChordKey sorts a copy of notes and joins them, e.g. "0-4-7".
func CreateChordKey[A constraints.Integer](notes []A) string {
	sorted := append([]A(nil), notes...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	parts := make([]string, len(sorted))
	for i, n := range sorted {
		parts[i] = fmt.Sprintf("%v", n)
	}
	return strings.Join(parts, "-")
}
