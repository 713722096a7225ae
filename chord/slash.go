package chord

import (
	"sort"

	"github.com/jsphweid/modeviz/mode"
	"github.com/jsphweid/modeviz/model"
)

// GetSlashBassNote drops the note on bassDegreeIdx by octaves until it sits
// strictly below the chord root on chordDegreeIdx.
func GetSlashBassNote(modeNotes []model.NoteIndex, chordDegreeIdx int, bassDegreeIdx int) (model.NoteIndex, bool) {
	if !inRange(modeNotes, chordDegreeIdx) || !inRange(modeNotes, bassDegreeIdx) {
		return 0, false
	}
	root := modeNotes[chordDegreeIdx]
	bass := modeNotes[bassDegreeIdx]
	for bass >= root {
		bass = bass.Add(-mode.Octave)
	}
	return bass, true
}

// BuildSlashChordVoicing returns the bass followed by the remaining chord
// tones in close position within the octave above it. Tones sharing the
// bass's pitch class are dropped.
func BuildSlashChordVoicing(chordNotes []model.NoteIndex, modeNotes []model.NoteIndex, chordDegreeIdx int, bassDegreeIdx int) []model.NoteIndex {
	bass, ok := GetSlashBassNote(modeNotes, chordDegreeIdx, bassDegreeIdx)
	if !ok {
		res := make([]model.NoteIndex, len(chordNotes))
		copy(res, chordNotes)
		return res
	}

	top := bass.Add(mode.Octave)
	var upper []model.NoteIndex
	for _, n := range chordNotes {
		if n.PitchClass() == bass.PitchClass() {
			continue
		}
		for n <= bass {
			n = n.Add(mode.Octave)
		}
		for n > top {
			n = n.Add(-mode.Octave)
		}
		upper = append(upper, n)
	}
	sort.Slice(upper, func(i, j int) bool {
		return upper[i] < upper[j]
	})

	return append([]model.NoteIndex{bass}, upper...)
}

func inRange(notes []model.NoteIndex, idx int) bool {
	return idx >= 0 && idx < len(notes)
}
