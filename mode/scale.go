package mode

import (
	"github.com/jsphweid/modeviz/model"
	"github.com/jsphweid/modeviz/note"
)

// OverflowSize is how many degrees are padded on each side of a mode.
// Stacked-third reads go up to six positions past a degree.
const OverflowSize = 5

// AddOverflowToModeIntervals pads the intervals with the five highest
// non-octave degrees of the octave below and degrees 1..5 of the octave above.
func AddOverflowToModeIntervals(intervals []model.Interval) []model.Interval {
	if len(intervals) < OverflowSize+1 {
		return append([]model.Interval(nil), intervals...)
	}

	lastNonOctave := len(intervals) - 2
	res := make([]model.Interval, 0, len(intervals)+2*OverflowSize)
	for i := lastNonOctave - OverflowSize + 1; i <= lastNonOctave; i++ {
		res = append(res, intervals[i]-Octave)
	}
	res = append(res, intervals...)
	for i := 1; i <= OverflowSize; i++ {
		res = append(res, intervals[i]+Octave)
	}
	return res
}

func GetModeLeftOverflowSize(intervals []model.Interval) int {
	return (len(AddOverflowToModeIntervals(intervals)) - len(intervals)) / 2
}

func DegreeCount(intervals []model.Interval) int {
	if len(intervals) == 0 {
		return 0
	}
	return len(intervals) - 1
}

// ModeIntervalsToMode turns intervals into absolute indexes into notes.
// It returns an empty slice when root is not part of notes.
func ModeIntervalsToMode(root model.Note, intervals []model.Interval, notes []model.Note) []model.NoteIndex {
	rootIndex, ok := note.IndexOf(notes, root)
	if !ok {
		return []model.NoteIndex{}
	}
	res := make([]model.NoteIndex, len(intervals))
	for i, interval := range intervals {
		res[i] = rootIndex.Add(interval)
	}
	return res
}

func BuildModeNotesWithOverflow(root model.Note, intervals []model.Interval, notes []model.Note) []model.NoteIndex {
	return ModeIntervalsToMode(root, AddOverflowToModeIntervals(intervals), notes)
}

func LeftTrimOverflowNotes(modeNotesWithOverflow []model.NoteIndex, leftOverflowSize int) []model.NoteIndex {
	if leftOverflowSize >= len(modeNotesWithOverflow) {
		return []model.NoteIndex{}
	}
	return modeNotesWithOverflow[leftOverflowSize:]
}
