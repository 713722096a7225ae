package mode

import (
	"testing"

	"github.com/jsphweid/modeviz/model"
	"github.com/jsphweid/modeviz/note"
	"github.com/stretchr/testify/assert"
)

var (
	c1 = model.NewNote(model.C, model.Natural, 1)
	d1 = model.NewNote(model.D, model.Natural, 1)
)

func TestAddOverflowToModeIntervals(t *testing.T) {
	assert := assert.New(t)
	res := AddOverflowToModeIntervals(Ionian())
	assert.Len(res, len(Ionian())+10)

	for i := 0; i < 5; i++ {
		assert.Less(res[i], model.Interval(0))
	}
	for i := len(res) - 5; i < len(res); i++ {
		assert.Greater(res[i], Octave)
	}
	assert.Equal(Ionian(), res[5:5+len(Ionian())])
	assert.Equal(model.Intervals(-8, -7, -5, -3, -1), res[:5])
	assert.Equal(model.Intervals(14, 16, 17, 19, 21), res[len(res)-5:])
}

func TestAddOverflowWorksForAllModes(t *testing.T) {
	for _, m := range All() {
		t.Run(m.Name, func(t *testing.T) {
			res := AddOverflowToModeIntervals(m.Intervals)
			assert.Len(t, res, len(m.Intervals)+10)
			assert.Equal(t, m.Intervals, res[5:5+len(m.Intervals)])
			assert.Equal(t, 5, GetModeLeftOverflowSize(m.Intervals))
		})
	}
}

func TestWholeToneOverflowUsesItsOwnDegrees(t *testing.T) {
	res := AddOverflowToModeIntervals(IntervalsFor("Whole Tone"))
	assert.Equal(t, model.Intervals(-10, -8, -6, -4, -2), res[:5])
	assert.Equal(t, model.Intervals(14, 16, 18, 20, 22), res[len(res)-5:])
}

func TestAddOverflowDoesNotAliasInput(t *testing.T) {
	in := model.Intervals(0, 2, 4, 5, 7, 9, 11, 12)
	res := AddOverflowToModeIntervals(in)
	res[5] = 42
	assert.Equal(t, model.Interval(0), in[0])
}

func TestModeIntervalsToMode(t *testing.T) {
	assert := assert.New(t)
	notes := note.GenerateOctaves(6)

	res := ModeIntervalsToMode(c1, Ionian(), notes)
	assert.Equal(model.NoteIndexes(0, 2, 4, 5, 7, 9, 11, 12), res)

	res = ModeIntervalsToMode(d1, Ionian(), notes)
	assert.Len(res, len(Ionian()))
	assert.Equal(model.NoteIndex(2), res[0])

	bogus := model.NewNote(model.C, model.Natural, 9)
	assert.Equal([]model.NoteIndex{}, ModeIntervalsToMode(bogus, Ionian(), notes))
}

func TestModeIntervalsToModeRecoversNotes(t *testing.T) {
	notes := note.GenerateOctaves(6)
	g2 := model.NewNote(model.G, model.Natural, 2)

	var names []string
	for _, idx := range ModeIntervalsToMode(g2, Ionian(), notes) {
		names = append(names, notes[idx].ToneString())
	}
	assert.Equal(t, []string{"G2", "A2", "B2", "C3", "D3", "E3", "F#3", "G3"}, names)
}

func TestBuildModeNotesWithOverflow(t *testing.T) {
	assert := assert.New(t)
	notes := note.GenerateOctaves(6)

	res := BuildModeNotesWithOverflow(c1, Ionian(), notes)
	assert.Len(res, len(Ionian())+10)

	base := ModeIntervalsToMode(c1, Ionian(), notes)
	left := GetModeLeftOverflowSize(Ionian())
	for i := range base {
		assert.Equal(base[i], res[left+i])
	}

	bogus := model.NewNote(model.C, model.Natural, 9)
	assert.Empty(BuildModeNotesWithOverflow(bogus, Ionian(), notes))
}

func TestLeftTrimOverflowNotes(t *testing.T) {
	assert := assert.New(t)
	arr := model.NoteIndexes(10, 20, 30, 40, 50, 60, 70, 80)
	assert.Equal(model.NoteIndexes(40, 50, 60, 70, 80), LeftTrimOverflowNotes(arr, 3))

	small := model.NoteIndexes(1, 2, 3)
	assert.Equal(small, LeftTrimOverflowNotes(small, 0))
	assert.Equal([]model.NoteIndex{}, LeftTrimOverflowNotes(small, 3))
}

func TestDegreeCount(t *testing.T) {
	assert.Equal(t, 7, DegreeCount(Ionian()))
	assert.Equal(t, 6, DegreeCount(IntervalsFor("Whole Tone")))
	assert.Equal(t, 0, DegreeCount(nil))
}
