package chord

import (
	"fmt"
	"testing"

	"github.com/jsphweid/modeviz/mode"
	"github.com/jsphweid/modeviz/model"
	"github.com/stretchr/testify/assert"
)

func TestGetChordDescriptor(t *testing.T) {
	cases := []struct {
		notes    []model.NoteIndex
		expected model.ChordQuality
	}{
		{model.NoteIndexes(0, 4, 7), ""},
		{model.NoteIndexes(0, 3, 7), "m"},
		{model.NoteIndexes(0, 3, 6), "°"},
		{model.NoteIndexes(0, 4, 8), "+"},
		{model.NoteIndexes(0, 5, 7), "sus4"},
		{model.NoteIndexes(0, 2, 7), "sus2"},
		{model.NoteIndexes(0, 1, 7), "?"},
	}

	for _, c := range cases {
		for _, k := range []int{0, 2, 11, 37} {
			name := fmt.Sprintf("%v transposed by %v", c.notes, k)
			t.Run(name, func(t *testing.T) {
				transposed := make([]model.NoteIndex, len(c.notes))
				for i, n := range c.notes {
					transposed[i] = n + model.NoteIndex(k)
				}
				assert.Equal(t, c.expected, GetChordDescriptor(transposed))
			})
		}
	}
}

func TestDescriptorIgnoresCallerCopiesOfIonian(t *testing.T) {
	scale := mode.Ionian()
	scale[2] = 3
	assert.Equal(t, model.QualityMajor, GetChordDescriptor(model.NoteIndexes(0, 4, 7)))
}

func TestGetChordDescriptorNonZeroRoot(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(model.QualityMajor, GetChordDescriptor(model.NoteIndexes(2, 6, 9)))
	assert.Equal(model.QualityMinor, GetChordDescriptor(model.NoteIndexes(2, 5, 9)))
	assert.Equal(model.QualityUnknown, GetChordDescriptor(model.NoteIndexes(2, 5)))
}

func TestGetChordNotes(t *testing.T) {
	assert := assert.New(t)
	modeNotes := model.NoteIndexes(0, 2, 4, 5, 7, 9, 11, 12)

	triad := GetChordNotes(modeNotes, 0)
	assert.Equal(model.NoteIndexes(0, 4, 7), triad)

	ii := GetChordNotes(modeNotes, 1)
	assert.Equal(model.NoteIndexes(2, 5, 9), ii)
	assert.Equal(model.QualityMinor, GetChordDescriptor(ii))

	seventh := GetChordNotesOfType(modeNotes, 0, model.Sevenths)
	assert.Equal(model.NoteIndexes(0, 4, 7, 11), seventh)
}

func TestDiatonicQualitiesOfIonian(t *testing.T) {
	padded := mode.AddOverflowToModeIntervals(mode.Ionian())
	modeNotes := make([]model.NoteIndex, 0, len(padded))
	for _, i := range padded[mode.GetModeLeftOverflowSize(mode.Ionian()):] {
		modeNotes = append(modeNotes, model.NoteIndex(i))
	}

	var qualities []model.ChordQuality
	for degree := 0; degree < 7; degree++ {
		qualities = append(qualities, GetChordDescriptor(GetChordNotes(modeNotes, degree)))
	}
	assert.Equal(t, []model.ChordQuality{"", "m", "m", "", "", "m", "°"}, qualities)
}

func TestGetChordNotesInChromaticScale(t *testing.T) {
	assert := assert.New(t)
	res := GetChordNotesInChromaticScale(model.NoteIndexes(5, 9, 12, 19), 13)
	assert.Len(res, 13)
	assert.Equal(Slot{Note: 5, Present: true}, res[0])
	assert.Equal(Slot{Note: 9, Present: true}, res[4])
	assert.Equal(Slot{Note: 12, Present: true}, res[7])
	assert.False(res[1].Present)

	present := 0
	for _, s := range res {
		if s.Present {
			present++
		}
	}
	assert.Equal(3, present)
	assert.Len(GetChordNotesInChromaticScale(nil, 13), 13)
}

func TestCreateChordKey(t *testing.T) {
	assert := assert.New(t)
	notes := []uint8{67, 60, 64}
	assert.Equal("60-64-67", CreateChordKey(notes))
	assert.Equal([]uint8{67, 60, 64}, notes)
	assert.Equal("0-4-7", CreateChordKey([]int{7, 0, 4}))
	assert.Equal("", CreateChordKey([]int{}))
}

func TestSeventhQuality(t *testing.T) {
	cases := []struct {
		notes    []model.NoteIndex
		quality  model.ChordQuality
		exts     []model.Extension
		expected string
	}{
		{model.NoteIndexes(0, 4, 7, 11), "", []model.Extension{model.ExtMaj7}, "Cmaj7"},
		{model.NoteIndexes(0, 3, 7, 10), "m", []model.Extension{model.Ext7}, "Cm7"},
		{model.NoteIndexes(0, 4, 7, 10), "", []model.Extension{model.Ext7}, "C7"},
		{model.NoteIndexes(0, 3, 6, 10), "°", []model.Extension{model.Ext7}, "Cø7"},
		{model.NoteIndexes(0, 3, 6, 9), "°7", nil, "C°7"},
		{model.NoteIndexes(0, 4, 7), "", nil, "C"},
	}
	for _, c := range cases {
		t.Run(c.expected, func(t *testing.T) {
			quality, exts := SeventhQuality(c.notes)
			assert.Equal(t, c.quality, quality)
			assert.Equal(t, c.exts, exts)
			assert.Equal(t, c.expected, Symbol("C", quality, exts, ""))
		})
	}
}
