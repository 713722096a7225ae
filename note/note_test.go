package note

import (
	"testing"

	"github.com/jsphweid/modeviz/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChromaticScale(t *testing.T) {
	assert := assert.New(t)
	assert.Len(ChromaticScale, 13)
	assert.True(ChromaticScale[0].IsC())
	assert.True(ChromaticScale[12].IsC())

	unique := make(map[model.PitchClass]bool)
	for _, n := range ChromaticScale {
		unique[n.PitchClass()] = true
	}
	assert.Len(unique, 12)
}

func TestGenerateOctaves(t *testing.T) {
	assert := assert.New(t)
	assert.Len(GenerateOctaves(0), 0)
	assert.Len(GenerateOctaves(1), 12)
	assert.Len(GenerateOctaves(6), 72)

	notes := GenerateOctaves(6)
	assert.Equal("C1", notes[0].ToneString())
	assert.Equal("B1", notes[11].ToneString())
	assert.Equal("B6", notes[71].ToneString())

	var names []string
	for _, n := range GenerateOctaves(1) {
		names = append(names, n.ToneString())
	}
	assert.Equal([]string{
		"C1", "C#1", "D1", "D#1", "E1", "F1",
		"F#1", "G1", "G#1", "A1", "A#1", "B1",
	}, names)
}

func TestIndexOfAndAt(t *testing.T) {
	assert := assert.New(t)
	idx, ok := IndexOf(Default, model.NewNote(model.D, model.Natural, 1))
	assert.True(ok)
	assert.Equal(model.NoteIndex(2), idx)

	_, ok = IndexOf(Default, model.NewNote(model.C, model.Natural, 9))
	assert.False(ok)

	n, ok := At(Default, 12)
	assert.True(ok)
	assert.Equal("C2", n.ToneString())
	_, ok = At(Default, -1)
	assert.False(ok)
	_, ok = At(Default, 72)
	assert.False(ok)
}

func TestParse(t *testing.T) {
	n, err := Parse("Eb4")
	require.NoError(t, err)
	assert.Equal(t, model.NewNote(model.E, model.Flat, 4), n)

	n, err = Parse("c#3")
	require.NoError(t, err)
	assert.Equal(t, model.NewNote(model.C, model.Sharp, 3), n)

	_, err = Parse("C")
	assert.ErrorIs(t, err, ErrInvalidKey)
	_, err = Parse("H2")
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestNormalizeKey(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"G", "G3"},
		{"G3", "G3"},
		{"g#2", "G#2"},
		{"Bb", "A#3"},
		{"Bb4", "A#4"},
		{"Db1", "C#1"},
		{" F#4 ", "F#4"},
		{"C6", "C6"},
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			res, err := NormalizeKey(c.input, DefaultOctave)
			require.NoError(t, err)
			assert.Equal(t, c.expected, res)
		})
	}
}

func TestNormalizeKeyRejectsInvalid(t *testing.T) {
	for _, input := range []string{"", "H2", "Cb3", "Fb", "E#3", "C7", "C0", "Gbb"} {
		t.Run(input, func(t *testing.T) {
			_, err := NormalizeKey(input, DefaultOctave)
			assert.ErrorIs(t, err, ErrInvalidKey)
		})
	}
}

func TestNormalizeKeyUsesDefaultOctave(t *testing.T) {
	res, err := NormalizeKey("A", 5)
	require.NoError(t, err)
	assert.Equal(t, "A5", res)
}

func TestIndexOfPitch(t *testing.T) {
	assert := assert.New(t)
	idx, ok := IndexOfPitch(Default, model.NewNote(model.E, model.Flat, 3))
	assert.True(ok)
	assert.Equal(model.NewNote(model.D, model.Sharp, 3), Default[idx])

	idx, ok = IndexOfPitch(Default, model.NewNote(model.C, model.Natural, 1))
	assert.True(ok)
	assert.Equal(model.NoteIndex(0), idx)

	_, ok = IndexOfPitch(Default, model.NewNote(model.C, model.Natural, 7))
	assert.False(ok)
}
