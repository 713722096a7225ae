package visualizer

import (
	"testing"

	"github.com/jsphweid/modeviz/degree"
	"github.com/jsphweid/modeviz/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var c3 = model.NewNote(model.C, model.Natural, 3)

func symbols(v View) []string {
	var res []string
	for _, d := range v.Degrees {
		res = append(res, d.Symbol)
	}
	return res
}

func TestBuildCMajor(t *testing.T) {
	assert := assert.New(t)
	v, err := Build(c3, "Ionian (major)", nil, Options{})
	require.NoError(t, err)

	assert.Equal("C3", v.Root)
	assert.Equal("Ionian (major)", v.Mode)
	assert.Equal(model.Triads, v.ChordType)
	assert.Equal(5, v.LeftOverflow)
	assert.Len(v.ModeNotes, 18)
	assert.Len(v.Labels, 18)
	assert.Equal([]string{"C3", "D3", "E3", "F3", "G3", "A3", "B3", "C4"}, v.Labels[5:13])
	assert.Equal([]string{"C", "Dm", "Em", "F", "G", "Am", "B°"}, symbols(v))

	assert.Len(v.Chromatic, 13)
	assert.Equal("C", v.Chromatic[0].Label)
	assert.Equal("C#", v.Chromatic[1].Label)
	assert.False(v.Chromatic[1].InMode)
	assert.True(v.Chromatic[2].InMode)
	assert.True(v.Chromatic[12].InMode)

	ii := v.Degrees[1]
	assert.Equal("II", ii.Numeral)
	assert.Equal("D", ii.Root)
	assert.Equal(model.QualityMinor, ii.Quality)
	assert.Equal([]string{"D", "F", "A"}, ii.ToneNames)
	assert.Equal([]string{"1", "♭3", "5"}, ii.ToneDegrees)
	assert.Equal(ii.Notes, ii.Voicing)
	assert.Empty(ii.DisabledExtensions)
}

func TestBuildAcceptsLenientModeNames(t *testing.T) {
	v, err := Build(c3, "aeolian", nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, "Aeolian (natural minor)", v.Mode)
	assert.Equal(t, []string{"Cm", "D°", "E♭", "Fm", "Gm", "A♭", "B♭"}, symbols(v))
}

func TestBuildFlatRoot(t *testing.T) {
	v, err := Build(model.NewNote(model.E, model.Flat, 3), "Ionian (major)", nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, "E♭3", v.Root)
	assert.Equal(t, []string{"E♭", "Fm", "Gm", "A♭", "B♭", "Cm", "D°"}, symbols(v))
}

func TestBuildWithExtensionsAndSlash(t *testing.T) {
	assert := assert.New(t)
	states := degree.New(7)
	require.NoError(t, states.SetExtensions(4, []model.Extension{model.Ext7}))
	bass := 0
	require.NoError(t, states.SetSlashBass(4, &bass))
	require.NoError(t, states.SetExtensions(1, []model.Extension{model.Ext7}))

	v, err := Build(c3, "Ionian (major)", states, Options{})
	require.NoError(t, err)

	ii := v.Degrees[1]
	assert.Equal("Dm7", ii.Symbol)
	assert.Contains(ii.DisabledExtensions, model.ExtMaj7)

	five := v.Degrees[4]
	assert.Equal("G7/C", five.Symbol)
	assert.Equal(model.NoteIndexes(31, 35, 38, 41), five.Notes)
	assert.Equal(model.NoteIndex(24), five.Voicing[0])
	assert.Equal([]string{"C", "D", "F", "G", "B"}, five.ToneNames)
	assert.Equal([]string{"1", "3", "5", "♭7"}, five.ToneDegrees)
	assert.Equal(0, *five.SlashBass)
}

func TestBuildSevenths(t *testing.T) {
	v, err := Build(c3, "Ionian (major)", nil, Options{ChordType: model.Sevenths})
	require.NoError(t, err)
	assert.Equal(t, []string{"Cmaj7", "Dm7", "Em7", "Fmaj7", "G7", "Am7", "Bø7"}, symbols(v))
	assert.Len(t, v.Degrees[0].Notes, 4)
}

func TestBuildHarmonicMinorSevenths(t *testing.T) {
	v, err := Build(model.NewNote(model.A, model.Natural, 2), "Harmonic Minor", nil, Options{ChordType: model.Sevenths})
	require.NoError(t, err)
	assert.Equal(t, "G#°7", v.Degrees[6].Symbol)
}

func TestBuildResizesStates(t *testing.T) {
	states := degree.New(9)
	require.NoError(t, states.SetExtensions(8, []model.Extension{model.Ext7}))
	v, err := Build(c3, "Whole Tone", states, Options{})
	require.NoError(t, err)
	assert.Len(t, v.Degrees, 6)
	assert.Len(t, states, 9)
}

func TestBuildErrors(t *testing.T) {
	_, err := Build(c3, "Bebop", nil, Options{})
	assert.ErrorIs(t, err, ErrUnknownMode)

	_, err = Build(model.NewNote(model.C, model.Natural, 8), "Dorian", nil, Options{})
	assert.ErrorIs(t, err, ErrUnknownRoot)
}
