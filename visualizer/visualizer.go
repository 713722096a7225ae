package visualizer

import (
	"errors"
	"fmt"

	"github.com/jsphweid/modeviz/chord"
	"github.com/jsphweid/modeviz/degree"
	"github.com/jsphweid/modeviz/mode"
	"github.com/jsphweid/modeviz/model"
	"github.com/jsphweid/modeviz/note"
	"github.com/jsphweid/modeviz/spelling"
	"github.com/jsphweid/modeviz/util"
)

var (
	ErrUnknownMode = errors.New("unknown mode")
	ErrUnknownRoot = errors.New("unknown root")
)

// chromatic row covers the octave including its wrap
const chromaticLength = 13

type Options struct {
	ChordType model.ChordType
	// Notes is the note vocabulary; note.Default when empty.
	Notes []model.Note
}

type ChromaticSlot struct {
	Label    string         `json:"label"`
	Interval model.Interval `json:"interval"`
	InMode   bool           `json:"inMode"`
}

type Degree struct {
	Index              int                `json:"index"`
	Numeral            string             `json:"numeral"`
	Root               string             `json:"root"`
	RootNote           model.Note         `json:"-"`
	BaseNotes          []model.NoteIndex  `json:"baseNotes"`
	Quality            model.ChordQuality `json:"quality"`
	Extensions         []model.Extension  `json:"extensions"`
	DisabledExtensions []model.Extension  `json:"disabledExtensions"`
	Notes              []model.NoteIndex  `json:"notes"`
	SlashBass          *int               `json:"slashBass,omitempty"`
	Voicing            []model.NoteIndex  `json:"voicing"`
	Symbol             string             `json:"symbol"`
	ToneNames          []string           `json:"toneNames"`
	ToneDegrees        []string           `json:"toneDegrees"`
}

type View struct {
	Root         string            `json:"root"`
	Mode         string            `json:"mode"`
	Description  string            `json:"description"`
	Intervals    []model.Interval  `json:"intervals"`
	ChordType    model.ChordType   `json:"chordType"`
	ModeNotes    []model.NoteIndex `json:"modeNotes"`
	LeftOverflow int               `json:"leftOverflow"`
	Labels       []string          `json:"labels"`
	Chromatic    []ChromaticSlot   `json:"chromatic"`
	Degrees      []Degree          `json:"degrees"`
}

// Build computes everything the visualizer shows for a root and mode.
// states is resized to the mode's degree count; the caller's slice is not
// modified.
func Build(root model.Note, modeName string, states degree.States, opts Options) (View, error) {
	m, ok := mode.Resolve(modeName)
	if !ok {
		return View{}, fmt.Errorf("%w: %q", ErrUnknownMode, modeName)
	}
	notes := opts.Notes
	if len(notes) == 0 {
		notes = note.Default
	}
	chordType := opts.ChordType
	if chordType == "" {
		chordType = model.Triads
	}

	rootIdx, ok := note.IndexOfPitch(notes, root)
	if !ok {
		return View{}, fmt.Errorf("%w: %v", ErrUnknownRoot, root)
	}
	root = notes[rootIdx]

	padded := mode.BuildModeNotesWithOverflow(root, m.Intervals, notes)
	left := mode.GetModeLeftOverflowSize(m.Intervals)
	modeNotes := mode.LeftTrimOverflowNotes(padded, left)
	spelled := spelling.SpellNotes(padded, left, notes)
	labels := make([]string, len(spelled))
	for i, n := range spelled {
		if n != nil {
			labels[i] = n.Display()
		}
	}

	count := mode.DegreeCount(m.Intervals)
	states = states.Resize(count)

	view := View{
		Root:         labelAt(spelled, left, root.Display()),
		Mode:         m.Name,
		Description:  m.Description,
		Intervals:    m.Intervals,
		ChordType:    chordType,
		ModeNotes:    padded,
		LeftOverflow: left,
		Labels:       labels,
		Chromatic:    chromaticRow(root, m.Intervals),
		Degrees:      make([]Degree, 0, count),
	}

	for i := 0; i < count; i++ {
		st := states[i]
		base := chord.GetChordNotesOfType(modeNotes, i, chordType)
		extended := chord.ApplyExtensions(base, st.Extensions)
		voicing := extended
		bassLabel := ""
		if st.SlashBass != nil {
			voicing = chord.BuildSlashChordVoicing(extended, modeNotes, i, *st.SlashBass)
			bassLabel = noteLabelAt(spelled, left+*st.SlashBass)
		}

		rootSpelled := spelledAt(spelled, left+i, notes, modeNotes[i])
		quality := chord.GetChordDescriptor(extended)
		symbolQuality, symbolExts := quality, st.Extensions
		if chordType == model.Sevenths {
			var sevenths []model.Extension
			symbolQuality, sevenths = chord.SeventhQuality(extended)
			symbolExts = append(sevenths, st.Extensions...)
		}

		var toneDegrees []string
		for _, td := range chord.DescribeTones(extended) {
			toneDegrees = append(toneDegrees, td.Label)
		}

		view.Degrees = append(view.Degrees, Degree{
			Index:              i,
			Numeral:            chord.RomanNumeral(i),
			Root:               rootSpelled.Label(),
			RootNote:           rootSpelled,
			BaseNotes:          base,
			Quality:            quality,
			Extensions:         append([]model.Extension{}, st.Extensions...),
			DisabledExtensions: chord.GetDisabledExtensions(st.Extensions).Sorted(),
			Notes:              extended,
			SlashBass:          st.SlashBass,
			Voicing:            voicing,
			Symbol:             chord.Symbol(rootSpelled.Label(), symbolQuality, symbolExts, bassLabel),
			ToneNames:          spelling.SpellChord(modeNotes[i], rootSpelled, voicing, notes),
			ToneDegrees:        toneDegrees,
		})
	}
	return view, nil
}

func chromaticRow(root model.Note, intervals []model.Interval) []ChromaticSlot {
	inMode := make(map[model.PitchClass]bool)
	for _, i := range intervals {
		inMode[model.PitchClass(util.Mod(int(i), model.SemitonesPerOctave))] = true
	}
	res := make([]ChromaticSlot, chromaticLength)
	for k := range res {
		interval := model.Interval(k)
		res[k] = ChromaticSlot{
			Label:    note.ChromaticScale[root.PitchClass().Transpose(interval)].Label(),
			Interval: interval,
			InMode:   inMode[model.PitchClass(util.Mod(k, model.SemitonesPerOctave))],
		}
	}
	return res
}

func spelledAt(spelled []*model.Note, pos int, notes []model.Note, idx model.NoteIndex) model.Note {
	if pos >= 0 && pos < len(spelled) && spelled[pos] != nil {
		return *spelled[pos]
	}
	n, _ := note.At(notes, idx)
	return n
}

func labelAt(spelled []*model.Note, pos int, fallback string) string {
	if pos >= 0 && pos < len(spelled) && spelled[pos] != nil {
		return spelled[pos].Display()
	}
	return fallback
}

func noteLabelAt(spelled []*model.Note, pos int) string {
	if pos >= 0 && pos < len(spelled) && spelled[pos] != nil {
		return spelled[pos].Label()
	}
	return ""
}
