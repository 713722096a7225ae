package note

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jsphweid/modeviz/model"
)

var ErrInvalidKey = errors.New("invalid key")

const (
	MinOctave     = 1
	MaxOctave     = 6
	DefaultOctave = 3
)

var baseNotes = []model.Note{
	model.NewNote(model.C, model.Natural, 0),
	model.NewNote(model.C, model.Sharp, 0),
	model.NewNote(model.D, model.Natural, 0),
	model.NewNote(model.D, model.Sharp, 0),
	model.NewNote(model.E, model.Natural, 0),
	model.NewNote(model.F, model.Natural, 0),
	model.NewNote(model.F, model.Sharp, 0),
	model.NewNote(model.G, model.Natural, 0),
	model.NewNote(model.G, model.Sharp, 0),
	model.NewNote(model.A, model.Natural, 0),
	model.NewNote(model.A, model.Sharp, 0),
	model.NewNote(model.B, model.Natural, 0),
}

// ChromaticScale is C through C with the octave wrap, 13 notes.
var ChromaticScale = append(append([]model.Note{}, baseNotes...), model.NewNote(model.C, model.Natural, 0))

// Default spans the six octaves the visualizer works in.
var Default = GenerateOctaves(MaxOctave)

// GenerateOctaves returns the sharp-spelled notes of octaves 1..count.
func GenerateOctaves(count int) []model.Note {
	res := make([]model.Note, 0, count*len(baseNotes))
	for octave := 1; octave <= count; octave++ {
		for _, n := range baseNotes {
			res = append(res, model.NewNote(n.Letter, n.Accidental, octave))
		}
	}
	return res
}

func IndexOf(notes []model.Note, n model.Note) (model.NoteIndex, bool) {
	for i, v := range notes {
		if v == n {
			return model.NoteIndex(i), true
		}
	}
	return 0, false
}

// IndexOfPitch is IndexOf falling back to enharmonic equivalents, so "Eb3"
// finds the vocabulary's "D#3".
func IndexOfPitch(notes []model.Note, n model.Note) (model.NoteIndex, bool) {
	if idx, ok := IndexOf(notes, n); ok {
		return idx, true
	}
	key := n.MIDIKey()
	for i, v := range notes {
		if v.MIDIKey() == key {
			return model.NoteIndex(i), true
		}
	}
	return 0, false
}

// At returns the note at idx, or false when idx is outside notes.
func At(notes []model.Note, idx model.NoteIndex) (model.Note, bool) {
	if idx < 0 || int(idx) >= len(notes) {
		return model.Note{}, false
	}
	return notes[idx], true
}

var strictPattern = regexp.MustCompile(`^([A-Ga-g])(#|b|♭)?(-?\d+)$`)

// Parse reads a fully specified note such as "C#3", "Eb4" or "E♭4".
func Parse(s string) (model.Note, error) {
	m := strictPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return model.Note{}, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}
	octave, err := strconv.Atoi(m[3])
	if err != nil {
		return model.Note{}, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}
	accidental := model.Natural
	switch m[2] {
	case "#":
		accidental = model.Sharp
	case "b", "♭":
		accidental = model.Flat
	}
	return model.NewNote(model.Letter(strings.ToUpper(m[1])), accidental, octave), nil
}

var keyPattern = regexp.MustCompile(`^([A-Ga-g])([b#]?)(\d+)?$`)

var flatToSharp = map[string]string{
	"Db": "C#",
	"Eb": "D#",
	"Gb": "F#",
	"Ab": "G#",
	"Bb": "A#",
}

// NormalizeKey validates assistant input against the sharp-spelled root
// vocabulary of octaves 1-6 and returns its canonical form, e.g. "Bb" -> "A#3".
func NormalizeKey(input string, defaultOctave int) (string, error) {
	trimmed := strings.TrimSpace(input)
	m := keyPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, input)
	}

	letter := strings.ToUpper(m[1])
	core := letter + m[2]
	if m[2] == "b" {
		sharp, ok := flatToSharp[core]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrInvalidKey, input)
		}
		core = sharp
	}

	octave := strconv.Itoa(defaultOctave)
	if m[3] != "" {
		octave = m[3]
	}

	normalized := core + octave
	for _, n := range Default {
		if n.ToneString() == normalized {
			return normalized, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidKey, input)
}
