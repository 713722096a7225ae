package progression

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/modeviz/chord"
	"github.com/jsphweid/modeviz/degree"
	"github.com/jsphweid/modeviz/model"
	"github.com/jsphweid/modeviz/note"
	"github.com/jsphweid/modeviz/spelling"
	"github.com/jsphweid/modeviz/visualizer"
)

var (
	ErrInvalidEntry  = errors.New("invalid progression entry")
	ErrKeyOutOfRange = errors.New("key outside MIDI range")
)

// Entry is one chord of a progression. Degree and SlashBass are 1-based.
type Entry struct {
	Degree     int               `json:"degree"`
	Extensions []model.Extension `json:"extensions"`
	SlashBass  *int              `json:"slashBass,omitempty"`
}

type Chord struct {
	Entry   Entry             `json:"entry"`
	Numeral string            `json:"numeral"`
	Symbol  string            `json:"symbol"`
	Notes   []model.NoteIndex `json:"notes"`
	Names   []string          `json:"names"`
	Keys    []uint8           `json:"keys"`
}

// Default is I-IV-V-I.
func Default() []Entry {
	return []Entry{{Degree: 1}, {Degree: 4}, {Degree: 5}, {Degree: 1}}
}

// Parse reads entries like "1,4:7,5/1,2:m+7". Each entry is a 1-based degree,
// optional ":"-prefixed extensions joined by "+", and an optional "/bass"
// degree.
func Parse(text string) ([]Entry, error) {
	var res []Entry
	for _, raw := range strings.Split(text, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		entry, err := parseEntry(raw)
		if err != nil {
			return nil, err
		}
		res = append(res, entry)
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("%w: empty progression", ErrInvalidEntry)
	}
	return res, nil
}

func parseEntry(raw string) (Entry, error) {
	var entry Entry
	rest, bass, hasBass := strings.Cut(raw, "/")
	rest, exts, hasExts := strings.Cut(rest, ":")

	deg, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil || deg < 1 {
		return Entry{}, fmt.Errorf("%w: %q", ErrInvalidEntry, raw)
	}
	entry.Degree = deg

	if hasExts {
		for _, token := range strings.Split(exts, "+") {
			ext, ok := model.ParseExtension(strings.TrimSpace(token))
			if !ok {
				return Entry{}, fmt.Errorf("%w: unknown extension %q in %q", ErrInvalidEntry, token, raw)
			}
			entry.Extensions = append(entry.Extensions, ext)
		}
	}

	if hasBass {
		b, err := strconv.Atoi(strings.TrimSpace(bass))
		if err != nil || b < 1 {
			return Entry{}, fmt.Errorf("%w: %q", ErrInvalidEntry, raw)
		}
		entry.SlashBass = &b
	}
	return entry, nil
}

func (e Entry) String() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(e.Degree))
	for i, ext := range e.Extensions {
		if i == 0 {
			b.WriteString(":")
		} else {
			b.WriteString("+")
		}
		b.WriteString(string(ext))
	}
	if e.SlashBass != nil {
		fmt.Fprintf(&b, "/%d", *e.SlashBass)
	}
	return b.String()
}

// Voice turns entries into concrete voicings over the given mode.
func Voice(root model.Note, modeName string, entries []Entry, notes []model.Note) ([]Chord, error) {
	view, err := visualizer.Build(root, modeName, nil, visualizer.Options{Notes: notes})
	if err != nil {
		return nil, err
	}
	if len(notes) == 0 {
		notes = note.Default
	}
	modeNotes := view.ModeNotes[view.LeftOverflow:]
	count := len(view.Degrees)

	res := make([]Chord, 0, len(entries))
	for _, e := range entries {
		idx := e.Degree - 1
		if idx < 0 || idx >= count {
			return nil, fmt.Errorf("%w: %d (mode has %d)", degree.ErrDegreeOutOfRange, e.Degree, count)
		}
		d := view.Degrees[idx]

		extended := chord.ApplyExtensions(d.BaseNotes, e.Extensions)
		voicing := extended
		bassLabel := ""
		if e.SlashBass != nil {
			bassIdx := *e.SlashBass - 1
			if bassIdx < 0 || bassIdx >= count {
				return nil, fmt.Errorf("%w: bass %d (mode has %d)", degree.ErrDegreeOutOfRange, *e.SlashBass, count)
			}
			voicing = chord.BuildSlashChordVoicing(extended, modeNotes, idx, bassIdx)
			bassLabel = view.Degrees[bassIdx].Root
		}

		quality := chord.GetChordDescriptor(extended)
		c := Chord{
			Entry:   e,
			Numeral: Numeral(idx, quality),
			Symbol:  chord.Symbol(d.Root, quality, e.Extensions, bassLabel),
			Notes:   voicing,
		}
		c.Names = spelling.SpellChord(modeNotes[idx], d.RootNote, voicing, notes)
		// voicings may reach below the vocabulary, so keys are offsets from its
		// first note rather than lookups
		base := notes[0].MIDIKey()
		for _, n := range voicing {
			key := base + int(n)
			if key < 0 || key > 127 {
				return nil, fmt.Errorf("%w: %d in %s", ErrKeyOutOfRange, key, c.Symbol)
			}
			c.Keys = append(c.Keys, uint8(key))
		}
		res = append(res, c)
	}
	return res, nil
}

// Numeral renders a degree in roman numerals with case and symbol following
// the quality: "ii", "vii°", "III+".
func Numeral(degreeIdx int, quality model.ChordQuality) string {
	numeral := chord.RomanNumeral(degreeIdx)
	switch quality {
	case model.QualityMinor:
		return strings.ToLower(numeral)
	case model.QualityDiminished:
		return strings.ToLower(numeral) + string(model.QualityDiminished)
	case model.QualityAugmented:
		return numeral + string(model.QualityAugmented)
	}
	return numeral
}

// Keys flattens the voicings to MIDI keys, one chord per element.
func Keys(chords []Chord) [][]uint8 {
	res := make([][]uint8, len(chords))
	for i, c := range chords {
		res[i] = c.Keys
	}
	return res
}
