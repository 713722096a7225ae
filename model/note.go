package model

import "fmt"

type Letter string

const (
	C Letter = "C"
	D Letter = "D"
	E Letter = "E"
	F Letter = "F"
	G Letter = "G"
	A Letter = "A"
	B Letter = "B"
)

var Letters = []Letter{C, D, E, F, G, A, B}

var letterPitchClasses = map[Letter]PitchClass{
	C: 0, D: 2, E: 4, F: 5, G: 7, A: 9, B: 11,
}

func (l Letter) Valid() bool {
	_, ok := letterPitchClasses[l]
	return ok
}

func (l Letter) PitchClass() PitchClass {
	return letterPitchClasses[l]
}

func (l Letter) Index() int {
	for i, v := range Letters {
		if v == l {
			return i
		}
	}
	return -1
}

func (l Letter) Step(n int) Letter {
	idx := l.Index()
	if idx < 0 {
		return l
	}
	return Letters[((idx+n)%len(Letters)+len(Letters))%len(Letters)]
}

func (l Letter) Next() Letter { return l.Step(1) }
func (l Letter) Prev() Letter { return l.Step(-1) }

type Accidental int

const (
	Natural Accidental = iota
	Sharp
	Flat
	DoubleSharp
	DoubleFlat
)

func (a Accidental) Name() string {
	switch a {
	case Sharp:
		return "sharp"
	case Flat:
		return "flat"
	case DoubleSharp:
		return "double-sharp"
	case DoubleFlat:
		return "double-flat"
	}
	return "natural"
}

func (a Accidental) DisplaySymbol() string {
	switch a {
	case Sharp:
		return "#"
	case Flat:
		return "♭"
	case DoubleSharp:
		return "𝄪"
	case DoubleFlat:
		return "𝄫"
	}
	return ""
}

func (a Accidental) ToneSymbol() string {
	switch a {
	case Sharp:
		return "#"
	case Flat:
		return "b"
	case DoubleSharp:
		return "##"
	case DoubleFlat:
		return "bb"
	}
	return ""
}

func (a Accidental) SemitoneOffset() int {
	switch a {
	case Sharp:
		return 1
	case Flat:
		return -1
	case DoubleSharp:
		return 2
	case DoubleFlat:
		return -2
	}
	return 0
}

// AccidentalFor returns the accidental raising or lowering a natural by
// offset semitones. Offsets beyond a double accidental are not representable.
func AccidentalFor(offset int) (Accidental, bool) {
	switch offset {
	case 0:
		return Natural, true
	case 1:
		return Sharp, true
	case -1:
		return Flat, true
	case 2:
		return DoubleSharp, true
	case -2:
		return DoubleFlat, true
	}
	return Natural, false
}

// Note is a comparable value; use == for structural equality.
type Note struct {
	Letter     Letter
	Accidental Accidental
	Octave     int
}

func NewNote(letter Letter, accidental Accidental, octave int) Note {
	return Note{Letter: letter, Accidental: accidental, Octave: octave}
}

// Label is the note without its octave, e.g. "C#", "E♭".
func (n Note) Label() string {
	return string(n.Letter) + n.Accidental.DisplaySymbol()
}

func (n Note) Display() string {
	return fmt.Sprintf("%v%d", n.Label(), n.Octave)
}

// ToneString uses ASCII accidentals, e.g. "Eb3".
func (n Note) ToneString() string {
	return fmt.Sprintf("%v%v%d", n.Letter, n.Accidental.ToneSymbol(), n.Octave)
}

func (n Note) String() string {
	return n.Display()
}

func (n Note) PitchClass() PitchClass {
	return n.Letter.PitchClass().Transpose(Interval(n.Accidental.SemitoneOffset()))
}

func (n Note) IsC() bool     { return n.Letter == C }
func (n Note) IsSharp() bool { return n.Accidental == Sharp }
func (n Note) IsFlat() bool  { return n.Accidental == Flat }

// MIDIKey follows the C4 = 60 convention. Accidentals crossing the octave
// boundary (B#, Cb) move the key, not the octave number.
func (n Note) MIDIKey() int {
	return (n.Octave+1)*SemitonesPerOctave + int(n.Letter.PitchClass()) + n.Accidental.SemitoneOffset()
}
