package model

import "github.com/jsphweid/modeviz/util"

// PitchClass is a note's position within one octave, C = 0 ... B = 11.
type PitchClass int

// NoteIndex is an absolute position in a flat, ordered note sequence.
type NoteIndex int

// Interval is a semitone offset from a root. Negative values and values
// above an octave are valid (overflow and extended degrees).
type Interval int

const SemitonesPerOctave = 12

func (n NoteIndex) Add(i Interval) NoteIndex {
	return n + NoteIndex(i)
}

func (n NoteIndex) Sub(other NoteIndex) Interval {
	return Interval(n - other)
}

func (n NoteIndex) PitchClass() PitchClass {
	return PitchClass(util.Mod(int(n), SemitonesPerOctave))
}

func (i Interval) Octaves(n int) Interval {
	return i + Interval(n*SemitonesPerOctave)
}

func (p PitchClass) Transpose(i Interval) PitchClass {
	return PitchClass(util.Mod(int(p)+int(i), SemitonesPerOctave))
}

func NoteIndexes(values ...int) []NoteIndex {
	res := make([]NoteIndex, len(values))
	for i, v := range values {
		res[i] = NoteIndex(v)
	}
	return res
}

func Intervals(values ...int) []Interval {
	res := make([]Interval, len(values))
	for i, v := range values {
		res[i] = Interval(v)
	}
	return res
}
