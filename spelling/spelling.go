package spelling

import (
	"sort"

	"github.com/jsphweid/modeviz/chord"
	"github.com/jsphweid/modeviz/model"
	"github.com/jsphweid/modeviz/note"
	"github.com/jsphweid/modeviz/util"
)

// penalty added when a position needs more than a double accidental
const unspellablePenalty = 10

func PitchClassOf(n model.Note) model.PitchClass {
	return n.PitchClass()
}

type candidate struct {
	spelled  []*model.Note
	maxAbs   int
	totalAbs int
}

// SpellNotes picks letter names for a padded mode so each degree gets its own
// letter with as few accidentals as possible. Positions whose index is not
// in notes stay nil.
func SpellNotes(modeNotesWithOverflow []model.NoteIndex, leftOverflow int, notes []model.Note) []*model.Note {
	if len(modeNotesWithOverflow) == 0 || len(notes) == 0 {
		return []*model.Note{}
	}

	rootLetter := model.C
	var root model.Note
	hasRoot := false
	if leftOverflow >= 0 && leftOverflow < len(modeNotesWithOverflow) {
		root, hasRoot = note.At(notes, modeNotesWithOverflow[leftOverflow])
		if hasRoot {
			rootLetter = root.Letter
		}
	}

	letters := []model.Letter{rootLetter}
	switch {
	case hasRoot && root.IsSharp():
		letters = append(letters, rootLetter.Next())
	case hasRoot && root.IsFlat():
		letters = append(letters, rootLetter.Prev())
	}

	period := len(modeNotesWithOverflow) - 2*leftOverflow - 1
	if period <= 0 {
		period = len(model.Letters)
	}

	candidates := make([]candidate, 0, len(letters))
	for _, l := range letters {
		candidates = append(candidates, spellFrom(l, period, modeNotesWithOverflow, leftOverflow, notes))
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].maxAbs != candidates[j].maxAbs {
			return candidates[i].maxAbs < candidates[j].maxAbs
		}
		return candidates[i].totalAbs < candidates[j].totalAbs
	})
	return candidates[0].spelled
}

func spellFrom(rootLetter model.Letter, period int, modeNotes []model.NoteIndex, rootIdx int, notes []model.Note) candidate {
	c := candidate{spelled: make([]*model.Note, len(modeNotes))}
	for i, idx := range modeNotes {
		actual, ok := note.At(notes, idx)
		if !ok {
			continue
		}

		letter := rootLetter.Step(util.Mod(i-rootIdx, period))
		diff := util.Mod(int(actual.PitchClass())-int(letter.PitchClass())+6, model.SemitonesPerOctave) - 6
		abs := util.Abs(diff)
		c.maxAbs = util.Max(c.maxAbs, abs)
		c.totalAbs += abs

		octave := floorDiv(int(idx), model.SemitonesPerOctave) + 1
		accidental, ok := model.AccidentalFor(diff)
		if !ok {
			c.maxAbs = util.Max(c.maxAbs, unspellablePenalty)
			c.totalAbs += unspellablePenalty
			fallback := model.NewNote(actual.Letter, actual.Accidental, octave)
			c.spelled[i] = &fallback
			continue
		}
		spelled := model.NewNote(letter, accidental, octave+octaveShift(letter, actual.PitchClass()))
		c.spelled[i] = &spelled
	}
	return c
}

// SpellModeNotes is SpellNotes rendered for display, "" where a position
// could not be spelled.
func SpellModeNotes(modeNotesWithOverflow []model.NoteIndex, leftOverflow int, notes []model.Note) []string {
	spelled := SpellNotes(modeNotesWithOverflow, leftOverflow, notes)
	res := make([]string, len(spelled))
	for i, n := range spelled {
		if n != nil {
			res[i] = n.Display()
		}
	}
	return res
}

// octaveShift corrects the octave number of spellings that cross the B/C
// boundary: B# sounds in the next octave and Cb in the previous one.
func octaveShift(letter model.Letter, pc model.PitchClass) int {
	switch {
	case letter == model.B && pc <= 1:
		return -1
	case letter == model.C && pc >= 10:
		return 1
	}
	return 0
}

func floorDiv(a, b int) int {
	return (a - util.Mod(a, b)) / b
}

// SpellChord names chord tones relative to an already spelled chord root, so
// the tones of D minor over a spelled D read D F A. Tones the root letter
// cannot reach with a double accidental fall back to the vocabulary name.
func SpellChord(rootIdx model.NoteIndex, root model.Note, tones []model.NoteIndex, notes []model.Note) []string {
	res := make([]string, len(tones))
	for i, tone := range tones {
		interval := model.Interval(util.Mod(int(tone.Sub(rootIdx)), model.SemitonesPerOctave))
		letter := root.Letter.Step(chord.IntervalToDegreeIdx(interval))
		pc := root.PitchClass().Transpose(interval)
		diff := util.Mod(int(pc)-int(letter.PitchClass())+6, model.SemitonesPerOctave) - 6
		if accidental, ok := model.AccidentalFor(diff); ok {
			res[i] = model.NewNote(letter, accidental, 0).Label()
			continue
		}
		if n, ok := note.At(notes, tone); ok {
			res[i] = n.Label()
		}
	}
	return res
}
