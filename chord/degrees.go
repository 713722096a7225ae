package chord

import (
	"strconv"
	"strings"

	"github.com/jsphweid/modeviz/mode"
	"github.com/jsphweid/modeviz/model"
)

var intervalLabels = map[model.Interval]string{
	0:  "1",
	1:  "♭2",
	2:  "2",
	3:  "♭3",
	4:  "3",
	5:  "4",
	6:  "♭5",
	7:  "5",
	8:  "♭6",
	9:  "6",
	10: "♭7",
	11: "7",
	12: "8",
	13: "♭9",
	14: "9",
	15: "♯9",
	16: "♭11",
	17: "11",
	18: "♯11",
	19: "♭13",
	20: "13",
	21: "♯13",
}

func IntervalLabel(semitones model.Interval) string {
	if label, ok := intervalLabels[semitones]; ok {
		return label
	}
	return strconv.Itoa(int(semitones))
}

// semitone within an octave -> major-scale degree index it belongs to
var semitoneToDegree = [12]int{0, 1, 1, 2, 2, 3, 4, 4, 4, 5, 6, 6}

// IntervalToDegreeIdx maps an interval to its major-scale degree. Intervals
// past the octave get extended degrees (14 semitones is index 8, the 9th).
func IntervalToDegreeIdx(interval model.Interval) int {
	switch {
	case interval >= 0 && interval <= 11:
		return semitoneToDegree[interval]
	case interval == mode.Octave:
		return 7
	case interval > mode.Octave && interval <= mode.Octave+11:
		return 7 + semitoneToDegree[interval-mode.Octave]
	}
	return 0
}

func NaturalInterval(degreeIdx int) model.Interval {
	switch {
	case degreeIdx <= 6:
		return ionian[degreeIdx]
	case degreeIdx == 7:
		return mode.Octave
	}
	return mode.Octave + ionian[(degreeIdx-7)%7]
}

type ToneDegree struct {
	Note      model.NoteIndex
	DegreeIdx int
	Altered   bool
	Flat      bool
	Label     string
}

// DescribeTones labels each chord tone against the major scale of the chord
// root, e.g. "1", "♭3", "♯5", "9".
func DescribeTones(chordNotes []model.NoteIndex) []ToneDegree {
	if len(chordNotes) == 0 {
		return nil
	}
	root := chordNotes[0]
	res := make([]ToneDegree, 0, len(chordNotes))
	for _, n := range chordNotes {
		interval := n.Sub(root)
		degreeIdx := IntervalToDegreeIdx(interval)
		natural := NaturalInterval(degreeIdx)
		td := ToneDegree{
			Note:      n,
			DegreeIdx: degreeIdx,
			Altered:   interval != natural,
			Flat:      interval < natural,
			Label:     strconv.Itoa(degreeIdx + 1),
		}
		if td.Altered {
			prefix := "♯"
			if td.Flat {
				prefix = "♭"
			}
			td.Label = prefix + td.Label
		}
		res = append(res, td)
	}
	return res
}

var romanNumerals = []string{"I", "II", "III", "IV", "V", "VI", "VII"}

func RomanNumeral(degreeIdx int) string {
	if degreeIdx < 0 || degreeIdx >= len(romanNumerals) {
		return strconv.Itoa(degreeIdx + 1)
	}
	return romanNumerals[degreeIdx]
}

// SeventhQuality names the seventh of a stacked-third seventh chord. A
// minor 7th becomes the "7" extension and a major 7th "maj7". A diminished
// triad with a diminished 7th folds into QualityDiminished7.
func SeventhQuality(chordNotes []model.NoteIndex) (model.ChordQuality, []model.Extension) {
	quality := GetChordDescriptor(chordNotes)
	if len(chordNotes) < 4 {
		return quality, nil
	}
	switch chordNotes[3].Sub(chordNotes[0]) {
	case ionian[6] - 1:
		return quality, []model.Extension{model.Ext7}
	case ionian[6]:
		return quality, []model.Extension{model.ExtMaj7}
	case ionian[6] - 2:
		if quality == model.QualityDiminished {
			return model.QualityDiminished7, nil
		}
	}
	return quality, nil
}

var qualityExtensions = map[model.Extension]bool{
	model.ExtMaj:  true,
	model.ExtMin:  true,
	model.ExtDim:  true,
	model.ExtAug:  true,
	model.ExtSus2: true,
	model.ExtSus4: true,
}

// Symbol renders a chord name such as "Dm7/F". quality should describe the
// chord after extensions; quality-changing extensions are folded into it.
func Symbol(rootLabel string, quality model.ChordQuality, extensions []model.Extension, bassLabel string) string {
	var suffix strings.Builder
	for _, ext := range extensions {
		if qualityExtensions[ext] {
			continue
		}
		suffix.WriteString(string(ext))
	}

	q := string(quality)
	s := suffix.String()
	if quality == model.QualityDiminished && strings.HasPrefix(s, "7") {
		q = "ø"
	}
	if quality == model.QualitySus2 || quality == model.QualitySus4 {
		// sus goes after the seventh: C7sus4
		q, s = s, q
	}

	res := rootLabel + q + s
	if bassLabel != "" {
		res += "/" + bassLabel
	}
	return res
}
