package model

type Extension string

const (
	ExtMaj  Extension = "maj"
	ExtMin  Extension = "m"
	ExtDim  Extension = "dim"
	ExtAug  Extension = "aug"
	ExtSus2 Extension = "sus2"
	ExtSus4 Extension = "sus4"
	Ext6    Extension = "6"
	Ext7    Extension = "7"
	ExtMaj7 Extension = "maj7"
	ExtAdd2 Extension = "add2"
	ExtAdd4 Extension = "add4"
	ExtAdd9 Extension = "add9"
	Ext9    Extension = "9"
	ExtMaj9 Extension = "maj9"
	Ext11   Extension = "11"
	Ext13   Extension = "13"
)

// Extensions lists every extension in display order.
var Extensions = []Extension{
	ExtMaj, ExtMin, ExtDim, ExtAug, ExtSus2, ExtSus4,
	Ext6, Ext7, ExtMaj7, ExtAdd2, ExtAdd4, ExtAdd9,
	Ext9, ExtMaj9, Ext11, Ext13,
}

func ParseExtension(s string) (Extension, bool) {
	for _, e := range Extensions {
		if string(e) == s {
			return e, true
		}
	}
	return "", false
}

type ChordQuality string

const (
	QualityMajor      ChordQuality = ""
	QualityMinor      ChordQuality = "m"
	QualityDiminished ChordQuality = "°"
	QualityAugmented  ChordQuality = "+"
	QualitySus4       ChordQuality = "sus4"
	QualitySus2       ChordQuality = "sus2"
	QualityUnknown    ChordQuality = "?"

	// only produced when naming seventh chords
	QualityDiminished7 ChordQuality = "°7"
)

type ChordType string

const (
	Triads   ChordType = "triads"
	Sevenths ChordType = "sevenths"
)

func ParseChordType(s string) (ChordType, bool) {
	switch s {
	case "", "triads", "triad":
		return Triads, true
	case "sevenths", "seventh", "seventhChords":
		return Sevenths, true
	}
	return "", false
}

// ChordDegreeState is the per-degree selection. Extensions apply in order;
// SlashBass is a 0-based degree index or nil.
type ChordDegreeState struct {
	Extensions []Extension `json:"extensions"`
	SlashBass  *int        `json:"slashBass"`
}

func (s ChordDegreeState) IsEmpty() bool {
	return len(s.Extensions) == 0 && s.SlashBass == nil
}
