package chord

import (
	"sort"

	"github.com/jsphweid/modeviz/model"
	"github.com/jsphweid/modeviz/note"
	"github.com/jsphweid/modeviz/util"
)

type Identification struct {
	Root    model.PitchClass
	Bass    model.PitchClass
	Quality string
	Symbol  string
}

var shapeExtensions = []struct {
	name       string
	extensions []model.Extension
}{
	{"", nil},
	{"m", []model.Extension{model.ExtMin}},
	{"°", []model.Extension{model.ExtDim}},
	{"+", []model.Extension{model.ExtAug}},
	{"sus2", []model.Extension{model.ExtSus2}},
	{"sus4", []model.Extension{model.ExtSus4}},
	{"6", []model.Extension{model.Ext6}},
	{"m6", []model.Extension{model.ExtMin, model.Ext6}},
	{"7", []model.Extension{model.Ext7}},
	{"maj7", []model.Extension{model.ExtMaj7}},
	{"m7", []model.Extension{model.ExtMin, model.Ext7}},
	{"m(maj7)", []model.Extension{model.ExtMin, model.ExtMaj7}},
	{"ø7", []model.Extension{model.ExtDim, model.Ext7}},
	{"7sus4", []model.Extension{model.ExtSus4, model.Ext7}},
	{"add9", []model.Extension{model.ExtAdd9}},
	{"m(add9)", []model.Extension{model.ExtMin, model.ExtAdd9}},
	{"9", []model.Extension{model.Ext9}},
	{"maj9", []model.Extension{model.ExtMaj9}},
	{"m9", []model.Extension{model.ExtMin, model.Ext9}},
	{"11", []model.Extension{model.Ext11}},
	{"13", []model.Extension{model.Ext13}},
}

// chord key of root-relative pitch classes -> quality name
var shapes = buildShapes()

func buildShapes() map[string]string {
	res := make(map[string]string)
	majorTriad := model.NoteIndexes(0, 4, 7)
	for _, s := range shapeExtensions {
		key := CreateChordKey(relativePitchClasses(ApplyExtensions(majorTriad, s.extensions), 0))
		if _, exists := res[key]; !exists {
			res[key] = s.name
		}
	}
	return res
}

func relativePitchClasses(notes []model.NoteIndex, root model.PitchClass) []int {
	seen := make(map[int]bool)
	for _, n := range notes {
		seen[util.Mod(int(n.PitchClass())-int(root), 12)] = true
	}
	return util.GetKeys(seen)
}

// Identify names the chord formed by a set of MIDI keys. Roots are tried
// starting from the lowest key, so inversions name the sounding bass only
// when no other root fits.
func Identify(keys []uint8) (Identification, bool) {
	if len(keys) < 2 {
		return Identification{}, false
	}
	sorted := append([]uint8(nil), keys...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})

	notes := make([]model.NoteIndex, len(sorted))
	for i, k := range sorted {
		notes[i] = model.NoteIndex(k)
	}
	bass := notes[0].PitchClass()

	tried := make(map[model.PitchClass]bool)
	for _, candidate := range notes {
		root := candidate.PitchClass()
		if tried[root] {
			continue
		}
		tried[root] = true

		quality, ok := shapes[CreateChordKey(relativePitchClasses(notes, root))]
		if !ok {
			continue
		}
		bassLabel := ""
		if bass != root {
			bassLabel = pitchClassLabel(bass)
		}
		return Identification{
			Root:    root,
			Bass:    bass,
			Quality: quality,
			Symbol:  symbolFor(pitchClassLabel(root), quality, bassLabel),
		}, true
	}
	return Identification{}, false
}

func symbolFor(rootLabel string, quality string, bassLabel string) string {
	res := rootLabel + quality
	if bassLabel != "" {
		res += "/" + bassLabel
	}
	return res
}

func pitchClassLabel(pc model.PitchClass) string {
	return note.ChromaticScale[pc].Label()
}
