package chord

import (
	"github.com/jsphweid/modeviz/model"
)

// ApplyExtensions rewrites a copy of chordNotes, one extension at a time in
// the given order. Slot 1 holds the 3rd, slot 2 the 5th; later writes win.
// Unknown extensions are ignored.
func ApplyExtensions(chordNotes []model.NoteIndex, extensions []model.Extension) []model.NoteIndex {
	res := make([]model.NoteIndex, len(chordNotes))
	copy(res, chordNotes)
	if len(res) == 0 {
		return res
	}

	root := res[0]
	set := func(slot int, n model.NoteIndex) {
		if slot < len(res) {
			res[slot] = n
		}
	}

	for _, ext := range extensions {
		switch ext {
		case model.ExtSus2:
			set(1, second(root))
		case model.ExtSus4:
			set(1, fourth(root))
		case model.ExtMin:
			set(1, flatten(third(root)))
		case model.ExtMaj:
			set(1, third(root))
		case model.ExtDim:
			set(1, flatten(third(root)))
			set(2, flatten(fifth(root)))
		case model.ExtAug:
			set(2, sharpen(fifth(root)))
		case model.Ext7:
			res = append(res, flatten(seventh(root)))
		case model.ExtMaj7:
			res = append(res, seventh(root))
		case model.Ext6:
			res = append(res, sixth(root))
		case model.ExtAdd2:
			res = append(res, second(root))
		case model.ExtAdd4:
			res = append(res, fourth(root))
		case model.ExtAdd9:
			res = append(res, ninth(root))
		case model.Ext9:
			res = append(res, flatten(seventh(root)), ninth(root))
		case model.ExtMaj9:
			res = append(res, seventh(root), ninth(root))
		case model.Ext11:
			res = append(res, flatten(seventh(root)), ninth(root), eleventh(root))
		case model.Ext13:
			res = append(res, flatten(seventh(root)), ninth(root), eleventh(root), thirteenth(root))
		}
	}
	return res
}

// members of a group write the same chord slot, so only one may be active
var exclusionGroups = [][]model.Extension{
	{model.ExtMaj, model.ExtMin, model.ExtSus2, model.ExtSus4, model.ExtDim},
	{model.ExtAug, model.ExtDim},
	{model.Ext7, model.ExtMaj7, model.Ext9, model.ExtMaj9, model.Ext11, model.Ext13},
	{model.ExtAdd9, model.Ext9, model.ExtMaj9, model.Ext11, model.Ext13},
	{model.ExtAdd4, model.ExtSus4},
	{model.ExtAdd2, model.ExtSus2},
	{model.Ext6, model.Ext13},
}

type ExtensionSet map[model.Extension]struct{}

func (s ExtensionSet) Has(ext model.Extension) bool {
	_, ok := s[ext]
	return ok
}

// Sorted returns the members in display order.
func (s ExtensionSet) Sorted() []model.Extension {
	res := make([]model.Extension, 0, len(s))
	for _, ext := range model.Extensions {
		if s.Has(ext) {
			res = append(res, ext)
		}
	}
	return res
}

// GetDisabledExtensions returns the extensions that conflict with the
// selected ones. A selected extension never disables itself.
func GetDisabledExtensions(selected []model.Extension) ExtensionSet {
	res := make(ExtensionSet)
	for _, sel := range selected {
		for _, group := range exclusionGroups {
			if !groupHas(group, sel) {
				continue
			}
			for _, ext := range group {
				if ext != sel {
					res[ext] = struct{}{}
				}
			}
		}
	}
	return res
}

func groupHas(group []model.Extension, ext model.Extension) bool {
	for _, v := range group {
		if v == ext {
			return true
		}
	}
	return false
}
