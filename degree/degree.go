package degree

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/modeviz/model"
	"github.com/jsphweid/modeviz/util"
)

var (
	ErrDegreeOutOfRange  = errors.New("degree out of range")
	ErrInvalidAssignment = errors.New("invalid assignment")
)

// States holds one ChordDegreeState per scale degree, indexed from 0.
type States []model.ChordDegreeState

func New(n int) States {
	if n < 0 {
		n = 0
	}
	return make(States, n)
}

// Resize keeps the existing prefix and fills any new degrees with empty
// state. Slash basses pointing past the new size are dropped.
func (s States) Resize(n int) States {
	res := New(n)
	for i := range res {
		if i < len(s) {
			res[i] = clone(s[i])
		}
		if res[i].SlashBass != nil && *res[i].SlashBass >= n {
			res[i].SlashBass = nil
		}
	}
	return res
}

func (s States) check(i int) error {
	if i < 0 || i >= len(s) {
		return fmt.Errorf("%w: %d (have %d)", ErrDegreeOutOfRange, i+1, len(s))
	}
	return nil
}

func (s States) Get(i int) (model.ChordDegreeState, error) {
	if err := s.check(i); err != nil {
		return model.ChordDegreeState{}, err
	}
	return clone(s[i]), nil
}

func (s States) SetExtensions(i int, exts []model.Extension) error {
	if err := s.check(i); err != nil {
		return err
	}
	s[i].Extensions = append([]model.Extension(nil), exts...)
	return nil
}

// SetSlashBass sets the 0-based bass degree for degree i. A nil bass clears it.
func (s States) SetSlashBass(i int, bass *int) error {
	if err := s.check(i); err != nil {
		return err
	}
	if bass == nil {
		s[i].SlashBass = nil
		return nil
	}
	if err := s.check(*bass); err != nil {
		return err
	}
	b := *bass
	s[i].SlashBass = &b
	return nil
}

func (s States) ClearSlashBass(i int) error {
	return s.SetSlashBass(i, nil)
}

func (s States) Clear() {
	for i := range s {
		s[i] = model.ChordDegreeState{}
	}
}

func (s States) HasAny() bool {
	for _, st := range s {
		if !st.IsEmpty() {
			return true
		}
	}
	return false
}

func (s States) Extensions() [][]model.Extension {
	res := make([][]model.Extension, len(s))
	for i, st := range s {
		res[i] = append([]model.Extension{}, st.Extensions...)
	}
	return res
}

func (s States) SlashBasses() []*int {
	res := make([]*int, len(s))
	for i, st := range s {
		res[i] = clone(st).SlashBass
	}
	return res
}

// Apply sets every assignment, stopping at the first out-of-range degree.
func (s States) Apply(extensions map[int][]model.Extension, slashes map[int]int) error {
	for _, i := range util.GetKeysSorted(extensions) {
		if err := s.SetExtensions(i, extensions[i]); err != nil {
			return err
		}
	}
	for _, i := range util.GetKeysSorted(slashes) {
		bass := slashes[i]
		if err := s.SetSlashBass(i, &bass); err != nil {
			return err
		}
	}
	return nil
}

func clone(st model.ChordDegreeState) model.ChordDegreeState {
	res := model.ChordDegreeState{Extensions: append([]model.Extension(nil), st.Extensions...)}
	if st.SlashBass != nil {
		b := *st.SlashBass
		res.SlashBass = &b
	}
	return res
}

// ParseAssignments reads extension selections such as "2=m,7;5=7". Degrees
// are 1-based in the text and 0-based in the result.
func ParseAssignments(text string) (map[int][]model.Extension, error) {
	res := make(map[int][]model.Extension)
	for _, part := range splitAssignments(text) {
		degree, value, err := splitAssignment(part)
		if err != nil {
			return nil, err
		}
		var exts []model.Extension
		for _, token := range strings.Split(value, ",") {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}
			ext, ok := model.ParseExtension(token)
			if !ok {
				return nil, fmt.Errorf("%w: unknown extension %q", ErrInvalidAssignment, token)
			}
			exts = append(exts, ext)
		}
		res[degree] = exts
	}
	return res, nil
}

// ParseSlash reads slash basses such as "5=1;2=4", both sides 1-based.
func ParseSlash(text string) (map[int]int, error) {
	res := make(map[int]int)
	for _, part := range splitAssignments(text) {
		degree, value, err := splitAssignment(part)
		if err != nil {
			return nil, err
		}
		bass, err := parseDegree(value)
		if err != nil {
			return nil, err
		}
		res[degree] = bass
	}
	return res, nil
}

func splitAssignments(text string) []string {
	var res []string
	for _, part := range strings.Split(text, ";") {
		if part = strings.TrimSpace(part); part != "" {
			res = append(res, part)
		}
	}
	return res
}

func splitAssignment(part string) (int, string, error) {
	key, value, found := strings.Cut(part, "=")
	if !found {
		return 0, "", fmt.Errorf("%w: %q", ErrInvalidAssignment, part)
	}
	degree, err := parseDegree(key)
	if err != nil {
		return 0, "", err
	}
	return degree, strings.TrimSpace(value), nil
}

func parseDegree(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: bad degree %q", ErrInvalidAssignment, s)
	}
	return n - 1, nil
}
