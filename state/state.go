package state

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/jsphweid/modeviz/mode"
	"github.com/jsphweid/modeviz/model"
	"github.com/jsphweid/modeviz/note"
)

// Store persists the bridge state.
type Store interface {
	Load(ctx context.Context) (model.State, error)
	Save(ctx context.Context, s model.State) error
}

// RFC 3339 in UTC with millisecond precision, e.g. 2024-05-01T12:00:00.000Z
const timestampLayout = "2006-01-02T15:04:05.000Z"

func Timestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func Default(defaultOctave int, now time.Time) model.State {
	return model.State{
		RootNote:  "C" + strconv.Itoa(defaultOctave),
		Mode:      mode.IonianName,
		UpdatedAt: Timestamp(now),
	}
}

// Merge accepts a stored state only when its root note is in the root
// vocabulary. Missing fields come from def.
func Merge(stored model.State, def model.State) (model.State, bool) {
	if !validRoot(stored.RootNote) {
		return def, false
	}
	res := def
	res.RootNote = stored.RootNote
	if stored.Mode != "" {
		res.Mode = stored.Mode
	}
	if stored.UpdatedAt != "" {
		res.UpdatedAt = stored.UpdatedAt
	}
	return res, true
}

func validRoot(root string) bool {
	if root == "" {
		return false
	}
	for _, n := range note.Default {
		if n.ToneString() == root {
			return true
		}
	}
	return false
}

type MemoryStore struct {
	mu    sync.Mutex
	state *model.State
	def   model.State
}

func NewMemoryStore(def model.State) *MemoryStore {
	return &MemoryStore{def: def}
}

func (m *MemoryStore) Load(ctx context.Context) (model.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return m.def, nil
	}
	return *m.state, nil
}

func (m *MemoryStore) Save(ctx context.Context, s model.State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = &s
	return nil
}
