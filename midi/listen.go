package midi

import (
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/modeviz/chord"
	"github.com/jsphweid/modeviz/util"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

const DefaultSettle = 50 * time.Millisecond

// Result is what a Tracker reports once the pressed keys settle.
type Result struct {
	Keys           []uint8
	Identification chord.Identification
	Identified     bool
}

// Tracker keeps the set of pressed keys and reports the chord they form once
// no key has changed for the settle time.
type Tracker struct {
	mu        sync.Mutex
	pressed   map[uint8]bool
	debounced func(f func())
	onChord   func(Result)
}

func NewTracker(settle time.Duration, onChord func(Result)) *Tracker {
	if settle <= 0 {
		settle = DefaultSettle
	}
	return &Tracker{
		pressed:   make(map[uint8]bool),
		debounced: debounce.New(settle),
		onChord:   onChord,
	}
}

func (t *Tracker) Press(key uint8) {
	t.mu.Lock()
	t.pressed[key] = true
	t.mu.Unlock()
	t.debounced(t.report)
}

func (t *Tracker) Release(key uint8) {
	t.mu.Lock()
	delete(t.pressed, key)
	t.mu.Unlock()
	t.debounced(t.report)
}

func (t *Tracker) Keys() []uint8 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return util.GetKeysSorted(t.pressed)
}

func (t *Tracker) report() {
	keys := t.Keys()
	if len(keys) == 0 {
		return
	}
	id, ok := chord.Identify(keys)
	t.onChord(Result{Keys: keys, Identification: id, Identified: ok})
}

// Handle feeds one incoming message to the tracker.
func (t *Tracker) Handle(msg midi.Message) {
	var ch, key, vel uint8
	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		t.Press(key)
	case msg.GetNoteEnd(&ch, &key):
		t.Release(key)
	default:
		// ignore
	}
}

// Listen connects an in port to the tracker until stop is called.
func Listen(in drivers.In, t *Tracker) (stop func(), err error) {
	return midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		t.Handle(msg)
	})
}
