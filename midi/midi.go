package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/jsphweid/modeviz/util"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s, e = &blank, fmt.Errorf("panic parsing midi file: %v", r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, fmt.Errorf("error reading midi file: %w", err)
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, fmt.Errorf("error parsing midi file: %w", err)
	}

	return res, nil
}

// Chord is the set of keys sounding from Offset until the next change.
type Chord struct {
	Offset time.Duration
	Keys   []uint8
}

type reducedEvent struct {
	offset    int64
	isNoteOff bool
	key       uint8
}

var ErrNoTracks = errors.New("midi file has no tracks")

// GetChords walks every track and returns the distinct sets of held keys in
// time order. Simultaneous events collapse into one chord; empty sets
// (silence) are skipped.
func GetChords(s *smf.SMF) ([]Chord, error) {
	if s == nil || len(s.Tracks) == 0 {
		return nil, ErrNoTracks
	}

	var events []reducedEvent
	for _, track := range s.Tracks {
		var absTicks int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				events = append(events, reducedEvent{
					offset:    s.TimeAt(absTicks),
					isNoteOff: velocity == 0,
					key:       key,
				})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				events = append(events, reducedEvent{
					offset:    s.TimeAt(absTicks),
					isNoteOff: true,
					key:       key,
				})
			}
		}
	}

	// earlier offsets first, note offs before note ons at the same offset
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].offset != events[j].offset {
			return events[i].offset < events[j].offset
		}
		return events[i].isNoteOff && !events[j].isNoteOff
	})

	var chords []Chord
	pressed := make(map[uint8]bool)
	for i, evt := range events {
		if evt.isNoteOff {
			delete(pressed, evt.key)
		} else {
			pressed[evt.key] = true
		}
		if i+1 < len(events) && events[i+1].offset == evt.offset {
			continue
		}
		if len(pressed) == 0 {
			continue
		}
		chords = append(chords, Chord{
			Offset: time.Duration(evt.offset) * time.Microsecond,
			Keys:   util.GetKeysSorted(pressed),
		})
	}
	return chords, nil
}
