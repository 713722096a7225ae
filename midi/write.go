package midi

import (
	"errors"
	"io"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	DefaultBPM        = 100
	DefaultResolution = smf.MetricTicks(960)
	beatsPerBar       = 4
)

var ErrEmptyProgression = errors.New("empty progression")

type WriteOptions struct {
	BPM        float64
	Channel    uint8
	Velocity   uint8
	Arpeggiate bool
}

// WriteProgression writes chords as a type 1 SMF: a tempo track and a note
// track holding one chord per 4/4 bar. Arpeggiated chords start one key per
// eighth note.
func WriteProgression(w io.Writer, chords [][]uint8, opts WriteOptions) error {
	if len(chords) == 0 {
		return ErrEmptyProgression
	}
	bpm := opts.BPM
	if bpm <= 0 {
		bpm = DefaultBPM
	}
	velocity := opts.Velocity
	if velocity == 0 {
		velocity = 96
	}

	clock := DefaultResolution
	bar := clock.Ticks4th() * beatsPerBar

	var meta smf.Track
	meta.Add(0, smf.MetaMeter(beatsPerBar, 4))
	meta.Add(0, smf.MetaTempo(bpm))
	meta.Close(0)

	var notes smf.Track
	// ticks owed to the next event
	var pending uint32
	for _, keys := range chords {
		var elapsed uint32
		for i, k := range keys {
			delta := pending
			if i > 0 && opts.Arpeggiate && elapsed+clock.Ticks8th() < bar {
				delta = clock.Ticks8th()
				elapsed += delta
			}
			pending = 0
			notes.Add(delta, midi.NoteOn(opts.Channel, k, velocity))
		}
		pending += bar - elapsed
		for _, k := range keys {
			notes.Add(pending, midi.NoteOff(opts.Channel, k))
			pending = 0
		}
	}
	notes.Close(pending)

	s := smf.New()
	s.TimeFormat = clock
	if err := s.Add(meta); err != nil {
		return err
	}
	if err := s.Add(notes); err != nil {
		return err
	}
	_, err := s.WriteTo(w)
	return err
}
