package audio

import (
	"context"
	"errors"
	"time"
)

const (
	DefaultVelocity = 96
	ArpeggioDelay   = 150 * time.Millisecond
	ChordLength     = time.Second
	SequenceStep    = 800 * time.Millisecond
)

// Output is anything that can sound a MIDI key.
type Output interface {
	NoteOn(key, velocity uint8) error
	NoteOff(key uint8) error
}

type Player struct {
	out      Output
	Velocity uint8
	Hold     time.Duration
	// Sleep waits between events; tests replace it to run instantly.
	Sleep func(ctx context.Context, d time.Duration) error
}

func NewPlayer(out Output) *Player {
	return &Player{
		out:      out,
		Velocity: DefaultVelocity,
		Hold:     ChordLength,
		Sleep:    sleep,
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (p *Player) PlayNote(ctx context.Context, key uint8) error {
	return p.PlayChord(ctx, []uint8{key})
}

// PlayChord sounds all keys together, holds, then releases them. Keys are
// released even when the context is cancelled mid-hold.
func (p *Player) PlayChord(ctx context.Context, keys []uint8) error {
	return p.play(ctx, keys, 0, p.Hold)
}

// Arpeggiate starts one key every ArpeggioDelay and releases them all after
// the hold.
func (p *Player) Arpeggiate(ctx context.Context, keys []uint8) error {
	return p.play(ctx, keys, ArpeggioDelay, p.Hold)
}

// PlaySequence plays chords one after another, each held for SequenceStep.
func (p *Player) PlaySequence(ctx context.Context, chords [][]uint8, arpeggiate bool) error {
	var spread time.Duration
	if arpeggiate {
		spread = ArpeggioDelay
	}
	for _, keys := range chords {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.play(ctx, keys, spread, SequenceStep); err != nil {
			return err
		}
	}
	return nil
}

func (p *Player) play(ctx context.Context, keys []uint8, spread, hold time.Duration) error {
	for i, k := range keys {
		if i > 0 && spread > 0 {
			if err := p.Sleep(ctx, spread); err != nil {
				return errors.Join(err, p.release(keys[:i]))
			}
		}
		if err := p.out.NoteOn(k, p.Velocity); err != nil {
			return errors.Join(err, p.release(keys[:i+1]))
		}
	}
	err := p.Sleep(ctx, hold)
	return errors.Join(err, p.release(keys))
}

func (p *Player) release(keys []uint8) error {
	var errs []error
	for _, k := range keys {
		if err := p.out.NoteOff(k); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
