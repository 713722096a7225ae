package render

import (
	"errors"
	"io"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/jsphweid/modeviz/model"
)

const (
	SampleRate = beep.SampleRate(44100)
	// A4, MIDI key 69
	concertPitch = 440.0
	concertKey   = 69
	attack       = 10 * time.Millisecond
)

var ErrNothingToRender = errors.New("nothing to render")

type Options struct {
	ChordDuration time.Duration
	Arpeggiate    bool
	// Gain scales the mixed output; 0 means 0.8.
	Gain float64
}

func Frequency(key uint8) float64 {
	return concertPitch * math.Pow(2, float64(int(key)-concertKey)/12)
}

func NoteFrequency(n model.Note) float64 {
	return concertPitch * math.Pow(2, float64(n.MIDIKey()-concertKey)/12)
}

// tone is a decaying sine stack, one partial per key
type tone struct {
	freqs  []float64
	length int
	pos    int
	gain   float64
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.length {
		return 0, false
	}
	sr := float64(SampleRate)
	attackSamples := float64(SampleRate.N(attack))
	for i := range samples {
		if t.pos >= t.length {
			return i, true
		}
		secs := float64(t.pos) / sr
		env := math.Exp(-3 * float64(t.pos) / float64(t.length))
		if float64(t.pos) < attackSamples {
			env *= float64(t.pos) / attackSamples
		}
		var v float64
		for _, f := range t.freqs {
			v += math.Sin(2 * math.Pi * f * secs)
		}
		v = v * env * t.gain / float64(len(t.freqs))
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error {
	return nil
}

func newTone(keys []uint8, length int, gain float64) *tone {
	freqs := make([]float64, len(keys))
	for i, k := range keys {
		freqs[i] = Frequency(k)
	}
	return &tone{freqs: freqs, length: length, gain: gain}
}

// Streamer renders chords back to back. With Arpeggiate each chord's
// duration is split evenly between its notes.
func Streamer(chords [][]uint8, opts Options) (beep.Streamer, int) {
	duration := opts.ChordDuration
	if duration <= 0 {
		duration = time.Second
	}
	gain := opts.Gain
	if gain == 0 {
		gain = 0.8
	}
	perChord := SampleRate.N(duration)

	var parts []beep.Streamer
	total := 0
	for _, keys := range chords {
		if len(keys) == 0 {
			parts = append(parts, beep.Silence(perChord))
			total += perChord
			continue
		}
		if !opts.Arpeggiate {
			parts = append(parts, newTone(keys, perChord, gain))
			total += perChord
			continue
		}
		perNote := perChord / len(keys)
		for _, k := range keys {
			parts = append(parts, newTone([]uint8{k}, perNote, gain))
			total += perNote
		}
	}
	return beep.Seq(parts...), total
}

// WriteWAV encodes chords as 16-bit stereo WAV.
func WriteWAV(w io.WriteSeeker, chords [][]uint8, opts Options) error {
	if len(chords) == 0 {
		return ErrNothingToRender
	}
	s, _ := Streamer(chords, opts)
	format := beep.Format{
		SampleRate:  SampleRate,
		NumChannels: 2,
		Precision:   2,
	}
	return wav.Encode(w, s, format)
}
