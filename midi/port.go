package midi

import (
	"fmt"
	"strconv"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// PortOutput plays keys on a MIDI out port. It satisfies audio.Output.
type PortOutput struct {
	port    drivers.Out
	send    func(msg midi.Message) error
	Channel uint8
}

func NewPortOutput(port drivers.Out, channel uint8) (*PortOutput, error) {
	send, err := midi.SendTo(port)
	if err != nil {
		return nil, fmt.Errorf("could not open out port %v: %w", port, err)
	}
	return &PortOutput{port: port, send: send, Channel: channel}, nil
}

// OpenOutput finds an out port by number or by name.
func OpenOutput(port string, channel uint8) (*PortOutput, error) {
	var out drivers.Out
	var err error
	if n, convErr := strconv.Atoi(port); convErr == nil {
		out, err = midi.OutPort(n)
	} else {
		out, err = midi.FindOutPort(port)
	}
	if err != nil {
		return nil, fmt.Errorf("can't find out port %q: %w", port, err)
	}
	return NewPortOutput(out, channel)
}

func (p *PortOutput) NoteOn(key, velocity uint8) error {
	return p.send(midi.NoteOn(p.Channel, key, velocity))
}

func (p *PortOutput) NoteOff(key uint8) error {
	return p.send(midi.NoteOff(p.Channel, key))
}

func (p *PortOutput) Close() error {
	return p.port.Close()
}

// OpenInput finds an in port by number or by name.
func OpenInput(port string) (drivers.In, error) {
	var in drivers.In
	var err error
	if n, convErr := strconv.Atoi(port); convErr == nil {
		in, err = midi.InPort(n)
	} else {
		in, err = midi.FindInPort(port)
	}
	if err != nil {
		return nil, fmt.Errorf("can't find in port %q: %w", port, err)
	}
	return in, nil
}

func CloseDriver() {
	midi.CloseDriver()
}
