// SPDX-FileCopyrightText: 2024 hansingt
//
// SPDX-License-Identifier: MIT

package l293x

// State is the logical state commanded onto a digital output pin.
type State int

const (
	// Low commands the inactive level.
	Low State = iota

	// High commands the active level.
	High
)

func (s State) String() string {
	if s == High {
		return "high"
	}
	return "low"
}

// DigitalOut is the contract for a pin whose logical state can be written.
//
// This is the minimum capability a pin must provide to serve as an input
// or enable terminal of the chip.
type DigitalOut interface {
	SetLow() error
	SetHigh() error
}

// StatefulDigitalOut extends DigitalOut with queries for the logical state
// last commanded through the pin.
//
// The reported state is the commanded one, not the electrical level of the
// line, which may differ depending on the circuit.
type StatefulDigitalOut interface {
	DigitalOut

	IsSetHigh() (bool, error)
	IsSetLow() (bool, error)
}

// Toggler may optionally be implemented by a StatefulDigitalOut pin that
// can flip its own state. Pins without it have their toggle synthesized
// from the stateful reads and writes.
type Toggler interface {
	Toggle() error
}

// PwmOut is the contract for a pin that generates a PWM waveform.
//
// SetDuty scales the active portion of the period linearly between 0 and
// MaxDuty.
type PwmOut interface {
	MaxDuty() uint16
	SetDuty(duty uint16) error
}

func setState(p DigitalOut, s State) error {
	if s == High {
		return p.SetHigh()
	}
	return p.SetLow()
}

func togglePin(p StatefulDigitalOut) error {
	if t, ok := p.(Toggler); ok {
		return t.Toggle()
	}
	high, err := p.IsSetHigh()
	if err != nil {
		return err
	}
	if high {
		return p.SetLow()
	}
	return p.SetHigh()
}
