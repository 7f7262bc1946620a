// SPDX-FileCopyrightText: 2024 hansingt
//
// SPDX-License-Identifier: MIT

// Package cdev adapts Linux GPIO character device lines to the l293x pin
// contracts.
//
// A Pin wraps a gpiocdev output line and satisfies both DigitalOut and
// StatefulDigitalOut, so it can be wired to any terminal of the chip.
package cdev

import (
	"github.com/pkg/errors"
	"github.com/warthog618/go-gpiocdev"
)

// Pin presents a gpiocdev output line as a stateful digital output pin.
//
// The state queries report the value last written through the Pin, not the
// electrical level of the line.
type Pin struct {
	line *gpiocdev.Line
	high bool
}

// NewPin wraps a line that has already been requested as an output.
//
// The Pin assumes the line was driven low at request time; pass the
// initial value the line was requested with through SetHigh or SetLow if
// it differs.
func NewPin(line *gpiocdev.Line) *Pin {
	return &Pin{line: line}
}

// RequestPin requests the line at offset on the named chip as an output,
// initially low, and wraps it.
//
// The chip may be identified by name, label or path, e.g. "gpiochip0" or
// "/dev/gpiochip0".
func RequestPin(chip string, offset int) (*Pin, error) {
	line, err := gpiocdev.RequestLine(chip, offset, gpiocdev.AsOutput(0))
	if err != nil {
		return nil, errors.Wrapf(err, "requesting line %d on %s", offset, chip)
	}
	return &Pin{line: line}, nil
}

// SetHigh drives the line high.
func (p *Pin) SetHigh() error {
	return p.setValue(1)
}

// SetLow drives the line low.
func (p *Pin) SetLow() error {
	return p.setValue(0)
}

func (p *Pin) setValue(v int) error {
	if err := p.line.SetValue(v); err != nil {
		return errors.Wrapf(err, "setting line %d to %d", p.line.Offset(), v)
	}
	p.high = v != 0
	return nil
}

// IsSetHigh reports whether the line was last driven high.
func (p *Pin) IsSetHigh() (bool, error) {
	return p.high, nil
}

// IsSetLow reports whether the line was last driven low.
func (p *Pin) IsSetLow() (bool, error) {
	return !p.high, nil
}

// Close releases the underlying line.
func (p *Pin) Close() error {
	return p.line.Close()
}
