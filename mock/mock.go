// SPDX-FileCopyrightText: 2024 hansingt
//
// SPDX-License-Identifier: MIT

// Package mock provides in-memory pin implementations for testing drivers
// built on the l293x pin contracts.
//
// Every pin can be forced to fail with Fail, after which all of its
// operations return ErrPin. This allows exercising the error paths of a
// driver without hardware.
package mock

import "github.com/pkg/errors"

// ErrPin is returned by every operation of a pin that has been failed.
var ErrPin = errors.New("mock pin failure")

// DigitalPin is a stateful digital output pin backed by memory.
//
// The zero value is a working pin set low.
type DigitalPin struct {
	high    bool
	failing bool
}

// NewDigitalPin returns a working pin set low.
func NewDigitalPin() *DigitalPin {
	return &DigitalPin{}
}

// Fail makes every subsequent operation on the pin return ErrPin.
func (p *DigitalPin) Fail() {
	p.failing = true
}

// Restore undoes Fail. The state the pin had before failing is kept.
func (p *DigitalPin) Restore() {
	p.failing = false
}

func (p *DigitalPin) SetHigh() error {
	if p.failing {
		return ErrPin
	}
	p.high = true
	return nil
}

func (p *DigitalPin) SetLow() error {
	if p.failing {
		return ErrPin
	}
	p.high = false
	return nil
}

func (p *DigitalPin) IsSetHigh() (bool, error) {
	if p.failing {
		return false, ErrPin
	}
	return p.high, nil
}

func (p *DigitalPin) IsSetLow() (bool, error) {
	if p.failing {
		return false, ErrPin
	}
	return !p.high, nil
}

func (p *DigitalPin) Toggle() error {
	if p.failing {
		return ErrPin
	}
	p.high = !p.high
	return nil
}

// PwmPin is a PWM output pin backed by memory, with a maximum duty of
// 0xFFFF.
//
// The zero value is a working pin with duty 0.
type PwmPin struct {
	duty    uint16
	failing bool
}

// NewPwmPin returns a working pin with duty 0.
func NewPwmPin() *PwmPin {
	return &PwmPin{}
}

// Fail makes every subsequent SetDuty on the pin return ErrPin.
func (p *PwmPin) Fail() {
	p.failing = true
}

// Restore undoes Fail.
func (p *PwmPin) Restore() {
	p.failing = false
}

// Duty returns the duty cycle last set on the pin.
func (p *PwmPin) Duty() uint16 {
	return p.duty
}

func (p *PwmPin) MaxDuty() uint16 {
	return 0xFFFF
}

func (p *PwmPin) SetDuty(duty uint16) error {
	if p.failing {
		return ErrPin
	}
	p.duty = duty
	return nil
}
