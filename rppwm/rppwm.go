//go:build tinygo && (rp2040 || rp2350)

// SPDX-FileCopyrightText: 2024 hansingt
//
// SPDX-License-Identifier: MIT

// Package rppwm adapts RP2040 and RP2350 PWM slices to the l293x PwmOut
// contract.
package rppwm

import (
	"machine"

	tinygopwm "github.com/ralvarezdev/tinygo-pwm"
)

// MaxDuty is the duty range exposed by a Pin. SetDuty input scales
// linearly from it onto the configured PWM period.
const MaxDuty uint16 = 0xFFFF

// Pin presents one channel of a PWM slice as a PwmOut pin.
type Pin struct {
	pwm     tinygopwm.PWM
	channel uint8
	period  uint32
}

// NewPin configures pwm with the given period in nanoseconds and binds the
// channel serving the given pin.
func NewPin(pwm tinygopwm.PWM, pin machine.Pin, period uint32) (*Pin, error) {
	if err := pwm.Configure(machine.PWMConfig{Period: uint64(period)}); err != nil {
		return nil, err
	}
	channel, err := pwm.Channel(pin)
	if err != nil {
		return nil, err
	}
	return &Pin{pwm: pwm, channel: channel, period: period}, nil
}

func (p *Pin) MaxDuty() uint16 {
	return MaxDuty
}

// SetDuty sets the active portion of the PWM period to duty/MaxDuty.
func (p *Pin) SetDuty(duty uint16) error {
	pulse := uint32(uint64(p.period) * uint64(duty) / uint64(MaxDuty))
	tinygopwm.SetDuty(p.pwm, p.channel, pulse, p.period)
	return nil
}
