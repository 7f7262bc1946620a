// SPDX-FileCopyrightText: 2024 hansingt
//
// SPDX-License-Identifier: MIT

package l293x_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hansingt/l293x"
	"github.com/hansingt/l293x/mock"
)

// writeOnlyPin hides the stateful half of a mock pin, leaving DigitalOut.
type writeOnlyPin struct {
	pin *mock.DigitalPin
}

func (p writeOnlyPin) SetHigh() error { return p.pin.SetHigh() }
func (p writeOnlyPin) SetLow() error  { return p.pin.SetLow() }

// noTogglePin hides Toggle, leaving StatefulDigitalOut.
type noTogglePin struct {
	pin *mock.DigitalPin
}

func (p noTogglePin) SetHigh() error           { return p.pin.SetHigh() }
func (p noTogglePin) SetLow() error            { return p.pin.SetLow() }
func (p noTogglePin) IsSetHigh() (bool, error) { return p.pin.IsSetHigh() }
func (p noTogglePin) IsSetLow() (bool, error)  { return p.pin.IsSetLow() }

func checkEnabled(t *testing.T, b *l293x.HalfH, xv bool) {
	enabled, err := b.IsEnabled()
	assert.Nil(t, err)
	assert.Equal(t, xv, enabled)

	disabled, err := b.IsDisabled()
	assert.Nil(t, err)
	assert.Equal(t, !xv, disabled)
}

func checkSetHigh(t *testing.T, b *l293x.HalfH, xv bool) {
	high, err := b.IsSetHigh()
	assert.Nil(t, err)
	assert.Equal(t, xv, high)

	low, err := b.IsSetLow()
	assert.Nil(t, err)
	assert.Equal(t, !xv, low)
}

func TestHalfHEnableDisable(t *testing.T) {
	b := l293x.NewHalfH(mock.NewDigitalPin(), mock.NewDigitalPin())

	require.Nil(t, b.Enable())
	checkEnabled(t, b, true)

	require.Nil(t, b.Disable())
	checkEnabled(t, b, false)
}

func TestHalfHTruthTable(t *testing.T) {
	input := mock.NewDigitalPin()
	b := l293x.NewHalfH(input, mock.NewDigitalPin())

	// enable low: the output floats regardless of the input
	require.Nil(t, b.Disable())
	for _, s := range []l293x.State{l293x.Low, l293x.High} {
		require.Nil(t, setPin(input, s))
		_, err := b.IsSetHigh()
		assert.ErrorIs(t, err, l293x.ErrNotEnabled)
		_, err = b.IsSetLow()
		assert.ErrorIs(t, err, l293x.ErrNotEnabled)
	}

	// enable high: the output mirrors the input
	require.Nil(t, b.Enable())
	require.Nil(t, input.SetLow())
	checkSetHigh(t, b, false)
	require.Nil(t, input.SetHigh())
	checkSetHigh(t, b, true)
}

func setPin(p *mock.DigitalPin, s l293x.State) error {
	if s == l293x.High {
		return p.SetHigh()
	}
	return p.SetLow()
}

func TestHalfHSetAutoEnables(t *testing.T) {
	b := l293x.NewHalfH(mock.NewDigitalPin(), mock.NewDigitalPin())

	require.Nil(t, b.Disable())
	require.Nil(t, b.SetHigh())
	checkEnabled(t, b, true)
	checkSetHigh(t, b, true)

	require.Nil(t, b.Disable())
	require.Nil(t, b.SetLow())
	checkEnabled(t, b, true)
	checkSetHigh(t, b, false)
}

func TestHalfHSetState(t *testing.T) {
	b := l293x.NewHalfH(mock.NewDigitalPin(), mock.NewDigitalPin())

	require.Nil(t, b.SetState(l293x.High))
	checkSetHigh(t, b, true)

	require.Nil(t, b.SetState(l293x.Low))
	checkSetHigh(t, b, false)
}

func TestHalfHEnableFailure(t *testing.T) {
	input := mock.NewDigitalPin()
	enable := mock.NewDigitalPin()
	b := l293x.NewHalfH(input, enable)
	enable.Fail()

	err := b.SetHigh()
	var xerr *l293x.EnablePinError
	assert.ErrorAs(t, err, &xerr)
	assert.Equal(t, mock.ErrPin, xerr.Err)
	assert.ErrorIs(t, err, mock.ErrPin)

	// the input pin was never touched
	low, err := input.IsSetLow()
	assert.Nil(t, err)
	assert.True(t, low)
}

func TestHalfHInputFailure(t *testing.T) {
	input := mock.NewDigitalPin()
	b := l293x.NewHalfH(input, mock.NewDigitalPin())
	input.Fail()

	err := b.SetHigh()
	var xerr *l293x.InputPinError
	assert.ErrorAs(t, err, &xerr)
	assert.Equal(t, mock.ErrPin, xerr.Err)

	// enabling succeeded before the write failed
	checkEnabled(t, b, true)
}

func TestHalfHToggle(t *testing.T) {
	b := l293x.NewHalfH(mock.NewDigitalPin(), mock.NewDigitalPin())

	require.Nil(t, b.Disable())
	assert.ErrorIs(t, b.Toggle(), l293x.ErrNotEnabled)

	require.Nil(t, b.SetLow())
	require.Nil(t, b.Toggle())
	checkSetHigh(t, b, true)
	require.Nil(t, b.Toggle())
	checkSetHigh(t, b, false)
}

func TestHalfHToggleSynthesized(t *testing.T) {
	b := l293x.NewHalfH(noTogglePin{mock.NewDigitalPin()}, mock.NewDigitalPin())

	require.Nil(t, b.SetLow())
	require.Nil(t, b.Toggle())
	checkSetHigh(t, b, true)
	require.Nil(t, b.Toggle())
	checkSetHigh(t, b, false)
}

func TestHalfHStatelessInput(t *testing.T) {
	b := l293x.NewHalfH(writeOnlyPin{mock.NewDigitalPin()}, mock.NewDigitalPin())

	// the stateless write works
	require.Nil(t, b.SetHigh())

	// the stateful operations are refused
	_, err := b.IsSetHigh()
	assert.ErrorIs(t, err, l293x.ErrOperationNotSupported)
	_, err = b.IsSetLow()
	assert.ErrorIs(t, err, l293x.ErrOperationNotSupported)
	assert.ErrorIs(t, b.Toggle(), l293x.ErrOperationNotSupported)

	// so are the PWM operations
	assert.Zero(t, b.MaxDuty())
	assert.ErrorIs(t, b.SetDuty(1), l293x.ErrOperationNotSupported)
}

func TestHalfHPwm(t *testing.T) {
	pin := mock.NewPwmPin()
	b := l293x.NewHalfH(pin, mock.NewDigitalPin())

	max := b.MaxDuty()
	assert.Equal(t, uint16(0xFFFF), max)

	for _, duty := range []uint16{max, max / 2, 0} {
		require.Nil(t, b.SetDuty(duty))
		assert.Equal(t, duty, pin.Duty())
	}
	checkEnabled(t, b, true)

	require.Nil(t, b.SetDutyFraction(1, 2))
	assert.Equal(t, uint16(0x7FFF), pin.Duty())

	require.Nil(t, b.SetDutyPercent(25))
	assert.Equal(t, uint16(0x3FFF), pin.Duty())

	require.Nil(t, b.SetDutyFullyOn())
	assert.Equal(t, max, pin.Duty())

	require.Nil(t, b.SetDutyFullyOff())
	assert.Equal(t, uint16(0), pin.Duty())
}

func TestHalfHPwmInvalidDuty(t *testing.T) {
	pin := mock.NewPwmPin()
	b := l293x.NewHalfH(pin, mock.NewDigitalPin())
	require.Nil(t, b.Disable())

	assert.ErrorIs(t, b.SetDutyFraction(1, 0), l293x.ErrInvalidDutyCycle)
	assert.ErrorIs(t, b.SetDutyFraction(3, 2), l293x.ErrInvalidDutyCycle)
	assert.ErrorIs(t, b.SetDutyPercent(101), l293x.ErrInvalidDutyCycle)

	// neither pin was touched
	assert.Equal(t, uint16(0), pin.Duty())
	checkEnabled(t, b, false)
}

func TestHalfHPwmEnableFailure(t *testing.T) {
	pin := mock.NewPwmPin()
	enable := mock.NewDigitalPin()
	b := l293x.NewHalfH(pin, enable)
	enable.Fail()

	for _, set := range []func() error{
		func() error { return b.SetDuty(1) },
		func() error { return b.SetDutyFraction(1, 2) },
		func() error { return b.SetDutyPercent(50) },
		b.SetDutyFullyOn,
		b.SetDutyFullyOff,
	} {
		err := set()
		var xerr *l293x.EnablePinError
		assert.ErrorAs(t, err, &xerr)
		assert.Equal(t, uint16(0), pin.Duty())
	}
}

func TestHalfHPwmInputFailure(t *testing.T) {
	pin := mock.NewPwmPin()
	b := l293x.NewHalfH(pin, mock.NewDigitalPin())
	pin.Fail()

	for _, set := range []func() error{
		func() error { return b.SetDuty(1) },
		func() error { return b.SetDutyFraction(1, 2) },
		func() error { return b.SetDutyPercent(50) },
		b.SetDutyFullyOn,
		b.SetDutyFullyOff,
	} {
		err := set()
		var xerr *l293x.InputPinError
		assert.ErrorAs(t, err, &xerr)
		assert.Equal(t, mock.ErrPin, xerr.Err)
	}
}

func TestHalfHVccEnable(t *testing.T) {
	b := l293x.NewHalfH(mock.NewDigitalPin(), l293x.Vcc{})

	assert.Nil(t, b.Enable())
	assert.ErrorIs(t, b.Disable(), l293x.ErrOperationNotSupported)
	checkEnabled(t, b, true)
}

func TestHalfHCascade(t *testing.T) {
	innerInput := mock.NewDigitalPin()
	inner := l293x.NewHalfH(innerInput, mock.NewDigitalPin())
	outer := l293x.New(
		inner, l293x.Unused{}, l293x.Unused{}, l293x.Unused{},
		mock.NewDigitalPin(), l293x.Unused{},
	)

	// writing the outer input drives the inner bridge as an ordinary pin
	require.Nil(t, outer.SetY1High())
	require.Nil(t, outer.EnableY1Y2())

	high, err := inner.IsSetHigh()
	assert.Nil(t, err)
	assert.True(t, high)

	high, err = outer.IsY1SetHigh()
	assert.Nil(t, err)
	assert.True(t, high)
}
