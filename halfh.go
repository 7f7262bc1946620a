// SPDX-FileCopyrightText: 2024 hansingt
//
// SPDX-License-Identifier: MIT

package l293x

// HalfH is one half-H bridge of the chip: an input pin driving the output
// level and an enable pin gating it.
//
// The output follows the truth table of the bridge:
//
//	input | enable | output
//	------+--------+-------
//	low   | high   | low
//	high  | high   | high
//	x     | low    | high impedance
//
// A HalfH implements the same pin contracts as its input (DigitalOut,
// StatefulDigitalOut, PwmOut), so it can in turn be wired as an input of
// another chip. Used this way, the write operations enable the bridge
// before touching the input. The per-output operations on L293x do not do
// that; see the L293x documentation.
//
// Capabilities the input or enable pin does not provide are refused with
// ErrOperationNotSupported.
//
// Inside an L293x the enable pin is shared with a sibling bridge, so
// enabling or disabling a HalfH obtained from a chip always affects a
// second output as well.
type HalfH struct {
	input  any
	enable *SharedEnable
}

// NewHalfH builds a standalone half-H bridge from an input pin and an
// enable pin.
//
// No pin is driven to an initial level; the bridge starts in whatever state
// the pins are in.
func NewHalfH(input, enable any) *HalfH {
	return &HalfH{input: input, enable: newSharedEnable(enable)}
}

// Enable takes the output out of high impedance. The output level then
// follows the input pin.
func (h *HalfH) Enable() error {
	return enablePinError(h.enable.SetHigh())
}

// Disable puts the output into high impedance. The electrical level of the
// output then depends on the components connected to it.
func (h *HalfH) Disable() error {
	return enablePinError(h.enable.SetLow())
}

// IsEnabled reports whether the enable pin was last commanded high.
//
// This is the commanded logical state, not the electrical level of the
// line.
func (h *HalfH) IsEnabled() (bool, error) {
	high, err := h.enable.IsSetHigh()
	return high, enablePinError(err)
}

// IsDisabled reports whether the enable pin was last commanded low.
func (h *HalfH) IsDisabled() (bool, error) {
	low, err := h.enable.IsSetLow()
	return low, enablePinError(err)
}

// SetHigh drives the output high, enabling the bridge first if needed.
func (h *HalfH) SetHigh() error {
	return h.SetState(High)
}

// SetLow drives the output low, enabling the bridge first if needed.
func (h *HalfH) SetLow() error {
	return h.SetState(Low)
}

// SetState drives the output to s, enabling the bridge first if needed.
//
// If enabling fails the input pin is left untouched. The two steps are not
// atomic: a failure writing the input leaves the bridge enabled.
func (h *HalfH) SetState(s State) error {
	in, ok := h.input.(DigitalOut)
	if !ok {
		return ErrOperationNotSupported
	}
	if err := h.Enable(); err != nil {
		return err
	}
	return inputPinError(setState(in, s))
}

// IsSetHigh reports whether the output is high.
//
// A disabled output floats, so issuing this while the bridge is disabled
// returns ErrNotEnabled rather than a state the line does not have.
func (h *HalfH) IsSetHigh() (bool, error) {
	return h.isSet(High)
}

// IsSetLow reports whether the output is low.
//
// Returns ErrNotEnabled while the bridge is disabled, like IsSetHigh.
func (h *HalfH) IsSetLow() (bool, error) {
	return h.isSet(Low)
}

func (h *HalfH) isSet(s State) (bool, error) {
	in, ok := h.input.(StatefulDigitalOut)
	if !ok {
		return false, ErrOperationNotSupported
	}
	enabled, err := h.enable.IsSetHigh()
	if err != nil {
		return false, enablePinError(err)
	}
	if !enabled {
		return false, ErrNotEnabled
	}
	var set bool
	if s == High {
		set, err = in.IsSetHigh()
	} else {
		set, err = in.IsSetLow()
	}
	return set, inputPinError(err)
}

// Toggle flips the logical state of the output.
//
// Returns ErrNotEnabled while the bridge is disabled; the enable pin is
// never touched.
func (h *HalfH) Toggle() error {
	in, ok := h.input.(StatefulDigitalOut)
	if !ok {
		return ErrOperationNotSupported
	}
	enabled, err := h.enable.IsSetHigh()
	if err != nil {
		return enablePinError(err)
	}
	if !enabled {
		return ErrNotEnabled
	}
	return inputPinError(togglePin(in))
}

// MaxDuty returns the maximum value accepted by SetDuty, or 0 when the
// input pin is not PWM capable.
func (h *HalfH) MaxDuty() uint16 {
	in, ok := h.input.(PwmOut)
	if !ok {
		return 0
	}
	return in.MaxDuty()
}

// SetDuty sets the duty cycle of the output, enabling the bridge first if
// needed.
//
// The active portion of the PWM period scales linearly between 0 and
// MaxDuty.
func (h *HalfH) SetDuty(duty uint16) error {
	in, ok := h.input.(PwmOut)
	if !ok {
		return ErrOperationNotSupported
	}
	if err := h.Enable(); err != nil {
		return err
	}
	return inputPinError(in.SetDuty(duty))
}

// SetDutyFraction sets the duty cycle to num/denom of MaxDuty, enabling the
// bridge first if needed.
//
// The fraction must be between 0 and 1: denom must not be 0 and num must
// not exceed denom, otherwise ErrInvalidDutyCycle is returned and neither
// pin is touched.
func (h *HalfH) SetDutyFraction(num, denom uint16) error {
	in, ok := h.input.(PwmOut)
	if !ok {
		return ErrOperationNotSupported
	}
	duty, err := fractionDuty(in.MaxDuty(), num, denom)
	if err != nil {
		return err
	}
	if err := h.Enable(); err != nil {
		return err
	}
	return inputPinError(in.SetDuty(duty))
}

// SetDutyPercent sets the duty cycle to percent of MaxDuty, enabling the
// bridge first if needed. Values above 100 are refused with
// ErrInvalidDutyCycle.
func (h *HalfH) SetDutyPercent(percent uint8) error {
	in, ok := h.input.(PwmOut)
	if !ok {
		return ErrOperationNotSupported
	}
	duty, err := percentDuty(in.MaxDuty(), percent)
	if err != nil {
		return err
	}
	if err := h.Enable(); err != nil {
		return err
	}
	return inputPinError(in.SetDuty(duty))
}

// SetDutyFullyOn sets the output permanently active, enabling the bridge
// first if needed.
func (h *HalfH) SetDutyFullyOn() error {
	return h.SetDuty(h.MaxDuty())
}

// SetDutyFullyOff sets the output permanently inactive, enabling the
// bridge first if needed.
func (h *HalfH) SetDutyFullyOff() error {
	return h.SetDuty(0)
}

// The write* methods update the input pin without touching the enable pin.
// The chip facade uses them so both outputs of a pair can be staged while
// disabled and then enabled together.

func (h *HalfH) writeState(s State) error {
	in, ok := h.input.(DigitalOut)
	if !ok {
		return ErrOperationNotSupported
	}
	return inputPinError(setState(in, s))
}

func (h *HalfH) maxDuty() (uint16, error) {
	in, ok := h.input.(PwmOut)
	if !ok {
		return 0, ErrOperationNotSupported
	}
	return in.MaxDuty(), nil
}

func (h *HalfH) writeDuty(duty uint16) error {
	in, ok := h.input.(PwmOut)
	if !ok {
		return ErrOperationNotSupported
	}
	return inputPinError(in.SetDuty(duty))
}

func (h *HalfH) writeDutyFraction(num, denom uint16) error {
	in, ok := h.input.(PwmOut)
	if !ok {
		return ErrOperationNotSupported
	}
	duty, err := fractionDuty(in.MaxDuty(), num, denom)
	if err != nil {
		return err
	}
	return inputPinError(in.SetDuty(duty))
}

func (h *HalfH) writeDutyPercent(percent uint8) error {
	in, ok := h.input.(PwmOut)
	if !ok {
		return ErrOperationNotSupported
	}
	duty, err := percentDuty(in.MaxDuty(), percent)
	if err != nil {
		return err
	}
	return inputPinError(in.SetDuty(duty))
}

func (h *HalfH) writeDutyFullyOn() error {
	max, err := h.maxDuty()
	if err != nil {
		return err
	}
	return h.writeDuty(max)
}

// fractionDuty scales max by num/denom, rounding toward zero.
func fractionDuty(max, num, denom uint16) (uint16, error) {
	if denom == 0 || num > denom {
		return 0, ErrInvalidDutyCycle
	}
	return uint16(uint32(max) * uint32(num) / uint32(denom)), nil
}

func percentDuty(max uint16, percent uint8) (uint16, error) {
	if percent > 100 {
		return 0, ErrInvalidDutyCycle
	}
	return uint16(uint32(max) * uint32(percent) / 100), nil
}
