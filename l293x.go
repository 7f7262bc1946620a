// SPDX-FileCopyrightText: 2024 hansingt
//
// SPDX-License-Identifier: MIT

package l293x

// L293x drives the L293 or L293D quadruple half-H bridge chip.
//
// The chip contains four half-H bridges. Input a1 drives output y1, a2
// drives y2 and so on. The bridges share two enable lines: EN12 gates y1
// and y2, EN34 gates y3 and y4, so the outputs of a pair always leave or
// enter high impedance together.
//
// Inputs may be digital pins (DigitalOut, optionally StatefulDigitalOut)
// or PWM pins (PwmOut); the operations available per output follow the
// capabilities of the pin wired to it. Terminals that are not wired are
// passed as Unused; enables hard-tied to the supply rail as Vcc.
//
// The per-output write operations (SetY1High, SetY1Duty, ...) update the
// input pin only and never touch the enable line. This allows staging both
// outputs of a pair while they are disabled, avoiding transient currents,
// and then enabling them together. The HalfH views returned by Y1 to Y4
// behave the other way around and enable the bridge on write, so they can
// serve as ordinary output pins for other drivers.
//
// The driver assumes sole ownership of all six pins for its lifetime and
// is not safe for concurrent use.
type L293x struct {
	y1, y2, y3, y4 *HalfH
}

// New wires the four input terminals and the two enable terminals of the
// chip.
//
// Each enable pin is wrapped into a SharedEnable handle held by both
// bridges of its pair. No pin is driven to an initial level; the chip
// starts in whatever state the pins are in.
func New(a1, a2, a3, a4, en12, en34 any) *L293x {
	e12 := newSharedEnable(en12)
	e34 := newSharedEnable(en34)
	return &L293x{
		y1: &HalfH{input: a1, enable: e12},
		y2: &HalfH{input: a2, enable: e12},
		y3: &HalfH{input: a3, enable: e34},
		y4: &HalfH{input: a4, enable: e34},
	}
}

// Y1 returns the half-H bridge view for output y1.
//
// The view shares the chip's pins, mutating it mutates the chip. Keep in
// mind that y1 and y2 share an enable line: enabling or disabling the view
// affects both outputs.
func (l *L293x) Y1() *HalfH { return l.y1 }

// Y2 returns the half-H bridge view for output y2. See Y1.
func (l *L293x) Y2() *HalfH { return l.y2 }

// Y3 returns the half-H bridge view for output y3. See Y1.
func (l *L293x) Y3() *HalfH { return l.y3 }

// Y4 returns the half-H bridge view for output y4. See Y1.
func (l *L293x) Y4() *HalfH { return l.y4 }

// EnableY1Y2 enables outputs y1 and y2.
//
// The two bridges share one enable line; both outputs leave high impedance
// together and there is no way to enable only one of them.
func (l *L293x) EnableY1Y2() error { return l.y1.Enable() }

// DisableY1Y2 puts outputs y1 and y2 into high impedance together.
func (l *L293x) DisableY1Y2() error { return l.y1.Disable() }

// EnableY3Y4 enables outputs y3 and y4. See EnableY1Y2.
func (l *L293x) EnableY3Y4() error { return l.y3.Enable() }

// DisableY3Y4 puts outputs y3 and y4 into high impedance together.
func (l *L293x) DisableY3Y4() error { return l.y3.Disable() }

// Y1Y2Enabled reports whether the enable line of y1 and y2 was last
// commanded high. This is the commanded logical state, not the electrical
// level of the line.
func (l *L293x) Y1Y2Enabled() (bool, error) { return l.y1.IsEnabled() }

// Y1Y2Disabled reports whether the enable line of y1 and y2 was last
// commanded low.
func (l *L293x) Y1Y2Disabled() (bool, error) { return l.y1.IsDisabled() }

// Y3Y4Enabled reports whether the enable line of y3 and y4 was last
// commanded high.
func (l *L293x) Y3Y4Enabled() (bool, error) { return l.y3.IsEnabled() }

// Y3Y4Disabled reports whether the enable line of y3 and y4 was last
// commanded low.
func (l *L293x) Y3Y4Disabled() (bool, error) { return l.y3.IsDisabled() }

// SetY1High sets input a1 high.
//
// The enable line is not touched. While the pair is disabled the output
// remains in high impedance; enable it with EnableY1Y2 for the output to
// actually go high.
func (l *L293x) SetY1High() error { return l.y1.writeState(High) }

// SetY1Low sets input a1 low. The enable line is not touched.
func (l *L293x) SetY1Low() error { return l.y1.writeState(Low) }

// SetY1State sets input a1 to s. The enable line is not touched.
func (l *L293x) SetY1State(s State) error { return l.y1.writeState(s) }

// IsY1SetHigh reports whether output y1 is high.
//
// While the pair is disabled the output floats, so this returns
// ErrNotEnabled rather than a state the line does not have.
func (l *L293x) IsY1SetHigh() (bool, error) { return l.y1.IsSetHigh() }

// IsY1SetLow reports whether output y1 is low. Returns ErrNotEnabled while
// the pair is disabled.
func (l *L293x) IsY1SetLow() (bool, error) { return l.y1.IsSetLow() }

// ToggleY1 flips the state of input a1. Returns ErrNotEnabled while the
// pair is disabled; the enable line is never touched.
func (l *L293x) ToggleY1() error { return l.y1.Toggle() }

// Y1MaxDuty returns the maximum value accepted by SetY1Duty.
func (l *L293x) Y1MaxDuty() (uint16, error) { return l.y1.maxDuty() }

// SetY1Duty sets the duty cycle of output y1. The enable line is not
// touched.
func (l *L293x) SetY1Duty(duty uint16) error { return l.y1.writeDuty(duty) }

// SetY1DutyFraction sets the duty cycle of output y1 to num/denom of its
// maximum. The enable line is not touched.
func (l *L293x) SetY1DutyFraction(num, denom uint16) error {
	return l.y1.writeDutyFraction(num, denom)
}

// SetY1DutyPercent sets the duty cycle of output y1 to percent of its
// maximum. The enable line is not touched.
func (l *L293x) SetY1DutyPercent(percent uint8) error {
	return l.y1.writeDutyPercent(percent)
}

// SetY1DutyFullyOn sets output y1 permanently active. The enable line is
// not touched.
func (l *L293x) SetY1DutyFullyOn() error { return l.y1.writeDutyFullyOn() }

// SetY1DutyFullyOff sets output y1 permanently inactive. The enable line
// is not touched.
func (l *L293x) SetY1DutyFullyOff() error { return l.y1.writeDuty(0) }

// SetY2High sets input a2 high. See SetY1High.
func (l *L293x) SetY2High() error { return l.y2.writeState(High) }

// SetY2Low sets input a2 low. The enable line is not touched.
func (l *L293x) SetY2Low() error { return l.y2.writeState(Low) }

// SetY2State sets input a2 to s. The enable line is not touched.
func (l *L293x) SetY2State(s State) error { return l.y2.writeState(s) }

// IsY2SetHigh reports whether output y2 is high. See IsY1SetHigh.
func (l *L293x) IsY2SetHigh() (bool, error) { return l.y2.IsSetHigh() }

// IsY2SetLow reports whether output y2 is low. Returns ErrNotEnabled while
// the pair is disabled.
func (l *L293x) IsY2SetLow() (bool, error) { return l.y2.IsSetLow() }

// ToggleY2 flips the state of input a2. See ToggleY1.
func (l *L293x) ToggleY2() error { return l.y2.Toggle() }

// Y2MaxDuty returns the maximum value accepted by SetY2Duty.
func (l *L293x) Y2MaxDuty() (uint16, error) { return l.y2.maxDuty() }

// SetY2Duty sets the duty cycle of output y2. The enable line is not
// touched.
func (l *L293x) SetY2Duty(duty uint16) error { return l.y2.writeDuty(duty) }

// SetY2DutyFraction sets the duty cycle of output y2 to num/denom of its
// maximum. The enable line is not touched.
func (l *L293x) SetY2DutyFraction(num, denom uint16) error {
	return l.y2.writeDutyFraction(num, denom)
}

// SetY2DutyPercent sets the duty cycle of output y2 to percent of its
// maximum. The enable line is not touched.
func (l *L293x) SetY2DutyPercent(percent uint8) error {
	return l.y2.writeDutyPercent(percent)
}

// SetY2DutyFullyOn sets output y2 permanently active. The enable line is
// not touched.
func (l *L293x) SetY2DutyFullyOn() error { return l.y2.writeDutyFullyOn() }

// SetY2DutyFullyOff sets output y2 permanently inactive. The enable line
// is not touched.
func (l *L293x) SetY2DutyFullyOff() error { return l.y2.writeDuty(0) }

// SetY3High sets input a3 high. See SetY1High.
func (l *L293x) SetY3High() error { return l.y3.writeState(High) }

// SetY3Low sets input a3 low. The enable line is not touched.
func (l *L293x) SetY3Low() error { return l.y3.writeState(Low) }

// SetY3State sets input a3 to s. The enable line is not touched.
func (l *L293x) SetY3State(s State) error { return l.y3.writeState(s) }

// IsY3SetHigh reports whether output y3 is high. See IsY1SetHigh.
func (l *L293x) IsY3SetHigh() (bool, error) { return l.y3.IsSetHigh() }

// IsY3SetLow reports whether output y3 is low. Returns ErrNotEnabled while
// the pair is disabled.
func (l *L293x) IsY3SetLow() (bool, error) { return l.y3.IsSetLow() }

// ToggleY3 flips the state of input a3. See ToggleY1.
func (l *L293x) ToggleY3() error { return l.y3.Toggle() }

// Y3MaxDuty returns the maximum value accepted by SetY3Duty.
func (l *L293x) Y3MaxDuty() (uint16, error) { return l.y3.maxDuty() }

// SetY3Duty sets the duty cycle of output y3. The enable line is not
// touched.
func (l *L293x) SetY3Duty(duty uint16) error { return l.y3.writeDuty(duty) }

// SetY3DutyFraction sets the duty cycle of output y3 to num/denom of its
// maximum. The enable line is not touched.
func (l *L293x) SetY3DutyFraction(num, denom uint16) error {
	return l.y3.writeDutyFraction(num, denom)
}

// SetY3DutyPercent sets the duty cycle of output y3 to percent of its
// maximum. The enable line is not touched.
func (l *L293x) SetY3DutyPercent(percent uint8) error {
	return l.y3.writeDutyPercent(percent)
}

// SetY3DutyFullyOn sets output y3 permanently active. The enable line is
// not touched.
func (l *L293x) SetY3DutyFullyOn() error { return l.y3.writeDutyFullyOn() }

// SetY3DutyFullyOff sets output y3 permanently inactive. The enable line
// is not touched.
func (l *L293x) SetY3DutyFullyOff() error { return l.y3.writeDuty(0) }

// SetY4High sets input a4 high. See SetY1High.
func (l *L293x) SetY4High() error { return l.y4.writeState(High) }

// SetY4Low sets input a4 low. The enable line is not touched.
func (l *L293x) SetY4Low() error { return l.y4.writeState(Low) }

// SetY4State sets input a4 to s. The enable line is not touched.
func (l *L293x) SetY4State(s State) error { return l.y4.writeState(s) }

// IsY4SetHigh reports whether output y4 is high. See IsY1SetHigh.
func (l *L293x) IsY4SetHigh() (bool, error) { return l.y4.IsSetHigh() }

// IsY4SetLow reports whether output y4 is low. Returns ErrNotEnabled while
// the pair is disabled.
func (l *L293x) IsY4SetLow() (bool, error) { return l.y4.IsSetLow() }

// ToggleY4 flips the state of input a4. See ToggleY1.
func (l *L293x) ToggleY4() error { return l.y4.Toggle() }

// Y4MaxDuty returns the maximum value accepted by SetY4Duty.
func (l *L293x) Y4MaxDuty() (uint16, error) { return l.y4.maxDuty() }

// SetY4Duty sets the duty cycle of output y4. The enable line is not
// touched.
func (l *L293x) SetY4Duty(duty uint16) error { return l.y4.writeDuty(duty) }

// SetY4DutyFraction sets the duty cycle of output y4 to num/denom of its
// maximum. The enable line is not touched.
func (l *L293x) SetY4DutyFraction(num, denom uint16) error {
	return l.y4.writeDutyFraction(num, denom)
}

// SetY4DutyPercent sets the duty cycle of output y4 to percent of its
// maximum. The enable line is not touched.
func (l *L293x) SetY4DutyPercent(percent uint8) error {
	return l.y4.writeDutyPercent(percent)
}

// SetY4DutyFullyOn sets output y4 permanently active. The enable line is
// not touched.
func (l *L293x) SetY4DutyFullyOn() error { return l.y4.writeDutyFullyOn() }

// SetY4DutyFullyOff sets output y4 permanently inactive. The enable line
// is not touched.
func (l *L293x) SetY4DutyFullyOff() error { return l.y4.writeDuty(0) }
