// SPDX-FileCopyrightText: 2024 hansingt
//
// SPDX-License-Identifier: MIT

package l293x

// Vcc marks a terminal hard-wired to the supply rail.
//
// It is permanently high. Operations that would change its level return
// ErrOperationNotSupported. Wiring Vcc as an enable terminal expresses a
// bridge pair that is always driven and can never be put into high
// impedance.
type Vcc struct{}

// SetHigh is a no-op; the pin is already high.
func (Vcc) SetHigh() error { return nil }

// SetLow always fails with ErrOperationNotSupported.
func (Vcc) SetLow() error { return ErrOperationNotSupported }

func (Vcc) IsSetHigh() (bool, error) { return true, nil }

func (Vcc) IsSetLow() (bool, error) { return false, nil }

// Toggle always fails with ErrOperationNotSupported.
func (Vcc) Toggle() error { return ErrOperationNotSupported }

// Gnd marks a terminal hard-wired to ground.
//
// It is permanently low. Operations that would change its level return
// ErrOperationNotSupported. Wiring Gnd as an input expresses an output that
// only switches between low and high impedance.
type Gnd struct{}

// SetLow is a no-op; the pin is already low.
func (Gnd) SetLow() error { return nil }

// SetHigh always fails with ErrOperationNotSupported.
func (Gnd) SetHigh() error { return ErrOperationNotSupported }

func (Gnd) IsSetHigh() (bool, error) { return false, nil }

func (Gnd) IsSetLow() (bool, error) { return true, nil }

// Toggle always fails with ErrOperationNotSupported.
func (Gnd) Toggle() error { return ErrOperationNotSupported }

// Unused marks a terminal of the chip that is not wired.
//
// It implements none of the pin contracts, so every operation that would
// need the terminal is refused with ErrOperationNotSupported. The
// remaining terminals stay fully usable.
type Unused struct{}
