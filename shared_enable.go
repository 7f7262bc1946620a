// SPDX-FileCopyrightText: 2024 hansingt
//
// SPDX-License-Identifier: MIT

package l293x

// SharedEnable grants two sibling half-H bridges mutable access to one
// underlying enable pin.
//
// The chip exposes a single enable line per bridge pair, so both bridges of
// a pair hold the same handle and every write through one is observable
// through the other. The handle assumes the single-owner use of the L293x;
// it is not safe for concurrent use.
type SharedEnable struct {
	pin any
}

func newSharedEnable(pin any) *SharedEnable {
	return &SharedEnable{pin: pin}
}

// SetHigh drives the underlying enable pin high.
func (s *SharedEnable) SetHigh() error {
	p, ok := s.pin.(DigitalOut)
	if !ok {
		return ErrOperationNotSupported
	}
	return p.SetHigh()
}

// SetLow drives the underlying enable pin low.
func (s *SharedEnable) SetLow() error {
	p, ok := s.pin.(DigitalOut)
	if !ok {
		return ErrOperationNotSupported
	}
	return p.SetLow()
}

// IsSetHigh reports the logical state last commanded onto the enable pin.
func (s *SharedEnable) IsSetHigh() (bool, error) {
	p, ok := s.pin.(StatefulDigitalOut)
	if !ok {
		return false, ErrOperationNotSupported
	}
	return p.IsSetHigh()
}

// IsSetLow reports whether the enable pin was last commanded low.
func (s *SharedEnable) IsSetLow() (bool, error) {
	p, ok := s.pin.(StatefulDigitalOut)
	if !ok {
		return false, ErrOperationNotSupported
	}
	return p.IsSetLow()
}
