// SPDX-FileCopyrightText: 2024 hansingt
//
// SPDX-License-Identifier: MIT

package l293x

import (
	stderrors "errors"

	"github.com/pkg/errors"
)

var (
	// ErrNotEnabled is returned by stateful reads and toggles issued while
	// the bridge is disabled. A disabled output floats (high impedance),
	// so it is neither high nor low and the driver refuses to report a
	// state for it.
	ErrNotEnabled = errors.New("output is not enabled")

	// ErrOperationNotSupported is returned when an operation needs a
	// capability the underlying pin does not provide. This covers both
	// terminals wired with a pin lacking the capability (or left Unused)
	// and rail pins asked to change their level.
	ErrOperationNotSupported = errors.New("operation not supported")

	// ErrInvalidDutyCycle is returned by SetDutyFraction when denom is 0
	// or num exceeds denom, and by SetDutyPercent when percent exceeds
	// 100.
	ErrInvalidDutyCycle = errors.New("invalid duty cycle")
)

// InputPinError wraps an error reported by the input pin of a bridge.
type InputPinError struct {
	Err error
}

func (e *InputPinError) Error() string {
	return "input pin: " + e.Err.Error()
}

func (e *InputPinError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an InputPinError carrying an equal payload,
// so errors.Is gives structural equality across the error surface.
func (e *InputPinError) Is(target error) bool {
	t, ok := target.(*InputPinError)
	return ok && stderrors.Is(e.Err, t.Err)
}

// EnablePinError wraps an error reported by the enable pin of a bridge.
type EnablePinError struct {
	Err error
}

func (e *EnablePinError) Error() string {
	return "enable pin: " + e.Err.Error()
}

func (e *EnablePinError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an EnablePinError carrying an equal payload.
func (e *EnablePinError) Is(target error) bool {
	t, ok := target.(*EnablePinError)
	return ok && stderrors.Is(e.Err, t.Err)
}

// inputPinError wraps err as an InputPinError. Capability refusals pass
// through unwrapped, they are driver-level errors, not pin failures.
func inputPinError(err error) error {
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, ErrOperationNotSupported):
		return err
	}
	return &InputPinError{Err: err}
}

func enablePinError(err error) error {
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, ErrOperationNotSupported):
		return err
	}
	return &EnablePinError{Err: err}
}
