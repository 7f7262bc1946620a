// SPDX-FileCopyrightText: 2024 hansingt
//
// SPDX-License-Identifier: MIT

/*
Package l293x is a platform-independent driver for the L293 and L293D
quadruple half-H bridge chips.

The chip contains four half-H bridges whose outputs (y1 to y4) follow the
corresponding inputs (a1 to a4) while enabled, and float (high impedance)
while disabled. Two enable lines are shared: EN12 gates y1 and y2, EN34
gates y3 and y4, so the outputs of a pair can only be enabled or disabled
together.

The driver is wired with pin objects supplied by the host. Any value
satisfying [DigitalOut] can serve as a terminal; pins additionally
satisfying [StatefulDigitalOut] unlock the state queries and toggles, and
pins satisfying [PwmOut] unlock the duty-cycle operations. Operations
needing a capability the wired pin lacks are refused with
[ErrOperationNotSupported]. Terminals that are not wired at all are passed
as [Unused]; terminals hard-tied to a supply rail as [Vcc] or [Gnd].

Construct a chip from its six pins:

	chip := l293x.New(a1, a2, a3, a4, en12, en34)
	chip.SetY1High()
	chip.EnableY1Y2()

The per-output writes on [L293x] never touch the enable lines, so both
outputs of a pair can be staged while disabled and then enabled in one
step. The [HalfH] views returned by [L293x.Y1] to [L293x.Y4] instead enable
the bridge on write and implement the pin contracts themselves, so an
output of one chip can be wired as an input of another, or be handed to any
other driver expecting an output pin:

	y1 := chip.Y1()
	y1.SetHigh() // enables y1 and y2, then drives a1 high

State queries report the logical state last commanded onto the pins, never
the electrical level of the lines. While a pair is disabled its outputs
have no defined level, and the state queries return [ErrNotEnabled].

Subpackage cdev adapts Linux GPIO character device lines to the pin
contracts, subpackage rppwm adapts RP2040/RP2350 PWM channels, and
subpackage mock provides failure-injectable pins for testing.
*/
package l293x
