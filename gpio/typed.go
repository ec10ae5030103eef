// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gpio

// The typed handles. Every mode change consumes the receiver and returns
// a handle of the new type: keep the return value, drop the receiver. A
// stale handle whose type no longer matches the hardware mode is a caller
// bug this package cannot detect, so the convention is strict.
//
// All operations carry an error result so that the four handle kinds
// share one contract; on the typed handles the error is always nil. See
// the Writer, Reader and StatefulWriter interfaces.

// Input is a line configured as a digital input.
type Input struct {
	pin
}

// IsHigh reports whether the line reads high. The error is always nil.
func (p Input) IsHigh() (bool, error) {
	return readHigh(p.bus(), p.base(), p.n), nil
}

// IsLow reports whether the line reads low. The error is always nil.
func (p Input) IsLow() (bool, error) {
	return !readHigh(p.bus(), p.base(), p.n), nil
}

// WithPull sets the internal pull resistor and returns the handle. The
// line stays an input.
func (p Input) WithPull(pull Pull) Input {
	setPull(p.bus(), p.base(), p.n, pull)
	return p
}

// IntoPushPull reconfigures the line as a push-pull output driving the
// requested level. The level is latched before the mode switch, so the
// line never drives the opposite level, not even transiently.
func (p Input) IntoPushPull(initial Level) PushPull {
	drive(p.bus(), p.base(), p.n, initial)
	setOutputType(p.bus(), p.base(), p.n, false)
	setField2(p.bus(), p.base(), MODER, p.n, modeOutput)
	return PushPull{output{p.pin}}
}

// IntoOpenDrain reconfigures the line as an open-drain output driving the
// requested level, with the same glitch-free ordering as IntoPushPull.
func (p Input) IntoOpenDrain(initial Level) OpenDrain {
	drive(p.bus(), p.base(), p.n, initial)
	setOutputType(p.bus(), p.base(), p.n, true)
	setField2(p.bus(), p.base(), MODER, p.n, modeOutput)
	return OpenDrain{output{p.pin}}
}

// IntoAnalog disconnects the digital path entirely.
func (p Input) IntoAnalog() Analog {
	setPull(p.bus(), p.base(), p.n, Float)
	setField2(p.bus(), p.base(), MODER, p.n, modeAnalog)
	return Analog{p.pin}
}

// IntoAlternate routes the line to alternate function fn (0-15).
// Peripheral constructors call this after validating the routing; see the
// i2s package for the shape of that check.
func (p Input) IntoAlternate(fn uint8) Alternate {
	setAltFunc(p.bus(), p.base(), p.n, fn)
	setOutputType(p.bus(), p.base(), p.n, false)
	setField2(p.bus(), p.base(), MODER, p.n, modeAlternate)
	return Alternate{pin: p.pin, fn: fn & 0xF}
}

// IntoDynamic trades the static mode for a runtime-checked one.
func (p Input) IntoDynamic() *Dynamic {
	return &Dynamic{pin: p.pin, mode: ModeInput}
}

// output carries the operations shared by both drive styles.
type output struct {
	pin
}

// SetHigh drives the line high. The error is always nil.
func (p output) SetHigh() error {
	driveHigh(p.bus(), p.base(), p.n)
	return nil
}

// SetLow drives the line low. The error is always nil.
func (p output) SetLow() error {
	driveLow(p.bus(), p.base(), p.n)
	return nil
}

// Set drives the line to l. The error is always nil.
func (p output) Set(l Level) error {
	drive(p.bus(), p.base(), p.n, l)
	return nil
}

// Toggle flips the driven state with a single register write. The error
// is always nil.
func (p output) Toggle() error {
	toggleDrive(p.bus(), p.base(), p.n)
	return nil
}

// IsSetHigh reports whether the line is driven high. This reads back the
// output latch, not the electrical level at the pad.
func (p output) IsSetHigh() (bool, error) {
	return drivenHigh(p.bus(), p.base(), p.n), nil
}

// IsSetLow reports whether the line is driven low.
func (p output) IsSetLow() (bool, error) {
	return !drivenHigh(p.bus(), p.base(), p.n), nil
}

// IsHigh reports the electrical level at the pad. On an open-drain line
// driven low this can disagree with IsSetHigh if something else pulls the
// line.
func (p output) IsHigh() (bool, error) {
	return readHigh(p.bus(), p.base(), p.n), nil
}

// IsLow reports whether the pad reads low.
func (p output) IsLow() (bool, error) {
	return !readHigh(p.bus(), p.base(), p.n), nil
}

// intoInput reverts the line to a floating input. The driven state is
// abandoned; preserving it is only meaningful in the other direction.
func (p output) intoInput() Input {
	setField2(p.bus(), p.base(), MODER, p.n, modeInput)
	return Input{p.pin}
}

func (p output) intoAnalog() Analog {
	setPull(p.bus(), p.base(), p.n, Float)
	setField2(p.bus(), p.base(), MODER, p.n, modeAnalog)
	return Analog{p.pin}
}

func (p output) intoAlternate(fn uint8) Alternate {
	setAltFunc(p.bus(), p.base(), p.n, fn)
	setField2(p.bus(), p.base(), MODER, p.n, modeAlternate)
	return Alternate{pin: p.pin, fn: fn & 0xF}
}

// PushPull is a line driven actively both high and low.
type PushPull struct {
	output
}

// IntoInput reconfigures the line as a floating input.
func (p PushPull) IntoInput() Input { return p.intoInput() }

// IntoAnalog disconnects the digital path entirely.
func (p PushPull) IntoAnalog() Analog { return p.intoAnalog() }

// IntoAlternate routes the line to alternate function fn (0-15).
func (p PushPull) IntoAlternate(fn uint8) Alternate { return p.intoAlternate(fn) }

// IntoDynamic trades the static mode for a runtime-checked one.
func (p PushPull) IntoDynamic() *Dynamic {
	return &Dynamic{pin: p.pin, mode: ModeOutputPushPull}
}

// OpenDrain is a line that drives low actively and relies on a pull-up,
// internal or external, for high.
type OpenDrain struct {
	output
}

// IntoInput reconfigures the line as a floating input.
func (p OpenDrain) IntoInput() Input { return p.intoInput() }

// IntoAnalog disconnects the digital path entirely.
func (p OpenDrain) IntoAnalog() Analog { return p.intoAnalog() }

// IntoAlternate routes the line to alternate function fn (0-15).
func (p OpenDrain) IntoAlternate(fn uint8) Alternate { return p.intoAlternate(fn) }

// IntoDynamic trades the static mode for a runtime-checked one.
func (p OpenDrain) IntoDynamic() *Dynamic {
	return &Dynamic{pin: p.pin, mode: ModeOutputOpenDrain}
}

// Analog is a line handed to the ADC/DAC. It has no digital operations.
type Analog struct {
	pin
}

// IntoInput reconnects the digital input path.
func (p Analog) IntoInput() Input {
	setField2(p.bus(), p.base(), MODER, p.n, modeInput)
	return Input{p.pin}
}

// IntoDynamic trades the static mode for a runtime-checked one.
func (p Analog) IntoDynamic() *Dynamic {
	return &Dynamic{pin: p.pin, mode: ModeAnalog}
}

// Alternate is a line routed to a peripheral function. The owning
// peripheral performs I/O through its own block; the GPIO side only holds
// the routing.
type Alternate struct {
	pin
	fn uint8
}

// Func returns the selected alternate function number.
func (p Alternate) Func() uint8 {
	return p.fn
}

// IntoInput releases the line from its peripheral back to a floating
// input.
func (p Alternate) IntoInput() Input {
	setField2(p.bus(), p.base(), MODER, p.n, modeInput)
	return Input{p.pin}
}
