// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gpio

// Mode is the runtime classification a Dynamic handle tracks.
type Mode uint8

// Modes reachable through Dynamic.SetMode.
const (
	ModeInput Mode = iota
	ModeInputPullUp
	ModeInputPullDown
	ModeOutputPushPull
	ModeOutputOpenDrain
	ModeAnalog
)

const modeName = "InputInputPullUpInputPullDownOutputPushPullOutputOpenDrainAnalog"

var modeIndex = [...]uint8{0, 5, 16, 29, 43, 58, 64}

func (m Mode) String() string {
	if int(m) >= len(modeIndex)-1 {
		return "Mode(?)"
	}
	return modeName[modeIndex[m]:modeIndex[m+1]]
}

// readable reports whether the mode has a defined digital read. Output
// lines read back electrically through the input path, so they qualify.
func (m Mode) readable() bool {
	return m != ModeAnalog
}

// writable reports whether the mode drives the line.
func (m Mode) writable() bool {
	return m == ModeOutputPushPull || m == ModeOutputOpenDrain
}

// Dynamic is a line whose mode is decided at run time, for callers that
// only learn the wiring from a configuration table. Operations check the
// tracked mode first and fail with ErrIncorrectMode before touching any
// register; SetMode itself never fails.
//
// A Dynamic handle must not be shared: the check-then-act sequence in the
// guarded operations relies on the exclusive ownership rule that covers
// every handle kind in this package.
type Dynamic struct {
	pin
	mode Mode
}

// Mode returns the current runtime-tracked mode.
func (d *Dynamic) Mode() Mode {
	return d.mode
}

// SetMode reconfigures the line. Any mode can be reached from any other;
// this is a hardware reconfiguration, not a logical constraint.
func (d *Dynamic) SetMode(m Mode) {
	b, base := d.bus(), d.base()
	switch m {
	case ModeInput:
		setPull(b, base, d.n, Float)
		setField2(b, base, MODER, d.n, modeInput)
	case ModeInputPullUp:
		setPull(b, base, d.n, PullUp)
		setField2(b, base, MODER, d.n, modeInput)
	case ModeInputPullDown:
		setPull(b, base, d.n, PullDown)
		setField2(b, base, MODER, d.n, modeInput)
	case ModeOutputPushPull:
		setOutputType(b, base, d.n, false)
		setField2(b, base, MODER, d.n, modeOutput)
	case ModeOutputOpenDrain:
		setOutputType(b, base, d.n, true)
		setField2(b, base, MODER, d.n, modeOutput)
	case ModeAnalog:
		setPull(b, base, d.n, Float)
		setField2(b, base, MODER, d.n, modeAnalog)
	default:
		return
	}
	d.mode = m
}

// SetHigh drives the line high, or returns ErrIncorrectMode if the line
// is not an output.
func (d *Dynamic) SetHigh() error {
	if !d.mode.writable() {
		return ErrIncorrectMode
	}
	driveHigh(d.bus(), d.base(), d.n)
	return nil
}

// SetLow drives the line low, or returns ErrIncorrectMode if the line is
// not an output.
func (d *Dynamic) SetLow() error {
	if !d.mode.writable() {
		return ErrIncorrectMode
	}
	driveLow(d.bus(), d.base(), d.n)
	return nil
}

// Set drives the line to l, or returns ErrIncorrectMode if the line is
// not an output.
func (d *Dynamic) Set(l Level) error {
	if !d.mode.writable() {
		return ErrIncorrectMode
	}
	drive(d.bus(), d.base(), d.n, l)
	return nil
}

// Toggle flips the driven state, or returns ErrIncorrectMode if the line
// is not an output.
func (d *Dynamic) Toggle() error {
	if !d.mode.writable() {
		return ErrIncorrectMode
	}
	toggleDrive(d.bus(), d.base(), d.n)
	return nil
}

// IsSetHigh reports whether the line is driven high, or returns
// ErrIncorrectMode if the line is not an output.
func (d *Dynamic) IsSetHigh() (bool, error) {
	if !d.mode.writable() {
		return false, ErrIncorrectMode
	}
	return drivenHigh(d.bus(), d.base(), d.n), nil
}

// IsSetLow reports whether the line is driven low, or returns
// ErrIncorrectMode if the line is not an output.
func (d *Dynamic) IsSetLow() (bool, error) {
	if !d.mode.writable() {
		return false, ErrIncorrectMode
	}
	return !drivenHigh(d.bus(), d.base(), d.n), nil
}

// IsHigh reports whether the line reads high, or returns ErrIncorrectMode
// in analog mode, where the digital input path is disconnected.
func (d *Dynamic) IsHigh() (bool, error) {
	if !d.mode.readable() {
		return false, ErrIncorrectMode
	}
	return readHigh(d.bus(), d.base(), d.n), nil
}

// IsLow reports whether the line reads low, or returns ErrIncorrectMode
// in analog mode.
func (d *Dynamic) IsLow() (bool, error) {
	if !d.mode.readable() {
		return false, ErrIncorrectMode
	}
	return !readHigh(d.bus(), d.base(), d.n), nil
}
