// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gpio

import (
	"errors"
	"time"

	conngpio "periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	connpin "periph.io/x/conn/v3/pin"
)

// The uniform digital I/O contract. Calling code that does not care which
// handle kind it holds programs against these interfaces; the typed and
// erased kinds never return a non-nil error, Dynamic returns
// ErrIncorrectMode when the tracked mode forbids the operation.

// Pin is the identity every handle kind exposes regardless of mode.
type Pin interface {
	Name() string
	Number() int
	PortID() PortID
}

// Reader is satisfied by every handle with a defined digital read: inputs
// and, through the electrical readback path, outputs.
type Reader interface {
	IsHigh() (bool, error)
	IsLow() (bool, error)
}

// Writer is satisfied by every handle that can drive its line.
type Writer interface {
	SetHigh() error
	SetLow() error
	Set(l Level) error
	Toggle() error
}

// StatefulWriter is a Writer whose driven state can be read back from the
// output latch.
type StatefulWriter interface {
	Writer
	IsSetHigh() (bool, error)
	IsSetLow() (bool, error)
}

var (
	_ Pin = Input{}
	_ Pin = PushPull{}
	_ Pin = OpenDrain{}
	_ Pin = Analog{}
	_ Pin = Alternate{}
	_ Pin = ErasedInput{}
	_ Pin = ErasedOutput{}
	_ Pin = PortInput{}
	_ Pin = PortOutput{}
	_ Pin = &Dynamic{}

	_ Reader = Input{}
	_ Reader = PushPull{}
	_ Reader = OpenDrain{}
	_ Reader = ErasedInput{}
	_ Reader = ErasedOutput{}
	_ Reader = PortInput{}
	_ Reader = PortOutput{}
	_ Reader = &Dynamic{}

	_ StatefulWriter = PushPull{}
	_ StatefulWriter = OpenDrain{}
	_ StatefulWriter = ErasedOutput{}
	_ StatefulWriter = PortOutput{}
	_ StatefulWriter = &Dynamic{}
)

// PinIO adapts a Dynamic handle to the conn/v3 gpio.PinIO contract, so
// the line can be handed to device drivers written against periph. The
// Dynamic kind is the only sensible fit: PinIO reconfigures the line
// through In and Out at run time, which is exactly what Dynamic tracks.
// Any other handle kind reaches gpioreg by way of IntoDynamic first.
//
// The adapter shares the handle it wraps; per the ownership rules, stop
// using the Dynamic directly once it is wrapped.
func PinIO(d *Dynamic) conngpio.PinIO {
	return &dynPin{d: d}
}

// Register wraps d as a gpio.PinIO and registers it under its line name,
// e.g. "PA5".
func Register(d *Dynamic) error {
	return gpioreg.Register(PinIO(d))
}

type dynPin struct {
	d *Dynamic
}

func (p *dynPin) Name() string {
	return p.d.Name()
}

func (p *dynPin) Number() int {
	return p.d.Number()
}

func (p *dynPin) String() string {
	return p.d.Name()
}

func (p *dynPin) Function() string {
	return string(p.Func())
}

// Halt stops all drive by reverting to a high-impedance input.
func (p *dynPin) Halt() error {
	p.d.SetMode(ModeInput)
	return nil
}

func (p *dynPin) In(pull Pull, edge conngpio.Edge) error {
	// Edge interrupts belong to the EXTI block, which this package does
	// not drive.
	if edge != conngpio.NoEdge {
		return errors.New("gpio: edge detection is not supported")
	}
	switch pull {
	case PullUp:
		p.d.SetMode(ModeInputPullUp)
	case PullDown:
		p.d.SetMode(ModeInputPullDown)
	case Float:
		p.d.SetMode(ModeInput)
	case conngpio.PullNoChange:
		if !p.d.Mode().writable() && p.d.Mode() != ModeAnalog {
			return nil
		}
		p.d.SetMode(ModeInput)
	}
	return nil
}

func (p *dynPin) Read() Level {
	v, err := p.d.IsHigh()
	if err != nil {
		return Low
	}
	return Level(v)
}

func (p *dynPin) WaitForEdge(timeout time.Duration) bool {
	return false
}

func (p *dynPin) Pull() Pull {
	switch p.d.Mode() {
	case ModeInputPullUp:
		return PullUp
	case ModeInputPullDown:
		return PullDown
	default:
		return Float
	}
}

func (p *dynPin) DefaultPull() Pull {
	return Float
}

func (p *dynPin) Out(l Level) error {
	if !p.d.Mode().writable() {
		p.d.SetMode(ModeOutputPushPull)
	}
	return p.d.Set(l)
}

func (p *dynPin) PWM(duty conngpio.Duty, f physic.Frequency) error {
	return errors.New("gpio: PWM is not supported")
}

func (p *dynPin) Func() connpin.Func {
	switch {
	case p.d.Mode().writable():
		return conngpio.OUT
	case p.d.Mode() == ModeAnalog:
		return connpin.FuncNone
	default:
		return conngpio.IN
	}
}

func (p *dynPin) SupportedFuncs() []connpin.Func {
	return supportedFuncs[:]
}

func (p *dynPin) SetFunc(f connpin.Func) error {
	switch f {
	case conngpio.IN:
		p.d.SetMode(ModeInput)
	case conngpio.OUT:
		p.d.SetMode(ModeOutputPushPull)
	default:
		return errors.New("gpio: function not supported: " + string(f))
	}
	return nil
}

var supportedFuncs = [...]connpin.Func{conngpio.IN, conngpio.OUT}

var _ conngpio.PinIO = &dynPin{}
var _ connpin.PinFunc = &dynPin{}
