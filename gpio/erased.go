// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gpio

import "periph.io/x/stm32/mmio"

// Erasure discards identity, never capability: an ErasedInput still has no
// way to drive its line. Erasing consumes the typed handle and is one-way;
// there is no path back to the typed form.
//
// The erased handles carry the port as a plain byte and recompute the
// register block address on every call. That arithmetic is the same pure
// function of (port, line) the typed handles use, so an erased handle and
// the typed handle it came from generate identical register traffic.

// epin is a line identity reduced to two runtime bytes plus the bus.
type epin struct {
	bus  mmio.Bus
	port uint8
	n    uint8
}

func (e epin) base() uint32 {
	return PortBase + uint32(e.port)*PortStride
}

// PortID returns the port the line belongs to.
func (e epin) PortID() PortID { return PortID(e.port) }

// Number returns the line index within its port.
func (e epin) Number() int { return int(e.n) }

// Name returns the conventional line name, e.g. "PA5".
func (e epin) Name() string { return lineName(PortID(e.port), e.n) }

func (e epin) String() string { return e.Name() }

// ErasedInput is an input whose port and line are runtime values, so
// inputs from different ports fit in one container.
type ErasedInput struct {
	epin
}

// Erase discards the line's static identity.
func (p Input) Erase() ErasedInput {
	return ErasedInput{epin{bus: p.bus(), port: uint8(p.port.id), n: p.n}}
}

// IsHigh reports whether the line reads high. The error is always nil.
func (p ErasedInput) IsHigh() (bool, error) {
	return readHigh(p.bus, p.base(), p.n), nil
}

// IsLow reports whether the line reads low. The error is always nil.
func (p ErasedInput) IsLow() (bool, error) {
	return !readHigh(p.bus, p.base(), p.n), nil
}

// ErasedOutput is an output whose port and line are runtime values. The
// drive style (push-pull or open-drain) is erased along with the
// identity; only the output capability remains.
type ErasedOutput struct {
	epin
}

// Erase discards the line's static identity and drive style.
func (p PushPull) Erase() ErasedOutput {
	return ErasedOutput{epin{bus: p.bus(), port: uint8(p.port.id), n: p.n}}
}

// Erase discards the line's static identity and drive style.
func (p OpenDrain) Erase() ErasedOutput {
	return ErasedOutput{epin{bus: p.bus(), port: uint8(p.port.id), n: p.n}}
}

// SetHigh drives the line high. The error is always nil.
func (p ErasedOutput) SetHigh() error {
	driveHigh(p.bus, p.base(), p.n)
	return nil
}

// SetLow drives the line low. The error is always nil.
func (p ErasedOutput) SetLow() error {
	driveLow(p.bus, p.base(), p.n)
	return nil
}

// Set drives the line to l. The error is always nil.
func (p ErasedOutput) Set(l Level) error {
	drive(p.bus, p.base(), p.n, l)
	return nil
}

// Toggle flips the driven state. The error is always nil.
func (p ErasedOutput) Toggle() error {
	toggleDrive(p.bus, p.base(), p.n)
	return nil
}

// IsSetHigh reports whether the line is driven high.
func (p ErasedOutput) IsSetHigh() (bool, error) {
	return drivenHigh(p.bus, p.base(), p.n), nil
}

// IsSetLow reports whether the line is driven low.
func (p ErasedOutput) IsSetLow() (bool, error) {
	return !drivenHigh(p.bus, p.base(), p.n), nil
}

// IsHigh reports the electrical level at the pad.
func (p ErasedOutput) IsHigh() (bool, error) {
	return readHigh(p.bus, p.base(), p.n), nil
}

// IsLow reports whether the pad reads low.
func (p ErasedOutput) IsLow() (bool, error) {
	return !readHigh(p.bus, p.base(), p.n), nil
}

// PortInput is an input that kept its port but erased its line index.
// Useful for code generic over "any line on this port".
type PortInput struct {
	pin
}

// EraseLine discards the line index from the handle's static identity,
// keeping the port.
func (p Input) EraseLine() PortInput {
	return PortInput{p.pin}
}

// IsHigh reports whether the line reads high. The error is always nil.
func (p PortInput) IsHigh() (bool, error) {
	return readHigh(p.bus(), p.base(), p.n), nil
}

// IsLow reports whether the line reads low. The error is always nil.
func (p PortInput) IsLow() (bool, error) {
	return !readHigh(p.bus(), p.base(), p.n), nil
}

// PortOutput is an output that kept its port but erased its line index
// and drive style.
type PortOutput struct {
	pin
}

// EraseLine discards the line index and drive style, keeping the port.
func (p PushPull) EraseLine() PortOutput {
	return PortOutput{p.pin}
}

// EraseLine discards the line index and drive style, keeping the port.
func (p OpenDrain) EraseLine() PortOutput {
	return PortOutput{p.pin}
}

// Port returns the owning port.
func (p PortOutput) Port() *Port { return p.port }

// Port returns the owning port.
func (p PortInput) Port() *Port { return p.port }

// SetHigh drives the line high. The error is always nil.
func (p PortOutput) SetHigh() error {
	driveHigh(p.bus(), p.base(), p.n)
	return nil
}

// SetLow drives the line low. The error is always nil.
func (p PortOutput) SetLow() error {
	driveLow(p.bus(), p.base(), p.n)
	return nil
}

// Set drives the line to l. The error is always nil.
func (p PortOutput) Set(l Level) error {
	drive(p.bus(), p.base(), p.n, l)
	return nil
}

// Toggle flips the driven state. The error is always nil.
func (p PortOutput) Toggle() error {
	toggleDrive(p.bus(), p.base(), p.n)
	return nil
}

// IsSetHigh reports whether the line is driven high.
func (p PortOutput) IsSetHigh() (bool, error) {
	return drivenHigh(p.bus(), p.base(), p.n), nil
}

// IsSetLow reports whether the line is driven low.
func (p PortOutput) IsSetLow() (bool, error) {
	return !drivenHigh(p.bus(), p.base(), p.n), nil
}

// IsHigh reports the electrical level at the pad.
func (p PortOutput) IsHigh() (bool, error) {
	return readHigh(p.bus(), p.base(), p.n), nil
}

// IsLow reports whether the pad reads low.
func (p PortOutput) IsLow() (bool, error) {
	return !readHigh(p.bus(), p.base(), p.n), nil
}
