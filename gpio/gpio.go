// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package gpio drives the STM32F4 general purpose I/O blocks.
//
// The electrical configuration of a line is part of its Go type: an Input
// can be sampled but not driven, a PushPull or OpenDrain can be driven and
// read back, an Analog line can do neither. Misusing a line is therefore a
// compile error, not a run time surprise. Every mode change returns a new
// handle; the old handle must be discarded and never used again, the same
// way the receiver of io.ReadCloser.Close is dead after the call.
//
// Three more handle kinds trade pieces of that static identity for
// flexibility:
//
//   - ErasedInput/ErasedOutput keep only the mode category and reduce the
//     line identity to two runtime bytes, so outputs from different ports
//     fit in one slice.
//   - PortInput/PortOutput keep the port and reduce only the line index.
//   - Dynamic keeps nothing static: its mode is a runtime value, its
//     operations can fail with ErrIncorrectMode, and SetMode moves it
//     between any two modes.
//
// All register access goes through an mmio.Bus, so the package runs
// unchanged against the gpiotest register simulator on a development host.
//
// # Reference
//
// RM0383 Reference manual, section 8 (GPIO), for the register layout:
//
// https://www.st.com/resource/en/reference_manual/rm0383.pdf
package gpio

import (
	"errors"

	conngpio "periph.io/x/conn/v3/gpio"

	"periph.io/x/stm32/mmio"
)

// Level re-exports the conn/v3 digital level.
type Level = conngpio.Level

// Pull re-exports the conn/v3 pull resistor setting.
type Pull = conngpio.Pull

// Levels and pulls accepted by this package.
const (
	Low      = conngpio.Low
	High     = conngpio.High
	Float    = conngpio.Float
	PullUp   = conngpio.PullUp
	PullDown = conngpio.PullDown
)

// PortID identifies one of the eight GPIO ports.
type PortID uint8

// The GPIO ports of an STM32F4.
const (
	PA PortID = iota
	PB
	PC
	PD
	PE
	PF
	PG
	PH
)

func (id PortID) String() string {
	if id > PH {
		return "P?"
	}
	return string([]byte{'P', 'A' + byte(id)})
}

// Register block layout. One block per port, 0x400 bytes apart. Exported
// so the gpiotest simulator and the tests can address the same map.
const (
	// PortBase is the base address of port A's register block.
	PortBase uint32 = 0x40020000
	// PortStride separates consecutive port register blocks.
	PortStride uint32 = 0x400

	MODER   uint32 = 0x00 // mode, 2 bits per line
	OTYPER  uint32 = 0x04 // output type, 1 bit per line
	OSPEEDR uint32 = 0x08 // output speed, 2 bits per line
	PUPDR   uint32 = 0x0C // pull-up/pull-down, 2 bits per line
	IDR     uint32 = 0x10 // input data
	ODR     uint32 = 0x14 // output data
	BSRR    uint32 = 0x18 // bit set (0:15) / reset (16:31)
	AFRL    uint32 = 0x20 // alternate function, lines 0-7
	AFRH    uint32 = 0x24 // alternate function, lines 8-15
)

// MODER field values.
const (
	modeInput     uint32 = 0x0
	modeOutput    uint32 = 0x1
	modeAlternate uint32 = 0x2
	modeAnalog    uint32 = 0x3
)

// Base returns the register block base address of a port.
func Base(id PortID) uint32 {
	return PortBase + uint32(id)*PortStride
}

// ErrIncorrectMode is returned by Dynamic operations whose electrical
// precondition is not met by the current mode. The hardware is left
// untouched; switch the mode with SetMode and retry, or give up.
var ErrIncorrectMode = errors.New("gpio: operation not supported in current pin mode")

// pin is the identity shared by the typed handles: the owning port plus a
// line index. The electrical mode lives in the wrapping type only.
type pin struct {
	port *Port
	n    uint8
}

func (p pin) bus() mmio.Bus { return p.port.bus }
func (p pin) base() uint32  { return Base(p.port.id) }

// PortID returns the port the line belongs to.
func (p pin) PortID() PortID { return p.port.id }

// Number returns the line index within its port.
func (p pin) Number() int { return int(p.n) }

// Name returns the conventional line name, e.g. "PA5".
func (p pin) Name() string { return lineName(p.port.id, p.n) }

func (p pin) String() string { return p.Name() }

func lineName(id PortID, n uint8) string {
	name := id.String()
	if n >= 10 {
		return name + string([]byte{'1', '0' + n - 10})
	}
	return name + string([]byte{'0' + n})
}

// Register-level operations. Each is a pure function of (bus, base, line);
// every handle kind funnels through these so the observable traffic is
// identical no matter how much identity the handle has erased.

func driveHigh(b mmio.Bus, base uint32, n uint8) {
	b.Write32(base+BSRR, 1<<uint32(n))
}

func driveLow(b mmio.Bus, base uint32, n uint8) {
	b.Write32(base+BSRR, 1<<(uint32(n)+16))
}

func drive(b mmio.Bus, base uint32, n uint8, l Level) {
	if l == High {
		driveHigh(b, base, n)
	} else {
		driveLow(b, base, n)
	}
}

// toggleDrive flips the driven state with a single BSRR write.
func toggleDrive(b mmio.Bus, base uint32, n uint8) {
	if b.Read32(base+ODR)&(1<<uint32(n)) != 0 {
		driveLow(b, base, n)
	} else {
		driveHigh(b, base, n)
	}
}

func drivenHigh(b mmio.Bus, base uint32, n uint8) bool {
	return b.Read32(base+ODR)&(1<<uint32(n)) != 0
}

func readHigh(b mmio.Bus, base uint32, n uint8) bool {
	return b.Read32(base+IDR)&(1<<uint32(n)) != 0
}

// setField2 replaces the 2-bit field of line n in the register at offset.
func setField2(b mmio.Bus, base, offset uint32, n uint8, v uint32) {
	shift := 2 * uint32(n)
	r := b.Read32(base + offset)
	r = r&^(0x3<<shift) | v<<shift
	b.Write32(base+offset, r)
}

// setOutputType selects open-drain (true) or push-pull (false) drive.
func setOutputType(b mmio.Bus, base uint32, n uint8, openDrain bool) {
	r := b.Read32(base + OTYPER)
	if openDrain {
		r |= 1 << uint32(n)
	} else {
		r &^= 1 << uint32(n)
	}
	b.Write32(base+OTYPER, r)
}

// setAltFunc routes line n to alternate function fn (0-15).
func setAltFunc(b mmio.Bus, base uint32, n uint8, fn uint8) {
	offset := AFRL
	if n >= 8 {
		offset = AFRH
		n -= 8
	}
	shift := 4 * uint32(n)
	r := b.Read32(base + offset)
	r = r&^(0xF<<shift) | uint32(fn&0xF)<<shift
	b.Write32(base+offset, r)
}

func setPull(b mmio.Bus, base uint32, n uint8, pull Pull) {
	var v uint32
	switch pull {
	case PullUp:
		v = 0x1
	case PullDown:
		v = 0x2
	case Float:
		v = 0x0
	default:
		return
	}
	setField2(b, base, PUPDR, n, v)
}
