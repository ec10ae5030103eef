// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package gpiotest simulates the STM32F4 GPIO register blocks.
//
// Chip is an mmio.Bus that implements the side effects dumb memory cannot:
// BSRR writes land in ODR, and IDR reflects either the driven level or a
// test-supplied stimulus depending on each line's MODER field. It also
// keeps the full write history, which is how tests assert that a guarded
// operation never touched the hardware or that a mode switch latched the
// output level first.
package gpiotest

import (
	"sync"

	"periph.io/x/stm32/gpio"
	"periph.io/x/stm32/mmio"
)

// Op is one recorded register write.
type Op struct {
	Addr uint32
	V    uint32
}

// Chip simulates every GPIO port register block plus plain memory for
// anything else (RCC, peripheral blocks).
type Chip struct {
	mu      sync.Mutex
	cells   map[uint32]uint32
	inputs  map[uint32]uint32 // stimulus IDR value per port base
	history []Op
}

// New returns a chip in reset state: all registers zero, all inputs low.
func New() *Chip {
	return &Chip{
		cells:  map[uint32]uint32{},
		inputs: map[uint32]uint32{},
	}
}

// SetInput sets the electrical stimulus seen by line n of a port while it
// is configured as an input.
func (c *Chip) SetInput(id gpio.PortID, n int, l gpio.Level) {
	c.mu.Lock()
	defer c.mu.Unlock()
	base := gpio.Base(id)
	if l == gpio.High {
		c.inputs[base] |= 1 << uint(n)
	} else {
		c.inputs[base] &^= 1 << uint(n)
	}
}

// Read32 implements mmio.Bus.
func (c *Chip) Read32(addr uint32) uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	base, offset, ok := splitAddr(addr)
	if !ok {
		return c.cells[addr]
	}
	switch offset {
	case gpio.IDR:
		return c.idr(base)
	case gpio.BSRR:
		// Write-only, reads as zero.
		return 0
	default:
		return c.cells[addr]
	}
}

// Write32 implements mmio.Bus.
func (c *Chip) Write32(addr uint32, v uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = append(c.history, Op{Addr: addr, V: v})
	base, offset, ok := splitAddr(addr)
	if ok && offset == gpio.BSRR {
		// Low half sets, high half resets, set wins on conflict.
		odr := c.cells[base+gpio.ODR]
		odr &^= v >> 16
		odr |= v & 0xFFFF
		c.cells[base+gpio.ODR] = odr
		return
	}
	c.cells[addr] = v
}

// idr composes the input data register: driven lines read back their
// output latch, input lines read the stimulus.
func (c *Chip) idr(base uint32) uint32 {
	moder := c.cells[base+gpio.MODER]
	odr := c.cells[base+gpio.ODR]
	in := c.inputs[base]
	var v uint32
	for n := uint(0); n < 16; n++ {
		mode := moder >> (2 * n) & 0x3
		switch mode {
		case 0x1: // output
			v |= odr & (1 << n)
		case 0x3: // analog, digital path disconnected
		default: // input or alternate
			v |= in & (1 << n)
		}
	}
	return v
}

// Reg returns the raw value of the cell at addr without going through the
// peripheral read semantics.
func (c *Chip) Reg(addr uint32) uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cells[addr]
}

// History returns a copy of every write performed so far, in order.
func (c *Chip) History() []Op {
	c.mu.Lock()
	defer c.mu.Unlock()
	h := make([]Op, len(c.history))
	copy(h, c.history)
	return h
}

// Writes returns the recorded values written to addr, in order.
func (c *Chip) Writes(addr uint32) []uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var w []uint32
	for _, op := range c.history {
		if op.Addr == addr {
			w = append(w, op.V)
		}
	}
	return w
}

// ClearHistory discards the recorded writes, keeping the register state.
func (c *Chip) ClearHistory() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = nil
}

func splitAddr(addr uint32) (base, offset uint32, ok bool) {
	last := gpio.Base(gpio.PH) + gpio.PortStride
	if addr < gpio.PortBase || addr >= last {
		return 0, 0, false
	}
	rel := addr - gpio.PortBase
	return gpio.PortBase + rel/gpio.PortStride*gpio.PortStride, rel % gpio.PortStride, true
}

var _ mmio.Bus = &Chip{}
