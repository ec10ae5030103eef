// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package mmio abstracts 32-bit memory-mapped register access.
//
// On actual silicon a Bus is a pair of volatile loads and stores. Keeping
// it behind an interface lets the rest of the tree run against a register
// simulator on a development host, the same way device drivers run against
// a scripted i2c bus in tests.
package mmio

import "sync"

// Bus performs aligned 32-bit register accesses.
//
// Neither operation can fail: a register access either happens or the
// program is gone. Implementations must be safe for use from a single
// goroutine; the gpio ownership rules never share a line between two.
type Bus interface {
	Read32(addr uint32) uint32
	Write32(addr uint32, v uint32)
}

// RAM is a sparse memory backing a Bus with plain load/store semantics.
//
// It has no peripheral side effects. Use gpiotest.Chip when the GPIO
// register block behavior (BSRR, IDR readback) matters.
type RAM struct {
	mu    sync.Mutex
	cells map[uint32]uint32
}

// NewRAM returns an empty, all-zero memory.
func NewRAM() *RAM {
	return &RAM{cells: map[uint32]uint32{}}
}

// Read32 implements Bus.
func (r *RAM) Read32(addr uint32) uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cells[addr]
}

// Write32 implements Bus.
func (r *RAM) Write32(addr uint32, v uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cells[addr] = v
}

var _ Bus = &RAM{}
