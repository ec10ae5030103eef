// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gpiotest

import (
	"testing"

	"periph.io/x/stm32/gpio"
)

func TestBSRRUpdatesODR(t *testing.T) {
	c := New()
	base := gpio.Base(gpio.PA)
	c.Write32(base+gpio.BSRR, 1<<5)
	if got := c.Reg(base + gpio.ODR); got != 1<<5 {
		t.Fatalf("ODR = %#x, want %#x", got, 1<<5)
	}
	c.Write32(base+gpio.BSRR, 1<<(5+16))
	if got := c.Reg(base + gpio.ODR); got != 0 {
		t.Fatalf("ODR = %#x after reset, want 0", got)
	}
	// Set wins over reset for the same line.
	c.Write32(base+gpio.BSRR, 1<<5|1<<(5+16))
	if got := c.Reg(base + gpio.ODR); got != 1<<5 {
		t.Fatalf("ODR = %#x after conflicting set/reset, want %#x", got, 1<<5)
	}
	if got := c.Read32(base + gpio.BSRR); got != 0 {
		t.Fatalf("BSRR reads %#x, want 0", got)
	}
}

func TestIDRFollowsMode(t *testing.T) {
	c := New()
	base := gpio.Base(gpio.PB)
	c.SetInput(gpio.PB, 3, gpio.High)
	if got := c.Read32(base + gpio.IDR); got != 1<<3 {
		t.Fatalf("input IDR = %#x, want %#x", got, 1<<3)
	}
	// Switch line 3 to output: IDR now follows ODR, not the stimulus.
	c.Write32(base+gpio.MODER, 0x1<<(2*3))
	if got := c.Read32(base + gpio.IDR); got != 0 {
		t.Fatalf("output IDR = %#x with low latch, want 0", got)
	}
	c.Write32(base+gpio.BSRR, 1<<3)
	if got := c.Read32(base + gpio.IDR); got != 1<<3 {
		t.Fatalf("output IDR = %#x with high latch, want %#x", got, 1<<3)
	}
	// Analog disconnects the digital path.
	c.Write32(base+gpio.MODER, 0x3<<(2*3))
	if got := c.Read32(base + gpio.IDR); got != 0 {
		t.Fatalf("analog IDR = %#x, want 0", got)
	}
}

func TestHistory(t *testing.T) {
	c := New()
	base := gpio.Base(gpio.PA)
	c.Write32(base+gpio.BSRR, 1)
	c.Write32(0x40023830, 0xFF) // outside the GPIO blocks, plain memory
	h := c.History()
	if len(h) != 2 {
		t.Fatalf("history length = %d, want 2", len(h))
	}
	if h[0] != (Op{base + gpio.BSRR, 1}) {
		t.Fatalf("h[0] = %+v", h[0])
	}
	if w := c.Writes(0x40023830); len(w) != 1 || w[0] != 0xFF {
		t.Fatalf("Writes = %v", w)
	}
	if got := c.Read32(0x40023830); got != 0xFF {
		t.Fatalf("plain cell = %#x, want 0xFF", got)
	}
	c.ClearHistory()
	if len(c.History()) != 0 {
		t.Fatal("history not cleared")
	}
}
