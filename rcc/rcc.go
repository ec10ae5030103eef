// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package rcc drives the reset and clock control peripheral just enough to
// gate peripheral clocks on. A peripheral whose clock is off ignores all
// register writes, so every other package in this tree enables its clock
// before touching its block.
//
// Clock tree frequency selection is out of scope; only the enable bits
// live here.
package rcc

import "periph.io/x/stm32/mmio"

const (
	base    = 0x40023800
	ahb1enr = base + 0x30
	apb1enr = base + 0x40
	apb2enr = base + 0x44
)

// Peripheral identifies a clock-gated peripheral.
type Peripheral struct {
	reg uint32 // enable register address
	bit uint8
}

// Clock-gated peripherals used by this repository.
var (
	GPIOA = Peripheral{ahb1enr, 0}
	GPIOB = Peripheral{ahb1enr, 1}
	GPIOC = Peripheral{ahb1enr, 2}
	GPIOD = Peripheral{ahb1enr, 3}
	GPIOE = Peripheral{ahb1enr, 4}
	GPIOF = Peripheral{ahb1enr, 5}
	GPIOG = Peripheral{ahb1enr, 6}
	GPIOH = Peripheral{ahb1enr, 7}

	SPI1 = Peripheral{apb2enr, 12}
	SPI2 = Peripheral{apb1enr, 14}
	SPI3 = Peripheral{apb1enr, 15}
)

// GPIO returns the peripheral for GPIO port index 0 ('A') through 7 ('H').
func GPIO(index uint8) Peripheral {
	return Peripheral{ahb1enr, index}
}

// Enable turns the peripheral clock on. Enabling an already enabled clock
// is a no-op.
func Enable(b mmio.Bus, p Peripheral) {
	v := b.Read32(p.reg)
	b.Write32(p.reg, v|1<<p.bit)
}

// Enabled reports whether the peripheral clock is on.
func Enabled(b mmio.Bus, p Peripheral) bool {
	return b.Read32(p.reg)&(1<<p.bit) != 0
}
