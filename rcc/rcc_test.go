// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package rcc

import (
	"testing"

	"periph.io/x/stm32/mmio"
)

func TestEnable(t *testing.T) {
	b := mmio.NewRAM()
	if Enabled(b, GPIOA) {
		t.Fatal("GPIOA clock on at reset")
	}
	Enable(b, GPIOA)
	Enable(b, SPI2)
	if !Enabled(b, GPIOA) || !Enabled(b, SPI2) {
		t.Fatal("clocks not enabled")
	}
	// Enables accumulate within a register instead of overwriting.
	Enable(b, GPIOC)
	if !Enabled(b, GPIOA) || !Enabled(b, GPIOC) {
		t.Fatal("second enable clobbered the first")
	}
	if Enabled(b, SPI1) {
		t.Fatal("SPI1 clock on without Enable")
	}
}

func TestGPIOIndex(t *testing.T) {
	if GPIO(2) != GPIOC {
		t.Fatal("GPIO(2) is not GPIOC")
	}
}
