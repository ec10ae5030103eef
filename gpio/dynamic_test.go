// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gpio_test

import (
	"testing"

	"periph.io/x/stm32/gpio"
	"periph.io/x/stm32/gpio/gpiotest"
)

// TestDynamicGuard checks that a write in input mode fails with the typed
// error and leaves every register untouched.
func TestDynamicGuard(t *testing.T) {
	c, p := split(t, gpio.PA)
	d := claim(t, p, 1).IntoDynamic()
	c.ClearHistory()

	if err := d.SetHigh(); err != gpio.ErrIncorrectMode {
		t.Fatalf("SetHigh in input mode: %v, want ErrIncorrectMode", err)
	}
	if err := d.SetLow(); err != gpio.ErrIncorrectMode {
		t.Fatalf("SetLow in input mode: %v, want ErrIncorrectMode", err)
	}
	if err := d.Toggle(); err != gpio.ErrIncorrectMode {
		t.Fatalf("Toggle in input mode: %v, want ErrIncorrectMode", err)
	}
	if _, err := d.IsSetHigh(); err != gpio.ErrIncorrectMode {
		t.Fatalf("IsSetHigh in input mode: %v, want ErrIncorrectMode", err)
	}
	if h := c.History(); len(h) != 0 {
		t.Fatalf("guarded operations touched hardware: %v", h)
	}
}

func TestDynamicModeWalk(t *testing.T) {
	c, p := split(t, gpio.PB)
	d := claim(t, p, 4).IntoDynamic()
	if d.Mode() != gpio.ModeInput {
		t.Fatalf("fresh dynamic mode = %s", d.Mode())
	}

	d.SetMode(gpio.ModeOutputPushPull)
	if err := d.SetHigh(); err != nil {
		t.Fatal(err)
	}
	if v, err := d.IsSetHigh(); err != nil || !v {
		t.Fatalf("IsSetHigh = %v, %v", v, err)
	}
	// Output lines read back electrically.
	if v, err := d.IsHigh(); err != nil || !v {
		t.Fatalf("IsHigh in output mode = %v, %v", v, err)
	}

	d.SetMode(gpio.ModeOutputOpenDrain)
	if err := d.Toggle(); err != nil {
		t.Fatal(err)
	}
	if v, _ := d.IsSetLow(); !v {
		t.Fatal("toggle did not drive low")
	}

	d.SetMode(gpio.ModeInputPullUp)
	if _, err := d.IsHigh(); err != nil {
		t.Fatalf("read in input mode: %v", err)
	}
	if err := d.SetHigh(); err != gpio.ErrIncorrectMode {
		t.Fatalf("write after reverting to input: %v", err)
	}

	d.SetMode(gpio.ModeAnalog)
	if _, err := d.IsHigh(); err != gpio.ErrIncorrectMode {
		t.Fatalf("read in analog mode: %v", err)
	}

	// No terminal state: analog back to output works.
	d.SetMode(gpio.ModeOutputPushPull)
	if err := d.SetLow(); err != nil {
		t.Fatal(err)
	}
	_ = c
}

func TestDynamicMatchesTyped(t *testing.T) {
	// A dynamic handle in output mode must generate the same traffic as
	// the typed output for the same operations.
	run := func(dynamic bool) []gpiotest.Op {
		c := gpiotest.New()
		p, err := gpio.Split(c, gpio.PC)
		if err != nil {
			t.Fatal(err)
		}
		defer p.Close()
		in, err := p.Pin(9)
		if err != nil {
			t.Fatal(err)
		}
		if dynamic {
			d := in.IntoDynamic()
			d.SetMode(gpio.ModeOutputPushPull)
			c.ClearHistory()
			_ = d.SetHigh()
			_ = d.Toggle()
			_ = d.SetLow()
		} else {
			o := in.IntoPushPull(gpio.Low)
			c.ClearHistory()
			_ = o.SetHigh()
			_ = o.Toggle()
			_ = o.SetLow()
		}
		return c.History()
	}
	typed := run(false)
	dyn := run(true)
	if len(typed) != len(dyn) {
		t.Fatalf("traffic length %d != %d", len(typed), len(dyn))
	}
	for i := range typed {
		if typed[i] != dyn[i] {
			t.Fatalf("op %d: typed %+v != dynamic %+v", i, typed[i], dyn[i])
		}
	}
}

func TestModeString(t *testing.T) {
	data := []struct {
		m    gpio.Mode
		want string
	}{
		{gpio.ModeInput, "Input"},
		{gpio.ModeInputPullUp, "InputPullUp"},
		{gpio.ModeInputPullDown, "InputPullDown"},
		{gpio.ModeOutputPushPull, "OutputPushPull"},
		{gpio.ModeOutputOpenDrain, "OutputOpenDrain"},
		{gpio.ModeAnalog, "Analog"},
		{gpio.Mode(42), "Mode(?)"},
	}
	for _, l := range data {
		if got := l.m.String(); got != l.want {
			t.Fatalf("%d.String() = %q, want %q", l.m, got, l.want)
		}
	}
}
