// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package scope

import (
	"bytes"
	"strings"
	"testing"

	"periph.io/x/stm32/gpio"
	"periph.io/x/stm32/gpio/gpiotest"
)

func pa0(t *testing.T, tap *Tap) gpio.PushPull {
	p, err := gpio.Split(tap, gpio.PA)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := p.Close(); err != nil {
			t.Error(err)
		}
	})
	in, err := p.Pin(0)
	if err != nil {
		t.Fatal(err)
	}
	return in.IntoPushPull(gpio.Low)
}

func TestTapRecords(t *testing.T) {
	tap := NewTap(gpiotest.New(), []Channel{
		{Label: "PA0", Addr: gpio.Base(gpio.PA) + gpio.ODR, Bit: 0},
	})
	out := pa0(t, tap)
	before := tap.Len()
	if before < 2 {
		t.Fatalf("expected samples from pin setup, got %d", before)
	}
	if err := out.SetHigh(); err != nil {
		t.Fatal(err)
	}
	if err := out.Toggle(); err != nil {
		t.Fatal(err)
	}
	s := tap.Samples(0)
	if len(s) != before+2 {
		t.Fatalf("expected %d samples, got %d", before+2, len(s))
	}
	if !s[before] {
		t.Fatal("expected high after SetHigh")
	}
	if s[before+1] {
		t.Fatal("expected low after Toggle")
	}
}

func TestDraw(t *testing.T) {
	tap := NewTap(gpiotest.New(), []Channel{
		{Label: "ODR0", Addr: gpio.Base(gpio.PA) + gpio.ODR, Bit: 0},
		{Label: "MODER0", Addr: gpio.Base(gpio.PA) + gpio.MODER, Bit: 0},
	})
	out := pa0(t, tap)
	if err := out.SetHigh(); err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	d := New(&Opts{W: buf})
	if s := d.String(); s != "Scope" {
		t.Fatal(s)
	}
	if err := d.Draw(tap); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.Contains(got, "ODR0") || !strings.Contains(got, "MODER0") {
		t.Fatalf("missing labels in %q", got)
	}
	if !strings.Contains(got, "\033[0m\n") {
		t.Fatalf("missing attribute reset in %q", got)
	}
	if strings.Count(got, "\n") != 2 {
		t.Fatalf("expected one line per channel in %q", got)
	}
	if err := d.Halt(); err != nil {
		t.Fatal(err)
	}
}

func TestDrawNoChannels(t *testing.T) {
	d := New(&Opts{W: &bytes.Buffer{}})
	if err := d.Draw(NewTap(gpiotest.New(), nil)); err == nil {
		t.Fatal("expected an error")
	}
}

func TestWritePNG(t *testing.T) {
	tap := NewTap(gpiotest.New(), []Channel{
		{Label: "PA0", Addr: gpio.Base(gpio.PA) + gpio.ODR, Bit: 0},
	})
	out := pa0(t, tap)
	if err := out.SetHigh(); err != nil {
		t.Fatal(err)
	}
	if err := out.SetLow(); err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := WritePNG(buf, tap); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Fatal("not a PNG")
	}
}

func TestWritePNGNoChannels(t *testing.T) {
	if err := WritePNG(&bytes.Buffer{}, NewTap(gpiotest.New(), nil)); err == nil {
		t.Fatal("expected an error")
	}
}
