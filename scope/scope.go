// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package scope renders register activity as digital waveforms.
//
// A Tap sits between the code under test and its mmio.Bus and samples a
// set of watched register bits after every write, giving each watched bit
// a timeline. Dev draws those timelines to a terminal using ANSI color
// blocks; WritePNG draws them as a timing diagram.
//
// Useful while you are chasing an output glitch without a logic analyzer
// on your desk.
package scope

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"sync"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"

	"periph.io/x/stm32/mmio"
)

// Channel is one watched register bit.
type Channel struct {
	Label string
	Addr  uint32
	Bit   uint8
}

// Tap wraps a Bus and samples every channel after each write. Reads pass
// through unobserved.
type Tap struct {
	b        mmio.Bus
	channels []Channel

	mu      sync.Mutex
	samples [][]bool // per channel, one entry per write plus the initial state
}

// NewTap returns a Tap recording the given channels, primed with one
// sample of the current state.
func NewTap(b mmio.Bus, channels []Channel) *Tap {
	t := &Tap{
		b:        b,
		channels: channels,
		samples:  make([][]bool, len(channels)),
	}
	t.mu.Lock()
	t.sample()
	t.mu.Unlock()
	return t
}

// Read32 implements mmio.Bus.
func (t *Tap) Read32(addr uint32) uint32 {
	return t.b.Read32(addr)
}

// Write32 implements mmio.Bus.
func (t *Tap) Write32(addr uint32, v uint32) {
	t.b.Write32(addr, v)
	t.mu.Lock()
	t.sample()
	t.mu.Unlock()
}

func (t *Tap) sample() {
	for i, ch := range t.channels {
		v := t.b.Read32(ch.Addr)&(1<<uint32(ch.Bit)) != 0
		t.samples[i] = append(t.samples[i], v)
	}
}

// Channels returns the watched channels.
func (t *Tap) Channels() []Channel {
	return t.channels
}

// Len returns the number of samples per channel.
func (t *Tap) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.samples) == 0 {
		return 0
	}
	return len(t.samples[0])
}

// Samples returns a copy of channel i's timeline.
func (t *Tap) Samples(i int) []bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := make([]bool, len(t.samples[i]))
	copy(s, t.samples[i])
	return s
}

// Opts represents the options available for the terminal renderer.
type Opts struct {
	// W receives the rendering; nil means a colorable stdout.
	W       io.Writer
	Palette *ansi256.Palette

	_ struct{}
}

// Dev renders waveforms to a terminal with ANSI color blocks, one row per
// channel.
type Dev struct {
	w       io.Writer
	palette ansi256.Palette
	buf     bytes.Buffer
}

// New returns a Dev that draws to the console.
func New(opts *Opts) *Dev {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.W
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	return &Dev{w: w, palette: *p}
}

func (d *Dev) String() string {
	return "Scope"
}

// Halt implements conn.Resource.
//
// It resets the terminal attributes so the shell is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

var (
	high = color.NRGBA{0, 255, 0, 255}
	low  = color.NRGBA{40, 40, 40, 255}
)

// Draw renders every channel of the tap, one line each: the label, then
// one colored block per sample (bright for high, dark for low).
func (d *Dev) Draw(t *Tap) error {
	if len(t.Channels()) == 0 {
		return errors.New("scope: no channels to draw")
	}
	width := 0
	for _, ch := range t.Channels() {
		if len(ch.Label) > width {
			width = len(ch.Label)
		}
	}
	d.buf.Reset()
	for i, ch := range t.Channels() {
		fmt.Fprintf(&d.buf, "%-*s ", width, ch.Label)
		for _, v := range t.Samples(i) {
			c := low
			if v {
				c = high
			}
			_, _ = io.WriteString(&d.buf, d.palette.Block(c))
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	_, err := d.buf.WriteTo(d.w)
	return err
}

var _ mmio.Bus = &Tap{}
var _ fmt.Stringer = &Dev{}
