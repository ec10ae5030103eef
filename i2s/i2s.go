// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package i2s claims GPIO lines for the I2S function of an SPI peripheral.
//
// This package only does the pin work: it checks that each offered line
// can be routed to the requested signal, enables the peripheral clock and
// commits the lines to their alternate function. Configuring the
// peripheral's own register block, clock rates and the audio protocol is a
// different subsystem.
//
// The four I2S signals map onto SPI pins: MOSI carries SD (serial data),
// NSS carries WS (word select), SCK carries CK (bit clock). The master
// clock output MCK is separate and optional.
package i2s

import (
	"fmt"

	"periph.io/x/stm32/gpio"
	"periph.io/x/stm32/mmio"
	"periph.io/x/stm32/rcc"
)

// Instance identifies an SPI peripheral used in I2S mode.
type Instance uint8

// The SPI peripherals with an I2S mode.
const (
	I2S2 Instance = iota
	I2S3
)

func (i Instance) String() string {
	switch i {
	case I2S2:
		return "I2S2"
	case I2S3:
		return "I2S3"
	default:
		return "I2S?"
	}
}

func (i Instance) clock() rcc.Peripheral {
	if i == I2S2 {
		return rcc.SPI2
	}
	return rcc.SPI3
}

// Signal is one of the four I2S pin roles.
type Signal uint8

// The I2S signals.
const (
	WS Signal = iota
	CK
	MCK
	SD
)

const signalName = "WSCKMCKSD"

var signalIndex = [...]uint8{0, 2, 4, 7, 9}

func (s Signal) String() string {
	if int(s) >= len(signalIndex)-1 {
		return "Signal(?)"
	}
	return signalName[signalIndex[s]:signalIndex[s+1]]
}

// route is one allowed (line, alternate function) pairing for a signal.
type route struct {
	port gpio.PortID
	n    uint8
	af   uint8
}

// The capability relation: which lines may serve which signal of which
// instance, and with what multiplexer setting. Condensed from the
// STM32F41x datasheet alternate function tables.
var routes = map[Instance]map[Signal][]route{
	I2S2: {
		WS:  {{gpio.PB, 9, 5}, {gpio.PB, 12, 5}},
		CK:  {{gpio.PB, 10, 5}, {gpio.PB, 13, 5}, {gpio.PD, 3, 5}},
		MCK: {{gpio.PC, 6, 5}},
		SD:  {{gpio.PB, 15, 5}, {gpio.PC, 3, 5}},
	},
	I2S3: {
		WS:  {{gpio.PA, 4, 6}, {gpio.PA, 15, 6}},
		CK:  {{gpio.PB, 3, 6}, {gpio.PC, 10, 6}},
		MCK: {{gpio.PC, 7, 6}},
		SD:  {{gpio.PB, 5, 6}, {gpio.PC, 12, 6}, {gpio.PD, 6, 5}},
	},
}

// lookup returns the multiplexer setting for the line, or an error if the
// line cannot serve the signal.
func lookup(inst Instance, s Signal, p gpio.Input) (uint8, error) {
	for _, r := range routes[inst][s] {
		if r.port == p.PortID() && int(r.n) == p.Number() {
			return r.af, nil
		}
	}
	return 0, fmt.Errorf("i2s: %s cannot serve %s of %s", p.Name(), s, inst)
}

// Dev is a set of lines committed to an I2S peripheral.
type Dev struct {
	inst Instance

	// The committed lines. MCK is nil when no master clock was claimed.
	WS  gpio.Alternate
	CK  gpio.Alternate
	SD  gpio.Alternate
	MCK *gpio.Alternate
}

// New validates the offered lines against the routing relation, enables
// the peripheral clock and commits each line to its alternate function.
// mck may be nil when the master clock output is not needed.
//
// The pin handles are consumed; on error nothing was reconfigured and the
// handles stay usable.
func New(b mmio.Bus, inst Instance, ws, ck, sd gpio.Input, mck *gpio.Input) (*Dev, error) {
	wsAF, err := lookup(inst, WS, ws)
	if err != nil {
		return nil, err
	}
	ckAF, err := lookup(inst, CK, ck)
	if err != nil {
		return nil, err
	}
	sdAF, err := lookup(inst, SD, sd)
	if err != nil {
		return nil, err
	}
	var mckAF uint8
	if mck != nil {
		if mckAF, err = lookup(inst, MCK, *mck); err != nil {
			return nil, err
		}
	}

	rcc.Enable(b, inst.clock())

	d := &Dev{
		inst: inst,
		WS:   ws.IntoAlternate(wsAF),
		CK:   ck.IntoAlternate(ckAF),
		SD:   sd.IntoAlternate(sdAF),
	}
	if mck != nil {
		a := mck.IntoAlternate(mckAF)
		d.MCK = &a
	}
	return d, nil
}

func (d *Dev) String() string {
	return d.inst.String()
}
