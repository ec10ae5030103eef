// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gpio

import (
	"fmt"
	"sync"

	"periph.io/x/stm32/mmio"
	"periph.io/x/stm32/rcc"
)

// Port is a claimed GPIO port. It hands out each of its sixteen lines at
// most once, which is what keeps two code paths from holding handles to
// the same physical line in different modes.
type Port struct {
	bus mmio.Bus
	id  PortID

	mu      sync.Mutex
	claimed uint16
}

type splitKey struct {
	bus mmio.Bus
	id  PortID
}

var (
	splitMu sync.Mutex
	splits  = map[splitKey]*Port{}
)

// Split claims a whole port on the given bus and enables its clock.
//
// A port can be split once; calling Split again for the same port on the
// same bus fails until the first Port is closed.
func Split(b mmio.Bus, id PortID) (*Port, error) {
	if id > PH {
		return nil, fmt.Errorf("gpio: no such port %d", id)
	}
	key := splitKey{bus: b, id: id}
	splitMu.Lock()
	defer splitMu.Unlock()
	if _, ok := splits[key]; ok {
		return nil, fmt.Errorf("gpio: port %s already split", id)
	}
	rcc.Enable(b, rcc.GPIO(uint8(id)))
	p := &Port{bus: b, id: id}
	splits[key] = p
	return p, nil
}

// Pin claims line n in its reset configuration, a floating input. Each
// line can be claimed exactly once per Split.
func (p *Port) Pin(n int) (Input, error) {
	if n < 0 || n > 15 {
		return Input{}, fmt.Errorf("gpio: %s has no line %d", p.id, n)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.claimed&(1<<uint(n)) != 0 {
		return Input{}, fmt.Errorf("gpio: %s already claimed", lineName(p.id, uint8(n)))
	}
	p.claimed |= 1 << uint(n)
	return Input{pin{port: p, n: uint8(n)}}, nil
}

// Name returns the port name, e.g. "PA".
func (p *Port) Name() string {
	return p.id.String()
}

// ID returns the port identifier.
func (p *Port) ID() PortID {
	return p.id
}

// Close releases the port so it can be split again. The caller is
// responsible for no longer using any handle derived from it.
func (p *Port) Close() error {
	splitMu.Lock()
	defer splitMu.Unlock()
	delete(splits, splitKey{bus: p.bus, id: p.id})
	p.mu.Lock()
	p.claimed = 0
	p.mu.Unlock()
	return nil
}

func (p *Port) String() string {
	return p.Name()
}
