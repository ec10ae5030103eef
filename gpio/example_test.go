// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gpio_test

import (
	"fmt"
	"log"

	conngpio "periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"periph.io/x/stm32/gpio"
	"periph.io/x/stm32/gpio/gpiotest"
)

func Example() {
	// On hardware the bus would be the memory map itself; here the
	// register simulator stands in so the example runs anywhere.
	chip := gpiotest.New()

	porta, err := gpio.Split(chip, gpio.PA)
	if err != nil {
		log.Fatal(err)
	}
	defer porta.Close()

	pa5, err := porta.Pin(5)
	if err != nil {
		log.Fatal(err)
	}

	// The reset state is a floating input; make it a push-pull output
	// driving low, then blink it. The Input handle is dead after the
	// conversion.
	led := pa5.IntoPushPull(gpio.Low)
	if err := led.SetHigh(); err != nil {
		log.Fatal(err)
	}
	on, _ := led.IsSetHigh()
	fmt.Printf("%s driven high: %t\n", led, on)

	if err := led.Toggle(); err != nil {
		log.Fatal(err)
	}
	on, _ = led.IsSetHigh()
	fmt.Printf("%s driven high: %t\n", led, on)

	// Output:
	// PA5 driven high: true
	// PA5 driven high: false
}

func Example_gpioreg() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	chip := gpiotest.New()
	portb, err := gpio.Split(chip, gpio.PB)
	if err != nil {
		log.Fatal(err)
	}
	defer portb.Close()

	pb2, err := portb.Pin(2)
	if err != nil {
		log.Fatal(err)
	}

	// A Dynamic handle bridges into the periph pin registry, so code
	// written against conn/v3 can drive the line by name.
	if err := gpio.Register(pb2.IntoDynamic()); err != nil {
		log.Fatal(err)
	}
	defer gpioreg.Unregister("PB2")

	p := gpioreg.ByName("PB2")
	if err := p.Out(conngpio.High); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s is %s\n", p, p.Read())

	// Output:
	// PB2 is High
}
