// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package stm32 is a container for STM32F4 register-level peripherals.
//
// The gpio package is the interesting part: it models the pin mode state
// machine with one Go type per electrical configuration, so that driving
// an analog pin or sampling a write-only line is rejected by the compiler
// rather than at run time.
package stm32
