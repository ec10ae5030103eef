// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package scope

import (
	"errors"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	stepW   = 12.0 // horizontal pixels per sample
	rowH    = 40.0 // vertical pixels per channel
	swing   = 20.0 // high to low distance
	labelW  = 80.0
	padding = 8.0
)

// WritePNG renders the tap as a timing diagram and writes it as a PNG.
//
// Each channel gets one row drawn as a step waveform, with a vertical
// edge wherever consecutive samples differ.
func WritePNG(w io.Writer, t *Tap) error {
	channels := t.Channels()
	if len(channels) == 0 {
		return errors.New("scope: no channels to draw")
	}
	n := t.Len()
	width := int(labelW + float64(n)*stepW + 2*padding)
	height := int(float64(len(channels))*rowH + 2*padding)
	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return err
	}
	dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: 12}))

	dc.SetLineWidth(2)
	for i, ch := range channels {
		base := padding + float64(i)*rowH + rowH/2
		yFor := func(v bool) float64 {
			if v {
				return base - swing/2
			}
			return base + swing/2
		}
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(ch.Label, padding, base, 0, 0.4)

		samples := t.Samples(i)
		dc.SetRGB(0, 0.5, 0)
		x := labelW
		for j, v := range samples {
			y := yFor(v)
			if j > 0 && samples[j-1] != v {
				dc.DrawLine(x, yFor(samples[j-1]), x, y)
			}
			dc.DrawLine(x, y, x+stepW, y)
			x += stepW
		}
		dc.Stroke()
	}
	return dc.EncodePNG(w)
}
