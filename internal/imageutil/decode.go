// Copyright 2026 The mantaforge Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package imageutil decodes the source images the texture pipeline
// reads. golang.org/x/image/bmp is registered alongside the stdlib
// PNG/JPEG decoders, so .bmp sources decode through the same
// image.Decode dispatch.
package imageutil

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
)

// MaxDimension is the largest width or height the build tool accepts.
const MaxDimension = 65535

// Decoded is a loaded source image in top-left-origin, row-major,
// tightly-packed layout: len(Pixels) == Width*Height*Channels.
type Decoded struct {
	Width, Height int
	Channels      int
	Pixels        []byte
}

// Load decodes the image at path and validates its geometry: width
// and height must not exceed MaxDimension, and the channel count
// must be in {1,2,3,4}.
func Load(path string) (*Decoded, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageutil: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("imageutil: decode %s: %w", path, err)
	}
	d := fromStdImage(img)
	if d.Width < 1 || d.Height < 1 || d.Width > MaxDimension || d.Height > MaxDimension {
		return nil, fmt.Errorf("imageutil: %s is %dx%d, want dimensions in [1,%d]", path, d.Width, d.Height, MaxDimension)
	}
	if d.Channels < 1 || d.Channels > 4 {
		return nil, fmt.Errorf("imageutil: %s has %d channels, want 1-4", path, d.Channels)
	}
	return d, nil
}

// fromStdImage converts a decoded image.Image into tightly-packed
// RGBA bytes. Every decoder in this package (PNG/JPEG/BMP) yields
// image.Image values the stdlib can losslessly re-sample as RGBA, so
// a single conversion path covers all three.
func fromStdImage(img image.Image) *Decoded {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pixels := make([]byte, w*h*4)
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			pixels[i+0] = byte(r >> 8)
			pixels[i+1] = byte(g >> 8)
			pixels[i+2] = byte(bl >> 8)
			pixels[i+3] = byte(a >> 8)
			i += 4
		}
	}
	return &Decoded{Width: w, Height: h, Channels: 4, Pixels: pixels}
}
