// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package sample acquires source sequences from 8-bit BMP images.
//
// A sequence is one row of palette indices taken from a Width x Height image
// and quantized to a coarse set of levels, which keeps the alphabet small.
package sample

import (
	"image"
	"image/color"
	"io"
	"math"
	"os"

	"golang.org/x/image/bmp"
)

const (
	Width  = 128 // Required image width, and thus the sequence length
	Height = 128 // Required image height
	Depth  = 8   // Required bits per pixel

	DefaultRow = Height / 2
)

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "sample: " + string(e) }

var (
	ErrFormat = Error("image is not an 8-bit paletted BMP")
	ErrSize   = Error("image has wrong dimensions")
	ErrRow    = Error("row out of range")
)

// Quantizer rounds samples to the nearest multiple of Step, capped at Max.
type Quantizer struct {
	Step uint8
	Max  uint8
}

// DefaultQuantizer maps samples onto 13 levels: 0, 20, 40, ..., 240.
var DefaultQuantizer = Quantizer{Step: 20, Max: 240}

// Quantize rounds v half away from zero. A zero Step only applies the cap.
func (q Quantizer) Quantize(v uint8) uint8 {
	n := int(v)
	if q.Step > 0 {
		n = int(math.Round(float64(v)/float64(q.Step))) * int(q.Step)
	}
	if n > int(q.Max) {
		n = int(q.Max)
	}
	return uint8(n)
}

// Gradient returns a Width x Height image over a 256 level gray palette,
// where the pixel at (x, y) has palette index uint8(x+y).
func Gradient() *image.Paletted {
	pal := make(color.Palette, 256)
	for i := range pal {
		pal[i] = color.Gray{Y: uint8(i)}
	}
	m := image.NewPaletted(image.Rect(0, 0, Width, Height), pal)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			m.SetColorIndex(x, y, uint8(x+y))
		}
	}
	return m
}

// QuantizeImage returns a copy of src with every palette index quantized.
// The palette itself is preserved.
func QuantizeImage(src *image.Paletted, q Quantizer) *image.Paletted {
	b := src.Bounds()
	dst := image.NewPaletted(b, append(color.Palette(nil), src.Palette...))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.SetColorIndex(x, y, q.Quantize(src.ColorIndexAt(x, y)))
		}
	}
	return dst
}

// Decode reads a BMP and checks that it is an 8-bit paletted image of the
// required size.
func Decode(r io.Reader) (*image.Paletted, error) {
	m, err := bmp.Decode(r)
	if err != nil {
		return nil, err
	}
	pm, ok := m.(*image.Paletted)
	if !ok {
		return nil, ErrFormat
	}
	if b := pm.Bounds(); b.Dx() != Width || b.Dy() != Height {
		return nil, ErrSize
	}
	return pm, nil
}

// Row returns the quantized palette indices of a single row of m.
func Row(m *image.Paletted, row int, q Quantizer) ([]byte, error) {
	b := m.Bounds()
	if row < 0 || row >= b.Dy() {
		return nil, ErrRow
	}
	seq := make([]byte, 0, b.Dx())
	for x := b.Min.X; x < b.Max.X; x++ {
		seq = append(seq, q.Quantize(m.ColorIndexAt(x, b.Min.Y+row)))
	}
	return seq, nil
}

// ReadRow decodes a BMP from r and returns one quantized row of it.
func ReadRow(r io.Reader, row int, q Quantizer) ([]byte, error) {
	m, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return Row(m, row, q)
}

// Encode writes m to w as a BMP.
func Encode(w io.Writer, m *image.Paletted) error {
	return bmp.Encode(w, m)
}

// ReadFile decodes the BMP file at path.
func ReadFile(path string) (*image.Paletted, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// WriteFile writes m as a BMP file at path.
func WriteFile(path string, m *image.Paletted) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
