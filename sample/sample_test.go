// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package sample

import (
	"bytes"
	"image"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

var identity = Quantizer{Step: 1, Max: 255}

func TestQuantize(t *testing.T) {
	var vectors = []struct {
		input, output uint8
	}{
		{0, 0}, {9, 0}, {10, 20}, {29, 20}, {30, 40},
		{100, 100}, {229, 220}, {235, 240}, {250, 240}, {255, 240},
	}
	for _, v := range vectors {
		assert.Equal(t, v.output, DefaultQuantizer.Quantize(v.input), "Quantize(%d)", v.input)
	}

	assert.Equal(t, uint8(77), identity.Quantize(77))
	assert.Equal(t, uint8(50), Quantizer{Max: 50}.Quantize(200))
}

func TestGradientRow(t *testing.T) {
	var buf bytes.Buffer
	require.Nil(t, Encode(&buf, Gradient()))

	raw := buf.Bytes()
	seq, err := ReadRow(bytes.NewReader(raw), DefaultRow, identity)
	require.Nil(t, err)
	require.Len(t, seq, Width)
	for x, v := range seq {
		assert.Equal(t, uint8(x+DefaultRow), v)
	}

	seq, err = ReadRow(bytes.NewReader(raw), DefaultRow, DefaultQuantizer)
	require.Nil(t, err)
	assert.Equal(t, uint8(60), seq[0])    // 64 rounds down
	assert.Equal(t, uint8(200), seq[127]) // 191 rounds up
	for _, v := range seq {
		assert.Zero(t, v%20)
		assert.True(t, v <= 240)
	}
}

func TestReadRowErrors(t *testing.T) {
	var buf bytes.Buffer
	require.Nil(t, Encode(&buf, Gradient()))
	_, err := ReadRow(bytes.NewReader(buf.Bytes()), Height, identity)
	assert.Equal(t, ErrRow, err)
	_, err = ReadRow(bytes.NewReader(buf.Bytes()), -1, identity)
	assert.Equal(t, ErrRow, err)

	buf.Reset()
	small := image.NewPaletted(image.Rect(0, 0, 16, 16), Gradient().Palette)
	require.Nil(t, Encode(&buf, small))
	_, err = ReadRow(&buf, 0, identity)
	assert.Equal(t, ErrSize, err)

	buf.Reset()
	rgb := image.NewRGBA(image.Rect(0, 0, Width, Height))
	for i := range rgb.Pix {
		rgb.Pix[i] = 0xff
	}
	require.Nil(t, bmp.Encode(&buf, rgb))
	_, err = ReadRow(&buf, 0, identity)
	assert.Equal(t, ErrFormat, err)

	_, err = ReadRow(bytes.NewReader([]byte("not a bitmap")), 0, identity)
	assert.NotNil(t, err)
}

func TestQuantizeImage(t *testing.T) {
	src := Gradient()
	dst := QuantizeImage(src, DefaultQuantizer)
	assert.Equal(t, src.Bounds(), dst.Bounds())
	assert.Equal(t, src.Palette, dst.Palette)
	for y := 0; y < Height; y += 7 {
		for x := 0; x < Width; x += 5 {
			assert.Equal(t, DefaultQuantizer.Quantize(src.ColorIndexAt(x, y)), dst.ColorIndexAt(x, y))
		}
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image.bmp")
	require.Nil(t, WriteFile(path, Gradient()))

	m, err := ReadFile(path)
	require.Nil(t, err)
	seq, err := Row(m, 0, identity)
	require.Nil(t, err)
	assert.Equal(t, uint8(0), seq[0])
	assert.Equal(t, uint8(127), seq[127])

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.bmp"))
	assert.NotNil(t, err)
}
