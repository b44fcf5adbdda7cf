// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ratio

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/dsnet/codebook/internal/testutil"
)

// TestCodecs tests that the output of each registered encoder is a valid input
// for the decoder registered under the same name.
func TestCodecs(t *testing.T) {
	var cyclic []byte
	for i := 0; i < 4096; i++ {
		cyclic = append(cyclic, byte(i%64))
	}
	inputs := map[string][]byte{
		"skewed": testutil.NewRand(0).Sequence(4096, 16),
		"cyclic": cyclic,
	}

	for name, dd := range inputs {
		dd := dd
		t.Run(fmt.Sprintf("Input:%v", name), func(t *testing.T) {
			for _, codec := range Names() {
				codec := codec
				t.Run(fmt.Sprintf("Codec:%v", codec), func(t *testing.T) {
					testRoundTrip(t, codec, dd)
				})
			}
		})
	}
}

func testRoundTrip(t *testing.T, codec string, dd []byte) {
	dec, ok := Decoders[codec]
	if !ok {
		t.Skip("no decoder available")
	}

	be := new(bytes.Buffer)
	zw := Encoders[codec](be)
	if _, err := io.Copy(zw, bytes.NewReader(dd)); err != nil {
		t.Fatalf("unexpected Write error: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("unexpected Close error: %v", err)
	}

	bd := new(bytes.Buffer)
	zr := dec(bytes.NewReader(be.Bytes()))
	if _, err := io.Copy(bd, zr); err != nil {
		t.Fatalf("unexpected Read error: %v", err)
	}
	if err := zr.Close(); err != nil {
		t.Fatalf("unexpected Close error: %v", err)
	}
	if !bytes.Equal(bd.Bytes(), dd) {
		t.Error("data mismatch")
	}
}

func TestMeasure(t *testing.T) {
	seq := testutil.NewRand(2).Sequence(4096, 16)
	names := append(Names(), "bogus")
	results := Measure(seq, names)
	if len(results) != len(names) {
		t.Fatalf("got %d results, want %d", len(results), len(names))
	}
	for i, r := range results {
		if r.Name != names[i] {
			t.Errorf("result %d: got name %q, want %q", i, r.Name, names[i])
		}
		if r.Name == "bogus" {
			if r.Err != errUnknownCodec {
				t.Errorf("bogus codec: got error %v, want %v", r.Err, errUnknownCodec)
			}
			continue
		}
		if r.Err != nil {
			t.Errorf("%s: unexpected error: %v", r.Name, r.Err)
			continue
		}
		if r.Bits <= 0 || r.Bits%8 != 0 || r.Bits >= 8*len(seq) {
			t.Errorf("%s: implausible size of %d bits", r.Name, r.Bits)
		}
	}
}

func TestMeasureSingleSymbol(t *testing.T) {
	// Huff0 refuses input made of a single repeated symbol; others compress
	// it fine. Neither case may stop the remaining measurements.
	seq := bytes.Repeat([]byte{7}, 128)
	for _, r := range Measure(seq, Names()) {
		if r.Err == nil && r.Bits <= 0 {
			t.Errorf("%s: no size and no error", r.Name)
		}
		if r.Name != "huff0" && r.Err != nil {
			t.Errorf("%s: unexpected error: %v", r.Name, r.Err)
		}
	}
}
