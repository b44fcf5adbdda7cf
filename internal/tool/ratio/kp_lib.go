// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_kp_lib
// +build !no_kp_lib

package ratio

import (
	"bytes"
	"io"
	"io/ioutil"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/huff0"
)

func init() {
	RegisterEncoder("kp",
		func(w io.Writer) io.WriteCloser {
			zw, err := flate.NewWriter(w, flate.BestCompression)
			if err != nil {
				panic(err)
			}
			return zw
		})
	RegisterDecoder("kp",
		func(r io.Reader) io.ReadCloser {
			return flate.NewReader(r)
		})

	// Huff0 only works on whole blocks, so both directions buffer the
	// entire input. Its table header is part of the reported size.
	RegisterEncoder("huff0",
		func(w io.Writer) io.WriteCloser {
			return &huff0Writer{w: w}
		})
	RegisterDecoder("huff0",
		func(r io.Reader) io.ReadCloser {
			in, err := ioutil.ReadAll(r)
			if err != nil {
				return errReadCloser{err}
			}
			s, rem, err := huff0.ReadTable(in, nil)
			if err != nil {
				return errReadCloser{err}
			}
			out, err := s.Decompress1X(rem)
			if err != nil {
				return errReadCloser{err}
			}
			return ioutil.NopCloser(bytes.NewReader(out))
		})
}

type huff0Writer struct {
	w   io.Writer
	buf bytes.Buffer
}

func (hw *huff0Writer) Write(b []byte) (int, error) {
	return hw.buf.Write(b)
}

// Close compresses the buffered input as a single 1X stream. Inputs that
// huff0 rejects, such as those made of a single symbol, fail here.
func (hw *huff0Writer) Close() error {
	out, _, err := huff0.Compress1X(hw.buf.Bytes(), nil)
	if err != nil {
		return err
	}
	_, err = hw.w.Write(out)
	return err
}
