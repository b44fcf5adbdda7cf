// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package ratio measures how general purpose compressors fare on a source
// sequence, so that static codebook lengths can be put in perspective.
// Individual implementations are referred to as codecs.
package ratio

import (
	"bytes"
	"io"
	"sort"
)

type Encoder func(io.Writer) io.WriteCloser
type Decoder func(io.Reader) io.ReadCloser

var (
	Encoders map[string]Encoder
	Decoders map[string]Decoder
)

func RegisterEncoder(name string, enc Encoder) {
	if Encoders == nil {
		Encoders = make(map[string]Encoder)
	}
	Encoders[name] = enc
}

func RegisterDecoder(name string, dec Decoder) {
	if Decoders == nil {
		Decoders = make(map[string]Decoder)
	}
	Decoders[name] = dec
}

// Names returns the registered encoder names in sorted order.
func Names() []string {
	var s []string
	for k := range Encoders {
		s = append(s, k)
	}
	sort.Strings(s)
	return s
}

type Result struct {
	Name string
	Bits int   // Compressed size in bits, including any framing
	Err  error // Set if the codec could not process the input
}

// Measure compresses seq with each named codec. A codec that fails, or that
// is not registered, reports an error in its result rather than aborting
// the other measurements.
func Measure(seq []byte, names []string) []Result {
	results := make([]Result, len(names))
	for i, name := range names {
		results[i].Name = name
		enc, ok := Encoders[name]
		if !ok {
			results[i].Err = errUnknownCodec
			continue
		}
		n, err := compressedSize(seq, enc)
		results[i].Bits, results[i].Err = 8*n, err
	}
	return results
}

func compressedSize(input []byte, enc Encoder) (int, error) {
	buf := new(bytes.Buffer)
	wr := enc(buf)
	_, cpErr := io.Copy(wr, bytes.NewReader(input))
	if err := wr.Close(); err != nil {
		return 0, err
	}
	if cpErr != nil {
		return 0, cpErr
	}
	return buf.Len(), nil
}

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "ratio: " + string(e) }

var errUnknownCodec = Error("unknown codec")

// errReadCloser fails every read with err.
type errReadCloser struct{ err error }

func (r errReadCloser) Read([]byte) (int, error) { return 0, r.err }
func (r errReadCloser) Close() error             { return nil }
