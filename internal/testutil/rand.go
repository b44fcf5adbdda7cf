// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package testutil is a collection of testing helper methods.
package testutil

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
)

// Rand implements a deterministic pseudo-random number generator.
// This differs from the math.Rand in that the exact output will be consistent
// across different versions of Go.
type Rand struct {
	cipher.Block
	blk [aes.BlockSize]byte
}

func NewRand(seed int) *Rand {
	var key [aes.BlockSize]byte
	binary.LittleEndian.PutUint64(key[:], uint64(seed))
	r, _ := aes.NewCipher(key[:])
	return &Rand{Block: r}
}

func (r *Rand) Int() (x int) {
	r.Encrypt(r.blk[:], r.blk[:])
	x |= int(r.blk[0]) << 0
	x |= int(r.blk[1]) << 8
	x |= int(r.blk[2]) << 16
	x |= int(r.blk[3]) << 24
	x |= int(r.blk[4]) << 32
	x |= int(r.blk[5]) << 40
	x |= int(r.blk[6]) << 48
	x |= int(r.blk[7]&0x3f) << 56
	return x
}

func (r *Rand) Intn(n int) int {
	return r.Int() % n
}

// Sequence returns n samples drawn from the first numSyms byte values.
// Lower values are drawn more often so that the distribution is skewed.
func (r *Rand) Sequence(n, numSyms int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(r.Intn(r.Intn(numSyms) + 1))
	}
	return b
}

// Weights returns n weights in the range [1, max].
func (r *Rand) Weights(n int, max uint32) []uint32 {
	ws := make([]uint32, n)
	for i := range ws {
		ws[i] = uint32(r.Intn(int(max))) + 1
	}
	return ws
}
