// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package codebook

// Method identifies one of the coding methods compared by Analyze.
type Method int

const (
	MethodShannon Method = iota
	MethodHuffman
	MethodFixed

	numMethods
)

func (m Method) String() string {
	switch m {
	case MethodShannon:
		return "Shannon"
	case MethodHuffman:
		return "Huffman"
	case MethodFixed:
		return "Simple"
	default:
		return "Unknown"
	}
}

// Coding is the outcome of one method over the source sequence.
type Coding struct {
	Method   Method
	Codebook Codebook
	Tree     *Tree // Nil for the fixed-length method
	Encoding Encoding
}

// Report collects the statistics and codings for a source sequence.
type Report struct {
	Source         []byte
	Alphabet       Alphabet
	Entropy        float64 // Bits per symbol
	AverageMinBits float64
	Codings        [numMethods]Coding // Indexed by Method
}

// Analyze runs every method over seq. The entropy is normalized by len(seq).
func Analyze(seq []byte) (*Report, error) {
	if len(seq) == 0 {
		return nil, ErrEmptySequence
	}

	r := &Report{Source: seq, Alphabet: MakeAlphabet(seq)}
	r.Entropy = Entropy(r.Alphabet, len(seq))
	avg, err := AverageMinBits(r.Alphabet)
	if err != nil {
		return nil, err
	}
	r.AverageMinBits = avg

	st, err := ShannonTree(r.Alphabet)
	if err != nil {
		return nil, err
	}
	ht, err := HuffmanTree(r.Alphabet)
	if err != nil {
		return nil, err
	}
	fc, err := Fixed(r.Alphabet)
	if err != nil {
		return nil, err
	}
	r.Codings[MethodShannon] = Coding{Method: MethodShannon, Codebook: st.Codebook(), Tree: st}
	r.Codings[MethodHuffman] = Coding{Method: MethodHuffman, Codebook: ht.Codebook(), Tree: ht}
	r.Codings[MethodFixed] = Coding{Method: MethodFixed, Codebook: fc}

	for i := range r.Codings {
		c := &r.Codings[i]
		if c.Encoding, err = Encode(seq, c.Codebook, r.Alphabet); err != nil {
			return nil, err
		}
	}
	return r, nil
}
