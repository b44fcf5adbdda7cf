// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Report tool to compare static codebooks over a single source sequence.
// The sequence is one quantized row of an 8-bit BMP, or the leading bytes of
// an arbitrary file.
//
// Example usage:
//	$ go build -o report .
//	$ ./report -gen image.bmp -quant quant.bmp -tree
//	$ ./report -in image.bmp -row 10 -step 16
//	$ ./report -raw /bin/ls -n 4Ki -codecs huff0,xz
package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"io/ioutil"
	"math"
	"os"
	"regexp"
	"strings"

	"github.com/dsnet/codebook"
	"github.com/dsnet/codebook/internal/tool/ratio"
	"github.com/dsnet/codebook/sample"
	strconv "github.com/dsnet/golib/unitconv"
)

type config struct {
	gen, quant string // Output images
	in, raw    string // Input sources
	n          int    // Number of raw bytes
	row        int
	quantizer  sample.Quantizer
	tree       bool
	codecs     []string
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "report: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	c, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	seq, err := loadSource(c)
	if err != nil {
		return err
	}
	r, err := codebook.Analyze(seq)
	if err != nil {
		return err
	}
	printReport(stdout, r, c.tree)
	if len(c.codecs) > 0 {
		printRatios(stdout, ratio.Measure(seq, c.codecs), len(seq))
	}
	return nil
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f0 := fs.String("gen", "", "Write the gradient test image to this path")
	f1 := fs.String("quant", "", "Write the quantized input image to this path")
	f2 := fs.String("in", "", "Read the source row from this 8-bit BMP")
	f3 := fs.String("raw", "", "Read the source from the leading bytes of this file")
	f4 := fs.String("n", fmt.Sprint(sample.Width), "Number of bytes to take with -raw")
	f5 := fs.Int("row", sample.DefaultRow, "Image row to sample")
	f6 := fs.Uint("step", uint(sample.DefaultQuantizer.Step), "Quantization step; 1 disables rounding")
	f7 := fs.Uint("max", uint(sample.DefaultQuantizer.Max), "Largest quantized value")
	f8 := fs.Bool("tree", false, "Print the Shannon and Huffman trees")
	f9 := fs.String("codecs", strings.Join(ratio.Names(), ","), "List of reference codecs")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	c := &config{gen: *f0, quant: *f1, in: *f2, raw: *f3, row: *f5, tree: *f8}
	if c.in != "" && c.raw != "" {
		return nil, fmt.Errorf("-in and -raw are mutually exclusive")
	}
	n, err := strconv.ParsePrefix(*f4, strconv.AutoParse)
	if err != nil || n < 1 || n != math.Trunc(n) {
		return nil, fmt.Errorf("invalid byte count: %q", *f4)
	}
	c.n = int(n)
	if *f6 > math.MaxUint8 || *f7 > math.MaxUint8 {
		return nil, fmt.Errorf("quantizer values must not exceed %d", math.MaxUint8)
	}
	c.quantizer = sample.Quantizer{Step: uint8(*f6), Max: uint8(*f7)}
	for _, s := range regexp.MustCompile("[,:]").Split(*f9, -1) {
		if s != "" {
			c.codecs = append(c.codecs, s)
		}
	}
	return c, nil
}

func loadSource(c *config) ([]byte, error) {
	if c.raw != "" {
		b, err := ioutil.ReadFile(c.raw)
		if err != nil {
			return nil, err
		}
		if len(b) > c.n {
			b = b[:c.n]
		}
		return b, nil
	}

	var m *image.Paletted
	if c.gen != "" {
		if err := sample.WriteFile(c.gen, sample.Gradient()); err != nil {
			return nil, err
		}
	}
	switch {
	case c.in != "":
		var err error
		if m, err = sample.ReadFile(c.in); err != nil {
			return nil, err
		}
	case c.gen != "":
		var err error
		if m, err = sample.ReadFile(c.gen); err != nil {
			return nil, err
		}
	default:
		m = sample.Gradient()
	}
	if c.quant != "" {
		if err := sample.WriteFile(c.quant, sample.QuantizeImage(m, c.quantizer)); err != nil {
			return nil, err
		}
	}
	return sample.Row(m, c.row, c.quantizer)
}

func printReport(w io.Writer, r *codebook.Report, tree bool) {
	fmt.Fprintf(w, "Source row: %v\n\n", r.Source)
	fmt.Fprintf(w, "Source alphabet: %v\n", r.Alphabet)
	fmt.Fprintf(w, "Alphabet length: %d\n", len(r.Alphabet))
	fmt.Fprintf(w, "Entropy: %.4f\n\n", r.Entropy)

	fmt.Fprintln(w, "Binary codes:")
	for i, code := range r.Codings[codebook.MethodFixed].Codebook {
		fmt.Fprintf(w, "    %s -- %v\n", code, r.Alphabet[i])
	}
	fmt.Fprintf(w, "Average minimal binary code length: %.4f\n\n", r.AverageMinBits)

	for _, m := range []codebook.Method{codebook.MethodShannon, codebook.MethodHuffman} {
		c := r.Codings[m]
		if tree {
			fmt.Fprintf(w, "%v tree:\n%v", m, c.Tree)
			fmt.Fprintf(w, "%v tree end\n\n", m)
		}
		fmt.Fprintf(w, "Summary %v dictionary\n", m)
		for i, code := range c.Codebook {
			fmt.Fprintf(w, "  %d == %s\n", r.Alphabet[i].Sym, code)
		}
		fmt.Fprintln(w)
	}

	for _, c := range r.Codings {
		fmt.Fprintf(w, "%v encoded sequence: %s\n", c.Method, c.Encoding.Bits)
		fmt.Fprintf(w, "%v length: %d (%.4f bits/symbol)\n\n",
			c.Method, c.Encoding.Len, c.Codebook.AverageLength(r.Alphabet))
	}
}

func printRatios(w io.Writer, results []ratio.Result, n int) {
	// Allocate result table.
	cells := make([][]string, 1+len(results))
	cells[0] = []string{"codec", "bits", "bits/symbol"}
	for i, r := range results {
		row := []string{r.Name, "", ""}
		if r.Err != nil {
			row[1] = "error: " + r.Err.Error()
		} else {
			row[1] = fmt.Sprint(r.Bits)
			row[2] = fmt.Sprintf("%.4f", float64(r.Bits)/float64(n))
		}
		cells[1+i] = row
	}

	// Compute the maximum lengths.
	maxLens := make([]int, 3)
	for _, row := range cells {
		for i, s := range row {
			if maxLens[i] < len(s) {
				maxLens[i] = len(s)
			}
		}
	}

	// Print padded versions of all cells.
	sn := strings.Replace(strconv.FormatPrefix(float64(n), strconv.Base1024, 2), ".00", "", -1)
	fmt.Fprintf(w, "REFERENCE: %s input symbols\n", sn)
	for _, row := range cells {
		fmt.Fprint(w, "\t")
		for i, s := range row {
			switch i {
			case 0:
				row[i] = s + strings.Repeat(" ", maxLens[i]-len(s))
			default:
				row[i] = strings.Repeat(" ", 6+maxLens[i]-len(s)) + s
			}
			fmt.Fprint(w, row[i])
		}
		fmt.Fprintln(w)
	}
}
