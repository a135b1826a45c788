// Copyright 2026 mhg42
// Licensed under the MIT license. See license text in the LICENSE file.

// Package stimulus produces testbench stimulus sequences for the adder, either
// generated from a sweep description or loaded from a YAML file.
//
package stimulus

import (
	"os"

	ls "github.com/mhg42/logicsim"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// A Sweep describes a generated stimulus sequence: operand A is stepped from
// zero to the top of the operand range by Stride while operand B cycles
// through a fixed pattern. The shorter of the two sequences repeats until it
// matches the longer one.
//
type Sweep struct {
	Width  int      // operand width in bits
	Stride uint64   // step applied to operand A
	B      []uint64 // pattern cycled through for operand B
}

// DefaultSweep returns the stock testbench sweep: 4-bit operands, A stepped
// by 3, B cycling a fixed pattern.
//
func DefaultSweep() Sweep {
	return Sweep{
		Width:  4,
		Stride: 3,
		B:      []uint64{1, 3, 7, 8, 12, 15, 2},
	}
}

// Generate expands the sweep into a stimulus sequence.
//
func (s Sweep) Generate() ([]ls.Vector, error) {
	if s.Width < 1 {
		return nil, errors.Wrapf(ls.ErrInvalidInput, "sweep width %d < 1", s.Width)
	}
	if s.Stride < 1 {
		return nil, errors.Wrap(ls.ErrInvalidInput, "sweep stride must be >= 1")
	}
	if len(s.B) == 0 {
		return nil, errors.Wrap(ls.ErrInvalidInput, "empty B pattern")
	}

	var as []uint64
	for a := uint64(0); a < uint64(1)<<uint(s.Width); a += s.Stride {
		as = append(as, a)
	}
	n := len(as)
	if len(s.B) > n {
		n = len(s.B)
	}

	vectors := make([]ls.Vector, n)
	for i := range vectors {
		va, err := ls.VectorFromUint(as[i%len(as)], s.Width)
		if err != nil {
			return nil, errors.Wrapf(err, "cycle %d operand a", i)
		}
		vb, err := ls.VectorFromUint(s.B[i%len(s.B)], s.Width)
		if err != nil {
			return nil, errors.Wrapf(err, "cycle %d operand b", i)
		}
		vectors[i] = ls.Vector{A: va, B: vb}
	}
	return vectors, nil
}

// stimulus file layout
type file struct {
	Width   int     `yaml:"width"`
	Vectors []entry `yaml:"vectors"`
}

type entry struct {
	A uint64 `yaml:"a"`
	B uint64 `yaml:"b"`
}

// Load reads a stimulus sequence from a YAML file. Operand values that do not
// fit the declared width are rejected. An empty vector list is valid and
// yields an empty sequence.
//
func Load(path string) ([]ls.Vector, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read stimulus file")
	}
	var f file
	if err := yaml.Unmarshal(buf, &f); err != nil {
		return nil, errors.Wrap(err, "parse stimulus file")
	}
	if f.Width < 1 {
		return nil, errors.Wrapf(ls.ErrInvalidInput, "stimulus width %d < 1", f.Width)
	}
	vectors := make([]ls.Vector, len(f.Vectors))
	for i, e := range f.Vectors {
		va, err := ls.VectorFromUint(e.A, f.Width)
		if err != nil {
			return nil, errors.Wrapf(err, "vector %d operand a", i)
		}
		vb, err := ls.VectorFromUint(e.B, f.Width)
		if err != nil {
			return nil, errors.Wrapf(err, "vector %d operand b", i)
		}
		vectors[i] = ls.Vector{A: va, B: vb}
	}
	return vectors, nil
}

// Save writes a stimulus sequence to a YAML file.
//
func Save(path string, width int, vectors []ls.Vector) error {
	f := file{Width: width, Vectors: make([]entry, len(vectors))}
	for i, v := range vectors {
		if len(v.A) != width || len(v.B) != width {
			return errors.Wrapf(ls.ErrInvalidInput, "vector %d is not %d bits wide", i, width)
		}
		f.Vectors[i] = entry{A: v.A.Uint(), B: v.B.Uint()}
	}
	buf, err := yaml.Marshal(&f)
	if err != nil {
		return errors.Wrap(err, "encode stimulus file")
	}
	return errors.Wrap(os.WriteFile(path, buf, 0o644), "write stimulus file")
}
