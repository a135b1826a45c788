// Copyright 2026 mhg42
// Licensed under the MIT license. See license text in the LICENSE file.

// Package simtest provides utility functions for testing adder
// implementations against each other.
//
package simtest

import (
	"testing"

	ls "github.com/mhg42/logicsim"
)

// An AdderFn adds two equally sized operand vectors.
//
type AdderFn func(a, b ls.BitVector) (ls.AdderResult, error)

// CompareAdders drives ref and impl with every operand pair of the given
// width and fails the test on the first divergence. The domain is 2^(2*width)
// pairs, so keep width small.
//
func CompareAdders(t *testing.T, width int, ref, impl AdderFn) {
	t.Helper()

	max := uint64(1) << uint(width)
	for a := uint64(0); a < max; a++ {
		for b := uint64(0); b < max; b++ {
			va, err := ls.VectorFromUint(a, width)
			if err != nil {
				t.Fatal(err)
			}
			vb, err := ls.VectorFromUint(b, width)
			if err != nil {
				t.Fatal(err)
			}
			r1, err := ref(va, vb)
			if err != nil {
				t.Fatalf("ref(%d, %d): %v", a, b, err)
			}
			r2, err := impl(va, vb)
			if err != nil {
				t.Fatalf("impl(%d, %d): %v", a, b, err)
			}
			if r1.Sum.Uint() != r2.Sum.Uint() || r1.Cout != r2.Cout {
				t.Fatalf("%d + %d: ref sum=%s cout=%v, impl sum=%s cout=%v",
					a, b, r1.Sum, r1.Cout, r2.Sum, r2.Cout)
			}
		}
	}
}
