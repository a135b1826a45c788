// Copyright 2026 mhg42
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import "github.com/pkg/errors"

// An AdderResult holds the outputs of one ripple-carry addition: the sum
// vector and the final carry out.
//
type AdderResult struct {
	Sum  BitVector
	Cout Bit
}

// HalfAdd adds two bits.
//
//	Function: sum = lsb(a + b)
//	          carry = msb(a + b)
//
func HalfAdd(a, b Bit) (sum, carry Bit) {
	return Xor(a, b), And(a, b)
}

// FullAdd adds two bits and a carry in.
//
//	Function: sum = lsb(a + b + cin)
//	          cout = msb(a + b + cin)
//
func FullAdd(a, b, cin Bit) (sum, cout Bit) {
	p := Xor(a, b)
	return Xor(p, cin), Or(And(a, b), And(cin, p))
}

// Add runs a and b through an N-bit ripple-carry adder with carry in fixed to
// Lo. The carry propagates strictly from bit 0 upwards: each stage is a full
// adder whose carry in is the previous stage's carry out.
//
// Operands must be non-empty and of equal width.
//
func Add(a, b BitVector) (AdderResult, error) {
	if len(a) == 0 {
		return AdderResult{}, errors.Wrap(ErrInvalidInput, "empty operand")
	}
	if len(a) != len(b) {
		return AdderResult{}, errors.Wrapf(ErrInvalidInput, "operand widths differ: %d vs %d", len(a), len(b))
	}
	if err := a.validate(); err != nil {
		return AdderResult{}, errors.Wrap(err, "operand a")
	}
	if err := b.validate(); err != nil {
		return AdderResult{}, errors.Wrap(err, "operand b")
	}
	sum := make(BitVector, len(a))
	carry := Lo
	for i := range a {
		sum[i], carry = FullAdd(a[i], b[i], carry)
	}
	return AdderResult{Sum: sum, Cout: carry}, nil
}
