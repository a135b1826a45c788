// Copyright 2026 mhg42
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidInput is the cause of all errors reported for malformed bit
// values or mismatched operand widths. Use errors.Cause to test for it.
//
var ErrInvalidInput = errors.New("invalid input")

// A Bit is a single two-valued signal level.
//
type Bit uint8

// Signal levels.
//
const (
	Lo Bit = 0
	Hi Bit = 1
)

// NewBit converts v into a Bit. Values outside {0,1} are rejected, never
// coerced.
//
func NewBit(v int) (Bit, error) {
	if v != 0 && v != 1 {
		return Lo, errors.Wrapf(ErrInvalidInput, "bit value %d not in {0,1}", v)
	}
	return Bit(v), nil
}

// BitOf returns Hi if v is true, Lo otherwise.
//
func BitOf(v bool) Bit {
	if v {
		return Hi
	}
	return Lo
}

// On reports whether b is Hi.
//
func (b Bit) On() bool { return b == Hi }

func (b Bit) valid() bool { return b <= Hi }

func (b Bit) String() string {
	if b.On() {
		return "1"
	}
	return "0"
}

// A BitVector is an ordered, fixed-width sequence of bits, index 0 being the
// least significant.
//
type BitVector []Bit

// NewBitVector builds a BitVector from individual bit values, index 0 first.
// Values outside {0,1} are rejected.
//
func NewBitVector(bits ...int) (BitVector, error) {
	bv := make(BitVector, len(bits))
	for i, v := range bits {
		b, err := NewBit(v)
		if err != nil {
			return nil, errors.Wrapf(err, "bit %d", i)
		}
		bv[i] = b
	}
	return bv, nil
}

// VectorFromUint converts v into a BitVector of the given width. Values that
// do not fit in width bits are an error, not silently truncated.
//
func VectorFromUint(v uint64, width int) (BitVector, error) {
	if width < 1 {
		return nil, errors.Wrapf(ErrInvalidInput, "vector width %d < 1", width)
	}
	if width < 64 && v>>uint(width) != 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "value %d does not fit in %d bits", v, width)
	}
	bv := make(BitVector, width)
	for i := range bv {
		bv[i] = Bit(v >> uint(i) & 1)
	}
	return bv, nil
}

// Uint returns the unsigned integer value of the vector.
//
func (bv BitVector) Uint() uint64 {
	var v uint64
	for i, b := range bv {
		if b.On() {
			v |= 1 << uint(i)
		}
	}
	return v
}

// String renders the vector most significant bit first.
//
func (bv BitVector) String() string {
	var sb strings.Builder
	for i := len(bv) - 1; i >= 0; i-- {
		sb.WriteString(bv[i].String())
	}
	return sb.String()
}

func (bv BitVector) validate() error {
	for i, b := range bv {
		if !b.valid() {
			return errors.Wrapf(ErrInvalidInput, "bit %d holds %d", i, uint8(b))
		}
	}
	return nil
}
