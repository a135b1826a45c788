// Copyright 2026 mhg42
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

// And returns a AND b.
//
//	Function: out = a && b
//
func And(a, b Bit) Bit { return BitOf(a.On() && b.On()) }

// Or returns a OR b.
//
//	Function: out = a || b
//
func Or(a, b Bit) Bit { return BitOf(a.On() || b.On()) }

// Not returns the complement of a.
//
//	Function: out = !a
//
func Not(a Bit) Bit { return BitOf(!a.On()) }

// Xor returns a XOR b.
//
//	Function: out = (a && !b) || (!a && b)
//
func Xor(a, b Bit) Bit { return BitOf(a.On() && !b.On() || !a.On() && b.On()) }

// Nand returns a NAND b.
//
//	Function: out = !(a && b)
//
func Nand(a, b Bit) Bit { return BitOf(!(a.On() && b.On())) }

// Nor returns a NOR b.
//
//	Function: out = !(a || b)
//
func Nor(a, b Bit) Bit { return BitOf(!(a.On() || b.On())) }

// Xnor returns a XNOR b.
//
//	Function: out = a && b || !a && !b
//
func Xnor(a, b Bit) Bit { return BitOf(a.On() && b.On() || !a.On() && !b.On()) }
