// Copyright 2026 mhg42
// Licensed under the MIT license. See license text in the LICENSE file.

package netlist

import (
	"strconv"

	ls "github.com/mhg42/logicsim"
)

// common pin names
const (
	pinA   = "a"
	pinB   = "b"
	pinIn  = "in"
	pinOut = "out"
)

// wires is a wrapper providing the Pinout() method for free to structs
// implementing Part.
type wires W

func (p wires) Pinout() W { return W(p) }

type input struct {
	wires
	fn func() ls.Bit
}

func (i *input) Build(pins map[string]int, _ *Circuit) ([]Updater, error) {
	pin := pins[pinOut]
	return []Updater{
		func(c *Circuit) { c.Set(pin, i.fn()) },
	}, nil
}

// Input creates a function based input.
//
// Output pin name: out
//
func Input(w W, fn func() ls.Bit) Part {
	w, err := w.check(pinOut)
	if err != nil {
		panic(err)
	}
	return &input{wires: wires(w), fn: fn}
}

type output struct {
	wires
	fn func(ls.Bit)
}

func (o *output) Build(pins map[string]int, _ *Circuit) ([]Updater, error) {
	pin := pins[pinIn]
	return []Updater{
		func(c *Circuit) { o.fn(c.Get(pin)) },
	}, nil
}

// Output creates an output or probe. The fn function is called with the
// wire state on every updater pass.
//
// Input pin name: in
//
func Output(w W, fn func(ls.Bit)) Part {
	w, err := w.check(pinIn)
	if err != nil {
		panic(err)
	}
	return &output{wires: wires(w), fn: fn}
}

type not struct {
	wires
}

func (n *not) Build(pins map[string]int, _ *Circuit) ([]Updater, error) {
	in, out := pins[pinIn], pins[pinOut]
	return []Updater{
		func(c *Circuit) { c.Set(out, ls.Not(c.Get(in))) },
	}, nil
}

// Not returns a NOT gate.
//
// Pin names: in, out
//
func Not(w W) Part {
	w, err := w.check(pinIn, pinOut)
	if err != nil {
		panic(err)
	}
	return &not{wires: wires(w)}
}

type gate struct {
	wires
	fn func(a, b ls.Bit) ls.Bit
}

func (g *gate) Build(pins map[string]int, _ *Circuit) ([]Updater, error) {
	a, b, out := pins[pinA], pins[pinB], pins[pinOut]
	return []Updater{
		func(c *Circuit) { c.Set(out, g.fn(c.Get(a), c.Get(b))) },
	}, nil
}

func newGate(w W, fn func(a, b ls.Bit) ls.Bit) Part {
	w, err := w.check(pinA, pinB, pinOut)
	if err != nil {
		panic(err)
	}
	return &gate{wires: wires(w), fn: fn}
}

// And returns a AND gate.
//
// Pin names: a, b, out
//
func And(w W) Part { return newGate(w, ls.And) }

// Or returns a OR gate.
//
// Pin names: a, b, out
//
func Or(w W) Part { return newGate(w, ls.Or) }

// Xor returns a XOR gate.
//
// Pin names: a, b, out
//
func Xor(w W) Part { return newGate(w, ls.Xor) }

// Nand returns a NAND gate.
//
// Pin names: a, b, out
//
func Nand(w W) Part { return newGate(w, ls.Nand) }

// Nor returns a NOR gate.
//
// Pin names: a, b, out
//
func Nor(w W) Part { return newGate(w, ls.Nor) }

// Xnor returns a XNOR gate.
//
// Pin names: a, b, out
//
func Xnor(w W) Part { return newGate(w, ls.Xnor) }

// FullAdder returns a one bit full adder composed from primitive gates.
//
// Pin names: a, b, cin, s, cout
//
func FullAdder(w W) Part {
	return fullAdder(w)
}

var fullAdder = Chip(
	[]string{"a", "b", "cin"},
	[]string{"s", "cout"},
	[]Part{
		Xor(W{"a": "a", "b": "b", "out": "p"}),
		Xor(W{"a": "p", "b": "cin", "out": "s"}),
		And(W{"a": "a", "b": "b", "out": "g"}),
		And(W{"a": "cin", "b": "p", "out": "t"}),
		Or(W{"a": "g", "b": "t", "out": "cout"}),
	})

// Adder returns an n bit ripple-carry adder chip: n chained full adders,
// stage i's carry in wired to stage i-1's carry out, stage 0 grounded.
//
// Pin names: a0..a<n-1>, b0..b<n-1>, s0..s<n-1>, cout
//
func Adder(n int) NewPartFn {
	ins := make([]string, 0, 2*n)
	outs := make([]string, 0, n+1)
	parts := make([]Part, 0, n)
	carry := False
	for i := 0; i < n; i++ {
		a, b, s := pinNum(pinA, i), pinNum(pinB, i), pinNum("s", i)
		ins = append(ins, a, b)
		outs = append(outs, s)
		w := W{"a": a, "b": b, "s": s}
		if i > 0 {
			w["cin"] = carry
		}
		carry = pinNum("c", i)
		if i == n-1 {
			carry = "cout"
		}
		w["cout"] = carry
		parts = append(parts, FullAdder(w))
	}
	outs = append(outs, "cout")
	return Chip(ins, outs, parts)
}

func pinNum(name string, i int) string {
	return name + strconv.Itoa(i)
}
