// Package netlist composes gate parts into combinational circuits.
//
// Parts are wired together by name: a part's pin map (W) connects its pins to
// named wires in the enclosing circuit or chip. Chip packages a set of parts
// into a reusable part. A compiled Circuit is evaluated by settling: updaters
// run in passes until no wire changes, so the carry chain of a ripple adder
// resolves regardless of part declaration order. A circuit that never settles
// holds a combinational loop and reports an error instead of spinning.
package netlist

import (
	ls "github.com/mhg42/logicsim"
	"github.com/pkg/errors"
)

// W is a set of wires, connecting a part's pins (the map key) to named wires
// in its container.
//
type W map[string]string

// Constant wire names. Pins left unconnected are wired to False.
//
var (
	True  = "true"
	False = "false"
	GND   = "false"
)

const (
	cstFalse = iota
	cstTrue
	cstCount
)

func cstPins() map[string]int {
	return map[string]int{False: cstFalse, True: cstTrue}
}

func (w W) copy() W {
	t := make(W, len(w))
	for k, v := range w {
		t[k] = v
	}
	return t
}

// check verifies that the set of wires matches the provided pin names. It
// returns a copy of w where unconnected pins are wired to False. Unknown pins
// are an error.
//
func (w W) check(pinNames ...string) (W, error) {
	w = w.copy()
	wires := make(W, len(w))
	for _, name := range pinNames {
		if outer, ok := w[name]; ok {
			wires[name] = outer
			delete(w, name)
		} else {
			wires[name] = False
		}
	}
	for name := range w {
		return nil, errors.Errorf("unknown pin %q", name)
	}
	return wires, nil
}

// An Updater recomputes a part's outputs from the current wire states.
//
type Updater func(c *Circuit)

// A Part represents the definition of a component in a circuit.
//
type Part interface {
	// Pinout returns the part's pin mapping.
	Pinout() W
	// Build creates a new instance of the part as an Updater slice.
	// The provided pins map the part's pin names to wire numbers in the
	// circuit.
	Build(pins map[string]int, c *Circuit) ([]Updater, error)
}

// A NewPartFn takes a pin map and returns a new Part.
//
type NewPartFn func(w W) Part

// a chip wraps several parts into a single package.
type chip struct {
	in    []string
	out   []string
	pmap  W
	parts []Part
}

func (c *chip) Pinout() W { return c.pmap }

func (c *chip) Build(pins map[string]int, cc *Circuit) ([]Updater, error) {
	var updaters []Updater
	for _, p := range c.parts {
		ppins := cstPins()
		for in, ex := range p.Pinout() {
			n, ok := pins[ex]
			if !ok {
				n = cc.allocWire()
				pins[ex] = n
			}
			ppins[in] = n
		}
		pup, err := p.Build(ppins, cc)
		if err != nil {
			return nil, err
		}
		updaters = append(updaters, pup...)
	}
	return updaters, nil
}

// Chip combines existing parts into a new part.
//
// An Xor gate could be created like this:
//
//	xor := netlist.Chip(
//		[]string{"a", "b"},
//		[]string{"out"},
//		[]netlist.Part{
//			netlist.Not(netlist.W{"in": "a", "out": "notA"}),
//			netlist.Not(netlist.W{"in": "b", "out": "notB"}),
//			netlist.And(netlist.W{"a": "a", "b": "notB", "out": "w1"}),
//			netlist.And(netlist.W{"a": "b", "b": "notA", "out": "w2"}),
//			netlist.Or(netlist.W{"a": "w1", "b": "w2", "out": "out"}),
//		})
//
// The returned function wires the new part into other chips or circuits:
//
//	xnor := netlist.Chip(
//		[]string{"a", "b"},
//		[]string{"out"},
//		[]netlist.Part{
//			xor(netlist.W{"a": "a", "b": "b", "out": "xorAB"}),
//			netlist.Not(netlist.W{"in": "xorAB", "out": "out"}),
//		})
//
func Chip(inputs []string, outputs []string, parts []Part) NewPartFn {
	pins := make([]string, len(inputs)+len(outputs))
	n := copy(pins, inputs)
	copy(pins[n:], outputs)
	return func(w W) Part {
		w, err := w.check(pins...)
		if err != nil {
			panic(err)
		}
		return &chip{in: inputs, out: outputs, pmap: w, parts: parts}
	}
}

// Circuit is a compiled combinational circuit.
//
type Circuit struct {
	state []ls.Bit
	ups   []Updater
	count int
	dirty bool
}

// New compiles the given parts into a circuit.
//
func New(parts []Part) (*Circuit, error) {
	if len(parts) == 0 {
		return nil, errors.New("empty part list")
	}
	// room for constant wires
	cc := &Circuit{count: cstCount}
	wrap := Chip(nil, nil, parts)(nil)
	ups, err := wrap.Build(cstPins(), cc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build circuit")
	}
	cc.ups = ups
	cc.state = make([]ls.Bit, cc.count)
	cc.state[cstTrue] = ls.Hi
	return cc, nil
}

// allocWire allocates a wire and returns its number.
//
func (c *Circuit) allocWire() int {
	cnt := c.count
	c.count++
	return cnt
}

// Get returns the state of wire n.
//
func (c *Circuit) Get(n int) ls.Bit {
	return c.state[n]
}

// Set sets the state of wire n.
//
func (c *Circuit) Set(n int, b ls.Bit) {
	if c.state[n] != b {
		c.state[n] = b
		c.dirty = true
	}
}

// Size returns the updater count in the circuit.
//
func (c *Circuit) Size() int { return len(c.ups) }

// Settle runs updater passes until the wire states reach a fixpoint.
// The pass count is bounded by the wire count; a circuit that has not
// settled by then contains a combinational loop.
//
func (c *Circuit) Settle() error {
	for pass := 0; pass <= c.count; pass++ {
		c.state[cstFalse] = ls.Lo
		c.state[cstTrue] = ls.Hi
		c.dirty = false
		for _, u := range c.ups {
			u(c)
		}
		if !c.dirty {
			return nil
		}
	}
	return errors.New("circuit did not settle: combinational loop")
}
