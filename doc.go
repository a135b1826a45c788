/*
Package logicsim models small combinational circuits as pure functions over
two-valued bits.

The package provides the primitive gates (AND, OR, NOT, XOR and friends), a
one bit full adder, an N-bit ripple-carry adder, and batch evaluation of a
stimulus sequence, one independent adder evaluation per cycle. There is no
clock and no state: every output is a pure function of the cycle's operands,
with carries propagating strictly from the least significant bit upwards
within a cycle.

Sub-packages compose gates into netlists (netlist), generate and load
testbench stimulus (stimulus) and render the resulting signal traces as a
waveform (wave).
*/
package logicsim
