package logicsim_test

import (
	"testing"

	ls "github.com/mhg42/logicsim"
	"github.com/pkg/errors"
)

func Test_full_add(t *testing.T) {
	for n := 0; n < 8; n++ {
		a, b, cin := ls.Bit(n>>2&1), ls.Bit(n>>1&1), ls.Bit(n&1)
		total := uint64(a) + uint64(b) + uint64(cin)
		sum, cout := ls.FullAdd(a, b, cin)
		if uint64(sum) != total&1 {
			t.Errorf("FullAdd(%v, %v, %v) sum = %v, want %d", a, b, cin, sum, total&1)
		}
		if uint64(cout) != total>>1 {
			t.Errorf("FullAdd(%v, %v, %v) cout = %v, want %d", a, b, cin, cout, total>>1)
		}
	}
}

func Test_half_add(t *testing.T) {
	for n := 0; n < 4; n++ {
		a, b := ls.Bit(n>>1&1), ls.Bit(n&1)
		sum, carry := ls.HalfAdd(a, b)
		total := uint64(a) + uint64(b)
		if uint64(sum) != total&1 || uint64(carry) != total>>1 {
			t.Errorf("HalfAdd(%v, %v) = %v, %v", a, b, sum, carry)
		}
	}
}

// exhaustive check over the whole 4-bit domain: Cout*16 + Sum == a + b.
func Test_add_exhaustive(t *testing.T) {
	for a := uint64(0); a < 16; a++ {
		for b := uint64(0); b < 16; b++ {
			va, err := ls.VectorFromUint(a, 4)
			if err != nil {
				t.Fatal(err)
			}
			vb, err := ls.VectorFromUint(b, 4)
			if err != nil {
				t.Fatal(err)
			}
			r, err := ls.Add(va, vb)
			if err != nil {
				t.Fatal(err)
			}
			got := uint64(r.Cout)<<4 | r.Sum.Uint()
			if got != a+b {
				t.Errorf("%d + %d = %d (sum=%s cout=%v)", a, b, got, r.Sum, r.Cout)
			}
		}
	}
}

func Test_add_carry_propagation(t *testing.T) {
	td := []struct {
		a, b, sum uint64
		cout      ls.Bit
	}{
		{7, 1, 8, ls.Lo},   // carry ripples across three bit boundaries
		{15, 1, 0, ls.Hi},  // carry ripples out of the top bit
		{0, 0, 0, ls.Lo},   // low boundary
		{15, 15, 14, ls.Hi}, // high boundary, total 30
	}
	for _, d := range td {
		va, _ := ls.VectorFromUint(d.a, 4)
		vb, _ := ls.VectorFromUint(d.b, 4)
		r, err := ls.Add(va, vb)
		if err != nil {
			t.Fatal(err)
		}
		if r.Sum.Uint() != d.sum || r.Cout != d.cout {
			t.Errorf("%d + %d: sum=%d cout=%v, want sum=%d cout=%v", d.a, d.b, r.Sum.Uint(), r.Cout, d.sum, d.cout)
		}
	}
}

func Test_add_deterministic(t *testing.T) {
	va, _ := ls.VectorFromUint(11, 4)
	vb, _ := ls.VectorFromUint(6, 4)
	r1, err := ls.Add(va, vb)
	if err != nil {
		t.Fatal(err)
	}
	r2, err := ls.Add(va, vb)
	if err != nil {
		t.Fatal(err)
	}
	if r1.Sum.Uint() != r2.Sum.Uint() || r1.Cout != r2.Cout {
		t.Errorf("same operands, different results: %v vs %v", r1, r2)
	}
}

func Test_add_invalid(t *testing.T) {
	va, _ := ls.VectorFromUint(3, 4)
	vb, _ := ls.VectorFromUint(3, 5)

	if _, err := ls.Add(va, vb); errors.Cause(err) != ls.ErrInvalidInput {
		t.Errorf("width mismatch: got %v, want ErrInvalidInput", err)
	}
	if _, err := ls.Add(nil, nil); errors.Cause(err) != ls.ErrInvalidInput {
		t.Errorf("empty operands: got %v, want ErrInvalidInput", err)
	}
	if _, err := ls.Add(ls.BitVector{2}, ls.BitVector{0}); errors.Cause(err) != ls.ErrInvalidInput {
		t.Errorf("out of range bit: got %v, want ErrInvalidInput", err)
	}
}

func Test_add_wider(t *testing.T) {
	// the ripple chain is width-agnostic
	for _, w := range []int{1, 2, 8} {
		max := uint64(1)<<uint(w) - 1
		va, err := ls.VectorFromUint(max, w)
		if err != nil {
			t.Fatal(err)
		}
		vb, err := ls.VectorFromUint(1, w)
		if err != nil {
			t.Fatal(err)
		}
		r, err := ls.Add(va, vb)
		if err != nil {
			t.Fatal(err)
		}
		if r.Sum.Uint() != 0 || r.Cout != ls.Hi {
			t.Errorf("width %d: %d + 1 = %d cout=%v", w, max, r.Sum.Uint(), r.Cout)
		}
	}
}
