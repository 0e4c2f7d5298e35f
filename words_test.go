// Copyright (c) 2024-2026 The intx developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package intx

import (
	"math/big"
	mrand "math/rand"
	"reflect"
	"testing"
	"time"
)

// wordsToBig returns the value represented by the given word array as a
// standard library big integer for use as a test oracle.
func wordsToBig(x []uint64) *big.Int {
	v := new(big.Int)
	putBigWords(v, x)
	return v
}

// randWords fills the first sigLen words of x with random values from the
// provided rng and zeroes the rest.
func randWords(rng *mrand.Rand, x []uint64, sigLen int) {
	for i := range x {
		if i < sigLen {
			x[i] = rng.Uint64()
		} else {
			x[i] = 0
		}
	}
}

// bigPowB returns 2^(64*words) for verifying carry and borrow weights.
func bigPowB(words int) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(words)*64)
}

// TestAddWords ensures adding word arrays produces the expected sums and
// carries, including full carry rippling.
func TestAddWords(t *testing.T) {
	tests := []struct {
		name  string // test description
		x     []uint64
		y     []uint64
		wantS []uint64
		wantC uint64
	}{{
		name:  "no carries",
		x:     []uint64{1, 2},
		y:     []uint64{3, 4},
		wantS: []uint64{4, 6},
		wantC: 0,
	}, {
		name:  "carry into second word",
		x:     []uint64{^uint64(0), 0},
		y:     []uint64{1, 0},
		wantS: []uint64{0, 1},
		wantC: 0,
	}, {
		name:  "carry out of top word",
		x:     []uint64{0, ^uint64(0)},
		y:     []uint64{0, 1},
		wantS: []uint64{0, 0},
		wantC: 1,
	}, {
		name:  "full ripple across four words",
		x:     []uint64{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)},
		y:     []uint64{1, 0, 0, 0},
		wantS: []uint64{0, 0, 0, 0},
		wantC: 1,
	}}

	for _, test := range tests {
		s := make([]uint64, len(test.x))
		carry := addWords(s, test.x, test.y)
		if !reflect.DeepEqual(s, test.wantS) || carry != test.wantC {
			t.Errorf("%s: unexpected result -- got (%x, %d), want (%x, %d)",
				test.name, s, carry, test.wantS, test.wantC)
			continue
		}

		// Same result when the sum aliases an addend.
		aliased := append([]uint64(nil), test.x...)
		carry = addWords(aliased, aliased, test.y)
		if !reflect.DeepEqual(aliased, test.wantS) || carry != test.wantC {
			t.Errorf("%s: unexpected aliased result -- got (%x, %d), want (%x, %d)",
				test.name, aliased, carry, test.wantS, test.wantC)
		}
	}
}

// TestSubWords ensures subtracting word arrays produces the expected
// differences and borrows, including full borrow rippling.
func TestSubWords(t *testing.T) {
	tests := []struct {
		name  string // test description
		x     []uint64
		y     []uint64
		wantD []uint64
		wantB uint64
	}{{
		name:  "no borrows",
		x:     []uint64{5, 5},
		y:     []uint64{2, 2},
		wantD: []uint64{3, 3},
		wantB: 0,
	}, {
		name:  "borrow from second word",
		x:     []uint64{0, 1},
		y:     []uint64{1, 0},
		wantD: []uint64{^uint64(0), 0},
		wantB: 0,
	}, {
		name:  "borrow out of top word",
		x:     []uint64{0, 0},
		y:     []uint64{1, 0},
		wantD: []uint64{^uint64(0), ^uint64(0)},
		wantB: 1,
	}}

	for _, test := range tests {
		d := make([]uint64, len(test.x))
		borrow := subWords(d, test.x, test.y)
		if !reflect.DeepEqual(d, test.wantD) || borrow != test.wantB {
			t.Errorf("%s: unexpected result -- got (%x, %d), want (%x, %d)",
				test.name, d, borrow, test.wantD, test.wantB)
			continue
		}
	}
}

// TestSubMulWords ensures the fused multiply and subtract produces the
// expected differences and final borrows for hand-verified vectors that
// exercise both stages of the borrow chain.
func TestSubMulWords(t *testing.T) {
	tests := []struct {
		name       string // test description
		x          []uint64
		y          []uint64
		multiplier uint64
		wantR      []uint64
		wantB      uint64
	}{{
		name:       "zero multiplier",
		x:          []uint64{7, 8},
		y:          []uint64{9, 9},
		multiplier: 0,
		wantR:      []uint64{7, 8},
		wantB:      0,
	}, {
		name:       "no borrows",
		x:          []uint64{10, 0},
		y:          []uint64{3, 0},
		multiplier: 2,
		wantR:      []uint64{4, 0},
		wantB:      0,
	}, {
		name:       "borrow from product low word",
		x:          []uint64{0, 1},
		y:          []uint64{1, 0},
		multiplier: 1,
		wantR:      []uint64{^uint64(0), 0},
		wantB:      0,
	}, {
		name:       "borrow out of top word",
		x:          []uint64{0, 0},
		y:          []uint64{1, 0},
		multiplier: ^uint64(0),
		wantR:      []uint64{1, ^uint64(0)},
		wantB:      1,
	}, {
		name:       "wide final borrow",
		x:          []uint64{0},
		y:          []uint64{^uint64(0)},
		multiplier: ^uint64(0),
		wantR:      []uint64{^uint64(0)},
		wantB:      ^uint64(0),
	}}

	for _, test := range tests {
		r := make([]uint64, len(test.x))
		borrow := subMulWords(r, test.x, test.y, test.multiplier)
		if !reflect.DeepEqual(r, test.wantR) || borrow != test.wantB {
			t.Errorf("%s: unexpected result -- got (%x, %d), want (%x, %d)",
				test.name, r, borrow, test.wantR, test.wantB)
			continue
		}
	}
}

// TestSubMulWordsRandom ensures the fused multiply and subtract satisfies
// the defining identity x - multiplier*y = r - borrow*2^(64*len) for random
// operands.
func TestSubMulWordsRandom(t *testing.T) {
	seed := time.Now().Unix()
	rng := mrand.New(mrand.NewSource(seed))
	t.Logf("Running with random seed %d", seed)

	for i := 0; i < 500; i++ {
		words := 1 + rng.Intn(8)
		x := make([]uint64, words)
		y := make([]uint64, words)
		randWords(rng, x, words)
		randWords(rng, y, words)
		multiplier := rng.Uint64()

		r := make([]uint64, words)
		borrow := subMulWords(r, x, y, multiplier)

		// want = x - multiplier*y + borrow*B^len
		want := new(big.Int).Mul(wordsToBig(y), new(big.Int).SetUint64(multiplier))
		want.Sub(wordsToBig(x), want)
		weight := new(big.Int).Mul(bigPowB(words), new(big.Int).SetUint64(borrow))
		want.Add(want, weight)

		if got := wordsToBig(r); got.Cmp(want) != 0 {
			t.Fatalf("mismatched result -- got %x, want %x (x: %x, y: %x, "+
				"multiplier: %x, borrow: %x)", got, want, x, y, multiplier,
				borrow)
		}
	}
}

// TestMulWords ensures the truncating word array multiplication matches the
// oracle for random operands at several lengths.
func TestMulWords(t *testing.T) {
	seed := time.Now().Unix()
	rng := mrand.New(mrand.NewSource(seed))
	t.Logf("Running with random seed %d", seed)

	for i := 0; i < 500; i++ {
		words := 1 + rng.Intn(10)
		x := make([]uint64, words)
		y := make([]uint64, words)
		randWords(rng, x, 1+rng.Intn(words))
		randWords(rng, y, 1+rng.Intn(words))

		r := make([]uint64, words)
		mulWords(r, x, y)

		mask := new(big.Int).Sub(bigPowB(words), big.NewInt(1))
		want := new(big.Int).Mul(wordsToBig(x), wordsToBig(y))
		want.And(want, mask)

		if got := wordsToBig(r); got.Cmp(want) != 0 {
			t.Fatalf("mismatched product -- got %x, want %x (x: %x, y: %x)",
				got, want, x, y)
		}
	}
}

// TestShiftWords ensures the word array shifts match the oracle for both
// directions across word-aligned, unaligned, zero, and out-of-range shift
// distances.
func TestShiftWords(t *testing.T) {
	seed := time.Now().Unix()
	rng := mrand.New(mrand.NewSource(seed))
	t.Logf("Running with random seed %d", seed)

	const words = 8
	shifts := []uint32{0, 1, 63, 64, 65, 127, 128, 192, words*64 - 1,
		words * 64, words*64 + 7}
	mask := new(big.Int).Sub(bigPowB(words), big.NewInt(1))
	for i := 0; i < 100; i++ {
		x := make([]uint64, words)
		randWords(rng, x, 1+rng.Intn(words))

		for _, shift := range shifts {
			l := make([]uint64, words)
			lshWords(l, x, shift)
			wantL := new(big.Int).Lsh(wordsToBig(x), uint(shift))
			wantL.And(wantL, mask)
			if got := wordsToBig(l); got.Cmp(wantL) != 0 {
				t.Fatalf("mismatched left shift %d -- got %x, want %x (x: %x)",
					shift, got, wantL, x)
			}

			r := make([]uint64, words)
			rshWords(r, x, shift)
			wantR := new(big.Int).Rsh(wordsToBig(x), uint(shift))
			if got := wordsToBig(r); got.Cmp(wantR) != 0 {
				t.Fatalf("mismatched right shift %d -- got %x, want %x (x: %x)",
					shift, got, wantR, x)
			}

			// In-place variants behave identically.
			inPlace := append([]uint64(nil), x...)
			lshWords(inPlace, inPlace, shift)
			if !reflect.DeepEqual(inPlace, l) {
				t.Fatalf("mismatched aliased left shift %d -- got %x, want %x",
					shift, inPlace, l)
			}
			inPlace = append([]uint64(nil), x...)
			rshWords(inPlace, inPlace, shift)
			if !reflect.DeepEqual(inPlace, r) {
				t.Fatalf("mismatched aliased right shift %d -- got %x, want %x",
					shift, inPlace, r)
			}
		}
	}
}

// TestCmpWords ensures the word array comparison helpers agree with each
// other and produce the expected results.
func TestCmpWords(t *testing.T) {
	tests := []struct {
		name string // test description
		x    []uint64
		y    []uint64
		want int
	}{{
		name: "equal zero",
		x:    []uint64{0, 0},
		y:    []uint64{0, 0},
		want: 0,
	}, {
		name: "equal nonzero",
		x:    []uint64{5, 9},
		y:    []uint64{5, 9},
		want: 0,
	}, {
		name: "less in low word only",
		x:    []uint64{4, 9},
		y:    []uint64{5, 9},
		want: -1,
	}, {
		name: "greater in high word lower in low word",
		x:    []uint64{1, 10},
		y:    []uint64{^uint64(0), 9},
		want: 1,
	}}

	for _, test := range tests {
		if got := cmpWords(test.x, test.y); got != test.want {
			t.Errorf("%s: unexpected cmp -- got %d, want %d", test.name, got,
				test.want)
			continue
		}
		if got := ltWords(test.x, test.y); got != (test.want < 0) {
			t.Errorf("%s: unexpected lt -- got %v, want %v", test.name, got,
				test.want < 0)
			continue
		}
		if got := eqWords(test.x, test.y); got != (test.want == 0) {
			t.Errorf("%s: unexpected eq -- got %v, want %v", test.name, got,
				test.want == 0)
			continue
		}
	}
}

// TestWordLengths ensures the significant word count and bit length helpers
// produce the expected results.
func TestWordLengths(t *testing.T) {
	tests := []struct {
		name       string // test description
		x          []uint64
		wantSig    int
		wantBitLen int
		wantIsZero bool
	}{{
		name:       "zero",
		x:          []uint64{0, 0, 0, 0},
		wantSig:    0,
		wantBitLen: 0,
		wantIsZero: true,
	}, {
		name:       "one",
		x:          []uint64{1, 0, 0, 0},
		wantSig:    1,
		wantBitLen: 1,
		wantIsZero: false,
	}, {
		name:       "top bit of first word",
		x:          []uint64{1 << 63, 0, 0, 0},
		wantSig:    1,
		wantBitLen: 64,
		wantIsZero: false,
	}, {
		name:       "third word",
		x:          []uint64{0, 0, 1 << 5, 0},
		wantSig:    3,
		wantBitLen: 134,
		wantIsZero: false,
	}, {
		name:       "max",
		x:          []uint64{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)},
		wantSig:    4,
		wantBitLen: 256,
		wantIsZero: false,
	}}

	for _, test := range tests {
		if got := sigWords(test.x); got != test.wantSig {
			t.Errorf("%s: unexpected significant words -- got %d, want %d",
				test.name, got, test.wantSig)
			continue
		}
		if got := bitLenWords(test.x); got != test.wantBitLen {
			t.Errorf("%s: unexpected bit length -- got %d, want %d",
				test.name, got, test.wantBitLen)
			continue
		}
		if got := isZeroWords(test.x); got != test.wantIsZero {
			t.Errorf("%s: unexpected is zero -- got %v, want %v", test.name,
				got, test.wantIsZero)
			continue
		}
	}
}
