// Copyright (c) 2024-2026 The intx developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package intx

import "math/bits"

// maxWords is the number of 64-bit words required to represent the widest
// supported integer (4096 bits).
const maxWords = 4096 / 64

// All of the functions in this file operate on word arrays stored with the
// least significant word first.  They are deliberately length agnostic so the
// same code backs every supported integer width, with each fixed width type
// providing thin wrappers around them.

// zeroWords sets every word of x to zero.
func zeroWords(x []uint64) {
	for i := range x {
		x[i] = 0
	}
}

// isZeroWords returns whether every word of x is zero.
func isZeroWords(x []uint64) bool {
	for _, w := range x {
		if w != 0 {
			return false
		}
	}
	return true
}

// sigWords returns the number of significant words in x, meaning the minimum
// number of words needed to represent its value.  It is 0 when x is zero.
func sigWords(x []uint64) int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != 0 {
			return i + 1
		}
	}
	return 0
}

// bitLenWords returns the minimum number of bits required to represent x.  It
// is 0 when x is zero.
func bitLenWords(x []uint64) int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != 0 {
			return i*64 + bits.Len64(x[i])
		}
	}
	return 0
}

// eqWords returns whether x and y, which must be the same length, represent
// the same value.
func eqWords(x, y []uint64) bool {
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// ltWords returns whether x is less than y by checking for a final borrow of
// the subtraction x - y without storing the difference.  The slices must be
// the same length.
func ltWords(x, y []uint64) bool {
	var borrow uint64
	for i := range x {
		_, borrow = bits.Sub64(x[i], y[i], borrow)
	}
	return borrow != 0
}

// cmpWords compares x and y, which must be the same length, and returns -1
// when x < y, 0 when x == y, and 1 when x > y.
func cmpWords(x, y []uint64) int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// cmpWordsUint64 compares x against the single word w and returns -1 when
// x < w, 0 when x == w, and 1 when x > w.
func cmpWordsUint64(x []uint64, w uint64) int {
	if !isZeroWords(x[1:]) {
		return 1
	}
	switch {
	case x[0] < w:
		return -1
	case x[0] > w:
		return 1
	}
	return 0
}

// addWords adds the equal-length word arrays x and y, stores the sum in s,
// and returns the resulting final carry.  The sum slice may alias either
// addend.
func addWords(s, x, y []uint64) uint64 {
	var carry uint64
	for i := range x {
		s[i], carry = bits.Add64(x[i], y[i], carry)
	}
	return carry
}

// subWords subtracts the word array y from the equal-length word array x,
// stores the difference in d, and returns the resulting final borrow.  The
// difference slice may alias either operand.
func subWords(d, x, y []uint64) uint64 {
	var borrow uint64
	for i := range x {
		d[i], borrow = bits.Sub64(x[i], y[i], borrow)
	}
	return borrow
}

// addWord adds the single word w to x in place and returns the resulting
// final carry.
func addWord(x []uint64, w uint64) uint64 {
	carry := w
	for i := 0; i < len(x) && carry != 0; i++ {
		x[i], carry = bits.Add64(x[i], carry, 0)
	}
	return carry
}

// subWord subtracts the single word w from x in place and returns the
// resulting final borrow.
func subWord(x []uint64, w uint64) uint64 {
	borrow := w
	for i := 0; i < len(x) && borrow != 0; i++ {
		x[i], borrow = bits.Sub64(x[i], borrow, 0)
	}
	return borrow
}

// mulWord multiplies x by the single word w in place and returns the final
// carry word of the product.
func mulWord(x []uint64, w uint64) uint64 {
	var carry uint64
	for i := range x {
		hi, lo := bits.Mul64(x[i], w)
		lo, c := bits.Add64(lo, carry, 0)
		x[i] = lo
		carry = hi + c
	}
	return carry
}

// mulWords multiplies the equal-length word arrays x and y and stores the
// product modulo 2^(64*len) in r.  The product slice must not alias either
// multiplicand.
func mulWords(r, x, y []uint64) {
	zeroWords(r)
	n := len(r)
	for i := 0; i < n; i++ {
		d := y[i]
		if d == 0 {
			continue
		}
		var carry uint64
		for j := 0; j < n-i; j++ {
			hi, lo := bits.Mul64(x[j], d)
			lo, c := bits.Add64(lo, carry, 0)
			hi += c
			lo, c = bits.Add64(lo, r[i+j], 0)
			hi += c
			r[i+j] = lo
			carry = hi
		}
	}
}

// subMulWords subtracts the equal-length word array y times the given
// multiplier from the word array x and stores the difference in r.  It
// returns the resulting final borrow word.
//
// Two separate subtractions feed each result word, so both of their borrows
// as well as the high product word are folded into the running borrow.  The
// running borrow therefore spans the full word range rather than just 0 and
// 1, which is what allows a caller to combine the final borrow with an outer
// word of a wider window.
//
// The difference slice may alias x.
func subMulWords(r, x, y []uint64, multiplier uint64) uint64 {
	var borrow uint64
	for i := range y {
		s, carry1 := bits.Sub64(x[i], borrow, 0)
		hi, lo := bits.Mul64(y[i], multiplier)
		t, carry2 := bits.Sub64(s, lo, 0)
		r[i] = t
		borrow = hi + carry1 + carry2
	}
	return borrow
}

// notWords inverts every word of x in place.
func notWords(x []uint64) {
	for i := range x {
		x[i] = ^x[i]
	}
}

// negateWords replaces x with its twos complement in place.
func negateWords(x []uint64) {
	var carry uint64 = 1
	for i := range x {
		x[i], carry = bits.Add64(^x[i], 0, carry)
	}
}

// lshWords stores x shifted left by n bits in r, shifting in zeros and
// discarding any bits shifted beyond the array width.  The result slice must
// be the same length as x and may alias it.
func lshWords(r, x []uint64, n uint32) {
	if uint(n) >= uint(len(x))*64 {
		zeroWords(r)
		return
	}

	// Note that shifting the lower word of each pair right by 64 bits when
	// the bit offset is zero correctly contributes nothing in Go.
	words := int(n / 64)
	shift := uint(n % 64)
	for i := len(x) - 1; i > words; i-- {
		r[i] = x[i-words]<<shift | x[i-words-1]>>(64-shift)
	}
	r[words] = x[0] << shift
	for i := words - 1; i >= 0; i-- {
		r[i] = 0
	}
}

// rshWords stores x shifted right by n bits in r, shifting in zeros and
// discarding any bits shifted below the lowest word.  The result slice must
// be the same length as x and may alias it.
func rshWords(r, x []uint64, n uint32) {
	if uint(n) >= uint(len(x))*64 {
		zeroWords(r)
		return
	}

	words := int(n / 64)
	shift := uint(n % 64)
	last := len(x) - 1 - words
	for i := 0; i < last; i++ {
		r[i] = x[i+words]>>shift | x[i+words+1]<<(64-shift)
	}
	r[last] = x[len(x)-1] >> shift
	for i := last + 1; i < len(x); i++ {
		r[i] = 0
	}
}
