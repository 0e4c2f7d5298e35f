// Copyright (c) 2024-2026 The intx developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package intx

import (
	"math/bits"

	"lukechampine.com/uint128"
)

// This file implements the reciprocal precomputation and the short division
// primitives the multi-word division paths are built from.  The algorithms
// are the ones described by Möller and Granlund in "Improved division by
// invariant integers" (IEEE Transactions on Computers, 2011), which replace
// the hardware division in the hot loops with multiplications by a
// precomputed reciprocal and prove tight bounds on how far the resulting
// quotient estimates can be off.
//
// Every divisor handled here must be normalized, meaning its most
// significant bit must be set.  The proofs of the estimation error bounds
// rely on it.

// reciprocal2by1 returns the normalized reciprocal floor((2^128 - 1) / d) -
// 2^64 of the divisor.
//
// The divisor must be normalized.
func reciprocal2by1(d uint64) uint64 {
	reciprocal, _ := bits.Div64(^d, ^uint64(0), d)
	return reciprocal
}

// reciprocal3by2 returns the normalized reciprocal floor((2^192 - 1) / d) -
// 2^64 of the 128-bit divisor.
//
// It starts from the reciprocal of the high divisor word and performs two
// adjustment rounds that fold in the low divisor word, each round
// conditionally stepping the candidate down by one or two.
//
// The high word of the divisor must be normalized.
func reciprocal3by2(d uint128.Uint128) uint64 {
	v := reciprocal2by1(d.Hi)
	p := d.Hi * v
	p += d.Lo
	if p < d.Lo {
		v--
		if p >= d.Hi {
			v--
			p -= d.Hi
		}
		p -= d.Hi
	}

	thi, tlo := bits.Mul64(v, d.Lo)

	p += thi
	if p < thi {
		v--
		if uint128.New(tlo, p).Cmp(d) >= 0 {
			v--
		}
	}
	return v
}

// udivrem2by1 divides the 128-bit value u by the normalized divisor d using
// its precomputed reciprocal and returns the quotient word along with the
// remainder word.
//
// The high word of u must be less than d so that the quotient fits into a
// single word.  The initial estimate derived from the reciprocal is at most
// one too small and at most one too large, so the two trailing conditionals
// always land on the exact quotient.
func udivrem2by1(u uint128.Uint128, d, reciprocal uint64) (uint64, uint64) {
	qhi, qlo := bits.Mul64(reciprocal, u.Hi)
	var carry uint64
	qlo, carry = bits.Add64(qlo, u.Lo, 0)
	qhi, _ = bits.Add64(qhi, u.Hi, carry)
	qhi++

	r := u.Lo - qhi*d

	if r > qlo {
		qhi--
		r += d
	}

	if r >= d {
		qhi++
		r -= d
	}

	return qhi, r
}

// udivrem3by2 divides the 3-word value (u2, u1, u0), given most significant
// word first, by the normalized 128-bit divisor d using its precomputed
// reciprocal and returns the quotient word along with the 128-bit remainder.
//
// The 128-bit value (u2, u1) must be less than d so that the quotient fits
// into a single word.
func udivrem3by2(u2, u1, u0 uint64, d uint128.Uint128, reciprocal uint64) (uint64, uint128.Uint128) {
	qhi, qlo := bits.Mul64(reciprocal, u2)
	var carry uint64
	qlo, carry = bits.Add64(qlo, u1, 0)
	qhi, _ = bits.Add64(qhi, u2, carry)

	r1 := u1 - qhi*d.Hi

	thi, tlo := bits.Mul64(d.Lo, qhi)

	r := uint128.New(u0, r1).SubWrap(uint128.New(tlo, thi)).SubWrap(d)
	r1 = r.Hi

	qhi++

	if r1 >= qlo {
		qhi--
		r = r.AddWrap(d)
	}

	if r.Cmp(d) >= 0 {
		qhi++
		r = r.SubWrap(d)
	}

	return qhi, r
}
