// Copyright (c) 2024-2026 The intx developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package intx

import (
	"math/bits"

	"lukechampine.com/uint128"
)

// This file implements the word-array division routing routine and the three
// long division strategies behind it.  The overall structure is:
//
//	udivrem
//	  |-- normalize operands (shift so the divisor top bit is set)
//	  |-- udivremBy1    (1-word divisors)
//	  |-- udivremBy2    (2-word divisors)
//	  |-- udivremKnuth  (3+ word divisors)
//	  '-- denormalize remainder (shift back)
//
// The quotient is shift invariant, so only the remainder needs the final
// denormalization.  All three strategies require normalized divisors since
// they estimate quotient digits with the reciprocal primitives.
//
// None of the functions here check their preconditions.  The routing routine
// establishes them by construction and the exported division methods on the
// fixed width types reject zero divisors before any of this code runs.

// udivremBy1 divides the word array u by the normalized single-word divisor
// d and returns the remainder.  The quotient is written over u, one digit
// per iteration from the most significant word down.
//
// The length of u must be at least 2 and its top word must be less than d,
// both of which the routing routine guarantees.
func udivremBy1(u []uint64, d uint64) uint64 {
	reciprocal := reciprocal2by1(d)

	// The top word is the initial remainder and its slot in the buffer
	// becomes the always-zero top quotient digit.
	rem := u[len(u)-1]
	u[len(u)-1] = 0

	for i := len(u) - 2; i >= 0; i-- {
		u[i], rem = udivrem2by1(uint128.New(u[i], rem), d, reciprocal)
	}
	return rem
}

// udivremBy2 divides the word array u by the normalized 2-word divisor d and
// returns the 128-bit remainder.  The quotient is written over u, one digit
// per iteration from the most significant word down.
//
// The length of u must be at least 3 and its top two words, taken as a
// 128-bit value, must be less than d, both of which the routing routine
// guarantees.
func udivremBy2(u []uint64, d uint128.Uint128) uint128.Uint128 {
	reciprocal := reciprocal3by2(d)

	// The top two words are the initial remainder and their slots in the
	// buffer become the always-zero top quotient digits.
	rem := uint128.New(u[len(u)-2], u[len(u)-1])
	u[len(u)-1] = 0
	u[len(u)-2] = 0

	for i := len(u) - 3; i >= 0; i-- {
		u[i], rem = udivrem3by2(rem.Hi, rem.Lo, u[i], d, reciprocal)
	}
	return rem
}

// udivremKnuth divides the word array u by the word array d per the
// classical multi-word long division known as Knuth Algorithm D.  The
// quotient digits are written to q and the low len(d) words of u are left
// holding the normalized remainder.
//
// Quotient digits are estimated with the 3-by-2 reciprocal primitive from
// the top two divisor words, which caps the estimation error at two.  The
// subtraction of the estimated digit multiple detects an overshoot by its
// final borrow, in which case a single add back of the divisor restores the
// window and the digit is decremented.  A full proof that one correction
// always suffices is in Knuth TAOCP volume 2, section 4.3.1.
//
// The divisor must be normalized with at least 3 significant words, u must
// be longer than d, and q must have room for len(u)-len(d) digits.  The
// routing routine guarantees all of these.
func udivremKnuth(q, u, d []uint64) {
	dlen := len(d)
	ulen := len(u)

	divisor := uint128.New(d[dlen-2], d[dlen-1])
	reciprocal := reciprocal3by2(divisor)
	for j := ulen - dlen - 1; j >= 0; j-- {
		u2 := u[j+dlen]
		u1 := u[j+dlen-1]
		u0 := u[j+dlen-2]

		var qhat uint64
		if uint128.New(u1, u2).Equals(divisor) {
			// The quotient digit would overflow a word, so clamp it
			// to the maximum word value and subtract the digit
			// multiple across the entire window, folding the borrow
			// into the word above it.
			qhat = ^uint64(0)

			u[j+dlen] = u2 - subMulWords(u[j:j+dlen], u[j:j+dlen], d, qhat)
		} else {
			var rhat uint128.Uint128
			qhat, rhat = udivrem3by2(u2, u1, u0, divisor, reciprocal)

			var carry uint64
			overflow := subMulWords(u[j:j+dlen-2], u[j:j+dlen-2], d[:dlen-2], qhat)
			u[j+dlen-2], carry = bits.Sub64(rhat.Lo, overflow, 0)
			u[j+dlen-1], carry = bits.Sub64(rhat.Hi, carry, 0)

			if carry != 0 {
				// The estimate was one too large, so add the
				// divisor back into the window and decrement the
				// digit.
				qhat--
				u[j+dlen-1] += divisor.Hi + addWords(u[j:j+dlen-1], u[j:j+dlen-1], d[:dlen-1])
			}
		}

		q[j] = qhat
	}
}

// udivrem divides the word array u by the word array v and stores the
// quotient in quot and the remainder in rem.  All four slices must be the
// same length and the result slices must not alias v.  The divisor must be
// nonzero.
//
// The operands are normalized by a common left shift chosen so the top
// significant divisor word has its most significant bit set, which the
// reciprocal-based digit estimation requires.  The shifted numerator gains
// one extra headroom word.  A numerator with no more significant words than
// the divisor is handled up front with a zero quotient, and otherwise the
// significant divisor word count selects the division strategy.  The
// remainder is shifted back at the end while the quotient is used as is.
func udivrem(quot, rem, u, v []uint64) {
	numWords := len(u)

	var m int
	for m = numWords; m > 0 && u[m-1] == 0; m-- {
	}
	var n int
	for n = numWords; n > 0 && v[n-1] == 0; n-- {
	}

	if m < n {
		copy(rem, u)
		zeroWords(quot)
		return
	}

	shift := uint(bits.LeadingZeros64(v[n-1]))

	var vnStorage [maxWords]uint64
	vn := vnStorage[:n]
	for i := n - 1; i > 0; i-- {
		vn[i] = v[i]<<shift | v[i-1]>>(64-shift)
	}
	vn[0] = v[0] << shift

	var unStorage [maxWords + 1]uint64
	un := unStorage[:m+1]
	un[m] = u[m-1] >> (64 - shift)
	for i := m - 1; i > 0; i-- {
		un[i] = u[i]<<shift | u[i-1]>>(64-shift)
	}
	un[0] = u[0] << shift

	// Include the headroom word in the numerator length when it holds
	// shifted-in bits or when the top word could not absorb a divisor
	// multiple on its own.  This also establishes the per-strategy
	// precondition that the leading remainder seed is less than the
	// divisor.
	if un[m] != 0 || un[m-1] >= vn[n-1] {
		m++
	}

	if m <= n {
		copy(rem, u)
		zeroWords(quot)
		return
	}

	switch {
	case n == 1:
		r := udivremBy1(un[:m], vn[0])

		copy(quot, unStorage[:numWords])
		rem[0] = r >> shift
		zeroWords(rem[1:])

	case n == 2:
		r := udivremBy2(un[:m], uint128.New(vn[0], vn[1]))

		copy(quot, unStorage[:numWords])
		r = r.Rsh(shift)
		rem[0] = r.Lo
		rem[1] = r.Hi
		zeroWords(rem[2:])

	default:
		var qStorage [maxWords]uint64
		udivremKnuth(qStorage[:m-n], un[:m], vn)

		copy(quot, qStorage[:numWords])
		for i := 0; i < n-1; i++ {
			rem[i] = un[i]>>shift | un[i+1]<<(64-shift)
		}
		rem[n-1] = un[n-1] >> shift
		zeroWords(rem[n:])
	}
}
