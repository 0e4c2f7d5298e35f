// Copyright (c) 2025 The intx developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package intx

import (
	"fmt"
	"math/big"
)

// Uint512 implements high-performance, zero-allocation, unsigned 512-bit
// fixed-precision arithmetic.  All operations are performed modulo 2^512,
// so callers may rely on "wrap around" semantics.
//
// The method set and semantics mirror Uint256 at 8 words of width.  See
// the Uint256 documentation for the details of each method.
type Uint512 struct {
	// The uint512 is represented as 8 unsigned 64-bit integers in base
	// 2^64 stored least significant word first.
	n [8]uint64
}

// Set sets the uint512 equal to the same value as the passed one and returns it.
func (n *Uint512) Set(n2 *Uint512) *Uint512 {
	*n = *n2
	return n
}

// SetUint64 sets the uint512 to the passed unsigned 64-bit integer and returns
// it.
func (n *Uint512) SetUint64(n2 uint64) *Uint512 {
	zeroWords(n.n[:])
	n.n[0] = n2
	return n
}

// SetBytes interprets the provided array as a 512-bit big-endian unsigned
// integer, sets the uint512 to the result, and returns it.
func (n *Uint512) SetBytes(b *[64]byte) *Uint512 {
	setByteSliceWords(n.n[:], b[:])
	return n
}

// SetByteSlice interprets the provided slice as a 512-bit big-endian
// unsigned integer modulo 2^512, sets the uint512 to the result, and
// returns it.
func (n *Uint512) SetByteSlice(b []byte) *Uint512 {
	setByteSliceWords(n.n[:], b)
	return n
}

// SetBig sets the uint512 to the passed standard library big integer modulo
// 2^512 and returns it.  Negative values are converted per their twos
// complement.
func (n *Uint512) SetBig(n2 *big.Int) *Uint512 {
	setBigWords(n.n[:], n2)
	return n
}

// Zero sets the uint512 to zero.
func (n *Uint512) Zero() {
	zeroWords(n.n[:])
}

// Bytes returns the bytes of the uint512 as a 512-bit big-endian byte
// array.
func (n *Uint512) Bytes() [64]byte {
	var b [64]byte
	putBytesWords(b[:], n.n[:])
	return b
}

// PutBytes unpacks the uint512 to a 512-bit big-endian value directly into
// the passed byte array.
func (n *Uint512) PutBytes(b *[64]byte) {
	putBytesWords(b[:], n.n[:])
}

// PutBytesUnchecked unpacks the uint512 to a 512-bit big-endian value
// directly into the passed byte slice which must have at least 64
// bytes available.
func (n *Uint512) PutBytesUnchecked(b []byte) {
	putBytesWords(b[:64], n.n[:])
}

// Uint64 returns the low-order 64 bits of the uint512.
func (n *Uint512) Uint64() uint64 {
	return n.n[0]
}

// ToBig returns the value as a standard library big integer.
func (n *Uint512) ToBig() *big.Int {
	var v big.Int
	putBigWords(&v, n.n[:])
	return &v
}

// PutBig sets the passed existing standard library big integer to the value.
func (n *Uint512) PutBig(v *big.Int) {
	putBigWords(v, n.n[:])
}

// IsZero returns whether or not the uint512 is equal to zero.
func (n *Uint512) IsZero() bool {
	return isZeroWords(n.n[:])
}

// IsOdd returns whether or not the uint512 is odd.
func (n *Uint512) IsOdd() bool {
	return n.n[0]&1 == 1
}

// IsUint64 returns whether or not the uint512 can be converted to a uint64
// without any loss of precision.
func (n *Uint512) IsUint64() bool {
	return isZeroWords(n.n[1:])
}

// Eq returns whether or not the two uint512s represent the same value.
func (n *Uint512) Eq(n2 *Uint512) bool {
	return eqWords(n.n[:], n2.n[:])
}

// Lt returns whether or not the uint512 is less than the given one.
func (n *Uint512) Lt(n2 *Uint512) bool {
	return ltWords(n.n[:], n2.n[:])
}

// Gt returns whether or not the uint512 is greater than the given one.
func (n *Uint512) Gt(n2 *Uint512) bool {
	return ltWords(n2.n[:], n.n[:])
}

// Cmp compares the two uint512s and returns -1, 0, or 1.
func (n *Uint512) Cmp(n2 *Uint512) int {
	return cmpWords(n.n[:], n2.n[:])
}

// CmpUint64 compares the uint512 with the given unsigned 64-bit integer and
// returns -1, 0, or 1.
func (n *Uint512) CmpUint64(n2 uint64) int {
	return cmpWordsUint64(n.n[:], n2)
}

// Add adds the passed uint512 to the existing one modulo 2^512 and returns
// it.
func (n *Uint512) Add(n2 *Uint512) *Uint512 {
	addWords(n.n[:], n.n[:], n2.n[:])
	return n
}

// AddUint64 adds the passed unsigned 64-bit integer to the uint512 modulo
// 2^512 and returns it.
func (n *Uint512) AddUint64(n2 uint64) *Uint512 {
	addWord(n.n[:], n2)
	return n
}

// Sub subtracts the passed uint512 from the existing one modulo 2^512 and
// returns it.
func (n *Uint512) Sub(n2 *Uint512) *Uint512 {
	subWords(n.n[:], n.n[:], n2.n[:])
	return n
}

// SubUint64 subtracts the passed unsigned 64-bit integer from the uint512
// modulo 2^512 and returns it.
func (n *Uint512) SubUint64(n2 uint64) *Uint512 {
	subWord(n.n[:], n2)
	return n
}

// Mul multiplies the passed uint512 with the existing one modulo 2^512 and
// returns it.
func (n *Uint512) Mul(n2 *Uint512) *Uint512 {
	var product [8]uint64
	mulWords(product[:], n.n[:], n2.n[:])
	n.n = product
	return n
}

// MulUint64 multiplies the passed unsigned 64-bit integer with the uint512
// modulo 2^512 and returns it.
func (n *Uint512) MulUint64(n2 uint64) *Uint512 {
	mulWord(n.n[:], n2)
	return n
}

// SquareVal squares the passed uint512 modulo 2^512, stores the result in n
// without modifying the passed one, and returns it.
func (n *Uint512) SquareVal(n2 *Uint512) *Uint512 {
	var product [8]uint64
	mulWords(product[:], n2.n[:], n2.n[:])
	n.n = product
	return n
}

// Square squares the uint512 modulo 2^512 and returns it.
func (n *Uint512) Square() *Uint512 {
	var product [8]uint64
	mulWords(product[:], n.n[:], n.n[:])
	n.n = product
	return n
}

// Div divides the uint512 by the passed one, stores the quotient in n, and
// returns it.  It will panic if the divisor is zero.
func (n *Uint512) Div(divisor *Uint512) *Uint512 {
	if divisor.IsZero() {
		panic("division by zero")
	}
	var quot, rem Uint512
	udivrem(quot.n[:], rem.n[:], n.n[:], divisor.n[:])
	n.n = quot.n
	return n
}

// DivVal divides the passed dividend by the passed divisor without modifying
// either, stores the quotient in n, and returns it.  It will panic if the
// divisor is zero.
func (n *Uint512) DivVal(dividend, divisor *Uint512) *Uint512 {
	if divisor.IsZero() {
		panic("division by zero")
	}
	var quot, rem Uint512
	udivrem(quot.n[:], rem.n[:], dividend.n[:], divisor.n[:])
	n.n = quot.n
	return n
}

// Mod computes the remainder of dividing the uint512 by the passed one, stores
// it in n, and returns it.  It will panic if the divisor is zero.
func (n *Uint512) Mod(divisor *Uint512) *Uint512 {
	if divisor.IsZero() {
		panic("division by zero")
	}
	var quot, rem Uint512
	udivrem(quot.n[:], rem.n[:], n.n[:], divisor.n[:])
	n.n = rem.n
	return n
}

// ModVal computes the remainder of dividing the passed dividend by the passed
// divisor without modifying either, stores it in n, and returns it.  It will
// panic if the divisor is zero.
func (n *Uint512) ModVal(dividend, divisor *Uint512) *Uint512 {
	if divisor.IsZero() {
		panic("division by zero")
	}
	var quot, rem Uint512
	udivrem(quot.n[:], rem.n[:], dividend.n[:], divisor.n[:])
	n.n = rem.n
	return n
}

// DivMod divides the uint512 by the passed one in a single division pass,
// stores the quotient in n, stores the remainder in rem, and returns n.  The
// remainder target must be a distinct value from n.  It will panic if the
// divisor is zero.
func (n *Uint512) DivMod(divisor, rem *Uint512) *Uint512 {
	if divisor.IsZero() {
		panic("division by zero")
	}
	var q, r Uint512
	udivrem(q.n[:], r.n[:], n.n[:], divisor.n[:])
	n.n = q.n
	rem.n = r.n
	return n
}

// Negate negates the uint512 modulo 2^512 such that it is the twos
// complement of its previous value and returns it.
func (n *Uint512) Negate() *Uint512 {
	negateWords(n.n[:])
	return n
}

// Not computes the bitwise not of the uint512 and returns it.
func (n *Uint512) Not() *Uint512 {
	notWords(n.n[:])
	return n
}

// Lsh shifts the uint512 to the left by the given number of bits, discarding
// those shifted beyond 2^512, and returns it.
func (n *Uint512) Lsh(bits uint32) *Uint512 {
	lshWords(n.n[:], n.n[:], bits)
	return n
}

// LshVal shifts the passed uint512 to the left by the given number of bits,
// stores the result in n, and returns it.
func (n *Uint512) LshVal(n2 *Uint512, bits uint32) *Uint512 {
	lshWords(n.n[:], n2.n[:], bits)
	return n
}

// Rsh shifts the uint512 to the right by the given number of bits and returns
// it.
func (n *Uint512) Rsh(bits uint32) *Uint512 {
	rshWords(n.n[:], n.n[:], bits)
	return n
}

// RshVal shifts the passed uint512 to the right by the given number of bits,
// stores the result in n, and returns it.
func (n *Uint512) RshVal(n2 *Uint512, bits uint32) *Uint512 {
	rshWords(n.n[:], n2.n[:], bits)
	return n
}

// BitLen returns the minimum number of bits required to represent the uint512.
func (n *Uint512) BitLen() int {
	return bitLenWords(n.n[:])
}

// String returns the uint512 as a human-readable decimal string.
func (n *Uint512) String() string {
	return stringWords(n.n[:])
}

// Text returns the textual representation of the uint512 in the given base
// which must be between 2 and 36 inclusive.
func (n *Uint512) Text(base int) string {
	return textWords(n.n[:], base)
}

// Format implements fmt.Formatter.  See the Uint256 variant for the accepted
// verbs.
func (n *Uint512) Format(f fmt.State, verb rune) {
	formatWords(f, verb, n.n[:])
}
