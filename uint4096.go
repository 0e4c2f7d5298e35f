// Copyright (c) 2025 The intx developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package intx

import (
	"fmt"
	"math/big"
)

// Uint4096 implements high-performance, zero-allocation, unsigned 4096-bit
// fixed-precision arithmetic.  All operations are performed modulo 2^4096,
// so callers may rely on "wrap around" semantics.
//
// The method set and semantics mirror Uint256 at 64 words of width.  See
// the Uint256 documentation for the details of each method.
type Uint4096 struct {
	// The uint4096 is represented as 64 unsigned 64-bit integers in base
	// 2^64 stored least significant word first.
	n [64]uint64
}

// Set sets the uint4096 equal to the same value as the passed one and returns it.
func (n *Uint4096) Set(n2 *Uint4096) *Uint4096 {
	*n = *n2
	return n
}

// SetUint64 sets the uint4096 to the passed unsigned 64-bit integer and returns
// it.
func (n *Uint4096) SetUint64(n2 uint64) *Uint4096 {
	zeroWords(n.n[:])
	n.n[0] = n2
	return n
}

// SetBytes interprets the provided array as a 4096-bit big-endian unsigned
// integer, sets the uint4096 to the result, and returns it.
func (n *Uint4096) SetBytes(b *[512]byte) *Uint4096 {
	setByteSliceWords(n.n[:], b[:])
	return n
}

// SetByteSlice interprets the provided slice as a 4096-bit big-endian
// unsigned integer modulo 2^4096, sets the uint4096 to the result, and
// returns it.
func (n *Uint4096) SetByteSlice(b []byte) *Uint4096 {
	setByteSliceWords(n.n[:], b)
	return n
}

// SetBig sets the uint4096 to the passed standard library big integer modulo
// 2^4096 and returns it.  Negative values are converted per their twos
// complement.
func (n *Uint4096) SetBig(n2 *big.Int) *Uint4096 {
	setBigWords(n.n[:], n2)
	return n
}

// Zero sets the uint4096 to zero.
func (n *Uint4096) Zero() {
	zeroWords(n.n[:])
}

// Bytes returns the bytes of the uint4096 as a 4096-bit big-endian byte
// array.
func (n *Uint4096) Bytes() [512]byte {
	var b [512]byte
	putBytesWords(b[:], n.n[:])
	return b
}

// PutBytes unpacks the uint4096 to a 4096-bit big-endian value directly into
// the passed byte array.
func (n *Uint4096) PutBytes(b *[512]byte) {
	putBytesWords(b[:], n.n[:])
}

// PutBytesUnchecked unpacks the uint4096 to a 4096-bit big-endian value
// directly into the passed byte slice which must have at least 512
// bytes available.
func (n *Uint4096) PutBytesUnchecked(b []byte) {
	putBytesWords(b[:512], n.n[:])
}

// Uint64 returns the low-order 64 bits of the uint4096.
func (n *Uint4096) Uint64() uint64 {
	return n.n[0]
}

// ToBig returns the value as a standard library big integer.
func (n *Uint4096) ToBig() *big.Int {
	var v big.Int
	putBigWords(&v, n.n[:])
	return &v
}

// PutBig sets the passed existing standard library big integer to the value.
func (n *Uint4096) PutBig(v *big.Int) {
	putBigWords(v, n.n[:])
}

// IsZero returns whether or not the uint4096 is equal to zero.
func (n *Uint4096) IsZero() bool {
	return isZeroWords(n.n[:])
}

// IsOdd returns whether or not the uint4096 is odd.
func (n *Uint4096) IsOdd() bool {
	return n.n[0]&1 == 1
}

// IsUint64 returns whether or not the uint4096 can be converted to a uint64
// without any loss of precision.
func (n *Uint4096) IsUint64() bool {
	return isZeroWords(n.n[1:])
}

// Eq returns whether or not the two uint4096s represent the same value.
func (n *Uint4096) Eq(n2 *Uint4096) bool {
	return eqWords(n.n[:], n2.n[:])
}

// Lt returns whether or not the uint4096 is less than the given one.
func (n *Uint4096) Lt(n2 *Uint4096) bool {
	return ltWords(n.n[:], n2.n[:])
}

// Gt returns whether or not the uint4096 is greater than the given one.
func (n *Uint4096) Gt(n2 *Uint4096) bool {
	return ltWords(n2.n[:], n.n[:])
}

// Cmp compares the two uint4096s and returns -1, 0, or 1.
func (n *Uint4096) Cmp(n2 *Uint4096) int {
	return cmpWords(n.n[:], n2.n[:])
}

// CmpUint64 compares the uint4096 with the given unsigned 64-bit integer and
// returns -1, 0, or 1.
func (n *Uint4096) CmpUint64(n2 uint64) int {
	return cmpWordsUint64(n.n[:], n2)
}

// Add adds the passed uint4096 to the existing one modulo 2^4096 and returns
// it.
func (n *Uint4096) Add(n2 *Uint4096) *Uint4096 {
	addWords(n.n[:], n.n[:], n2.n[:])
	return n
}

// AddUint64 adds the passed unsigned 64-bit integer to the uint4096 modulo
// 2^4096 and returns it.
func (n *Uint4096) AddUint64(n2 uint64) *Uint4096 {
	addWord(n.n[:], n2)
	return n
}

// Sub subtracts the passed uint4096 from the existing one modulo 2^4096 and
// returns it.
func (n *Uint4096) Sub(n2 *Uint4096) *Uint4096 {
	subWords(n.n[:], n.n[:], n2.n[:])
	return n
}

// SubUint64 subtracts the passed unsigned 64-bit integer from the uint4096
// modulo 2^4096 and returns it.
func (n *Uint4096) SubUint64(n2 uint64) *Uint4096 {
	subWord(n.n[:], n2)
	return n
}

// Mul multiplies the passed uint4096 with the existing one modulo 2^4096 and
// returns it.
func (n *Uint4096) Mul(n2 *Uint4096) *Uint4096 {
	var product [64]uint64
	mulWords(product[:], n.n[:], n2.n[:])
	n.n = product
	return n
}

// MulUint64 multiplies the passed unsigned 64-bit integer with the uint4096
// modulo 2^4096 and returns it.
func (n *Uint4096) MulUint64(n2 uint64) *Uint4096 {
	mulWord(n.n[:], n2)
	return n
}

// SquareVal squares the passed uint4096 modulo 2^4096, stores the result in n
// without modifying the passed one, and returns it.
func (n *Uint4096) SquareVal(n2 *Uint4096) *Uint4096 {
	var product [64]uint64
	mulWords(product[:], n2.n[:], n2.n[:])
	n.n = product
	return n
}

// Square squares the uint4096 modulo 2^4096 and returns it.
func (n *Uint4096) Square() *Uint4096 {
	var product [64]uint64
	mulWords(product[:], n.n[:], n.n[:])
	n.n = product
	return n
}

// Div divides the uint4096 by the passed one, stores the quotient in n, and
// returns it.  It will panic if the divisor is zero.
func (n *Uint4096) Div(divisor *Uint4096) *Uint4096 {
	if divisor.IsZero() {
		panic("division by zero")
	}
	var quot, rem Uint4096
	udivrem(quot.n[:], rem.n[:], n.n[:], divisor.n[:])
	n.n = quot.n
	return n
}

// DivVal divides the passed dividend by the passed divisor without modifying
// either, stores the quotient in n, and returns it.  It will panic if the
// divisor is zero.
func (n *Uint4096) DivVal(dividend, divisor *Uint4096) *Uint4096 {
	if divisor.IsZero() {
		panic("division by zero")
	}
	var quot, rem Uint4096
	udivrem(quot.n[:], rem.n[:], dividend.n[:], divisor.n[:])
	n.n = quot.n
	return n
}

// Mod computes the remainder of dividing the uint4096 by the passed one, stores
// it in n, and returns it.  It will panic if the divisor is zero.
func (n *Uint4096) Mod(divisor *Uint4096) *Uint4096 {
	if divisor.IsZero() {
		panic("division by zero")
	}
	var quot, rem Uint4096
	udivrem(quot.n[:], rem.n[:], n.n[:], divisor.n[:])
	n.n = rem.n
	return n
}

// ModVal computes the remainder of dividing the passed dividend by the passed
// divisor without modifying either, stores it in n, and returns it.  It will
// panic if the divisor is zero.
func (n *Uint4096) ModVal(dividend, divisor *Uint4096) *Uint4096 {
	if divisor.IsZero() {
		panic("division by zero")
	}
	var quot, rem Uint4096
	udivrem(quot.n[:], rem.n[:], dividend.n[:], divisor.n[:])
	n.n = rem.n
	return n
}

// DivMod divides the uint4096 by the passed one in a single division pass,
// stores the quotient in n, stores the remainder in rem, and returns n.  The
// remainder target must be a distinct value from n.  It will panic if the
// divisor is zero.
func (n *Uint4096) DivMod(divisor, rem *Uint4096) *Uint4096 {
	if divisor.IsZero() {
		panic("division by zero")
	}
	var q, r Uint4096
	udivrem(q.n[:], r.n[:], n.n[:], divisor.n[:])
	n.n = q.n
	rem.n = r.n
	return n
}

// Negate negates the uint4096 modulo 2^4096 such that it is the twos
// complement of its previous value and returns it.
func (n *Uint4096) Negate() *Uint4096 {
	negateWords(n.n[:])
	return n
}

// Not computes the bitwise not of the uint4096 and returns it.
func (n *Uint4096) Not() *Uint4096 {
	notWords(n.n[:])
	return n
}

// Lsh shifts the uint4096 to the left by the given number of bits, discarding
// those shifted beyond 2^4096, and returns it.
func (n *Uint4096) Lsh(bits uint32) *Uint4096 {
	lshWords(n.n[:], n.n[:], bits)
	return n
}

// LshVal shifts the passed uint4096 to the left by the given number of bits,
// stores the result in n, and returns it.
func (n *Uint4096) LshVal(n2 *Uint4096, bits uint32) *Uint4096 {
	lshWords(n.n[:], n2.n[:], bits)
	return n
}

// Rsh shifts the uint4096 to the right by the given number of bits and returns
// it.
func (n *Uint4096) Rsh(bits uint32) *Uint4096 {
	rshWords(n.n[:], n.n[:], bits)
	return n
}

// RshVal shifts the passed uint4096 to the right by the given number of bits,
// stores the result in n, and returns it.
func (n *Uint4096) RshVal(n2 *Uint4096, bits uint32) *Uint4096 {
	rshWords(n.n[:], n2.n[:], bits)
	return n
}

// BitLen returns the minimum number of bits required to represent the uint4096.
func (n *Uint4096) BitLen() int {
	return bitLenWords(n.n[:])
}

// String returns the uint4096 as a human-readable decimal string.
func (n *Uint4096) String() string {
	return stringWords(n.n[:])
}

// Text returns the textual representation of the uint4096 in the given base
// which must be between 2 and 36 inclusive.
func (n *Uint4096) Text(base int) string {
	return textWords(n.n[:], base)
}

// Format implements fmt.Formatter.  See the Uint256 variant for the accepted
// verbs.
func (n *Uint4096) Format(f fmt.State, verb rune) {
	formatWords(f, verb, n.n[:])
}
