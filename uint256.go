// Copyright (c) 2024-2025 The intx developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package intx

import (
	"fmt"
	"math/big"
)

// Uint256 implements high-performance, zero-allocation, unsigned 256-bit
// fixed-precision arithmetic.  All operations are performed modulo 2^256, so
// callers may rely on "wrap around" semantics.
//
// It implements the primary arithmetic operations (addition, subtraction,
// multiplication, squaring, division, negation), bitwise operations (lsh,
// rsh, not),
// comparison operations (equals, less, greater, cmp), interpreting and
// producing big and little endian bytes, and other convenience methods such
// as determining the minimum number of bits required to represent the
// current value, whether or not the value can be represented as a uint64
// without loss of precision, and text formatting with base conversion.
type Uint256 struct {
	// The uint256 is represented as 4 unsigned 64-bit integers in base 2^64.
	//
	// The following depicts the internal representation:
	//
	//  --------------------------------------------------------------------
	// |      n[3]      |      n[2]      |      n[1]      |      n[0]      |
	// | 64 bits        | 64 bits        | 64 bits        | 64 bits        |
	// | Mult: 2^(64*3) | Mult: 2^(64*2) | Mult: 2^(64*1) | Mult: 2^(64*0) |
	//  -------------------------------------------------------------------
	//
	// For example, consider the number:
	//  0x0000000000000000080000000000000000000000000001000000000000000001 =
	//  2^187 + 2^72 + 1
	//
	// It would be represented as:
	//  n[0] = 1
	//  n[1] = 2^8
	//  n[2] = 2^59
	//  n[3] = 0
	n [4]uint64
}

// Set sets the uint256 equal to the same value as the passed one.
//
// The uint256 is returned to support chaining.  This enables syntax like:
// n := new(Uint256).Set(n2).AddUint64(1) so that n = n2 + 1 where n2 is not
// modified.
func (n *Uint256) Set(n2 *Uint256) *Uint256 {
	*n = *n2
	return n
}

// SetUint64 sets the uint256 to the passed unsigned 64-bit integer.  This is
// a convenience function since it is fairly common to perform arithmetic
// with small native integers.
//
// The uint256 is returned to support chaining.  This enables syntax like:
// n := new(Uint256).SetUint64(2).Mul(n2) so that n = 2 * n2.
func (n *Uint256) SetUint64(n2 uint64) *Uint256 {
	n.n = [4]uint64{n2, 0, 0, 0}
	return n
}

// SetBytes interprets the provided array as a 256-bit big-endian unsigned
// integer and sets the uint256 to the result.
//
// The uint256 is returned to support chaining.  This enables syntax like:
// n := new(Uint256).SetBytes(n2Bytes).AddUint64(1) so that n = n2 + 1.
func (n *Uint256) SetBytes(b *[32]byte) *Uint256 {
	setByteSliceWords(n.n[:], b[:])
	return n
}

// SetByteSlice interprets the provided slice as a 256-bit big-endian
// unsigned integer (meaning it is truncated to the lowest 32 bytes so that
// it is modulo 2^256), and sets the uint256 to the result.
//
// The uint256 is returned to support chaining.  This enables syntax like:
// n := new(Uint256).SetByteSlice(n2Slice).AddUint64(1) so that n = n2 + 1.
func (n *Uint256) SetByteSlice(b []byte) *Uint256 {
	setByteSliceWords(n.n[:], b)
	return n
}

// SetBig sets the uint256 to the passed standard library big integer modulo
// 2^256.
//
// Note that negative values are converted per their twos complement, so for
// example -1 becomes the max value of 2^256 - 1.
//
// The uint256 is returned to support chaining.  This enables syntax like:
// n := new(Uint256).SetBig(n2).AddUint64(1) so that n = n2 + 1.
func (n *Uint256) SetBig(n2 *big.Int) *Uint256 {
	setBigWords(n.n[:], n2)
	return n
}

// Zero sets the uint256 to zero.  A newly created uint256 is already set to
// zero.  This function can be useful to clear an existing uint256 for reuse.
func (n *Uint256) Zero() {
	n.n = [4]uint64{0, 0, 0, 0}
}

// Bytes returns the bytes of the uint256 as a 256-bit big-endian byte array.
func (n *Uint256) Bytes() [32]byte {
	var b [32]byte
	putBytesWords(b[:], n.n[:])
	return b
}

// PutBytes unpacks the uint256 to a 256-bit big-endian value directly into
// the passed byte array.
//
// This method is just a helper for callers who want to avoid an allocation
// when a 32-byte array is already available.
func (n *Uint256) PutBytes(b *[32]byte) {
	putBytesWords(b[:], n.n[:])
}

// PutBytesUnchecked unpacks the uint256 to a 256-bit big-endian value
// directly into the passed byte slice.  The target slice must have at least
// 32 bytes available or it will panic.
func (n *Uint256) PutBytesUnchecked(b []byte) {
	putBytesWords(b[:32], n.n[:])
}

// Uint64 returns the uint64 representation of the value.  In other words, it
// returns the low-order 64 bits of the value, which can result in loss of
// precision for values that exceed a uint64.  Callers should make use of
// IsUint64 when the exact value is required.
func (n *Uint256) Uint64() uint64 {
	return n.n[0]
}

// ToBig returns the value as a standard library big integer.
//
// Note that the returned value involves allocations, so callers that are
// able to stay in this package should make use of PutBig with a reused big
// integer instead.
func (n *Uint256) ToBig() *big.Int {
	var v big.Int
	putBigWords(&v, n.n[:])
	return &v
}

// PutBig sets the passed existing standard library big integer to the value.
//
// This method is just a helper for callers who want to reuse an existing big
// integer to avoid the allocations of ToBig.
func (n *Uint256) PutBig(v *big.Int) {
	putBigWords(v, n.n[:])
}

// IsZero returns whether or not the uint256 is equal to zero.
func (n *Uint256) IsZero() bool {
	return isZeroWords(n.n[:])
}

// IsOdd returns whether or not the uint256 is odd.
func (n *Uint256) IsOdd() bool {
	return n.n[0]&1 == 1
}

// IsUint64 returns whether or not the uint256 can be converted to a uint64
// without any loss of precision.  In other words, 0 <= n < 2^64.
func (n *Uint256) IsUint64() bool {
	return isZeroWords(n.n[1:])
}

// Eq returns whether or not the two uint256s represent the same value.
func (n *Uint256) Eq(n2 *Uint256) bool {
	return eqWords(n.n[:], n2.n[:])
}

// Lt returns whether or not the uint256 is less than the given one.  That
// is, it returns true when n < n2.
func (n *Uint256) Lt(n2 *Uint256) bool {
	return ltWords(n.n[:], n2.n[:])
}

// Gt returns whether or not the uint256 is greater than the given one.  That
// is, it returns true when n > n2.
func (n *Uint256) Gt(n2 *Uint256) bool {
	return ltWords(n2.n[:], n.n[:])
}

// Cmp compares the two uint256s and returns -1, 0, or 1 depending on whether
// the uint256 is less than, equal to, or greater than the given one.
func (n *Uint256) Cmp(n2 *Uint256) int {
	return cmpWords(n.n[:], n2.n[:])
}

// CmpUint64 compares the uint256 with the given unsigned 64-bit integer and
// returns -1, 0, or 1 depending on whether the uint256 is less than, equal
// to, or greater than it.
func (n *Uint256) CmpUint64(n2 uint64) int {
	return cmpWordsUint64(n.n[:], n2)
}

// Add adds the passed uint256 to the existing one modulo 2^256 and stores
// the result in n.
//
// The uint256 is returned to support chaining.  This enables syntax like:
// n.Add(n2).AddUint64(1) so that n = n + n2 + 1.
func (n *Uint256) Add(n2 *Uint256) *Uint256 {
	addWords(n.n[:], n.n[:], n2.n[:])
	return n
}

// AddUint64 adds the passed unsigned 64-bit integer to the existing uint256
// modulo 2^256 and stores the result in n.
//
// The uint256 is returned to support chaining.  This enables syntax like:
// n.AddUint64(2).MulUint64(2) so that n = (n + 2) * 2.
func (n *Uint256) AddUint64(n2 uint64) *Uint256 {
	addWord(n.n[:], n2)
	return n
}

// Sub subtracts the passed uint256 from the existing one modulo 2^256 and
// stores the result in n.
//
// The uint256 is returned to support chaining.  This enables syntax like:
// n.Sub(n2).SubUint64(1) so that n = n - n2 - 1.
func (n *Uint256) Sub(n2 *Uint256) *Uint256 {
	subWords(n.n[:], n.n[:], n2.n[:])
	return n
}

// SubUint64 subtracts the passed unsigned 64-bit integer from the existing
// uint256 modulo 2^256 and stores the result in n.
//
// The uint256 is returned to support chaining.  This enables syntax like:
// n.SubUint64(1).MulUint64(3) so that n = (n - 1) * 3.
func (n *Uint256) SubUint64(n2 uint64) *Uint256 {
	subWord(n.n[:], n2)
	return n
}

// Mul multiplies the passed uint256 with the existing one modulo 2^256 and
// stores the result in n.
//
// The uint256 is returned to support chaining.  This enables syntax like:
// n.Mul(n2).AddUint64(1) so that n = (n * n2) + 1.
func (n *Uint256) Mul(n2 *Uint256) *Uint256 {
	var product [4]uint64
	mulWords(product[:], n.n[:], n2.n[:])
	n.n = product
	return n
}

// MulUint64 multiplies the passed unsigned 64-bit integer with the existing
// uint256 modulo 2^256 and stores the result in n.
//
// The uint256 is returned to support chaining.  This enables syntax like:
// n.MulUint64(2).Add(n2) so that n = 2 * n + n2.
func (n *Uint256) MulUint64(n2 uint64) *Uint256 {
	mulWord(n.n[:], n2)
	return n
}

// SquareVal squares the passed uint256 modulo 2^256 and stores the result in
// n without modifying the passed one.
//
// The uint256 is returned to support chaining.  This enables syntax like:
// n.SquareVal(n2).Mul(n2) so that n = n2^2 * n2 = n2^3.
func (n *Uint256) SquareVal(n2 *Uint256) *Uint256 {
	var product [4]uint64
	mulWords(product[:], n2.n[:], n2.n[:])
	n.n = product
	return n
}

// Square squares the uint256 modulo 2^256 and stores the result in n.
//
// The uint256 is returned to support chaining.  This enables syntax like:
// n.Square().Mul(n2) so that n = n^2 * n2.
func (n *Uint256) Square() *Uint256 {
	var product [4]uint64
	mulWords(product[:], n.n[:], n.n[:])
	n.n = product
	return n
}

// Div divides the uint256 by the passed one and stores the quotient in n.
// It will panic if the divisor is zero.
//
// The uint256 is returned to support chaining.  This enables syntax like:
// n.Div(n2).AddUint64(1) so that n = (n / n2) + 1.
func (n *Uint256) Div(divisor *Uint256) *Uint256 {
	if divisor.IsZero() {
		panic("division by zero")
	}
	var quot, rem Uint256
	udivrem(quot.n[:], rem.n[:], n.n[:], divisor.n[:])
	n.n = quot.n
	return n
}

// DivVal divides the passed dividend by the passed divisor and stores the
// quotient in n without modifying the passed values.  It will panic if the
// divisor is zero.
//
// The uint256 is returned to support chaining.  This enables syntax like:
// n.DivVal(n2, n3).AddUint64(1) so that n = (n2 / n3) + 1.
func (n *Uint256) DivVal(dividend, divisor *Uint256) *Uint256 {
	if divisor.IsZero() {
		panic("division by zero")
	}
	var quot, rem Uint256
	udivrem(quot.n[:], rem.n[:], dividend.n[:], divisor.n[:])
	n.n = quot.n
	return n
}

// Mod computes the remainder of dividing the uint256 by the passed one and
// stores the result in n.  It will panic if the divisor is zero.
//
// The uint256 is returned to support chaining.  This enables syntax like:
// n.Mod(n2).AddUint64(1) so that n = (n % n2) + 1.
func (n *Uint256) Mod(divisor *Uint256) *Uint256 {
	if divisor.IsZero() {
		panic("division by zero")
	}
	var quot, rem Uint256
	udivrem(quot.n[:], rem.n[:], n.n[:], divisor.n[:])
	n.n = rem.n
	return n
}

// ModVal computes the remainder of dividing the passed dividend by the passed
// divisor and stores the result in n without modifying the passed values.  It
// will panic if the divisor is zero.
//
// The uint256 is returned to support chaining.  This enables syntax like:
// n.ModVal(n2, n3).AddUint64(1) so that n = (n2 % n3) + 1.
func (n *Uint256) ModVal(dividend, divisor *Uint256) *Uint256 {
	if divisor.IsZero() {
		panic("division by zero")
	}
	var quot, rem Uint256
	udivrem(quot.n[:], rem.n[:], dividend.n[:], divisor.n[:])
	n.n = rem.n
	return n
}

// DivMod divides the uint256 by the passed one, stores the quotient in n,
// and stores the remainder in the passed rem.  Both results are produced by
// a single division pass.  It will panic if the divisor is zero.
//
// The remainder target must be a distinct value from n.
//
// The uint256 is returned to support chaining.  This enables syntax like:
// n.DivMod(n2, rem).AddUint64(1) so that n = (n / n2) + 1.
func (n *Uint256) DivMod(divisor, rem *Uint256) *Uint256 {
	if divisor.IsZero() {
		panic("division by zero")
	}
	var q, r Uint256
	udivrem(q.n[:], r.n[:], n.n[:], divisor.n[:])
	n.n = q.n
	rem.n = r.n
	return n
}

// Negate negates the uint256 modulo 2^256 such that it is the twos
// complement of its previous value and stores the result in n.
//
// The uint256 is returned to support chaining.  This enables syntax like:
// n.Negate().AddUint64(1) so that n = -n + 1.
func (n *Uint256) Negate() *Uint256 {
	negateWords(n.n[:])
	return n
}

// Not computes the bitwise not of the uint256 and stores the result in n.
//
// The uint256 is returned to support chaining.  This enables syntax like:
// n.Not().AddUint64(1) so that n = ^n + 1.
func (n *Uint256) Not() *Uint256 {
	notWords(n.n[:])
	return n
}

// Lsh shifts the uint256 to the left by the given number of bits and stores
// the result in n.  Note that, unlike the standard library big integers, it
// does not grow the value, so bits shifted beyond 2^256 are discarded.
//
// The uint256 is returned to support chaining.  This enables syntax like:
// n.Lsh(2).AddUint64(1) so that n = (n << 2) + 1.
func (n *Uint256) Lsh(bits uint32) *Uint256 {
	lshWords(n.n[:], n.n[:], bits)
	return n
}

// LshVal shifts the passed uint256 to the left by the given number of bits
// and stores the result in n without modifying the passed one.  Bits shifted
// beyond 2^256 are discarded.
//
// The uint256 is returned to support chaining.  This enables syntax like:
// n.LshVal(n2, 2).AddUint64(1) so that n = (n2 << 2) + 1.
func (n *Uint256) LshVal(n2 *Uint256, bits uint32) *Uint256 {
	lshWords(n.n[:], n2.n[:], bits)
	return n
}

// Rsh shifts the uint256 to the right by the given number of bits and stores
// the result in n.
//
// The uint256 is returned to support chaining.  This enables syntax like:
// n.Rsh(2).AddUint64(1) so that n = (n >> 2) + 1.
func (n *Uint256) Rsh(bits uint32) *Uint256 {
	rshWords(n.n[:], n.n[:], bits)
	return n
}

// RshVal shifts the passed uint256 to the right by the given number of bits
// and stores the result in n without modifying the passed one.
//
// The uint256 is returned to support chaining.  This enables syntax like:
// n.RshVal(n2, 2).AddUint64(1) so that n = (n2 >> 2) + 1.
func (n *Uint256) RshVal(n2 *Uint256, bits uint32) *Uint256 {
	rshWords(n.n[:], n2.n[:], bits)
	return n
}

// BitLen returns the minimum number of bits required to represent the
// uint256.  The result is 0 when the value is 0.
func (n *Uint256) BitLen() int {
	return bitLenWords(n.n[:])
}

// String returns the uint256 as a human-readable decimal string.
func (n *Uint256) String() string {
	return stringWords(n.n[:])
}

// Text returns the textual representation of the uint256 in the given base
// which must be between 2 and 36 inclusive.  It will panic for any other
// base.
func (n *Uint256) Text(base int) string {
	return textWords(n.n[:], base)
}

// Format implements fmt.Formatter.  It accepts the formats 'b' (binary), 'o'
// (octal with 0 prefix), 'O' (octal with 0o prefix), 'd' (decimal), 'x'
// (lowercase hexadecimal), 'X' (uppercase hexadecimal), 's' (decimal), and
// 'v' (decimal) along with the full suite of the fmt package flags for
// integral types.
func (n *Uint256) Format(f fmt.State, verb rune) {
	formatWords(f, verb, n.n[:])
}
