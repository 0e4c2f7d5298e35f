// Copyright (c) 2025-2026 The intx developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package intx

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"lukechampine.com/uint128"
)

// References:
//   [MCA]: Modern Computer Arithmetic, Section 1.7: Base Conversion
//     (Brent, Zimmermann)
//     https://arxiv.org/abs/1004.4710

// setByteSliceWords interprets the provided big endian bytes modulo the width
// of the word array and stores the result in x.  Only the trailing bytes that
// fit the width contribute when the slice is longer than the width.
func setByteSliceWords(x []uint64, b []byte) {
	if len(b) > len(x)*8 {
		b = b[len(b)-len(x)*8:]
	}
	zeroWords(x)
	i := 0
	for ; len(b) >= 8; i++ {
		x[i] = binary.BigEndian.Uint64(b[len(b)-8:])
		b = b[:len(b)-8]
	}
	if len(b) > 0 {
		var w uint64
		for _, c := range b {
			w = w<<8 | uint64(c)
		}
		x[i] = w
	}
}

// putBytesWords unpacks the word array x to the provided byte slice as
// unmodified big endian bytes.  The byte slice must be exactly 8 times the
// word count.
func putBytesWords(b []byte, x []uint64) {
	n := len(x)
	for i := 0; i < n; i++ {
		binary.BigEndian.PutUint64(b[(n-1-i)*8:], x[i])
	}
}

// setBigWords stores v reduced modulo the width of the word array in x.
// Negative values are treated per their twos complement, so for example -1
// becomes the all-bits-set value of the width.
//
// The reduction goes through a big integer mask so the behavior does not
// depend on the platform specific big.Word size.
func setBigWords(x []uint64, v *big.Int) {
	var tmp big.Int
	tmp.And(v, bigWidthMask(len(x)))

	var buf [maxWords * 8]byte
	b := buf[:len(x)*8]
	tmp.FillBytes(b)
	setByteSliceWords(x, b)
}

// putBigWords stores the value of the word array x in the provided big
// integer.
func putBigWords(v *big.Int, x []uint64) {
	var buf [maxWords * 8]byte
	b := buf[:len(x)*8]
	putBytesWords(b, x)
	v.SetBytes(b)
}

// Masks of the form 2^N - 1 for each supported width, indexed by word count.
var widthMasks = func() map[int]*big.Int {
	masks := make(map[int]*big.Int)
	one := big.NewInt(1)
	for _, words := range []int{4, 8, 16, 32, 64} {
		mask := new(big.Int).Lsh(one, uint(words)*64)
		masks[words] = mask.Sub(mask, one)
	}
	return masks
}()

// bigWidthMask returns the mask 2^N - 1 for the width with the given word
// count.  The mask must not be modified.
func bigWidthMask(words int) *big.Int {
	mask := widthMasks[words]
	if mask == nil {
		// Conversion helpers only run behind the fixed width types, so
		// only their word counts ever reach here.
		panic(fmt.Sprintf("no mask for width of %d words", words))
	}
	return mask
}

// maxDecimalDigits is the length of the decimal expansion of the maximum
// supported value, ceil(4096 * log10(2)).
const maxDecimalDigits = 1234

// stringWords returns the value of the word array x as a base 10 string.
//
// The conversion is the classical repeated division described in [MCA].  It
// chops 19 decimal digits off the value per pass by dividing it by 10^19,
// the largest power of 10 that fits into a word.  That divisor conveniently
// has its most significant bit set, so each pass is a plain run of the
// reciprocal word division with no normalization shift.
func stringWords(x []uint64) string {
	n := sigWords(x)
	if n == 0 {
		return "0"
	}

	var un [maxWords]uint64
	copy(un[:], x[:n])

	var buf [maxDecimalDigits]byte
	for i := range buf {
		buf[i] = '0'
	}

	const pow10d19 = uint64(1e19)
	reciprocal := reciprocal2by1(pow10d19)
	for i := len(buf); ; i -= 19 {
		var rem uint64
		for j := n - 1; j >= 0; j-- {
			un[j], rem = udivrem2by1(uint128.New(un[j], rem), pow10d19, reciprocal)
		}
		for n > 0 && un[n-1] == 0 {
			n--
		}

		var digits int
		for ; rem != 0; rem /= 10 {
			digits++
			buf[i-digits] += byte(rem % 10)
		}
		if n == 0 {
			return string(buf[i-digits:])
		}
	}
}

// textWords returns the value of the word array x as a string in the given
// base which must be between 2 and 36 inclusive.
func textWords(x []uint64, base int) string {
	if base < 2 || base > 36 {
		panic(fmt.Sprintf("invalid base %d for text conversion", base))
	}
	if base == 10 {
		return stringWords(x)
	}
	var v big.Int
	putBigWords(&v, x)
	return v.Text(base)
}

// formatWords implements fmt.Formatter support for the word array x by
// deferring to the big integer implementation which already supports all of
// the relevant verbs and flags.
func formatWords(f fmt.State, verb rune, x []uint64) {
	var v big.Int
	putBigWords(&v, x)
	v.Format(f, verb)
}
