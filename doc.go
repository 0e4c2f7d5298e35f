// Copyright (c) 2024-2026 The intx developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package intx implements highly optimized fixed precision unsigned integer
arithmetic for the power-of-two widths from 256 up to 4096 bits.

Each width is provided as its own value type (Uint256, Uint512, Uint1024,
Uint2048, and Uint4096) backed by an array of 64-bit words.  All operations
are performed modulo 2^N for the relevant width N, so callers may rely on
"wrap around" semantics.  The types are designed to be stack allocated and
copied by value with no internal pointers, so none of the operations
allocate on the heap.

# Arithmetic model

Every type shares a single word-array arithmetic kernel, so the behavior of
an operation is identical at every width.  The most involved part of that
kernel is division.  Quotient and remainder are produced together by a
routing routine that normalizes both operands and then selects one of three
strategies based on the number of significant divisor words:

  - a single reciprocal word division loop for 1-word divisors
  - a 128-bit reciprocal division loop for 2-word divisors
  - the classical multi-word long division (Knuth Algorithm D) with
    reciprocal-based quotient digit estimation for everything larger

The reciprocal machinery follows the approach described by Möller and
Granlund in "Improved division by invariant integers", which bounds the
quotient digit estimation error such that at most a single correction step
is ever required.

# Division semantics

Div, DivVal, Mod, ModVal, and DivMod panic when the divisor is zero,
mirroring the behavior of the standard library math/big package.  The quotient and the remainder
always retain the full width of their operands regardless of the magnitude
of the result.
*/
package intx
