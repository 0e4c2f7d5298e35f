// Copyright (c) 2024-2026 The intx developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package intx_test

import (
	"fmt"

	"github.com/jafar75/intx"
)

// This example demonstrates dividing the maximum 256-bit value by the
// largest power of ten that fits into 128 bits and printing both outputs of
// the division.
func Example_basicUsage() {
	max := new(intx.Uint256).Not()
	ten19 := new(intx.Uint256).SetUint64(1e19)
	divisor := new(intx.Uint256).Set(ten19).Mul(ten19)

	var rem intx.Uint256
	quotient := max.DivMod(divisor, &rem)
	fmt.Println("quotient:", quotient)
	fmt.Println("remainder:", &rem)

	// Output:
	// quotient: 1157920892373161954235709850086879078532
	// remainder: 69984665640564039457584007913129639935
}

// This example demonstrates calculating the quotient and remainder of a
// division in a single call.
func ExampleUint256_DivMod() {
	n := new(intx.Uint256).SetUint64(255)
	divisor := new(intx.Uint256).SetUint64(7)

	var rem intx.Uint256
	quotient := n.DivMod(divisor, &rem)
	fmt.Printf("255 / 7 = %v remainder %v\n", quotient, &rem)

	// Output:
	// 255 / 7 = 36 remainder 3
}

// This example demonstrates formatting a uint256 via the supported fmt
// verbs.
func ExampleUint256_Format() {
	n := new(intx.Uint256).SetUint64(0xdeadbeef)
	fmt.Printf("%v %d %x %#x\n", n, n, n, n)

	// Output:
	// 3735928559 3735928559 deadbeef 0xdeadbeef
}
