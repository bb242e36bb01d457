// Copyright (c) 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base16_test

import (
	"fmt"

	"github.com/misc-programming/miscp-base64/common/encode/base16"
)

// This example demonstrates how to decode hex encoded data.
func ExampleDecode() {
	decoded, err := base16.Decode("4d616e")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("Decoded Data:", string(decoded))

	// Output:
	// Decoded Data: Man
}

// This example demonstrates how to tell the two kinds of malformed input
// apart.
func ExampleIsErrorCode() {
	for _, s := range []string{"4d6", "4dzz"} {
		_, err := base16.Decode(s)
		switch {
		case base16.IsErrorCode(err, base16.ErrInvalidLength):
			fmt.Println("length:", err)
		case base16.IsErrorCode(err, base16.ErrInvalidHexDigit):
			fmt.Println("digit:", err)
		}
	}

	// Output:
	// length: hex string length must be a multiple of 2, got 3
	// digit: invalid hex byte "zz" at offset 2
}
