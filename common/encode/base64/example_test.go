// Copyright (c) 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base64_test

import (
	"fmt"

	"github.com/misc-programming/miscp-base64/common/encode/base64"
)

// This example demonstrates the three shapes of a final group.
func ExampleEncodeToString() {
	for _, s := range []string{"Man", "Ma", "M"} {
		fmt.Println(base64.EncodeToString([]byte(s)))
	}

	// Output:
	// TWFu
	// TWE=
	// TQ==
}
