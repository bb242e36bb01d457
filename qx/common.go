// Copyright 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package qx

import (
	"fmt"
	"os"
)

// ErrExit prints err to stderr and terminates the process with status 1.
func ErrExit(err error) {
	fmt.Fprintf(os.Stderr, "Qx Error : %q\n", err)
	os.Exit(1)
}
