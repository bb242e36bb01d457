// Copyright (c) 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base16

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorCode identifies a kind of error.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrInvalidLength indicates the hex string has an odd number of
	// characters, so it cannot be split into whole bytes.
	ErrInvalidLength ErrorCode = iota

	// ErrInvalidHexDigit indicates a two character group contains a
	// character outside 0-9, a-f and A-F.
	ErrInvalidHexDigit
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrInvalidLength:   "ErrInvalidLength",
	ErrInvalidHexDigit: "ErrInvalidHexDigit",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error identifies a malformed hex input.  The caller can use type
// assertions (or IsErrorCode) to access the ErrorCode field and ascertain
// the specific reason.
type Error struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

func decodeError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}

// IsErrorCode returns whether err, or the cause of a wrapped err, is an
// Error with the given code.
func IsErrorCode(err error, c ErrorCode) bool {
	e, ok := errors.Cause(err).(Error)
	return ok && e.ErrorCode == c
}
