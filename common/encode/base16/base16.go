// Copyright (c) 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package base16 converts between hexadecimal text and bytes.
package base16

import (
	"fmt"
)

const hextable = "0123456789abcdef"

// DecodedLen returns the number of bytes encoded by n hex digits.
func DecodedLen(n int) int { return n / 2 }

// Decode returns the bytes represented by the hexadecimal string s.
// Upper and lower case digits are both accepted; nothing else is, so a
// prefix such as "0x" must be removed by the caller.
func Decode(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		str := fmt.Sprintf("hex string length must be a multiple of 2, got %d", len(s))
		return nil, decodeError(ErrInvalidLength, str)
	}
	dst := make([]byte, DecodedLen(len(s)))
	for i := range dst {
		hi, ok1 := fromHexChar(s[i*2])
		lo, ok2 := fromHexChar(s[i*2+1])
		if !ok1 || !ok2 {
			str := fmt.Sprintf("invalid hex byte %q at offset %d", s[i*2:i*2+2], i*2)
			return nil, decodeError(ErrInvalidHexDigit, str)
		}
		dst[i] = hi<<4 | lo
	}
	return dst, nil
}

// MustDecode is like Decode but panics if s is not valid hex. It is
// intended for tests and hard coded values.
func MustDecode(s string) []byte {
	b, err := Decode(s)
	if err != nil {
		panic(err)
	}
	return b
}

// Encode returns the lowercase hexadecimal encoding of b.
func Encode(b []byte) string {
	dst := make([]byte, len(b)*2)
	for i, v := range b {
		dst[i*2] = hextable[v>>4]
		dst[i*2+1] = hextable[v&0x0f]
	}
	return string(dst)
}

func fromHexChar(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
