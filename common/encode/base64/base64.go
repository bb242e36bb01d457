// Copyright (c) 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package base64 implements the standard base64 encoding of RFC 4648
// (the "+/" alphabet with "=" padding).
//
// Every 3 input bytes become 4 output characters. A final group of 1 or 2
// bytes is still written as 4 characters, the unused positions being filled
// with the padding character.
package base64

// Alphabet maps each 6 bit value to its output character.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// Pad fills the unused characters of a short final group.
const Pad = '='

// AssertError identifies an internal code consistency issue in the encoder.
// It is only ever raised through panic and should be treated as a critical
// and unrecoverable error.
type AssertError string

// Error returns the assertion error as a human-readable string and satisfies
// the error interface.
func (e AssertError) Error() string {
	return "assertion failed: " + string(e)
}

// EncodedLen returns the length in bytes of the base64 encoding of an input
// buffer of length n.
func EncodedLen(n int) int {
	return (n + 2) / 3 * 4
}

// Encode writes the base64 encoding of src to dst. It writes
// EncodedLen(len(src)) bytes, so dst must be at least that long.
func Encode(dst, src []byte) {
	di := 0
	for si := 0; si < len(src); si += 3 {
		end := si + 3
		if end > len(src) {
			end = len(src)
		}
		encodeChunk(dst[di:di+4], src[si:end])
		di += 4
	}
}

// EncodeToString returns the base64 encoding of src.
func EncodeToString(src []byte) string {
	if len(src) == 0 {
		return ""
	}
	buf := make([]byte, EncodedLen(len(src)))
	Encode(buf, src)
	return string(buf)
}

// encodeChunk writes the 4 characters for one group of 1 to 3 bytes.
func encodeChunk(dst, chunk []byte) {
	switch len(chunk) {
	case 3:
		b0, b1, b2 := chunk[0], chunk[1], chunk[2]
		dst[0] = sextet(b0 >> 2)
		dst[1] = sextet((b0&0x03)<<4 | b1>>4)
		dst[2] = sextet((b1&0x0f)<<2 | b2>>6)
		dst[3] = sextet(b2 & 0x3f)
	case 2:
		b0, b1 := chunk[0], chunk[1]
		dst[0] = sextet(b0 >> 2)
		dst[1] = sextet((b0&0x03)<<4 | b1>>4)
		dst[2] = sextet((b1 & 0x0f) << 2)
		dst[3] = Pad
	case 1:
		b0 := chunk[0]
		dst[0] = sextet(b0 >> 2)
		dst[1] = sextet((b0 & 0x03) << 4)
		dst[2] = Pad
		dst[3] = Pad
	}
}

// sextet returns the alphabet character for a 6 bit value.
func sextet(v byte) byte {
	if v >= byte(len(Alphabet)) {
		panic(AssertError("sextet out of range"))
	}
	return Alphabet[v]
}
