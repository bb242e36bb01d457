// Copyright 2017-2018 The qitmeer developers

package util

import (
	cryptorand "crypto/rand"
	"io"
)

// ReadSizedRand returns size bytes read from rand, or from crypto/rand when
// rand is nil.  It panics if the reader runs dry.
func ReadSizedRand(rand io.Reader, size uint) []byte {
	buf := make([]byte, size)
	if rand == nil {
		rand = cryptorand.Reader
	}
	if _, err := io.ReadFull(rand, buf); err != nil {
		panic("reading random bytes failed: " + err.Error())
	}
	return buf
}
