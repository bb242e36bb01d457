// Copyright 2017-2018 The qitmeer developers

package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexPrefix(t *testing.T) {
	tests := []struct {
		in       string
		prefixed bool
		trimmed  string
	}{
		{"", false, ""},
		{"0", false, "0"},
		{"0x", true, ""},
		{"0x4d61", true, "4d61"},
		{"0X4D61", true, "4D61"},
		{"4d61", false, "4d61"},
		{"x04d", false, "x04d"},
	}
	for _, test := range tests {
		assert.Equal(t, test.prefixed, HasHexPrefix(test.in), test.in)
		assert.Equal(t, test.trimmed, TrimHexPrefix(test.in), test.in)
	}
}
