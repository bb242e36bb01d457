package qx

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/misc-programming/miscp-base64/common/encode/base16"
	"github.com/misc-programming/miscp-base64/metrics"
	gometrics "github.com/rcrowley/go-metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToBase64(t *testing.T) {
	tests := []struct {
		hex    string
		base64 string
	}{
		{"", ""},
		{"4d616e", "TWFu"},
		{"4d61", "TWE="},
		{"4d", "TQ=="},
		{"4D616E", "TWFu"},
		{"e768a120717569636b2062726f776e20666f78206a756d7073206f766572203133206c617a7920646f67732e",
			"52ihIHF1aWNrIGJyb3duIGZveCBqdW1wcyBvdmVyIDEzIGxhenkgZG9ncy4="},
	}
	for _, test := range tests {
		s, err := HexToBase64(test.hex)
		require.NoError(t, err, test.hex)
		assert.Equal(t, test.base64, s)
	}
}

func TestHexToBase64Errors(t *testing.T) {
	_, err := HexToBase64("4d6")
	assert.True(t, base16.IsErrorCode(err, base16.ErrInvalidLength))

	_, err = HexToBase64("4dxx")
	assert.True(t, base16.IsErrorCode(err, base16.ErrInvalidHexDigit))

	// the prefix is only removed by NormalizeHex
	_, err = HexToBase64("0x4d")
	assert.True(t, base16.IsErrorCode(err, base16.ErrInvalidHexDigit))
}

func TestNormalizeHex(t *testing.T) {
	assert.Equal(t, "4d61", NormalizeHex("  0x4d61\n"))
	assert.Equal(t, "4D61", NormalizeHex("0X4D61"))
	assert.Equal(t, "4d61", NormalizeHex("4d61"))
	assert.Equal(t, "", NormalizeHex(" \t"))
}

func TestConvertLines(t *testing.T) {
	in := strings.NewReader("4d616e\n\n  0x4d61  \r\n4d\n")
	var out bytes.Buffer
	require.NoError(t, ConvertLines(in, &out))
	assert.Equal(t, "TWFu\nTWE=\nTQ==\n", out.String())
}

func TestConvertLinesError(t *testing.T) {
	in := strings.NewReader("4d616e\n4d6\n4d\n")
	var out bytes.Buffer
	err := ConvertLines(in, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.True(t, base16.IsErrorCode(err, base16.ErrInvalidLength))
	assert.Equal(t, "TWFu\n", out.String())
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

func TestConvertLinesWriteError(t *testing.T) {
	err := ConvertLines(strings.NewReader("4d\n"), failWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestHexToBase64Metrics(t *testing.T) {
	metrics.Enable()
	defer func() { metrics.Enabled = false }()

	inputs := metrics.NewCounter("qx/base64/inputs").Count()
	failures := metrics.NewCounter("qx/base64/failures").Count()

	HexToBase64("4d616e")
	HexToBase64("4d6")

	assert.Equal(t, inputs+2, metrics.NewCounter("qx/base64/inputs").Count())
	assert.Equal(t, failures+1, metrics.NewCounter("qx/base64/failures").Count())
	assert.NotNil(t, gometrics.DefaultRegistry.Get("qx/base64/bytes"))
	assert.NotNil(t, gometrics.DefaultRegistry.Get("qx/base64/time"))
}

func ExampleBase64Encode() {
	Base64Encode("4d616e")
	Base64Encode(" 0x4d61\n")
	// Output:
	// TWFu
	// TWE=
}
