// Copyright 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package qx

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/misc-programming/miscp-base64/common/encode/base16"
	"github.com/misc-programming/miscp-base64/common/encode/base64"
	"github.com/misc-programming/miscp-base64/common/util"
	l "github.com/misc-programming/miscp-base64/log"
	"github.com/misc-programming/miscp-base64/metrics"
	"github.com/pkg/errors"
)

// maxLineSize bounds a single line read by ConvertLines.
const maxLineSize = 16 * 1024 * 1024

// NormalizeHex trims surrounding whitespace and an optional 0x prefix.
func NormalizeHex(input string) string {
	return util.TrimHexPrefix(strings.TrimSpace(input))
}

// HexToBase64 converts a hex string to its standard base64 encoding. Errors
// from the hex parser are returned unwrapped so they can be inspected with
// base16.IsErrorCode.
func HexToBase64(input string) (string, error) {
	defer metrics.NewTimer("qx/base64/time").UpdateSince(time.Now())
	metrics.NewCounter("qx/base64/inputs").Inc(1)

	data, err := base16.Decode(input)
	if err != nil {
		metrics.NewCounter("qx/base64/failures").Inc(1)
		log.Debug("Rejected hex input", "len", len(input), "err", err)
		return "", err
	}
	log.Trace("Decoded hex input", "bytes", l.NewLogClosure(func() string {
		return spew.Sdump(data)
	}))
	metrics.NewMeter("qx/base64/bytes").Mark(int64(len(data)))

	return base64.EncodeToString(data), nil
}

func Base64Encode(input string) {
	encoded, err := HexToBase64(NormalizeHex(input))
	if err != nil {
		ErrExit(err)
	}
	fmt.Printf("%s\n", encoded)
}

// ConvertLines reads hex strings from r, one per line, and writes the base64
// encoding of each to w.  Blank lines are skipped.
func ConvertLines(r io.Reader, w io.Writer) error {
	input := bufio.NewScanner(r)
	input.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for input.Scan() {
		lineNo++
		line := strings.TrimSpace(input.Text())
		if line == "" {
			continue
		}
		encoded, err := HexToBase64(NormalizeHex(line))
		if err != nil {
			return errors.Wrapf(err, "line %d", lineNo)
		}
		if _, err := fmt.Fprintln(w, encoded); err != nil {
			return errors.Wrap(err, "write output")
		}
	}
	log.Debug("Converted lines", "count", lineNo)
	return errors.Wrap(input.Err(), "read input")
}
