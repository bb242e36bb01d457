// Copyright 2017-2018 The nox developers

package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/mattn/go-isatty"
	"github.com/misc-programming/miscp-base64/config"
	l "github.com/misc-programming/miscp-base64/log"
	"github.com/misc-programming/miscp-base64/metrics"
	"github.com/misc-programming/miscp-base64/qx"
	"github.com/misc-programming/miscp-base64/version"
	"github.com/pkg/errors"
)

var log = l.New(l.Ctx{"module": "base64util"})

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Error :", err)
		os.Exit(1)
	}
}

func appName() string {
	name := filepath.Base(os.Args[0])
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// run converts the hex input selected by args and writes the base64 string
// to stdout.  The input is taken from the --hex option, else the single
// positional argument, else stdin.
func run(args []string, stdin *os.File, stdout io.Writer) error {
	cfg, remaining, err := config.LoadConfig(args)
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, err)
			fmt.Fprintln(stdout, "Convert the given hex string to the base64 str.")
			return nil
		}
		return err
	}
	if cfg.ShowVersion {
		fmt.Fprintf(stdout, "%s version %s (Go version %s)\n", appName(), version.String(), runtime.Version())
		return nil
	}

	if err := l.SetLogLevel(cfg.DebugLevel); err != nil {
		return err
	}
	if cfg.LogFile != "" {
		if err := l.InitLogRotator(cfg.LogFile); err != nil {
			return err
		}
		defer l.LogWrite().Close()
	}
	if cfg.Metrics {
		metrics.Enable()
		defer metrics.WriteOnce(os.Stderr)
	}

	if cfg.Lines {
		log.Debug("Converting stdin line by line")
		return qx.ConvertLines(stdin, stdout)
	}

	var input string
	switch {
	case cfg.HexString != "": // from --hex
		input = cfg.HexString
		log.Debug("Input from --hex", "input", input)
	case len(remaining) == 1: // from input str
		input = remaining[0]
		log.Debug("Input from argument", "input", input)
	default: // from stdin file/pipe
		input, err = readStdin(stdin)
		if err != nil {
			return err
		}
	}

	base64str, err := qx.HexToBase64(qx.NormalizeHex(input))
	if err != nil {
		return err
	}
	log.Debug("Converted", "output", base64str)
	_, err = fmt.Fprintln(stdout, base64str)
	return err
}

func readStdin(stdin *os.File) (string, error) {
	stat, err := stdin.Stat()
	if err != nil {
		return "", errors.Wrap(err, "stat stdin")
	}
	fileMode := stat.Mode()
	switch {
	case fileMode&os.ModeCharDevice != 0 || isatty.IsTerminal(stdin.Fd()):
		log.Debug("stdin terminal", "mode", fileMode)
		return "", errors.New("no input, pass a hex string or pipe one on stdin")
	case fileMode&os.ModeNamedPipe != 0:
		log.Debug("stdin pipe", "mode", fileMode)
	default:
		log.Debug("stdin file", "mode", fileMode)
	}
	data, err := ioutil.ReadAll(stdin)
	if err != nil {
		return "", errors.Wrap(err, "read stdin")
	}
	return string(data), nil
}
