/*
 * Copyright (c) 2017-2020 The qitmeer developers
 */

package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/log"
	"github.com/jrick/logrotate/rotator"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Logger writes key/value pairs to a Handler.
type Logger = log.Logger

// Ctx is a map of key/value pairs to pass as context to a log function.
type Ctx = log.Ctx

// Lvl is a logging level.
type Lvl = log.Lvl

const (
	LvlCrit  = log.LvlCrit
	LvlError = log.LvlError
	LvlWarn  = log.LvlWarn
	LvlInfo  = log.LvlInfo
	LvlDebug = log.LvlDebug
	LvlTrace = log.LvlTrace
)

var (
	glogger *log.GlogHandler

	logWrite *logWriter
)

// logWriter implements an io.Writer that outputs to both standard error and
// the write-end pipe of an initialized log rotator.
type logWriter struct {
	// logRotator is one of the logging outputs.  It should be closed on
	// application shutdown.
	logRotator *rotator.Rotator

	// Use for color terminal
	colorableWrite io.Writer
}

func (lw *logWriter) Init() {
	// init a colorful logger if possible
	usecolor := isatty.IsTerminal(os.Stderr.Fd()) && os.Getenv("TERM") != "dumb"

	if usecolor {
		lw.colorableWrite = colorable.NewColorableStderr()
	}
}

func (lw *logWriter) Close() {
	if lw.logRotator != nil {
		lw.logRotator.Close()
		lw.logRotator = nil
	}
}

func (lw *logWriter) IsUseColor() bool {
	return lw.colorableWrite != nil
}

func (lw *logWriter) Write(p []byte) (n int, err error) {
	if lw.logRotator != nil {
		lw.logRotator.Write(p)
	}

	if lw.colorableWrite != nil {
		lw.colorableWrite.Write(p)
	} else {
		os.Stderr.Write(p)
	}
	return len(p), nil
}

func init() {
	// output set to Stderr so stdout only carries command results.
	logWrite = &logWriter{}
	logWrite.Init()
	glogger = log.NewGlogHandler(log.StreamHandler(io.Writer(logWrite), log.TerminalFormat(logWrite.IsUseColor())))

	log.Root().SetHandler(glogger)

	glogger.Verbosity(LvlWarn)
}

// InitLogRotator initializes the logging rotater to write logs to logFile and
// create roll files in the same directory.  It must be called before the
// package-global log rotater variables are used.
func InitLogRotator(logFile string) error {
	logDir, _ := filepath.Split(logFile)
	if logDir != "" {
		err := os.MkdirAll(logDir, 0700)
		if err != nil {
			return fmt.Errorf("failed to create log directory: %v", err)
		}
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return fmt.Errorf("failed to create file rotator: %v", err)
	}

	logWrite.Close()
	logWrite.logRotator = r
	return nil
}

// SetLogLevel sets the verbosity of the root handler from a level name such
// as "info" or "trace".
func SetLogLevel(level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	glogger.Verbosity(lvl)
	return nil
}

// ParseLevel returns the Lvl for a level name, ignoring case and
// surrounding whitespace.
func ParseLevel(level string) (Lvl, error) {
	return log.LvlFromString(strings.ToLower(strings.TrimSpace(level)))
}

// New returns a new logger with the given context.
func New(ctx ...interface{}) Logger {
	return log.New(ctx...)
}

// Info logs a message at info level on the root logger.
func Info(msg string, ctx ...interface{}) {
	log.Root().Info(msg, ctx...)
}

func LogWrite() *logWriter {
	return logWrite
}
