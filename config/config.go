// Copyright (c) 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

type Config struct {
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	ConfigFile  string `short:"C" long:"configfile" description:"Path to configuration file"`
	HexString   string `short:"x" long:"hex" description:"Input is the given hex string"`
	Lines       bool   `short:"l" long:"lines" description:"Convert every line read from stdin separately"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, crit}"`
	LogFile     string `long:"logfile" description:"Also write log output to this file, rotated every 10MB"`
	Metrics     bool   `long:"metrics" description:"Collect conversion metrics and print them to stderr on exit"`
}
