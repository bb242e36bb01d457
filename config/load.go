// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2015-2016 The Decred developers
// Copyright (c) 2013-2016 The btcsuite developers

package config

import (
	"github.com/jessevdk/go-flags"
	"github.com/misc-programming/miscp-base64/log"
	"github.com/pkg/errors"
)

const (
	defaultLogLevel = "warn"
	usage           = "[OPTIONS] [HexString]"
)

// LoadConfig initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
// 	1) Start with a default config with sane settings
// 	2) Pre-parse the command line to check for an alternative config file
// 	3) Load configuration file overwriting defaults with any specified options
// 	4) Parse CLI options and overwrite/add any specified options
//
// A help request is returned as a *flags.Error of type flags.ErrHelp so the
// caller can print it.
func LoadConfig(args []string) (*Config, []string, error) {
	// Default config.
	cfg := Config{
		DebugLevel: defaultLogLevel,
	}

	// Pre-parse the command line options to see if an alternative config
	// file or the version flag was specified.  Any errors aside from the
	// help message error can be ignored here since they will be caught by
	// the final parse below.
	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.HelpFlag)
	preParser.Usage = usage
	_, err := preParser.ParseArgs(args)
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			return nil, nil, err
		}
	}

	// Show the version and exit if the version flag was specified.
	if preCfg.ShowVersion {
		return &preCfg, nil, nil
	}

	// Load additional config from file.
	parser := flags.NewParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	parser.Usage = usage
	if preCfg.ConfigFile != "" {
		err := flags.NewIniParser(parser).ParseFile(preCfg.ConfigFile)
		if err != nil {
			return nil, nil, errors.Wrap(err, "error parsing config file")
		}
	}

	// Parse command line options again to ensure they take precedence.
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}

	if _, err := log.ParseLevel(cfg.DebugLevel); err != nil {
		return nil, nil, errors.Wrapf(err, "invalid debuglevel %q", cfg.DebugLevel)
	}

	if len(remainingArgs) > 1 {
		return nil, nil, errors.New("too many arguments")
	}
	if cfg.Lines && (cfg.HexString != "" || len(remainingArgs) > 0) {
		return nil, nil, errors.New("--lines only reads from stdin")
	}

	return &cfg, remainingArgs, nil
}
