// Copyright (c) 2025-2026 The intx developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	flags "github.com/jessevdk/go-flags"

	"github.com/jafar75/intx/internal/version"
)

const (
	defaultDebugLevel  = "info"
	defaultLogDirname  = "logs"
	defaultLogFilename = "divtorture.log"
)

// config defines the configuration options for divtorture.
//
// See loadConfig for details on the configuration load process.
type config struct {
	CorpusDir     string        `short:"c" long:"corpusdir" description:"Directory of the persistent corpus of failing vectors -- Replay and recording are disabled when empty"`
	DebugLevel    string        `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems"`
	Duration      time.Duration `long:"duration" description:"Maximum amount of time to run -- Zero means run until interrupted"`
	FailFast      bool          `long:"failfast" description:"Stop the run at the first mismatched vector"`
	LogDir        string        `long:"logdir" description:"Directory to log output"`
	MaxIterations uint64        `short:"n" long:"maxiterations" description:"Maximum number of vectors to check -- Zero means no limit"`
	NoFileLogging bool          `long:"nofilelogging" description:"Disable file logging"`
	Profile       string        `long:"profile" description:"Enable HTTP profiling on given [addr:]port -- NOTE port must be between 1024 and 65535"`
	Seed          int64         `short:"s" long:"seed" description:"Seed for the vector generator -- Zero means derive a seed from the current time"`
	ShowVersion   bool          `short:"V" long:"version" description:"Display version information and exit"`
	Widths        []int         `short:"w" long:"width" description:"Width in bits to exercise; may be specified multiple times -- All supported widths are exercised when omitted"`
}

// loadConfig initializes and parses the config using command line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Parse CLI options and overwrite/add any specified options
//
// It also initializes logging and configures it accordingly.
func loadConfig(appName string) (*config, error) {
	// Default config.
	cfg := config{
		DebugLevel: defaultDebugLevel,
		LogDir:     defaultLogDirname,
	}

	// Parse command line options.
	parser := flags.NewParser(&cfg, flags.Default)
	remainingArgs, err := parser.Parse()
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, err
	}

	// Show the version and exit if the version flag was specified.
	if cfg.ShowVersion {
		fmt.Printf("%s version %s (Go version %s %s/%s)\n", appName,
			version.String(), runtime.Version(), runtime.GOOS,
			runtime.GOARCH)
		os.Exit(0)
	}

	if len(remainingArgs) != 0 {
		return nil, fmt.Errorf("unexpected argument %q", remainingArgs[0])
	}

	// Initialize log rotation.  After the log rotation has been initialized,
	// the logger variables may be used.
	if !cfg.NoFileLogging {
		initLogRotator(filepath.Join(cfg.LogDir, defaultLogFilename))
	}

	// Parse, validate, and set debug log level(s).
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// parseAndSetDebugLevels attempts to parse the specified debug level and set
// the levels accordingly.  An appropriate error is returned if anything is
// invalid.
func parseAndSetDebugLevels(debugLevel string) error {
	// When the specified string doesn't have any delimiters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		// Validate debug log level.
		if !validLogLevel(debugLevel) {
			str := "the specified debug level [%v] is invalid"
			return fmt.Errorf(str, debugLevel)
		}

		// Change the logging level for all subsystems.
		setLogLevels(debugLevel)

		return nil
	}

	// Split the specified string into subsystem/level pairs while detecting
	// issues and update the log levels accordingly.
	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		if !strings.Contains(logLevelPair, "=") {
			str := "the specified debug level contains an invalid " +
				"subsystem/level pair [%v]"
			return fmt.Errorf(str, logLevelPair)
		}

		// Extract the specified subsystem and log level.
		fields := strings.Split(logLevelPair, "=")
		subsysID, logLevel := fields[0], fields[1]

		// Validate subsystem.
		if _, exists := subsystemLoggers[subsysID]; !exists {
			str := "the specified subsystem [%v] is invalid -- " +
				"supported subsystems %v"
			return fmt.Errorf(str, subsysID, supportedSubsystems())
		}

		// Validate log level.
		if !validLogLevel(logLevel) {
			str := "the specified debug level [%v] is invalid"
			return fmt.Errorf(str, logLevel)
		}

		setLogLevel(subsysID, logLevel)
	}

	return nil
}
