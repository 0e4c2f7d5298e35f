// Copyright (c) 2025-2026 The intx developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// divtorture is a long-running differential tester for the fixed precision
// division code.  It hammers every supported width with generated operand
// pairs that skew toward the patterns long division implementations get
// wrong, cross checks each result against the standard library big integer
// implementation, and records any mismatches in a corpus that is replayed on
// later runs.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	flags "github.com/jessevdk/go-flags"

	"github.com/jafar75/intx/internal/torture"
	"github.com/jafar75/intx/internal/version"
)

// divtortureMain is the real main function for divtorture.  It is necessary
// to work around the fact that deferred functions do not run when os.Exit()
// is called.
func divtortureMain() error {
	// Load configuration and parse command line.  This function also
	// initializes logging and configures it accordingly.
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	cfg, err := loadConfig(appName)
	if err != nil {
		// Errors from the flags package are already printed by it, so only
		// print the remaining kinds here along with a usage hint.
		var e *flags.Error
		if !errors.As(err, &e) {
			fmt.Fprintln(os.Stderr, err)
			fmt.Fprintf(os.Stderr, "Use %s -h to show usage\n", appName)
		}
		return err
	}
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	// Get a context that will be canceled when a shutdown signal has been
	// triggered from an OS signal such as SIGINT (Ctrl+C).
	ctx := shutdownListener()
	defer dvtLog.Info("Shutdown complete")

	// Show version at startup.
	dvtLog.Infof("Version %s (Go version %s %s/%s)", version.String(),
		runtime.Version(), runtime.GOOS, runtime.GOARCH)

	// Limit the run duration when requested.
	if cfg.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Duration)
		defer cancel()
	}

	// Enable http profile server if requested.
	var profiler profileServer
	defer profiler.Stop()
	if cfg.Profile != "" {
		if err := profiler.Start(cfg.Profile); err != nil {
			dvtLog.Errorf("Unable to start profile server: %v", err)
			return err
		}
	}

	// Open the failure corpus when one is configured.
	var corpus *torture.Corpus
	if cfg.CorpusDir != "" {
		corpus, err = torture.OpenCorpus(cfg.CorpusDir)
		if err != nil {
			dvtLog.Errorf("%v", err)
			return err
		}
		defer func() {
			// Ensure the corpus is sync'd and closed on shutdown.
			dvtLog.Infof("Gracefully shutting down the corpus...")
			corpus.Close()
		}()
	}

	engine, err := torture.New(&torture.Config{
		Seed:          cfg.Seed,
		Widths:        cfg.Widths,
		MaxIterations: cfg.MaxIterations,
		Corpus:        corpus,
		FailFast:      cfg.FailFast,
	})
	if err != nil {
		dvtLog.Errorf("%v", err)
		return err
	}

	// Replay any previously recorded failures before generating new vectors
	// so regressions of known bad cases surface immediately.
	var replayFailures uint64
	if corpus != nil {
		count, err := corpus.Count()
		if err != nil {
			dvtLog.Errorf("%v", err)
			return err
		}
		if count > 0 {
			dvtLog.Infof("Replaying %d previously recorded vectors", count)
			stats, err := engine.Replay(ctx)
			if err != nil {
				dvtLog.Errorf("%v", err)
				return err
			}
			replayFailures = stats.Failures
		}
	}

	// Return now if a shutdown signal was triggered.
	if shutdownRequested(ctx) {
		return nil
	}

	// Run the engine.  This will block until the context is canceled, which
	// happens when the interrupt signal is received or the configured
	// duration elapses, or until the iteration budget is exhausted.
	stats, err := engine.Run(ctx)
	if err != nil {
		dvtLog.Errorf("%v", err)
		return err
	}
	dvtLog.Infof("Coverage: %d/%d division paths, %d/%d generator shapes",
		stats.PathsCovered, torture.NumPathClasses, stats.ShapesCovered,
		torture.NumShapes)

	if total := replayFailures + stats.Failures; total != 0 {
		err := fmt.Errorf("%d vectors produced mismatched results", total)
		dvtLog.Errorf("%v", err)
		return err
	}
	return nil
}

func main() {
	// Work around defer not working after os.Exit()
	if err := divtortureMain(); err != nil {
		os.Exit(1)
	}
}
