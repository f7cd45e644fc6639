// Package app wires configuration, logging and the collector into one run
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/renquan87/codemerge/internal/collector"
	"github.com/renquan87/codemerge/internal/config"
	"github.com/renquan87/codemerge/internal/logger"
	"github.com/renquan87/codemerge/internal/summary"
	"github.com/renquan87/codemerge/internal/version"
	"golang.org/x/term"
)

// App encapsulates the main application functionality
type App struct {
	cfg    *config.Config
	log    logger.Logger
	stderr io.Writer
	zap    *logger.Structured
}

// New creates an App logging to stderr. JSON logging always goes to the
// process stderr.
func New(cfg *config.Config, stderr io.Writer) (*App, error) {
	level := logger.ParseLevel(cfg.LogLevel)
	if cfg.Verbose {
		level = logger.LevelDebug
	} else if cfg.Quiet && level < logger.LevelWarn {
		level = logger.LevelWarn
	}

	a := &App{cfg: cfg, stderr: stderr}
	if cfg.LogJSON {
		structured, err := logger.NewStructuredFromLevel(level, "codemerge", version.Get().Version)
		if err != nil {
			return nil, err
		}
		a.log, a.zap = structured, structured
	} else {
		a.log = logger.NewConsole(stderr, false, cfg.UseColors).WithLevel(level)
	}
	return a, nil
}

// Run merges the configured tree into the output file. The returned error
// is fatal; per-file read problems are recorded in the output instead.
func (a *App) Run() error {
	startTime := time.Now()

	a.log.Debug("Root: %s, output: %s", a.cfg.RootDir, a.cfg.OutputFile)
	if a.cfg.ConfigFile != "" {
		a.log.Debug("Rules loaded from %s", a.cfg.ConfigFile)
	}
	a.log.Info("Scanning %s for %s files (skipping %s)",
		a.cfg.RootDir, strings.Join(a.cfg.Extensions, " "), strings.Join(a.cfg.IgnoredDirs, ", "))

	c := collector.New(collector.Rules{
		Root:         a.cfg.RootDir,
		Output:       a.cfg.OutputFile,
		Extensions:   a.cfg.Extensions,
		IgnoredDirs:  a.cfg.IgnoredDirs,
		IgnoredFiles: a.cfg.IgnoredFiles,
		UseGitignore: a.cfg.UseGitignore,
	}, collector.WithLogger(a.log), collector.WithNoClobber(a.cfg.NoClobber))

	count, err := c.Run()
	if err != nil {
		return fmt.Errorf("merge failed after %d files: %w", count, err)
	}

	summary.DisplayResults(a.log, count, a.cfg.OutputFile, time.Since(startTime))
	if a.cfg.ShowSkipped {
		summary.DisplaySkippedItems(a.log, c.Skipped(), a.stderr)
	}
	return nil
}

// Close flushes the structured logger when stderr can be synced. Terminals
// that reject fsync with EINVAL are not an error.
func (a *App) Close() error {
	if a.zap == nil {
		return nil
	}
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return nil
	}
	if err := a.zap.Sync(); err != nil && !errors.Is(err, syscall.EINVAL) {
		return fmt.Errorf("app: failed to sync logger: %w", err)
	}
	return nil
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
