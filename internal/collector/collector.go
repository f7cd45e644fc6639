// Package collector merges the selected files of a directory tree into a
// single output file, one header block per file.
package collector

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/renquan87/codemerge/internal/filelock"
	"github.com/renquan87/codemerge/internal/logger"
	"github.com/renquan87/codemerge/internal/printer"
	"github.com/renquan87/codemerge/internal/setup"
	"github.com/renquan87/codemerge/internal/walker"
)

var (
	// ErrRootNotDir is returned when the root exists but is not a directory.
	ErrRootNotDir = errors.New("root is not a directory")
	// ErrOutputExists is returned in no-clobber mode when the output exists.
	ErrOutputExists = errors.New("output file already exists")
)

// Rules is the immutable rule set of one run.
type Rules struct {
	Root         string
	Output       string
	Extensions   []string
	IgnoredDirs  []string
	IgnoredFiles []string
	UseGitignore bool
}

// Collector performs a filtered tree walk and streams matched files into
// the output.
type Collector struct {
	rules     Rules
	log       logger.Logger
	noClobber bool
	skipped   []walker.SkippedItem
}

// Option configures a Collector
type Option func(*Collector)

func WithLogger(l logger.Logger) Option {
	return func(c *Collector) {
		if l != nil {
			c.log = l
		}
	}
}

// WithNoClobber makes Run fail instead of overwriting an existing output.
func WithNoClobber(enabled bool) Option {
	return func(c *Collector) {
		c.noClobber = enabled
	}
}

// New creates a Collector for rules.
func New(rules Rules, opts ...Option) *Collector {
	c := &Collector{
		rules: rules,
		log:   logger.Nop{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run is shorthand for New(rules, opts...).Run().
func Run(rules Rules, opts ...Option) (int, error) {
	return New(rules, opts...).Run()
}

// Run writes the output file and returns the number of files merged,
// including files whose content could not be read. Errors are fatal: the
// root is unusable, the output cannot be opened or written, or a directory
// cannot be listed. Nothing is created when the root is unusable.
func (c *Collector) Run() (count int, err error) {
	root, output := c.rules.Root, c.rules.Output

	info, err := os.Stat(root)
	if err != nil {
		return 0, fmt.Errorf("collector: cannot access root directory '%s': %w", root, err)
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("collector: '%s': %w", root, ErrRootNotDir)
	}

	flags := os.O_WRONLY | os.O_CREATE
	if c.noClobber {
		flags |= os.O_EXCL
	}
	out, err := os.OpenFile(output, flags, 0644)
	if err != nil {
		if c.noClobber && errors.Is(err, os.ErrExist) {
			return 0, fmt.Errorf("collector: '%s': %w", output, ErrOutputExists)
		}
		return 0, fmt.Errorf("collector: failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("collector: failed to close output file: %w", closeErr)
		}
	}()

	outInfo, err := out.Stat()
	if err != nil {
		return 0, fmt.Errorf("collector: failed to stat output file: %w", err)
	}

	// Devices such as /dev/null are written as is. Windows locks are
	// mandatory and would block writes through out.
	if outInfo.Mode().IsRegular() {
		if runtime.GOOS != "windows" {
			lock := filelock.NewFileLock(output)
			if err := lock.TryLock(); err != nil {
				return 0, fmt.Errorf("collector: output '%s' in use: %w", lock.Path(), err)
			}
			defer func() {
				if unlockErr := lock.Unlock(); unlockErr != nil {
					c.log.Warn("Failed to release lock on %s: %v", lock.Path(), unlockErr)
				}
			}()
		}

		// Truncate only once the lock is held so a concurrent run's output
		// is never clobbered.
		if err := out.Truncate(0); err != nil {
			return 0, fmt.Errorf("collector: failed to truncate output file: %w", err)
		}
	}

	matcher, walkOptions, err := setup.ConfigureWalker(setup.WalkerConfig{
		RootDir:      root,
		Extensions:   c.rules.Extensions,
		IgnoredDirs:  c.rules.IgnoredDirs,
		IgnoredFiles: c.rules.IgnoredFiles,
		UseGitignore: c.rules.UseGitignore,
		Excluded:     outInfo,
		Logger:       c.log,
	})
	if err != nil {
		return 0, fmt.Errorf("collector: %w", err)
	}

	p := printer.New(out)
	skipped, walkErr := walker.Walk(root, matcher, func(path string, content []byte, readErr error) error {
		if readErr != nil {
			return p.PrintError(path, readErr)
		}
		c.log.Debug("Merging %s (%d bytes)", path, len(content))
		return p.PrintFile(path, content)
	}, walkOptions...)
	c.skipped = skipped

	// Keep whatever was merged before a fatal walk error.
	flushErr := p.Flush()
	if walkErr != nil {
		return p.GetCount(), fmt.Errorf("collector: %w", walkErr)
	}
	if flushErr != nil {
		return p.GetCount(), fmt.Errorf("collector: %w", flushErr)
	}
	return p.GetCount(), nil
}

// Skipped returns the paths left out by the last Run, in walk order.
func (c *Collector) Skipped() []walker.SkippedItem {
	return c.skipped
}
