package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/renquan87/codemerge/internal/ignore"
)

// Walk traverses the tree rooted at rootDir in pre-order: the files of a
// directory are handled before any of its subdirectories, and ignored
// subdirectories are removed before descent so they are never read.
// It returns the skipped items and the first fatal error (a directory that
// cannot be listed, or an error returned by walkFn).
func Walk(rootDir string, matcher *ignore.IgnoreMatcher, walkFn WalkFunc, opts ...Option) ([]SkippedItem, error) {
	startTime := time.Now()

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	w := &walk{
		matcher: matcher,
		walkFn:  walkFn,
		options: options,
		tracker: NewSkippedTracker(64),
	}

	options.Logger.Debug("walker.Walk started. Root: %s", rootDir)
	err := w.dir(rootDir)
	options.Logger.Debug("walker.Walk finished in %s", time.Since(startTime))

	return w.tracker.Items(), err
}

type walk struct {
	matcher *ignore.IgnoreMatcher
	walkFn  WalkFunc
	options WalkOptions
	tracker *SkippedTracker
}

func (w *walk) dir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("walker: failed to read directory '%s': %w", dir, err)
	}

	var subdirs, files []string
	for _, entry := range entries {
		path := joinPath(dir, entry.Name())
		switch {
		case entry.IsDir():
			subdirs = append(subdirs, path)
		case entry.Type()&fs.ModeSymlink != 0 && isDirTarget(path):
			w.options.Logger.Debug("Walker: Not following directory link %q", path)
			w.tracker.Track(path, ReasonSkippedSymlinkDir, true)
		default:
			files = append(files, path)
		}
	}

	// Prune before anything below this directory is visited.
	pending := subdirs[:0]
	for _, path := range subdirs {
		if verdict := w.matcher.Check(path, true); verdict != ignore.Keep {
			w.tracker.Track(path, reasonFor(verdict), true)
			continue
		}
		pending = append(pending, path)
	}

	for _, path := range files {
		if err := w.file(path); err != nil {
			return err
		}
	}

	for _, path := range pending {
		w.options.Logger.Debug("Walker: Descending into directory %q", path)
		if err := w.dir(path); err != nil {
			return err
		}
	}
	return nil
}

func (w *walk) file(path string) error {
	if verdict := w.matcher.Check(path, false); verdict != ignore.Keep {
		w.tracker.Track(path, reasonFor(verdict), false)
		return nil
	}

	ext := Extension(filepath.Base(path))
	if _, ok := w.options.ExtensionMap[ext]; !ok {
		w.tracker.Track(path, ReasonFilteredExtension, false)
		return nil
	}

	if w.isExcluded(path) {
		w.options.Logger.Debug("Walker: Skipping output file %q", path)
		w.tracker.Track(path, ReasonSkippedOutput, false)
		return nil
	}

	return processFile(path, w.options, w.walkFn)
}

func (w *walk) isExcluded(path string) bool {
	if w.options.Excluded == nil {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && os.SameFile(info, w.options.Excluded)
}

// Extension returns the suffix of name starting at its last dot, or "" when
// there is none. Leading dots belong to the name, so ".env" has no extension
// while ".eslintrc.json" has ".json".
func Extension(name string) string {
	stem := strings.TrimLeft(name, ".")
	i := strings.LastIndexByte(stem, '.')
	if i < 0 {
		return ""
	}
	return stem[i:]
}

// joinPath appends name to dir without cleaning, so a walk from "." reports
// "./src/App.vue".
func joinPath(dir, name string) string {
	if dir == "" {
		return name
	}
	if os.IsPathSeparator(dir[len(dir)-1]) {
		return dir + name
	}
	return dir + string(filepath.Separator) + name
}

func isDirTarget(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func reasonFor(v ignore.Verdict) SkippedReason {
	switch v {
	case ignore.IgnoredDirName:
		return ReasonIgnoredDir
	case ignore.IgnoredFileName:
		return ReasonIgnoredFile
	default:
		return ReasonIgnoredGit
	}
}
