package walker

import (
	"io/fs"

	"github.com/renquan87/codemerge/internal/logger"
)

// WalkOptions configures the behavior of the Walk function
type WalkOptions struct {
	Logger logger.Logger
	// ExtensionMap holds allowed extensions including the leading dot.
	// Matching is case-sensitive. Nil or empty admits no files.
	ExtensionMap map[string]struct{}
	// Excluded is skipped when met during the walk (the output file).
	Excluded fs.FileInfo
}

func defaultOptions() WalkOptions {
	return WalkOptions{
		Logger: logger.Nop{},
	}
}

// Option is a functional option for configuring WalkOptions
type Option func(*WalkOptions)

// WithLogger sets a custom logger for the walker
func WithLogger(l logger.Logger) Option {
	return func(opts *WalkOptions) {
		if l != nil {
			opts.Logger = l
		}
	}
}

// WithExtensions sets the file extensions to include, e.g. ".vue".
func WithExtensions(extensions []string) Option {
	return func(opts *WalkOptions) {
		extMap := make(map[string]struct{}, len(extensions))
		for _, ext := range extensions {
			extMap[ext] = struct{}{}
		}
		opts.ExtensionMap = extMap
	}
}

// WithExcludedFile skips any walked file that is the same file as info.
func WithExcludedFile(info fs.FileInfo) Option {
	return func(opts *WalkOptions) {
		opts.Excluded = info
	}
}
