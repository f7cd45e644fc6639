package ignore

import "github.com/renquan87/codemerge/internal/logger"

// Option functions for configuration
type Option func(*IgnoreMatcher)

// WithIgnoredDirs sets the directory basenames pruned before descent.
func WithIgnoredDirs(names []string) Option {
	return func(m *IgnoreMatcher) {
		m.ignoredDirs = toSet(names)
	}
}

// WithIgnoredFiles sets the file basenames excluded regardless of extension.
func WithIgnoredFiles(names []string) Option {
	return func(m *IgnoreMatcher) {
		m.ignoredFiles = toSet(names)
	}
}

// WithGitignore enables .gitignore rules found under the root.
func WithGitignore(enabled bool) Option {
	return func(m *IgnoreMatcher) {
		m.useGitignore = enabled
	}
}

func WithLogger(l logger.Logger) Option {
	return func(m *IgnoreMatcher) {
		if l != nil {
			m.logger = l
		}
	}
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name != "" {
			set[name] = struct{}{}
		}
	}
	return set
}
