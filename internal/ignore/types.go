// Package ignore decides which directories are pruned and which files are
// excluded from a merge.
package ignore

import (
	gitignore "github.com/denormal/go-gitignore"
	"github.com/renquan87/codemerge/internal/logger"
)

// Verdict names the rule that excluded a path. The zero value keeps the path.
type Verdict string

const (
	Keep            Verdict = ""
	IgnoredDirName  Verdict = "ignored directory name"
	IgnoredFileName Verdict = "ignored file name"
	IgnoredByGit    Verdict = "gitignore rule"
)

// IgnoreMatcher determines whether a file or directory should be ignored
type IgnoreMatcher struct {
	// Optional repository rules loaded from .gitignore files under rootDir
	repoIgnore gitignore.GitIgnore

	rootDir      string
	ignoredDirs  map[string]struct{}
	ignoredFiles map[string]struct{}
	useGitignore bool
	logger       logger.Logger
}

// Config holds configuration options for the ignore matcher
type Config struct {
	RootDir      string
	IgnoredDirs  []string
	IgnoredFiles []string
	UseGitignore bool
	Logger       logger.Logger
}
