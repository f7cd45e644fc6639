// Package setup builds the walker and its ignore matcher from a rule set
package setup

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/renquan87/codemerge/internal/ignore"
	"github.com/renquan87/codemerge/internal/logger"
	"github.com/renquan87/codemerge/internal/walker"
)

// WalkerConfig holds all parameters needed to configure a directory walker
type WalkerConfig struct {
	RootDir      string
	Extensions   []string
	IgnoredDirs  []string
	IgnoredFiles []string
	UseGitignore bool
	// Excluded is the output file, skipped if it lies inside the tree.
	Excluded fs.FileInfo
	Logger   logger.Logger
}

// ConfigureWalker sets up an ignore matcher and walker options based on the config
func ConfigureWalker(cfg WalkerConfig) (*ignore.IgnoreMatcher, []walker.Option, error) {
	log := cfg.Logger
	if log == nil {
		log = logger.Nop{}
	}

	log.Debug("Including extensions: %s", strings.Join(cfg.Extensions, ", "))
	log.Debug("Pruning directories: %s", strings.Join(cfg.IgnoredDirs, ", "))
	log.Debug("Ignoring files: %s", strings.Join(cfg.IgnoredFiles, ", "))
	if cfg.UseGitignore {
		log.Debug("Honouring .gitignore files under %s", cfg.RootDir)
	}

	matcher, err := ignore.NewFromConfig(ignore.Config{
		RootDir:      cfg.RootDir,
		IgnoredDirs:  cfg.IgnoredDirs,
		IgnoredFiles: cfg.IgnoredFiles,
		UseGitignore: cfg.UseGitignore,
		Logger:       log,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing ignore rules: %w", err)
	}

	walkOptions := []walker.Option{
		walker.WithLogger(log),
		walker.WithExtensions(cfg.Extensions),
	}
	if cfg.Excluded != nil {
		walkOptions = append(walkOptions, walker.WithExcludedFile(cfg.Excluded))
	}

	return matcher, walkOptions, nil
}
