package ignore

import (
	"fmt"
	"path/filepath"
	"strings"

	gitignore "github.com/denormal/go-gitignore"
	"github.com/renquan87/codemerge/internal/logger"
)

// New creates and initializes an IgnoreMatcher
func New(rootDir string, opts ...Option) (*IgnoreMatcher, error) {
	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("ignore: failed to get absolute path for rootDir '%s': %w", rootDir, err)
	}

	matcher := &IgnoreMatcher{
		rootDir:      absRootDir,
		ignoredDirs:  map[string]struct{}{},
		ignoredFiles: map[string]struct{}{},
		logger:       logger.Nop{},
	}

	for _, opt := range opts {
		opt(matcher)
	}

	if err := matcher.init(); err != nil {
		return nil, err
	}

	return matcher, nil
}

// NewFromConfig creates an IgnoreMatcher from a Config struct
func NewFromConfig(cfg Config) (*IgnoreMatcher, error) {
	options := []Option{
		WithIgnoredDirs(cfg.IgnoredDirs),
		WithIgnoredFiles(cfg.IgnoredFiles),
		WithGitignore(cfg.UseGitignore),
	}
	if cfg.Logger != nil {
		options = append(options, WithLogger(cfg.Logger))
	}
	return New(cfg.RootDir, options...)
}

// init loads repository ignore files when gitignore support is enabled
func (m *IgnoreMatcher) init() error {
	m.logger.Debug("ignore.New: root=%s dirs=%d files=%d gitignore=%v",
		m.rootDir, len(m.ignoredDirs), len(m.ignoredFiles), m.useGitignore)

	if !m.useGitignore {
		return nil
	}

	repoMatcher, err := gitignore.NewRepository(m.rootDir)
	if err != nil {
		if repoMatcher == nil {
			m.logger.Warn("ignore.New: no .gitignore rules loaded for '%s': %v", m.rootDir, err)
			repoMatcher = gitignore.New(strings.NewReader(""), m.rootDir, nil)
		} else {
			return fmt.Errorf("ignore: failed to load repository ignores: %w", err)
		}
	}
	m.repoIgnore = repoMatcher
	m.logger.Debug("ignore.New: loaded repository ignores")
	return nil
}
