// Package config holds the settings for a merge run
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration settings
type Config struct {
	// Rule set
	RootDir      string
	OutputFile   string
	Extensions   []string
	IgnoredDirs  []string
	IgnoredFiles []string
	UseGitignore bool

	// Output handling
	NoClobber   bool
	ShowSkipped bool

	// Logging settings
	Verbose   bool
	Quiet     bool
	LogLevel  string
	LogJSON   bool
	NoColor   bool
	UseColors bool

	// ConfigFile is the YAML rules file the settings were loaded from, if any.
	ConfigFile string
}

// Default returns the fixed rule set used when nothing overrides it: a Vue
// frontend rooted at the working directory.
func Default() *Config {
	return &Config{
		RootDir:      ".",
		OutputFile:   "frontend_code.txt",
		Extensions:   []string{".vue", ".ts", ".js", ".tsx", ".json"},
		IgnoredDirs:  []string{"node_modules", "dist", "public", ".git", ".vscode", ".idea", "mock"},
		IgnoredFiles: []string{"pnpm-lock.yaml", "yarn.lock", "package-lock.json", "stats.html"},
		LogLevel:     "info",
	}
}

// rulesFile is the on-disk shape of a rules file. Absent keys leave the
// current value untouched.
type rulesFile struct {
	Root         *string  `yaml:"root"`
	Output       *string  `yaml:"output"`
	Extensions   []string `yaml:"extensions"`
	IgnoredDirs  []string `yaml:"ignored_dirs"`
	IgnoredFiles []string `yaml:"ignored_files"`
	Gitignore    *bool    `yaml:"gitignore"`
}

// LoadRules reads a YAML rules file and overlays it on c.
func (c *Config) LoadRules(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: failed to read rules file: %w", err)
	}

	var rf rulesFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return fmt.Errorf("config: failed to parse rules file %s: %w", path, err)
	}

	if rf.Root != nil {
		c.RootDir = *rf.Root
	}
	if rf.Output != nil {
		c.OutputFile = *rf.Output
	}
	if rf.Extensions != nil {
		c.Extensions = rf.Extensions
	}
	if rf.IgnoredDirs != nil {
		c.IgnoredDirs = rf.IgnoredDirs
	}
	if rf.IgnoredFiles != nil {
		c.IgnoredFiles = rf.IgnoredFiles
	}
	if rf.Gitignore != nil {
		c.UseGitignore = *rf.Gitignore
	}
	c.ConfigFile = path
	return nil
}

// Normalize trims list entries, drops empty ones and prefixes a dot to
// extensions given without one. Extension case is preserved.
func (c *Config) Normalize() {
	c.Extensions = cleanList(c.Extensions)
	for i, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			c.Extensions[i] = "." + ext
		}
	}
	c.IgnoredDirs = cleanList(c.IgnoredDirs)
	c.IgnoredFiles = cleanList(c.IgnoredFiles)
}

// Validate reports settings that make a run impossible.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.RootDir) == "" {
		errs = append(errs, errors.New("root directory must not be empty"))
	}
	if strings.TrimSpace(c.OutputFile) == "" {
		errs = append(errs, errors.New("output path must not be empty"))
	}
	for _, name := range append(append([]string{}, c.IgnoredDirs...), c.IgnoredFiles...) {
		if strings.ContainsAny(name, `/\`) {
			errs = append(errs, fmt.Errorf("ignored name %q must be a basename, not a path", name))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid settings: %w", errors.Join(errs...))
	}
	return nil
}

// ResolveColors decides whether console logs are colored: only when
// enabled, not in JSON mode, and stderr is a terminal.
func (c *Config) ResolveColors(stderr *os.File) {
	c.UseColors = !c.NoColor && !c.LogJSON && stderr != nil && isatty.IsTerminal(stderr.Fd())
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
