package cmd

import (
	"os"

	"github.com/renquan87/codemerge/internal/app"
	"github.com/renquan87/codemerge/internal/config"
	"github.com/renquan87/codemerge/internal/version"
	"github.com/spf13/cobra"
)

// rootFlags mirrors the command-line flags before they are layered onto the
// defaults and the rules file.
type rootFlags struct {
	configFile   string
	rootDir      string
	output       string
	extensions   []string
	excludeDirs  []string
	excludeFiles []string
	gitignore    bool
	noClobber    bool
	showSkipped  bool
	verbose      bool
	quiet        bool
	logLevel     string
	logJSON      bool
	noColor      bool
}

// NewRootCommand creates and returns the root cobra command for codemerge
func NewRootCommand() *cobra.Command {
	defaults := config.Default()
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "codemerge",
		Short: "Merge a frontend source tree into a single text file",
		Long: `codemerge walks a directory tree, keeps files whose extension is allowed,
prunes dependency and build directories before descending into them, and
writes every kept file into one output file behind a header naming its path.

Run it from the root of a Vue project to get frontend_code.txt.`,
		Args:    cobra.NoArgs,
		Version: version.Get().Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			a, err := app.New(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if err := a.Run(); err != nil {
				a.Close()
				return err
			}
			return a.Close()
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.configFile, "config", "", "YAML rules file (root, output, extensions, ignored_dirs, ignored_files, gitignore)")
	f.StringVar(&flags.rootDir, "dir", defaults.RootDir, "The root directory to scan")
	f.StringVarP(&flags.output, "output", "o", defaults.OutputFile, "Output file, truncated on each run")
	f.StringSliceVar(&flags.extensions, "ext", defaults.Extensions, "Extensions to include, with the dot (case-sensitive)")
	f.StringSliceVar(&flags.excludeDirs, "exclude-dir", defaults.IgnoredDirs, "Directory names never descended into")
	f.StringSliceVar(&flags.excludeFiles, "exclude-file", defaults.IgnoredFiles, "File names excluded even when their extension matches")
	f.BoolVar(&flags.gitignore, "gitignore", false, "Also skip paths matched by .gitignore files under the root")
	f.BoolVar(&flags.noClobber, "no-clobber", false, "Fail instead of overwriting an existing output file")
	f.BoolVar(&flags.showSkipped, "show-skipped", false, "Show a list of skipped files/directories and reasons at the end")
	f.BoolVar(&flags.verbose, "verbose", false, "Enable verbose logging")
	f.BoolVar(&flags.quiet, "quiet", false, "Suppress INFO messages (only show WARN, ERROR)")
	f.StringVar(&flags.logLevel, "log-level", defaults.LogLevel, "Set the logging level (debug, info, warn, error, none)")
	f.BoolVar(&flags.logJSON, "log-json", false, "Write logs as JSON lines")
	f.BoolVar(&flags.noColor, "no-color", false, "Disable color output")

	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// resolve layers defaults, the rules file and explicitly set flags, in
// that order.
func (rf *rootFlags) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if rf.configFile != "" {
		if err := cfg.LoadRules(rf.configFile); err != nil {
			return nil, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("dir") {
		cfg.RootDir = rf.rootDir
	}
	if changed("output") {
		cfg.OutputFile = rf.output
	}
	if changed("ext") {
		cfg.Extensions = rf.extensions
	}
	if changed("exclude-dir") {
		cfg.IgnoredDirs = rf.excludeDirs
	}
	if changed("exclude-file") {
		cfg.IgnoredFiles = rf.excludeFiles
	}
	if changed("gitignore") {
		cfg.UseGitignore = rf.gitignore
	}
	cfg.NoClobber = rf.noClobber
	cfg.ShowSkipped = rf.showSkipped
	cfg.Verbose = rf.verbose
	cfg.Quiet = rf.quiet
	cfg.LogLevel = rf.logLevel
	cfg.LogJSON = rf.logJSON
	cfg.NoColor = rf.noColor

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if f, ok := cmd.ErrOrStderr().(*os.File); ok {
		cfg.ResolveColors(f)
	}
	return cfg, nil
}
