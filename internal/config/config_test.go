package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRuleSet(t *testing.T) {
	c := Default()

	assert.Equal(t, ".", c.RootDir)
	assert.Equal(t, "frontend_code.txt", c.OutputFile)
	assert.ElementsMatch(t, []string{".vue", ".ts", ".js", ".tsx", ".json"}, c.Extensions)
	assert.ElementsMatch(t, []string{"node_modules", "dist", "public", ".git", ".vscode", ".idea", "mock"}, c.IgnoredDirs)
	assert.ElementsMatch(t, []string{"pnpm-lock.yaml", "yarn.lock", "package-lock.json", "stats.html"}, c.IgnoredFiles)
	assert.False(t, c.UseGitignore)
	require.NoError(t, c.Validate())
}

func TestDefaultReturnsIndependentValues(t *testing.T) {
	a := Default()
	a.Extensions[0] = ".go"
	assert.Equal(t, ".vue", Default().Extensions[0])
}

func TestLoadRulesOverlaysOnlyPresentKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
output: snapshot.txt
extensions: [".svelte", ".ts"]
ignored_dirs: []
gitignore: true
`), 0644))

	c := Default()
	require.NoError(t, c.LoadRules(path))

	assert.Equal(t, ".", c.RootDir)
	assert.Equal(t, "snapshot.txt", c.OutputFile)
	assert.Equal(t, []string{".svelte", ".ts"}, c.Extensions)
	assert.Empty(t, c.IgnoredDirs)
	assert.Equal(t, Default().IgnoredFiles, c.IgnoredFiles)
	assert.True(t, c.UseGitignore)
	assert.Equal(t, path, c.ConfigFile)
}

func TestLoadRulesErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		err := Default().LoadRules(filepath.Join(dir, "absent.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("extensions: [.ts\n"), 0644))
		err := Default().LoadRules(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse rules file")
	})
}

func TestNormalize(t *testing.T) {
	c := &Config{
		Extensions:   []string{" vue", ".TS", "", "json "},
		IgnoredDirs:  []string{" dist ", ""},
		IgnoredFiles: []string{"yarn.lock"},
	}
	c.Normalize()

	assert.Equal(t, []string{".vue", ".TS", ".json"}, c.Extensions)
	assert.Equal(t, []string{"dist"}, c.IgnoredDirs)
	assert.Equal(t, []string{"yarn.lock"}, c.IgnoredFiles)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"empty root", func(c *Config) { c.RootDir = " " }, "root directory must not be empty"},
		{"empty output", func(c *Config) { c.OutputFile = "" }, "output path must not be empty"},
		{"path as dir name", func(c *Config) { c.IgnoredDirs = []string{"src/mock"} }, `"src/mock" must be a basename`},
		{"path as file name", func(c *Config) { c.IgnoredFiles = []string{`a\b.json`} }, "must be a basename"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestResolveColors(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "stderr")
	require.NoError(t, err)
	defer f.Close()

	c := Default()
	c.ResolveColors(f)
	assert.False(t, c.UseColors, "regular files are not terminals")

	c.ResolveColors(nil)
	assert.False(t, c.UseColors)
}
