package ignore

import "path/filepath"

// Check reports which rule, if any, excludes path. Name rules compare the
// exact basename; gitignore rules see the path resolved against the
// working directory.
func (m *IgnoreMatcher) Check(path string, isDir bool) Verdict {
	if m == nil {
		return Keep
	}

	name := filepath.Base(path)
	if isDir {
		if _, ok := m.ignoredDirs[name]; ok {
			m.logger.Debug("ignore.Check: pruning directory %q", path)
			return IgnoredDirName
		}
	} else if _, ok := m.ignoredFiles[name]; ok {
		m.logger.Debug("ignore.Check: ignoring file %q by name", path)
		return IgnoredFileName
	}

	if m.repoIgnore != nil && m.gitIgnored(path, isDir) {
		m.logger.Debug("ignore.Check: %q ignored by gitignore", path)
		return IgnoredByGit
	}

	return Keep
}

func (m *IgnoreMatcher) gitIgnored(path string, isDir bool) (ignored bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		m.logger.Warn("ignore.Check: cannot resolve %q: %v", path, err)
		return false
	}
	if abs == m.rootDir {
		return false
	}

	// The library panics on some malformed patterns; treat that as no match.
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("ignore.Check: gitignore panic for %q: %v", path, r)
			ignored = false
		}
	}()

	match := m.repoIgnore.Absolute(abs, isDir)
	return match != nil && match.Ignore()
}
