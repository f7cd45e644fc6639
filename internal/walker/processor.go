package walker

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

var (
	ErrNotRegular  = errors.New("not a regular file")
	ErrInvalidUTF8 = errors.New("invalid UTF-8 text")
)

// readText reads a whole regular file and requires it to be valid UTF-8.
func readText(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", path, ErrNotRegular)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%s: %w at byte %d", path, ErrInvalidUTF8, invalidOffset(content))
	}
	return content, nil
}

func invalidOffset(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return len(b)
}

// processFile reads a selected file and hands it to walkFn. Read failures
// are passed along rather than returned.
func processFile(path string, options WalkOptions, walkFn WalkFunc) error {
	options.Logger.Debug("processFile: Reading [%s]", path)

	content, err := readText(path)
	if err != nil {
		options.Logger.Warn("processFile: cannot read [%s]: %v", path, err)
		return walkFn(path, nil, err)
	}

	options.Logger.Debug("processFile: Read %d bytes from [%s]", len(content), path)
	return walkFn(path, content, nil)
}
