// Package printer writes merged files to the output stream
package printer

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	// HeaderRule is the run of '=' on each side of a file header.
	HeaderRule = "===================="
	// ErrorPrefix starts the line written in place of unreadable content.
	ErrorPrefix = "// [Error reading file]: "
)

// Printer writes one header block per file and counts them
type Printer struct {
	output *bufio.Writer
	count  int
}

// New creates a Printer buffering writes to w. Call Flush when done.
func New(w io.Writer) *Printer {
	return &Printer{output: bufio.NewWriter(w)}
}

// Header returns the delimiter line introducing path, preceded by two
// newlines.
func Header(path string) string {
	return fmt.Sprintf("\n\n%s File: %s %s\n", HeaderRule, path, HeaderRule)
}

// PrintFile writes the header for path followed by the raw content.
func (p *Printer) PrintFile(path string, content []byte) error {
	p.count++
	if _, err := p.output.WriteString(Header(path)); err != nil {
		return fmt.Errorf("printer: failed to write header for '%s': %w", path, err)
	}
	if _, err := p.output.Write(content); err != nil {
		return fmt.Errorf("printer: failed to write content of '%s': %w", path, err)
	}
	return nil
}

// PrintError writes the header for path followed by a single diagnostic
// line describing readErr.
func (p *Printer) PrintError(path string, readErr error) error {
	p.count++
	line := Header(path) + ErrorPrefix + singleLine(readErr.Error()) + "\n"
	if _, err := p.output.WriteString(line); err != nil {
		return fmt.Errorf("printer: failed to write placeholder for '%s': %w", path, err)
	}
	return nil
}

// Flush writes any buffered data to the underlying writer
func (p *Printer) Flush() error {
	if err := p.output.Flush(); err != nil {
		return fmt.Errorf("printer: failed to flush output: %w", err)
	}
	return nil
}

// GetCount returns the number of header blocks written
func (p *Printer) GetCount() int {
	return p.count
}

func singleLine(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}
