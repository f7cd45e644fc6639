// Package walker handles directory traversal and file selection
package walker

// WalkFunc receives each selected file in walk order. The path is the
// directory joined with the file name as encountered during the walk.
// When err is non-nil the file could not be read and content is nil.
// A non-nil return aborts the walk.
type WalkFunc func(path string, content []byte, err error) error

// SkippedReason clarifies why a file/directory was not processed.
type SkippedReason string

const (
	ReasonIgnoredDir        SkippedReason = "Ignored (Directory Name)"
	ReasonIgnoredFile       SkippedReason = "Ignored (File Name)"
	ReasonIgnoredGit        SkippedReason = "Ignored (Gitignore Rule)"
	ReasonFilteredExtension SkippedReason = "Filtered (Extension Mismatch)"
	ReasonSkippedOutput     SkippedReason = "Skipped (Output File)"
	ReasonSkippedSymlinkDir SkippedReason = "Skipped (Symlinked Directory)"
)

// SkippedItem holds information about a skipped path.
type SkippedItem struct {
	Path   string        `json:"path"`
	Reason SkippedReason `json:"reason"`
	IsDir  bool          `json:"is_dir"`
}

// SkippedTracker records skipped items in walk order
type SkippedTracker struct {
	items []SkippedItem
}

// NewSkippedTracker creates a new SkippedTracker
func NewSkippedTracker(capacity int) *SkippedTracker {
	return &SkippedTracker{
		items: make([]SkippedItem, 0, capacity),
	}
}

// Track adds a skipped item to the tracker
func (st *SkippedTracker) Track(path string, reason SkippedReason, isDir bool) {
	st.items = append(st.items, SkippedItem{Path: path, Reason: reason, IsDir: isDir})
}

// Items returns the tracked skipped items
func (st *SkippedTracker) Items() []SkippedItem {
	return st.items
}
