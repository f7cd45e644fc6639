// Package summary handles display of run results
package summary

import (
	"fmt"
	"io"
	"time"

	"github.com/renquan87/codemerge/internal/walker"
)

// Logger defines the minimal logging interface required
type Logger interface {
	Info(format string, args ...interface{})
}

// DisplayResults reports the completion of a merge run
func DisplayResults(logger Logger, fileCount int, output string, duration time.Duration) {
	logger.Info("Done! Merged %d files into %s", fileCount, output)
	logger.Info("Completed in %v. %s is ready for review.", duration.Round(time.Millisecond), output)
}

// DisplaySkippedItems writes one line per skipped item in walk order
func DisplaySkippedItems(logger Logger, skippedItems []walker.SkippedItem, output io.Writer) {
	logger.Info("--- Skipped Items (%d) ---", len(skippedItems))
	if len(skippedItems) == 0 {
		logger.Info("No items were skipped.")
	}
	for _, item := range skippedItems {
		typeStr := "FILE"
		if item.IsDir {
			typeStr = "DIR " // Add space for alignment
		}
		fmt.Fprintf(output, "Skipped %s: %-50s [%s]\n", typeStr, item.Path, item.Reason)
	}
	logger.Info("--- End Skipped Items ---")
}
