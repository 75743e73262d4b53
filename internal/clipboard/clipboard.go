// Package clipboard copies generated schemes to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available
var ErrUnsupported = errors.New("clipboard not available (install xclip, xsel or wl-clipboard)")

// For mocking in tests
var (
	writeAll    = clipboard.WriteAll
	unsupported = func() bool { return clipboard.Unsupported }
)

// Copy writes text to the system clipboard and returns a short confirmation
// naming what was copied
func Copy(what, text string) (string, error) {
	if unsupported() {
		return "", ErrUnsupported
	}
	if err := writeAll(text); err != nil {
		return "", fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return fmt.Sprintf("%s copied to clipboard (%d bytes)", what, len(text)), nil
}
