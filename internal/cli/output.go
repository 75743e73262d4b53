package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/renato0307/okterm/internal/logging"
)

// writeOutput renders into memory first so a failed render never leaves a
// truncated file behind. An empty path writes to stdout.
func writeOutput(cmd *cobra.Command, path, what string, render func(io.Writer) error) error {
	if path == "" || path == "-" {
		return render(cmd.OutOrStdout())
	}

	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	if _, err := os.Stat(path); err == nil {
		notify(cmd, "warn", "overwriting "+path)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	logging.Info("output written", "kind", what, "path", path, "bytes", buf.Len())
	notify(cmd, "success", fmt.Sprintf("wrote %s to %s", what, path))
	return nil
}
