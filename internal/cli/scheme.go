package cli

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/renato0307/okterm/internal/clipboard"
	"github.com/renato0307/okterm/internal/render"
)

// copyToClipboard is replaced in tests
var copyToClipboard = clipboard.Copy

func newWeztermCmd(o *options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "wezterm",
		Short: "Write the color set as a WezTerm color scheme (TOML)",
		Long: `Write a WezTerm color scheme with [colors] and [metadata] tables.
Save it under ~/.config/wezterm/colors/ and select it with color_scheme.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := o.colorSet()
			if err != nil {
				return err
			}
			meta := o.cfg.SchemeMetadata()
			return writeOutput(cmd, output, "wezterm scheme", func(w io.Writer) error {
				return render.Wezterm(w, set, meta)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func newExportCmd(o *options) *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the color set as JSON, YAML or WezTerm TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}
			set, err := o.colorSet()
			if err != nil {
				return err
			}
			meta := o.cfg.SchemeMetadata()
			return writeOutput(cmd, output, string(f)+" export", func(w io.Writer) error {
				return render.Export(w, set, f, meta)
			})
		},
	}

	names := make([]string, 0, len(render.Formats()))
	for _, f := range render.Formats() {
		names = append(names, string(f))
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(render.FormatJSON), "output format: "+strings.Join(names, ", "))
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(names, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

func newCopyCmd(o *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy the generated scheme to the clipboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}
			set, err := o.colorSet()
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := render.Export(&buf, set, f, o.cfg.SchemeMetadata()); err != nil {
				return err
			}
			msg, err := copyToClipboard(fmt.Sprintf("%s scheme", f), buf.String())
			if err != nil {
				return err
			}
			notify(cmd, "success", msg)
			if f == render.FormatWezterm {
				notify(cmd, "info", fmt.Sprintf("save it as %s.toml in the WezTerm colors directory", o.cfg.SchemeMetadata().Name))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(render.FormatWezterm), "format to copy")
	return cmd
}
