package cli

import (
	"github.com/spf13/cobra"

	"github.com/renato0307/okterm/internal/render"
	"github.com/renato0307/okterm/internal/tui"
)

type previewFlags struct {
	interactive bool
	forceColor  bool
}

// runInteractive is replaced in tests
var runInteractive = tui.Run

func newPreviewCmd(o *options) *cobra.Command {
	var f previewFlags

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print every generated color as a labeled swatch",
		Long: `Print two lines per color: the name and hex code on the color as background,
then in the color as foreground. With --interactive, open a full-screen preview
where palettes and gamut modes can be switched live.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, o, f)
		},
	}
	cmd.Flags().BoolVarP(&f.interactive, "interactive", "i", false, "open the interactive preview")
	cmd.Flags().BoolVar(&f.forceColor, "color", false, "emit true-color escapes even when stdout is not a terminal")
	return cmd
}

func runPreview(cmd *cobra.Command, o *options, f previewFlags) error {
	if f.interactive {
		return runInteractive(cmd.Context(), o.cfg)
	}

	set, err := o.colorSet()
	if err != nil {
		return err
	}
	return render.Preview(cmd.OutOrStdout(), set, render.PreviewOptions{ForceColor: f.forceColor})
}
