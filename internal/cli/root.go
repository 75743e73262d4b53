// Package cli is the okterm command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/renato0307/okterm/internal/config"
	"github.com/renato0307/okterm/internal/logging"
	"github.com/renato0307/okterm/internal/theme"
	"github.com/renato0307/okterm/internal/ui"
)

// options carries persistent flag values and the configuration resolved from them
type options struct {
	configPath string
	palette    string
	gamut      string
	logFile    string
	logLevel   string
	logFormat  string

	cfg config.Config
}

// NewRootCmd builds the okterm command tree
func NewRootCmd(version string) *cobra.Command {
	o := &options{}

	rootCmd := &cobra.Command{
		Use:   "okterm",
		Short: "Generate terminal color themes from OkLCh palettes",
		Long: `okterm derives a 16-color terminal theme from a small table of perceptual
OkLCh colors. Normal colors are darkened copies of each palette entry and bright
colors are slightly desaturated ones, so every accent keeps its hue.

Run without a subcommand to print a preview of the current palette.`,
		Version: version,
		// SilenceUsage is set to true to prevent printing usage message on errors
		// that are not about command-line syntax
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.load(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logging.Shutdown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, o, previewFlags{})
		},
	}
	rootCmd.SetVersionTemplate(`{{printf "okterm version %s\n" .Version}}`)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&o.configPath, "config", "", "config file (default layers ~/.config/okterm/config.yaml and ./.okterm/config.yaml)")
	flags.StringVarP(&o.palette, "palette", "p", "", "palette to generate (default, warm, neutral)")
	flags.StringVar(&o.gamut, "gamut", "", "gamut mapping mode: chroma or clip")
	flags.StringVar(&o.logFile, "log-file", "", "write logs to this file (disabled when empty)")
	flags.StringVar(&o.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&o.logFormat, "log-format", "", "log format: text or json")

	_ = rootCmd.RegisterFlagCompletionFunc("palette", completePalettes)
	_ = rootCmd.RegisterFlagCompletionFunc("gamut", cobra.FixedCompletions(
		[]string{"chroma", "clip"}, cobra.ShellCompDirectiveNoFileComp))

	rootCmd.AddCommand(newPreviewCmd(o))
	rootCmd.AddCommand(newWeztermCmd(o))
	rootCmd.AddCommand(newExportCmd(o))
	rootCmd.AddCommand(newCopyCmd(o))
	rootCmd.AddCommand(newPalettesCmd(o))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the command tree and exits non-zero on error.
// This is called by main.main().
func Execute(version string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := NewRootCmd(version)
	rootCmd.SilenceErrors = true
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		reportError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// reportError prints a failed command's error as an error notice
func reportError(w io.Writer, err error) {
	ui.Notify(w, "error", err.Error())
}

// load resolves the configuration layers, applies explicitly set flags and
// initializes logging
func (o *options) load(cmd *cobra.Command) error {
	cfg, err := config.Load(config.LoadOptions{ExplicitPath: o.configPath})
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	apply := func(name string, dst *string, value string) {
		if flags.Changed(name) {
			*dst = value
		}
	}
	apply("palette", &cfg.Palette, o.palette)
	apply("gamut", &cfg.Gamut, o.gamut)
	apply("log-file", &cfg.Logging.File, o.logFile)
	apply("log-level", &cfg.Logging.Level, o.logLevel)
	apply("log-format", &cfg.Logging.Format, o.logFormat)

	if err := cfg.Validate(); err != nil {
		return err
	}

	logCfg, err := cfg.LoggerConfig()
	if err != nil {
		return err
	}
	if err := logging.Init(logCfg); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	logging.Debug("configuration loaded",
		"command", cmd.Name(),
		"palette", cfg.Palette,
		"gamut", cfg.Gamut,
		"overrides", len(cfg.Overrides))

	o.cfg = cfg
	return nil
}

// colorSet generates the Color Set for the resolved configuration
func (o *options) colorSet() (theme.ColorSet, error) {
	table, err := o.cfg.Table()
	if err != nil {
		return theme.ColorSet{}, err
	}
	mode, err := o.cfg.GamutMode()
	if err != nil {
		return theme.ColorSet{}, err
	}

	var set theme.ColorSet
	engine := theme.NewEngine(theme.WithGamut(mode))
	logging.Get().With("palette", table.Name, "gamut", mode.String()).Time("generate color set", func() {
		set, err = engine.Generate(table)
	})
	if err != nil {
		return theme.ColorSet{}, err
	}
	return set, nil
}

// notify writes a status line to stderr so stdout stays machine-readable
func notify(cmd *cobra.Command, level, msg string) {
	ui.Notify(cmd.ErrOrStderr(), level, msg)
}
