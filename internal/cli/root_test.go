package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"

	"github.com/renato0307/okterm/internal/config"
	"github.com/renato0307/okterm/internal/palette"
	"github.com/renato0307/okterm/internal/render"
	"github.com/renato0307/okterm/internal/tui"
)

// isolate keeps the user's real configuration and environment out of the test
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{config.EnvPalette, config.EnvGamut, config.EnvLogFile, config.EnvLogLevel, config.EnvLogFormat} {
		t.Setenv(key, "")
	}

	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
	return home
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd("1.2.3-test")
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCmd("dev")
	assert.Equal(t, "okterm", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.True(t, cmd.SilenceUsage)

	found := map[string]bool{}
	for _, c := range cmd.Commands() {
		found[c.Name()] = true
	}
	for _, name := range []string{"preview", "wezterm", "export", "copy", "palettes", "version"} {
		assert.True(t, found[name], "missing subcommand %s", name)
	}
}

func TestVersion(t *testing.T) {
	isolate(t)

	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "okterm version 1.2.3-test\n", out)

	out, _, err = run(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "okterm version 1.2.3-test\n", out)
}

func TestVersion_IgnoresBrokenConfig(t *testing.T) {
	isolate(t)
	t.Setenv(config.EnvGamut, "bogus")

	_, _, err := run(t, "version")
	assert.NoError(t, err)

	_, _, err = run(t, "preview")
	assert.Error(t, err)
}

func TestFlagsWinOverInvalidEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv(config.EnvGamut, "bogus")
	t.Setenv(config.EnvLogLevel, "chatty")

	out, _, err := run(t, "export", "--gamut", "clip", "--log-level", "warn")
	require.NoError(t, err)
	var doc render.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "clip", doc.Gamut)

	_, _, err = run(t, "export", "--gamut", "clip")
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrInvalidConfig))
}

func TestPreview_DefaultCommand(t *testing.T) {
	isolate(t)

	viaRoot, _, err := run(t)
	require.NoError(t, err)
	viaPreview, _, err := run(t, "preview")
	require.NoError(t, err)
	assert.Equal(t, viaRoot, viaPreview)

	lines := strings.Split(strings.TrimSuffix(viaRoot, "\n"), "\n")
	assert.Len(t, lines, 2*23)
	assert.True(t, strings.HasPrefix(lines[0], "fg        #"))
}

func TestPreview_ForceColor(t *testing.T) {
	isolate(t)

	out, _, err := run(t, "preview", "--color")
	require.NoError(t, err)
	assert.Contains(t, out, "48;2;")
}

func TestPreview_Interactive(t *testing.T) {
	isolate(t)

	prev := runInteractive
	t.Cleanup(func() { runInteractive = prev })

	var got config.Config
	runInteractive = func(_ context.Context, cfg config.Config, _ ...tui.Option) error {
		got = cfg
		return nil
	}

	_, _, err := run(t, "preview", "-i", "--palette", "warm", "--gamut", "clip")
	require.NoError(t, err)
	assert.Equal(t, "warm", got.Palette)
	assert.Equal(t, "clip", got.Gamut)
}

func TestWezterm_Stdout(t *testing.T) {
	isolate(t)

	out, _, err := run(t, "wezterm", "--palette", "neutral")
	require.NoError(t, err)

	var scheme render.WeztermScheme
	_, err = toml.Decode(out, &scheme)
	require.NoError(t, err)
	assert.Len(t, scheme.Colors.Ansi, 8)
	assert.Len(t, scheme.Colors.Brights, 8)
	assert.Equal(t, "okterm", scheme.Metadata.Name)
	assert.Equal(t, "Always", scheme.Metadata.WeztermVersion)
}

func TestWezterm_OutputFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "colors", "okterm.toml")

	out, errOut, err := run(t, "wezterm", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "wrote wezterm scheme to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[colors]")
	assert.NotContains(t, errOut, "overwriting")

	_, errOut, err = run(t, "wezterm", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, errOut, "! overwriting "+path)
}

func TestReportError(t *testing.T) {
	isolate(t)

	var buf bytes.Buffer
	reportError(&buf, errors.New("unknown palette \"wam\""))
	assert.Equal(t, "✗ unknown palette \"wam\"\n", buf.String())
}

func TestWezterm_MetadataFromConfig(t *testing.T) {
	home := isolate(t)
	cfgPath := filepath.Join(home, ".config", "okterm", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(cfgPath), 0o755))
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
metadata:
  name: my-theme
  author: someone
  aliases: [mine]
`), 0o644))

	out, _, err := run(t, "wezterm")
	require.NoError(t, err)

	var scheme render.WeztermScheme
	_, err = toml.Decode(out, &scheme)
	require.NoError(t, err)
	assert.Equal(t, "my-theme", scheme.Metadata.Name)
	assert.Equal(t, "someone", scheme.Metadata.Author)
	assert.Equal(t, []string{"mine"}, scheme.Metadata.Aliases)
}

func TestExport(t *testing.T) {
	isolate(t)

	out, _, err := run(t, "export", "--format", "json", "--palette", "warm")
	require.NoError(t, err)
	var doc render.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "warm", doc.Palette)
	assert.Len(t, doc.Ansi, 8)

	out, _, err = run(t, "export", "-f", "yaml", "--gamut", "clip")
	require.NoError(t, err)
	doc = render.Document{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "clip", doc.Gamut)

	_, _, err = run(t, "export", "--format", "xml")
	assert.Error(t, err)
}

func TestExport_ConfigFlagAndOverrides(t *testing.T) {
	isolate(t)
	cfgPath := filepath.Join(t.TempDir(), "okterm.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
palette: neutral
overrides:
  red:
    l: 0.9
    c: 0.05
`), 0o644))

	out, _, err := run(t, "export", "--config", cfgPath)
	require.NoError(t, err)
	var overridden render.Document
	require.NoError(t, json.Unmarshal([]byte(out), &overridden))

	out, _, err = run(t, "export", "--palette", "neutral")
	require.NoError(t, err)
	var plain render.Document
	require.NoError(t, json.Unmarshal([]byte(out), &plain))

	assert.Equal(t, "neutral", overridden.Palette)
	assert.NotEqual(t, plain.Ansi[palette.Red], overridden.Ansi[palette.Red])
	assert.Equal(t, plain.Ansi[palette.Blue], overridden.Ansi[palette.Blue])
}

func TestCopy(t *testing.T) {
	isolate(t)

	prev := copyToClipboard
	t.Cleanup(func() { copyToClipboard = prev })

	var copied string
	copyToClipboard = func(what, text string) (string, error) {
		copied = text
		return what + " copied", nil
	}

	_, errOut, err := run(t, "copy")
	require.NoError(t, err)
	assert.Contains(t, copied, "[colors]")
	assert.Contains(t, errOut, "wezterm scheme copied")
	assert.Contains(t, errOut, "• save it as okterm.toml")

	_, errOut, err = run(t, "copy", "--format", "yaml")
	require.NoError(t, err)
	assert.NotContains(t, errOut, "save it as")

	copyToClipboard = func(string, string) (string, error) {
		return "", errors.New("clipboard unavailable")
	}
	_, _, err = run(t, "copy", "--format", "json")
	assert.ErrorContains(t, err, "clipboard unavailable")
}

func TestPalettes(t *testing.T) {
	isolate(t)

	out, _, err := run(t, "palettes", "--palette", "warm")
	require.NoError(t, err)

	assert.Contains(t, out, "Palettes")
	assert.Contains(t, out, "* warm")
	assert.Contains(t, out, "  default")
	assert.Contains(t, out, "5 tint tiers")
	assert.Contains(t, out, "no tint tiers")
}

func TestUnknownPalette(t *testing.T) {
	isolate(t)

	_, _, err := run(t, "wezterm", "--palette", "wam")
	require.Error(t, err)
	assert.True(t, errors.Is(err, palette.ErrUnknownPalette))
	assert.Contains(t, err.Error(), "warm")
}

func TestLogging_FileFlag(t *testing.T) {
	isolate(t)
	logFile := filepath.Join(t.TempDir(), "okterm.log")

	_, _, err := run(t, "wezterm", "--log-file", logFile, "--log-level", "debug", "--log-format", "json")
	require.NoError(t, err)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"configuration loaded"`)
	assert.Contains(t, string(data), `"msg":"generate color set"`)

	_, _, err = run(t, "wezterm", "--log-level", "chatty")
	assert.Error(t, err)
}

func TestCompletePalettes(t *testing.T) {
	got, _ := completePalettes(NewRootCmd("dev"), nil, "w")
	assert.Equal(t, []string{"warm"}, got)
}
