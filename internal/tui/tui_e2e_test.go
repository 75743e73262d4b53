//go:build e2e

package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/okterm/internal/color"
	"github.com/renato0307/okterm/internal/config"
	"github.com/renato0307/okterm/internal/testutil"
)

func TestE2E_PreviewSession(t *testing.T) {
	rec := &copyRecorder{}
	m, err := New(config.Default(), WithCopyFunc(rec.copy))
	require.NoError(t, err)

	tp := testutil.NewTestProgram(t, m, 100, 60)
	require.True(t, tp.WaitForOutput("default", 2*time.Second), "initial palette not rendered")

	tp.SendKey(tea.KeyTab)
	assert.True(t, tp.WaitForOutput("palette warm", 2*time.Second))

	tp.Type("g")
	assert.True(t, tp.WaitForOutput("gamut mode clip", 2*time.Second))

	tp.Type("c")
	assert.True(t, tp.WaitForOutput("WezTerm scheme copied", 2*time.Second))
	assert.Contains(t, rec.text, "[colors]")

	tp.Type("q")
	final := tp.WaitForExit(2 * time.Second)
	require.NotNil(t, final, "program did not exit")

	fm := final.(Model)
	assert.Equal(t, "warm", fm.PaletteName())
	assert.Equal(t, color.GamutClip, fm.Gamut())
}
