package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stub(t *testing.T, supported bool, err error) *string {
	t.Helper()
	origWrite, origUnsupported := writeAll, unsupported
	t.Cleanup(func() { writeAll, unsupported = origWrite, origUnsupported })

	var got string
	writeAll = func(text string) error {
		got = text
		return err
	}
	unsupported = func() bool { return !supported }
	return &got
}

func TestCopy(t *testing.T) {
	got := stub(t, true, nil)

	msg, err := Copy("WezTerm scheme", "[colors]\n")
	require.NoError(t, err)
	assert.Equal(t, "[colors]\n", *got)
	assert.Equal(t, "WezTerm scheme copied to clipboard (9 bytes)", msg)
}

func TestCopy_WriteError(t *testing.T) {
	stub(t, true, errors.New("xclip exited 1"))

	_, err := Copy("scheme", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to copy to clipboard")
	assert.Contains(t, err.Error(), "xclip exited 1")
}

func TestCopy_Unsupported(t *testing.T) {
	got := stub(t, false, nil)

	_, err := Copy("scheme", "x")
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Empty(t, *got)
}
