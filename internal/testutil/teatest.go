// Package testutil drives Bubble Tea programs from tests.
package testutil

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// settle is how long Send waits for the program to process a message
const settle = 50 * time.Millisecond

// TestProgram wraps a Bubble Tea program for testing
type TestProgram struct {
	program *tea.Program
	output  *syncBuffer
	input   *fakeInput
	done    chan struct{}
	final   tea.Model
	t       *testing.T
}

// syncBuffer guards the output buffer; the program writes from its own goroutine
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// fakeInput implements io.Reader for simulating keyboard input
type fakeInput struct {
	data chan byte
}

func newFakeInput() *fakeInput {
	return &fakeInput{data: make(chan byte, 1024)}
}

func (f *fakeInput) Read(p []byte) (n int, err error) {
	select {
	case b := <-f.data:
		p[0] = b
		return 1, nil
	case <-time.After(settle):
		return 0, io.EOF
	}
}

// NewTestProgram starts model in the background with controlled I/O and
// sends an initial window size
func NewTestProgram(t *testing.T, model tea.Model, width, height int) *TestProgram {
	t.Helper()

	tp := &TestProgram{
		output: &syncBuffer{},
		input:  newFakeInput(),
		done:   make(chan struct{}),
		t:      t,
	}
	tp.program = tea.NewProgram(
		model,
		tea.WithInput(tp.input),
		tea.WithOutput(tp.output),
	)

	go func() {
		defer close(tp.done)
		final, err := tp.program.Run()
		if err != nil {
			t.Logf("Program error: %v", err)
		}
		tp.final = final
	}()

	time.Sleep(settle)
	tp.Send(tea.WindowSizeMsg{Width: width, Height: height})

	t.Cleanup(func() {
		tp.program.Kill()
		<-tp.done
	})
	return tp
}

// Send sends a message to the program
func (tp *TestProgram) Send(msg tea.Msg) {
	tp.program.Send(msg)
	time.Sleep(settle)
}

// Type simulates typing a string
func (tp *TestProgram) Type(s string) {
	for _, r := range s {
		tp.Send(tea.KeyMsg{
			Type:  tea.KeyRunes,
			Runes: []rune{r},
		})
	}
}

// SendKey sends a specific key press
func (tp *TestProgram) SendKey(key tea.KeyType) {
	tp.Send(tea.KeyMsg{Type: key})
}

// Output returns everything the program has rendered so far
func (tp *TestProgram) Output() string {
	return tp.output.String()
}

// WaitForOutput waits for specific text to appear in output
func (tp *TestProgram) WaitForOutput(needle string, timeout time.Duration) bool {
	tp.t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(tp.Output(), needle) {
			return true
		}
		time.Sleep(settle)
	}
	return false
}

// AssertContains checks if output contains expected text
func (tp *TestProgram) AssertContains(expected string) {
	tp.t.Helper()

	if output := tp.Output(); !strings.Contains(output, expected) {
		tp.t.Errorf("Output does not contain %q\nGot:\n%s", expected, output)
	}
}

// WaitForExit waits for the program to stop and returns its final model,
// or nil on timeout
func (tp *TestProgram) WaitForExit(timeout time.Duration) tea.Model {
	tp.t.Helper()

	select {
	case <-tp.done:
		return tp.final
	case <-time.After(timeout):
		return nil
	}
}

// Quit stops the program
func (tp *TestProgram) Quit() {
	tp.program.Quit()
}
