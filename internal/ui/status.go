package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Notice styles for plain CLI output. fatih/color honours NO_COLOR and
// disables itself when stdout is not a terminal.
var (
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	mutedColor   = color.New(color.FgHiBlack)
	headingColor = color.New(color.FgHiBlue, color.Bold)
)

// Success returns success-styled text
func Success(format string, a ...any) string {
	return successColor.Sprintf(format, a...)
}

// Warn returns warning-styled text
func Warn(format string, a ...any) string {
	return warnColor.Sprintf(format, a...)
}

// Error returns error-styled text
func Error(format string, a ...any) string {
	return errorColor.Sprintf(format, a...)
}

// Info returns informational text
func Info(format string, a ...any) string {
	return infoColor.Sprintf(format, a...)
}

// Muted returns secondary/hint text
func Muted(format string, a ...any) string {
	return mutedColor.Sprintf(format, a...)
}

// Heading returns bold text for section headers
func Heading(format string, a ...any) string {
	return headingColor.Sprintf(format, a...)
}

// Notify writes a status line prefixed with a symbol for its level.
// level is one of "success", "warn", "error"; anything else is info.
func Notify(w io.Writer, level, msg string) {
	var line string
	switch level {
	case "success":
		line = Success("✓ ") + msg
	case "warn":
		line = Warn("! ") + msg
	case "error":
		line = Error("✗ ") + msg
	default:
		line = Info("• ") + msg
	}
	fmt.Fprintln(w, line)
}
