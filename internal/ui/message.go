package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// MessageType selects the styling of a status line message
type MessageType int

const (
	MessageTypeInfo MessageType = iota
	MessageTypeSuccess
	MessageTypeWarning
	MessageTypeError
)

// minMessageLength keeps messages readable on very narrow terminals
const minMessageLength = 20

// RenderMessage renders a status message with styling based on its type.
// Long messages are truncated to fit the terminal width.
func RenderMessage(text string, msgType MessageType, theme *Theme, width int) string {
	if text == "" {
		return ""
	}

	// prefix (2) + margin (5)
	maxMessageLength := width - 7
	if maxMessageLength < minMessageLength {
		maxMessageLength = minMessageLength
	}
	if runes := []rune(text); len(runes) > maxMessageLength {
		text = string(runes[:maxMessageLength-1]) + "…"
	}

	var messageColor lipgloss.Color
	switch msgType {
	case MessageTypeSuccess:
		messageColor = theme.MessageSuccess
	case MessageTypeWarning:
		messageColor = theme.MessageWarning
	case MessageTypeError:
		messageColor = theme.MessageError
	default:
		messageColor = theme.MessageInfo
	}

	return lipgloss.NewStyle().Foreground(messageColor).Render("⏺ " + text)
}
