package presentation

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Console-only styling. Never route these through the tee writer: the
// log file must stay free of escape sequences.
var (
	successColor = lipgloss.Color("#85DCB0") // mint green
	errorColor   = lipgloss.Color("#E85D75") // soft red

	successStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)
)

// ConsoleNotice prints a styled completion message to the console.
func ConsoleNotice(w io.Writer, msg string) {
	fmt.Fprintln(w, successStyle.Render(msg))
}

// ErrorNotice prints a styled fatal error to the console.
func ErrorNotice(w io.Writer, msg string) {
	fmt.Fprintln(w, errorStyle.Render(msg))
}
