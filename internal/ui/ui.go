// Package ui holds the CLI's lipgloss styles and the info-document banner.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette.
var (
	ColorSuccess = lipgloss.Color("#00D787")
	ColorError   = lipgloss.Color("#FF5F87")
	ColorWarning = lipgloss.Color("#FFAF00")
	ColorInfo    = lipgloss.Color("#5FAFFF")
	ColorMuted   = lipgloss.Color("#888888")
)

// Text styles.
var (
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	StyleInfo    = lipgloss.NewStyle().Foreground(ColorInfo)
	StyleMuted   = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleRule    = lipgloss.NewStyle().Foreground(ColorInfo)
)

const ruleWidth = 72

// Rule returns a horizontal banner line.
func Rule() string {
	return StyleRule.Render(strings.Repeat("═", ruleWidth))
}

// Banner writes content framed between two banner lines. Scaffolding uses
// it to surface a template's info document for non-default templates.
func Banner(w io.Writer, content string) {
	fmt.Fprintln(w, Rule())
	fmt.Fprint(w, content)
	if !strings.HasSuffix(content, "\n") {
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, Rule())
}

// Successf writes a success-styled line.
func Successf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, StyleSuccess.Render(fmt.Sprintf(format, args...)))
}

// Warnf writes a warning-styled line.
func Warnf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, StyleWarning.Render(fmt.Sprintf(format, args...)))
}
