package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	ColorSuccess = lipgloss.AdaptiveColor{Light: "2", Dark: "2"}
	ColorError   = lipgloss.AdaptiveColor{Light: "1", Dark: "1"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "3", Dark: "3"}
	ColorInfo    = lipgloss.AdaptiveColor{Light: "6", Dark: "6"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "8", Dark: "8"}

	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleInfo    = lipgloss.NewStyle().Foreground(ColorInfo)
	StyleMuted   = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleBold    = lipgloss.NewStyle().Bold(true)
)

func PrintHeader(w io.Writer, msg string) {
	fmt.Fprintf(w, "\n%s\n", StyleBold.Render(msg))
}

func PrintSuccess(w io.Writer, label, detail string) {
	fmt.Fprintf(w, "  %s %-15s %s\n", StyleSuccess.Render("✔"), label, StyleSuccess.Render(detail))
}

func PrintError(w io.Writer, label, detail string) {
	fmt.Fprintf(w, "  %s %-15s %s\n", StyleError.Render("✘"), label, StyleError.Render(detail))
}

func PrintWarning(w io.Writer, label, detail string) {
	fmt.Fprintf(w, "  %s %-15s %s\n", StyleWarning.Render("!"), label, StyleWarning.Render(detail))
}

// PrintTable writes rows as left-aligned columns under a muted header line.
func PrintTable(w io.Writer, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, r := range rows {
		for i, cell := range r {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	line := func(cells []string) string {
		parts := make([]string, len(cells))
		for i, c := range cells {
			if i == len(cells)-1 {
				parts[i] = c
				continue
			}
			parts[i] = c + strings.Repeat(" ", widths[i]-len(c))
		}
		return strings.Join(parts, "  ")
	}

	fmt.Fprintln(w, StyleMuted.Render(line(headers)))
	for _, r := range rows {
		fmt.Fprintln(w, line(r))
	}
}
