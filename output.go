package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// summaryStyles holds one style per rendered field.
type summaryStyles struct {
	Path    lipgloss.Style
	Size    lipgloss.Style
	Branch  lipgloss.Style
	Project lipgloss.Style
	Error   lipgloss.Style
}

// newSummaryStyles builds the styles against w, so colors are dropped when w
// is not a terminal.
func newSummaryStyles(w io.Writer, colors colorConfig) summaryStyles {
	r := lipgloss.NewRenderer(w)
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return summaryStyles{
		Path:    base.Foreground(lipgloss.Color(colors.Path)),
		Size:    base.Foreground(lipgloss.Color(colors.Size)),
		Branch:  base.Foreground(lipgloss.Color(colors.Branch)),
		Project: base.Foreground(lipgloss.Color(colors.Project)),
		Error:   base.Foreground(lipgloss.Color(colors.Error)),
	}
}

// paint colors s without altering its text. Render rewrites "\r\n" and pads
// multi-line input to a block, so each line is rendered on its own.
func paint(style lipgloss.Style, s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// printSummary writes the one-line summary to w.
func printSummary(w io.Writer, s Summary) error {
	styles := newSummaryStyles(w, currentSettings().Colors)
	_, err := fmt.Fprintf(w, "%s | %s | %s | %s\n",
		paint(styles.Path, s.Path),
		paint(styles.Size, s.Size),
		paint(styles.Branch, s.Branch),
		paint(styles.Project, s.ProjectType),
	)
	return err
}

// printError writes a fatal error line to w with the error text highlighted.
func printError(w io.Writer, msg string, err error) {
	styles := newSummaryStyles(w, currentSettings().Colors)
	fmt.Fprintf(w, "%s: %s\n", msg, paint(styles.Error, err.Error()))
}
