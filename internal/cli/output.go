package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/tefra/lastfm/internal/lastfm"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

// count renders an optional counter, "-" when absent.
func count(n *int64) string {
	if n == nil {
		return "-"
	}
	return humanize.Comma(*n)
}

// tagNames joins tag names for one-line display.
func tagNames(tags []lastfm.Tag) string {
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}
	return strings.Join(names, ", ")
}
