// Package static renders non-interactive terminal output.
package static

import (
	"io"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-isatty"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).PaddingRight(2)
	cellStyle   = lipgloss.NewStyle().PaddingRight(2)
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("62")).PaddingRight(2)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// RenderTable creates a borderless table with aligned columns.
// Returns "" when there are no rows.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	t := borderless(table.New()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	return t.String() + "\n"
}

// RenderKeyValue renders two-column key/value pairs without headers.
// Empty values are shown as a muted "-".
func RenderKeyValue(pairs [][2]string) string {
	if len(pairs) == 0 {
		return ""
	}

	rows := make([][]string, len(pairs))
	for i, p := range pairs {
		value := p[1]
		if value == "" {
			value = mutedStyle.Render("-")
		}
		rows[i] = []string{p[0], value}
	}

	t := borderless(table.New()).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return keyStyle
			}
			return cellStyle
		})

	return t.String() + "\n"
}

func borderless(t *table.Table) *table.Table {
	return t.
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false)
}

// NewWriter wraps w so styled output is downsampled to what the terminal
// supports. With color false, or when w is not a terminal, all styling is
// stripped.
func NewWriter(w io.Writer, color bool) io.Writer {
	cw := colorprofile.NewWriter(w, os.Environ())
	if !color || !IsTerminal(w) {
		cw.Profile = colorprofile.NoTTY
	}
	return cw
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Plain removes trailing padding from each line of rendered output.
func Plain(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}
