package bubbletea

import "github.com/charmbracelet/lipgloss"

// tabWidth is the standard terminal tab stop interval.
const tabWidth = 8

// DisplayWidth calculates the display width of a string, expanding tab
// characters to the next 8-column boundary. lipgloss.Width alone
// reports 0 for tabs.
func DisplayWidth(s string) int {
	col := 0
	for _, r := range s {
		if r == '\t' {
			col = ((col / tabWidth) + 1) * tabWidth
			continue
		}
		col += lipgloss.Width(string(r))
	}
	return col
}

// Truncate cuts s to at most max display columns, appending an
// ellipsis when anything was removed. Tabs count per DisplayWidth.
func Truncate(s string, max int) string {
	if max <= 0 || DisplayWidth(s) <= max {
		return s
	}
	col := 0
	var out []rune
	for _, r := range s {
		w := lipgloss.Width(string(r))
		if r == '\t' {
			w = ((col/tabWidth)+1)*tabWidth - col
		}
		if col+w > max-1 {
			break
		}
		col += w
		out = append(out, r)
	}
	return string(out) + "…"
}
