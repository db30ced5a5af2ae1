package menu

import (
	"fmt"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// console color palette
type styles struct {
	MainMenu	lipgloss.Style
	SubMenu		lipgloss.Style
	Header		lipgloss.Style
	Content		lipgloss.Style
	Success		lipgloss.Style
	Error		lipgloss.Style
}

// newStyles returns the menu color palette, or an unstyled palette when the
// output is not a terminal
func newStyles(colored bool) styles {
	if !colored {
		plain := lipgloss.NewStyle()
		return styles{plain, plain, plain, plain, plain, plain}
	}
	return styles{
		MainMenu: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		SubMenu: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Header: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Content: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

func (m *Menu) println(style lipgloss.Style, format string, args ...interface{}) {
	fmt.Fprintln(m.out, style.Render(fmt.Sprintf(format, args...)))
}

// prompt prints the given label and reads one line of input
func (m *Menu) prompt(style lipgloss.Style, label string) (string, error) {
	fmt.Fprint(m.out, style.Render(label), " ")
	return m.in.ReadLine()
}

// renderTable prints the given rows as a grid with the given headers
func (m *Menu) renderTable(headers []string, rows [][]string) {
	grid := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(m.styles.Header).
		StyleFunc(func (row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return m.styles.Header.Padding(0, 1)
			}
			return m.styles.Content.Padding(0, 1)
		}).
		Headers(headers...).
		Rows(rows...)
	fmt.Fprintln(m.out, grid.String())
}
