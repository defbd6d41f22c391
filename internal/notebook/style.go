package notebook

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})
	nameStyle = lipgloss.NewStyle().Faint(true)
)

// header renders the banner printed before each cell.
func header(index int, c Cell) string {
	return titleStyle.Render(strings.Repeat("─", 3)+" ["+strconv.Itoa(index+1)+"] "+c.Title) +
		" " + nameStyle.Render("("+c.Name+")")
}

func indent(text, prefix string) string {
	return prefix + strings.ReplaceAll(text, "\n", "\n"+prefix)
}
