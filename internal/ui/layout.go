// internal/ui/layout.go

package ui

import (
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
)

// BaseLayout splits the terminal into header, content and footer.
type BaseLayout struct {
	Width         int
	Height        int
	HeaderHeight  int
	FooterHeight  int
	ContentHeight int
}

func NewBaseLayout(width, height int) BaseLayout {
	const (
		headerHeight = 2
		footerHeight = 7
	)

	content := height - headerHeight - footerHeight
	if content < 3 {
		content = 3
	}

	return BaseLayout{
		Width:         width,
		Height:        height,
		HeaderHeight:  headerHeight,
		FooterHeight:  footerHeight,
		ContentHeight: content,
	}
}

// SplitView returns the styles of the two side-by-side panels.
func (l BaseLayout) SplitView() (left, right lipgloss.Style) {
	// window border and padding plus the gap between the panels
	inner := l.Width - 10
	leftWidth := inner * 2 / 5
	if leftWidth < 20 {
		leftWidth = 20
	}
	rightWidth := inner - leftWidth
	if rightWidth < 30 {
		rightWidth = 30
	}

	left = PanelStyle.Width(leftWidth).Height(l.ContentHeight)
	right = PanelStyle.Width(rightWidth).Height(l.ContentHeight)
	return left, right
}

// CreateLipglossTable renders a bordered table with the current theme.
func CreateLipglossTable(headers []string, rows [][]string) string {
	return newTable(headers).Rows(rows...).Render()
}

func newTable(headers []string) *ltable.Table {
	tableStyle := func(row, col int) lipgloss.Style {
		switch {
		case row == ltable.HeaderRow:
			return HeaderStyle
		default:
			return CellStyle
		}
	}

	return ltable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(Border)).
		StyleFunc(tableStyle).
		Headers(headers...)
}

// ShortcutTable renders one row of key hints under their action names.
func ShortcutTable(actions, keys []string) string {
	return newTable(actions).Row(keys...).Render()
}
