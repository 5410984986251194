// internal/ui/styles.go

package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors and styles are rebuilt by updateStyles whenever the theme changes.
var (
	Subtle    lipgloss.Color
	Highlight lipgloss.Color
	Special   lipgloss.Color
	Error     lipgloss.Color
	StatusBar lipgloss.Color
	Border    lipgloss.Color

	BaseStyle         lipgloss.Style
	TitleStyle        lipgloss.Style
	SelectedItemStyle lipgloss.Style
	ItemStyle         lipgloss.Style
	DescriptionStyle  lipgloss.Style
	Infotext          lipgloss.Style
	HostStyle         lipgloss.Style
	LabelStyle        lipgloss.Style
	InputStyle        lipgloss.Style
	FocusedInputStyle lipgloss.Style
	ButtonStyle       lipgloss.Style
	SuccessStyle      lipgloss.Style
	ErrorStyle        lipgloss.Style
	WindowStyle       lipgloss.Style
	PanelStyle        lipgloss.Style
	DialogStyle       lipgloss.Style
	HeaderStyle       lipgloss.Style
	CellStyle         lipgloss.Style
)

func init() {
	updateStyles(themes[currentThemeIndex])
}

// GetMaxWidth returns the widest rendered string in items.
func GetMaxWidth(items []string) int {
	maxWidth := 0
	for _, item := range items {
		if w := lipgloss.Width(item); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}
