package ui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name string

	Subtle    lipgloss.Color
	Highlight lipgloss.Color
	Special   lipgloss.Color
	Error     lipgloss.Color
	StatusBar lipgloss.Color
	Border    lipgloss.Color

	InfotextColor lipgloss.Color
	HostColor     lipgloss.Color
	LabelColor    lipgloss.Color
	InputColor    lipgloss.Color
}

var (
	currentThemeIndex = 0

	themes = []Theme{
		{
			Name:      "Default",
			Subtle:    lipgloss.Color("#6C7086"),
			Highlight: lipgloss.Color("#7DC4E4"),
			Special:   lipgloss.Color("#FF9E64"),
			Error:     lipgloss.Color("#F38BA8"),
			StatusBar: lipgloss.Color("#E7E7E7"),
			Border:    lipgloss.Color("#33B2FF"),

			InfotextColor: lipgloss.Color("#FF3A99"),
			HostColor:     lipgloss.Color("#2DAFFF"),
			LabelColor:    lipgloss.Color("#A6ADC8"),
			InputColor:    lipgloss.Color("#FFFFFF"),
		},
		{
			Name:      "Dracula",
			Subtle:    lipgloss.Color("#6272A4"),
			Highlight: lipgloss.Color("#8BE9FD"),
			Special:   lipgloss.Color("#FF79C6"),
			Error:     lipgloss.Color("#FF5555"),
			StatusBar: lipgloss.Color("#44475A"),
			Border:    lipgloss.Color("#BD93F9"),

			InfotextColor: lipgloss.Color("#F1FA8C"),
			HostColor:     lipgloss.Color("#8BE9FD"),
			LabelColor:    lipgloss.Color("#F8F8F2"),
			InputColor:    lipgloss.Color("#F8F8F2"),
		},
		{
			Name:      "Solarized Light",
			Subtle:    lipgloss.Color("#93A1A1"),
			Highlight: lipgloss.Color("#268BD2"),
			Special:   lipgloss.Color("#859900"),
			Error:     lipgloss.Color("#DC322F"),
			StatusBar: lipgloss.Color("#EEE8D5"),
			Border:    lipgloss.Color("#2AA198"),

			InfotextColor: lipgloss.Color("#B58900"),
			HostColor:     lipgloss.Color("#268BD2"),
			LabelColor:    lipgloss.Color("#586E75"),
			InputColor:    lipgloss.Color("#073642"),
		},
	}
)

// SwitchTheme moves to the next theme and returns its name.
func SwitchTheme() string {
	currentThemeIndex = (currentThemeIndex + 1) % len(themes)
	currentTheme := themes[currentThemeIndex]
	updateStyles(currentTheme)
	return currentTheme.Name
}

func CurrentTheme() Theme {
	return themes[currentThemeIndex]
}

func updateStyles(theme Theme) {
	Subtle = theme.Subtle
	Highlight = theme.Highlight
	Special = theme.Special
	Error = theme.Error
	StatusBar = theme.StatusBar
	Border = theme.Border

	BaseStyle = lipgloss.NewStyle().
		Foreground(Subtle).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Border)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight).
		MarginLeft(2)

	SelectedItemStyle = lipgloss.NewStyle().
		Foreground(Highlight).
		Bold(true)

	ItemStyle = lipgloss.NewStyle().
		Foreground(theme.HostColor)

	DescriptionStyle = lipgloss.NewStyle().
		Foreground(Subtle).
		MarginLeft(2)

	Infotext = lipgloss.NewStyle().
		Foreground(theme.InfotextColor)

	HostStyle = lipgloss.NewStyle().
		Foreground(theme.HostColor)

	LabelStyle = lipgloss.NewStyle().
		Foreground(theme.LabelColor)

	InputStyle = lipgloss.NewStyle().
		Foreground(theme.InputColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Subtle).
		Padding(0, 1)

	FocusedInputStyle = InputStyle.
		BorderForeground(Highlight)

	ButtonStyle = lipgloss.NewStyle().
		Foreground(Special).
		Bold(true)

	SuccessStyle = lipgloss.NewStyle().
		Foreground(Special).
		Bold(true)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	WindowStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	DialogStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	HeaderStyle = lipgloss.NewStyle().
		Foreground(Highlight).
		Bold(true).
		Padding(0, 1)

	CellStyle = lipgloss.NewStyle().
		Foreground(Special).
		Padding(0, 1)
}
