package components

import (
	"strings"

	"sshTui/internal/ui"

	"github.com/charmbracelet/lipgloss"
)

type PopupType int

const (
	PopupNone PopupType = iota
	PopupDelete
	PopupRestore
	PopupMessage
)

type Popup struct {
	Type         PopupType
	Title        string
	Message      string
	Width        int
	Height       int
	ScreenWidth  int
	ScreenHeight int
}

func NewPopup(popupType PopupType, title, message string, width, height, screenWidth, screenHeight int) *Popup {
	return &Popup{
		Type:         popupType,
		Title:        title,
		Message:      message,
		Width:        width,
		Height:       height,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

// NeedsConfirmation reports whether the popup waits for y/n.
func (p *Popup) NeedsConfirmation() bool {
	return p.Type == PopupDelete || p.Type == PopupRestore
}

func (p *Popup) Render() string {
	popupStyle := ui.DialogStyle.
		Width(p.Width).
		Height(p.Height)

	titleStyle := ui.TitleStyle.
		Align(lipgloss.Center).
		Width(p.Width - 4)

	var content strings.Builder
	content.WriteString(titleStyle.Render(p.Title) + "\n\n")
	content.WriteString(p.Message + "\n")

	var keys string
	switch p.Type {
	case PopupDelete, PopupRestore:
		keys = "y - Yes, n - No"
	default:
		keys = "ESC/ENTER - Close"
	}
	content.WriteString("\n" + ui.DescriptionStyle.Render(keys))

	return lipgloss.Place(
		p.ScreenWidth,
		p.ScreenHeight,
		lipgloss.Center,
		lipgloss.Center,
		popupStyle.Render(content.String()),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("0")),
	)
}
