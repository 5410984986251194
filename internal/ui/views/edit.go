// internal/ui/views/edit.go

package views

import (
	"fmt"
	"strings"

	"sshTui/internal/ui"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// editView binds one text input to each form field. The inputs handle the
// keystrokes and every change is copied into the model's form.
type editView struct {
	model  *ui.Model
	inputs []textinput.Model
	width  int
	height int
}

func NewEditView(model *ui.Model) *editView {
	fields := ui.FormFields()
	v := &editView{
		model:  model,
		inputs: make([]textinput.Model, len(fields)),
		width:  model.GetTerminalWidth(),
		height: model.GetTerminalHeight(),
	}

	for i, f := range fields {
		t := textinput.New()
		t.Placeholder = f.Placeholder()
		// no limit: a limit shorter than a loaded value would truncate it on save
		t.CharLimit = 0
		t.SetValue(model.FieldValue(f))
		v.inputs[i] = t
	}
	v.syncFocus()

	return v
}

func (v *editView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *editView) syncFocus() {
	for i := range v.inputs {
		if ui.FormField(i) == v.model.FormField() {
			v.inputs[i].Focus()
			v.inputs[i].CursorEnd()
		} else {
			v.inputs[i].Blur()
		}
	}
}

func (v *editView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keys := v.model.Keys()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.model.UpdateWindowSize(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch {
		case msg.String() == "ctrl+c":
			v.model.SetQuitting(true)
			return v, tea.Quit

		case key.Matches(msg, keys.Cancel):
			v.model.CancelForm()
			v.model.SetActiveView(ui.ViewMain)
			return v, nil

		case key.Matches(msg, keys.Save):
			if v.model.SaveForm() {
				v.model.SetActiveView(ui.ViewMain)
			}
			return v, nil

		case key.Matches(msg, keys.NextField):
			v.model.FocusNext()
			v.syncFocus()
			return v, nil

		case key.Matches(msg, keys.PrevField):
			v.model.FocusPrevious()
			v.syncFocus()
			return v, nil
		}
	}

	field := v.model.FormField()
	var cmd tea.Cmd
	v.inputs[field], cmd = v.inputs[field].Update(msg)
	v.model.SetFieldValue(field, v.inputs[field].Value())

	return v, cmd
}

func (v *editView) View() string {
	contentWidth := max(min(v.width-20, 100), 40)

	title := "Add New Host"
	if v.model.State() == ui.StateEdit {
		title = fmt.Sprintf("Edit Host '%s'", v.model.OriginalName())
	}

	var content strings.Builder
	content.WriteString(ui.TitleStyle.Render(title) + "\n\n")

	fields := ui.FormFields()
	labels := make([]string, len(fields))
	for i, f := range fields {
		labels[i] = f.Label() + ":"
	}
	labelWidth := ui.GetMaxWidth(labels) + 1
	inputWidth := contentWidth - labelWidth - 8

	for i, input := range v.inputs {
		style := ui.InputStyle
		if ui.FormField(i) == v.model.FormField() {
			style = ui.FocusedInputStyle
		}
		line := lipgloss.JoinHorizontal(
			lipgloss.Center,
			ui.LabelStyle.Width(labelWidth).Render(labels[i]),
			style.Width(inputWidth).Render(input.View()),
		)
		content.WriteString(line + "\n")
	}

	if n := countDirectives(v.model.FormEntry().Extra); n > 0 {
		content.WriteString("\n" + ui.DescriptionStyle.Render(
			fmt.Sprintf("%d other directive(s) in this block are kept unchanged", n)) + "\n")
	}

	if errMsg := v.model.FormError(); errMsg != "" {
		content.WriteString("\n" + ui.ErrorStyle.Render(errMsg) + "\n")
	}

	content.WriteString("\n" + renderControls(
		control{"ENTER", "Save"},
		control{"ESC", "Cancel"},
		control{"TAB/↑↓", "Navigate"},
	))

	return lipgloss.Place(
		v.width,
		v.height,
		lipgloss.Center,
		lipgloss.Center,
		ui.WindowStyle.Width(contentWidth).Render(content.String()),
		lipgloss.WithWhitespaceChars(""),
	)
}

type control struct {
	key, description string
}

func renderControls(controls ...control) string {
	var content string
	for i, ctrl := range controls {
		if i > 0 {
			content += "    "
		}
		content += ui.ButtonStyle.Render(ctrl.key) + " - " + ctrl.description
	}
	return content
}
