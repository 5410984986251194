package views

import (
	"fmt"
	"strings"

	apperr "sshTui/internal/error"
	"sshTui/internal/logger"
	"sshTui/internal/ssh"
	"sshTui/internal/sshconfig"
	"sshTui/internal/ui"
	"sshTui/internal/ui/components"
	"sshTui/internal/ui/messages"
	"sshTui/internal/utils"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	defaultClipboardWrite = clipboard.WriteAll
	clipboardWrite        = defaultClipboardWrite
)

type mainView struct {
	model        *ui.Model
	width        int
	height       int
	popup        *components.Popup
	fingerprints map[string]string
}

func NewMainView(model *ui.Model) *mainView {
	return &mainView{
		model:        model,
		width:        model.GetTerminalWidth(),
		height:       model.GetTerminalHeight(),
		fingerprints: make(map[string]string),
	}
}

func (v *mainView) Init() tea.Cmd {
	return nil
}

func (v *mainView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.model.UpdateWindowSize(msg.Width, msg.Height)
		return v, nil

	case messages.SessionEndedMsg:
		v.model.SetConnectResult(msg.Result, msg.Err)
		if err := v.model.Refresh(msg.Host); err != nil {
			v.model.SetStatus(fmt.Sprintf("Error: %v", err), true)
		}
		return v, nil

	case messages.ClipboardMsg:
		if msg.Err != nil {
			v.model.SetStatus(fmt.Sprintf("Error: failed to copy to clipboard: %v", msg.Err), true)
		} else {
			v.model.SetStatus(fmt.Sprintf("Copied '%s' to clipboard", msg.Text), false)
		}
		return v, nil

	case tea.KeyMsg:
		if v.popup != nil {
			return v.handlePopupKey(msg)
		}
		return v.handleKey(msg)
	}

	return v, nil
}

func (v *mainView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := v.model.Keys()

	switch {
	case key.Matches(msg, keys.Quit):
		v.model.SetQuitting(true)
		return v, tea.Quit

	case key.Matches(msg, keys.Up):
		v.model.Previous()

	case key.Matches(msg, keys.Down):
		v.model.Next()

	case key.Matches(msg, keys.New):
		v.model.ClearStatus()
		v.model.EnterNewMode()
		v.model.SetActiveView(ui.ViewEdit)

	case key.Matches(msg, keys.Edit):
		if !v.model.EnterEditMode() {
			v.model.SetStatus("No host selected", true)
			return v, nil
		}
		v.model.ClearStatus()
		v.model.SetActiveView(ui.ViewEdit)

	case key.Matches(msg, keys.Delete):
		name := v.model.SelectedHostName()
		if name == "" {
			v.model.SetStatus("No host selected", true)
			return v, nil
		}
		v.popup = components.NewPopup(
			components.PopupDelete,
			"Delete Host",
			fmt.Sprintf("Remove the block for '%s' from\n%s?", name, utils.CollapseHome(v.model.Store().Path())),
			50,
			7,
			v.width,
			v.height,
		)

	case key.Matches(msg, keys.Copy):
		name := v.model.SelectedHostName()
		if name == "" {
			v.model.SetStatus("No host selected", true)
			return v, nil
		}
		return v, copyConnectCommand(name)

	case key.Matches(msg, keys.Connect):
		return v.handleConnect()

	case key.Matches(msg, keys.Refresh):
		if err := v.model.Refresh(v.model.SelectedHostName()); err != nil {
			v.model.SetStatus(fmt.Sprintf("Error: %v", err), true)
			return v, nil
		}
		clear(v.fingerprints)
		v.model.SetStatus(fmt.Sprintf("Loaded %d hosts", len(v.model.Hosts())), false)

	case key.Matches(msg, keys.Restore):
		v.popup = components.NewPopup(
			components.PopupRestore,
			"Restore Backup",
			fmt.Sprintf("Replace the SSH config with\n%s?", utils.CollapseHome(v.model.Store().BackupPath())),
			50,
			7,
			v.width,
			v.height,
		)

	case key.Matches(msg, keys.Theme):
		name := ui.SwitchTheme()
		v.model.SetStatus(fmt.Sprintf("Theme: %s", name), false)
	}

	return v, nil
}

func (v *mainView) handlePopupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := v.model.Keys()
	popup := v.popup

	if !popup.NeedsConfirmation() {
		if msg.String() == "esc" || msg.String() == "enter" {
			v.popup = nil
		}
		return v, nil
	}

	switch {
	case key.Matches(msg, keys.Confirm):
		v.popup = nil
		switch popup.Type {
		case components.PopupDelete:
			name := v.model.SelectedHostName()
			if err := v.model.DeleteSelected(); err != nil {
				logger.L.WithError(err).WithField("host", name).Error("failed to delete host")
			}
		case components.PopupRestore:
			if err := v.model.RestoreBackup(); err != nil {
				logger.L.WithError(err).Error("failed to restore ssh config backup")
			}
			clear(v.fingerprints)
		}
	case key.Matches(msg, keys.Deny):
		v.popup = nil
		v.model.ClearStatus()
	}
	return v, nil
}

// handleConnect suspends the program and runs the SSH client in the
// foreground. The result comes back as a SessionEndedMsg.
func (v *mainView) handleConnect() (tea.Model, tea.Cmd) {
	name := v.model.SelectedHostName()
	if name == "" {
		v.model.SetStatus("No host selected", true)
		return v, nil
	}

	session := v.model.Connection().Command(name)
	v.model.SetStatus(fmt.Sprintf("Connecting to %s...", name), false)

	return v, tea.Exec(session, func(err error) tea.Msg {
		return messages.SessionEndedMsg{
			Host:   name,
			Result: session.Result(),
			Err:    err,
		}
	})
}

func copyConnectCommand(host string) tea.Cmd {
	text := "ssh " + host
	return func() tea.Msg {
		return messages.ClipboardMsg{Text: text, Err: clipboardWrite(text)}
	}
}

func (v *mainView) View() string {
	if v.popup != nil {
		v.popup.ScreenWidth = v.width
		v.popup.ScreenHeight = v.height
		return v.popup.Render()
	}

	layout := ui.NewBaseLayout(v.width, v.height)

	var content strings.Builder
	content.WriteString(ui.TitleStyle.Render("ssh-tui ❯ "+utils.CollapseHome(v.model.Store().Path())) + "\n\n")

	leftStyle, rightStyle := layout.SplitView()
	mainContent := lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftStyle.Render(v.renderHostPanel(layout.ContentHeight)),
		"  ",
		rightStyle.Render(v.renderDetailsPanel()),
	)
	content.WriteString(mainContent + "\n\n")
	content.WriteString(v.renderStatusBar())

	return lipgloss.Place(
		v.width,
		v.height,
		lipgloss.Left,
		lipgloss.Top,
		ui.WindowStyle.Render(content.String()),
		lipgloss.WithWhitespaceChars(""),
	)
}

func (v *mainView) renderHostPanel(height int) string {
	hosts := v.model.Hosts()
	title := ui.SelectedItemStyle.Render(fmt.Sprintf("Hosts (%d)", len(hosts)))

	if len(hosts) == 0 {
		return title + "\n" + ui.DescriptionStyle.Render("\nNo hosts found\nPress 'n' to add a new host")
	}

	// keep the selection inside the visible window
	visible := max(height-2, 1)
	start := 0
	if v.model.Selected() >= visible {
		start = v.model.Selected() - visible + 1
	}
	end := min(start+visible, len(hosts))

	var content strings.Builder
	for i := start; i < end; i++ {
		name := ui.HostStyle.Render(hosts[i].Host)
		if i == v.model.Selected() {
			content.WriteString("\n" + ui.SuccessStyle.Render("❯ ") + ui.SelectedItemStyle.Render(hosts[i].Host))
		} else {
			content.WriteString("\n  " + name)
		}
	}

	return title + content.String()
}

func (v *mainView) renderDetailsPanel() string {
	title := ui.SelectedItemStyle.Render("Host Details")

	entry, ok := v.model.SelectedHost()
	if !ok {
		return title
	}

	eff, err := v.model.Effective(entry.Host)
	if err != nil {
		eff = sshconfig.Effective{}
	}

	var content strings.Builder
	row := func(label, own, effective string) {
		value := ui.Infotext.Render(own)
		if own == "" && effective != "" {
			value = ui.DescriptionStyle.UnsetMarginLeft().Render(effective + " (inherited)")
		}
		content.WriteString(fmt.Sprintf("\n%s %s", ui.LabelStyle.Render(fmt.Sprintf("%-13s", label+":")), value))
	}

	row("Host", entry.Host, "")
	row("HostName", entry.HostName, eff.HostName)
	row("User", entry.User, eff.User)
	row("Port", entry.Port, eff.Port)
	row("IdentityFile", entry.IdentityFile, eff.IdentityFile)
	row("ProxyCommand", entry.ProxyCommand, eff.ProxyCommand)

	identity := entry.IdentityFile
	if identity == "" {
		identity = eff.IdentityFile
	}
	if identity != "" {
		row("Key", v.fingerprint(identity), "")
	}

	if n := countDirectives(entry.Extra); n > 0 {
		content.WriteString("\n\n" + ui.DescriptionStyle.UnsetMarginLeft().Render(
			fmt.Sprintf("%d other directive(s) kept as written", n)))
	}

	return title + content.String()
}

func (v *mainView) fingerprint(identity string) string {
	if fp, ok := v.fingerprints[identity]; ok {
		return fp
	}

	var fp string
	info, err := ssh.Fingerprint(identity)
	switch {
	case err == nil:
		fp = fmt.Sprintf("%s %s", info.Type, info.Fingerprint)
	case apperr.IsNotFound(err):
		fp = "no public key next to identity file"
	default:
		fp = "unreadable public key"
	}

	v.fingerprints[identity] = fp
	return fp
}

func countDirectives(extra []string) int {
	n := 0
	for _, line := range extra {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(trimmed, "#") {
			n++
		}
	}
	return n
}

func (v *mainView) renderStatusBar() string {
	var status string
	st := v.model.Status()
	switch {
	case st.Message != "" && st.IsError:
		status = ui.ErrorStyle.Render(st.Message)
	case st.Message != "":
		status = ui.SuccessStyle.Render(st.Message)
	default:
		status = ui.DescriptionStyle.Render("To restore the SSH config from its backup press: ctrl + r")
	}

	actions := []string{"Connect", "Navigate", "New", "Edit", "Delete", "Copy", "Reload", "Theme", "Quit"}
	shortcuts := []string{"enter/c", "↑↓/j/k", "n", "i/e", "d", "y", "r", "space", "q/^c"}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		status,
		ui.ShortcutTable(actions, shortcuts),
	)
}
