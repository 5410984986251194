package main

import (
	"os"

	"sshTui/internal/ui"
	"sshTui/internal/ui/views"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// programModel owns the shared ui.Model and swaps the current view whenever
// the active view changes.
type programModel struct {
	uiModel     *ui.Model
	currentView tea.Model
}

func newProgramModel(uiModel *ui.Model) *programModel {
	m := &programModel{uiModel: uiModel}
	m.updateCurrentView()
	return m
}

func (m *programModel) Init() tea.Cmd {
	return m.currentView.Init()
}

func (m *programModel) updateCurrentView() {
	switch m.uiModel.GetActiveView() {
	case ui.ViewEdit:
		m.currentView = views.NewEditView(m.uiModel)
	default:
		m.currentView = views.NewMainView(m.uiModel)
		m.uiModel.SetActiveView(ui.ViewMain)
	}
}

func (m *programModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.uiModel.IsQuitting() {
		return m, tea.Quit
	}

	activeView := m.uiModel.GetActiveView()

	var cmd tea.Cmd
	m.currentView, cmd = m.currentView.Update(msg)

	if activeView != m.uiModel.GetActiveView() {
		m.updateCurrentView()
		cmd = tea.Batch(cmd, m.currentView.Init())
	}

	return m, cmd
}

func (m *programModel) View() string {
	if m.uiModel.IsQuitting() {
		return ""
	}
	return m.currentView.View()
}

func runTUI(a *app) error {
	uiModel := ui.NewModel(a.store, a.conn)

	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		uiModel.UpdateWindowSize(w, h)
	}

	p := tea.NewProgram(newProgramModel(uiModel), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
