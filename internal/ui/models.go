// internal/ui/models.go

package ui

import (
	"fmt"
	"strings"
	"unicode"

	apperr "sshTui/internal/error"
	"sshTui/internal/logger"
	"sshTui/internal/ssh"
	"sshTui/internal/sshconfig"
)

type Status struct {
	Message string
	IsError bool
}

type View int

const (
	ViewMain View = iota
	ViewEdit
)

// Model is the state shared by every view: the parsed hosts, the selection,
// the host form and the status line. The host list is always reparsed from
// disk after a write, never patched in memory.
type Model struct {
	keys    KeyMap
	store   *sshconfig.Store
	conn    *ssh.Connection
	hosts   []sshconfig.HostEntry
	rawText string

	// decoded lazily once per Refresh
	resolver   *sshconfig.Resolver
	resolveErr error
	effective  map[string]sshconfig.Effective

	selected   int
	status     Status
	activeView View
	width      int
	height     int
	quitting   bool

	state        AppState
	formEntry    sshconfig.HostEntry
	formField    FormField
	formError    string
	originalName string
}

func NewModel(store *sshconfig.Store, conn *ssh.Connection) *Model {
	m := &Model{
		keys:       DefaultKeyMap(),
		store:      store,
		conn:       conn,
		activeView: ViewMain,
		width:      80,
		height:     24,
	}

	if err := m.Refresh(""); err != nil {
		m.SetStatus(fmt.Sprintf("Warning: %v", err), true)
	}
	return m
}

func (m *Model) Keys() KeyMap                   { return m.keys }
func (m *Model) Store() *sshconfig.Store        { return m.store }
func (m *Model) Connection() *ssh.Connection    { return m.conn }
func (m *Model) Hosts() []sshconfig.HostEntry   { return m.hosts }
func (m *Model) Selected() int                  { return m.selected }
func (m *Model) Status() Status                 { return m.status }
func (m *Model) State() AppState                { return m.state }
func (m *Model) FormEntry() sshconfig.HostEntry { return m.formEntry }
func (m *Model) FormField() FormField           { return m.formField }
func (m *Model) FormError() string              { return m.formError }
func (m *Model) OriginalName() string           { return m.originalName }

// Refresh reparses the config file. The selection moves to focus when it is
// non-empty and present, and is otherwise clamped to the new list.
func (m *Model) Refresh(focus string) error {
	text, err := m.store.ReadText()
	if err != nil {
		return err
	}
	m.rawText = text
	m.hosts = sshconfig.Parse(text)
	m.resolver = nil
	m.resolveErr = nil
	m.effective = nil

	if len(m.hosts) == 0 {
		m.selected = 0
		return nil
	}
	if focus != "" {
		for i, h := range m.hosts {
			if h.Host == focus {
				m.selected = i
				return nil
			}
		}
	}
	if m.selected >= len(m.hosts) {
		m.selected = len(m.hosts) - 1
	}
	return nil
}

func (m *Model) Next() {
	if len(m.hosts) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.hosts)
}

func (m *Model) Previous() {
	if len(m.hosts) == 0 {
		return
	}
	if m.selected == 0 {
		m.selected = len(m.hosts) - 1
	} else {
		m.selected--
	}
}

func (m *Model) SelectedHost() (sshconfig.HostEntry, bool) {
	if m.selected < 0 || m.selected >= len(m.hosts) {
		return sshconfig.HostEntry{}, false
	}
	return m.hosts[m.selected], true
}

func (m *Model) SelectedHostName() string {
	if h, ok := m.SelectedHost(); ok {
		return h.Host
	}
	return ""
}

// Effective returns the values the SSH client would use for name, with
// pattern blocks applied. Results are cached until the next Refresh.
func (m *Model) Effective(name string) (sshconfig.Effective, error) {
	if eff, ok := m.effective[name]; ok {
		return eff, nil
	}
	if m.resolver == nil && m.resolveErr == nil {
		m.resolver, m.resolveErr = sshconfig.NewResolver(m.rawText)
	}
	if m.resolveErr != nil {
		return sshconfig.Effective{}, m.resolveErr
	}

	eff := m.resolver.Lookup(name)
	if m.effective == nil {
		m.effective = make(map[string]sshconfig.Effective)
	}
	m.effective[name] = eff
	return eff, nil
}

func (m *Model) SetStatus(msg string, isError bool) {
	m.status = Status{
		Message: msg,
		IsError: isError,
	}
}

func (m *Model) ClearStatus() {
	m.status = Status{}
}

// SetConnectResult records the outcome of an SSH session.
func (m *Model) SetConnectResult(result string, err error) {
	if err != nil {
		m.SetStatus(fmt.Sprintf("Error: %v", err), true)
		return
	}
	m.SetStatus(result, false)
}

func (m *Model) IsFormActive() bool {
	return m.state != StateNormal
}

// EnterEditMode opens the form on a copy of the selected host. It does
// nothing when the list is empty.
func (m *Model) EnterEditMode() bool {
	entry, ok := m.SelectedHost()
	if !ok {
		return false
	}
	m.formEntry = entry.Clone()
	m.originalName = entry.Host
	m.formField = FieldHost
	m.formError = ""
	m.state = StateEdit
	return true
}

func (m *Model) EnterNewMode() {
	m.formEntry = sshconfig.HostEntry{}
	m.originalName = ""
	m.formField = FieldHost
	m.formError = ""
	m.state = StateNew
}

func (m *Model) CancelForm() {
	m.state = StateNormal
	m.formEntry = sshconfig.HostEntry{}
	m.formError = ""
	m.originalName = ""
}

func (m *Model) FocusNext() {
	if m.IsFormActive() {
		m.formField = m.formField.Next()
	}
}

func (m *Model) FocusPrevious() {
	if m.IsFormActive() {
		m.formField = m.formField.Previous()
	}
}

// HandleFormInput appends r to the focused field. Control characters are
// ignored.
func (m *Model) HandleFormInput(r rune) {
	if !m.IsFormActive() || unicode.IsControl(r) {
		return
	}
	m.formError = ""
	field := m.fieldPtr(m.formField)
	*field += string(r)
}

func (m *Model) HandleFormBackspace() {
	if !m.IsFormActive() {
		return
	}
	m.formError = ""
	field := m.fieldPtr(m.formField)
	if r := []rune(*field); len(r) > 0 {
		*field = string(r[:len(r)-1])
	}
}

func (m *Model) FieldValue(f FormField) string {
	if p := m.fieldPtr(f); p != nil {
		return *p
	}
	return ""
}

// SetFieldValue replaces a field wholesale. A changed value clears the
// form error.
func (m *Model) SetFieldValue(f FormField, value string) {
	if !m.IsFormActive() {
		return
	}
	p := m.fieldPtr(f)
	if p == nil || *p == value {
		return
	}
	*p = value
	m.formError = ""
}

// SaveForm validates and writes the form. On failure the error stays on the
// form and the file is untouched.
func (m *Model) SaveForm() bool {
	if !m.IsFormActive() {
		return false
	}

	mode := m.state
	entry := m.formEntry.Clone()
	entry.Host = strings.TrimSpace(entry.Host)

	if err := entry.Validate(); err != nil {
		m.formError = err.Error()
		return false
	}

	var err error
	switch mode {
	case StateEdit:
		original := m.originalName
		if original == "" {
			original = entry.Host
		}
		err = m.store.Update(original, entry)
	case StateNew:
		err = m.store.Upsert(entry)
	}
	if err != nil {
		logger.L.WithError(err).WithField("host", entry.Host).Error("failed to save host")
		m.formError = err.Error()
		return false
	}

	if err := m.Refresh(entry.Host); err != nil {
		m.formError = err.Error()
		return false
	}

	action := "updated"
	if mode == StateNew {
		action = "created"
	}
	m.CancelForm()
	m.SetStatus(fmt.Sprintf("Host '%s' %s successfully", entry.Host, action), false)
	return true
}

// DeleteSelected removes the selected host's block from the file.
func (m *Model) DeleteSelected() error {
	name := m.SelectedHostName()
	if name == "" {
		return apperr.New(apperr.NotFoundError, "no host selected", nil)
	}

	if err := m.store.Delete(name); err != nil {
		m.SetStatus(fmt.Sprintf("Error: %v", err), true)
		return err
	}
	if err := m.Refresh(""); err != nil {
		m.SetStatus(fmt.Sprintf("Error: %v", err), true)
		return err
	}

	m.SetStatus(fmt.Sprintf("Host '%s' deleted", name), false)
	return nil
}

// RestoreBackup puts back the copy taken before the last write.
func (m *Model) RestoreBackup() error {
	if err := m.store.Restore(); err != nil {
		m.SetStatus(fmt.Sprintf("Error: %v", err), true)
		return err
	}
	if err := m.Refresh(m.SelectedHostName()); err != nil {
		m.SetStatus(fmt.Sprintf("Error: %v", err), true)
		return err
	}
	m.SetStatus("Restored SSH config from backup", false)
	return nil
}

func (m *Model) SetActiveView(view View) {
	m.activeView = view
}

func (m *Model) GetActiveView() View {
	return m.activeView
}

func (m *Model) UpdateWindowSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) GetTerminalWidth() int  { return m.width }
func (m *Model) GetTerminalHeight() int { return m.height }

func (m *Model) SetQuitting(quitting bool) { m.quitting = quitting }
func (m *Model) IsQuitting() bool          { return m.quitting }

func (m *Model) fieldPtr(f FormField) *string {
	switch f {
	case FieldHost:
		return &m.formEntry.Host
	case FieldHostName:
		return &m.formEntry.HostName
	case FieldUser:
		return &m.formEntry.User
	case FieldPort:
		return &m.formEntry.Port
	case FieldIdentityFile:
		return &m.formEntry.IdentityFile
	case FieldProxyCommand:
		return &m.formEntry.ProxyCommand
	default:
		return nil
	}
}
