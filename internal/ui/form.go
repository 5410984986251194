// internal/ui/form.go

package ui

// AppState says whether the host form is open and for what.
type AppState int

const (
	StateNormal AppState = iota
	StateEdit
	StateNew
)

func (s AppState) String() string {
	switch s {
	case StateEdit:
		return "edit"
	case StateNew:
		return "new"
	default:
		return "normal"
	}
}

// FormField is a field of the host form. Focus moves around a fixed ring.
type FormField int

const (
	FieldHost FormField = iota
	FieldHostName
	FieldUser
	FieldPort
	FieldIdentityFile
	FieldProxyCommand
	fieldCount
)

// FormFields lists the fields in focus order.
func FormFields() []FormField {
	fields := make([]FormField, 0, fieldCount)
	for f := FieldHost; f < fieldCount; f++ {
		fields = append(fields, f)
	}
	return fields
}

func (f FormField) Next() FormField {
	return (f + 1) % fieldCount
}

func (f FormField) Previous() FormField {
	return (f + fieldCount - 1) % fieldCount
}

// Label is the SSH keyword the field edits.
func (f FormField) Label() string {
	switch f {
	case FieldHost:
		return "Host"
	case FieldHostName:
		return "HostName"
	case FieldUser:
		return "User"
	case FieldPort:
		return "Port"
	case FieldIdentityFile:
		return "IdentityFile"
	case FieldProxyCommand:
		return "ProxyCommand"
	default:
		return ""
	}
}

func (f FormField) Placeholder() string {
	switch f {
	case FieldHost:
		return "alias used on the ssh command line"
	case FieldHostName:
		return "IP address or hostname"
	case FieldUser:
		return "Username"
	case FieldPort:
		return "22"
	case FieldIdentityFile:
		return "~/.ssh/id_ed25519"
	case FieldProxyCommand:
		return "ssh -W %h:%p bastion"
	default:
		return ""
	}
}
