package sshconfig

import (
	"testing"

	apperr "sshTui/internal/error"

	"github.com/stretchr/testify/assert"
)

func TestHostEntryValidate(t *testing.T) {
	tests := []struct {
		name    string
		entry   HostEntry
		wantErr string
	}{
		{"valid", HostEntry{Host: "valid", HostName: "example.com", Port: "22"}, ""},
		{"port optional", HostEntry{Host: "valid", HostName: "example.com"}, ""},
		{"port padded", HostEntry{Host: "valid", HostName: "example.com", Port: " 65535 "}, ""},
		{"empty host", HostEntry{Host: "  ", HostName: "example.com"}, "Host cannot be empty"},
		{"star", HostEntry{Host: "web*", HostName: "example.com"}, "Host cannot contain wildcard characters"},
		{"question mark", HostEntry{Host: "web?", HostName: "example.com"}, "Host cannot contain wildcard characters"},
		{"inner space", HostEntry{Host: "a b", HostName: "example.com"}, "Host cannot contain whitespace"},
		{"inner tab", HostEntry{Host: "a\tb", HostName: "example.com"}, "Host cannot contain whitespace"},
		{"padded host", HostEntry{Host: " web ", HostName: "example.com"}, ""},
		{"empty hostname", HostEntry{Host: "valid", HostName: " "}, "HostName cannot be empty"},
		{"port not a number", HostEntry{Host: "valid", HostName: "example.com", Port: "abc"}, "Port must be a number between 1 and 65535"},
		{"port zero", HostEntry{Host: "valid", HostName: "example.com", Port: "0"}, "port out of range"},
		{"port negative", HostEntry{Host: "valid", HostName: "example.com", Port: "-1"}, "port out of range"},
		{"port too large", HostEntry{Host: "valid", HostName: "example.com", Port: "70000"}, "port out of range"},
		{"port overflow", HostEntry{Host: "valid", HostName: "example.com", Port: "99999999999999999999"}, "port out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
			assert.True(t, apperr.IsValidation(err))
		})
	}
}

func TestHostEntryClone(t *testing.T) {
	e := HostEntry{Host: "a", Extra: []string{"  ForwardAgent yes"}}
	c := e.Clone()
	c.Extra[0] = "changed"

	assert.Equal(t, "  ForwardAgent yes", e.Extra[0])
}
