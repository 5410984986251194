package messages

// SessionEndedMsg is sent when control returns from the SSH client.
type SessionEndedMsg struct {
	Host   string
	Result string
	Err    error
}

// ClipboardMsg reports the outcome of copying a connect command.
type ClipboardMsg struct {
	Text string
	Err  error
}
