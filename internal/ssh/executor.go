// internal/ssh/executor.go

package ssh

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"sync"

	apperr "sshTui/internal/error"
	"sshTui/internal/logger"

	"github.com/moby/term"
)

type ExitStatus struct {
	Code     int
	Signaled bool // the process was killed before it could exit
}

func (s ExitStatus) Success() bool {
	return !s.Signaled && s.Code == 0
}

type Stdio struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Executor runs an external binary to completion.
type Executor interface {
	Execute(stdio Stdio, binary string, args ...string) (ExitStatus, error)
}

// ExecExecutor runs the binary as a child process.
type ExecExecutor struct{}

func (ExecExecutor) Execute(stdio Stdio, binary string, args ...string) (ExitStatus, error) {
	cmd := exec.Command(binary, args...)
	cmd.Stdin = stdio.In
	cmd.Stdout = stdio.Out
	cmd.Stderr = stdio.Err

	restore := saveTerminal(stdio.In)
	defer restore()

	err := cmd.Run()
	if err == nil {
		return ExitStatus{}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			return ExitStatus{Code: code, Signaled: true}, nil
		}
		return ExitStatus{Code: code}, nil
	}

	return ExitStatus{}, apperr.New(apperr.ConnectionError, fmt.Sprintf("failed to run %s", binary), err)
}

// saveTerminal records the terminal mode of in, if it is a terminal, and
// returns a func that puts it back. The client may leave the terminal raw
// when it is killed.
func saveTerminal(in io.Reader) func() {
	fd, isTerminal := term.GetFdInfo(in)
	if !isTerminal {
		return func() {}
	}

	state, err := term.SaveState(fd)
	if err != nil {
		logger.L.WithError(err).Warn("failed to save terminal state")
		return func() {}
	}

	return func() {
		if err := term.RestoreTerminal(fd, state); err != nil {
			logger.L.WithError(err).Warn("failed to restore terminal state")
		}
	}
}

// Call is one invocation recorded by FakeExecutor.
type Call struct {
	Binary string
	Args   []string
}

// FakeExecutor returns a preset status without starting anything.
type FakeExecutor struct {
	Status ExitStatus
	Err    error

	mu    sync.Mutex
	calls []Call
}

func (f *FakeExecutor) Execute(_ Stdio, binary string, args ...string) (ExitStatus, error) {
	f.mu.Lock()
	f.calls = append(f.calls, Call{Binary: binary, Args: append([]string(nil), args...)})
	f.mu.Unlock()

	if f.Err != nil {
		return ExitStatus{}, f.Err
	}
	return f.Status, nil
}

func (f *FakeExecutor) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}
