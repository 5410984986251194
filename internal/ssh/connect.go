// internal/ssh/connect.go

package ssh

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"sshTui/internal/logger"

	"github.com/sirupsen/logrus"
)

const (
	DefaultBinary  = "ssh"
	DefaultTimeout = 30 * time.Second
)

// Connection hands an alias over to the system SSH client. The client
// resolves the alias against its own configuration, so only the name is
// passed on the command line.
type Connection struct {
	executor Executor
	binary   string
	timeout  time.Duration
}

func NewConnection(binary string, timeout time.Duration) *Connection {
	return NewConnectionWithExecutor(binary, timeout, ExecExecutor{})
}

func NewConnectionWithExecutor(binary string, timeout time.Duration, executor Executor) *Connection {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Connection{
		executor: executor,
		binary:   binary,
		timeout:  timeout,
	}
}

func (c *Connection) Binary() string {
	return c.binary
}

func (c *Connection) Timeout() time.Duration {
	return c.timeout
}

// Args returns the arguments passed to the SSH binary for host. Options end
// at "--" so an alias starting with '-' is not read as a flag.
func (c *Connection) Args(host string) []string {
	var args []string
	if secs := int(c.timeout / time.Second); secs > 0 {
		args = append(args, "-o", "ConnectTimeout="+strconv.Itoa(secs))
	}
	return append(args, "--", host)
}

// Connect runs the SSH client attached to the process terminal and returns a
// human readable outcome. A non-zero exit is not an error; only failing to
// start the client is.
func (c *Connection) Connect(host string) (string, error) {
	return c.connect(Stdio{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}, host)
}

func (c *Connection) connect(stdio Stdio, host string) (string, error) {
	log := logger.L.WithFields(logrus.Fields{
		"binary": c.binary,
		"host":   host,
	})
	log.Info("starting ssh session")

	status, err := c.executor.Execute(stdio, c.binary, c.Args(host)...)
	if err != nil {
		log.WithError(err).Error("ssh session failed to start")
		return "", err
	}

	log.WithField("code", status.Code).Info("ssh session ended")
	return Describe(host, status), nil
}

// Describe formats the outcome of a session with host.
func Describe(host string, status ExitStatus) string {
	switch {
	case status.Signaled:
		return fmt.Sprintf("Connection to %s terminated by signal", host)
	case status.Success():
		return fmt.Sprintf("Successfully connected to %s", host)
	default:
		return fmt.Sprintf("Connection to %s exited with code %d", host, status.Code)
	}
}

// Session adapts a connection attempt to bubbletea's ExecCommand so the
// program releases the terminal while the client runs.
type Session struct {
	conn   *Connection
	host   string
	stdio  Stdio
	result string
}

func (c *Connection) Command(host string) *Session {
	return &Session{
		conn:  c,
		host:  host,
		stdio: Stdio{In: os.Stdin, Out: os.Stdout, Err: os.Stderr},
	}
}

func (s *Session) Run() error {
	result, err := s.conn.connect(s.stdio, s.host)
	s.result = result
	return err
}

func (s *Session) SetStdin(r io.Reader)  { s.stdio.In = r }
func (s *Session) SetStdout(w io.Writer) { s.stdio.Out = w }
func (s *Session) SetStderr(w io.Writer) { s.stdio.Err = w }

func (s *Session) Host() string { return s.host }

// Result is the outcome message of the last Run.
func (s *Session) Result() string { return s.result }
