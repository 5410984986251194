// internal/logger/logger.go

package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// L is the shared logger. It discards everything until Init enables it; the
// terminal belongs to the TUI, so output only ever goes to a file.
var L = newDiscard()

const DefaultLogFileName = "ssh-tui.log"

type Options struct {
	Enabled bool
	File    string // Defaults to DefaultLogFileName inside Dir
	Dir     string
	Level   string // logrus level name, "info" when empty
}

// Init configures L and returns the opened log file so the caller can close
// it on exit.
func Init(opts Options) (io.Closer, error) {
	if !opts.Enabled {
		L = newDiscard()
		return io.NopCloser(nil), nil
	}

	level := logrus.InfoLevel
	if opts.Level != "" {
		parsed, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	path := opts.File
	if path == "" {
		path = filepath.Join(opts.Dir, DefaultLogFileName)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, err
	}

	l := logrus.New()
	l.SetOutput(f)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	L = l

	return f, nil
}

func newDiscard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}
