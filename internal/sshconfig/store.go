package sshconfig

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	apperr "sshTui/internal/error"
	"sshTui/internal/logger"

	"github.com/sirupsen/logrus"
)

const (
	DefaultFilePerms = 0600
	DefaultDirPerms  = 0700
	BackupSuffix     = ".old"
)

// Store performs read-modify-write cycles against one configuration file.
// Every write replaces the whole file at once.
type Store struct {
	path   string
	backup bool
}

type StoreOption func(*Store)

// WithBackup keeps a copy of the previous contents in <path>.old before each
// write.
func WithBackup(enabled bool) StoreOption {
	return func(s *Store) {
		s.backup = enabled
	}
}

func NewStore(path string, opts ...StoreOption) *Store {
	s := &Store{path: path}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) BackupPath() string {
	return s.path + BackupSuffix
}

// ReadText returns the file contents. A missing file reads as empty.
func (s *Store) ReadText() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", apperr.New(apperr.IOError, "failed to read SSH config file", err)
	}
	return string(data), nil
}

func (s *Store) ReadLines() ([]string, error) {
	text, err := s.ReadText()
	if err != nil {
		return nil, err
	}
	return SplitLines(text), nil
}

// Load parses the current file contents.
func (s *Store) Load() ([]HostEntry, error) {
	text, err := s.ReadText()
	if err != nil {
		return nil, err
	}
	return Parse(text), nil
}

// WriteLines atomically replaces the file with lines. When the path is a
// symlink the link is kept and its target is replaced.
func (s *Store) WriteLines(lines []string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, DefaultDirPerms); err != nil {
		return apperr.New(apperr.IOError, "failed to create SSH config directory", err)
	}

	target := resolveTarget(s.path)
	mode := fs.FileMode(DefaultFilePerms)
	if info, err := os.Stat(target); err == nil {
		mode = info.Mode().Perm()
		if s.backup {
			if err := s.writeBackup(target, mode); err != nil {
				return err
			}
		}
	}

	if err := replaceFile(target, []byte(JoinLines(lines)), mode); err != nil {
		return apperr.New(apperr.IOError, "failed to write SSH config file", err)
	}

	logger.L.WithFields(logrus.Fields{
		"path":   s.path,
		"target": target,
		"lines":  len(lines),
	}).Debug("ssh config written")
	return nil
}

// Upsert writes entry over the block with the same name, or appends it.
func (s *Store) Upsert(entry HostEntry) error {
	return s.mutate(func(lines []string) ([]string, error) {
		return Upsert(lines, entry)
	})
}

// Update writes entry over the block named originalName, or appends it.
func (s *Store) Update(originalName string, entry HostEntry) error {
	return s.mutate(func(lines []string) ([]string, error) {
		return Update(lines, originalName, entry)
	})
}

// Add appends entry, refusing to create a second block with the same name.
func (s *Store) Add(entry HostEntry) error {
	return s.mutate(func(lines []string) ([]string, error) {
		return Add(lines, entry)
	})
}

func (s *Store) Delete(name string) error {
	return s.mutate(func(lines []string) ([]string, error) {
		return Delete(lines, name)
	})
}

// Restore puts the backup written by the last change back in place.
func (s *Store) Restore() error {
	data, err := os.ReadFile(s.BackupPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return apperr.Newf(apperr.NotFoundError, "no backup found at %s", s.BackupPath())
		}
		return apperr.New(apperr.IOError, "failed to read SSH config backup", err)
	}

	target := resolveTarget(s.path)
	mode := fs.FileMode(DefaultFilePerms)
	if info, err := os.Stat(target); err == nil {
		mode = info.Mode().Perm()
	}
	if err := replaceFile(target, data, mode); err != nil {
		return apperr.New(apperr.IOError, "failed to restore SSH config file", err)
	}

	logger.L.WithField("path", s.path).Info("ssh config restored from backup")
	return nil
}

func (s *Store) mutate(edit func([]string) ([]string, error)) error {
	lines, err := s.ReadLines()
	if err != nil {
		return err
	}
	updated, err := edit(lines)
	if err != nil {
		return err
	}
	return s.WriteLines(updated)
}

func (s *Store) writeBackup(target string, mode fs.FileMode) error {
	data, err := os.ReadFile(target)
	if err != nil {
		return apperr.New(apperr.IOError, "failed to read SSH config file", err)
	}
	if err := replaceFile(s.BackupPath(), data, mode); err != nil {
		return apperr.New(apperr.IOError, "failed to create SSH config backup", err)
	}
	return nil
}

// resolveTarget follows symlinks in path. A path that does not exist yet, or
// a dangling link, is returned unchanged.
func resolveTarget(path string) string {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path
	}
	return target
}

// replaceFile writes data to a temporary file next to path and renames it
// over path, so readers see either the old or the new contents.
func replaceFile(path string, data []byte, mode fs.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	cleanup := func(err error) error {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		return cleanup(err)
	}
	if err := tmp.Sync(); err != nil {
		return cleanup(err)
	}
	if err := tmp.Chmod(mode); err != nil {
		return cleanup(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
