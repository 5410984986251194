package main

import (
	"io"

	"sshTui/internal/config"
	"sshTui/internal/logger"
	"sshTui/internal/ssh"
	"sshTui/internal/sshconfig"
	"sshTui/internal/utils"

	"github.com/sirupsen/logrus"
)

type options struct {
	configPath string
	sshConfig  string
	logFile    string
	debug      bool
}

// app holds what every command needs, built from preferences and flags.
type app struct {
	prefs  config.Preferences
	store  *sshconfig.Store
	conn   *ssh.Connection
	closer io.Closer
}

func setup(opts *options) (*app, error) {
	manager := config.NewManager(opts.configPath)
	if err := manager.Load(); err != nil {
		return nil, err
	}

	prefs := *manager.Preferences()
	if opts.sshConfig != "" {
		prefs.SSHConfigPath = opts.sshConfig
	}
	if opts.logFile != "" {
		prefs.LogFile = opts.logFile
	}
	if opts.debug {
		prefs.LogLevel = "debug"
	}

	closer, err := logger.Init(logger.Options{
		Enabled: true,
		File:    utils.ExpandHome(prefs.LogFile),
		Dir:     manager.LogDir(),
		Level:   prefs.LogLevel,
	})
	if err != nil {
		return nil, err
	}

	logger.L.WithFields(logrus.Fields{
		"version":    version,
		"ssh_config": prefs.SSHConfigFile(),
		"ssh_binary": prefs.SSHBinary,
		"backup":     prefs.Backup,
	}).Debug("preferences loaded")

	return &app{
		prefs:  prefs,
		store:  sshconfig.NewStore(prefs.SSHConfigFile(), sshconfig.WithBackup(prefs.Backup)),
		conn:   ssh.NewConnection(prefs.SSHBinary, prefs.ConnectTimeout()),
		closer: closer,
	}, nil
}

func (a *app) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
