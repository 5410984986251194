// internal/config/config.go

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"time"

	apperr "sshTui/internal/error"
	"sshTui/internal/utils"

	"github.com/BurntSushi/toml"
	"github.com/jinzhu/configor"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultConfigDir      = ".config/ssh-tui"
	DefaultFilePerms      = 0600
	EnvPrefix             = "SSHTUI"
)

// Preferences are the tool's own settings, loaded once at startup and passed
// to whatever needs them.
type Preferences struct {
	SSHBinary     string `toml:"ssh_binary" default:"ssh" env:"SSHTUI_SSH_BINARY"`
	Timeout       int    `toml:"timeout" default:"30" env:"SSHTUI_TIMEOUT"` // seconds, negative disables
	SSHConfigPath string `toml:"ssh_config" default:"~/.ssh/config" env:"SSHTUI_SSH_CONFIG"`
	Backup        bool   `toml:"backup" env:"SSHTUI_BACKUP"`
	LogLevel      string `toml:"log_level" default:"info" env:"SSHTUI_LOG_LEVEL"`
	LogFile       string `toml:"log_file" env:"SSHTUI_LOG_FILE"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		SSHBinary:     "ssh",
		Timeout:       30,
		SSHConfigPath: "~/.ssh/config",
		Backup:        true,
		LogLevel:      "info",
	}
}

func (p Preferences) ConnectTimeout() time.Duration {
	if p.Timeout <= 0 {
		return 0
	}
	return time.Duration(p.Timeout) * time.Second
}

// SSHConfigFile is SSHConfigPath with "~" expanded.
func (p Preferences) SSHConfigFile() string {
	return utils.ExpandHome(p.SSHConfigPath)
}

type Manager struct {
	configPath string
	prefs      *Preferences
}

// NewManager falls back to GetDefaultConfigPath, then to the working
// directory, when configPath is empty.
func NewManager(configPath string) *Manager {
	if configPath == "" {
		defaultPath, err := GetDefaultConfigPath()
		if err == nil {
			configPath = defaultPath
		} else {
			configPath = DefaultConfigFileName
		}
	}

	prefs := DefaultPreferences()
	return &Manager{
		configPath: configPath,
		prefs:      &prefs,
	}
}

func (m *Manager) ConfigPath() string {
	return m.configPath
}

func (m *Manager) Preferences() *Preferences {
	return m.prefs
}

// Load reads the preferences file on top of the defaults and then applies
// SSHTUI_* environment overrides. A missing file is not an error.
func (m *Manager) Load() error {
	prefs := DefaultPreferences()

	var files []string
	if info, err := os.Stat(m.configPath); err == nil && info.Mode().IsRegular() {
		files = append(files, m.configPath)
	} else if err != nil && !os.IsNotExist(err) {
		return apperr.New(apperr.IOError, "failed to read preferences file", err)
	}

	loader := configor.New(&configor.Config{ENVPrefix: EnvPrefix, Silent: true})
	if err := loader.Load(&prefs, files...); err != nil {
		return apperr.New(apperr.ConfigError, "failed to parse preferences file", err)
	}

	m.prefs = &prefs
	return nil
}

func (m *Manager) Save() error {
	if err := os.MkdirAll(filepath.Dir(m.configPath), 0755); err != nil {
		return apperr.New(apperr.IOError, "failed to create config directory", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(m.prefs); err != nil {
		return apperr.New(apperr.ConfigError, "failed to encode preferences", err)
	}

	if err := os.WriteFile(m.configPath, buf.Bytes(), DefaultFilePerms); err != nil {
		return apperr.New(apperr.IOError, "failed to write preferences file", err)
	}
	return nil
}

func GetDefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", apperr.New(apperr.ConfigError, "could not get home directory", err)
	}
	return filepath.Join(homeDir, DefaultConfigDir, DefaultConfigFileName), nil
}

// LogDir is where the log file goes unless LogFile says otherwise.
func (m *Manager) LogDir() string {
	return filepath.Dir(m.configPath)
}
