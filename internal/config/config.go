// internal/config/config.go
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

// Config represents the application configuration
type Config struct {
	DefaultConnection string            `toml:"default_connection"`
	PageSize          int               `toml:"page_size"`
	Connections       []Connection      `toml:"connections"`
	Commands          map[string]string `toml:"commands"`
	Completion        Completion        `toml:"completion"`
	Theme             Theme             `toml:"theme_colors"`
	Keys              KeyMap            `toml:"keys"`
}

// Completion configures the static candidate floor the assembler always
// offers. Empty lists fall back to the built-in defaults.
type Completion struct {
	Keywords []string `toml:"keywords"`
	Snippets []string `toml:"snippets"`
}

// Theme defines the color palette
type Theme struct {
	TextPrimary   string `toml:"text_primary"`
	TextSecondary string `toml:"text_secondary"`
	TextFaint     string `toml:"text_faint"`
	Accent        string `toml:"accent"`
	Success       string `toml:"success"`
	Error         string `toml:"error"`
	Highlight     string `toml:"highlight"`
	BgPrimary     string `toml:"bg_primary"`
	BgSecondary   string `toml:"bg_secondary"`
}

// KeyMap defines key bindings
type KeyMap struct {
	Execute      []string `toml:"execute"`
	Exit         []string `toml:"exit"`
	Autocomplete []string `toml:"autocomplete"`
	HistoryOlder []string `toml:"history_older"`
	HistoryNewer []string `toml:"history_newer"`
	NextPage     []string `toml:"next_page"`
	PrevPage     []string `toml:"prev_page"`
}

// Connection represents a database connection profile
type Connection struct {
	Name     string `toml:"name"`
	Type     string `toml:"type"` // postgres, mysql, sqlite
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Database string `toml:"database"`
	// Password is kept in memory for usage
	Password string `toml:"-"`
	// EncryptedPassword is the one persisted in the config file
	EncryptedPassword string `toml:"password"`

	// SSH tunnel configuration
	SSHHost     string `toml:"ssh_host,omitempty"`
	SSHPort     int    `toml:"ssh_port,omitempty"`
	SSHUser     string `toml:"ssh_user,omitempty"`
	SSHPassword string `toml:"-"`
	SSHKeyPath  string `toml:"ssh_key_path,omitempty"`

	// EncryptedSSHPassword persisted in config
	EncryptedSSHPassword string `toml:"ssh_password,omitempty"`
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	return &Config{
		PageSize:    100,
		Connections: []Connection{},
		Commands:    make(map[string]string),
		Theme: Theme{
			TextPrimary:   "#D8DEE9",
			TextSecondary: "#81A1C1",
			TextFaint:     "#4C566A",
			Accent:        "#88C0D0",
			Success:       "#A3BE8C",
			Error:         "#BF616A",
			Highlight:     "#8FBCBB",
			BgPrimary:     "#2E3440",
			BgSecondary:   "#3B4252",
		},
		Keys: KeyMap{
			Execute:      []string{"ctrl+d"},
			Exit:         []string{"esc", "ctrl+c"},
			Autocomplete: []string{"ctrl+@"},
			HistoryOlder: []string{"up"},
			HistoryNewer: []string{"down"},
			NextPage:     []string{"pgdown"},
			PrevPage:     []string{"pgup"},
		},
	}
}

// ConfigPath returns the XDG-compliant config file path
func ConfigPath() (string, error) {
	return xdg.ConfigFile("querypad/config.toml")
}

// Load loads the config from disk or creates the default one
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := cfg.Save(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}

	// Populate defaults for fields older config files lack.
	defaults := DefaultConfig()
	if cfg.Theme.TextPrimary == "" {
		cfg.Theme = defaults.Theme
	}
	if len(cfg.Keys.Execute) == 0 {
		cfg.Keys = defaults.Keys
	}
	if cfg.PageSize == 0 {
		cfg.PageSize = defaults.PageSize
	}

	// Decrypt stored passwords.
	if key, err := GetMasterKey(); err == nil {
		for i := range cfg.Connections {
			if cfg.Connections[i].EncryptedPassword != "" {
				if decrypted, err := Decrypt(cfg.Connections[i].EncryptedPassword, key); err == nil {
					cfg.Connections[i].Password = decrypted
				}
			}
			if cfg.Connections[i].EncryptedSSHPassword != "" {
				if decrypted, err := Decrypt(cfg.Connections[i].EncryptedSSHPassword, key); err == nil {
					cfg.Connections[i].SSHPassword = decrypted
				}
			}
		}
	}

	return &cfg, nil
}

// Save writes the config to disk with owner-only permissions.
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	// Encrypt passwords before they touch disk.
	if key, err := GetMasterKey(); err == nil {
		for i := range c.Connections {
			if c.Connections[i].Password != "" {
				if encrypted, err := Encrypt(c.Connections[i].Password, key); err == nil {
					c.Connections[i].EncryptedPassword = encrypted
				}
			}
			if c.Connections[i].SSHPassword != "" {
				if encrypted, err := Encrypt(c.Connections[i].SSHPassword, key); err == nil {
					c.Connections[i].EncryptedSSHPassword = encrypted
				}
			}
		}
	}

	return toml.NewEncoder(f).Encode(c)
}
