package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/tabletop/internal/input/key"
	"github.com/dshills/tabletop/internal/logging"
)

// ExitPolicy selects what an Exit event does.
type ExitPolicy string

const (
	// ExitToMenu returns to the main menu; Exit on the menu quits.
	ExitToMenu ExitPolicy = "menu"
	// ExitQuit quits from any view.
	ExitQuit ExitPolicy = "quit"
)

// Config is the complete application configuration.
type Config struct {
	ExitPolicy ExitPolicy     `toml:"exit_policy" yaml:"exit_policy"`
	Watch      bool           `toml:"watch" yaml:"watch"`
	Log        LogConfig      `toml:"log" yaml:"log"`
	Keys       KeyConfig      `toml:"keys" yaml:"keys"`
	Commands   CommandsConfig `toml:"commands" yaml:"commands"`

	// Path is the file this configuration came from; empty for defaults.
	Path string `toml:"-" yaml:"-"`
}

// LogConfig configures the log file.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
	File  string `toml:"file" yaml:"file"`
}

// KeyConfig lists key specs per action. Specs use key.Parse syntax.
type KeyConfig struct {
	Next     []string `toml:"next" yaml:"next"`
	Previous []string `toml:"previous" yaml:"previous"`
	Submit   []string `toml:"submit" yaml:"submit"`
	Exit     []string `toml:"exit" yaml:"exit"`
	Undo     []string `toml:"undo" yaml:"undo"`
}

// CommandsConfig configures the editor command table.
type CommandsConfig struct {
	// Script is a Lua file that registers command aliases. A relative
	// path is resolved against the config file's directory.
	Script string `toml:"script" yaml:"script"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ExitPolicy: ExitToMenu,
		Watch:      true,
		Log: LogConfig{
			Level: "info",
		},
		Keys: KeyConfig{
			Next:     []string{"Down", "j"},
			Previous: []string{"Up", "k"},
			Submit:   []string{"Enter"},
			Exit:     []string{"Esc"},
			Undo:     []string{"<C-z>"},
		},
	}
}

// DefaultPath returns the config file location under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "tabletop", "config.toml"), nil
}

// Validate checks every setting and returns all problems joined.
func (c *Config) Validate() error {
	var errs []error

	switch c.ExitPolicy {
	case ExitToMenu, ExitQuit:
	default:
		errs = append(errs, &ValidationError{
			Setting: "exit_policy",
			Value:   c.ExitPolicy,
			Message: `must be "menu" or "quit"`,
		})
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, &ValidationError{Setting: "log.level", Value: c.Log.Level, Message: err.Error()})
	}

	for _, kb := range c.Keys.named() {
		if len(kb.specs) == 0 {
			errs = append(errs, &ValidationError{Setting: "keys." + kb.name, Value: "[]", Message: "at least one key is required"})
			continue
		}
		if _, err := key.ParseAll(kb.specs); err != nil {
			errs = append(errs, &ValidationError{
				Setting: "keys." + kb.name,
				Value:   strings.Join(kb.specs, ", "),
				Message: err.Error(),
			})
		}
	}

	return errors.Join(errs...)
}

// LogLevel returns the parsed log level. Call after Validate.
func (c *Config) LogLevel() logging.Level {
	level, _ := logging.ParseLevel(c.Log.Level)
	return level
}

// ScriptPath returns the command script path resolved against the config
// file's directory, or "" when none is configured.
func (c *Config) ScriptPath() string {
	s := c.Commands.Script
	if s == "" || filepath.IsAbs(s) || c.Path == "" {
		return s
	}
	return filepath.Join(filepath.Dir(c.Path), s)
}

type namedBinding struct {
	name  string
	specs []string
}

func (k KeyConfig) named() []namedBinding {
	return []namedBinding{
		{"next", k.Next},
		{"previous", k.Previous},
		{"submit", k.Submit},
		{"exit", k.Exit},
		{"undo", k.Undo},
	}
}
