// Package config handles loading and writing the lox configuration file.
//
// Configuration lives in a lox.toml file (or lox.yaml / lox.yml) in the
// working directory, every setting has a sensible default so the file
// is entirely optional.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"go.followtheprocess.codes/lox/internal/interpreter"
	"go.yaml.in/yaml/v4"
)

// Defaults.
const (
	// DefaultMaxDepth is the default maximum call depth.
	DefaultMaxDepth = 1024

	// DefaultPrompt is the default REPL prompt.
	DefaultPrompt = "> "

	// DefaultHistoryFile is the default REPL history file name, it lives
	// in the user's home directory.
	DefaultHistoryFile = ".lox_history"
)

// Filenames are the names a config file may have, in order of preference.
var Filenames = []string{"lox.toml", "lox.yaml", "lox.yml"}

// Config is the lox configuration.
type Config struct {
	// Prompt is the REPL prompt.
	Prompt string `json:"prompt" toml:"prompt" yaml:"prompt"`

	// HistoryFile is the path to the REPL history file, relative paths are
	// relative to the user's home directory. Empty disables history.
	HistoryFile string `json:"historyFile" toml:"history-file" yaml:"historyFile"`

	// Globals controls what programs may do to existing global variables.
	Globals Globals `json:"globals" toml:"globals" yaml:"globals"`

	// MaxDepth is the maximum depth of nested function calls before a stack
	// overflow error is raised, 0 means no limit.
	MaxDepth int `json:"maxDepth" toml:"max-depth" yaml:"maxDepth"`
}

// Globals is the global variable policy.
type Globals struct {
	// AllowRedefine permits redeclaring an existing global with 'var' or 'fun'.
	AllowRedefine bool `json:"allowRedefine" toml:"allow-redefine" yaml:"allowRedefine"`

	// AllowAssign permits assigning to an existing global.
	AllowAssign bool `json:"allowAssign" toml:"allow-assign" yaml:"allowAssign"`
}

// Default returns the default [Config].
func Default() Config {
	return Config{
		Prompt:      DefaultPrompt,
		HistoryFile: DefaultHistoryFile,
		Globals: Globals{
			AllowRedefine: true,
			AllowAssign:   true,
		},
		MaxDepth: DefaultMaxDepth,
	}
}

// Policy returns the interpreter policy described by the config.
func (c Config) Policy() interpreter.GlobalPolicy {
	return interpreter.GlobalPolicy{
		AllowRedefine: c.Globals.AllowRedefine,
		AllowAssign:   c.Globals.AllowAssign,
	}
}

// Validate reports whether the Config is valid, returning an error
// if it's not.
//
// nil means the config is valid.
func (c Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max-depth cannot be negative, got %d", c.MaxDepth)
	}

	return nil
}

// Load reads the config file at path, the format is chosen by the file extension.
//
// Settings missing from the file keep their default values.
func Load(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("could not read config file: %w", err)
	}

	cfg := Default()

	switch ext := filepath.Ext(path); ext {
	case ".toml":
		if err := toml.Unmarshal(contents, &cfg); err != nil {
			return Config{}, fmt.Errorf("could not decode TOML config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(contents, &cfg); err != nil {
			return Config{}, fmt.Errorf("could not decode YAML config %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("unsupported config file format %q, expected .toml, .yaml or .yml", ext)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Find returns the path of the config file in dir, and whether one exists.
func Find(dir string) (string, bool, error) {
	for _, name := range Filenames {
		path := filepath.Join(dir, name)

		_, err := os.Stat(path)
		if err == nil {
			return path, true, nil
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return "", false, fmt.Errorf("could not check for config file %s: %w", path, err)
		}
	}

	return "", false, nil
}

// Discover loads the config file from dir if there is one, else returns
// the [Default] config.
func Discover(dir string) (Config, error) {
	path, ok, err := Find(dir)
	if err != nil {
		return Config{}, err
	}

	if !ok {
		return Default(), nil
	}

	return Load(path)
}

// Write encodes cfg as a TOML document to w.
func Write(w io.Writer, cfg Config) error {
	encoder := toml.NewEncoder(w)
	encoder.Indent = ""

	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("could not encode config: %w", err)
	}

	return nil
}
