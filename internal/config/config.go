package config

import (
	"bytes"
	"io"

	"github.com/BurntSushi/toml"
)

// FileName is the name of every candidate config file.
const FileName = "workty.toml"

// Defaults for a repository without any config file.
const (
	CurrentVersion = 1
	DefaultBase    = "main"
	DefaultRoot    = "~/.workty/{repo}-{id}"
	DefaultLayout  = "flat"
)

// Config holds the workty settings for one repository.
type Config struct {
	Version int     `toml:"version" json:"version" yaml:"version"`
	Base    string  `toml:"base" json:"base" yaml:"base"`       // branch new worktrees start from
	Root    string  `toml:"root" json:"root" yaml:"root"`       // workspace root template, may contain {repo} and {id}
	Layout  string  `toml:"layout" json:"layout" yaml:"layout"` // how worktrees are arranged under Root
	OpenCmd *string `toml:"open_cmd,omitempty" json:"open_cmd,omitempty" yaml:"open_cmd,omitempty"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Version: CurrentVersion,
		Base:    DefaultBase,
		Root:    DefaultRoot,
		Layout:  DefaultLayout,
	}
}

// Decode parses TOML on top of the defaults, so missing keys keep their
// default values. Keys workty does not know are returned in undecoded
// and otherwise ignored.
func Decode(data []byte) (cfg Config, undecoded []string, err error) {
	cfg = Default()
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg)
	if err != nil {
		return Default(), nil, err
	}
	for _, key := range md.Undecoded() {
		undecoded = append(undecoded, key.String())
	}
	return cfg, undecoded, nil
}

// Encode writes cfg as TOML.
func Encode(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}
