package config

import "os"

// Dirs looks up per-user directories. Lookups report ok=false when the
// directory cannot be determined.
type Dirs interface {
	HomeDir() (string, bool)
	ConfigDir() (string, bool)
}

// SystemDirs reads the directories from the environment of the process.
type SystemDirs struct{}

func (SystemDirs) HomeDir() (string, bool) {
	home, err := os.UserHomeDir()
	return home, err == nil && home != ""
}

func (SystemDirs) ConfigDir() (string, bool) {
	dir, err := os.UserConfigDir()
	return dir, err == nil && dir != ""
}

// StaticDirs returns fixed directories. An empty field means unknown.
type StaticDirs struct {
	Home   string
	Config string
}

func (d StaticDirs) HomeDir() (string, bool) {
	return d.Home, d.Home != ""
}

func (d StaticDirs) ConfigDir() (string, bool) {
	return d.Config, d.Config != ""
}
