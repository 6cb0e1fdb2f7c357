package config

import "path/filepath"

// Candidate is one place a config file may live.
type Candidate struct {
	Name string
	// Path returns the file location, or ok=false when its base directory
	// is unknown.
	Path func(repo Repository, dirs Dirs) (path string, ok bool)
}

// Candidates lists config locations from highest to lowest priority.
// Load uses the first one that exists.
var Candidates = []Candidate{
	{
		Name: "repo-root",
		Path: func(repo Repository, _ Dirs) (string, bool) {
			return filepath.Join(repo.Root(), FileName), true
		},
	},
	{
		Name: "common-dir",
		Path: func(repo Repository, _ Dirs) (string, bool) {
			return filepath.Join(repo.CommonDir(), FileName), true
		},
	},
	{
		Name: "user-config",
		Path: func(_ Repository, dirs Dirs) (string, bool) {
			dir, ok := dirs.ConfigDir()
			if !ok {
				return "", false
			}
			return filepath.Join(dir, "workty", FileName), true
		},
	},
	{
		Name: "home-dotfile",
		Path: func(_ Repository, dirs Dirs) (string, bool) {
			home, ok := dirs.HomeDir()
			if !ok {
				return "", false
			}
			return filepath.Join(home, "."+FileName), true
		},
	},
	{
		Name: "home",
		Path: func(_ Repository, dirs Dirs) (string, bool) {
			home, ok := dirs.HomeDir()
			if !ok {
				return "", false
			}
			return filepath.Join(home, FileName), true
		},
	},
}

// saveCandidate is where Save writes: the repository's common directory,
// shared by all of its worktrees.
const saveCandidate = 1
