// Package config resolves workty configuration for a repository.
//
// # Configuration Sources (highest priority first)
//
// The first file that exists is used; files are not merged.
//
//   - <repo root>/workty.toml
//   - <common git dir>/workty.toml (where "workty config init" writes)
//   - <user config dir>/workty/workty.toml
//   - ~/.workty.toml
//   - ~/workty.toml
//
// A file that exists but cannot be read or parsed is an error; a missing
// file is not. The order is the [Candidates] table.
//
// # Keys
//
//   - version: schema version (1)
//   - base: branch new worktrees start from (default "main")
//   - root: workspace root template (default "~/.workty/{repo}-{id}")
//   - layout: worktree arrangement under root (default "flat")
//   - open_cmd: optional command used to open a worktree
//
// Unknown keys are ignored.
//
// # Base Branch
//
// When base is left at "main" and the repository has no local main, the
// repository's default branch (from HEAD, then main/master) is used instead.
//
// # Workspace Paths
//
// {repo} in root is the repository directory name and {id} is [RepoID],
// a short hash of the normalized origin URL, so that clones of different
// remotes with the same name get distinct workspaces.
package config
