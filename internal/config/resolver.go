package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/raphi011/workty/internal/log"
)

// Repository is what the resolver needs to know about a repository.
// *git.Repo implements it.
type Repository interface {
	Root() string
	CommonDir() string
	OriginURL(ctx context.Context) (string, bool)
	BranchExists(ctx context.Context, name string) bool
	DefaultBranch(ctx context.Context) (string, bool)
}

// resolverKey is the context key for Resolver
type resolverKey struct{}

// Resolver loads, saves and applies workty configuration. Per-user
// directories come from Dirs so they can be substituted in tests.
type Resolver struct {
	dirs Dirs
}

// NewResolver creates a Resolver. A nil dirs uses SystemDirs.
func NewResolver(dirs Dirs) *Resolver {
	if dirs == nil {
		dirs = SystemDirs{}
	}
	return &Resolver{dirs: dirs}
}

// CandidatePath is a resolved Candidate.
type CandidatePath struct {
	Name   string
	Path   string
	Exists bool
}

// CandidatePaths resolves Candidates for repo in priority order, skipping
// locations whose base directory is unknown.
func (r *Resolver) CandidatePaths(repo Repository) []CandidatePath {
	paths := make([]CandidatePath, 0, len(Candidates))
	for _, c := range Candidates {
		path, ok := c.Path(repo, r.dirs)
		if !ok {
			continue
		}
		_, err := os.Stat(path)
		paths = append(paths, CandidatePath{Name: c.Name, Path: path, Exists: err == nil})
	}
	return paths
}

// Load reads the highest-priority config file that exists, or starts from
// Default() if there is none. An existing file that cannot be read or
// parsed is an error naming that file. Defaults are then reconciled with
// the repository (see adjustDefaults).
func (r *Resolver) Load(ctx context.Context, repo Repository) (*Config, error) {
	l := log.FromContext(ctx)

	cfg := Default()
	for _, c := range r.CandidatePaths(repo) {
		if !c.Exists {
			continue
		}

		data, err := os.ReadFile(c.Path)
		if err != nil {
			return nil, &FileError{Op: ErrConfigRead, Path: c.Path, Err: err}
		}
		decoded, undecoded, err := Decode(data)
		if err != nil {
			return nil, &FileError{Op: ErrConfigParse, Path: c.Path, Err: err}
		}
		for _, key := range undecoded {
			l.Debug("ignoring unknown config key", "key", key, "path", c.Path)
		}

		l.Debug("loaded config", "source", c.Name, "path", c.Path)
		cfg = decoded
		break
	}

	r.adjustDefaults(ctx, repo, &cfg)
	return &cfg, nil
}

// Defaults returns Default() reconciled with repo, ignoring any config
// files.
func (r *Resolver) Defaults(ctx context.Context, repo Repository) Config {
	cfg := Default()
	r.adjustDefaults(ctx, repo, &cfg)
	return cfg
}

// adjustDefaults replaces an untouched "main" base with the repository's
// real default branch when no local main exists. An explicitly configured
// base is never changed, and neither is main when detection finds nothing,
// so later lookups fail on a named branch rather than an empty one.
func (r *Resolver) adjustDefaults(ctx context.Context, repo Repository, cfg *Config) {
	if cfg.Base != DefaultBase || repo.BranchExists(ctx, DefaultBase) {
		return
	}
	if branch, ok := repo.DefaultBranch(ctx); ok {
		log.FromContext(ctx).Debug("adjusted base branch", "from", cfg.Base, "to", branch)
		cfg.Base = branch
	}
}

// ConfigPath returns the file Save writes to, inside the repository's
// common git directory.
func (r *Resolver) ConfigPath(repo Repository) string {
	path, _ := Candidates[saveCandidate].Path(repo, r.dirs)
	return path
}

// Exists reports whether ConfigPath exists.
func (r *Resolver) Exists(repo Repository) bool {
	_, err := os.Stat(r.ConfigPath(repo))
	return err == nil
}

// Save writes cfg to ConfigPath, replacing any existing file, and returns
// the path written. The write is not atomic.
func (r *Resolver) Save(repo Repository, cfg *Config) (string, error) {
	path := r.ConfigPath(repo)

	var buf bytes.Buffer
	if err := Encode(&buf, *cfg); err != nil {
		return "", &FileError{Op: ErrConfigWrite, Path: path, Err: err}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", &FileError{Op: ErrConfigWrite, Path: path, Err: err}
	}
	return path, nil
}

// WorkspaceRoot expands cfg.Root for repo: every {repo} becomes the name of
// the repository's root directory, every {id} its RepoID, and a leading ~
// the home directory.
func (r *Resolver) WorkspaceRoot(ctx context.Context, repo Repository, cfg *Config) string {
	root := strings.ReplaceAll(cfg.Root, "{repo}", repoName(repo.Root()))
	root = strings.ReplaceAll(root, "{id}", RepoID(ctx, repo))
	return r.ExpandTilde(root)
}

// WorktreePath returns where the worktree for branchSlug lives. The slug
// must already be safe to use as a single path segment.
func (r *Resolver) WorktreePath(ctx context.Context, repo Repository, cfg *Config, branchSlug string) string {
	return filepath.Join(r.WorkspaceRoot(ctx, repo, cfg), branchSlug)
}

// repoName returns the last element of root, or "repo" when root has none.
func repoName(root string) string {
	name := filepath.Base(root)
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "repo"
	}
	return name
}

// ExpandTilde expands "~" and a "~/" prefix to the home directory.
// Other paths, and all paths when the home directory is unknown, are
// returned unchanged.
func (r *Resolver) ExpandTilde(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, ok := r.dirs.HomeDir()
	if !ok {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// WithResolver returns a new context with the Resolver stored in it.
func WithResolver(ctx context.Context, r *Resolver) context.Context {
	return context.WithValue(ctx, resolverKey{}, r)
}

// ResolverFromContext returns the Resolver from context, or one using
// SystemDirs if none is stored.
func ResolverFromContext(ctx context.Context) *Resolver {
	if r, ok := ctx.Value(resolverKey{}).(*Resolver); ok {
		return r
	}
	return NewResolver(nil)
}
