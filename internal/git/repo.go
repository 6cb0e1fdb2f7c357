package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/raphi011/workty/internal/log"
)

// fallbackBranches are tried in order when HEAD does not name a branch.
var fallbackBranches = []string{"main", "master"}

// Repo is the repository enclosing the directory workty was started from.
// Its paths are resolved once by Discover and never change.
type Repo struct {
	root      string
	commonDir string
	backend   Backend
}

// Option configures Discover.
type Option func(*Repo)

// WithBackend selects the backend used for discovery and all later queries.
func WithBackend(b Backend) Option {
	return func(r *Repo) {
		if b != nil {
			r.backend = b
		}
	}
}

// Discover finds the repository enclosing startPath, or the current
// directory when startPath is empty. Both paths are symlink-resolved when
// possible; a path that cannot be resolved is kept as reported.
func Discover(ctx context.Context, startPath string, opts ...Option) (*Repo, error) {
	r := &Repo{backend: ExecBackend{}}
	for _, opt := range opts {
		opt(r)
	}

	dir := startPath
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}

	root, commonDir, err := r.backend.Discover(ctx, dir)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %w", ErrNotARepository, err)
	}

	r.root = canonicalize(root)
	r.commonDir = canonicalize(commonDir)
	log.FromContext(ctx).Debug("discovered repository", "root", r.root, "common-dir", r.commonDir)
	return r, nil
}

func canonicalize(path string) string {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path
	}
	return resolved
}

// Root returns the top level of the working tree.
func (r *Repo) Root() string {
	return r.root
}

// CommonDir returns the git directory shared by all worktrees of the repository.
func (r *Repo) CommonDir() string {
	return r.commonDir
}

// Run executes a git subcommand in the repository root.
func (r *Repo) Run(ctx context.Context, args ...string) (string, error) {
	return r.backend.Run(ctx, r.root, args...)
}

// RunIn executes a git subcommand in the given worktree directory.
func (r *Repo) RunIn(ctx context.Context, worktreePath string, args ...string) (string, error) {
	return r.backend.Run(ctx, worktreePath, args...)
}

// OriginURL returns the URL of the "origin" remote. ok is false when there
// is no origin or it cannot be queried.
func (r *Repo) OriginURL(ctx context.Context) (string, bool) {
	url, err := r.backend.RemoteURL(ctx, r.root, "origin")
	if err != nil || url == "" {
		return "", false
	}
	return url, true
}

// DefaultBranch detects the repository's default branch.
//
// The common directory's HEAD file is read directly, which works the same
// for bare repositories and linked worktrees. If HEAD is not a symbolic
// ref to a branch, the first existing of main and master is used.
func (r *Repo) DefaultBranch(ctx context.Context) (string, bool) {
	if branch, ok := headBranch(r.commonDir); ok {
		return branch, true
	}

	for _, b := range fallbackBranches {
		if r.BranchExists(ctx, b) {
			return b, true
		}
	}
	return "", false
}

// headBranch parses "ref: refs/heads/<name>" from gitDir/HEAD.
func headBranch(gitDir string) (string, bool) {
	content, err := os.ReadFile(filepath.Join(gitDir, "HEAD"))
	if err != nil {
		return "", false
	}
	name, ok := strings.CutPrefix(string(content), "ref: refs/heads/")
	if !ok {
		return "", false
	}
	name = strings.TrimSpace(name)
	return name, name != ""
}

// BranchExists reports whether a local branch with exactly this name
// exists. Any query failure counts as "does not exist".
func (r *Repo) BranchExists(ctx context.Context, name string) bool {
	if name == "" {
		return false
	}
	return r.backend.VerifyBranch(ctx, r.root, name) == nil
}

// IsAncestor reports whether ancestor is reachable from descendant.
// Unlike the other queries, a failed lookup (e.g. an unknown ref) is an error.
func (r *Repo) IsAncestor(ctx context.Context, ancestor, descendant string) (bool, error) {
	ok, err := r.backend.IsAncestor(ctx, r.root, ancestor, descendant)
	if err != nil {
		return false, fmt.Errorf("check whether %s is an ancestor of %s: %w", ancestor, descendant, err)
	}
	return ok, nil
}

// Branches lists local branch names.
func (r *Repo) Branches(ctx context.Context) ([]string, error) {
	out, err := r.Run(ctx, "for-each-ref", "--format=%(refname:short)", "refs/heads/")
	if err != nil {
		return nil, err
	}

	var branches []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			branches = append(branches, line)
		}
	}
	return branches, nil
}
