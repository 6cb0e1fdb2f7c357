package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// GoGitBackend answers repository queries in-process using go-git.
// Arbitrary subcommands have no library equivalent and are delegated to
// the exec backend.
type GoGitBackend struct {
	exec ExecBackend
}

// NewGoGitBackend creates a go-git backed Backend.
func NewGoGitBackend() *GoGitBackend {
	return &GoGitBackend{}
}

func (b *GoGitBackend) open(dir string) (*gogit.Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", ErrNotARepository, dir)
		}
		return nil, err
	}
	return repo, nil
}

// Discover opens the repository enclosing dir. Bare repositories have no
// working tree and are rejected like `git rev-parse --show-toplevel` does.
func (b *GoGitBackend) Discover(_ context.Context, dir string) (root, commonDir string, err error) {
	repo, err := b.open(dir)
	if err != nil {
		return "", "", err
	}
	wt, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, gogit.ErrIsBareRepository) {
			return "", "", fmt.Errorf("%w: %s has no working tree", ErrNotARepository, dir)
		}
		return "", "", err
	}

	root = wt.Filesystem.Root()
	gitDir, err := resolveGitDir(root)
	if err != nil {
		return "", "", err
	}
	return root, resolveCommonDir(gitDir), nil
}

// Run delegates to the git CLI.
func (b *GoGitBackend) Run(ctx context.Context, dir string, args ...string) (string, error) {
	return b.exec.Run(ctx, dir, args...)
}

// RemoteURL returns the first configured URL of the named remote.
func (b *GoGitBackend) RemoteURL(_ context.Context, dir, name string) (string, error) {
	repo, err := b.open(dir)
	if err != nil {
		return "", err
	}
	remote, err := repo.Remote(name)
	if err != nil {
		return "", err
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("remote %q has no url", name)
	}
	return strings.TrimSpace(urls[0]), nil
}

// VerifyBranch returns nil if refs/heads/<branch> resolves.
func (b *GoGitBackend) VerifyBranch(_ context.Context, dir, branch string) error {
	repo, err := b.open(dir)
	if err != nil {
		return err
	}
	_, err = repo.Reference(plumbing.NewBranchReferenceName(branch), true)
	return err
}

// IsAncestor reports whether ancestor is reachable from descendant.
// Revisions that do not resolve to commits are an error.
func (b *GoGitBackend) IsAncestor(_ context.Context, dir, ancestor, descendant string) (bool, error) {
	repo, err := b.open(dir)
	if err != nil {
		return false, err
	}

	a, err := resolveCommit(repo, ancestor)
	if err != nil {
		return false, err
	}
	d, err := resolveCommit(repo, descendant)
	if err != nil {
		return false, err
	}
	return a.IsAncestor(d)
}

func resolveCommit(repo *gogit.Repository, rev string) (*object.Commit, error) {
	hash, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", rev, err)
	}
	c, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", rev, err)
	}
	return c, nil
}

// resolveGitDir returns the private git directory of the working tree at
// root: either root/.git itself or the target of a "gitdir: <path>" file,
// which linked worktrees use.
func resolveGitDir(root string) (string, error) {
	dotGit := filepath.Join(root, ".git")
	info, err := os.Stat(dotGit)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return dotGit, nil
	}

	content, err := os.ReadFile(dotGit)
	if err != nil {
		return "", fmt.Errorf("failed to read .git file: %w", err)
	}

	// Only the first line matters; any additional lines are ignored
	line := strings.TrimSpace(string(content))
	if idx := strings.Index(line, "\n"); idx != -1 {
		line = strings.TrimSpace(line[:idx])
	}
	gitdir, ok := strings.CutPrefix(line, "gitdir: ")
	if !ok || gitdir == "" {
		return "", fmt.Errorf("invalid .git file format: expected 'gitdir: <path>'")
	}
	if !filepath.IsAbs(gitdir) {
		gitdir = filepath.Join(root, gitdir)
	}
	return filepath.Clean(gitdir), nil
}

// resolveCommonDir follows gitDir/commondir when present. Main working
// trees have no such file and are their own common directory.
func resolveCommonDir(gitDir string) string {
	content, err := os.ReadFile(filepath.Join(gitDir, "commondir"))
	if err != nil {
		return gitDir
	}
	common := strings.TrimSpace(string(content))
	if common == "" {
		return gitDir
	}
	if !filepath.IsAbs(common) {
		common = filepath.Join(gitDir, common)
	}
	return filepath.Clean(common)
}
