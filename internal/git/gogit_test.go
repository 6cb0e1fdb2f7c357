package git

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoGitBackend_MatchesExec(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repoPath := setupTestRepo(t)
	require.NoError(t, runGit(ctx, repoPath, "remote", "add", "origin", "https://example.com/team/app.git"))
	wtPath := addWorktree(t, repoPath, "feature")

	for _, start := range []string{repoPath, wtPath} {
		execRoot, execCommon, err := ExecBackend{}.Discover(ctx, start)
		require.NoError(t, err)
		goRoot, goCommon, err := NewGoGitBackend().Discover(ctx, start)
		require.NoError(t, err)

		assert.Equal(t, canonicalize(execRoot), canonicalize(goRoot), "root from %s", start)
		assert.Equal(t, canonicalize(execCommon), canonicalize(goCommon), "common dir from %s", start)
	}

	execURL, err := ExecBackend{}.RemoteURL(ctx, wtPath, "origin")
	require.NoError(t, err)
	goURL, err := NewGoGitBackend().RemoteURL(ctx, wtPath, "origin")
	require.NoError(t, err)
	assert.Equal(t, execURL, goURL)
}

func TestGoGitBackend_RunDelegatesToCLI(t *testing.T) {
	t.Parallel()

	repoPath := setupTestRepo(t)
	out, err := NewGoGitBackend().Run(context.Background(), repoPath, "rev-parse", "--abbrev-ref", "HEAD")
	require.NoError(t, err)
	assert.Equal(t, "main", strings.TrimSpace(out))
}

func TestResolveGitDir(t *testing.T) {
	t.Parallel()

	t.Run("directory", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0755))

		got, err := resolveGitDir(root)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, ".git"), got)
	})

	t.Run("absolute gitdir file", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, ".git"), []byte("gitdir: /repo/.git/worktrees/feature\n"), 0644))

		got, err := resolveGitDir(root)
		require.NoError(t, err)
		assert.Equal(t, "/repo/.git/worktrees/feature", got)
	})

	t.Run("relative gitdir file", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, ".git"), []byte("gitdir: ../main/.git/worktrees/x\nextra\n"), 0644))

		got, err := resolveGitDir(root)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(filepath.Dir(root), "main", ".git", "worktrees", "x"), got)
	})

	t.Run("malformed file", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, ".git"), []byte("nonsense"), 0644))

		_, err := resolveGitDir(root)
		assert.Error(t, err)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		_, err := resolveGitDir(t.TempDir())
		assert.Error(t, err)
	})
}

func TestResolveCommonDir(t *testing.T) {
	t.Parallel()

	t.Run("no commondir file", func(t *testing.T) {
		t.Parallel()
		gitDir := t.TempDir()
		assert.Equal(t, gitDir, resolveCommonDir(gitDir))
	})

	t.Run("relative commondir", func(t *testing.T) {
		t.Parallel()
		base := t.TempDir()
		gitDir := filepath.Join(base, ".git", "worktrees", "feature")
		require.NoError(t, os.MkdirAll(gitDir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(gitDir, "commondir"), []byte("../..\n"), 0644))

		assert.Equal(t, filepath.Join(base, ".git"), resolveCommonDir(gitDir))
	})

	t.Run("absolute commondir", func(t *testing.T) {
		t.Parallel()
		gitDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(gitDir, "commondir"), []byte("/srv/repo.git"), 0644))

		assert.Equal(t, "/srv/repo.git", resolveCommonDir(gitDir))
	})
}
