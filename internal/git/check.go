package git

import (
	"context"
	"errors"
	"os/exec"
)

// ErrGitNotFound indicates git is not installed or not in PATH
var ErrGitNotFound = errors.New("git not found: please install git (https://git-scm.com)")

// CheckGit verifies that git is available in PATH
func CheckGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return ErrGitNotFound
	}
	return nil
}

// IsInsideRepo reports whether path is inside a git working tree.
func IsInsideRepo(ctx context.Context, path string) bool {
	_, err := outputGit(ctx, path, "rev-parse", "--is-inside-work-tree")
	return err == nil
}
