package git

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/raphi011/workty/internal/cmd"
)

// gitArgs prepends -C <dir> to args if dir is non-empty.
func gitArgs(dir string, args []string) []string {
	if dir == "" {
		return args
	}
	return append([]string{"-C", dir}, args...)
}

// outputGit runs git in dir and returns stdout as text. Invalid UTF-8 is
// replaced rather than rejected. Failures are returned as *CommandError.
func outputGit(ctx context.Context, dir string, args ...string) (string, error) {
	out, err := cmd.OutputContext(ctx, "", "git", gitArgs(dir, args)...)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", newCommandError(args, err)
	}
	return strings.ToValidUTF8(string(out), "\uFFFD"), nil
}

// ExecBackend answers repository queries by running the git CLI.
type ExecBackend struct{}

// Discover runs rev-parse in dir to find the working tree top level and the
// common git directory. A relative common directory is resolved against dir,
// which is where git printed it from.
func (ExecBackend) Discover(ctx context.Context, dir string) (root, commonDir string, err error) {
	top, err := outputGit(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", "", err
	}
	common, err := outputGit(ctx, dir, "rev-parse", "--git-common-dir")
	if err != nil {
		return "", "", err
	}

	root = strings.TrimSpace(top)
	commonDir = strings.TrimSpace(common)
	if !filepath.IsAbs(commonDir) {
		commonDir = filepath.Join(dir, commonDir)
	}
	return root, commonDir, nil
}

// Run executes an arbitrary git subcommand in dir.
func (ExecBackend) Run(ctx context.Context, dir string, args ...string) (string, error) {
	return outputGit(ctx, dir, args...)
}

// RemoteURL returns the configured URL of the named remote.
func (ExecBackend) RemoteURL(ctx context.Context, dir, name string) (string, error) {
	out, err := outputGit(ctx, dir, "remote", "get-url", name)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// VerifyBranch returns nil if refs/heads/<branch> exists.
func (ExecBackend) VerifyBranch(ctx context.Context, dir, branch string) error {
	_, err := outputGit(ctx, dir, "rev-parse", "--verify", "--quiet", "refs/heads/"+branch)
	return err
}

// IsAncestor uses merge-base --is-ancestor, which exits 1 for "no" and
// 128 for unknown revisions.
func (ExecBackend) IsAncestor(ctx context.Context, dir, ancestor, descendant string) (bool, error) {
	_, err := outputGit(ctx, dir, "merge-base", "--is-ancestor", ancestor, descendant)
	if err == nil {
		return true, nil
	}
	var ce *CommandError
	if errors.As(err, &ce) && ce.ExitCode() == 1 {
		return false, nil
	}
	return false, err
}
