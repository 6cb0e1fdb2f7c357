package git

import (
	"context"
	"fmt"
)

// Backend abstracts how repository facts are obtained.
//
// The default implementation shells out to the git executable; GoGitBackend
// answers the same questions in-process. Callers only see Repo.
type Backend interface {
	// Discover resolves the working tree root and the common git directory
	// for the repository enclosing dir.
	Discover(ctx context.Context, dir string) (root, commonDir string, err error)
	// Run executes an arbitrary git subcommand in dir and returns stdout.
	Run(ctx context.Context, dir string, args ...string) (string, error)
	RemoteURL(ctx context.Context, dir, name string) (string, error)
	VerifyBranch(ctx context.Context, dir, branch string) error
	IsAncestor(ctx context.Context, dir, ancestor, descendant string) (bool, error)
}

// Backend names accepted by NewBackend.
const (
	BackendExec  = "exec"
	BackendGoGit = "go-git"
)

// BackendNames lists the accepted backend names, default first.
var BackendNames = []string{BackendExec, BackendGoGit}

// NewBackend returns the backend registered under name. An empty name
// selects the exec backend.
func NewBackend(name string) (Backend, error) {
	switch name {
	case "", BackendExec:
		return ExecBackend{}, nil
	case BackendGoGit:
		return NewGoGitBackend(), nil
	default:
		return nil, fmt.Errorf("unknown git backend %q: must be %q or %q", name, BackendExec, BackendGoGit)
	}
}
