package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/raphi011/workty/internal/config"
	"github.com/raphi011/workty/internal/git"
)

// openRepo discovers the repository for the --dir and --backend flags.
func openRepo(ctx context.Context, flags *globalFlags) (*git.Repo, error) {
	backend, err := git.NewBackend(flags.backend)
	if err != nil {
		return nil, err
	}

	repo, err := git.Discover(ctx, flags.dir, git.WithBackend(backend))
	if err != nil {
		if errors.Is(err, git.ErrNotARepository) {
			return nil, fmt.Errorf("%w (use -C to pick one)", err)
		}
		return nil, err
	}
	return repo, nil
}

// loadRepoConfig discovers the repository and loads its configuration.
func loadRepoConfig(ctx context.Context, flags *globalFlags) (*git.Repo, *config.Config, error) {
	repo, err := openRepo(ctx, flags)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.ResolverFromContext(ctx).Load(ctx, repo)
	if err != nil {
		return nil, nil, err
	}
	return repo, cfg, nil
}
