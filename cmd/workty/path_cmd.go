package main

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/raphi011/workty/internal/config"
	"github.com/raphi011/workty/internal/git"
	"github.com/raphi011/workty/internal/log"
	"github.com/raphi011/workty/internal/output"
	"github.com/raphi011/workty/internal/worktree"
)

// maxSuggestions caps the branch names offered for an unknown branch.
const maxSuggestions = 3

func newRootPathCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "root",
		Short:   "Print the workspace root for the repository",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			repo, cfg, err := loadRepoConfig(ctx, flags)
			if err != nil {
				return err
			}

			output.FromContext(ctx).Println(config.ResolverFromContext(ctx).WorkspaceRoot(ctx, repo, cfg))
			return nil
		},
	}
}

func newPathCmd(flags *globalFlags) *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:     "path <branch>",
		Short:   "Print the worktree path for a branch",
		GroupID: GroupCore,
		Long: `Print where the worktree for a branch lives.

Slashes in the branch name become dashes, so feature/login maps to
<workspace root>/feature-login. The branch does not need to exist.`,
		Example: `  workty path feature/login          # Print path
  cd "$(workty path main)"           # Change into it
  workty path feature/login --copy   # Also copy to clipboard`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			repo, err := openRepo(cmd.Context(), flags)
			if err != nil {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			branches, _ := repo.Branches(cmd.Context())
			return branches, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			branch := args[0]

			repo, cfg, err := loadRepoConfig(ctx, flags)
			if err != nil {
				return err
			}

			if !repo.BranchExists(ctx, branch) {
				warnUnknownBranch(cmd, repo, branch)
			}

			path := config.ResolverFromContext(ctx).WorktreePath(ctx, repo, cfg, worktree.Slug(branch))

			if copyToClipboard {
				if err := clipboard.WriteAll(path); err != nil {
					l.Printf("Warning: failed to copy to clipboard: %v\n", err)
				}
			}

			output.FromContext(ctx).Println(path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy path to clipboard")

	return cmd
}

// warnUnknownBranch logs that branch does not exist locally, listing the
// closest local branch names.
func warnUnknownBranch(cmd *cobra.Command, repo *git.Repo, branch string) {
	ctx := cmd.Context()
	l := log.FromContext(ctx)

	branches, err := repo.Branches(ctx)
	if err != nil {
		l.Debug("listing branches failed", "error", err)
	}

	suggestions := suggestBranches(branch, branches)
	if len(suggestions) == 0 {
		l.Printf("Warning: branch %q does not exist locally\n", branch)
		return
	}
	l.Printf("Warning: branch %q does not exist locally (did you mean %s?)\n", branch, strings.Join(suggestions, ", "))
}

// suggestBranches returns up to maxSuggestions branches fuzzy-matching name,
// best match first.
func suggestBranches(name string, branches []string) []string {
	matches := fuzzy.Find(name, branches)

	var out []string
	for _, m := range matches {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, m.Str)
	}
	return out
}
