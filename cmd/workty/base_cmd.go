package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/workty/internal/output"
)

func newBaseCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "base",
		Short:   "Print the base branch new worktrees start from",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			_, cfg, err := loadRepoConfig(ctx, flags)
			if err != nil {
				return err
			}

			output.FromContext(ctx).Println(cfg.Base)
			return nil
		},
	}
}

func newMergedCmd(flags *globalFlags) *cobra.Command {
	var into string

	cmd := &cobra.Command{
		Use:     "merged <branch>",
		Short:   "Report whether a branch is merged into the base branch",
		GroupID: GroupCore,
		Long: `Report whether a branch is merged into the base branch.

Prints "true" when every commit of the branch is reachable from the base
(or from --into), "false" otherwise.`,
		Example: `  workty merged feature/login
  workty merged feature/login --into develop`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			repo, cfg, err := loadRepoConfig(ctx, flags)
			if err != nil {
				return err
			}

			target := cfg.Base
			if into != "" {
				target = into
			}

			merged, err := repo.IsAncestor(ctx, args[0], target)
			if err != nil {
				return fmt.Errorf("cannot compare %s with %s: %w", args[0], target, err)
			}

			output.FromContext(ctx).Println(merged)
			return nil
		},
	}

	cmd.Flags().StringVar(&into, "into", "", "Compare against this branch instead of the base")

	return cmd
}
