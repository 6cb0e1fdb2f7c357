package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/workty/internal/config"
	"github.com/raphi011/workty/internal/git"
	"github.com/raphi011/workty/internal/log"
	"github.com/raphi011/workty/internal/output"
)

// Command group IDs for organizing help output
const (
	GroupCore   = "core"
	GroupConfig = "config"
)

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	verbose bool
	quiet   bool
	dir     string
	backend string
	noColor bool
}

// newRootCmd builds the command tree. dirs supplies the per-user
// directories used for config lookup and tilde expansion.
func newRootCmd(dirs config.Dirs) *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "workty",
		Short: "Locate worktrees and configuration for a git repository",
		Long: `workty resolves where the worktrees of a git repository live and which
configuration applies to it.

Configuration is read from the first workty.toml found in:
  <repo root>, <git common dir>, <user config dir>/workty,
  ~/.workty.toml, ~/workty.toml`,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
				return nil
			}

			if _, err := git.NewBackend(flags.backend); err != nil {
				return err
			}

			ctx := cmd.Context()
			ctx = log.WithLogger(ctx, log.New(cmd.ErrOrStderr(), flags.verbose, flags.quiet))
			ctx = output.WithPrinter(ctx, cmd.OutOrStdout())
			ctx = config.WithResolver(ctx, config.NewResolver(dirs))
			cmd.SetContext(ctx)

			return git.CheckGit()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Show git commands being executed")
	pf.BoolVarP(&flags.quiet, "quiet", "q", false, "Suppress all log output")
	pf.StringVarP(&flags.dir, "dir", "C", "", "Run as if started in `path`")
	pf.StringVar(&flags.backend, "backend", envOr("WORKTY_BACKEND", git.BackendExec), "Git backend: exec or go-git")
	pf.BoolVar(&flags.noColor, "no-color", os.Getenv("NO_COLOR") != "", "Disable colored output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	_ = rootCmd.RegisterFlagCompletionFunc("backend", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return git.BackendNames, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	rootCmd.AddCommand(newInfoCmd(flags))
	rootCmd.AddCommand(newRootPathCmd(flags))
	rootCmd.AddCommand(newPathCmd(flags))
	rootCmd.AddCommand(newBaseCmd(flags))
	rootCmd.AddCommand(newMergedCmd(flags))

	rootCmd.AddCommand(newConfigCmd(flags))
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the command line and returns the process exit code.
func Execute(dirs config.Dirs, args []string) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd := newRootCmd(dirs)
	rootCmd.SetArgs(args)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'workty -h' for help")
		return 1
	}
	return 0
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
