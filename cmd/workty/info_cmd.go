package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/workty/internal/config"
	"github.com/raphi011/workty/internal/output"
	"github.com/raphi011/workty/internal/ui/static"
)

// repoInfo is the JSON form of `workty info`.
type repoInfo struct {
	Root          string `json:"root"`
	CommonDir     string `json:"common_dir"`
	Origin        string `json:"origin,omitempty"`
	DefaultBranch string `json:"default_branch,omitempty"`
	Base          string `json:"base"`
	ID            string `json:"id"`
	WorkspaceRoot string `json:"workspace_root"`
	ConfigSource  string `json:"config_source,omitempty"`
	ConfigPath    string `json:"config_path,omitempty"`
}

func newInfoCmd(flags *globalFlags) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "info",
		Short:   "Show repository and workspace details",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Example: `  workty info          # Table of resolved values
  workty info --json   # Same as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			resolver := config.ResolverFromContext(ctx)

			repo, cfg, err := loadRepoConfig(ctx, flags)
			if err != nil {
				return err
			}

			info := repoInfo{
				Root:          repo.Root(),
				CommonDir:     repo.CommonDir(),
				Base:          cfg.Base,
				ID:            config.RepoID(ctx, repo),
				WorkspaceRoot: resolver.WorkspaceRoot(ctx, repo, cfg),
			}
			info.Origin, _ = repo.OriginURL(ctx)
			info.DefaultBranch, _ = repo.DefaultBranch(ctx)
			for _, c := range resolver.CandidatePaths(repo) {
				if c.Exists {
					info.ConfigSource = c.Name
					info.ConfigPath = c.Path
					break
				}
			}

			if jsonOutput {
				return out.JSON(info)
			}

			source := "defaults"
			if info.ConfigPath != "" {
				source = info.ConfigPath
			}
			w := static.NewWriter(out.Writer(), !flags.noColor)
			_, err = w.Write([]byte(static.RenderKeyValue([][2]string{
				{"root", info.Root},
				{"common dir", info.CommonDir},
				{"origin", info.Origin},
				{"default branch", info.DefaultBranch},
				{"base", info.Base},
				{"id", info.ID},
				{"workspace root", info.WorkspaceRoot},
				{"config", source},
			})))
			return err
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
