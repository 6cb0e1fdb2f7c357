package main

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/raphi011/workty/internal/config"
	"github.com/raphi011/workty/internal/output"
	"github.com/raphi011/workty/internal/ui/static"
)

// Formats accepted by `config show --format`.
var configFormats = []string{"toml", "json", "yaml"}

func newConfigCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage workty configuration.

The first workty.toml found in the candidate locations is used; see
'workty config paths' for the list. 'workty config init' writes to the
repository's git common directory, shared by all worktrees.`,
		Example: `  workty config show            # Effective config as TOML
  workty config show -f json    # ... as JSON
  workty config paths           # Candidate files in priority order
  workty config init            # Write defaults for this repository`,
	}

	cmd.AddCommand(newConfigShowCmd(flags))
	cmd.AddCommand(newConfigPathsCmd(flags))
	cmd.AddCommand(newConfigInitCmd(flags))

	return cmd
}

func newConfigShowCmd(flags *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			_, cfg, err := loadRepoConfig(ctx, flags)
			if err != nil {
				return err
			}

			switch format {
			case "toml":
				return config.Encode(out.Writer(), *cfg)
			case "json":
				return out.JSON(cfg)
			case "yaml":
				var buf bytes.Buffer
				enc := yaml.NewEncoder(&buf)
				enc.SetIndent(2)
				if err := enc.Encode(cfg); err != nil {
					return err
				}
				if err := enc.Close(); err != nil {
					return err
				}
				out.Print(buf.String())
				return nil
			default:
				return fmt.Errorf("unknown format %q: must be one of toml, json, yaml", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "toml", "Output format: toml, json or yaml")
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return configFormats, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func newConfigPathsCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "List candidate config files in priority order",
		Long: `List candidate config files in priority order.

The ACTIVE column marks the file that is loaded: the first one that exists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			repo, err := openRepo(ctx, flags)
			if err != nil {
				return err
			}

			var rows [][]string
			active := false
			for _, c := range config.ResolverFromContext(ctx).CandidatePaths(repo) {
				mark := ""
				if c.Exists && !active {
					mark = "*"
					active = true
				}
				rows = append(rows, []string{c.Name, c.Path, strconv.FormatBool(c.Exists), mark})
			}

			w := static.NewWriter(out.Writer(), !flags.noColor)
			_, err = w.Write([]byte(static.RenderTable([]string{"NAME", "PATH", "EXISTS", "ACTIVE"}, rows)))
			return err
		},
	}
}

func newConfigInitCmd(flags *globalFlags) *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write default config for the repository",
		Args:  cobra.NoArgs,
		Long: `Write the default configuration to workty.toml in the repository's git
common directory. The base branch is set to the repository's detected
default branch when no local main exists.`,
		Example: `  workty config init      # Create config
  workty config init -f   # Overwrite existing config
  workty config init -s   # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			resolver := config.ResolverFromContext(ctx)

			repo, err := openRepo(ctx, flags)
			if err != nil {
				return err
			}

			cfg := resolver.Defaults(ctx, repo)

			if stdout {
				return config.Encode(out.Writer(), cfg)
			}

			if !force && resolver.Exists(repo) {
				return fmt.Errorf("config file already exists: %s (use -f to overwrite)", resolver.ConfigPath(repo))
			}

			path, err := resolver.Save(repo, &cfg)
			if err != nil {
				return err
			}

			out.Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}
