package redpanda

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bjk2k/red-panda/internal/version"
	"github.com/bjk2k/red-panda/pkg/commands/install"
	"github.com/bjk2k/red-panda/pkg/commands/list"
	"github.com/bjk2k/red-panda/pkg/commands/showconfig"
	"github.com/bjk2k/red-panda/pkg/config"
	"github.com/bjk2k/red-panda/pkg/errors"
	"github.com/bjk2k/red-panda/pkg/features"
	"github.com/bjk2k/red-panda/pkg/logging"
	"github.com/bjk2k/red-panda/pkg/ui"
)

// rootState is shared by every subcommand of one root command
type rootState struct {
	verbosity  int
	configFile string
	dryRun     bool
	noBanner   bool

	cfg *config.Config
	rt  *runtime
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	st := &rootState{}

	rootCmd := &cobra.Command{
		Use:     "red-panda",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Setup logging based on verbosity
			logging.SetupLogger(st.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			cfg, err := config.Load(config.LoadOptions{File: st.configFile})
			if err != nil {
				return err
			}

			var progress io.Writer
			if st.verbosity > 0 {
				progress = cmd.ErrOrStderr()
			}
			st.cfg = cfg
			st.rt = newRuntime(cfg, cmd.OutOrStdout(), progress)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&st.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&st.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().BoolVar(&st.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().BoolVar(&st.noBanner, "no-banner", false, MsgFlagNoBanner)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(newInstallCmd(st))
	rootCmd.AddCommand(newFullInstallCmd(st))
	rootCmd.AddCommand(newListCmd(st))
	rootCmd.AddCommand(newConfigCmd(st))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func newInstallCmd(st *rootState) *cobra.Command {
	var names []string

	requested := func(args []string) []string {
		out := append([]string{}, names...)
		return append(out, args[1:]...)
	}

	cmd := &cobra.Command{
		Use:               "install <INSTALL_DIR> [FEATURE...]",
		Short:             MsgInstallShort,
		Long:              MsgInstallLong,
		Example:           MsgInstallExample,
		GroupID:           "core",
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: installArgsCompletion,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Reject unknown names before anything else runs
			_, err := install.Plan(st.rt.registry, requested(args), false)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, st, args[0], requested(args), false)
		},
	}

	cmd.Flags().StringSliceVarP(&names, "features", "f", nil, MsgFlagFeatures)
	_ = cmd.RegisterFlagCompletionFunc("features", featureNamesCompletion)

	return cmd
}

func newFullInstallCmd(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:               "full-install <INSTALL_DIR>",
		Short:             MsgFullInstallShort,
		Long:              MsgFullInstallLong,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: dirCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, st, args[0], nil, true)
		},
	}
}

func runInstall(cmd *cobra.Command, st *rootState, dir string, names []string, all bool) error {
	if !st.noBanner {
		if err := ui.Banner(cmd.OutOrStdout(), ui.FormatAuto, version.Version); err != nil {
			log.Debug().Err(err).Msg("Failed to render banner")
		}
	}

	result, err := install.Run(cmd.Context(), st.rt.installOptions(dir, names, all, st.dryRun))
	if err != nil {
		return err
	}

	if result.DryRun {
		st.rt.printer.Warning(MsgDryRunNotice)
		return nil
	}

	st.rt.printer.Success(MsgInstallFinished, len(result.Installed), strings.Join(result.Installed, ", "))
	return nil
}

func newListCmd(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := list.Features(st.rt.registry)

			st.rt.printer.Step(MsgListing)
			for _, f := range result.Features {
				st.rt.printer.Feature(f.Name, f.Description, st.verbosity > 0)
			}
			return nil
		},
	}
}

func newConfigCmd(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := showconfig.Show(showconfig.Options{
				Config: st.cfg,
				Load:   config.LoadOptions{File: st.configFile},
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if result.Source != "" {
				fmt.Fprintf(out, MsgConfigSource, result.Source)
			} else {
				fmt.Fprint(out, MsgConfigDefaults)
			}
			fmt.Fprint(out, result.TOML)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

// featureNames returns the built-in feature names without loading any
// configuration; completion runs without the persistent pre-run hooks.
func featureNames() []string {
	cfg, err := config.Default()
	if err != nil {
		return nil
	}
	return features.NewDefaultRegistry(cfg, features.Deps{}).Names()
}

// featureNamesCompletion provides shell completion for feature names
func featureNamesCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return featureNames(), cobra.ShellCompDirectiveNoFileComp
}

func dirCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return nil, cobra.ShellCompDirectiveFilterDirs
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

func installArgsCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return nil, cobra.ShellCompDirectiveFilterDirs
	}
	return featureNamesCompletion(cmd, args, toComplete)
}
