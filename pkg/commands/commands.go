package commands

import (
	"errors"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tableflip.dev/tcutils/pkg/catalog"
	"tableflip.dev/tcutils/pkg/commands/options"
	"tableflip.dev/tcutils/pkg/logging"
	"tableflip.dev/tcutils/pkg/runner/list"
	"tableflip.dev/tcutils/pkg/sorter"
	"tableflip.dev/tcutils/pkg/store"
)

var (
	oo = &options.OutputOptions{}
)

func New() *cobra.Command {
	lo := &options.ListOptions{}
	verbose := false

	cmd := &cobra.Command{
		Use:   "tcutils --list [manifest]",
		Short: base.Wrap80("Merge a file manager selection into a list.txt catalog."),
		Long: base.Wrap80("Reads the manifest of selected paths a file manager writes " +
			"(UTF-16, one path per line), folds the files into the categories of the " +
			"list.txt catalog next to them, sorts each category and writes the catalog " +
			"back with a footer recording the entry count. The result is printed and " +
			"copied to the clipboard. A run that would not change the entry count " +
			"leaves the file untouched."),
		Example: `
tcutils --list %P%S.tmp
tcutils --list --path ~/CMD1.tmp --dir ~/Lib --sort chapter
tcutils --list CMD1.tmp --dry-run -c
`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logging.SetVerbose(verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, err := lo.ManifestPath(args)
			if !lo.List || manifest == "" || errors.Is(err, options.ErrAmbiguousPath) {
				return cmd.Help()
			}
			if err != nil {
				return oo.HandleError(err)
			}

			l, err := newList(lo, manifest)
			if err != nil {
				return oo.HandleError(err)
			}
			return oo.HandleError(l.Do(cmd.Context()))
		},
	}

	options.AddListArgs(cmd, lo)
	options.AddOutputArg(cmd, oo)
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug details to stderr.")

	_ = viper.BindPFlag(store.KeySort, cmd.Flags().Lookup("sort"))
	_ = viper.BindPFlag(store.KeyIgnoreClipboard, cmd.Flags().Lookup("ignore-clipboard"))
	_ = viper.BindPFlag(store.KeyFooter, cmd.Flags().Lookup("footer"))
	registerListCompletions(cmd)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addVersion(topLevel)
	addInfo(topLevel)
	addKey(topLevel)
	addCompletions(topLevel)
}

// newList builds the list runner from flags and configuration.
func newList(lo *options.ListOptions, manifest string) (*list.List, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	strategy, err := sorter.Parse(cfg.Sort(), sorter.NewPatterns())
	if err != nil {
		return nil, err
	}
	style, err := catalog.ParseFooterStyle(cfg.Footer())
	if err != nil {
		return nil, err
	}
	dir, err := lo.CatalogDir()
	if err != nil {
		return nil, err
	}

	return &list.List{
		ManifestPath:    manifest,
		Dir:             dir,
		CatalogFile:     cfg.CatalogFile(),
		Marker:          cfg.Marker(),
		Strategy:        strategy,
		FooterStyle:     style,
		DryRun:          lo.DryRun,
		IgnoreClipboard: cfg.IgnoreClipboard(),
		Snapshots:       store.NewSnapshots(cfg.SnapshotDir()),
	}, nil
}
