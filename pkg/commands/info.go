package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/tcutils/pkg/commands/options"
	"tableflip.dev/tcutils/pkg/runner/info"
	"tableflip.dev/tcutils/pkg/store"
)

func addInfo(topLevel *cobra.Command) {
	lo := &options.ListOptions{}
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the catalog and where tcutils stores things.",
		Example: `
tcutils info
tcutils info --dir ~/Lib
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return oo.HandleError(err)
			}
			dir, err := lo.CatalogDir()
			if err != nil {
				return oo.HandleError(err)
			}
			s := info.Info{
				Config:    cfg,
				Dir:       dir,
				Snapshots: store.NewSnapshots(cfg.SnapshotDir()),
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}
	cmd.Flags().StringVarP(&lo.Dir, "dir", "d", "",
		"Directory holding the catalog file. Defaults to the working directory.")

	topLevel.AddCommand(cmd)
}
