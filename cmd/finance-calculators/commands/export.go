package commands

import (
	"fmt"

	"github.com/iwvelando/finance-calculators/internal/calculator"
	"github.com/iwvelando/finance-calculators/internal/publish"
	"github.com/iwvelando/finance-calculators/internal/seo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newExportCommand(a *app) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write sitemap.xml, rss.xml, atom.xml and robots.txt to a directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			builder := publish.NewBuilder(seo.NewSite(a.conf.Site), calculator.Default(), a.conf.Feeds.ItemLimit)
			docs, err := builder.Build()
			if err != nil {
				return err
			}

			written, err := publish.Export(dir, docs)
			if err != nil {
				return err
			}
			for _, path := range written {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}

			a.logger.Info("documents exported",
				zap.String("op", "commands.export"),
				zap.String("dir", dir),
				zap.Int("files", len(written)),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "public", "directory to write documents into")
	return cmd
}
