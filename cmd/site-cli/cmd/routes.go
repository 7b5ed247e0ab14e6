package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nfrund/b2bsite/cmd/site-cli/internal/report"
	"github.com/nfrund/b2bsite/internal/content"
)

func newRoutesCmd(loadSite func() (*content.Site, error)) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List navigable destinations",
		Long: `List every destination reachable from the navigation bar, grouped by
the menu it appears under. Destinations without a page are marked "not built";
the server answers them with the not-found page.

Examples:
  site-cli routes
  site-cli routes --format json
  site-cli routes --content ./site.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			site, err := loadSite()
			if err != nil {
				return err
			}
			routes := report.Routes(site.Nav)
			if format == "json" {
				return report.WriteJSON(cmd.OutOrStdout(), routes)
			}
			return report.WriteRoutesTable(cmd.OutOrStdout(), routes)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, json)")
	return cmd
}
