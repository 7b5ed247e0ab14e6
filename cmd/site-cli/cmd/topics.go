package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nfrund/b2bsite/cmd/site-cli/internal/report"
	_ "github.com/nfrund/b2bsite/internal/notify" // registers the domain topics
	"github.com/nfrund/b2bsite/internal/pubsub"
)

func newTopicsCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "topics",
		Short: "List the event bus topics",
		Long: `List every topic published on the in-process event bus, with a short
description of when it fires.

Examples:
  site-cli topics
  site-cli topics --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			topics := pubsub.Topics()
			if format == "json" {
				return report.WriteJSON(cmd.OutOrStdout(), topics)
			}
			return report.WriteTopicsTable(cmd.OutOrStdout(), topics)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, json)")
	return cmd
}
