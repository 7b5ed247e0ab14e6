package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/nfrund/b2bsite/internal/content"
)

// errInvalid makes the process exit non-zero after output that already
// explains the problem.
var errInvalid = errors.New("invalid input")

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	var contentFile string
	root := &cobra.Command{
		Use:   "site-cli",
		Short: "Operator tool for the marketing site",
		Long: `site-cli inspects the marketing site without starting the server.

Available commands:
  routes      List the navigable destinations grouped by menu
  topics      List the event bus topics
  validate    Run the contact form validator over a set of values
  version     Print the version number

Use "site-cli [command] --help" for more information about a specific command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&contentFile, "content", "", "site content file (defaults to the embedded content)")

	loadSite := func() (*content.Site, error) {
		store, err := content.NewStore(afero.NewOsFs(), contentFile)
		if err != nil {
			return nil, err
		}
		return store.Site(), nil
	}

	root.AddCommand(
		newRoutesCmd(loadSite),
		newTopicsCmd(),
		newValidateCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute executes the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		if !errors.Is(err, errInvalid) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func checkFormat(format string) error {
	if format != "table" && format != "json" {
		return fmt.Errorf("unknown format %q: valid formats are table, json", format)
	}
	return nil
}
