package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sheet-tools/sheet-cli/auth"
)

var authoriseCmd = &cobra.Command{
	Use:     "authorise",
	Aliases: []string{"authorize"},
	Short:   "Authorise sheet-cli to access Google Sheets",
	Long: `Authorise runs the OAuth2 flow against the configured credentials file
and caches the resulting token for use by the other commands. The
authorisation URL is printed to the console; paste the code back to
complete the exchange.

Example:
  sheet-cli authorise --credentials "credentials.json"`,
	Args: cobra.NoArgs,
	RunE: runAuthorise,
}

func runAuthorise(cmd *cobra.Command, args []string) error {
	if _, err := auth.Authorize(options.Credentials, options.Tokens); err != nil {
		return fmt.Errorf("authorisation error (%v)", err)
	}

	infof("authorised - token cached")

	return nil
}
