package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// workdir is set by the --workdir flag.
var workdir string

var RootCmd = &cobra.Command{
	Use:   APP,
	Short: "Command-line client for the Google Sheets API",
	Long: `sheet-cli is a small command-line client for the Google Sheets API v4.

It exposes four operations - read, write, meta-read and meta-write - plus
create and clear, translating between A1 addressing on the command line and
the values and grid-data API surfaces.`,
	PersistentPreRunE: configure,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&workdir, "workdir", "", "directory for configuration and cached tokens (default ~/.sheet-cli)")
	RootCmd.PersistentFlags().StringVar(&options.Credentials, "credentials", "", "path to the OAuth2 'credentials.json' file")
	RootCmd.PersistentFlags().StringVar(&options.Tokens, "tokens", "", "path to the cached OAuth2 tokens file")
	RootCmd.PersistentFlags().BoolVar(&options.Debug, "debug", false, "enable debugging information")

	RootCmd.AddCommand(readCmd)
	RootCmd.AddCommand(writeCmd)
	RootCmd.AddCommand(metaReadCmd)
	RootCmd.AddCommand(metaWriteCmd)
	RootCmd.AddCommand(createCmd)
	RootCmd.AddCommand(clearCmd)
	RootCmd.AddCommand(authoriseCmd)
	RootCmd.AddCommand(versionCmd)
}

// configure fills in unset options from config.yaml and the environment.
func configure(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	v, err := loadConfig(workdir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if options.Credentials == "" {
		options.Credentials = v.GetString(cfgKeyCredentials)
	}

	if options.Tokens == "" {
		options.Tokens = v.GetString(cfgKeyTokens)
	}

	return nil
}
