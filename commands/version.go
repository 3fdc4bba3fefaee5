package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// VERSION is the current sheet-cli version.
const VERSION = "v0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(VERSION)
	},
}
