package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var metaReadCmd = &cobra.Command{
	Use:     "meta-read <spreadsheet>",
	Aliases: []string{"metadata"},
	Short:   "Read spreadsheet metadata and structure",
	Long: `Meta-read prints the spreadsheet's structure as JSON: properties, sheets
with their IDs and grid dimensions, named ranges and conditional formats -
without any cell data.`,
	Args: cobra.ExactArgs(1),
	RunE: runMetaRead,
}

func runMetaRead(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	id, err := spreadsheetID(args[0])
	if err != nil {
		return err
	}

	client, err := newClient(ctx)
	if err != nil {
		return err
	}

	meta, err := client.MetaRead(ctx, id)
	if err != nil {
		return err
	}

	b, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(b))

	return nil
}
