package commands

import (
	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear <spreadsheet> <range>...",
	Short: "Clear cell values from one or more ranges",
	Long: `Clear removes the values from the given A1 ranges in a single batched
call. Formatting and notes are left in place.

Example:
  sheet-cli clear SHEET_ID A1:C10 Sheet2!B2:D5`,
	Args: cobra.MinimumNArgs(2),
	RunE: runClear,
}

func runClear(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	id, err := spreadsheetID(args[0])
	if err != nil {
		return err
	}

	client, err := newClient(ctx)
	if err != nil {
		return err
	}

	response, err := client.Clear(ctx, id, args[1:])
	if err != nil {
		return err
	}

	infof("cleared %d ranges", len(response.ClearedRanges))

	return nil
}
