package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sheet-tools/sheet-cli/a1"
	"github.com/sheet-tools/sheet-cli/formats"
	"github.com/sheet-tools/sheet-cli/sheet"
)

// readValues is set by the --values flag.
var readValues bool

var readCmd = &cobra.Command{
	Use:   "read <spreadsheet> [range...]",
	Short: "Read cell values from a spreadsheet",
	Long: `Read prints cell values as 'address value' lines, one per populated cell.

Ranges use A1 notation (A1, A1:B10, Sheet1!A1:C10); the spreadsheet may be
given as an ID or a full URL. With no ranges, every sheet in the
spreadsheet is read. Formulas print as formula text unless --values is set.

Example:
  sheet-cli read 1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms A1 B1:B10 Sheet2!C1:C5`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRead,
}

func init() {
	readCmd.Flags().BoolVar(&readValues, "values", false, "print computed values instead of formula text")
}

func runRead(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	id, err := spreadsheetID(args[0])
	if err != nil {
		return err
	}

	client, err := newClient(ctx)
	if err != nil {
		return err
	}

	ranges := args[1:]
	if len(ranges) == 0 {
		// no ranges - discover and read every sheet
		meta, err := client.MetaRead(ctx, id)
		if err != nil {
			return err
		}

		for _, s := range meta.Sheets {
			if s.Properties != nil {
				ranges = append(ranges, s.Properties.Title)
			}
		}

		if len(ranges) == 0 {
			return fmt.Errorf("no sheets found in spreadsheet")
		}
	}

	debugf("spreadsheet - ID:%s  ranges:%v", id, ranges)

	facets := sheet.Value | sheet.Formula
	if readValues {
		facets = sheet.Value
	}

	result, err := client.Read(ctx, id, ranges, facets)
	if err != nil {
		return err
	}

	cells := []a1.Cell{}
	for _, vr := range result.Values {
		r, err := a1.ParseRange(vr.Range)
		if err != nil {
			return fmt.Errorf("unexpected range %q in response (%v)", vr.Range, err)
		}

		cells = append(cells, r.Expand(vr.Values)...)
	}

	fmt.Fprintln(cmd.OutOrStdout(), formats.FormatPairs(cells))

	return nil
}
