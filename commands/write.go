package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sheet-tools/sheet-cli/formats"
	"github.com/sheet-tools/sheet-cli/sheet"
)

var writeCmd = &cobra.Command{
	Use:   "write <spreadsheet> [address value]...",
	Short: "Write cell values, formats and notes to a spreadsheet",
	Long: `Write takes alternating address/value pairs from the command line, or
reads stdin in either space-delimited ('address value', split on the first
space) or JSON form.

JSON input is keyed by cell or range: a scalar writes a single cell, a 2D
array writes a block, and an object with a "format" or "note" key writes
formatting or a note. Values beginning with '=' are entered as formulas.

Examples:
  sheet-cli write SHEET_ID A1 "hello world" A2 123 A3 "=SUM(A1:A2)"
  echo '{"A1": "hello", "B1:C2": [[1, 2], [3, 4]]}' | sheet-cli write SHEET_ID
  echo '{"A1:C1": {"format": {"textFormat": {"bold": true}}}}' | sheet-cli write SHEET_ID`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWrite,
}

func runWrite(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	id, err := spreadsheetID(args[0])
	if err != nil {
		return err
	}

	var intents []sheet.WriteIntent

	if pairs := args[1:]; len(pairs) > 0 {
		if len(pairs)%2 != 0 {
			return fmt.Errorf("expected alternating address/value pairs")
		}

		for i := 0; i < len(pairs); i += 2 {
			intents = append(intents, sheet.WriteIntent{
				Range:  pairs[i],
				Values: [][]any{{pairs[i+1]}},
			})
		}
	} else {
		input, err := formats.ReadStdin()
		if err != nil {
			return err
		}

		if strings.TrimSpace(input) == "" {
			return fmt.Errorf("no input - use address/value arguments or pipe data to stdin")
		}

		if intents, err = formats.ParseInput(input); err != nil {
			return err
		}
	}

	debugf("spreadsheet - ID:%s  intents:%v", id, len(intents))

	client, err := newClient(ctx)
	if err != nil {
		return err
	}

	// format and note intents address cells by sheet ID, so resolve
	// sheet names from metadata before assembling the batch
	var resolve sheet.SheetResolver

	for _, intent := range intents {
		if intent.Values == nil {
			meta, err := client.MetaRead(ctx, id)
			if err != nil {
				return err
			}

			resolve = sheet.SheetIDs(meta)
			break
		}
	}

	result, err := client.Write(ctx, id, intents, resolve)
	if err != nil {
		return err
	}

	if result.Values != nil {
		infof("updated %d cells", result.Values.TotalUpdatedCells)
	}

	if result.Structural != nil {
		infof("applied %d format/note updates", len(result.Structural.Replies))
	}

	return nil
}
