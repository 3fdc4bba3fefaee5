package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	gsheets "google.golang.org/api/sheets/v4"

	"github.com/sheet-tools/sheet-cli/formats"
)

var metaWriteCmd = &cobra.Command{
	Use:     "meta-write <spreadsheet>",
	Aliases: []string{"structure"},
	Short:   "Apply structural batch operations from JSON stdin",
	Long: `Meta-write reads a batchUpdate request body from stdin - either
'{"requests": [...]}' or a bare array of requests - and applies it to the
spreadsheet. Request types include addSheet, deleteSheet, mergeCells,
repeatCell, updateDimensionProperties and the other structural operations
of the Sheets API.

Example:
  echo '{"requests": [{"addSheet": {"properties": {"title": "Sales"}}}]}' | sheet-cli meta-write SHEET_ID`,
	Args: cobra.ExactArgs(1),
	RunE: runMetaWrite,
}

func runMetaWrite(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	id, err := spreadsheetID(args[0])
	if err != nil {
		return err
	}

	input, err := formats.ReadStdin()
	if err != nil {
		return err
	}

	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("no input - pipe JSON to stdin")
	}

	requests, err := parseRequests(input)
	if err != nil {
		return err
	}

	client, err := newClient(ctx)
	if err != nil {
		return err
	}

	response, err := client.MetaWrite(ctx, id, requests)
	if err != nil {
		return err
	}

	b, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(b))

	return nil
}

// parseRequests accepts either a '{"requests": [...]}' wrapper or a bare
// array of batchUpdate requests.
func parseRequests(input string) ([]*gsheets.Request, error) {
	wrapper := struct {
		Requests []*gsheets.Request `json:"requests"`
	}{}

	if err := json.Unmarshal([]byte(input), &wrapper); err == nil && wrapper.Requests != nil {
		return wrapper.Requests, nil
	}

	requests := []*gsheets.Request{}
	if err := json.Unmarshal([]byte(input), &requests); err != nil {
		return nil, fmt.Errorf("invalid JSON - expected a 'requests' array or an array of requests (%v)", err)
	}

	return requests, nil
}
