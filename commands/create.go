package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	gsheets "google.golang.org/api/sheets/v4"

	"github.com/sheet-tools/sheet-cli/formats"
)

var createCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create a new spreadsheet",
	Long: `Create makes a new spreadsheet and prints the result as JSON, including
the spreadsheet ID and URL. Sheet properties can optionally be piped in as
JSON - either '{"sheets": [...]}' or a bare array.

Examples:
  sheet-cli create "My Spreadsheet"
  echo '[{"properties": {"title": "Sales"}}]' | sheet-cli create "My Report"`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	input, err := formats.ReadStdin()
	if err != nil {
		return err
	}

	var sheets []*gsheets.Sheet
	if strings.TrimSpace(input) != "" {
		if sheets, err = parseSheets(input); err != nil {
			return err
		}
	}

	client, err := newClient(ctx)
	if err != nil {
		return err
	}

	spreadsheet, err := client.Create(ctx, args[0], sheets)
	if err != nil {
		return err
	}

	b, err := json.MarshalIndent(spreadsheet, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(b))

	return nil
}

// parseSheets accepts either a '{"sheets": [...]}' wrapper or a bare array
// of sheet properties.
func parseSheets(input string) ([]*gsheets.Sheet, error) {
	wrapper := struct {
		Sheets []*gsheets.Sheet `json:"sheets"`
	}{}

	if err := json.Unmarshal([]byte(input), &wrapper); err == nil && wrapper.Sheets != nil {
		return wrapper.Sheets, nil
	}

	sheets := []*gsheets.Sheet{}
	if err := json.Unmarshal([]byte(input), &sheets); err != nil {
		return nil, fmt.Errorf("invalid JSON - expected a 'sheets' array or an array of sheet properties (%v)", err)
	}

	return sheets, nil
}
