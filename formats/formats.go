// Package formats converts between the CLI's textual representations -
// space-delimited 'address value' lines and JSON keyed by range - and the
// write intents and cell lists the sheet package consumes.
package formats

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	gsheets "google.golang.org/api/sheets/v4"

	"github.com/sheet-tools/sheet-cli/a1"
	"github.com/sheet-tools/sheet-cli/sheet"
)

// ParseInput parses write input in either supported format, auto-detected:
// JSON (leading '{' or '[') or space-delimited 'address value' lines.
func ParseInput(text string) ([]sheet.WriteIntent, error) {
	trimmed := strings.TrimSpace(text)

	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return ParseJSON(trimmed)
	}

	return ParsePairs(trimmed)
}

// ParsePairs parses space-delimited 'address value' lines, splitting on
// the first space only - everything after it is the value, formulas
// (leading '=') included. Blank lines are skipped.
func ParsePairs(text string) ([]sheet.WriteIntent, error) {
	intents := []sheet.WriteIntent{}

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		address, value, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("invalid line %q - expected 'address value'", line)
		}

		intents = append(intents, sheet.WriteIntent{
			Range:  address,
			Values: [][]any{{value}},
		})
	}

	return intents, nil
}

// ParseJSON parses JSON write input keyed by cell or range. A scalar value
// writes a single cell, a 2D array writes a block, and an object with a
// "format" or "note" key writes formatting or a note:
//
//	{"A1": "hello", "B1:C2": [[1, 2], [3, 4]], "A1:C1": {"note": "hi"}}
//
// Intents are returned ordered by range for deterministic batching.
func ParseJSON(text string) ([]sheet.WriteIntent, error) {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON input (%v)", err)
	}

	ranges := make([]string, 0, len(raw))
	for r := range raw {
		ranges = append(ranges, r)
	}

	sort.Strings(ranges)

	intents := make([]sheet.WriteIntent, 0, len(raw))
	for _, r := range ranges {
		intent, err := parsePayload(r, raw[r])
		if err != nil {
			return nil, err
		}

		intents = append(intents, intent)
	}

	return intents, nil
}

func parsePayload(r string, payload json.RawMessage) (sheet.WriteIntent, error) {
	// 2D array - block of values
	var block [][]any
	if err := json.Unmarshal(payload, &block); err == nil {
		return sheet.WriteIntent{Range: r, Values: block}, nil
	}

	// object - format or note
	var structural struct {
		Format *gsheets.CellFormat `json:"format"`
		Note   *string             `json:"note"`
	}

	if err := json.Unmarshal(payload, &structural); err == nil && (structural.Format != nil || structural.Note != nil) {
		return sheet.WriteIntent{Range: r, Format: structural.Format, Note: structural.Note}, nil
	}

	// scalar - single cell
	var scalar any
	if err := json.Unmarshal(payload, &scalar); err != nil {
		return sheet.WriteIntent{}, fmt.Errorf("invalid payload for %q (%v)", r, err)
	}

	return sheet.WriteIntent{Range: r, Values: [][]any{{scalar}}}, nil
}

// FormatPairs renders expanded cells as 'address value' lines, one per
// cell, in the order given.
func FormatPairs(cells []a1.Cell) string {
	lines := make([]string, 0, len(cells))

	for _, cell := range cells {
		value := ""
		if cell.Value != nil {
			value = fmt.Sprintf("%v", cell.Value)
		}

		lines = append(lines, fmt.Sprintf("%s %s", cell.Address, value))
	}

	return strings.Join(lines, "\n")
}

// ReadStdin returns piped stdin in full, or "" when stdin is a terminal.
func ReadStdin() (string, error) {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return "", err
	}

	if stat.Mode()&os.ModeCharDevice != 0 {
		return "", nil
	}

	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}

	return string(b), nil
}
