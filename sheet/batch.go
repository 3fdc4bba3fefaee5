package sheet

import (
	"fmt"

	gsheets "google.golang.org/api/sheets/v4"

	"github.com/sheet-tools/sheet-cli/a1"
)

// WriteIntent is one pending write: a target range plus exactly one
// payload - a row-major block of values/formula strings, a cell format, or
// a note. A nil-payload or mixed-kind intent is rejected, never merged.
type WriteIntent struct {
	Range  string
	Values [][]any
	Format *gsheets.CellFormat
	Note   *string
}

// SheetResolver maps a sheet name to its numeric sheet ID, with "" naming
// the default sheet. Format and note writes address cells by GridRange,
// which is keyed on sheet ID rather than sheet title, so assembling them
// needs a resolver; value writes go by A1 range and never use it.
type SheetResolver func(name string) (int64, error)

// writePlan is the batched form of a list of write intents: at most one
// values batch and one structural batch, independent of the intent count.
type writePlan struct {
	values     *gsheets.BatchUpdateValuesRequest
	structural *gsheets.BatchUpdateSpreadsheetRequest
}

// planWrites partitions intents into a single values.batchUpdate covering
// every value/formula block and a single spreadsheets.batchUpdate of
// repeatCell requests covering every format and note. Values are written
// with 'USER_ENTERED' semantics, so the backend parses formulas (leading
// '='), numbers, booleans and dates exactly as if typed into the sheet.
func planWrites(intents []WriteIntent, resolve SheetResolver) (writePlan, error) {
	if len(intents) == 0 {
		return writePlan{}, fmt.Errorf("%w: no write intents", ErrInvalidRequest)
	}

	if resolve == nil {
		resolve = defaultSheet
	}

	plan := writePlan{}

	for _, intent := range intents {
		if err := intent.validate(); err != nil {
			return writePlan{}, err
		}

		if intent.Values != nil {
			if plan.values == nil {
				plan.values = &gsheets.BatchUpdateValuesRequest{
					ValueInputOption: "USER_ENTERED",
				}
			}

			plan.values.Data = append(plan.values.Data, &gsheets.ValueRange{
				Range:  intent.Range,
				Values: intent.Values,
			})

			continue
		}

		rq, err := intent.repeatCell(resolve)
		if err != nil {
			return writePlan{}, err
		}

		if plan.structural == nil {
			plan.structural = &gsheets.BatchUpdateSpreadsheetRequest{}
		}

		plan.structural.Requests = append(plan.structural.Requests, rq)
	}

	return plan, nil
}

func (w WriteIntent) validate() error {
	kinds := 0

	if w.Values != nil {
		kinds++
	}

	if w.Format != nil {
		kinds++
	}

	if w.Note != nil {
		kinds++
	}

	if kinds != 1 {
		return fmt.Errorf("%w: intent for %q must carry exactly one of values, format or note", ErrInvalidRequest, w.Range)
	}

	return nil
}

// repeatCell translates a format or note intent into a repeatCell request
// covering the intent's grid region.
func (w WriteIntent) repeatCell(resolve SheetResolver) (*gsheets.Request, error) {
	r, err := a1.ParseRange(w.Range)
	if err != nil {
		return nil, err
	}

	sheetID, err := resolve(r.Sheet)
	if err != nil {
		return nil, err
	}

	region := r.GridRegion(sheetID)
	grid := &gsheets.GridRange{
		SheetId:          region.SheetID,
		StartRowIndex:    region.StartRow,
		EndRowIndex:      region.EndRow,
		StartColumnIndex: region.StartCol,
		EndColumnIndex:   region.EndCol,
		ForceSendFields:  []string{"StartRowIndex", "StartColumnIndex"},
	}

	if w.Format != nil {
		return &gsheets.Request{
			RepeatCell: &gsheets.RepeatCellRequest{
				Range:  grid,
				Cell:   &gsheets.CellData{UserEnteredFormat: w.Format},
				Fields: "userEnteredFormat",
			},
		}, nil
	}

	cell := &gsheets.CellData{Note: *w.Note}
	if *w.Note == "" {
		// an empty note clears the cell note, so it has to be sent
		cell.ForceSendFields = []string{"Note"}
	}

	return &gsheets.Request{
		RepeatCell: &gsheets.RepeatCellRequest{
			Range:  grid,
			Cell:   cell,
			Fields: "note",
		},
	}, nil
}

// defaultSheet is the resolver used when none is supplied: unqualified
// ranges go to sheet 0, named sheets cannot be resolved without spreadsheet
// metadata.
func defaultSheet(name string) (int64, error) {
	if name == "" {
		return 0, nil
	}

	return 0, fmt.Errorf("%w: no sheet ID known for %q - supply a SheetResolver", ErrInvalidRequest, name)
}

// SheetIDs builds a SheetResolver from spreadsheet metadata. The empty
// name resolves to the spreadsheet's first sheet.
func SheetIDs(spreadsheet *gsheets.Spreadsheet) SheetResolver {
	ids := map[string]int64{}
	first := int64(0)

	for i, s := range spreadsheet.Sheets {
		if s.Properties == nil {
			continue
		}

		ids[s.Properties.Title] = s.Properties.SheetId
		if i == 0 {
			first = s.Properties.SheetId
		}
	}

	return func(name string) (int64, error) {
		if name == "" {
			return first, nil
		}

		if id, ok := ids[name]; ok {
			return id, nil
		}

		return 0, fmt.Errorf("%w: no sheet named %q", ErrInvalidRequest, name)
	}
}
