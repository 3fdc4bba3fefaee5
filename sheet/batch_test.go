package sheet

import (
	"errors"
	"reflect"
	"testing"

	gsheets "google.golang.org/api/sheets/v4"
)

func TestPlanWritesBatchesValues(t *testing.T) {
	intents := []WriteIntent{
		{Range: "Sheet1!A1", Values: [][]any{{1, 2, 3}}},
		{Range: "Sheet2!B5", Values: [][]any{{"text", "=SUM(A:A)"}}},
		{Range: "Sheet3!C10", Values: [][]any{{7}, {8}, {9}}},
	}

	plan, err := planWrites(intents, nil)
	if err != nil {
		t.Fatalf("Unexpected error returned from planWrites (%v)", err)
	}

	if plan.structural != nil {
		t.Fatalf("Expected no structural batch for value-only intents")
	}

	if plan.values == nil {
		t.Fatalf("Expected a values batch")
	}

	if plan.values.ValueInputOption != "USER_ENTERED" {
		t.Errorf("Incorrect value input option\n   expected: %v\n   got:      %v\n", "USER_ENTERED", plan.values.ValueInputOption)
	}

	if len(plan.values.Data) != 3 {
		t.Errorf("Incorrect batch size\n   expected: %v\n   got:      %v\n", 3, len(plan.values.Data))
	}

	if plan.values.Data[1].Range != "Sheet2!B5" {
		t.Errorf("Incorrect range\n   expected: %v\n   got:      %v\n", "Sheet2!B5", plan.values.Data[1].Range)
	}
}

func TestPlanWritesBatchesFormatsAndNotes(t *testing.T) {
	bold := gsheets.CellFormat{
		TextFormat: &gsheets.TextFormat{Bold: true},
	}

	note := "Important cell!"

	intents := []WriteIntent{
		{Range: "A1", Values: [][]any{{"Total"}}},
		{Range: "A1:C1", Format: &bold},
		{Range: "A1", Note: &note},
	}

	plan, err := planWrites(intents, nil)
	if err != nil {
		t.Fatalf("Unexpected error returned from planWrites (%v)", err)
	}

	if plan.values == nil || len(plan.values.Data) != 1 {
		t.Fatalf("Expected a values batch with one entry, got %+v", plan.values)
	}

	if plan.structural == nil || len(plan.structural.Requests) != 2 {
		t.Fatalf("Expected a structural batch with two requests, got %+v", plan.structural)
	}

	format := plan.structural.Requests[0].RepeatCell
	if format == nil {
		t.Fatalf("Expected a repeatCell request for the format intent")
	}

	if format.Fields != "userEnteredFormat" {
		t.Errorf("Incorrect fields mask\n   expected: %v\n   got:      %v\n", "userEnteredFormat", format.Fields)
	}

	expected := gsheets.GridRange{
		SheetId:          0,
		StartRowIndex:    0,
		EndRowIndex:      1,
		StartColumnIndex: 0,
		EndColumnIndex:   3,
		ForceSendFields:  []string{"StartRowIndex", "StartColumnIndex"},
	}

	if !reflect.DeepEqual(*format.Range, expected) {
		t.Errorf("Incorrect grid range\n   expected: %+v\n   got:      %+v\n", expected, *format.Range)
	}

	noterq := plan.structural.Requests[1].RepeatCell
	if noterq == nil {
		t.Fatalf("Expected a repeatCell request for the note intent")
	}

	if noterq.Fields != "note" {
		t.Errorf("Incorrect fields mask\n   expected: %v\n   got:      %v\n", "note", noterq.Fields)
	}

	if noterq.Cell.Note != note {
		t.Errorf("Incorrect note\n   expected: %v\n   got:      %v\n", note, noterq.Cell.Note)
	}
}

func TestPlanWritesClearsNotes(t *testing.T) {
	empty := ""

	plan, err := planWrites([]WriteIntent{{Range: "B2", Note: &empty}}, nil)
	if err != nil {
		t.Fatalf("Unexpected error returned from planWrites (%v)", err)
	}

	cell := plan.structural.Requests[0].RepeatCell.Cell
	if !reflect.DeepEqual(cell.ForceSendFields, []string{"Note"}) {
		t.Errorf("Expected empty note to be force-sent, got %+v", cell)
	}
}

func TestPlanWritesResolvesSheetIDs(t *testing.T) {
	bold := gsheets.CellFormat{
		TextFormat: &gsheets.TextFormat{Bold: true},
	}

	resolve := SheetIDs(&gsheets.Spreadsheet{
		Sheets: []*gsheets.Sheet{
			{Properties: &gsheets.SheetProperties{SheetId: 100, Title: "Summary"}},
			{Properties: &gsheets.SheetProperties{SheetId: 200, Title: "Sales"}},
		},
	})

	plan, err := planWrites([]WriteIntent{{Range: "Sales!A1:B2", Format: &bold}}, resolve)
	if err != nil {
		t.Fatalf("Unexpected error returned from planWrites (%v)", err)
	}

	if id := plan.structural.Requests[0].RepeatCell.Range.SheetId; id != 200 {
		t.Errorf("Incorrect sheet ID\n   expected: %v\n   got:      %v\n", 200, id)
	}

	// unqualified ranges resolve to the first sheet
	plan, err = planWrites([]WriteIntent{{Range: "A1", Format: &bold}}, resolve)
	if err != nil {
		t.Fatalf("Unexpected error returned from planWrites (%v)", err)
	}

	if id := plan.structural.Requests[0].RepeatCell.Range.SheetId; id != 100 {
		t.Errorf("Incorrect sheet ID\n   expected: %v\n   got:      %v\n", 100, id)
	}
}

func TestPlanWritesRejectsUnknownSheets(t *testing.T) {
	bold := gsheets.CellFormat{}

	if _, err := planWrites([]WriteIntent{{Range: "Sales!A1", Format: &bold}}, nil); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("Expected ErrInvalidRequest for unresolvable sheet name, got %v", err)
	}
}

func TestPlanWritesRejectsMixedIntents(t *testing.T) {
	note := "note"

	intents := []WriteIntent{
		{Range: "A1", Values: [][]any{{1}}, Note: &note},
	}

	if _, err := planWrites(intents, nil); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("Expected ErrInvalidRequest for mixed-kind intent, got %v", err)
	}
}

func TestPlanWritesRejectsEmptyIntents(t *testing.T) {
	if _, err := planWrites([]WriteIntent{}, nil); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("Expected ErrInvalidRequest for empty intent list, got %v", err)
	}

	if _, err := planWrites([]WriteIntent{{Range: "A1"}}, nil); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("Expected ErrInvalidRequest for payload-less intent, got %v", err)
	}
}

func TestPlanWritesRejectsInvalidRanges(t *testing.T) {
	bold := gsheets.CellFormat{}

	if _, err := planWrites([]WriteIntent{{Range: "1A", Format: &bold}}, nil); err == nil {
		t.Errorf("Expected error for invalid range in format intent")
	}
}
