package formats

import (
	"reflect"
	"testing"

	gsheets "google.golang.org/api/sheets/v4"

	"github.com/sheet-tools/sheet-cli/a1"
	"github.com/sheet-tools/sheet-cli/sheet"
)

func TestParsePairs(t *testing.T) {
	expected := []sheet.WriteIntent{
		{Range: "A1", Values: [][]any{{"hello world"}}},
		{Range: "A2", Values: [][]any{{"123"}}},
		{Range: "A3", Values: [][]any{{"=SUM(A1:A2)"}}},
	}

	intents, err := ParsePairs("A1 hello world\nA2 123\n\nA3 =SUM(A1:A2)\n")
	if err != nil {
		t.Fatalf("Unexpected error returned from ParsePairs (%v)", err)
	}

	if !reflect.DeepEqual(intents, expected) {
		t.Errorf("Incorrect intents\n   expected: %v\n   got:      %v\n", expected, intents)
	}
}

func TestParsePairsWithInvalidLine(t *testing.T) {
	if _, err := ParsePairs("A1"); err == nil {
		t.Errorf("Expected error for line without a value")
	}
}

func TestParseJSON(t *testing.T) {
	note := "important"

	expected := []sheet.WriteIntent{
		{Range: "A1", Values: [][]any{{"hello"}}},
		{Range: "A2", Values: [][]any{{float64(123)}}},
		{Range: "B1:C2", Values: [][]any{{float64(1), float64(2)}, {float64(3), float64(4)}}},
		{Range: "D1", Note: &note},
	}

	intents, err := ParseJSON(`{
		"A1": "hello",
		"A2": 123,
		"B1:C2": [[1, 2], [3, 4]],
		"D1": {"note": "important"}
	}`)
	if err != nil {
		t.Fatalf("Unexpected error returned from ParseJSON (%v)", err)
	}

	if !reflect.DeepEqual(intents, expected) {
		t.Errorf("Incorrect intents\n   expected: %v\n   got:      %v\n", expected, intents)
	}
}

func TestParseJSONWithFormat(t *testing.T) {
	intents, err := ParseJSON(`{"A1:C1": {"format": {"textFormat": {"bold": true}}}}`)
	if err != nil {
		t.Fatalf("Unexpected error returned from ParseJSON (%v)", err)
	}

	expected := []sheet.WriteIntent{
		{
			Range: "A1:C1",
			Format: &gsheets.CellFormat{
				TextFormat: &gsheets.TextFormat{Bold: true},
			},
		},
	}

	if !reflect.DeepEqual(intents, expected) {
		t.Errorf("Incorrect intents\n   expected: %+v\n   got:      %+v\n", expected, intents)
	}
}

func TestParseInputDetectsFormat(t *testing.T) {
	intents, err := ParseInput(`{"A1": "hello"}`)
	if err != nil {
		t.Fatalf("Unexpected error returned from ParseInput (%v)", err)
	}

	if len(intents) != 1 || intents[0].Range != "A1" {
		t.Errorf("Incorrect intents from JSON input: %v", intents)
	}

	intents, err = ParseInput("A1 hello")
	if err != nil {
		t.Fatalf("Unexpected error returned from ParseInput (%v)", err)
	}

	if len(intents) != 1 || !reflect.DeepEqual(intents[0].Values, [][]any{{"hello"}}) {
		t.Errorf("Incorrect intents from space-delimited input: %v", intents)
	}
}

func TestFormatPairs(t *testing.T) {
	expected := "A1 hello\nA2 123\nA3 =SUM(A1:A2)\nA4 "

	cells := []a1.Cell{
		{Address: "A1", Value: "hello"},
		{Address: "A2", Value: 123},
		{Address: "A3", Value: "=SUM(A1:A2)"},
		{Address: "A4", Value: nil},
	}

	if s := FormatPairs(cells); s != expected {
		t.Errorf("Incorrect output\n   expected: %q\n   got:      %q\n", expected, s)
	}
}
