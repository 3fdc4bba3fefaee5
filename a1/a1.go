// Package a1 converts between A1-style spreadsheet addressing and the
// zero-based, half-open grid coordinates used by the Sheets grid API.
package a1

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidAddress is returned for malformed column, row or range syntax.
var ErrInvalidAddress = errors.New("invalid address")

var cell = regexp.MustCompile(`^([A-Z]+)([0-9]+)$`)

// Address is a single cell reference - a 1-based (column, row) pair.
// Columns are rendered as a bijective base-26 letter sequence (A=1, Z=26,
// AA=27).
type Address struct {
	Col int64
	Row int64
}

// Range is a rectangular region of cells, optionally qualified by a sheet
// name. A bare cell reference normalises to From == To.
type Range struct {
	Sheet string
	From  Address
	To    Address
}

// GridRegion is the zero-based, half-open rectangle used by the grid API:
// end indices are one past the last included coordinate.
type GridRegion struct {
	SheetID  int64
	StartRow int64
	EndRow   int64
	StartCol int64
	EndCol   int64
}

// Cell pairs a reconstructed A1 address with the value at that address.
type Cell struct {
	Address string
	Value   any
}

// ColumnIndex converts column letters to a 1-based index, interpreting the
// letters as a base-26 number with digits 1-26 (there is no zero digit, so
// the encoding is bijective with the positive integers).
func ColumnIndex(letters string) (int64, error) {
	s := strings.ToUpper(strings.TrimSpace(letters))
	if s == "" {
		return 0, fmt.Errorf("%w: empty column reference", ErrInvalidAddress)
	}

	var ix int64
	for _, ch := range s {
		if ch < 'A' || ch > 'Z' {
			return 0, fmt.Errorf("%w: column %q", ErrInvalidAddress, letters)
		}

		ix = ix*26 + int64(ch-'A') + 1
	}

	return ix, nil
}

// ColumnLetters is the inverse of ColumnIndex, for indices >= 1.
func ColumnLetters(ix int64) (string, error) {
	if ix < 1 {
		return "", fmt.Errorf("%w: column index %d", ErrInvalidAddress, ix)
	}

	letters := []byte{}
	for ix > 0 {
		ix--
		letters = append([]byte{byte('A' + ix%26)}, letters...)
		ix /= 26
	}

	return string(letters), nil
}

// ParseRange parses an A1-style range expression of the form 'A1',
// 'A1:C10' or 'Sheet1!A1:C10'. An optional sheet name is split off before
// the first '!'; column letters are case-insensitive; rows are 1-based.
func ParseRange(text string) (Range, error) {
	r := Range{}

	s := strings.TrimSpace(text)
	if ix := strings.Index(s, "!"); ix != -1 {
		r.Sheet = s[:ix]
		s = s[ix+1:]
	}

	from, to := s, s
	if ix := strings.Index(s, ":"); ix != -1 {
		from, to = s[:ix], s[ix+1:]
	}

	var err error

	if r.From, err = parseAddress(from); err != nil {
		return Range{}, err
	}

	if r.To, err = parseAddress(to); err != nil {
		return Range{}, err
	}

	if r.To.Col < r.From.Col || r.To.Row < r.From.Row {
		return Range{}, fmt.Errorf("%w: %q - end precedes start", ErrInvalidAddress, text)
	}

	return r, nil
}

func parseAddress(s string) (Address, error) {
	match := cell.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(s)))
	if match == nil {
		return Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}

	col, err := ColumnIndex(match[1])
	if err != nil {
		return Address{}, err
	}

	row, err := strconv.ParseInt(match[2], 10, 64)
	if err != nil || row < 1 {
		return Address{}, fmt.Errorf("%w: row %q", ErrInvalidAddress, match[2])
	}

	return Address{Col: col, Row: row}, nil
}

// GridRegion converts the range to the grid API's zero-based, half-open
// representation for the given sheet ID.
func (r Range) GridRegion(sheetID int64) GridRegion {
	return GridRegion{
		SheetID:  sheetID,
		StartRow: r.From.Row - 1,
		EndRow:   r.To.Row,
		StartCol: r.From.Col - 1,
		EndCol:   r.To.Col,
	}
}

// Range is the inverse of Range.GridRegion.
func (g GridRegion) Range(sheet string) Range {
	return Range{
		Sheet: sheet,
		From:  Address{Col: g.StartCol + 1, Row: g.StartRow + 1},
		To:    Address{Col: g.EndCol, Row: g.EndRow},
	}
}

// Expand maps a row-major block of values onto individual cell addresses,
// origin at the range's top-left corner. The sheet prefix (if any) is
// re-applied to the reconstructed addresses. Cells are returned in
// row-major order.
func (r Range) Expand(values [][]any) []Cell {
	prefix := ""
	if r.Sheet != "" {
		prefix = r.Sheet + "!"
	}

	cells := []Cell{}
	for i, row := range values {
		for j, v := range row {
			address := Address{
				Col: r.From.Col + int64(j),
				Row: r.From.Row + int64(i),
			}

			cells = append(cells, Cell{
				Address: prefix + address.String(),
				Value:   v,
			})
		}
	}

	return cells
}

func (a Address) String() string {
	letters, err := ColumnLetters(a.Col)
	if err != nil {
		return fmt.Sprintf("?%d", a.Row)
	}

	return fmt.Sprintf("%s%d", letters, a.Row)
}

func (r Range) String() string {
	prefix := ""
	if r.Sheet != "" {
		prefix = r.Sheet + "!"
	}

	if r.From == r.To {
		return prefix + r.From.String()
	}

	return fmt.Sprintf("%s%v:%v", prefix, r.From, r.To)
}
