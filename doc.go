/*
Package sheetcli is a command-line client for the Google Sheets API v4.

sheet-cli exposes a simplified four-operation interface - read cells, write
cells, read structure, write structure - over the two Sheets API surfaces:
the lightweight 'values' API and the full grid-data API that also carries
formulas, formatting and notes.

sheet-cli supports the following commands:

  - authorise, to authorise sheet-cli to access Google Sheets
  - read, to read cell values from a spreadsheet as 'address value' lines
  - write, to write cell values, formats and notes to a spreadsheet
  - meta-read, to read spreadsheet metadata and structure
  - meta-write, to apply structural batch operations from JSON
  - create, to create a new spreadsheet
  - clear, to clear cell values from one or more ranges
*/
package sheetcli
