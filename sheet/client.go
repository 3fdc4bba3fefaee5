// Package sheet is a minimal client for the Google Sheets API v4, exposing
// four core operations - Read, Write, MetaRead and MetaWrite - over the
// values and grid-data API surfaces. Every backend call is issued through a
// bounded exponential-backoff retry policy.
package sheet

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

// Client wraps an authenticated Sheets service. It keeps no state besides
// the service handle and the retry policy and is safe for concurrent
// read-only use.
type Client struct {
	svc   *gsheets.Service
	retry retrier
}

type Option func(*Client)

// WithRetry overrides the default retry budget and backoff unit.
func WithRetry(maxAttempts int, unit time.Duration) Option {
	return func(c *Client) {
		c.retry = newRetrier(maxAttempts, unit)
	}
}

// NewClient creates a Sheets client over an authorised HTTP client (see
// the auth package).
func NewClient(ctx context.Context, authorised *http.Client, options ...Option) (*Client, error) {
	svc, err := gsheets.NewService(ctx, option.WithHTTPClient(authorised))
	if err != nil {
		return nil, fmt.Errorf("unable to create new Sheets client (%v)", err)
	}

	c := Client{
		svc:   svc,
		retry: newRetrier(DefaultMaxAttempts, DefaultBackoffUnit),
	}

	for _, opt := range options {
		opt(&c)
	}

	return &c, nil
}

// ReadResult carries the raw backend payload for a read. Values is
// populated for values-API reads, one entry per requested range;
// Spreadsheet is populated for grid-data reads and includes formatting and
// notes.
type ReadResult struct {
	Values      []*gsheets.ValueRange
	Spreadsheet *gsheets.Spreadsheet
}

// Read fetches the requested facets of cell data for one or more A1
// ranges, in exactly one backend round trip.
func (c *Client) Read(ctx context.Context, spreadsheetID string, ranges []string, facets Facet) (*ReadResult, error) {
	plan, err := planRead(ranges, facets)
	if err != nil {
		return nil, err
	}

	if plan.grid {
		var spreadsheet *gsheets.Spreadsheet

		if err := c.retry.do(func() error {
			var err error
			spreadsheet, err = c.svc.Spreadsheets.Get(spreadsheetID).IncludeGridData(true).Ranges(plan.ranges...).Context(ctx).Do()
			return err
		}); err != nil {
			return nil, err
		}

		return &ReadResult{Spreadsheet: spreadsheet}, nil
	}

	if len(plan.ranges) == 1 {
		var values *gsheets.ValueRange

		if err := c.retry.do(func() error {
			var err error
			values, err = c.svc.Spreadsheets.Values.Get(spreadsheetID, plan.ranges[0]).ValueRenderOption(plan.render).Context(ctx).Do()
			return err
		}); err != nil {
			return nil, err
		}

		return &ReadResult{Values: []*gsheets.ValueRange{values}}, nil
	}

	var batch *gsheets.BatchGetValuesResponse

	if err := c.retry.do(func() error {
		var err error
		batch, err = c.svc.Spreadsheets.Values.BatchGet(spreadsheetID).Ranges(plan.ranges...).ValueRenderOption(plan.render).Context(ctx).Do()
		return err
	}); err != nil {
		return nil, err
	}

	return &ReadResult{Values: batch.ValueRanges}, nil
}

// WriteResult carries the backend responses for a write: the values batch
// response and/or the structural batch response, matching the intents
// submitted.
type WriteResult struct {
	Values     *gsheets.BatchUpdateValuesResponse
	Structural *gsheets.BatchUpdateSpreadsheetResponse
}

// Write applies a list of write intents in at most two backend calls: one
// values batch and one structural (format/note) batch. The resolver is
// only consulted for structural intents and may be nil when there are
// none (or when they all target the default sheet).
func (c *Client) Write(ctx context.Context, spreadsheetID string, intents []WriteIntent, resolve SheetResolver) (*WriteResult, error) {
	plan, err := planWrites(intents, resolve)
	if err != nil {
		return nil, err
	}

	result := WriteResult{}

	if plan.values != nil {
		if err := c.retry.do(func() error {
			var err error
			result.Values, err = c.svc.Spreadsheets.Values.BatchUpdate(spreadsheetID, plan.values).Context(ctx).Do()
			return err
		}); err != nil {
			return nil, err
		}
	}

	if plan.structural != nil {
		if err := c.retry.do(func() error {
			var err error
			result.Structural, err = c.svc.Spreadsheets.BatchUpdate(spreadsheetID, plan.structural).Context(ctx).Do()
			return err
		}); err != nil {
			return nil, err
		}
	}

	return &result, nil
}

// MetaRead fetches spreadsheet metadata and structure - sheet properties,
// named ranges, conditional formats - without any cell data.
func (c *Client) MetaRead(ctx context.Context, spreadsheetID string) (*gsheets.Spreadsheet, error) {
	var spreadsheet *gsheets.Spreadsheet

	if err := c.retry.do(func() error {
		var err error
		spreadsheet, err = c.svc.Spreadsheets.Get(spreadsheetID).IncludeGridData(false).Context(ctx).Do()
		return err
	}); err != nil {
		return nil, err
	}

	return spreadsheet, nil
}

// MetaWrite applies structural batch operations (addSheet, mergeCells,
// updateDimensionProperties, ...) directly through spreadsheets.batchUpdate.
func (c *Client) MetaWrite(ctx context.Context, spreadsheetID string, requests []*gsheets.Request) (*gsheets.BatchUpdateSpreadsheetResponse, error) {
	if len(requests) == 0 {
		return nil, fmt.Errorf("%w: no batch requests", ErrInvalidRequest)
	}

	rq := gsheets.BatchUpdateSpreadsheetRequest{
		Requests: requests,
	}

	var response *gsheets.BatchUpdateSpreadsheetResponse

	if err := c.retry.do(func() error {
		var err error
		response, err = c.svc.Spreadsheets.BatchUpdate(spreadsheetID, &rq).Context(ctx).Do()
		return err
	}); err != nil {
		return nil, err
	}

	return response, nil
}

// Create creates a new spreadsheet with the given title and (optionally)
// sheet properties. With no sheets the backend creates a single default
// 'Sheet1'.
func (c *Client) Create(ctx context.Context, title string, sheets []*gsheets.Sheet) (*gsheets.Spreadsheet, error) {
	rq := gsheets.Spreadsheet{
		Properties: &gsheets.SpreadsheetProperties{
			Title: title,
		},
		Sheets: sheets,
	}

	var spreadsheet *gsheets.Spreadsheet

	if err := c.retry.do(func() error {
		var err error
		spreadsheet, err = c.svc.Spreadsheets.Create(&rq).Context(ctx).Do()
		return err
	}); err != nil {
		return nil, err
	}

	return spreadsheet, nil
}

// Clear removes the values (but not formatting or notes) from one or more
// A1 ranges in a single batched call.
func (c *Client) Clear(ctx context.Context, spreadsheetID string, ranges []string) (*gsheets.BatchClearValuesResponse, error) {
	if len(ranges) == 0 {
		return nil, fmt.Errorf("%w: no ranges", ErrInvalidRequest)
	}

	rq := gsheets.BatchClearValuesRequest{
		Ranges: ranges,
	}

	var response *gsheets.BatchClearValuesResponse

	if err := c.retry.do(func() error {
		var err error
		response, err = c.svc.Spreadsheets.Values.BatchClear(spreadsheetID, &rq).Context(ctx).Do()
		return err
	}); err != nil {
		return nil, err
	}

	return response, nil
}
