package sheet

import "fmt"

// valueRenderOption values for the values API.
const (
	renderFormula   = "FORMULA"
	renderFormatted = "FORMATTED_VALUE"
)

// readPlan describes the single backend call a read translates to: one
// grid-data fetch, or one (possibly batched) values fetch.
type readPlan struct {
	ranges []string
	grid   bool
	render string
}

// planRead chooses the backend surface for a read. Format or Note in the
// facet set force the grid-data surface - the values API cannot carry
// either, and down-selecting would lose data. Everything else goes through
// the values API, rendered as formula text when Formula is requested.
// K ranges always cost exactly one backend round trip.
func planRead(ranges []string, facets Facet) (readPlan, error) {
	if len(ranges) == 0 {
		return readPlan{}, fmt.Errorf("%w: no ranges", ErrInvalidRequest)
	}

	if facets.Has(Format | Note) {
		return readPlan{ranges: ranges, grid: true}, nil
	}

	render := renderFormatted
	if facets.Has(Formula) {
		render = renderFormula
	}

	return readPlan{ranges: ranges, render: render}, nil
}
