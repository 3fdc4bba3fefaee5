package sheet

// Facet flags select which categories of cell data a read retrieves.
// Facets combine with '|'; Format and Note force the grid-data surface
// because the values API carries neither.
type Facet uint8

const (
	Value   Facet = 1 << iota // cell values (numbers, strings, booleans)
	Formula                   // formula text (=SUM(A:A))
	Format                    // cell formatting (colours, fonts, borders)
	Note                      // cell notes
)

// Has returns true if any facet in g is set in f.
func (f Facet) Has(g Facet) bool {
	return f&g != 0
}
