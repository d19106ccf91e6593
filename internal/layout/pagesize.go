package layout

import "math"

// PageSize is a physical print page in inches plus its canonical label.
type PageSize struct {
	WidthInches  float64 `json:"widthInches"`
	HeightInches float64 `json:"heightInches"`
	Label        string  `json:"pageSize"`
}

// Per-cell assumptions used when deriving a page size for an uncataloged
// grid: each cell is assumed to print at 2x3in, separated by a 0.1in gap.
const (
	assumedCellWidthIn  = 2.0
	assumedCellHeightIn = 3.0

	// InterCellMarginIn is the fixed inter-cell gap in inches used for
	// page-size derivation and for the nominal cell-width computation.
	InterCellMarginIn = 0.1
)

// standardSizes is the fixed list of printable page sizes. Order matters:
// when two sizes are equally close, the first listed wins.
var standardSizes = []PageSize{
	{2, 4, "2x4"},
	{4, 6, "4x6"},
	{5, 7, "5x7"},
	{8, 10, "8x10"},
}

// pages maps catalog page labels to physical sizes.
var pages = map[string]PageSize{
	"2x4":  {2, 4, "2x4"},
	"4x6":  {4, 6, "4x6"},
	"5x7":  {5, 7, "5x7"},
	"8x10": {8, 10, "8x10"},
}

// DefaultPageSize is the page used when no grid is supplied.
func DefaultPageSize() PageSize {
	return PageSize{4, 6, "4x6"}
}

// ResolvePageSize maps a grid to its physical print page.
//
// A nil grid resolves to the default 4x6 page. A grid whose id (or legacy
// alias) is cataloged resolves to the cataloged page. Anything else gets a
// candidate size derived from the per-cell assumptions and is snapped to
// the nearest standard size. Always returns a usable page.
func ResolvePageSize(grid *Grid) PageSize {
	if grid == nil {
		return DefaultPageSize()
	}
	if g, ok := Lookup(grid.ID); ok {
		if p, ok := pages[g.Page]; ok {
			return p
		}
		return DefaultPageSize()
	}
	w := assumedCellWidthIn*float64(grid.Cols) + InterCellMarginIn*float64(grid.Cols-1)
	h := assumedCellHeightIn*float64(grid.Rows) + InterCellMarginIn*float64(grid.Rows-1)
	return nearestStandardSize(w, h)
}

// nearestStandardSize snaps a candidate size to the closest standard page
// by Manhattan distance on (width, height). Ties resolve to the size
// listed first in standardSizes.
func nearestStandardSize(w, h float64) PageSize {
	best := standardSizes[0]
	bestDist := math.Abs(w-best.WidthInches) + math.Abs(h-best.HeightInches)
	for _, s := range standardSizes[1:] {
		d := math.Abs(w-s.WidthInches) + math.Abs(h-s.HeightInches)
		if d < bestDist {
			best, bestDist = s, d
		}
	}
	return best
}
