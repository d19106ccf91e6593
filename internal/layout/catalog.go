// Package layout holds the print layout catalog and the pure geometry used
// by the compositor: page-size resolution and contain-fit placement.
package layout

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed layouts.yaml
var layoutsYAML []byte

// StripPhotoCount is the fixed number of photos in a duplicated-strip layout.
const StripPhotoCount = 4

// Grid identifies a print layout: a number of photo cells arranged in
// columns and rows on one page. Strip marks the special duplicated-strip
// layout, which always takes StripPhotoCount photos regardless of Cols/Rows.
type Grid struct {
	ID     string   `yaml:"id" json:"id"`
	Cols   int      `yaml:"cols" json:"cols"`
	Rows   int      `yaml:"rows" json:"rows"`
	Strip  bool     `yaml:"strip" json:"strip"`
	Page   string   `yaml:"page" json:"-"`
	Legacy []string `yaml:"legacy" json:"-"`
}

// PhotoCount returns the number of photos the layout requires.
func (g Grid) PhotoCount() int {
	if g.Strip {
		return StripPhotoCount
	}
	return g.Cols * g.Rows
}

type catalogFile struct {
	Layouts []Grid `yaml:"layouts"`
}

var catalog []Grid

func init() {
	var f catalogFile
	if err := yaml.Unmarshal(layoutsYAML, &f); err != nil {
		// Embedded file, so this can only fail on a broken build.
		panic("failed to unmarshal embedded layouts.yaml: " + err.Error())
	}
	catalog = f.Layouts
}

// Catalog returns all supported layouts in catalog order.
func Catalog() []Grid {
	out := make([]Grid, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup resolves a canonical or legacy layout id.
func Lookup(id string) (Grid, bool) {
	for _, g := range catalog {
		if g.ID == id {
			return g, true
		}
		for _, alias := range g.Legacy {
			if alias == id {
				return g, true
			}
		}
	}
	return Grid{}, false
}
