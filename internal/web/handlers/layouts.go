package handlers

import (
	"net/http"

	"github.com/kozaktomas/photo-booth/internal/layout"
)

// LayoutsHandler serves the layout catalog.
type LayoutsHandler struct{}

// NewLayoutsHandler creates a new layouts handler.
func NewLayoutsHandler() *LayoutsHandler {
	return &LayoutsHandler{}
}

type layoutInfo struct {
	ID     string          `json:"id"`
	Cols   int             `json:"cols"`
	Rows   int             `json:"rows"`
	Strip  bool            `json:"strip"`
	Photos int             `json:"photos"`
	Page   layout.PageSize `json:"page"`
}

// List returns every supported layout with its resolved page size.
func (h *LayoutsHandler) List(w http.ResponseWriter, r *http.Request) {
	grids := layout.Catalog()
	out := make([]layoutInfo, 0, len(grids))
	for _, g := range grids {
		out = append(out, layoutInfo{
			ID:     g.ID,
			Cols:   g.Cols,
			Rows:   g.Rows,
			Strip:  g.Strip,
			Photos: g.PhotoCount(),
			Page:   layout.ResolvePageSize(&g),
		})
	}
	respondJSON(w, http.StatusOK, out)
}
