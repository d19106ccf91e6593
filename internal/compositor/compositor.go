// Package compositor renders captured photos into a single print-ready
// image: an N-cell grid at a physical page size, or the special 4-photo
// duplicated strip. Each call owns its canvas; nothing is shared between
// invocations, so identical inputs always produce identical output.
package compositor

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"github.com/kozaktomas/photo-booth/internal/layout"
)

// Defaults applied when the corresponding Options field is left zero.
const (
	DefaultDPI           = 300
	DefaultMarginPercent = 2.0
	DefaultQuality       = 95
)

// Options control a single composite request.
type Options struct {
	// DPI converts physical inches to pixels.
	DPI int
	// MarginPercent sizes the outer border and the gap between cells as a
	// percentage of the smaller cell dimension.
	MarginPercent float64
	// MaxCellWidthIn caps the cell width in inches. When zero it is
	// derived from the resolved page size and the grid dimensions.
	MaxCellWidthIn float64
	// Quality is the JPEG encode quality of the output.
	Quality int
}

func (o Options) withDefaults() Options {
	if o.DPI <= 0 {
		o.DPI = DefaultDPI
	}
	if o.MarginPercent == 0 {
		o.MarginPercent = DefaultMarginPercent
	}
	if o.Quality <= 0 {
		o.Quality = DefaultQuality
	}
	return o
}

// Compose renders the photos into the grid's print layout and returns the
// encoded composite. Photos map to cells in column-major vertical fill
// order: photo i fills column i/rows at row i%rows. Strip layouts route to
// ComposeStrip, which uses simple sequential order instead.
func Compose(ctx context.Context, photos [][]byte, grid layout.Grid, opts Options) ([]byte, error) {
	opts = opts.withDefaults()
	if grid.Strip {
		return ComposeStrip(ctx, photos, opts)
	}
	if len(photos) == 0 {
		return nil, &InvalidInputError{Reason: "no photos supplied"}
	}
	if grid.Cols <= 0 || grid.Rows <= 0 {
		return nil, &InvalidInputError{
			Reason: fmt.Sprintf("grid %q has invalid dimensions %dx%d", grid.ID, grid.Cols, grid.Rows),
		}
	}
	if want := grid.Cols * grid.Rows; len(photos) != want {
		return nil, &InvalidInputError{
			Reason: fmt.Sprintf("grid %q needs %d photos, got %d", grid.ID, want, len(photos)),
		}
	}

	imgs, err := decodeAll(ctx, photos)
	if err != nil {
		return nil, err
	}

	return encodeJPEG(composeGrid(imgs, grid, opts), opts.Quality)
}

// cellSize is the uniform cell box, in inches, shared by every photo.
type cellSize struct {
	w, h float64
}

// uniformCellSize derives the shared cell box. The baseline is the nominal
// per-cell share of the page (or the caller's cell width cap); each photo
// may then widen or heighten the cell so that it fits at contain scale
// without cropping, which can enlarge the canvas beyond the nominal page
// size for extreme aspect ratios.
func uniformCellSize(imgs []image.Image, grid layout.Grid, page layout.PageSize, maxCellWidthIn float64) cellSize {
	cols, rows := float64(grid.Cols), float64(grid.Rows)
	var cell cellSize
	if maxCellWidthIn <= 0 {
		availW := page.WidthInches - layout.InterCellMarginIn*(cols-1)
		availH := page.HeightInches - layout.InterCellMarginIn*(rows-1)
		cell = cellSize{w: availW / cols, h: availH / rows}
		maxCellWidthIn = math.Min(cell.w, cell.h)
	} else {
		cell = cellSize{w: maxCellWidthIn, h: maxCellWidthIn}
	}
	for _, img := range imgs {
		b := img.Bounds()
		aspect := float64(b.Dx()) / float64(b.Dy())
		if aspect > 1 {
			cell.h = math.Max(cell.h, maxCellWidthIn/aspect)
		} else {
			cell.w = math.Max(cell.w, maxCellWidthIn*aspect)
		}
	}
	return cell
}

// composeGrid rasterizes decoded photos onto a white page canvas, one cell
// per photo, drawn in index order.
func composeGrid(imgs []image.Image, grid layout.Grid, opts Options) *image.NRGBA {
	page := layout.ResolvePageSize(&grid)
	cell := uniformCellSize(imgs, grid, page, opts.MaxCellWidthIn)

	dpi := float64(opts.DPI)
	cellW := int(math.Round(cell.w * dpi))
	cellH := int(math.Round(cell.h * dpi))
	margin := int(math.Round(float64(min(cellW, cellH)) * opts.MarginPercent / 100))

	canvasW := margin + (cellW+margin)*grid.Cols
	canvasH := margin + (cellH+margin)*grid.Rows
	canvas := imaging.New(canvasW, canvasH, color.White)

	for i, img := range imgs {
		col := i / grid.Rows
		row := i % grid.Rows
		drawInto(canvas, img, layout.Box{
			X: float64(margin + col*(cellW+margin)),
			Y: float64(margin + row*(cellH+margin)),
			W: float64(cellW),
			H: float64(cellH),
		})
	}
	return canvas
}

// drawInto scales one photo into its contain-fit placement on the canvas.
func drawInto(canvas *image.NRGBA, img image.Image, box layout.Box) {
	b := img.Bounds()
	aspect := float64(b.Dx()) / float64(b.Dy())
	p := layout.FitContain(aspect, box)
	dst := image.Rect(
		int(math.Round(p.X)),
		int(math.Round(p.Y)),
		int(math.Round(p.X+p.W)),
		int(math.Round(p.Y+p.H)),
	)
	draw.CatmullRom.Scale(canvas, dst, img, b, draw.Over, nil)
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("encoding composite: %w", err)
	}
	return buf.Bytes(), nil
}
