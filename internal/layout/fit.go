package layout

// Box is the pixel rectangle on the destination canvas available to one
// photo. Coordinates stay float64 until draw time; the compositor rounds.
type Box struct {
	X, Y float64
	W, H float64
}

// Placement is the rectangle a photo is drawn into: fully inside its Box,
// aspect ratio preserved, never cropped.
type Placement struct {
	X, Y float64
	W, H float64
}

// FitContain computes a contain-fit placement for an image of the given
// aspect ratio inside a cell. Images relatively wider than the cell are
// drawn at full cell width, flush to the left edge and vertically
// centered; images relatively taller (or matching the cell) are drawn at
// full cell height, flush to the top edge and horizontally centered.
func FitContain(aspect float64, cell Box) Placement {
	cellAspect := cell.W / cell.H
	if aspect > cellAspect {
		h := cell.W / aspect
		return Placement{
			X: cell.X,
			Y: cell.Y + (cell.H-h)/2,
			W: cell.W,
			H: h,
		}
	}
	w := cell.H * aspect
	return Placement{
		X: cell.X + (cell.W-w)/2,
		Y: cell.Y,
		W: w,
		H: cell.H,
	}
}
