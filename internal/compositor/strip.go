package compositor

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"

	"github.com/kozaktomas/photo-booth/internal/layout"
)

// Fixed strip-grid geometry: one 2x6in vertical strip of four photos,
// duplicated side by side onto a 4x6in page.
const (
	StripWidthIn     = 2.0
	StripHeightIn    = 6.0
	stripPageWidthIn = 4.0
)

// ComposeStrip renders exactly four photos into the duplicated-strip
// layout. Photos stack top to bottom in input order into a 2x6in strip,
// which is then placed twice side by side on the 4x6in page.
func ComposeStrip(ctx context.Context, photos [][]byte, opts Options) ([]byte, error) {
	opts = opts.withDefaults()
	if len(photos) != layout.StripPhotoCount {
		return nil, &InvalidInputError{
			Reason: fmt.Sprintf("strip layout needs %d photos, got %d", layout.StripPhotoCount, len(photos)),
		}
	}
	imgs, err := decodeAll(ctx, photos)
	if err != nil {
		return nil, err
	}
	return encodeJPEG(composeStripPage(imgs, opts.DPI), opts.Quality)
}

// composeStripPage builds the strip once and pastes it twice onto the page.
func composeStripPage(imgs []image.Image, dpi int) *image.NRGBA {
	strip := composeStripColumn(imgs, dpi)
	pageW := int(math.Round(stripPageWidthIn * float64(dpi)))
	pageH := int(math.Round(StripHeightIn * float64(dpi)))

	page := imaging.New(pageW, pageH, color.White)
	page = imaging.Paste(page, strip, image.Pt(0, 0))
	page = imaging.Paste(page, strip, image.Pt(strip.Bounds().Dx(), 0))
	return page
}

// composeStripColumn stacks the photos into four equal-height cells.
func composeStripColumn(imgs []image.Image, dpi int) *image.NRGBA {
	w := int(math.Round(StripWidthIn * float64(dpi)))
	h := int(math.Round(StripHeightIn * float64(dpi)))
	cellH := float64(h) / float64(layout.StripPhotoCount)

	strip := imaging.New(w, h, color.White)
	for i, img := range imgs {
		drawInto(strip, img, layout.Box{
			X: 0,
			Y: float64(i) * cellH,
			W: float64(w),
			H: cellH,
		})
	}
	return strip
}

// ExtractLeftStrip crops the left 2x6in half out of a strip composite for
// preview display. The crop is verbatim: no scaling, just a re-encode.
func ExtractLeftStrip(composite []byte, dpi, quality int) ([]byte, error) {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	if quality <= 0 {
		quality = DefaultQuality
	}
	img, _, err := image.Decode(bytes.NewReader(composite))
	if err != nil {
		return nil, &DecodeError{Index: -1, Err: err}
	}
	w := int(math.Round(StripWidthIn * float64(dpi)))
	h := int(math.Round(StripHeightIn * float64(dpi)))
	return encodeJPEG(imaging.Crop(img, image.Rect(0, 0, w, h)), quality)
}
