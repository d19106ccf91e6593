package compositor

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf/v2"

	"github.com/kozaktomas/photo-booth/internal/layout"
)

// WritePDF wraps an encoded composite into a single-page PDF at the exact
// physical page size so it can be sent straight to a printer.
func WritePDF(w io.Writer, composite []byte, page layout.PageSize) error {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "in",
		Size:    gofpdf.SizeType{Wd: page.WidthInches, Ht: page.HeightInches},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "JPG"}
	pdf.RegisterImageOptionsReader("composite", opts, bytes.NewReader(composite))
	pdf.ImageOptions("composite", 0, 0, page.WidthInches, page.HeightInches, false, opts, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}
