package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/kozaktomas/photo-booth/internal/compositor"
	"github.com/kozaktomas/photo-booth/internal/config"
	"github.com/kozaktomas/photo-booth/internal/layout"
)

var composeCmd = &cobra.Command{
	Use:   "compose PHOTOS...",
	Short: "Composite photos into a print-ready grid",
	Long: `Composite the given photos into a single print-ready image.

Photos fill the grid column by column, top to bottom, in the order they
are given on the command line. The layout comes from --grid (see the
layouts command) or from explicit --cols/--rows.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCompose,
}

func init() {
	rootCmd.AddCommand(composeCmd)

	composeCmd.Flags().String("grid", "", "Layout id from the catalog (see 'photo-booth layouts')")
	composeCmd.Flags().Int("cols", 0, "Grid columns (used when --grid is not set)")
	composeCmd.Flags().Int("rows", 0, "Grid rows (used when --grid is not set)")
	composeCmd.Flags().Int("dpi", 0, "Output resolution in dots per inch")
	composeCmd.Flags().Float64("margin", 0, "Inter-cell margin as a percentage of the cell size")
	composeCmd.Flags().Float64("max-cell-width", 0, "Cap on the cell width in inches")
	composeCmd.Flags().String("out", "composite.jpg", "Output file")
	composeCmd.Flags().Bool("pdf", false, "Write a print PDF instead of a JPEG")
}

// loadPhotoFiles reads the photo payloads in argument order.
func loadPhotoFiles(paths []string) ([][]byte, error) {
	bar := progressbar.Default(int64(len(paths)), "loading photos")
	payloads := make([][]byte, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		payloads = append(payloads, data)
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	return payloads, nil
}

// resolveGrid picks the layout from flags.
func resolveGrid(cmd *cobra.Command) (layout.Grid, error) {
	if id := mustGetString(cmd, "grid"); id != "" {
		g, ok := layout.Lookup(id)
		if !ok {
			return layout.Grid{}, fmt.Errorf("unknown layout %q, run 'photo-booth layouts' to list them", id)
		}
		return g, nil
	}
	cols := mustGetInt(cmd, "cols")
	rows := mustGetInt(cmd, "rows")
	if cols <= 0 || rows <= 0 {
		return layout.Grid{}, fmt.Errorf("either --grid or positive --cols and --rows are required")
	}
	return layout.Grid{Cols: cols, Rows: rows}, nil
}

// composeOptions merges flag overrides into the configured defaults.
func composeOptions(cmd *cobra.Command, cfg *config.Config) compositor.Options {
	opts := compositor.Options{
		DPI:           cfg.Compositor.DPI,
		MarginPercent: cfg.Compositor.MarginPercent,
		Quality:       cfg.Compositor.JPEGQuality,
	}
	if dpi := mustGetInt(cmd, "dpi"); dpi > 0 {
		opts.DPI = dpi
	}
	if m := mustGetFloat64(cmd, "margin"); m > 0 {
		opts.MarginPercent = m
	}
	if mcw := mustGetFloat64(cmd, "max-cell-width"); mcw > 0 {
		opts.MaxCellWidthIn = mcw
	}
	return opts
}

// writeComposite saves the composite as a JPEG file, or wraps it into a
// print PDF when asPDF is set.
func writeComposite(path string, composite []byte, page layout.PageSize, asPDF bool) error {
	if asPDF {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		defer f.Close()
		if err := compositor.WritePDF(f, composite, page); err != nil {
			return err
		}
		fmt.Printf("Print PDF written to %s\n", path)
		return nil
	}
	if err := os.WriteFile(path, composite, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Printf("Composite written to %s\n", path)
	return nil
}

func runCompose(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	grid, err := resolveGrid(cmd)
	if err != nil {
		return err
	}

	payloads, err := loadPhotoFiles(args)
	if err != nil {
		return err
	}

	opts := composeOptions(cmd, cfg)
	composite, err := compositor.Compose(context.Background(), payloads, grid, opts)
	if err != nil {
		return fmt.Errorf("composing %d photos: %w", len(payloads), err)
	}

	return writeComposite(mustGetString(cmd, "out"), composite,
		layout.ResolvePageSize(&grid), mustGetBool(cmd, "pdf"))
}
