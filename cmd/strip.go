package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/photo-booth/internal/compositor"
	"github.com/kozaktomas/photo-booth/internal/config"
	"github.com/kozaktomas/photo-booth/internal/layout"
)

var stripCmd = &cobra.Command{
	Use:   "strip PHOTO1 PHOTO2 PHOTO3 PHOTO4",
	Short: "Composite four photos into a duplicated 2x6in strip on a 4x6in page",
	Long: `Composite exactly four photos into the classic photo-booth strip:
the photos stack top to bottom into a 2x6in strip, which is printed
twice side by side on a 4x6in page and cut down the middle.`,
	Args: cobra.ExactArgs(layout.StripPhotoCount),
	RunE: runStrip,
}

func init() {
	rootCmd.AddCommand(stripCmd)

	stripCmd.Flags().Int("dpi", 0, "Output resolution in dots per inch")
	stripCmd.Flags().String("out", "strip.jpg", "Output file")
	stripCmd.Flags().Bool("pdf", false, "Write a print PDF instead of a JPEG")
}

func runStrip(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	payloads, err := loadPhotoFiles(args)
	if err != nil {
		return err
	}

	opts := compositor.Options{
		DPI:     cfg.Compositor.DPI,
		Quality: cfg.Compositor.JPEGQuality,
	}
	if dpi := mustGetInt(cmd, "dpi"); dpi > 0 {
		opts.DPI = dpi
	}

	composite, err := compositor.ComposeStrip(context.Background(), payloads, opts)
	if err != nil {
		return fmt.Errorf("composing strip: %w", err)
	}

	return writeComposite(mustGetString(cmd, "out"), composite,
		layout.DefaultPageSize(), mustGetBool(cmd, "pdf"))
}
