package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/photo-booth/internal/compositor"
	"github.com/kozaktomas/photo-booth/internal/config"
)

var extractCmd = &cobra.Command{
	Use:   "extract COMPOSITE",
	Short: "Crop the left 2x6in strip out of a strip composite",
	Long: `Crop the left half out of a 4x6in strip composite. The result is the
single 2x6in strip, useful for on-screen preview of what one cut strip
will look like.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().Int("dpi", 0, "Resolution the composite was rendered at")
	extractCmd.Flags().String("out", "strip-preview.jpg", "Output file")
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	dpi := cfg.Compositor.DPI
	if d := mustGetInt(cmd, "dpi"); d > 0 {
		dpi = d
	}

	strip, err := compositor.ExtractLeftStrip(data, dpi, cfg.Compositor.JPEGQuality)
	if err != nil {
		return fmt.Errorf("extracting strip: %w", err)
	}

	out := mustGetString(cmd, "out")
	if err := os.WriteFile(out, strip, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	fmt.Printf("Strip written to %s\n", out)
	return nil
}
