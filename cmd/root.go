package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "photo-booth",
	Short: "A photo booth compositor that turns captured photos into print-ready pages",
	Long: `Photo Booth composites captured photos into a single print-ready image.
Pick a grid layout (or the classic duplicated photo strip), feed it the
photos in capture order, and it produces a page-sized JPEG or PDF ready
for a 4x6 printer.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
}
