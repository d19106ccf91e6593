package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/photo-booth/internal/layout"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List the supported print layouts",
	Run:   runLayouts,
}

func init() {
	rootCmd.AddCommand(layoutsCmd)
}

func runLayouts(cmd *cobra.Command, args []string) {
	fmt.Printf("%-12s %5s %5s %7s %6s  %s\n", "ID", "COLS", "ROWS", "PHOTOS", "PAGE", "ALIASES")
	for _, g := range layout.Catalog() {
		page := layout.ResolvePageSize(&g)
		id := g.ID
		if g.Strip {
			id += " *"
		}
		fmt.Printf("%-12s %5d %5d %7d %6s  %s\n",
			id, g.Cols, g.Rows, g.PhotoCount(), page.Label, strings.Join(g.Legacy, ", "))
	}
	fmt.Println("\n* duplicated strip: one 2x6in strip printed twice on the page")
}
