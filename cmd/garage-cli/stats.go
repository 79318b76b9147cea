package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsYear int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show collection summary counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, mirror, err := openManager()
		if err != nil {
			return err
		}
		defer mirror.Close()

		year := statsYear
		if !cmd.Flags().Changed("year") {
			year = settings.DefaultYear
		}

		stats := manager.Stats()
		fmt.Println("🏎  Turbo Garage")
		fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
		fmt.Printf("🏁 Total:      %d\n", stats.Total)
		fmt.Printf("✅ Acquired:   %d\n", stats.Acquired)
		fmt.Printf("🛒 Missing:    %d\n", stats.Missing())
		fmt.Printf("♥  Favorites:  %d\n", stats.Favorites)
		fmt.Printf("📦 Categories: %d\n", stats.Categories)
		fmt.Println()

		for _, cat := range manager.Categories() {
			fmt.Printf("   %s: %d\n", cat, manager.CategoryCount(cat, year))
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntVar(&statsYear, "year", 0, "per-category counts for this year (0 for all years)")
	rootCmd.AddCommand(statsCmd)
}
