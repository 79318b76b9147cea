package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var categoriesYear int

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories with their car counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, mirror, err := openManager()
		if err != nil {
			return err
		}
		defer mirror.Close()

		year := categoriesYear
		if !cmd.Flags().Changed("year") {
			year = settings.DefaultYear
		}

		for _, cat := range manager.Categories() {
			fmt.Printf("📦 %s (%d)\n", cat, manager.CategoryCount(cat, year))
		}
		return nil
	},
}

func init() {
	categoriesCmd.Flags().IntVar(&categoriesYear, "year", 0, "count cars of this year (0 for all years)")
	rootCmd.AddCommand(categoriesCmd)
}
