package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/turbogarage/garage/internal/collection"
	"github.com/turbogarage/garage/internal/model"
)

var (
	listYear     int
	listCategory string
	listFilter   string
	listSearch   string
	listIDs      bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List cars, optionally filtered",
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, mirror, err := openManager()
		if err != nil {
			return err
		}
		defer mirror.Close()

		cars := manager.Filter(collection.Query{
			Year:     listYear,
			Category: listCategory,
			Filter:   model.ParseAcquisitionFilter(listFilter),
			Search:   listSearch,
		})

		if len(cars) == 0 {
			fmt.Println("No cars match.")
			return nil
		}

		for _, car := range cars {
			printCar(car, listIDs)
		}
		fmt.Printf("\n%d car(s)\n", len(cars))
		return nil
	},
}

func printCar(car model.Car, withID bool) {
	mark := "🛒"
	if car.Acquired {
		mark = "✅"
	}

	line := fmt.Sprintf("%s %s", mark, car.Name)
	if car.Number != "" {
		line += " #" + car.Number
	}
	if car.Variant != "" {
		line += " · " + car.Variant
	}
	if car.Color != "" {
		line += " · " + car.Color
	}
	if car.Favorite {
		line += " ♥"
	}
	if car.Image != "" {
		line += " 📷"
	}
	line += fmt.Sprintf("  (%s, %d)", car.Collection, car.Year)
	if withID {
		line += "  [" + car.ID + "]"
	}
	fmt.Println(line)
}

func init() {
	listCmd.Flags().IntVar(&listYear, "year", 0, "only cars of this edition year")
	listCmd.Flags().StringVar(&listCategory, "category", "", "only cars of this category")
	listCmd.Flags().StringVar(&listFilter, "filter", "all", "acquisition filter: all, acquired or missing")
	listCmd.Flags().StringVar(&listSearch, "search", "", "search name, collection and variant")
	listCmd.Flags().BoolVar(&listIDs, "ids", false, "show car IDs (needed for edit/rm/own/fav)")
	rootCmd.AddCommand(listCmd)
}
