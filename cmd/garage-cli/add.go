package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/turbogarage/garage/internal/model"
)

var (
	addName       string
	addYear       int
	addCollection string
	addNumber     string
	addVariant    string
	addColor      string
	addImage      string
	addAcquired   bool
	addFavorite   bool
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a custom car to the collection",
	Example: `  garage-cli add --name "Custom Deora" --collection "HW Originals"
  garage-cli add --name "'67 Camaro" --collection "Muscle Mania" --image ./camaro.jpg --acquired`,
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, mirror, err := openManager()
		if err != nil {
			return err
		}
		defer mirror.Close()

		year := addYear
		if !cmd.Flags().Changed("year") {
			year = settings.DefaultYear
		}

		image, err := manager.AttachImage(addImage)
		if err != nil {
			return err
		}

		car, err := manager.Save(model.Car{
			Name:       addName,
			Year:       year,
			Collection: addCollection,
			Number:     addNumber,
			Variant:    addVariant,
			Color:      addColor,
			Favorite:   addFavorite,
			Acquired:   addAcquired,
			Image:      image,
		})
		if err != nil {
			return err
		}

		fmt.Printf("✅ Added %s [%s]\n", car.Name, car.ID)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "car name (required)")
	addCmd.Flags().IntVar(&addYear, "year", 0, "edition year (defaults to the configured year)")
	addCmd.Flags().StringVar(&addCollection, "collection", "", "category name (required)")
	addCmd.Flags().StringVar(&addNumber, "number", "", "series number, e.g. 131/250")
	addCmd.Flags().StringVar(&addVariant, "variant", "", "variant label")
	addCmd.Flags().StringVar(&addColor, "color", "", "color")
	addCmd.Flags().StringVar(&addImage, "image", "", "path to an image file to attach")
	addCmd.Flags().BoolVar(&addAcquired, "acquired", false, "mark as acquired")
	addCmd.Flags().BoolVar(&addFavorite, "favorite", false, "mark as favorite")
	rootCmd.AddCommand(addCmd)
}
