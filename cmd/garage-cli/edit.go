package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	editName       string
	editYear       int
	editCollection string
	editNumber     string
	editVariant    string
	editColor      string
	editImage      string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an existing car",
	Long: `Edit updates only the fields whose flags are given; everything else,
including the favorite/acquired flags and any attached image, is kept.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, mirror, err := openManager()
		if err != nil {
			return err
		}
		defer mirror.Close()

		car, ok := manager.Get(args[0])
		if !ok {
			return fmt.Errorf("no car with id %q", args[0])
		}

		if cmd.Flags().Changed("name") {
			car.Name = editName
		}
		if cmd.Flags().Changed("year") {
			car.Year = editYear
		}
		if cmd.Flags().Changed("collection") {
			car.Collection = editCollection
		}
		if cmd.Flags().Changed("number") {
			car.Number = editNumber
		}
		if cmd.Flags().Changed("variant") {
			car.Variant = editVariant
		}
		if cmd.Flags().Changed("color") {
			car.Color = editColor
		}
		if cmd.Flags().Changed("image") {
			uri, err := manager.AttachImage(editImage)
			if err != nil {
				return err
			}
			car.Image = uri
		}

		if _, err := manager.Save(car); err != nil {
			return err
		}

		fmt.Printf("✅ Updated %s [%s]\n", car.Name, car.ID)
		return nil
	},
}

func init() {
	editCmd.Flags().StringVar(&editName, "name", "", "car name")
	editCmd.Flags().IntVar(&editYear, "year", 0, "edition year")
	editCmd.Flags().StringVar(&editCollection, "collection", "", "category name")
	editCmd.Flags().StringVar(&editNumber, "number", "", "series number")
	editCmd.Flags().StringVar(&editVariant, "variant", "", "variant label")
	editCmd.Flags().StringVar(&editColor, "color", "", "color")
	editCmd.Flags().StringVar(&editImage, "image", "", "path to an image file to attach (empty clears it)")
	rootCmd.AddCommand(editCmd)
}
