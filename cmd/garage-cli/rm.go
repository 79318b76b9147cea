package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/turbogarage/garage/internal/model"
)

var rmYes bool

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a car from the collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, mirror, err := openManager()
		if err != nil {
			return err
		}
		defer mirror.Close()

		confirm := func(car model.Car) bool {
			if rmYes {
				return true
			}
			return askConfirm(fmt.Sprintf("Remove %s from your collection?", car.Name))
		}

		if !manager.Delete(args[0], confirm) {
			fmt.Println("Nothing removed.")
			return nil
		}
		fmt.Println("✅ Removed.")
		return nil
	},
}

func init() {
	rmCmd.Flags().BoolVarP(&rmYes, "yes", "y", false, "remove without asking")
	rootCmd.AddCommand(rmCmd)
}
