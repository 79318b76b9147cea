package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var ownCmd = &cobra.Command{
	Use:   "own <id>",
	Short: "Toggle a car's acquired flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, mirror, err := openManager()
		if err != nil {
			return err
		}
		defer mirror.Close()

		if !manager.ToggleAcquired(args[0]) {
			return fmt.Errorf("no car with id %q", args[0])
		}

		car, _ := manager.Get(args[0])
		if car.Acquired {
			fmt.Printf("✅ %s marked acquired\n", car.Name)
		} else {
			fmt.Printf("🛒 %s marked not acquired\n", car.Name)
		}
		return nil
	},
}

var favCmd = &cobra.Command{
	Use:   "fav <id>",
	Short: "Toggle a car's favorite flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, mirror, err := openManager()
		if err != nil {
			return err
		}
		defer mirror.Close()

		if !manager.ToggleFavorite(args[0]) {
			return fmt.Errorf("no car with id %q", args[0])
		}

		car, _ := manager.Get(args[0])
		if car.Favorite {
			fmt.Printf("♥ %s marked favorite\n", car.Name)
		} else {
			fmt.Printf("  %s unmarked favorite\n", car.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ownCmd)
	rootCmd.AddCommand(favCmd)
}
