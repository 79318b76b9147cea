package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard all edits and restore the seed catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, mirror, err := openManager()
		if err != nil {
			return err
		}
		defer mirror.Close()

		if !resetYes && !askConfirm("Discard every edit and restore the seed catalog?") {
			fmt.Println("Nothing changed.")
			return nil
		}

		manager.Reset()
		fmt.Printf("✅ Collection reset (%d cars)\n", manager.Len())
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "reset without asking")
	rootCmd.AddCommand(resetCmd)
}
