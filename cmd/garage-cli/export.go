package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/turbogarage/garage/internal/export"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the collection as a checklist",
	Example: `  garage-cli export --format markdown --output checklist.md
  garage-cli export --format csv > collection.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, mirror, err := openManager()
		if err != nil {
			return err
		}
		defer mirror.Close()

		format := exportFormat
		if !cmd.Flags().Changed("format") {
			format = settings.ExportFormat
		}

		writer := export.NewWriter(export.ParseFormat(format))
		content := writer.Render(manager.Snapshot(), manager.Stats())

		if exportOutput == "" {
			fmt.Print(content)
			return nil
		}
		if err := os.WriteFile(exportOutput, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		fmt.Printf("✅ Exported to %s\n", exportOutput)
		return nil
	},
}

var exportImagesConcurrency int

var exportImagesCmd = &cobra.Command{
	Use:   "export-images <dir>",
	Short: "Write every attached car image to a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, mirror, err := openManager()
		if err != nil {
			return err
		}
		defer mirror.Close()

		n, err := export.DumpImages(cmd.Context(), manager.Snapshot(), args[0], exportImagesConcurrency)
		if err != nil {
			return err
		}
		fmt.Printf("✅ Wrote %d image(s) to %s\n", n, args[0])
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "text", "export format: text, markdown or csv")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to a file instead of stdout")
	exportImagesCmd.Flags().IntVar(&exportImagesConcurrency, "concurrency", 4, "how many images to write at once")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(exportImagesCmd)
}
