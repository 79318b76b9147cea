package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/turbogarage/garage/internal/collection"
	"github.com/turbogarage/garage/internal/config"
	"github.com/turbogarage/garage/internal/persist"
)

var (
	configPath string
	dbPath     string
	verbose    bool

	settings *config.Settings
)

var rootCmd = &cobra.Command{
	Use:   "garage-cli",
	Short: "Manage your Hot Wheels collection from the terminal",
	Long: `Turbo Garage tracks a Hot Wheels collection: browse the seed catalog,
mark cars as acquired or favorite, add custom cars with photos, and keep
everything saved locally.

For interactive browsing, use: garage-tui`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}

		var err error
		settings, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		if dbPath != "" {
			settings.DatabasePath = dbPath
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to settings file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to collection database (overrides settings)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show verbose output")
}

// openManager opens the persistence mirror and initializes the manager.
// The caller must Close the returned mirror.
func openManager() (*collection.Manager, *persist.Bolt, error) {
	mirror, err := persist.Open(settings.DatabasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open collection database: %w", err)
	}

	manager := collection.NewManager(settings, mirror, printEvent)
	if err := manager.Initialize(); err != nil {
		mirror.Close()
		return nil, nil, err
	}
	return manager, mirror, nil
}

// printEvent renders change events on the terminal.
func printEvent(event collection.ChangeEvent) {
	if event.Level == collection.LevelVerbose && !verbose {
		return
	}
	if event.Level == collection.LevelInfo && !verbose {
		return
	}

	prefix := "   "
	switch event.Level {
	case collection.LevelError:
		prefix = "❌ "
	case collection.LevelWarning:
		prefix = "⚠️  "
	case collection.LevelSuccess:
		prefix = "✅ "
	case collection.LevelInfo:
		prefix = "ℹ️  "
	}
	fmt.Println(prefix + event.Message)
}

// askConfirm prompts the user with a yes/no question on stdin.
func askConfirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
