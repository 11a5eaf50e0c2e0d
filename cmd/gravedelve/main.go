// gravedelve is a terminal roguelike: descend the dungeon, haul the loot
// back to town, and spend it at the shop and the enchanter.
//
// Usage:
//
//	gravedelve play              - Start a new game
//	gravedelve play --load 1     - Resume the game in save slot 1
//	gravedelve saves             - List save slots
//	gravedelve version           - Print the version
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagConfig string
	flagDBPath string
)

func main() {
	// Local development convenience; env vars may also be set directly.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gravedelve",
	Short: "A terminal dungeon crawler",
	Long: `Gravedelve is a turn-based terminal dungeon crawler. Fight down
through the depths, carry what you can back to town, and trade it for
better steel and stronger enchantments.

Examples:
  gravedelve play
  gravedelve play --seed 42
  gravedelve play --load 1
  gravedelve saves`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gravedelve/saves.db", "Path to the save database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(savesCmd)
	rootCmd.AddCommand(versionCmd)
}
