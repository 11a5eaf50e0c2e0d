package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/samdwyer/gravedelve/internal/config"
	"github.com/samdwyer/gravedelve/internal/engine"
	"github.com/samdwyer/gravedelve/internal/input"
	"github.com/samdwyer/gravedelve/internal/save"
	"github.com/samdwyer/gravedelve/internal/telemetry"
	"github.com/samdwyer/gravedelve/internal/ui"
)

var (
	flagLoadSlot int
	flagSaveSlot int
	flagClass    string
	flagName     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start or resume a game",
	Long: `Start a new game, or resume one from a save slot with --load.
Ctrl+S saves to the current slot during play.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay()
	},
}

func init() {
	playCmd.Flags().IntVar(&flagLoadSlot, "load", 0, "Resume the game in this save slot")
	playCmd.Flags().IntVar(&flagSaveSlot, "slot", 1, "Save slot used by Ctrl+S")
	playCmd.Flags().StringVar(&flagClass, "class", "fighter", "Character class for a new game")
	playCmd.Flags().StringVar(&flagName, "name", "", "Character name for a new game")
}

func runPlay() error {
	setupOTelEnv()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
		// Continue without telemetry - game still works
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	if flagName != "" {
		cfg.Player.Name = flagName
	}

	eng := engine.New(ctx, cfg)

	store, err := save.Open(savePath(cfg))
	if err != nil {
		// Saving is optional; play continues without it.
		log.Printf("Warning: save database unavailable: %v", err)
		store = nil
	} else {
		defer store.Close()
	}

	if flagLoadSlot > 0 {
		if store == nil {
			return fmt.Errorf("cannot load slot %d: save database unavailable", flagLoadSlot)
		}
		if err := store.Load(flagLoadSlot, eng); err != nil {
			return fmt.Errorf("loading slot %d: %w", flagLoadSlot, err)
		}
		flagSaveSlot = flagLoadSlot
	} else {
		if eng.Classes.GetByID(flagClass) == nil {
			return fmt.Errorf("unknown class %q", flagClass)
		}
		eng.NewGame(cfg.Player.Name, flagClass)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer screen.Close()

	runner := &input.Runner{
		Engine:   eng,
		Renderer: ui.NewRenderer(screen),
	}
	if store != nil {
		runner.SaveFunc = func(e *engine.Engine) error {
			return store.Save(flagSaveSlot, e)
		}
	}
	runner.Run()

	return nil
}

// savePath resolves the save database location: the --db flag wins, then
// the config file, then the built-in default.
func savePath(cfg config.Config) string {
	if flagDBPath != "" && flagDBPath != rootCmd.PersistentFlags().Lookup("db").DefValue {
		return flagDBPath
	}
	if cfg.Saves.Path != "" {
		return cfg.Saves.Path
	}
	return flagDBPath
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Always set headers from our API key - the .env file may have an unexpanded
	// variable reference that doesn't work, so we construct it properly here
	apiKey := os.Getenv("HONEYCOMB_GRAVEDELVE_API_KEY")
	dataset := os.Getenv("HONEYCOMB_GRAVEDELVE_DATASET")
	if dataset == "" {
		dataset = "gravedelve" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
