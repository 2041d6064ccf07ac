package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-frogger/internal/core"
	gamefrogger "github.com/vovakirdan/tui-frogger/internal/games/frogger"
	"github.com/vovakirdan/tui-frogger/internal/platform/tui"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

var flagRecord string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Frogger",
	Long: `Start a game of Frogger.

Controls:
  Arrows/WASD  - Hop
  P            - Pause
  R            - Restart
  Esc/B        - Back (while paused or after game over)
  Ctrl+S       - Screenshot
  Q/Ctrl+C     - Quit

Examples:
  frogger play
  frogger play --fps 30
  frogger play --config ./my-lanes.yaml
  frogger play --record ./run.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Save the event journal to this file on exit")
}

// runtimeConfig sizes the screen to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}

// openStore opens the score database. A failure is logged and play
// continues without scores.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, _ []string) error {
	froggerCfg, err := loadConfig()
	if err != nil {
		return err
	}

	game := gamefrogger.NewWithConfig(froggerCfg)

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	_, runErr := tui.Run(game, store, runtimeConfig())

	if flagRecord != "" {
		if err := game.Journal().Save(flagRecord); err != nil {
			logger.Error("could not save journal", "path", flagRecord, "error", err)
		} else {
			logger.Info("journal saved", "path", flagRecord, "run", game.RunID(), "events", game.Journal().Len())
		}
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
