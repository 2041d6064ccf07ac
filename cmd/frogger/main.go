// frogger is a terminal Frogger: hop across the road, ride the logs, reach
// the goals at the top of the field.
//
// Usage:
//
//	frogger play               - Play a game
//	frogger menu               - Start menu with scoreboard
//	frogger serve              - Start SSH server for remote play
//	frogger scores [game]      - Show high scores
//	frogger replay <file>      - Replay a recorded journal
//	frogger list               - List available games
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--db <path>       - Set database path (default: ~/.arcade/frogger.db)
//	--config <path>   - Custom lane and timing config (YAML)
//
// FROGGER_DB and FROGGER_SSH_ADDR, from the environment or a .env file,
// replace the defaults of --db and --ssh.
package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/config"
	gamefrogger "github.com/vovakirdan/tui-frogger/internal/games/frogger"
	"github.com/vovakirdan/tui-frogger/internal/registry"
)

const (
	envDBPath  = "FROGGER_DB"
	envSSHAddr = "FROGGER_SSH_ADDR"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string
	flagConfig string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "frogger",
})

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("could not read .env", "error", err)
	}

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "frogger",
	Short: "Frogger - hop across the road and river in your terminal",
	Long: `Frogger is a terminal arcade game. Hop over the road without touching
a car, cross the river on the drifting logs, and land in the goal cells.

Available commands:
  play     - Play a game directly
  menu     - Interactive menu with scoreboard
  serve    - Start SSH server for remote play
  scores   - View high scores
  replay   - Replay a recorded run
  list     - Show all available games

Examples:
  frogger play
  frogger play --record run.yaml
  frogger replay run.yaml
  frogger serve --ssh :2222
  frogger scores`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		applyEnv(cmd, "db", envDBPath)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/frogger.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom frogger config YAML")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
}

// applyEnv sets an unchanged flag from the named environment variable.
func applyEnv(cmd *cobra.Command, flag, env string) {
	v, ok := os.LookupEnv(env)
	if !ok || v == "" {
		return
	}
	f := cmd.Flags().Lookup(flag)
	if f == nil || f.Changed {
		return
	}
	if err := f.Value.Set(v); err != nil {
		logger.Warn("ignoring environment value", "env", env, "error", err)
	}
}

// loadConfig reads the frogger config from --config or the default search path.
func loadConfig() (config.FroggerConfig, error) {
	cfg, err := config.LoadFrogger(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagConfig != "" {
		logger.Info("loaded config", "path", flagConfig, "lanes", len(cfg.Lanes))
	}
	return cfg, nil
}

// gameFactory builds games for the menu and SSH sessions. Frogger gets the
// loaded config; other registered games use their own factory.
func gameFactory(cfg config.FroggerConfig) func(id string) (registry.Game, error) {
	return func(id string) (registry.Game, error) {
		if id == gamefrogger.GameID {
			return gamefrogger.NewWithConfig(cfg), nil
		}
		return registry.Create(id)
	}
}
