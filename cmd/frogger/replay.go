package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/frogger"
	"github.com/vovakirdan/tui-frogger/internal/journal"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Replay a recorded run",
	Long: `Fold the events of a journal written by 'frogger play --record'
through the simulation and print the final state.

Examples:
  frogger replay ./run.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(_ *cobra.Command, args []string) error {
	j, err := journal.Load(args[0])
	if err != nil {
		return err
	}

	state, err := journal.Replay(j)
	if err != nil {
		return err
	}
	snap := state.Snapshot()

	logger.Info("replayed run", "run", j.RunID, "started", j.StartedAt, "events", j.Len())

	fmt.Printf("Run %s\n", j.RunID)
	fmt.Println()
	fmt.Printf("  %-14s %d ms\n", "Elapsed", snap.Elapsed)
	fmt.Printf("  %-14s %d\n", "Score", snap.Score)
	fmt.Printf("  %-14s %d\n", "High score", snap.HighScore)
	fmt.Printf("  %-14s %d\n", "Goals reached", snap.GoalsReached)
	fmt.Printf("  %-14s (%.1f, %.1f)\n", "Player", snap.PlayerX, snap.PlayerY)
	fmt.Printf("  %-14s %d logs, %d cars, %d goals\n", "Entities", snap.Platforms, snap.Hazards, snap.Goals)
	fmt.Printf("  %-14s %v\n", "Riding", snap.RidingPlatform)
	fmt.Printf("  %-14s %v\n", "Game over", snap.IsGameOver)

	printStoredScore(j.RunID, snap)
	return nil
}

// printStoredScore shows the row the TUI saved for the same run, when the
// database has one.
func printStoredScore(runID string, snap frogger.Snapshot) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Debug("no scores database", "error", err)
		return
	}
	defer store.Close()

	entry, err := store.ScoreByRun(runID)
	if err != nil {
		logger.Warn("could not look up run", "run", runID, "error", err)
		return
	}
	if entry == nil {
		return
	}

	fmt.Println()
	fmt.Printf("  %-14s %d (%d goals, %s)\n", "Stored score", entry.Score, entry.Goals, entry.CreatedAt.Format("2006-01-02 15:04"))
	// A run that continued after a restart ends mid-game; only a finished
	// replay must agree with the last stored row.
	if snap.IsGameOver && entry.Score != snap.Score {
		logger.Warn("replayed score differs from stored score", "replayed", snap.Score, "stored", entry.Score)
	}
}
