package main

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/config"
	gamefrogger "github.com/vovakirdan/tui-frogger/internal/games/frogger"
)

func TestApplyEnv(t *testing.T) {
	newCmd := func() (*cobra.Command, *string) {
		var v string
		cmd := &cobra.Command{Use: "x"}
		cmd.Flags().StringVar(&v, "db", "default.db", "")
		return cmd, &v
	}

	t.Setenv(envDBPath, "env.db")

	cmd, v := newCmd()
	applyEnv(cmd, "db", envDBPath)
	if *v != "env.db" {
		t.Errorf("db = %q, expected env.db", *v)
	}

	cmd, v = newCmd()
	if err := cmd.Flags().Set("db", "flag.db"); err != nil {
		t.Fatal(err)
	}
	applyEnv(cmd, "db", envDBPath)
	if *v != "flag.db" {
		t.Errorf("explicit flag overridden: db = %q", *v)
	}
}

func TestGameFactory(t *testing.T) {
	cfg := config.DefaultFroggerConfig()
	cfg.Player.Hop = 30

	newGame := gameFactory(cfg)
	g, err := newGame(gamefrogger.GameID)
	if err != nil {
		t.Fatalf("newGame() failed: %v", err)
	}
	if g.ID() != gamefrogger.GameID {
		t.Errorf("ID() = %q", g.ID())
	}

	if _, err := newGame("missing"); err == nil {
		t.Error("unknown game should fail")
	}
}
