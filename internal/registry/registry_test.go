package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return strings.ToUpper(g.id) }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Game { return stubGame{"stub-b"} })
	Register("stub-a", func() Game { return stubGame{"stub-a"} })

	if !Exists("stub-a") || Exists("stub-missing") {
		t.Fatal("Exists() disagrees with Register()")
	}

	g, err := Create("stub-b")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.ID() != "stub-b" {
		t.Errorf("Create() returned %q", g.ID())
	}

	if _, err := Create("stub-missing"); err == nil {
		t.Error("Create() of unknown game should fail")
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %v", list)
		}
	}
	if Titles()["stub-a"] != "STUB-A" {
		t.Errorf("Titles() = %v", Titles())
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return stubGame{"stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register("stub-dup", func() Game { return stubGame{"stub-dup"} })
}
