package registry

import (
	"testing"

	"github.com/vovakirdan/bear-adventure/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterCreate(t *testing.T) {
	Register("stub-a", func() Game { return &stubGame{id: "stub-a"} })

	if !Exists("stub-a") {
		t.Fatal("stub-a should exist")
	}
	g, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("ID() = %q", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub-a" {
			found = info.Title == "Stub stub-a"
		}
	}
	if !found {
		t.Error("List() missing stub-a with its title")
	}

	if _, err := Create("missing"); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-b", func() Game { return &stubGame{id: "stub-b"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub-b", func() Game { return &stubGame{id: "stub-b"} })
}
