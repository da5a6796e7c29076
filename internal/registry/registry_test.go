package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/arcade-motion/internal/core"
)

type stubGame struct {
	configPath string
	configErr  error
}

func (g *stubGame) ID() string                            { return "stub" }
func (g *stubGame) Title() string                         { return "Stub" }
func (g *stubGame) Description() string                   { return "a stub" }
func (g *stubGame) Reset(core.RuntimeConfig)              {}
func (g *stubGame) Step(core.InputFrame) core.StepResult  { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                   {}
func (g *stubGame) State() core.GameState                 { return core.GameState{} }
func (g *stubGame) LoadConfig(path string) error          { g.configPath = path; return g.configErr }

var errBroken = errors.New("broken")

func init() {
	Register("stub", func() Game { return &stubGame{} })
	Register("stub-broken", func() Game { return &stubGame{configErr: errBroken} })
}

func TestListIncludesMetadata(t *testing.T) {
	var found *GameInfo
	for _, info := range List() {
		if info.ID == "stub" {
			found = &info
		}
	}
	if found == nil {
		t.Fatal("stub game not listed")
	}
	if found.Title != "Stub" || found.Description != "a stub" {
		t.Errorf("info = %+v", *found)
	}
}

func TestCreate(t *testing.T) {
	if _, err := Create("missing"); err == nil {
		t.Error("Create() of unknown game should fail")
	}
	if !Exists("stub") || Exists("missing") {
		t.Error("Exists() returned wrong result")
	}

	g, err := CreateConfigured("stub", "custom.yaml")
	if err != nil {
		t.Fatalf("CreateConfigured() error = %v", err)
	}
	if g.(*stubGame).configPath != "custom.yaml" {
		t.Errorf("config path = %q", g.(*stubGame).configPath)
	}

	if _, err := CreateConfigured("stub-broken", ""); !errors.Is(err, errBroken) {
		t.Errorf("CreateConfigured() error = %v, expected wrapped errBroken", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub", func() Game { return &stubGame{} })
}
