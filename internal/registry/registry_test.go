package registry

import (
	"testing"

	"github.com/vovakirdan/star-catcher/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Sprites() []core.Sprite               { return nil }
func (g stubGame) Lives() (int, bool)                   { return 0, false }
func (g stubGame) Playfield() (width, height float64)   { return 1, 1 }

func register(t *testing.T, id string) {
	t.Helper()
	Register(id, func() Game { return stubGame{id: id} })
	t.Cleanup(func() {
		mu.Lock()
		delete(factories, id)
		delete(titles, id)
		mu.Unlock()
	})
}

func TestRegisterAndCreate(t *testing.T) {
	register(t, "zz-stub")

	if !Exists("zz-stub") {
		t.Fatal("Exists() = false after Register")
	}
	g, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.ID() != "zz-stub" {
		t.Errorf("ID() = %q, expected %q", g.ID(), "zz-stub")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("Create() should fail for an unknown id")
	}
	if Exists("no-such-game") {
		t.Error("Exists() = true for an unknown id")
	}
}

func TestListSortedWithTitles(t *testing.T) {
	register(t, "zz-b")
	register(t, "zz-a")

	list := List()
	var got []GameInfo
	for _, info := range list {
		if info.ID == "zz-a" || info.ID == "zz-b" {
			got = append(got, info)
		}
	}
	if len(got) != 2 || got[0].ID != "zz-a" || got[1].ID != "zz-b" {
		t.Fatalf("List() = %v, expected zz-a before zz-b", got)
	}
	if got[0].Title != "Stub zz-a" {
		t.Errorf("Title = %q, expected %q", got[0].Title, "Stub zz-a")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	register(t, "zz-dup")

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz-dup", func() Game { return stubGame{id: "zz-dup"} })
}
