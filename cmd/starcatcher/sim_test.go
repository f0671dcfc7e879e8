package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/star-catcher/internal/config"
	"github.com/vovakirdan/star-catcher/internal/games/catcher"
	"github.com/vovakirdan/star-catcher/internal/games/flappy"
	"github.com/vovakirdan/star-catcher/internal/registry"
	"github.com/vovakirdan/star-catcher/internal/session"
)

func TestSimulateDeterministic(t *testing.T) {
	run := func() simResult {
		g := flappy.NewWithConfig(config.DefaultFlappyConfig())
		return simulate(session.New(g, session.WithSeed(42)), 2000)
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("runs differ: %+v vs %+v", a, b)
	}
	if a.Ticks == 0 {
		t.Error("simulation should run at least one tick")
	}
}

func TestSimulateFlappyStaysAirborne(t *testing.T) {
	g := flappy.NewWithConfig(config.DefaultFlappyConfig())
	res := simulate(session.New(g, session.WithSeed(3)), 100)

	// No pipe arrives before tick 120, so only the floor or ceiling can end this run.
	if res.Ended {
		t.Errorf("autopilot crashed before the first pipe at tick %d", res.Ticks)
	}
}

func TestSimulateCatcherCatches(t *testing.T) {
	g := catcher.NewWithConfig(config.DefaultCatcherConfig())
	res := simulate(session.New(g, session.WithSeed(9)), 600)

	if res.Score == 0 {
		t.Errorf("autopilot caught nothing in %d ticks", res.Ticks)
	}
}

func TestSimulateRestartsAfterGameOver(t *testing.T) {
	g := flappy.NewWithConfig(config.DefaultFlappyConfig())
	sess := session.New(g, session.WithSeed(1))

	simulate(sess, 5000)
	res := simulate(sess, 10)

	if res.Ticks != 10 || res.Ended {
		t.Errorf("second run = %+v, expected 10 ticks without game over", res)
	}
}

func TestListCommand(t *testing.T) {
	var buf bytes.Buffer
	listCmd.SetOut(&buf)
	runList(listCmd, nil)

	out := buf.String()
	for _, g := range registry.List() {
		if !strings.Contains(out, g.ID) {
			t.Errorf("list output missing %q:\n%s", g.ID, out)
		}
	}
}

func TestCreateVariantUnknown(t *testing.T) {
	if _, err := createVariant("nope", ""); err == nil {
		t.Error("createVariant should reject unknown variants")
	}
}

func TestCreateVariantBadConfig(t *testing.T) {
	if _, err := createVariant(flappy.ID, "/does/not/exist.yaml"); err == nil {
		t.Error("createVariant should fail on a missing custom config")
	}
}
