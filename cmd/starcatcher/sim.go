package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-catcher/internal/core"
	"github.com/vovakirdan/star-catcher/internal/games/catcher"
	"github.com/vovakirdan/star-catcher/internal/games/flappy"
	"github.com/vovakirdan/star-catcher/internal/session"
)

var (
	flagSimTicks  int
	flagSimSeed   int64
	flagSimRuns   int
	flagSimConfig string
)

var simCmd = &cobra.Command{
	Use:   "sim <variant>",
	Short: "Run headless games with a simple autopilot",
	Long: `Runs the variant without a terminal UI, steering with a built-in
autopilot, and prints the result of each run. Runs with the same --seed
are identical.

Examples:
  starcatcher sim flappy --seed 42
  starcatcher sim catcher --runs 5 --ticks 5000`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Maximum ticks per run")
	simCmd.Flags().Int64Var(&flagSimSeed, "seed", 1, "Session RNG seed")
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 1, "Number of runs")
	simCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom variant config YAML")
}

// simResult describes one finished run.
type simResult struct {
	Score int
	Ticks int
	Ended bool // Ended by a lethal hit rather than the tick limit
}

func runSim(cmd *cobra.Command, args []string) error {
	game, err := createVariant(args[0], flagSimConfig)
	if err != nil {
		return err
	}

	sess := session.New(game,
		session.WithSeed(flagSimSeed),
		session.WithSound(false),
		session.WithLogger(logger),
	)

	out := cmd.OutOrStdout()
	for i := 1; i <= flagSimRuns; i++ {
		res := simulate(sess, flagSimTicks)
		status := "time limit"
		if res.Ended {
			status = "game over"
		}
		fmt.Fprintf(out, "run %d: score %d after %d ticks (%s)\n", i, res.Score, res.Ticks, status)
	}
	fmt.Fprintf(out, "best: %d\n", sess.HighScore())
	return nil
}

// simulate plays one run from the menu until game over or maxTicks.
func simulate(sess *session.Session, maxTicks int) simResult {
	if sess.State() == session.StatePlaying {
		sess.HandleAction(core.ActionMenu)
	}
	sess.HandleAction(core.ActionStart)

	for sess.State() == session.StatePlaying && sess.Ticks() < maxTicks {
		sess.Tick(autopilot(sess))
	}
	sess.DrainEvents()

	return simResult{
		Score: sess.Score(),
		Ticks: sess.Ticks(),
		Ended: sess.State() == session.StateGameOver,
	}
}

// autopilot picks the input for the next tick.
func autopilot(sess *session.Session) core.InputFrame {
	in := core.NewInputFrame()

	switch g := sess.Game().(type) {
	case *flappy.Game:
		if flappyShouldFlap(g) {
			in.Set(core.ActionFlap)
		}
	case *catcher.Game:
		star, basket := g.Star(), g.Basket()
		centre := basket.X + basket.W/2
		switch {
		case star.X < centre-basket.W/4:
			in.Set(core.ActionLeft)
		case star.X > centre+basket.W/4:
			in.Set(core.ActionRight)
		}
	}
	return in
}

// flappyShouldFlap flaps when the bird is falling below the centre of the
// next gap.
func flappyShouldFlap(g *flappy.Game) bool {
	bird := g.Bird()
	_, h := g.Playfield()
	target := h / 2

	for _, p := range g.Pipes() {
		if p.X+p.Width/2 >= bird.X-10 {
			target = p.GapY + 20
			break
		}
	}
	return bird.VY >= 0 && bird.Y > target
}
