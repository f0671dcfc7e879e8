package flappy

import (
	"math"
	"testing"

	"github.com/vovakirdan/star-catcher/internal/config"
	"github.com/vovakirdan/star-catcher/internal/core"
)

func newTestGame(seed int64) *Game {
	g := NewWithConfig(config.DefaultFlappyConfig())
	g.Reset(core.RuntimeConfig{Seed: seed})
	return g
}

// pipeAt builds a pipe that lands on x after the next Advance.
func pipeAt(g *Game, x, gapY float64) Pipe {
	cfg := g.Config()
	return Pipe{
		X:       x + cfg.Pipes.Speed,
		GapY:    gapY,
		Gap:     cfg.Pipes.Gap,
		Width:   cfg.Pipes.Width,
		screenH: cfg.Playfield.Height,
		star:    cfg.Star,
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// hover makes the bird end the next tick exactly where it is.
func hover(g *Game) {
	g.bird.VY = -g.cfg.Physics.Gravity
}

func TestGameDeterminism(t *testing.T) {
	// Flap every 18 ticks to stay airborne for a while
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%18 == 0 {
			inputs[i].Set(core.ActionFlap)
		}
	}

	run := func() (score, ticks int, pipes []Pipe) {
		g := newTestGame(12345)
		for _, in := range inputs {
			res := g.Step(in)
			score += res.Scored
			if res.Lethal {
				break
			}
		}
		return score, g.tickCount, append([]Pipe(nil), g.Pipes()...)
	}

	score1, ticks1, pipes1 := run()
	score2, ticks2, pipes2 := run()

	if score1 != score2 {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", score1, score2)
	}
	if ticks1 != ticks2 {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", ticks1, ticks2)
	}
	if len(pipes1) != len(pipes2) {
		t.Fatalf("Determinism failed: pipe counts differ. Run1=%d, Run2=%d", len(pipes1), len(pipes2))
	}
	for i := range pipes1 {
		if pipes1[i].X != pipes2[i].X || pipes1[i].GapY != pipes2[i].GapY {
			t.Errorf("Determinism failed: pipe %d differs: %+v vs %+v", i, pipes1[i], pipes2[i])
		}
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(42)

	for i := 0; i < 200; i++ {
		in := core.NewInputFrame()
		if i%15 == 0 {
			in.Set(core.ActionFlap)
		}
		g.Step(in)
	}

	g.Reset(core.RuntimeConfig{Seed: 42})
	g.Reset(core.RuntimeConfig{Seed: 42})

	if len(g.Pipes()) != 0 {
		t.Errorf("Reset should clear pipes, got %d", len(g.Pipes()))
	}
	if g.SpawnTimer() != 120 {
		t.Errorf("Reset should rearm the spawn timer, got %d", g.SpawnTimer())
	}
	if g.bird.X != 240 || g.bird.Y != 320 || g.bird.VY != 0 {
		t.Errorf("Reset should place a resting bird at (240, 320), got (%v, %v) vy=%v", g.bird.X, g.bird.Y, g.bird.VY)
	}
	if g.tickCount != 0 {
		t.Errorf("Reset should clear tickCount, got %d", g.tickCount)
	}
}

func TestResetUsesRuntimePlayfield(t *testing.T) {
	g := NewWithConfig(config.DefaultFlappyConfig())
	g.Reset(core.RuntimeConfig{Width: 300, Height: 400, Seed: 1})

	w, h := g.Playfield()
	if w != 300 || h != 400 {
		t.Errorf("Playfield() = %vx%v, expected 300x400", w, h)
	}
	if g.bird.X != 150 || g.bird.Y != 200 {
		t.Errorf("bird spawn = (%v, %v), expected (150, 200)", g.bird.X, g.bird.Y)
	}
}

func TestGravity(t *testing.T) {
	g := newTestGame(1)

	res := g.Step(core.NewInputFrame())

	if res.Flapped {
		t.Error("Step without input should not report a flap")
	}
	if !approx(g.bird.VY, 0.35) {
		t.Errorf("VY after one tick = %v, expected 0.35", g.bird.VY)
	}
	if !approx(g.bird.Y, 320.35) {
		t.Errorf("Y after one tick = %v, expected 320.35", g.bird.Y)
	}
}

func TestFlapOverridesVelocity(t *testing.T) {
	g := newTestGame(1)
	g.bird.VY = 5 // falling fast

	in := core.NewInputFrame()
	in.Set(core.ActionFlap)
	res := g.Step(in)

	if !res.Flapped {
		t.Error("Step should report the flap")
	}
	expected := -6.5 + 0.35
	if !approx(g.bird.VY, expected) {
		t.Errorf("VY after flap = %v, expected %v (override, not additive)", g.bird.VY, expected)
	}
	if g.bird.Y >= 320 {
		t.Errorf("Flap should move the bird up, Y = %v", g.bird.Y)
	}
}

func TestBirdAngle(t *testing.T) {
	tests := []struct {
		vy, expected float64
	}{
		{0, 0},
		{-5, 20},
		{-20, 60},  // clamped nose-down limit
		{20, -30},  // clamped nose-up limit
		{6.5, -26}, // within range
	}

	b := NewBird(0, 0, config.DefaultFlappyConfig().Bird)
	for _, tc := range tests {
		b.VY = tc.vy
		if got := b.Angle(); got != tc.expected {
			t.Errorf("Angle() with vy=%v = %v, expected %v", tc.vy, got, tc.expected)
		}
	}
}

func TestBirdHitbox(t *testing.T) {
	b := NewBird(240, 320, config.DefaultFlappyConfig().Bird)
	h := b.Hitbox()

	// 64 * 0.7 = 44.8 -> 45% = 20, 55% = 24
	if h.W != 20 || h.H != 24 {
		t.Errorf("hitbox size = %vx%v, expected 20x24", h.W, h.H)
	}
	c := h.Center()
	if c.X != 240 || c.Y != 318 {
		t.Errorf("hitbox centre = %v, expected {240 318}", c)
	}

	cfg := config.DefaultFlappyConfig().Bird
	cfg.Scale = 0.1
	small := NewBird(0, 0, cfg).Hitbox()
	if small.W != 8 || small.H != 8 {
		t.Errorf("tiny sprite hitbox = %vx%v, expected the 8x8 minimum", small.W, small.H)
	}
}

func TestFirstPipeSpawnsAfterInterval(t *testing.T) {
	g := newTestGame(7)

	for i := 0; i < 119; i++ {
		g.Step(core.NewInputFrame())
	}
	if len(g.Pipes()) != 0 {
		t.Fatalf("no pipe expected before tick 120, got %d", len(g.Pipes()))
	}

	g.Step(core.NewInputFrame())

	pipes := g.Pipes()
	if len(pipes) != 1 {
		t.Fatalf("expected exactly one pipe after 120 ticks, got %d", len(pipes))
	}
	// Spawned at WIDTH + PIPE_WIDTH and scrolled once in its spawn tick.
	if expected := 480.0 + 70.0 - 2.6; !approx(pipes[0].X, expected) {
		t.Errorf("pipe X = %v, expected %v", pipes[0].X, expected)
	}
	if g.SpawnTimer() != 120 {
		t.Errorf("spawn timer after spawn = %d, expected 120", g.SpawnTimer())
	}
}

func TestPipeGapWithinMargins(t *testing.T) {
	pm := NewPipeManager(99, config.DefaultFlappyConfig())
	for i := 0; i < 500; i++ {
		pm.spawn()
	}
	for i, p := range pm.Pipes() {
		if p.GapY < 90 || p.GapY > 550 {
			t.Fatalf("pipe %d gap centre %v outside [90, 550]", i, p.GapY)
		}
		if p.X != 550 {
			t.Fatalf("pipe %d spawned at %v, expected 550", i, p.X)
		}
	}
}

func TestPipeRects(t *testing.T) {
	g := newTestGame(1)
	p := pipeAt(g, 100, 300)
	p.X = 100

	top := p.TopRect()
	if top.X != 65 || top.Y != 0 || top.W != 70 || top.H != 205 {
		t.Errorf("TopRect() = %+v, expected {65 0 70 205}", top)
	}
	bottom := p.BottomRect()
	if bottom.X != 65 || bottom.Y != 395 || bottom.W != 70 || bottom.H != 245 {
		t.Errorf("BottomRect() = %+v, expected {65 395 70 245}", bottom)
	}
	star := p.StarRect()
	if star.Center() != (core.Point{X: 100, Y: 300}) || star.W != 32 {
		t.Errorf("StarRect() = %+v, expected 32px box centred on (100, 300)", star)
	}

	// A gap reaching past the top leaves an empty top barrier.
	p.GapY = 50
	if h := p.TopRect().H; h != 0 {
		t.Errorf("TopRect().H = %v, expected 0", h)
	}
}

func TestCollectStarOnce(t *testing.T) {
	g := newTestGame(1)
	g.pipes.pipes = append(g.pipes.pipes, pipeAt(g, 240, 320))

	hover(g)
	res := g.Step(core.NewInputFrame())
	if res.Lethal {
		t.Fatal("bird inside the gap should survive")
	}
	if res.Scored != 1 {
		t.Errorf("Scored = %d, expected 1", res.Scored)
	}
	if !g.Pipes()[0].StarCollected {
		t.Error("star should be marked collected")
	}

	for i := 0; i < 3; i++ {
		hover(g)
		res = g.Step(core.NewInputFrame())
		if res.Scored != 0 {
			t.Errorf("tick %d: Scored = %d, a collected star must not score again", i, res.Scored)
		}
		if !g.Pipes()[0].StarCollected {
			t.Error("collected star must stay collected")
		}
	}

	for _, s := range g.Sprites() {
		if s.Kind == core.SpriteStar && s.Visible {
			t.Error("collected star should not be drawn")
		}
	}
}

func TestPipeHitEndsPassEarly(t *testing.T) {
	g := newTestGame(1)
	// First pipe: gap far above the bird, bottom barrier covers it.
	first := pipeAt(g, 240, 100)
	// Second pipe: star right on the bird.
	second := pipeAt(g, 240, 320)
	g.pipes.pipes = append(g.pipes.pipes, first, second)

	hover(g)
	res := g.Step(core.NewInputFrame())

	if !res.Lethal {
		t.Fatal("overlapping the bottom barrier should be lethal")
	}
	if res.Scored != 0 {
		t.Errorf("Scored = %d, later pipes must not be evaluated after a hit", res.Scored)
	}
	pipes := g.Pipes()
	if len(pipes) != 2 {
		t.Fatalf("both pipes should still be live, got %d", len(pipes))
	}
	if !approx(pipes[0].X, 240) {
		t.Errorf("hit pipe X = %v, expected 240", pipes[0].X)
	}
	if pipes[1].X != second.X {
		t.Errorf("pipe after the hit moved to %v, expected it untouched at %v", pipes[1].X, second.X)
	}
	if pipes[1].StarCollected {
		t.Error("star of a pipe after the hit must not be collected")
	}
}

func TestStarCountsBeforeLaterHit(t *testing.T) {
	g := newTestGame(1)
	g.pipes.pipes = append(g.pipes.pipes, pipeAt(g, 240, 320), pipeAt(g, 240, 600))

	hover(g)
	res := g.Step(core.NewInputFrame())

	if !res.Lethal || res.Scored != 1 {
		t.Errorf("Step() = %+v, expected the star to count and the second pipe to kill", res)
	}
}

func TestTopBarrierHit(t *testing.T) {
	g := newTestGame(1)
	g.pipes.pipes = append(g.pipes.pipes, pipeAt(g, 240, 500))

	hover(g)
	if res := g.Step(core.NewInputFrame()); !res.Lethal {
		t.Error("overlapping the top barrier should be lethal")
	}
}

func TestOffScreenPipeRemoved(t *testing.T) {
	g := newTestGame(1)
	leaving := pipeAt(g, -71, 320) // x + width = -1 after the advance
	staying := pipeAt(g, -69, 320) // x + width = 1 after the advance
	g.pipes.pipes = append(g.pipes.pipes, leaving, staying)

	hover(g)
	g.Step(core.NewInputFrame())

	pipes := g.Pipes()
	if len(pipes) != 1 {
		t.Fatalf("expected 1 live pipe, got %d", len(pipes))
	}
	if !approx(pipes[0].X, -69) {
		t.Errorf("remaining pipe X = %v, expected -69", pipes[0].X)
	}
}

func TestNoOffScreenPipeSurvivesATick(t *testing.T) {
	g := newTestGame(3)

	for i := 0; i < 2000; i++ {
		hover(g) // keep the bird alive in mid-air
		g.Step(core.NewInputFrame())
		for _, p := range g.Pipes() {
			if p.OffScreen() {
				t.Fatalf("tick %d: off-screen pipe at x=%v still live", i, p.X)
			}
		}
	}
}

func TestBoundaryTop(t *testing.T) {
	tests := []struct {
		name   string
		y      float64
		lethal bool
	}{
		{"top exactly zero", 14, false}, // hitbox top = 14 - 2 - 12 = 0
		{"top at minus one", 13, true},
		{"bottom exactly at floor margin", 620, false}, // hitbox bottom = 620 - 2 + 12 = 630
		{"bottom past floor margin", 621, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(1)
			g.bird.Y = tc.y
			hover(g)

			res := g.Step(core.NewInputFrame())
			if res.Lethal != tc.lethal {
				t.Errorf("Lethal = %v, expected %v (hitbox %+v)", res.Lethal, tc.lethal, g.bird.Hitbox())
			}
		})
	}
}

func TestFallingBirdDies(t *testing.T) {
	g := newTestGame(1)

	lethal := false
	for i := 0; i < 120 && !lethal; i++ {
		lethal = g.Step(core.NewInputFrame()).Lethal
	}
	if !lethal {
		t.Error("a bird that never flaps should hit the floor")
	}
}

func TestSpritesOrder(t *testing.T) {
	g := newTestGame(1)
	g.pipes.pipes = append(g.pipes.pipes, pipeAt(g, 400, 320))

	sprites := g.Sprites()
	if len(sprites) != 4 {
		t.Fatalf("expected 4 sprites (2 barriers, star, bird), got %d", len(sprites))
	}
	if last := sprites[len(sprites)-1]; last.Kind != core.SpritePlayer {
		t.Errorf("bird should be drawn last, got %v", last.Kind)
	}
}
