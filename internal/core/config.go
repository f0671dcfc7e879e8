package core

// RuntimeConfig contains configuration passed to games at reset.
type RuntimeConfig struct {
	Width  float64 // Playfield width in pixels
	Height float64 // Playfield height in pixels
	Seed   int64   // RNG seed for deterministic gameplay
}

// StepResult is returned by Game.Step() after each simulation tick.
// It reports what happened during the tick; the session turns it into
// score, state transitions and sound events.
type StepResult struct {
	Scored  int  // Points earned this tick
	Lethal  bool // The run ended this tick
	Flapped bool // A flap was applied this tick
}
