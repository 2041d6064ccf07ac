package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Frames per second driven by the platform (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// FrameMillis returns the wall-clock length of one frame in milliseconds.
func (c RuntimeConfig) FrameMillis() int {
	if c.TickRate <= 0 {
		return 1000 / DefaultConfig().TickRate
	}
	return 1000 / c.TickRate
}

// GameState is the summary a game reports to the platform after each frame.
type GameState struct {
	Score        int
	HighScore    int
	GoalsReached int
	GameOver     bool
	Paused       bool
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State  GameState
	Events int // simulation events folded during the frame
}
