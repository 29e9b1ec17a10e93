package core

// ScoreKeeper persists a game's best score between runs.
// Implementations handle their own failures; games never see them.
type ScoreKeeper interface {
	Load() (float64, bool)
	Save(best float64)
}

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Platform ticks per second (default 30)

	// Scores is the best-score persistence collaborator. Nil disables persistence.
	Scores ScoreKeeper
	// OnChange is called after every game state change. May be nil.
	OnChange func(GameState)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Level     int     // Current level (integer part of the score)
	Score     float64 // Current score
	BestScore float64 // Best score of the running session
	Mode      string  // Interaction mode name ("play" or "edit")
	Prompting bool    // Whether the game is waiting for a yes/no answer

	// Edited is set once the board has been edited by hand since the last
	// reset. Scores of an edited run are not recorded.
	Edited bool
}

// StepResult is returned by Game.Step() after each platform tick.
type StepResult struct {
	State GameState

	// Finished is set when a run ended this step (confirmed reset).
	// FinishedBest carries the best score of the run that ended, or 0 when
	// the run was edited.
	Finished     bool
	FinishedBest float64
}
