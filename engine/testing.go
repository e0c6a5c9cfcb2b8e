package engine

// NewTestGameContext creates a minimal context for tests with a fixed
// RNG seed and a small arena. Tests drive it with explicit Advance calls.
func NewTestGameContext() *GameContext {
	return NewGameContext(ConfigResource{
		ArenaWidth:  100,
		ArenaHeight: 100,
		Seed:        1,
	})
}
