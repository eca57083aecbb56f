package core

// RuntimeConfig carries the per-session parameters the platform layer hands
// to the game model at startup.
type RuntimeConfig struct {
	ScreenW  int   // stage width in characters
	ScreenH  int   // stage height in characters
	TickRate int   // activation ticks per second
	Seed     int64 // seat-draw seed; 0 means derive from the clock
}

// DefaultConfig returns a RuntimeConfig with defaults for a standard
// 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0,
	}
}
