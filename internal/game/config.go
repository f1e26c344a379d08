package game

import "time"

// Config carries the knobs a session is created with.
type Config struct {
	Seed         int64         // RNG seed for word selection; 0 = time-based
	RestartDelay time.Duration // pause after a round ends; 0 = RestartDelay default
}

// DefaultConfig returns a Config with the standard restart delay and a
// time-based seed.
func DefaultConfig() Config {
	return Config{
		Seed:         0,
		RestartDelay: RestartDelay,
	}
}
