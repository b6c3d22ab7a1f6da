package core

import "time"

// RuntimeConfig contains the timing parameters shared by the pipeline tasks.
type RuntimeConfig struct {
	TickRate int // Render ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
	}
}

// TickInterval returns the render period for the configured tick rate.
func (c RuntimeConfig) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}
