package core

import "time"

// RuntimeConfig describes the frame loop a platform runs.
type RuntimeConfig struct {
	ScreenW  int // Canvas width in characters
	ScreenH  int // Canvas height in characters
	TickRate int // Frames per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// FrameInterval returns the wall-clock duration of one frame.
func (c RuntimeConfig) FrameInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// FrameDelta returns the nominal frame duration in seconds.
func (c RuntimeConfig) FrameDelta() float64 {
	return c.FrameInterval().Seconds()
}
