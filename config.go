package flip

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the animation defaults applied when a region does not set
// its own, plus the loop frame rate.
type Config struct {
	Duration  time.Duration `env:"FLIP_DURATION"   envDefault:"300ms"`
	Easing    string        `env:"FLIP_EASING"     envDefault:"ease-in-out"`
	FrameRate int           `env:"FLIP_FRAME_RATE" envDefault:"60"`
}

// DefaultConfig returns the built-in defaults: 300ms, ease-in-out, 60 fps.
func DefaultConfig() Config {
	return Config{
		Duration:  300 * time.Millisecond,
		Easing:    "ease-in-out",
		FrameRate: 60,
	}
}

// LoadConfig reads FLIP_DURATION, FLIP_EASING and FLIP_FRAME_RATE from the
// environment, falling back to DefaultConfig for unset variables.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Duration < 0 {
		return fmt.Errorf("duration must not be negative, got %s", c.Duration)
	}
	if c.FrameRate < 1 || c.FrameRate > 240 {
		return fmt.Errorf("frame rate must be within 1-240 fps, got %d", c.FrameRate)
	}
	if _, err := ParseEasing(c.Easing); err != nil {
		return fmt.Errorf("easing: %w", err)
	}
	return nil
}
