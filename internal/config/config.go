// Package config provides YAML-based game configuration loading
// for the frogger playfield: timing cadences, hop size and lanes.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-frogger/internal/frogger"
)

// FroggerConfig contains all configuration for the Frogger game.
type FroggerConfig struct {
	Timing FroggerTiming `yaml:"timing"`
	Player FroggerPlayer `yaml:"player"`
	Lanes  []LaneConfig  `yaml:"lanes"`
}

// FroggerTiming defines how often the scheduler pulses.
type FroggerTiming struct {
	TickIntervalMs int `yaml:"tick_interval_ms"`
	GoalIntervalMs int `yaml:"goal_interval_ms"`
}

// FroggerPlayer defines player parameters.
type FroggerPlayer struct {
	Hop float64 `yaml:"hop"` // Distance covered by one key press
}

// LaneConfig describes one spawn lane.
type LaneConfig struct {
	Kind       string  `yaml:"kind"` // "platform" or "hazard"
	Row        int     `yaml:"row"`  // 0-5, counted upward from the lane base
	Height     float64 `yaml:"height"`
	Width      float64 `yaml:"width"`
	Direction  string  `yaml:"direction"` // "left_to_right" or "right_to_left"
	Speed      float64 `yaml:"speed"`
	IntervalMs int     `yaml:"interval_ms"`
}

// Lane kinds.
const (
	LanePlatform = "platform"
	LaneHazard   = "hazard"
)

// ErrInvalidConfig is returned by Validate for every rejected field.
var ErrInvalidConfig = errors.New("invalid frogger config")

// Validate checks the config for values the scheduler cannot work with.
func (c FroggerConfig) Validate() error {
	if c.Timing.TickIntervalMs <= 0 {
		return fmt.Errorf("%w: tick_interval_ms must be positive, got %d", ErrInvalidConfig, c.Timing.TickIntervalMs)
	}
	if c.Timing.GoalIntervalMs <= 0 {
		return fmt.Errorf("%w: goal_interval_ms must be positive, got %d", ErrInvalidConfig, c.Timing.GoalIntervalMs)
	}
	if c.Player.Hop <= 0 {
		return fmt.Errorf("%w: hop must be positive, got %v", ErrInvalidConfig, c.Player.Hop)
	}
	for i, l := range c.Lanes {
		if err := l.validate(); err != nil {
			return fmt.Errorf("lane %d: %w", i, err)
		}
	}
	return nil
}

func (l LaneConfig) validate() error {
	if l.Kind != LanePlatform && l.Kind != LaneHazard {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidConfig, l.Kind)
	}
	if _, ok := parseDirection(l.Direction); !ok {
		return fmt.Errorf("%w: unknown direction %q", ErrInvalidConfig, l.Direction)
	}
	if l.IntervalMs <= 0 {
		return fmt.Errorf("%w: interval_ms must be positive, got %d", ErrInvalidConfig, l.IntervalMs)
	}
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: size must be positive, got %vx%v", ErrInvalidConfig, l.Width, l.Height)
	}
	if l.Speed < 0 {
		return fmt.Errorf("%w: speed must not be negative, got %v", ErrInvalidConfig, l.Speed)
	}
	return nil
}

func parseDirection(s string) (frogger.Direction, bool) {
	switch s {
	case frogger.DirLeftToRight.String():
		return frogger.DirLeftToRight, true
	case frogger.DirRightToLeft.String():
		return frogger.DirRightToLeft, true
	default:
		return 0, false
	}
}

// Request converts the lane into the spawn request the simulation consumes.
// Call Validate first; unknown directions fall back to left to right.
func (l LaneConfig) Request() frogger.SpawnRequest {
	kind := frogger.KindHazard
	if l.Kind == LanePlatform {
		kind = frogger.KindPlatform
	}
	dir, _ := parseDirection(l.Direction)
	return frogger.SpawnRequest{
		Kind:      kind,
		Row:       l.Row,
		Size:      frogger.Size{Height: l.Height, Width: l.Width},
		Direction: dir,
		Speed:     l.Speed,
	}
}
