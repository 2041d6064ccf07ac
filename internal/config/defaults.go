package config

import (
	_ "embed"
)

//go:embed defaults/frogger.yaml
var defaultFroggerYAML []byte

// DefaultFroggerConfig returns the default Frogger configuration.
func DefaultFroggerConfig() FroggerConfig {
	return FroggerConfig{
		Timing: FroggerTiming{
			TickIntervalMs: 10,
			GoalIntervalMs: 6000,
		},
		Player: FroggerPlayer{
			Hop: 45,
		},
		Lanes: []LaneConfig{
			platformLane(0, 50, "left_to_right", 3000),
			platformLane(1, 90, "right_to_left", 3000),
			platformLane(2, 90, "left_to_right", 3000),
			platformLane(3, 90, "right_to_left", 3000),
			platformLane(4, 90, "left_to_right", 3000),
			platformLane(5, 180, "right_to_left", 6000),
			hazardLane(0, "left_to_right"),
			hazardLane(1, "left_to_right"),
			hazardLane(2, "right_to_left"),
			hazardLane(3, "left_to_right"),
			hazardLane(4, "right_to_left"),
		},
	}
}

func platformLane(row int, width float64, dir string, intervalMs int) LaneConfig {
	return LaneConfig{
		Kind:       LanePlatform,
		Row:        row,
		Height:     30,
		Width:      width,
		Direction:  dir,
		Speed:      1,
		IntervalMs: intervalMs,
	}
}

func hazardLane(row int, dir string) LaneConfig {
	return LaneConfig{
		Kind:       LaneHazard,
		Row:        row,
		Height:     30,
		Width:      30,
		Direction:  dir,
		Speed:      4,
		IntervalMs: 3000,
	}
}
