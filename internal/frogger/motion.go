package frogger

import "math"

// Advance moves an entity one step along its own motion vector.
// Non-player entities are never clamped: leaving the canvas is how they expire.
func Advance(e Entity) Entity {
	return AdvanceBy(e, e.Motion)
}

// AdvanceBy moves an entity by m instead of its own motion vector. The player
// is clamped on each axis so it never leaves the playable rectangle.
func AdvanceBy(e Entity, m Motion) Entity {
	if e.Kind == KindPlayer {
		e.Pos = Position{
			X: e.Pos.X + clampShift(e.Pos.X, m.DX),
			Y: e.Pos.Y + clampShift(e.Pos.Y, m.DY),
		}
		return e
	}
	e.Pos = Position{X: e.Pos.X + m.DX, Y: e.Pos.Y + m.DY}
	return e
}

// clampShift limits a displacement along one axis to the distance left to the
// nearer edge on that side. The sign of shift is preserved.
func clampShift(pos, shift float64) float64 {
	switch {
	case shift > 0:
		return math.Max(0, math.Min(UpperBound-pos-EdgeMargin, shift))
	case shift < 0:
		return -math.Max(0, math.Min(pos-LowerBound, -shift))
	default:
		return 0
	}
}
