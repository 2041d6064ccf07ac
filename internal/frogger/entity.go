// Package frogger implements the simulation core of a Frogger-style arcade game.
// The core is a pure state machine: Reduce folds one Event into a State and
// returns the next State without touching the previous one. Rendering, input
// decoding and timers live outside this package.
package frogger

// Position is a point on the playfield in canvas units.
type Position struct {
	X, Y float64
}

// Size is the extent of an entity's footprint.
// The player uses Height as its half-size margin and a zero Width; see Overlaps.
type Size struct {
	Height float64
	Width  float64
}

// Motion is a per-tick displacement.
type Motion struct {
	DX, DY float64
}

// Direction selects which side of the canvas a scrolling entity enters from.
type Direction int

const (
	DirLeftToRight Direction = iota // enters at the left edge, dx > 0
	DirRightToLeft                  // enters at the right edge, dx < 0
)

// String returns the config name of the direction.
func (d Direction) String() string {
	switch d {
	case DirLeftToRight:
		return "left_to_right"
	case DirRightToLeft:
		return "right_to_left"
	default:
		return "unknown"
	}
}

// ScrollMotion derives the motion of a scrolling entity from its direction and speed.
// The sign is inverted for entities travelling right to left.
func ScrollMotion(dir Direction, speed float64) Motion {
	if dir == DirRightToLeft {
		return Motion{DX: -speed}
	}
	return Motion{DX: speed}
}

// Kind tags the entity variant.
type Kind int

const (
	KindPlayer Kind = iota
	KindPlatform
	KindHazard
	KindGoal
	KindDecoration
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindPlatform:
		return "platform"
	case KindHazard:
		return "hazard"
	case KindGoal:
		return "goal"
	case KindDecoration:
		return "decoration"
	default:
		return "unknown"
	}
}

// Tag is the render tag handed to the presentation layer.
type Tag string

const (
	TagPlayer   Tag = "frog"
	TagPlatform Tag = "log"
	TagHazard   Tag = "car"
	TagGoal     Tag = "goal"
	TagRiver    Tag = "river"
	TagVerge    Tag = "verge"
)

// Entity is a single object in the simulation. Entities are values: every
// operation that changes one returns a copy.
type Entity struct {
	ID     string
	Kind   Kind
	Pos    Position
	Size   Size
	Motion Motion
	Tag    Tag
}

// NewPlayer returns the player at its start position with zero motion.
func NewPlayer() Entity {
	return Entity{
		ID:   PlayerID,
		Kind: KindPlayer,
		Pos:  PlayerStart,
		Size: Size{Height: PlayerMargin, Width: 0},
		Tag:  TagPlayer,
	}
}

// Rect returns the entity footprint as (left, top, right, bottom).
func (e Entity) Rect() (left, top, right, bottom float64) {
	return e.Pos.X, e.Pos.Y, e.Pos.X + e.Size.Width, e.Pos.Y + e.Size.Height
}
