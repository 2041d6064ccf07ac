package frogger

import "fmt"

// Event is one input to Reduce. The set of events is closed: only the types
// in this file implement it.
type Event interface {
	isEvent()
}

// Tick is a periodic simulation pulse carrying a monotonically increasing marker.
type Tick struct {
	Elapsed int
}

// Move is a directional command for the player.
type Move struct {
	Delta Motion
}

// Spawn asks for a new platform or hazard.
type Spawn struct {
	Request SpawnRequest
}

// RegisterGoal makes a catalog goal cell live. Index wraps modulo CatalogSize.
type RegisterGoal struct {
	Index int
}

// Restart starts a new session, keeping the high score.
type Restart struct{}

func (Tick) isEvent()         {}
func (Move) isEvent()         {}
func (Spawn) isEvent()        {}
func (RegisterGoal) isEvent() {}
func (Restart) isEvent()      {}

// Jump returns the Move for a single hop of the given size.
// dx and dy are -1, 0 or 1.
func Jump(dx, dy int, size float64) Move {
	return Move{Delta: Motion{DX: float64(dx) * size, DY: float64(dy) * size}}
}

// SpawnRequest describes a scrolling entity to create.
type SpawnRequest struct {
	Kind      Kind // KindPlatform spawns a platform; anything else a hazard
	Row       int
	Size      Size
	Direction Direction
	Speed     float64
}

// Build creates the entity for the request. counter becomes the numeric
// suffix of the identifier, so two builds with distinct counters never collide.
func (r SpawnRequest) Build(counter int) Entity {
	kind, tag, baseY := KindHazard, TagHazard, hazardBaseY
	if r.Kind == KindPlatform {
		kind, tag, baseY = KindPlatform, TagPlatform, platformBaseY
	}

	row := r.Row % laneCount
	if row < 0 {
		row += laneCount
	}

	x := 0.0
	if r.Direction == DirRightToLeft {
		x = CanvasSize
	}

	return Entity{
		ID:     fmt.Sprintf("%s-%d", kind, counter),
		Kind:   kind,
		Pos:    Position{X: x, Y: baseY - float64(row)*Hop},
		Size:   r.Size,
		Motion: ScrollMotion(r.Direction, r.Speed),
		Tag:    tag,
	}
}
