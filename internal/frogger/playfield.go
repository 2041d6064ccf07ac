package frogger

// Playfield geometry in canvas units. The canvas is CanvasSize wide and tall;
// the player may roam within [LowerBound, UpperBound-EdgeMargin] on both axes.
const (
	CanvasSize   = 615.0
	LowerBound   = 15.0
	UpperBound   = 615.0
	EdgeMargin   = 15.0
	PlayerMargin = 7.5 // half-size of the player's bounding box
	Hop          = 45.0

	// RiverEdge is the y coordinate above which the player drowns unless carried.
	RiverEdge = 315.0

	// BandHeight is the height of a single lane, verge or goal cell.
	BandHeight = 30.0

	platformBaseY = 270.0
	hazardBaseY   = 535.0
	laneCount     = 6

	goalWidth = 50.0
)

// PlayerID is the fixed identifier of the single player entity.
const PlayerID = "frog"

// PlayerStart is where the player spawns and returns to after reaching a goal.
var PlayerStart = Position{X: 15, Y: 600}

// goalCatalog is the fixed set of goal cells. Order matters: RegisterGoal
// indexes into it.
var goalCatalog = [...]Entity{
	newGoal("goal1", 570),
	newGoal("goal2", 410),
	newGoal("goal3", 230),
	newGoal("goal4", 0),
}

func newGoal(id string, x float64) Entity {
	return Entity{
		ID:   id,
		Kind: KindGoal,
		Pos:  Position{X: x, Y: 0},
		Size: Size{Height: BandHeight, Width: goalWidth},
		Tag:  TagGoal,
	}
}

// CatalogSize is the number of goal cells.
const CatalogSize = len(goalCatalog)

// Goal returns the catalog entry at index i, wrapping out-of-range indices.
func Goal(i int) Entity {
	i %= CatalogSize
	if i < 0 {
		i += CatalogSize
	}
	return goalCatalog[i]
}

// Catalog returns a copy of every goal cell in catalog order.
func Catalog() []Entity {
	out := make([]Entity, CatalogSize)
	copy(out, goalCatalog[:])
	return out
}

// InRiver reports whether a player at pos is inside the river band.
func InRiver(pos Position) bool {
	return pos.Y < RiverEdge
}

// Decorations returns the static backdrop: the river, the verge between road
// and river, and the start strip. They never move and never collide.
func Decorations() []Entity {
	return []Entity{
		{ID: "river", Kind: KindDecoration, Pos: Position{X: 0, Y: 0}, Size: Size{Height: RiverEdge, Width: CanvasSize}, Tag: TagRiver},
		{ID: "verge", Kind: KindDecoration, Pos: Position{X: 0, Y: RiverEdge}, Size: Size{Height: BandHeight, Width: CanvasSize}, Tag: TagVerge},
		{ID: "start", Kind: KindDecoration, Pos: Position{X: 0, Y: 585}, Size: Size{Height: BandHeight, Width: CanvasSize}, Tag: TagVerge},
	}
}
