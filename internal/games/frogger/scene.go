package frogger

import (
	"cmp"
	"slices"

	sim "github.com/vovakirdan/tui-frogger/internal/frogger"
)

// Sprite is the retained view of one simulation entity.
type Sprite struct {
	ID   string
	Kind sim.Kind
	Tag  sim.Tag
	Pos  sim.Position
	Size sim.Size

	seq int // insertion order, for stable draw order within a layer
}

// Scene keeps one sprite per live entity. It is updated from each state the
// reducer produces and never looks at earlier states.
type Scene struct {
	sprites map[string]Sprite
	next    int
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{sprites: make(map[string]Sprite)}
}

// Apply brings the scene in line with s. While the game is running every
// live entity is upserted; entities listed in ToRemove are always erased.
func (sc *Scene) Apply(s sim.State) {
	if !s.IsGameOver {
		sc.upsert(s.Player)
		for _, group := range [][]sim.Entity{s.Platforms, s.Hazards, s.Goals} {
			for _, e := range group {
				sc.upsert(e)
			}
		}
	}
	for _, e := range s.ToRemove {
		delete(sc.sprites, e.ID)
	}
}

func (sc *Scene) upsert(e sim.Entity) {
	sp, ok := sc.sprites[e.ID]
	if !ok {
		sp = Sprite{ID: e.ID, seq: sc.next}
		sc.next++
	}
	sp.Kind = e.Kind
	sp.Tag = e.Tag
	sp.Pos = e.Pos
	sp.Size = e.Size
	sc.sprites[e.ID] = sp
}

// Clear removes every sprite.
func (sc *Scene) Clear() {
	clear(sc.sprites)
	sc.next = 0
}

// Len returns the number of sprites.
func (sc *Scene) Len() int {
	return len(sc.sprites)
}

// Get returns the sprite with the given id.
func (sc *Scene) Get(id string) (Sprite, bool) {
	sp, ok := sc.sprites[id]
	return sp, ok
}

// layer orders sprites back to front.
func layer(k sim.Kind) int {
	switch k {
	case sim.KindGoal:
		return 0
	case sim.KindPlatform:
		return 1
	case sim.KindHazard:
		return 2
	case sim.KindPlayer:
		return 3
	default:
		return -1
	}
}

// Sprites returns every sprite in draw order: goals, platforms, hazards,
// then the player, each layer in insertion order.
func (sc *Scene) Sprites() []Sprite {
	out := make([]Sprite, 0, len(sc.sprites))
	for _, sp := range sc.sprites {
		out = append(out, sp)
	}
	slices.SortFunc(out, func(a, b Sprite) int {
		if c := cmp.Compare(layer(a.Kind), layer(b.Kind)); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})
	return out
}
