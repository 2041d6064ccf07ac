package frogger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInBounds(t *testing.T) {
	tests := []struct {
		name string
		x, w float64
		want bool
	}{
		{"entering from left", 0, 50, true},
		{"entering from right", 615, 90, true},
		{"left span touches lower bound", -35, 50, true},
		{"gone past left", -36, 50, false},
		{"right span touches upper bound", 665, 50, true},
		{"gone past right", 666, 50, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := Entity{Kind: KindPlatform, Pos: Position{X: tc.x, Y: 270}, Size: Size{Height: 30, Width: tc.w}}
			assert.Equal(t, tc.want, InBounds(e))
		})
	}
}

func TestOverlapsIsContainment(t *testing.T) {
	log := Entity{Kind: KindPlatform, Pos: Position{X: 0, Y: 270}, Size: Size{Height: 30, Width: 90}}

	tests := []struct {
		name string
		p    Position
		want bool
	}{
		{"centred", Position{X: 45, Y: 285}, true},
		{"flush top-left corner", Position{X: 7.5, Y: 277.5}, true},
		{"flush bottom-right corner", Position{X: 82.5, Y: 292.5}, true},
		{"hanging off right end", Position{X: 85, Y: 285}, false},
		{"hanging off left end", Position{X: 5, Y: 285}, false},
		{"row above", Position{X: 45, Y: 240}, false},
		{"half a row down", Position{X: 45, Y: 295}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.p, log))
		})
	}
}

func TestFirstOverlapPicksCollectionOrder(t *testing.T) {
	a := Entity{ID: "platform-3", Kind: KindPlatform, Pos: Position{X: 0, Y: 270}, Size: Size{Height: 30, Width: 90}}
	b := Entity{ID: "platform-7", Kind: KindPlatform, Pos: Position{X: 10, Y: 270}, Size: Size{Height: 30, Width: 90}}
	p := Position{X: 45, Y: 285}

	got, ok := firstOverlap(p, []Entity{a, b})
	require.True(t, ok)
	assert.Equal(t, "platform-3", got.ID)

	_, ok = firstOverlap(Position{X: 300, Y: 285}, []Entity{a, b})
	assert.False(t, ok)
}

func TestGoalCellsAreReachableByHopping(t *testing.T) {
	// Every catalog cell must contain some position on the hop grid.
	for _, g := range Catalog() {
		found := false
		for x := PlayerStart.X; x <= UpperBound-EdgeMargin; x += Hop {
			if Overlaps(Position{X: x, Y: LowerBound}, g) {
				found = true
				break
			}
		}
		assert.True(t, found, "goal %s unreachable", g.ID)
	}
}
