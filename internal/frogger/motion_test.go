package frogger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvanceByClampsPlayer(t *testing.T) {
	tests := []struct {
		name string
		from Position
		move Motion
		want Position
	}{
		{"hop right", Position{X: 15, Y: 600}, Motion{DX: Hop}, Position{X: 60, Y: 600}},
		{"hop up", Position{X: 15, Y: 600}, Motion{DY: -Hop}, Position{X: 15, Y: 555}},
		{"left at left edge", Position{X: 15, Y: 600}, Motion{DX: -Hop}, Position{X: 15, Y: 600}},
		{"down at bottom edge", Position{X: 15, Y: 600}, Motion{DY: Hop}, Position{X: 15, Y: 600}},
		{"partial right", Position{X: 590, Y: 300}, Motion{DX: Hop}, Position{X: 600, Y: 300}},
		{"partial up", Position{X: 100, Y: 20}, Motion{DY: -Hop}, Position{X: 100, Y: 15}},
		{"diagonal clamps each axis", Position{X: 20, Y: 590}, Motion{DX: -Hop, DY: Hop}, Position{X: 15, Y: 600}},
		{"huge displacement", Position{X: 300, Y: 300}, Motion{DX: 1e6, DY: -1e6}, Position{X: 600, Y: 15}},
		{"zero", Position{X: 300, Y: 300}, Motion{}, Position{X: 300, Y: 300}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer()
			p.Pos = tc.from
			got := AdvanceBy(p, tc.move)
			assert.Equal(t, tc.want, got.Pos)
			assert.Equal(t, tc.from, p.Pos, "input entity must not change")
		})
	}
}

func TestPlayerStaysInsideRectangle(t *testing.T) {
	moves := []Motion{
		{DX: Hop}, {DX: -Hop}, {DY: Hop}, {DY: -Hop},
		{DX: 3 * Hop}, {DY: -7 * Hop}, {DX: -1000}, {DY: 1000},
		{DX: 13, DY: -29},
	}

	p := NewPlayer()
	for i := 0; i < 500; i++ {
		p = AdvanceBy(p, moves[(i*7)%len(moves)])
		assert.GreaterOrEqual(t, p.Pos.X, LowerBound)
		assert.LessOrEqual(t, p.Pos.X, UpperBound)
		assert.GreaterOrEqual(t, p.Pos.Y, LowerBound)
		assert.LessOrEqual(t, p.Pos.Y, UpperBound)
	}
}

func TestAdvanceDoesNotClampScrollingEntities(t *testing.T) {
	car := Entity{ID: "hazard-0", Kind: KindHazard, Pos: Position{X: 610, Y: 535}, Motion: Motion{DX: 4}}

	car = Advance(car)
	assert.Equal(t, 614.0, car.Pos.X)
	car = Advance(car)
	assert.Equal(t, 618.0, car.Pos.X)
	assert.Equal(t, 535.0, car.Pos.Y)
}

func TestScrollMotion(t *testing.T) {
	assert.Equal(t, Motion{DX: 2}, ScrollMotion(DirLeftToRight, 2))
	assert.Equal(t, Motion{DX: -2}, ScrollMotion(DirRightToLeft, 2))
}
