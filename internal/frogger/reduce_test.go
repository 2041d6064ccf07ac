package frogger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(es []Entity) []string {
	out := make([]string, 0, len(es))
	for _, e := range es {
		out = append(out, e.ID)
	}
	return out
}

func TestInitial(t *testing.T) {
	s := Initial()

	assert.Equal(t, PlayerStart, s.Player.Pos)
	assert.Equal(t, KindPlayer, s.Player.Kind)
	assert.Empty(t, s.Platforms)
	assert.Empty(t, s.Hazards)
	assert.Empty(t, s.Goals)
	assert.Empty(t, s.ToRemove)
	assert.False(t, s.IsGameOver)
	assert.Zero(t, s.Score)
	assert.Zero(t, s.HighScore)
}

func TestReduceSpawn(t *testing.T) {
	logReq := SpawnRequest{Kind: KindPlatform, Row: 1, Size: Size{Height: 30, Width: 90}, Direction: DirLeftToRight, Speed: 1}
	carReq := SpawnRequest{Kind: KindHazard, Row: 2, Size: Size{Height: 30, Width: 30}, Direction: DirRightToLeft, Speed: 4}

	s := Fold(Initial(), Spawn{Request: logReq}, Spawn{Request: carReq})

	require.Len(t, s.Platforms, 1)
	require.Len(t, s.Hazards, 1)
	assert.Equal(t, 2, s.SpawnCounter)

	log := s.Platforms[0]
	assert.Equal(t, "platform-0", log.ID)
	assert.Equal(t, Position{X: 0, Y: 225}, log.Pos)
	assert.Equal(t, Motion{DX: 1}, log.Motion)
	assert.Equal(t, TagPlatform, log.Tag)

	car := s.Hazards[0]
	assert.Equal(t, "hazard-1", car.ID)
	assert.Equal(t, Position{X: 615, Y: 445}, car.Pos)
	assert.Equal(t, Motion{DX: -4}, car.Motion)
	assert.Equal(t, TagHazard, car.Tag)
}

func TestReduceSpawnWrapsRowsAndClassifiesByKind(t *testing.T) {
	req := SpawnRequest{Kind: KindGoal, Row: 7, Size: Size{Height: 30, Width: 30}, Speed: 2}

	s := Reduce(Initial(), Spawn{Request: req})

	assert.Empty(t, s.Platforms)
	require.Len(t, s.Hazards, 1)
	assert.Equal(t, KindHazard, s.Hazards[0].Kind)
	assert.Equal(t, 490.0, s.Hazards[0].Pos.Y)
}

func TestReduceSpawnIdentifiersNeverCollide(t *testing.T) {
	req := SpawnRequest{Kind: KindPlatform, Size: Size{Height: 30, Width: 50}, Speed: 1}
	s := Initial()
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		if i%2 == 0 {
			req.Kind = KindPlatform
		} else {
			req.Kind = KindHazard
		}
		s = Reduce(s, Spawn{Request: req})
	}
	for _, e := range append(append([]Entity{}, s.Platforms...), s.Hazards...) {
		assert.False(t, seen[e.ID], "duplicate id %s", e.ID)
		seen[e.ID] = true
	}
	assert.Len(t, seen, 50)
}

func TestReduceRegisterGoalIsIdempotent(t *testing.T) {
	s := Reduce(Initial(), RegisterGoal{Index: 2})
	require.Equal(t, []string{"goal3"}, ids(s.Goals))

	again := Reduce(s, RegisterGoal{Index: 2})
	assert.Equal(t, s.Goals, again.Goals)

	wrapped := Reduce(again, RegisterGoal{Index: 2 + CatalogSize})
	assert.Equal(t, s.Goals, wrapped.Goals)

	negative := Reduce(wrapped, RegisterGoal{Index: -1})
	assert.Equal(t, []string{"goal3", "goal4"}, ids(negative.Goals))
}

func TestReduceMove(t *testing.T) {
	s := Reduce(Initial(), Jump(1, 0, Hop))
	assert.Equal(t, Position{X: 60, Y: 600}, s.Player.Pos)
	assert.Zero(t, s.Score)

	s.RidingPlatform = true
	s.HighScore = 1
	s = Fold(s, Jump(0, -1, Hop), Jump(0, -1, Hop))
	assert.Equal(t, 2, s.Score, "every move aboard a platform scores")
	assert.Equal(t, 2, s.HighScore)
}

func TestReduceRestart(t *testing.T) {
	s := Initial()
	s.Platforms = []Entity{logAt("platform-0", 10, 1)}
	s.Hazards = []Entity{carAt("hazard-1", 50, 535), carAt("hazard-2", 90, 490)}
	s.Goals = []Entity{Goal(0), Goal(1), Goal(0)}
	s.Score = 40
	s.HighScore = 120
	s.GoalsReached = 2
	s.SpawnCounter = 3
	s.RidingPlatform = true
	s.Player = playerAt(300, 300)

	next := Reduce(s, Restart{})

	assert.Equal(t, 120, next.HighScore)
	assert.Zero(t, next.Score)
	assert.Zero(t, next.GoalsReached)
	assert.Zero(t, next.SpawnCounter)
	assert.False(t, next.RidingPlatform)
	assert.False(t, next.IsGameOver)
	assert.Empty(t, next.Platforms)
	assert.Empty(t, next.Hazards)
	assert.Empty(t, next.Goals)
	assert.Equal(t, PlayerStart, next.Player.Pos)
	assert.Equal(t, []string{"platform-0", "hazard-1", "hazard-2", "goal1", "goal2"}, ids(next.ToRemove))
}

func TestReduceGameOverFreezesSimulation(t *testing.T) {
	s := Initial()
	s.Player = playerAt(15, 285)
	s.Hazards = []Entity{carAt("hazard-0", 100, 535)}
	s.Goals = []Entity{Goal(1)}
	s.Score = 12
	s.HighScore = 12

	over := Reduce(s, Tick{Elapsed: 1})
	require.True(t, over.IsGameOver)

	events := []Event{
		Tick{Elapsed: 2},
		Jump(1, 0, Hop),
		Spawn{Request: SpawnRequest{Kind: KindPlatform, Size: Size{Height: 30, Width: 90}, Speed: 1}},
		RegisterGoal{Index: 0},
	}
	for _, e := range events {
		next := Reduce(over, e)
		assert.True(t, next.IsGameOver)
		assert.Equal(t, over.Player, next.Player)
		assert.Equal(t, over.Hazards, next.Hazards)
		assert.Equal(t, over.Goals, next.Goals)
		assert.Equal(t, over.SpawnCounter, next.SpawnCounter)
		assert.Equal(t, over.Elapsed, next.Elapsed)
		assert.Equal(t, 12, next.Score)
		assert.Equal(t, []string{"hazard-0", "goal2"}, ids(next.ToRemove))
	}

	restarted := Reduce(over, Restart{})
	assert.False(t, restarted.IsGameOver)
	assert.Equal(t, 12, restarted.HighScore, "high score survives restart")
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	backing := make([]Entity, 1, 8)
	backing[0] = logAt("platform-0", 0, 1)
	s := Initial()
	s.Platforms = backing
	s.SpawnCounter = 1

	req := SpawnRequest{Kind: KindPlatform, Size: Size{Height: 30, Width: 90}, Speed: 1}
	a := Reduce(s, Spawn{Request: req})
	b := Reduce(s, Spawn{Request: req})

	assert.Len(t, s.Platforms, 1)
	assert.Equal(t, Entity{}, backing[:2][1], "backing array must not be written")
	assert.Equal(t, a.Platforms, b.Platforms)

	moved := Reduce(s, Tick{Elapsed: 1})
	assert.Equal(t, 0.0, s.Platforms[0].Pos.X)
	assert.Equal(t, 1.0, moved.Platforms[0].Pos.X)
}

func TestReduceIsDeterministic(t *testing.T) {
	events := []Event{
		Spawn{Request: SpawnRequest{Kind: KindPlatform, Row: 0, Size: Size{Height: 30, Width: 90}, Direction: DirLeftToRight, Speed: 1}},
		RegisterGoal{Index: 3},
		Spawn{Request: SpawnRequest{Kind: KindHazard, Row: 1, Size: Size{Height: 30, Width: 30}, Direction: DirRightToLeft, Speed: 4}},
	}
	for i := 1; i <= 40; i++ {
		events = append(events, Tick{Elapsed: i})
		if i%9 == 0 {
			events = append(events, Jump(1, 0, Hop))
		}
	}

	a := Fold(Initial(), events...)
	b := Fold(Initial(), events...)

	assert.Equal(t, a, b)
	assert.Equal(t, a.Snapshot(), b.Snapshot())
}
