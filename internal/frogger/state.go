package frogger

// State is the single aggregate of the simulation. Reduce never mutates a
// State or the slices it holds; treat every field as read-only.
type State struct {
	Elapsed   int      // last processed timer marker
	Player    Entity   // always present
	Platforms []Entity // live platforms, spawn order
	Hazards   []Entity // live hazards, spawn order
	Goals     []Entity // registered goals not yet reached, registration order

	// ToRemove lists entities that left the simulation during the last
	// transition. It is a delta, replaced on every call to Reduce, and
	// never holds the same identifier twice.
	ToRemove []Entity

	SpawnCounter   int
	Score          int
	HighScore      int
	RidingPlatform bool // player stood on a platform at the end of the previous tick
	GoalsReached   int
	IsGameOver     bool
}

// Initial returns the state at process start.
func Initial() State {
	return State{Player: NewPlayer()}
}

// live returns every platform, hazard and goal currently in play, without duplicates.
func (s State) live() []Entity {
	return dedupe(s.Platforms, s.Hazards, s.Goals)
}

// dedupe concatenates groups into a fresh slice, keeping the first entity
// seen for each identifier.
func dedupe(groups ...[]Entity) []Entity {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	if n == 0 {
		return nil
	}
	seen := make(map[string]struct{}, n)
	out := make([]Entity, 0, n)
	for _, g := range groups {
		for _, e := range g {
			if _, ok := seen[e.ID]; ok {
				continue
			}
			seen[e.ID] = struct{}{}
			out = append(out, e)
		}
	}
	return out
}

// Snapshot is a flat, comparable summary of a State used for determinism
// checks and replay reports.
type Snapshot struct {
	Elapsed        int
	PlayerX        float64
	PlayerY        float64
	Platforms      int
	Hazards        int
	Goals          int
	SpawnCounter   int
	Score          int
	HighScore      int
	GoalsReached   int
	RidingPlatform bool
	IsGameOver     bool
}

// Snapshot returns the summary of s.
func (s State) Snapshot() Snapshot {
	return Snapshot{
		Elapsed:        s.Elapsed,
		PlayerX:        s.Player.Pos.X,
		PlayerY:        s.Player.Pos.Y,
		Platforms:      len(s.Platforms),
		Hazards:        len(s.Hazards),
		Goals:          len(s.Goals),
		SpawnCounter:   s.SpawnCounter,
		Score:          s.Score,
		HighScore:      s.HighScore,
		GoalsReached:   s.GoalsReached,
		RidingPlatform: s.RidingPlatform,
		IsGameOver:     s.IsGameOver,
	}
}
