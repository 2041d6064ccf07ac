package frogger

// Outcome is the single result governing one tick.
type Outcome int

const (
	OutcomeOrdinary Outcome = iota
	OutcomeDeath
	OutcomeRide
	OutcomeGoal
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeOrdinary:
		return "ordinary"
	case OutcomeDeath:
		return "death"
	case OutcomeRide:
		return "ride"
	case OutcomeGoal:
		return "goal"
	default:
		return "unknown"
	}
}

// survey is everything a tick learns about the world before deciding its outcome.
type survey struct {
	activePlatforms  []Entity
	expiredPlatforms []Entity
	activeHazards    []Entity
	expiredHazards   []Entity

	ride    Entity
	riding  bool
	hit     bool
	goal    Entity
	reached bool
	goals   []Entity // goals left after removing the reached one
}

func inspect(s State) survey {
	var w survey
	w.activePlatforms, w.expiredPlatforms = partition(s.Platforms)
	w.activeHazards, w.expiredHazards = partition(s.Hazards)

	p := s.Player.Pos
	w.ride, w.riding = firstOverlap(p, w.activePlatforms)
	_, w.hit = firstOverlap(p, w.activeHazards)
	w.goal, w.reached = firstOverlap(p, s.Goals)

	w.goals = make([]Entity, 0, len(s.Goals))
	for _, g := range s.Goals {
		if w.reached && g.ID == w.goal.ID {
			continue
		}
		w.goals = append(w.goals, g)
	}
	return w
}

// outcome applies the fixed priority: death, ride, goal, ordinary.
func (w survey) outcome(p Position) Outcome {
	switch {
	case w.hit || (InRiver(p) && !w.riding && !w.reached):
		return OutcomeDeath
	case w.riding:
		return OutcomeRide
	case w.reached:
		return OutcomeGoal
	default:
		return OutcomeOrdinary
	}
}

// Classify reports which outcome the next tick would produce for s.
func Classify(s State) Outcome {
	return inspect(s).outcome(s.Player.Pos)
}

// Step advances the world by one timer pulse.
func Step(s State, elapsed int) State {
	w := inspect(s)

	switch w.outcome(s.Player.Pos) {
	case OutcomeDeath:
		s.IsGameOver = true
		s.ToRemove = nil
		return s

	case OutcomeRide:
		s.Player = AdvanceBy(s.Player, w.ride.Motion)
		s = s.withScore(s.Score + rideBonus(s.RidingPlatform))
		s.RidingPlatform = true

	case OutcomeGoal:
		s.Player = NewPlayer()
		s.Goals = w.goals
		s = s.withScore(s.Score + GoalPoints)
		s.GoalsReached++
		s.RidingPlatform = false

	case OutcomeOrdinary:
		s.RidingPlatform = false
	}

	s.Platforms = advanceAll(w.activePlatforms)
	s.Hazards = advanceAll(w.activeHazards)
	if w.reached {
		s.ToRemove = dedupe(w.expiredPlatforms, w.expiredHazards, []Entity{w.goal})
	} else {
		s.ToRemove = dedupe(w.expiredPlatforms, w.expiredHazards)
	}
	s.Elapsed = elapsed
	return s
}

// advanceAll moves every entity one step into a fresh slice.
func advanceAll(es []Entity) []Entity {
	if len(es) == 0 {
		return nil
	}
	out := make([]Entity, len(es))
	for i, e := range es {
		out[i] = Advance(e)
	}
	return out
}
