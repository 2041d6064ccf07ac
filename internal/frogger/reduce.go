package frogger

// Reduce folds one event into s and returns the next state.
// It is total: every event produces a state and s is left untouched.
func Reduce(s State, e Event) State {
	if _, ok := e.(Restart); ok {
		return restart(s)
	}
	if s.IsGameOver {
		s.ToRemove = s.live()
		return s
	}

	switch ev := e.(type) {
	case Tick:
		return Step(s, ev.Elapsed)
	case Move:
		return move(s, ev.Delta)
	case Spawn:
		return spawn(s, ev.Request)
	case RegisterGoal:
		return registerGoal(s, ev.Index)
	default:
		// Unreachable: Event is sealed and Restart is handled above.
		s.ToRemove = nil
		return s
	}
}

// Fold applies events to s in order.
func Fold(s State, events ...Event) State {
	for _, e := range events {
		s = Reduce(s, e)
	}
	return s
}

func restart(s State) State {
	next := Initial()
	next.HighScore = s.HighScore
	next.ToRemove = s.live()
	return next
}

func move(s State, m Motion) State {
	s.Player = AdvanceBy(s.Player, m)
	s.ToRemove = nil
	if s.RidingPlatform {
		s = s.withScore(s.Score + RidePoints)
	}
	return s
}

func spawn(s State, r SpawnRequest) State {
	e := r.Build(s.SpawnCounter)
	s.SpawnCounter++
	s.ToRemove = nil
	switch e.Kind {
	case KindPlatform:
		s.Platforms = appendEntity(s.Platforms, e)
	default:
		s.Hazards = appendEntity(s.Hazards, e)
	}
	return s
}

func registerGoal(s State, index int) State {
	g := Goal(index)
	s.ToRemove = nil
	for _, live := range s.Goals {
		if live.ID == g.ID {
			return s
		}
	}
	s.Goals = appendEntity(s.Goals, g)
	return s
}

// appendEntity returns a new slice holding es followed by e, so the backing
// array of a previous state is never written to.
func appendEntity(es []Entity, e Entity) []Entity {
	out := make([]Entity, len(es), len(es)+1)
	copy(out, es)
	return append(out, e)
}
