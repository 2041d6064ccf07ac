package frogger

// Points awarded by the scoring rules.
const (
	RidePoints = 1
	GoalPoints = 100
)

// withScore returns s with the score set to score and the high score raised
// to match if it was exceeded.
func (s State) withScore(score int) State {
	s.Score = score
	s.HighScore = max(s.HighScore, score)
	return s
}

// rideBonus is the score change when the player is found on a platform at the
// end of a tick. Only the tick that mounts the platform scores.
func rideBonus(wasRiding bool) int {
	if wasRiding {
		return 0
	}
	return RidePoints
}
