// Package schedule turns elapsed wall-clock time into the periodic events
// the frogger simulation consumes: ticks, lane spawns and goal registrations.
package schedule

import (
	"cmp"
	"slices"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/frogger"
)

// Pulse ordering at equal due time.
const (
	orderTick = iota
	orderPlatform
	orderGoal
	orderHazard
)

// cadence is one periodic source.
type cadence struct {
	interval int
	order    int
	fired    int
	lane     int // index into cfg.Lanes, or -1
}

// Scheduler emits events for a fixed set of cadences. It is not safe for
// concurrent use; the game loop owns it.
type Scheduler struct {
	cfg      config.FroggerConfig
	now      int
	tick     *cadence
	goal     *cadence
	cadences []*cadence
}

// New creates a scheduler for cfg. cfg should already be validated;
// cadences with a non-positive interval never fire.
func New(cfg config.FroggerConfig) *Scheduler {
	s := &Scheduler{cfg: cfg}
	s.tick = &cadence{interval: cfg.Timing.TickIntervalMs, order: orderTick, lane: -1}
	s.goal = &cadence{interval: cfg.Timing.GoalIntervalMs, order: orderGoal, lane: -1}
	s.cadences = append(s.cadences, s.tick, s.goal)
	for i, l := range cfg.Lanes {
		order := orderHazard
		if l.Kind == config.LanePlatform {
			order = orderPlatform
		}
		s.cadences = append(s.cadences, &cadence{interval: l.IntervalMs, order: order, lane: i})
	}
	return s
}

// Now returns the total time advanced since creation or the last Reset.
func (s *Scheduler) Now() int {
	return s.now
}

// Reset zeroes every accumulator.
func (s *Scheduler) Reset() {
	s.now = 0
	for _, c := range s.cadences {
		c.fired = 0
	}
}

type pulse struct {
	due   int
	order int
	lane  int
	event frogger.Event
}

// Advance moves the clock forward by ms and returns the events that fell
// due, ordered by due time. A cadence fires once per full interval.
func (s *Scheduler) Advance(ms int) []frogger.Event {
	if ms <= 0 {
		return nil
	}
	s.now += ms

	var pulses []pulse
	for _, c := range s.cadences {
		if c.interval <= 0 {
			continue
		}
		for due := (c.fired + 1) * c.interval; due <= s.now; due += c.interval {
			c.fired++
			pulses = append(pulses, pulse{
				due:   due,
				order: c.order,
				lane:  c.lane,
				event: s.eventFor(c),
			})
		}
	}

	slices.SortStableFunc(pulses, func(a, b pulse) int {
		if c := cmp.Compare(a.due, b.due); c != 0 {
			return c
		}
		if c := cmp.Compare(a.order, b.order); c != 0 {
			return c
		}
		return cmp.Compare(a.lane, b.lane)
	})

	events := make([]frogger.Event, len(pulses))
	for i, p := range pulses {
		events[i] = p.event
	}
	return events
}

// eventFor builds the event for the firing that was just counted on c.
func (s *Scheduler) eventFor(c *cadence) frogger.Event {
	switch {
	case c == s.tick:
		return frogger.Tick{Elapsed: c.fired}
	case c == s.goal:
		return frogger.RegisterGoal{Index: (c.fired - 1) % frogger.CatalogSize}
	default:
		return frogger.Spawn{Request: s.cfg.Lanes[c.lane].Request()}
	}
}
