package frogger

// InBounds reports whether a scrolling entity's horizontal span still touches
// the canvas.
func InBounds(e Entity) bool {
	return e.Pos.X-e.Size.Width <= UpperBound &&
		e.Pos.X+e.Size.Width >= LowerBound
}

// Overlaps reports whether the player's box, centred on p with a half-size of
// PlayerMargin, lies entirely inside e's rectangle. Containment, not
// intersection: a player half on a log is not riding it.
func Overlaps(p Position, e Entity) bool {
	left, top, right, bottom := e.Rect()
	return top <= p.Y-PlayerMargin && p.Y+PlayerMargin <= bottom &&
		left <= p.X-PlayerMargin && p.X+PlayerMargin <= right
}

// firstOverlap returns the first entity in es that contains the player, in
// collection order. Platforms and hazards are appended in spawn order, so the
// first match is also the one with the lowest identifier.
func firstOverlap(p Position, es []Entity) (Entity, bool) {
	for _, e := range es {
		if Overlaps(p, e) {
			return e, true
		}
	}
	return Entity{}, false
}

// partition splits es into in-bounds and expired entities, preserving order.
func partition(es []Entity) (active, expired []Entity) {
	for _, e := range es {
		if InBounds(e) {
			active = append(active, e)
		} else {
			expired = append(expired, e)
		}
	}
	return active, expired
}
