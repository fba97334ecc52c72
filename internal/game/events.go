package game

// HitZone classifies where on a paddle's height a contact occurred,
// from the normalized hit position h in [0,1] (0 = paddle top):
// the outer 20% on each end is an edge, the center band within 0.1 of
// the middle is the sweet spot, everything else is normal. The four
// zones partition [0,1] with no gaps or overlaps.
type HitZone int

const (
	ZoneNormal HitZone = iota
	ZoneTopEdge
	ZoneBottomEdge
	ZoneSweetSpot
)

func (z HitZone) String() string {
	switch z {
	case ZoneTopEdge:
		return "top-edge"
	case ZoneBottomEdge:
		return "bottom-edge"
	case ZoneSweetSpot:
		return "sweet-spot"
	default:
		return "normal"
	}
}

// ClassifyHit maps a normalized hit position to its zone.
func ClassifyHit(h float64) HitZone {
	switch {
	case h < 0.2:
		return ZoneTopEdge
	case h > 0.8:
		return ZoneBottomEdge
	case h >= 0.4 && h <= 0.6:
		return ZoneSweetSpot
	default:
		return ZoneNormal
	}
}

// EventKind tags the collision event variants.
type EventKind int

const (
	EventWallHit EventKind = iota
	EventPaddleHit
	EventScore
)

// Event is a transient collision or scoring notification. Side and Zone
// are meaningful for paddle hits; Side alone for scores (the side that
// scored the point).
type Event struct {
	Kind EventKind
	Side Side
	Zone HitZone
}

// EventQueue collects events raised during a tick. The presentation
// layer drains it once per tick; each event is delivered at most once.
type EventQueue struct {
	events []Event
}

// Emit appends an event to the queue.
func (q *EventQueue) Emit(ev Event) {
	q.events = append(q.events, ev)
}

// Drain returns all queued events and empties the queue.
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}

// Len returns the number of undrained events.
func (q *EventQueue) Len() int {
	return len(q.events)
}
