package game

import "math"

// Resolver detects and resolves ball/wall and ball/paddle contacts and
// reports scoring. It is called once per tick, after integration.
type Resolver struct {
	cfg Config
}

// NewResolver creates a resolver for the given configuration.
func NewResolver(cfg Config) *Resolver {
	return &Resolver{cfg: cfg}
}

// DetectAndResolve runs one collision pass: wall bounce, paddle bounce,
// then the scoring check. The returned events are in resolution order.
// At most one score event is produced per call; the right-side check
// runs first, so a geometrically impossible double score would resolve
// in favor of the right side.
func (r *Resolver) DetectAndResolve(ball *Ball, left, right *Paddle) []Event {
	var events []Event

	if ev, ok := r.resolveWalls(ball); ok {
		events = append(events, ev)
	}

	for _, p := range []*Paddle{left, right} {
		if ev, ok := r.resolvePaddle(ball, p); ok {
			events = append(events, ev)
			break // one paddle contact per tick
		}
	}

	if ev, ok := r.checkScore(ball); ok {
		events = append(events, ev)
	}

	return events
}

// resolveWalls reflects the ball off the top and bottom walls with
// energy loss, clamping the position back onto the boundary. Single-step
// clamping only; at the target tick rate the ball cannot tunnel.
func (r *Resolver) resolveWalls(ball *Ball) (Event, bool) {
	diameter := 2 * ball.Radius

	if ball.Position.Y <= 0 && ball.Velocity.Y < 0 {
		ball.Velocity.Y = -ball.Velocity.Y * r.cfg.WallDamping
		ball.Position.Y = 0
		ball.SyncBounds()
		return Event{Kind: EventWallHit}, true
	}

	if ball.Position.Y+diameter >= r.cfg.FieldHeight && ball.Velocity.Y > 0 {
		ball.Velocity.Y = -ball.Velocity.Y * r.cfg.WallDamping
		ball.Position.Y = r.cfg.FieldHeight - diameter
		ball.SyncBounds()
		return Event{Kind: EventWallHit}, true
	}

	return Event{}, false
}

// resolvePaddle rebuilds the ball velocity from the hit position: the
// contact point picks a bounce angle inside the ±MaxBounceAngle cone,
// the paddle adds energy, and the hit zone applies its modifier.
func (r *Resolver) resolvePaddle(ball *Ball, p *Paddle) (Event, bool) {
	if !ball.Bounds().Overlaps(p.Bounds()) {
		return Event{}, false
	}

	// Only resolve when the ball is moving into the paddle, otherwise a
	// contact would re-trigger while the ball leaves.
	if p.Side == SideLeft && ball.Velocity.X > 0 {
		return Event{}, false
	}
	if p.Side == SideRight && ball.Velocity.X < 0 {
		return Event{}, false
	}

	hitPos := (ball.Center().Y - p.Position.Y) / p.Height
	if hitPos < 0 {
		hitPos = 0
	}
	if hitPos > 1 {
		hitPos = 1
	}

	angle := -r.cfg.MaxBounceAngle + 2*r.cfg.MaxBounceAngle*hitPos
	speed := ball.Velocity.Length() * r.cfg.PaddleBounceGain

	dir := 1.0
	if p.Side == SideRight {
		dir = -1.0
	}
	ball.Velocity.X = dir * speed * math.Cos(angle)
	ball.Velocity.Y = speed * math.Sin(angle)

	ball.Spin = (hitPos - 0.5) * 2

	zone := ClassifyHit(hitPos)
	switch zone {
	case ZoneTopEdge:
		ball.Velocity.Y -= r.cfg.EdgeKick
	case ZoneBottomEdge:
		ball.Velocity.Y += r.cfg.EdgeKick
	case ZoneSweetSpot:
		ball.Velocity = ball.Velocity.Scale(r.cfg.SweetSpotBoost)
	}

	// Snap the ball just outside the paddle so the same contact cannot
	// resolve again next tick.
	if p.Side == SideLeft {
		ball.Position.X = p.Bounds().Right()
	} else {
		ball.Position.X = p.Position.X - 2*ball.Radius
	}
	ball.SyncBounds()
	p.TriggerFlash()

	return Event{Kind: EventPaddleHit, Side: p.Side, Zone: zone}, true
}

// checkScore reports a point when the ball has fully left the field.
func (r *Resolver) checkScore(ball *Ball) (Event, bool) {
	if ball.Position.X+2*ball.Radius < 0 {
		return Event{Kind: EventScore, Side: SideRight}, true
	}
	if ball.Position.X > r.cfg.FieldWidth {
		return Event{Kind: EventScore, Side: SideLeft}, true
	}
	return Event{}, false
}
