package game

// Body tracks the runner's vertical motion relative to the ground line.
// Y is 0 on the ground and grows negative with height; Vel is added to Y
// once per tick (explicit Euler, no sub-stepping).
type Body struct {
	Y        float64
	Vel      float64
	Grounded bool
}

// NewBody returns a body resting on the ground.
func NewBody() Body {
	return Body{Grounded: true}
}

// Jump applies the jump impulse if the body is grounded.
// Returns false (no-op) while airborne: there is no double jump.
func (b *Body) Jump(impulse float64) bool {
	if !b.Grounded {
		return false
	}
	b.Vel = impulse
	b.Grounded = false
	return true
}

// Step advances the body by one tick: velocity accumulates gravity
// (capped at maxFall), then position accumulates velocity. Reaching the
// ground clamps position to 0, zeroes velocity and re-grounds the body.
func (b *Body) Step(gravity, maxFall float64) {
	if b.Grounded {
		return
	}

	b.Vel += gravity
	if b.Vel > maxFall {
		b.Vel = maxFall
	}
	b.Y += b.Vel

	if b.Y >= 0 {
		b.Y = 0
		b.Vel = 0
		b.Grounded = true
	}
}

// Height returns how many whole cells the body is above the ground.
func (b Body) Height() int {
	return int(-b.Y)
}
