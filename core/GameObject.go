package core

// Rect is an axis-aligned bounding box in arena units.
type Rect struct {
	X, Y float64
	W, H float64
}

func (r Rect) Right() float64 {
	return r.X + r.W
}

func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// Overlaps reports whether r and other intersect. Touching edges count.
func (r Rect) Overlaps(other Rect) bool {
	if r.X > other.Right() || other.X > r.Right() {
		return false
	}
	if r.Y > other.Bottom() || other.Y > r.Bottom() {
		return false
	}
	return true
}

type Ball struct {
	Rect
	VelX, VelY float64
}

func (b *Ball) Move() {
	b.X += b.VelX
	b.Y += b.VelY
}

type Player struct {
	Paddle   Rect
	MoveUp   bool
	MoveDown bool
	Score    int
}

// respondToKeyboard moves the paddle according to the held input flags.
// Both flags held cancel each other out.
func (p *Player) respondToKeyboard() {
	if p.MoveUp {
		p.Paddle.Y -= PaddleSpeed
	}
	if p.MoveDown {
		p.Paddle.Y += PaddleSpeed
	}
}
