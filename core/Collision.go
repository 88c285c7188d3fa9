package core

import "math"

// Collide bounces the ball off paddle if the two overlap and reports whether it did.
//
// The ball keeps its speed and always reverses its horizontal direction. The
// vertical component grows with the distance between the ball's centre and the
// paddle's centre, so hits near the paddle's ends leave at steeper angles.
func Collide(ball *Ball, paddle Rect) bool {
	if !ball.Overlaps(paddle) {
		return false
	}

	mag := math.Hypot(ball.VelX, ball.VelY)
	k := (ball.CenterY() - paddle.CenterY()) / DeflectionScale
	d := 1 / math.Sqrt(1+k*k)

	ball.VelX = -math.Copysign(mag*d, ball.VelX)
	ball.VelY = k * mag * d
	return true
}
