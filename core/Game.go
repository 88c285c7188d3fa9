package core

import (
	"PongArena/logger"
	"fmt"
	"math"
)

const PaddleInset = 120  // distance from the side walls to each paddle
const PaddleWidth = 20   // paddle width
const PaddleHeight = 120 // paddle height
const BallSize = 20      // ball side length
const ServeSpeed = 7.0   // horizontal ball speed after each reset
const PaddleSpeed = 6.0  // paddle movement per tick
const DeflectionScale = 30.0

// Game is the authoritative state of one match.
// It is not safe for concurrent use; the host serializes all calls.
type Game struct {
	width, height float64

	ball Ball
	p1   Player
	p2   Player

	started bool
	host    Host
	keys    KeyMap
}

// Snapshot is a copy of the game state for hosts and tests.
type Snapshot struct {
	Width, Height float64
	Ball          Ball
	Player1       Player
	Player2       Player
	Started       bool
}

// NewGame creates a frozen game. Nothing moves until Start is called.
// Arena dimensions are not validated.
func NewGame(width, height float64, host Host) *Game {
	if host == nil {
		host = HostFuncs{}
	}
	g := &Game{
		width:  width,
		height: height,
		host:   host,
		keys:   DefaultKeyMap(),
	}
	g.reset()
	return g
}

func (g *Game) Start() {
	if g.started {
		return
	}
	g.started = true
	logger.Log.Info(fmt.Sprintf(logger.GameStartedMsg, g.width, g.height))
}

func (g *Game) Started() bool {
	return g.started
}

func (g *Game) Score() (int, int) {
	return g.p1.Score, g.p2.Score
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Width:   g.width,
		Height:  g.height,
		Ball:    g.ball,
		Player1: g.p1,
		Player2: g.p2,
		Started: g.started,
	}
}

// reset places the paddles and the ball for a new round.
// The ball keeps serving in the direction it was travelling.
func (g *Game) reset() {
	g.p1.Paddle = Rect{
		X: PaddleInset,
		Y: g.height/2 - PaddleHeight/2,
		W: PaddleWidth,
		H: PaddleHeight,
	}
	g.p2.Paddle = g.p1.Paddle
	g.p2.Paddle.X = g.width - PaddleInset - PaddleWidth

	g.ball.Rect = Rect{
		X: g.width/2 - BallSize/2,
		Y: g.height/2 - BallSize/2,
		W: BallSize,
		H: BallSize,
	}
	g.ball.VelX = math.Copysign(ServeSpeed, g.ball.VelX)
	g.ball.VelY = 0
}

// DoPhysics advances the game by one tick.
func (g *Game) DoPhysics() {
	if !g.started {
		return
	}

	g.p1.respondToKeyboard()
	g.p2.respondToKeyboard()

	g.ball.Move()

	// no clamping: the reflected velocity carries the ball back next tick
	if g.ball.Y < 0 || g.ball.Bottom() > g.height {
		g.ball.VelY = -g.ball.VelY
	}

	Collide(&g.ball, g.p1.Paddle)
	Collide(&g.ball, g.p2.Paddle)

	if g.ball.X < 0 {
		g.p2.Score += 1
		g.scored()
	} else if g.ball.Right() > g.width {
		g.p1.Score += 1
		g.scored()
	}
}

func (g *Game) scored() {
	g.reset()
	logger.Log.Debug(fmt.Sprintf(logger.GoalScoredMsg, g.p1.Score, g.p2.Score))
	g.host.SetScoreText(ScoreText(g.p1.Score, g.p2.Score))
}

// DrawAnimationFrame emits the draw calls for the current state. It never mutates the game.
func (g *Game) DrawAnimationFrame() {
	g.host.DrawRectangle(0, 0, g.width, g.height, BackgroundColor)
	g.draw(g.ball.Rect)
	g.draw(g.p1.Paddle)
	g.draw(g.p2.Paddle)
}

func (g *Game) draw(r Rect) {
	g.host.DrawRectangle(r.X, r.Y, r.W, r.H, ForegroundColor)
}
