package core

// Action is one of the four logical paddle controls.
type Action int

const (
	ActionNone Action = iota
	Player1Up
	Player1Down
	Player2Up
	Player2Down
)

func (a Action) String() string {
	switch a {
	case Player1Up:
		return "Player1Up"
	case Player1Down:
		return "Player1Down"
	case Player2Up:
		return "Player2Up"
	case Player2Down:
		return "Player2Down"
	}
	return "None"
}

// KeyMap maps host key identifiers to actions.
type KeyMap map[string]Action

// DefaultKeyMap uses browser KeyboardEvent.code names.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		"KeyW":      Player1Up,
		"KeyS":      Player1Down,
		"ArrowUp":   Player2Up,
		"ArrowDown": Player2Down,
	}
}

// Lookup returns ActionNone for codes with no binding.
func (km KeyMap) Lookup(code string) Action {
	if a, ok := km[code]; ok {
		return a
	}
	return ActionNone
}

// BindKeys replaces the key bindings. A nil map restores DefaultKeyMap.
func (g *Game) BindKeys(km KeyMap) {
	if km == nil {
		km = DefaultKeyMap()
	}
	g.keys = km
}

func (g *Game) HandleKeyDown(code string) {
	g.Press(g.keys.Lookup(code))
}

func (g *Game) HandleKeyUp(code string) {
	g.Release(g.keys.Lookup(code))
}

func (g *Game) Press(a Action) {
	g.setFlag(a, true)
}

func (g *Game) Release(a Action) {
	g.setFlag(a, false)
}

func (g *Game) setFlag(a Action, held bool) {
	switch a {
	case Player1Up:
		g.p1.MoveUp = held
	case Player1Down:
		g.p1.MoveDown = held
	case Player2Up:
		g.p2.MoveUp = held
	case Player2Down:
		g.p2.MoveDown = held
	}
}
