package terminal

import "time"

// KeyHandler receives key transitions, e.g. *core.Game.
type KeyHandler interface {
	HandleKeyDown(code string)
	HandleKeyUp(code string)
}

// Keyboard turns the press-only events of a terminal into down/up transitions.
// A key counts as held until no repeat arrives for the hold window.
type Keyboard struct {
	handler KeyHandler
	hold    time.Duration
	held    map[string]time.Time
}

func NewKeyboard(handler KeyHandler, hold time.Duration) *Keyboard {
	return &Keyboard{
		handler: handler,
		hold:    hold,
		held:    make(map[string]time.Time),
	}
}

func (k *Keyboard) Press(name string, at time.Time) {
	if _, ok := k.held[name]; !ok {
		k.handler.HandleKeyDown(name)
	}
	k.held[name] = at
}

// Expire releases every key whose last press is at least one hold window old.
func (k *Keyboard) Expire(now time.Time) {
	for name, last := range k.held {
		if now.Sub(last) >= k.hold {
			delete(k.held, name)
			k.handler.HandleKeyUp(name)
		}
	}
}

func (k *Keyboard) ReleaseAll() {
	for name := range k.held {
		delete(k.held, name)
		k.handler.HandleKeyUp(name)
	}
}

func (k *Keyboard) Held(name string) bool {
	_, ok := k.held[name]
	return ok
}
