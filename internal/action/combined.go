package action

// Combined stacks two actions on one key. Every reaction forwards to
// first then second, unconditionally: there is no short-circuiting and
// no notion of one child consuming the event. The usual use is pairing a
// light behavior with a press behavior.
type Combined struct {
	first, second Action
}

// NewCombined composes two actions into one.
func NewCombined(first, second Action) *Combined {
	return &Combined{first: first, second: second}
}

// Combine folds any number of actions left to right into a single
// action. Zero actions yields nil; one is returned as-is.
func Combine(actions ...Action) Action {
	switch len(actions) {
	case 0:
		return nil
	case 1:
		return actions[0]
	}
	combined := actions[0]
	for _, a := range actions[1:] {
		combined = NewCombined(combined, a)
	}
	return combined
}

func (c *Combined) OnPress(k Key) {
	c.first.OnPress(k)
	c.second.OnPress(k)
}

func (c *Combined) OnRelease(k Key) {
	c.first.OnRelease(k)
	c.second.OnRelease(k)
}

func (c *Combined) OnHold(k Key) {
	c.first.OnHold(k)
	c.second.OnHold(k)
}

func (c *Combined) OnUpdate(k Key) {
	c.first.OnUpdate(k)
	c.second.OnUpdate(k)
}
