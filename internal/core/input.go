package core

// Action is a player intent decoded from a key press.
type Action uint8

const (
	ActionNone    Action = iota
	ActionJump           // Jump, or double jump in the air
	ActionConfirm        // Start a run from the title screen
	ActionBack           // Leave to the title screen
	ActionRestart        // New run after game over
	ActionQuit           // Exit the program
	ActionPause          // Toggle pause
)

var actionNames = [...]string{
	ActionNone:    "none",
	ActionJump:    "jump",
	ActionConfirm: "confirm",
	ActionBack:    "back",
	ActionRestart: "restart",
	ActionQuit:    "quit",
	ActionPause:   "pause",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// InputFrame is the set of actions pressed during one tick. The zero
// value is an empty frame.
type InputFrame struct {
	bits uint16
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records a.
func (f *InputFrame) Set(a Action) {
	f.bits |= 1 << a
}

// Has reports whether a was pressed this tick.
func (f InputFrame) Has(a Action) bool {
	return f.bits&(1<<a) != 0
}

// Clear empties the frame for the next tick.
func (f *InputFrame) Clear() {
	f.bits = 0
}
