package game

// Action is a player command decoded from one keystroke.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionOpen
	ActionFlag
	// ActionInterrupt is Ctrl-C. Raw mode stops the terminal from turning it
	// into SIGINT, so it arrives as a byte.
	ActionInterrupt
)

const keyCtrlC = 0x03

var actionNames = [...]string{"none", "up", "down", "left", "right", "open", "flag", "interrupt"}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// ParseKey maps a keystroke to an Action. Letters are case-insensitive and
// unknown keys map to ActionNone.
func ParseKey(b byte) Action {
	if b >= 'A' && b <= 'Z' {
		b += 'a' - 'A'
	}
	switch b {
	case 'w':
		return ActionUp
	case 's':
		return ActionDown
	case 'a':
		return ActionLeft
	case 'd':
		return ActionRight
	case ' ':
		return ActionOpen
	case 'f':
		return ActionFlag
	case keyCtrlC:
		return ActionInterrupt
	default:
		return ActionNone
	}
}
