package term

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/raycaster/internal/core/movement"
)

// DefaultHoldTimeout is how long a key counts as held after its last event.
// Terminals report key repeats but never releases.
const DefaultHoldTimeout = 150 * time.Millisecond

// KeyState tracks which actions are held. The event goroutine presses keys
// and the tick goroutine reads them.
type KeyState struct {
	mu      sync.Mutex
	seen    map[movement.Action]time.Time
	timeout time.Duration
}

// NewKeyState creates a key state with the given hold timeout.
func NewKeyState(timeout time.Duration) *KeyState {
	if timeout <= 0 {
		timeout = DefaultHoldTimeout
	}
	return &KeyState{seen: make(map[movement.Action]time.Time), timeout: timeout}
}

// Press records an event for a at now.
func (k *KeyState) Press(a movement.Action, now time.Time) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.seen[a] = now
}

// Release forgets a.
func (k *KeyState) Release(a movement.Action) {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.seen, a)
}

// Intent snapshots the actions held at now.
func (k *KeyState) Intent(now time.Time) movement.Intent {
	k.mu.Lock()
	defer k.mu.Unlock()
	return movement.IntentFrom(func(a movement.Action) bool {
		t, ok := k.seen[a]
		return ok && now.Sub(t) < k.timeout
	})
}

// opposite returns the action that cancels a.
func opposite(a movement.Action) movement.Action {
	switch a {
	case movement.ActionForward:
		return movement.ActionBack
	case movement.ActionBack:
		return movement.ActionForward
	case movement.ActionStrafeLeft:
		return movement.ActionStrafeRight
	case movement.ActionStrafeRight:
		return movement.ActionStrafeLeft
	case movement.ActionTurnLeft:
		return movement.ActionTurnRight
	default:
		return movement.ActionTurnLeft
	}
}

// command is what a key event asks the frontend to do.
type command int

const (
	cmdNone command = iota
	cmdQuit
	cmdToggleView
	cmdMove
)

// translateKey maps a terminal key to a command and, for cmdMove, its action.
func translateKey(key tcell.Key, r rune) (command, movement.Action) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return cmdQuit, 0
	case tcell.KeyTab:
		return cmdToggleView, 0
	case tcell.KeyUp:
		return cmdMove, movement.ActionForward
	case tcell.KeyDown:
		return cmdMove, movement.ActionBack
	case tcell.KeyLeft:
		return cmdMove, movement.ActionTurnLeft
	case tcell.KeyRight:
		return cmdMove, movement.ActionTurnRight
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return cmdQuit, 0
		case 'w', 'W':
			return cmdMove, movement.ActionForward
		case 's', 'S':
			return cmdMove, movement.ActionBack
		case 'a', 'A':
			return cmdMove, movement.ActionStrafeLeft
		case 'd', 'D':
			return cmdMove, movement.ActionStrafeRight
		}
	}
	return cmdNone, 0
}
