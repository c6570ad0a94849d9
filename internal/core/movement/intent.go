package movement

// Action is an abstract input a frontend binds its keys to.
type Action int

const (
	ActionForward Action = iota
	ActionBack
	ActionStrafeLeft
	ActionStrafeRight
	ActionTurnLeft
	ActionTurnRight
)

// IntentFrom builds an intent from the set of held actions. Opposing actions
// cancel out.
func IntentFrom(held func(Action) bool) Intent {
	var in Intent
	if held(ActionForward) {
		in.Forward++
	}
	if held(ActionBack) {
		in.Forward--
	}
	if held(ActionStrafeLeft) {
		in.Strafe++
	}
	if held(ActionStrafeRight) {
		in.Strafe--
	}
	if held(ActionTurnLeft) {
		in.Turn++
	}
	if held(ActionTurnRight) {
		in.Turn--
	}
	return in
}
