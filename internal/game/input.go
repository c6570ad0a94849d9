package game

import (
	"chosenoffset.com/raycaster/internal/core/movement"
	"chosenoffset.com/raycaster/internal/render"
)

// keyBindings maps each movement action to the keys that trigger it.
var keyBindings = map[movement.Action][]render.Key{
	movement.ActionForward:     {render.KeyW, render.KeyUp},
	movement.ActionBack:        {render.KeyS, render.KeyDown},
	movement.ActionStrafeLeft:  {render.KeyA},
	movement.ActionStrafeRight: {render.KeyD},
	movement.ActionTurnLeft:    {render.KeyLeft},
	movement.ActionTurnRight:   {render.KeyRight},
}

// IntentFromInput snapshots the held keys as a movement intent.
func IntentFromInput(input render.InputManager) movement.Intent {
	return movement.IntentFrom(func(a movement.Action) bool {
		for _, key := range keyBindings[a] {
			if input.IsKeyPressed(key) {
				return true
			}
		}
		return false
	})
}
