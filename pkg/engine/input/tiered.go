package input

import (
	"errors"
	"sort"
)

// ErrReservedCode is returned when rebinding would take over a reserved key
var ErrReservedCode = errors.New("code is reserved")

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Held actions, sampled every frame
	ActionTurnLeft
	ActionTurnRight
	ActionMoveForward
	ActionMoveBackward

	// One-shot actions, delivered as events
	ActionQuit
	ActionToggleOverlay
	ActionToggleHUD
	ActionScreenshot
	ActionDebugMapDump
)

// IsHeld returns true for actions that stay active while the key is down.
// All other actions fire once per key press.
func (a Action) IsHeld() bool {
	return a >= ActionTurnLeft && a <= ActionMoveBackward
}

// bindings maps raw codes to actions.
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Turning and movement (arrows, WASD)
	"arrow_left":  ActionTurnLeft,
	"a":           ActionTurnLeft,
	"arrow_right": ActionTurnRight,
	"d":           ActionTurnRight,
	"arrow_up":    ActionMoveForward,
	"w":           ActionMoveForward,
	"arrow_down":  ActionMoveBackward,
	"s":           ActionMoveBackward,

	// Quit
	"q":      ActionQuit,
	"escape": ActionQuit,

	// Debug views
	"o": ActionToggleOverlay,
	"h": ActionToggleHUD,

	// Screenshot
	"p":   ActionScreenshot,
	"f12": ActionScreenshot,

	// Map dump
	"m":  ActionDebugMapDump,
	"f9": ActionDebugMapDump,

	"gamepad_dpad_left":  ActionTurnLeft,
	"gamepad_dpad_right": ActionTurnRight,
	"gamepad_dpad_up":    ActionMoveForward,
	"gamepad_dpad_down":  ActionMoveBackward,
	"gamepad_b":          ActionQuit,
}

// MapToAction returns the action bound to a raw code, or ActionNone.
func MapToAction(code string) Action {
	if act, ok := bindings[code]; ok {
		return act
	}
	return ActionNone
}

// AllActions returns every action except ActionNone, in declaration order.
func AllActions() []Action {
	actions := make([]Action, 0, int(ActionDebugMapDump))
	for a := ActionTurnLeft; a <= ActionDebugMapDump; a++ {
		actions = append(actions, a)
	}
	return actions
}

// ActionKey returns the upper-case identifier used for an action in
// configuration, e.g. TURN_LEFT.
func ActionKey(a Action) string {
	switch a {
	case ActionTurnLeft:
		return "TURN_LEFT"
	case ActionTurnRight:
		return "TURN_RIGHT"
	case ActionMoveForward:
		return "MOVE_FORWARD"
	case ActionMoveBackward:
		return "MOVE_BACKWARD"
	case ActionQuit:
		return "QUIT"
	case ActionToggleOverlay:
		return "TOGGLE_OVERLAY"
	case ActionToggleHUD:
		return "TOGGLE_HUD"
	case ActionScreenshot:
		return "SCREENSHOT"
	case ActionDebugMapDump:
		return "MAP_DUMP"
	default:
		return "NONE"
	}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionTurnLeft:
		return "Turn Left"
	case ActionTurnRight:
		return "Turn Right"
	case ActionMoveForward:
		return "Move Forward"
	case ActionMoveBackward:
		return "Move Backward"
	case ActionQuit:
		return "Quit"
	case ActionToggleOverlay:
		return "Toggle Overlay"
	case ActionToggleHUD:
		return "Toggle HUD"
	case ActionScreenshot:
		return "Screenshot"
	case ActionDebugMapDump:
		return "Map Dump"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single code.
// The arrow keys and escape stay bound so the game can always be driven and
// left; asking for one of them returns ErrReservedCode and changes nothing.
func SetSingleBinding(action Action, code string) error {
	if isReservedCode(code) {
		return ErrReservedCode
	}
	for c, a := range bindings {
		if isReservedCode(c) {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" {
		bindings[code] = action
	}
	return nil
}

func isReservedCode(code string) bool {
	switch code {
	case "arrow_up", "arrow_down", "arrow_left", "arrow_right", "escape":
		return true
	}
	return false
}
