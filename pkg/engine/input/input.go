// Package input turns device key codes into game actions.
//
// Backends report two things per frame: a list of Events for one-shot
// actions (quit, screenshot, ...) and a State holding the actions whose keys
// are currently held down (turning and movement).
package input

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// EventKind classifies a discrete input event.
type EventKind int

const (
	EventNone EventKind = iota
	EventQuit
	EventAction
)

// Event is a single discrete input event drained from a backend's queue.
type Event struct {
	Kind   EventKind
	Action Action
}

// QuitEvent is the event a backend emits when the window is closed.
var QuitEvent = Event{Kind: EventQuit, Action: ActionQuit}

// ActionEvent wraps a one-shot action. ActionQuit becomes a quit event.
func ActionEvent(a Action) Event {
	if a == ActionQuit {
		return QuitEvent
	}
	return Event{Kind: EventAction, Action: a}
}

// HasQuit returns true if any event in the list requests quitting.
func HasQuit(events []Event) bool {
	for _, ev := range events {
		if ev.Kind == EventQuit {
			return true
		}
	}
	return false
}

// State is the set of held actions for one frame.
// The zero value is an empty, read-only state.
type State struct {
	held mapset.Set[Action]
	init bool
}

// NewState creates a state with the given actions held.
func NewState(actions ...Action) State {
	s := State{held: mapset.New[Action](), init: true}
	for _, a := range actions {
		s.Press(a)
	}
	return s
}

// Press marks a held action as active. One-shot actions are ignored.
func (s State) Press(a Action) {
	if !s.init || !a.IsHeld() {
		return
	}
	s.held.Put(a)
}

// Has returns true if the action is held.
func (s State) Has(a Action) bool {
	if !s.init {
		return false
	}
	return s.held.Has(a)
}

// Len returns the number of held actions.
func (s State) Len() int {
	if !s.init {
		return 0
	}
	return s.held.Size()
}

// Actions returns the held actions in ascending order.
func (s State) Actions() []Action {
	var out []Action
	if !s.init {
		return out
	}
	s.held.Each(func(a Action) {
		out = append(out, a)
	})
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// StateFromCodes builds the held state from the codes of all keys currently down.
func StateFromCodes(codes []string) State {
	s := NewState()
	for _, code := range codes {
		s.Press(MapToAction(code))
	}
	return s
}

// EventsFromCodes converts freshly pressed codes to one-shot events.
// Codes bound to held actions or to nothing are skipped.
func EventsFromCodes(codes []string) []Event {
	var events []Event
	for _, code := range codes {
		act := MapToAction(code)
		if act == ActionNone || act.IsHeld() {
			continue
		}
		events = append(events, ActionEvent(act))
	}
	return events
}
