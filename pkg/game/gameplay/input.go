package gameplay

import (
	engineinput "raycaster/pkg/engine/input"
	"raycaster/pkg/game/state"
)

// Requests are one-shot tools asked for during a frame. They run after the
// frame has been drawn so they see what the player saw.
type Requests struct {
	Screenshot bool
	MapDump    bool
}

// ProcessEvent applies a discrete input event to the game.
func ProcessEvent(g *state.Game, ev engineinput.Event, req *Requests) {
	switch ev.Kind {
	case engineinput.EventQuit:
		g.Quit()
		return
	case engineinput.EventNone:
		return
	}

	switch ev.Action {
	case engineinput.ActionQuit:
		g.Quit()
	case engineinput.ActionToggleOverlay:
		g.ShowOverlay = !g.ShowOverlay
	case engineinput.ActionToggleHUD:
		g.ShowHUD = !g.ShowHUD
	case engineinput.ActionScreenshot:
		req.Screenshot = true
	case engineinput.ActionDebugMapDump:
		req.MapDump = true
	}
}

// ProcessEvents applies events in order and stops at the first quit.
func ProcessEvents(g *state.Game, events []engineinput.Event) Requests {
	var req Requests
	for _, ev := range events {
		ProcessEvent(g, ev, &req)
		if !g.Running() {
			break
		}
	}
	return req
}
