package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "raycaster/pkg/engine/input"
)

// keyCodes maps Ebiten keys to the raw codes understood by the input package
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowLeft:  "arrow_left",
	ebiten.KeyArrowRight: "arrow_right",
	ebiten.KeyArrowUp:    "arrow_up",
	ebiten.KeyArrowDown:  "arrow_down",
	ebiten.KeyA:          "a",
	ebiten.KeyD:          "d",
	ebiten.KeyW:          "w",
	ebiten.KeyS:          "s",
	ebiten.KeyQ:          "q",
	ebiten.KeyEscape:     "escape",
	ebiten.KeyO:          "o",
	ebiten.KeyH:          "h",
	ebiten.KeyP:          "p",
	ebiten.KeyM:          "m",
	ebiten.KeyF9:         "f9",
	ebiten.KeyF12:        "f12",
}

// gamepadCodes maps standard gamepad buttons to raw codes
var gamepadCodes = map[ebiten.StandardGamepadButton]string{
	ebiten.StandardGamepadButtonLeftLeft:   "gamepad_dpad_left",
	ebiten.StandardGamepadButtonLeftRight:  "gamepad_dpad_right",
	ebiten.StandardGamepadButtonLeftTop:    "gamepad_dpad_up",
	ebiten.StandardGamepadButtonLeftBottom: "gamepad_dpad_down",
	ebiten.StandardGamepadButtonRightRight: "gamepad_b",
}

// keyPoller samples the keyboard and gamepads once per Update
type keyPoller struct {
	gamepads []ebiten.GamepadID
	codes    []string
}

func newKeyPoller() *keyPoller {
	return &keyPoller{codes: make([]string, 0, len(keyCodes))}
}

// Held returns the held actions for this frame
func (k *keyPoller) Held() engineinput.State {
	k.codes = k.codes[:0]
	for key, code := range keyCodes {
		if ebiten.IsKeyPressed(key) {
			k.codes = append(k.codes, code)
		}
	}

	k.gamepads = ebiten.AppendGamepadIDs(k.gamepads[:0])
	for _, id := range k.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for button, code := range gamepadCodes {
			if ebiten.IsStandardGamepadButtonPressed(id, button) {
				k.codes = append(k.codes, code)
			}
		}
	}
	return engineinput.StateFromCodes(k.codes)
}

// Events returns the one-shot events that fired since the last Update
func (k *keyPoller) Events() []engineinput.Event {
	var events []engineinput.Event
	if ebiten.IsWindowBeingClosed() {
		events = append(events, engineinput.QuitEvent)
	}

	k.codes = k.codes[:0]
	for key, code := range keyCodes {
		if inpututil.IsKeyJustPressed(key) {
			k.codes = append(k.codes, code)
		}
	}
	for _, id := range k.gamepads {
		for button, code := range gamepadCodes {
			if inpututil.IsStandardGamepadButtonJustPressed(id, button) {
				k.codes = append(k.codes, code)
			}
		}
	}
	return append(events, engineinput.EventsFromCodes(k.codes)...)
}
