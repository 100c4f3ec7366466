package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"sort"

	"github.com/sirupsen/logrus"

	"raycaster/pkg/engine/terminal"
	"raycaster/pkg/game/config"
	"raycaster/pkg/game/renderer"
	"raycaster/pkg/game/renderer/ebiten"
	"raycaster/pkg/game/renderer/tui"
)

// backendFactory creates a backend for the given config
type backendFactory func(cfg config.Config, log *logrus.Entry) renderer.Backend

// backends holds every backend compiled into this binary
var backends = map[string]backendFactory{
	config.BackendEbiten: func(cfg config.Config, log *logrus.Entry) renderer.Backend {
		return ebiten.New(log, cfg.TicksPerSecond())
	},
	config.BackendTUI: func(cfg config.Config, log *logrus.Entry) renderer.Backend {
		return tui.New(log, cfg.FrameDelay)
	},
}

// autoOrder is the preference order for the "auto" backend
var autoOrder = []string{config.BackendSDL, config.BackendEbiten, config.BackendTUI}

func registerBackend(name string, f backendFactory) {
	backends[name] = f
}

func backendNames() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// selectBackend returns the configured backend, resolving "auto" from what
// is compiled in and whether a display or terminal is available.
func selectBackend(cfg config.Config, log *logrus.Entry) (renderer.Backend, error) {
	name := cfg.Backend
	if name == config.BackendAuto {
		name = autoBackend(hasDisplay(), terminal.IsTerminal())
		log.WithField("backend", name).Debug("auto-selected backend")
	}

	factory, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("%w: backend %q is not available in this build (have %v)",
			renderer.ErrInit, name, backendNames())
	}
	return factory(cfg, log.WithField("backend", name)), nil
}

func autoBackend(display, tty bool) string {
	for _, name := range autoOrder {
		if _, ok := backends[name]; !ok {
			continue
		}
		if name == config.BackendTUI {
			if tty {
				return name
			}
			continue
		}
		if display {
			return name
		}
	}
	return config.BackendEbiten
}

func hasDisplay() bool {
	if runtime.GOOS != "linux" && runtime.GOOS != "freebsd" {
		return true
	}
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

// failureStage names the startup step an error came from
func failureStage(err error) string {
	switch {
	case errors.Is(err, renderer.ErrInit):
		return "init"
	case errors.Is(err, renderer.ErrWindowCreation):
		return "window"
	case errors.Is(err, renderer.ErrRendererCreation):
		return "renderer"
	default:
		return "setup"
	}
}
