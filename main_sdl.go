//go:build sdl

package main

import (
	"github.com/sirupsen/logrus"

	"raycaster/pkg/game/config"
	"raycaster/pkg/game/renderer"
	"raycaster/pkg/game/renderer/sdl"
)

func init() {
	registerBackend(config.BackendSDL, func(cfg config.Config, log *logrus.Entry) renderer.Backend {
		return sdl.New(log, cfg.FrameDelay)
	})
}
