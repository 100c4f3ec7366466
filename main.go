package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"raycaster/pkg/engine/input"
	"raycaster/pkg/engine/logging"
	"raycaster/pkg/game/config"
	"raycaster/pkg/game/gameplay"
	"raycaster/pkg/game/telemetry"
)

const windowTitle = "Raycaster"

var (
	colorError   = color.Style{color.FgRed, color.OpBold}
	colorSummary = color.Style{color.FgGreen}
	colorSubtle  = color.Style{color.FgGray}
)

// options are the command-line overrides applied on top of the config
type options struct {
	envFile  string
	backend  string
	mapFile  string
	logLevel string
	locale   string
	hud      bool
	set      map[string]bool
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("raycaster", flag.ContinueOnError)
	fs.StringVar(&o.envFile, "env", ".env", "environment file to load before reading RAYCASTER_* variables")
	fs.StringVar(&o.backend, "backend", "", "window backend: auto, ebiten, tui or sdl")
	fs.StringVar(&o.mapFile, "map", "", "map file to load instead of the built-in map")
	fs.StringVar(&o.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	fs.StringVar(&o.locale, "locale", "", "locale for HUD text, e.g. en_GB")
	fs.BoolVar(&o.hud, "hud", false, "show the HUD status text")
	if err := fs.Parse(args); err != nil {
		return o, err
	}

	o.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

// apply copies explicitly given flags over cfg
func (o options) apply(cfg *config.Config) {
	if o.set["backend"] {
		cfg.Backend = o.backend
	}
	if o.set["map"] {
		cfg.MapFile = o.mapFile
	}
	if o.set["log-level"] {
		cfg.LogLevel = o.logLevel
	}
	if o.set["locale"] {
		cfg.Locale = o.locale
	}
	if o.set["hud"] {
		cfg.ShowHUD = o.hud
	}
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run starts the game and returns the process exit code
func run(args []string) int {
	opts, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	cfg, err := config.Load(opts.envFile)
	if err != nil {
		colorError.Printf("Invalid configuration: %v\n", err)
		return 1
	}
	opts.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		colorError.Printf("Invalid configuration: %v\n", err)
		return 1
	}

	log, err := logging.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		log.WithError(err).Warn("falling back to info level")
	}

	applyBindings(cfg, logging.Component(log, "input"))

	gotext.Configure(cfg.LocaleDir, localeOrDefault(cfg.Locale), "default")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracer := telemetry.NoopTracer()
	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx,
			attribute.String("raycaster.backend", cfg.Backend),
			attribute.Int("raycaster.rays", cfg.RayCount),
		)
		if err != nil {
			log.WithError(err).Warn("telemetry setup failed, running without tracing")
		} else {
			tracer = telemetry.Tracer("frame")
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.WithError(err).Warn("telemetry shutdown failed")
				}
			}()
		}
	}

	if err := play(ctx, cfg, log, tracer); err != nil {
		log.WithError(err).WithField("stage", failureStage(err)).Error("startup failed")
		colorError.Printf("%s: %v\n", gotext.Get("Could not start"), err)
		return 1
	}
	return 0
}

// play builds the game, opens the backend and runs the loop until quit.
func play(ctx context.Context, cfg config.Config, log *logrus.Logger, tracer trace.Tracer) error {
	grid, err := gameplay.LoadGrid(cfg)
	if err != nil {
		return fmt.Errorf("load map: %w", err)
	}
	g, settings, err := gameplay.BuildGame(cfg, grid)
	if err != nil {
		return err
	}

	backend, err := selectBackend(cfg, logging.Component(log, "backend"))
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"backend": backend.Name(),
		"map":     fmt.Sprintf("%dx%d", grid.Rows(), grid.Cols()),
		"rays":    cfg.RayCount,
	}).Info("starting")

	if err := backend.Open(windowTitle, cfg.ScreenWidth(), cfg.ScreenHeight); err != nil {
		return err
	}
	defer func() {
		if err := backend.Close(); err != nil {
			log.WithError(err).Warn("backend close failed")
		}
	}()

	orch := gameplay.NewOrchestrator(ctx, g, settings, logging.Component(log, "frame"), tracer)
	orch.ScreenshotDir = cfg.ScreenshotDir

	if err := backend.Run(ctx, orch.Tick); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"frames":  g.Frame,
		"blocked": g.Blocked,
	}).Info("stopped")
	colorSummary.Println(gotext.Get("Goodbye"))
	colorSubtle.Println(orch.String())
	return nil
}

// applyBindings installs configured key bindings and logs the result
func applyBindings(cfg config.Config, log *logrus.Entry) {
	for action, code := range cfg.Bindings {
		if err := input.SetSingleBinding(action, code); err != nil {
			log.WithError(err).WithFields(logrus.Fields{
				"action": input.ActionName(action),
				"code":   code,
			}).Warn("binding ignored")
		}
	}

	byAction := input.GetBindingsByAction()
	for _, action := range input.AllActions() {
		log.WithField("codes", byAction[action]).Debug(input.ActionName(action))
	}
}

func localeOrDefault(locale string) string {
	if locale != "" {
		return locale
	}
	if lang := os.Getenv("LANG"); lang != "" {
		return lang
	}
	return "en_GB"
}
