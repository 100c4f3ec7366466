// Package config holds tunable settings for the raycaster.
//
// Values start from Default, are overridden by RAYCASTER_* environment
// variables (optionally loaded from a .env file) and finally by flags in main.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"raycaster/pkg/engine/input"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "RAYCASTER_"

// Backend names
const (
	BackendAuto   = "auto"
	BackendEbiten = "ebiten"
	BackendTUI    = "tui"
	BackendSDL    = "sdl"
)

// Config holds game configuration options.
type Config struct {
	// ScreenHeight is the height of both panels; the window is twice as wide.
	ScreenHeight int

	// FOV is the horizontal field of view in radians.
	FOV float64
	// RayCount is the number of rays cast per frame.
	RayCount int
	// ProjectionConstant scales wall height: height = K / depth.
	ProjectionConstant float64
	// ShadeFalloff controls how quickly walls darken with depth.
	ShadeFalloff float64

	TurnRate  float64 // radians per frame
	MoveSpeed float64 // world units per frame

	StartX     float64
	StartY     float64
	StartAngle float64

	// FrameDelay paces the loop; the tick rate is 1/FrameDelay.
	FrameDelay time.Duration

	Backend       string
	MapFile       string
	LogLevel      string
	Locale        string
	LocaleDir     string
	ScreenshotDir string

	ShowOverlay bool
	ShowHUD     bool

	// Bindings replaces the keys of an action, from RAYCASTER_BIND_<ACTION>
	Bindings map[input.Action]string
}

// Default returns the reference configuration.
func Default() Config {
	return Config{
		ScreenHeight:       480,
		FOV:                math.Pi / 3,
		RayCount:           120,
		ProjectionConstant: 20000,
		ShadeFalloff:       0.0001,
		TurnRate:           0.1,
		MoveSpeed:          5,
		StartX:             240,
		StartY:             240,
		StartAngle:         math.Pi,
		FrameDelay:         30 * time.Millisecond,
		Backend:            BackendEbiten,
		LogLevel:           "info",
		LocaleDir:          "locales",
		ScreenshotDir:      ".",
		ShowOverlay:        true,
	}
}

// ScreenWidth returns the window width: the 2D map panel plus the 3D panel.
func (c Config) ScreenWidth() int {
	return c.ScreenHeight * 2
}

// BlockSize returns the pixel size of one map cell for a map with the given size.
func (c Config) BlockSize(mapSize int) float64 {
	return float64(c.ScreenHeight / mapSize)
}

// TicksPerSecond converts FrameDelay into a tick rate for backends that need one.
func (c Config) TicksPerSecond() int {
	if c.FrameDelay <= 0 {
		return 60
	}
	tps := int(time.Second / c.FrameDelay)
	if tps < 1 {
		return 1
	}
	return tps
}

// Load reads envFile (if it exists), applies the environment and validates.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		// Existing environment variables win over the file.
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Default()
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from RAYCASTER_* variables found through lookup.
// All malformed values are reported together.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	p := envParser{lookup: lookup}

	p.integer("SCREEN_HEIGHT", &c.ScreenHeight)
	p.degrees("FOV_DEGREES", &c.FOV)
	p.integer("RAYS", &c.RayCount)
	p.float("PROJECTION", &c.ProjectionConstant)
	p.float("SHADE_FALLOFF", &c.ShadeFalloff)
	p.float("TURN_RATE", &c.TurnRate)
	p.float("MOVE_SPEED", &c.MoveSpeed)
	p.float("START_X", &c.StartX)
	p.float("START_Y", &c.StartY)
	p.float("START_ANGLE", &c.StartAngle)
	p.duration("FRAME_DELAY", &c.FrameDelay)
	p.str("BACKEND", &c.Backend)
	p.str("MAP", &c.MapFile)
	p.str("LOG_LEVEL", &c.LogLevel)
	p.str("LOCALE", &c.Locale)
	p.str("LOCALE_DIR", &c.LocaleDir)
	p.str("SCREENSHOT_DIR", &c.ScreenshotDir)
	p.boolean("OVERLAY", &c.ShowOverlay)
	p.boolean("HUD", &c.ShowHUD)

	for _, a := range input.AllActions() {
		var code string
		p.str("BIND_"+input.ActionKey(a), &code)
		if code == "" {
			continue
		}
		if c.Bindings == nil {
			c.Bindings = make(map[input.Action]string)
		}
		c.Bindings[a] = strings.ToLower(code)
	}

	return errors.Join(p.errs...)
}

// Validate rejects settings the renderer cannot work with.
func (c Config) Validate() error {
	var errs []error
	if c.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("screen height must be positive, got %d", c.ScreenHeight))
	}
	if c.FOV <= 0 || c.FOV >= math.Pi {
		errs = append(errs, fmt.Errorf("fov must be in (0, 180) degrees, got %.2f", c.FOV*180/math.Pi))
	}
	if c.RayCount <= 0 {
		errs = append(errs, fmt.Errorf("ray count must be positive, got %d", c.RayCount))
	}
	if c.ProjectionConstant <= 0 {
		errs = append(errs, fmt.Errorf("projection constant must be positive, got %v", c.ProjectionConstant))
	}
	if c.ShadeFalloff < 0 {
		errs = append(errs, fmt.Errorf("shade falloff must not be negative, got %v", c.ShadeFalloff))
	}
	if c.TurnRate < 0 || c.MoveSpeed < 0 {
		errs = append(errs, errors.New("turn rate and move speed must not be negative"))
	}
	if c.FrameDelay < 0 {
		errs = append(errs, fmt.Errorf("frame delay must not be negative, got %v", c.FrameDelay))
	}
	switch c.Backend {
	case BackendAuto, BackendEbiten, BackendTUI, BackendSDL:
	default:
		errs = append(errs, fmt.Errorf("unknown backend %q", c.Backend))
	}
	return errors.Join(errs...)
}

type envParser struct {
	lookup func(string) (string, bool)
	errs   []error
}

func (p *envParser) get(name string) (string, bool) {
	v, ok := p.lookup(EnvPrefix + name)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func (p *envParser) fail(name, value string, err error) {
	p.errs = append(p.errs, fmt.Errorf("%s%s=%q: %w", EnvPrefix, name, value, err))
}

func (p *envParser) str(name string, dst *string) {
	if v, ok := p.get(name); ok {
		*dst = v
	}
}

func (p *envParser) integer(name string, dst *int) {
	v, ok := p.get(name)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.fail(name, v, err)
		return
	}
	*dst = n
}

func (p *envParser) float(name string, dst *float64) {
	v, ok := p.get(name)
	if !ok {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.fail(name, v, err)
		return
	}
	*dst = f
}

func (p *envParser) degrees(name string, dst *float64) {
	var deg float64
	before := len(p.errs)
	p.float(name, &deg)
	if _, ok := p.get(name); ok && len(p.errs) == before {
		*dst = deg * math.Pi / 180
	}
}

func (p *envParser) duration(name string, dst *time.Duration) {
	v, ok := p.get(name)
	if !ok {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		p.fail(name, v, err)
		return
	}
	*dst = d
}

func (p *envParser) boolean(name string, dst *bool) {
	v, ok := p.get(name)
	if !ok {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.fail(name, v, err)
		return
	}
	*dst = b
}
