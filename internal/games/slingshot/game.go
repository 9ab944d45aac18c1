// Package slingshot implements a projectile arcade game: pull the sling,
// release to launch, and knock out every target in a round before the
// shots run out. Rounds get harder with obstacles and moving targets.
package slingshot

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slingshot/internal/config"
	"github.com/vovakirdan/tui-slingshot/internal/core"
	"github.com/vovakirdan/tui-slingshot/internal/registry"
)

// Minimum terminal size the playfield is drawn at.
const (
	MinScreenW = 40
	MinScreenH = 12
)

// Visual characters for rendering
const (
	ProjectileChar = '●'
	AnchorChar     = 'Y'
	AimChar        = '◦'
	PreviewChar    = '·'
	TargetChar     = '█'
	HitTargetChar  = '░'
	ObstacleChar   = '▓'
	GrassChar      = '▔'
	GroundChar     = '░'
)

// keyboardSteps is how many arrow presses span the full pull.
const keyboardSteps = 6

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	startLevel       = 1
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetStartLevel sets the level new games start at.
func SetStartLevel(level int) {
	startLevel = max(level, 1)
}

// SetLogger sets the logger handed to new engines.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game adapts the Engine to the platform's fixed-tick loop and cell screen.
type Game struct {
	engine *Engine
	cfg    config.SlingshotConfig
	rt     core.RuntimeConfig

	tick     uint64
	paused   bool
	tooSmall bool
	message  string // banner for the current cooldown, if any
}

// New creates a new Slingshot game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "slingshot"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Slingshot"
}

// Reset loads the config and starts a new run at the start level.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadSlingshot(configPath)
	if err != nil {
		logger.Warn("using default slingshot config", "err", err)
	}
	config.ApplySlingshotPreset(&cfg, difficultyPreset)

	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}

	g.cfg = cfg
	g.rt = rt
	g.tick = 0
	g.paused = false
	g.message = ""
	g.tooSmall = rt.ScreenW < MinScreenW || rt.ScreenH < MinScreenH

	g.engine = NewEngine(cfg, rt.Seed)
	g.engine.SetLogger(logger)
	if startLevel > 1 {
		g.engine.SetupRound(startLevel)
	}
	g.engine.DrainEvents()
}

// Resize updates the cell grid the world is mapped onto.
func (g *Game) Resize(w, h int) {
	g.rt.ScreenW = w
	g.rt.ScreenH = h
	g.tooSmall = w < MinScreenW || h < MinScreenH
}

// Engine exposes the simulation for tests and tooling.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Step applies input and advances the engine by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.engine.Reset()
		g.message = ""
	}

	g.handlePointer(in.Pointer)
	g.handleKeys(in)

	g.tick++
	g.engine.Tick(1 / float64(g.rt.TickRate))

	res := core.StepResult{}
	for _, ev := range g.engine.DrainEvents() {
		switch ev.Kind {
		case EventRoundStart:
			g.message = ""
		case EventRoundClear:
			g.message = fmt.Sprintf("ROUND %d CLEAR", ev.Level)
		case EventOutOfAmmo:
			g.message = fmt.Sprintf("OUT OF SHOTS  final score %d", ev.Score)
			res.RunEnded = true
			res.FinalScore = ev.Score
			res.FinalLevel = ev.Level
		}
	}
	res.State = g.State()
	return res
}

func (g *Game) handlePointer(events []core.PointerEvent) {
	for _, pe := range events {
		p := g.cellToWorld(pe.X, pe.Y)
		switch pe.Kind {
		case core.PointerDown:
			g.engine.BeginAim(p)
		case core.PointerMove:
			g.engine.UpdateAim(p)
		case core.PointerUp:
			g.engine.ReleaseAim(p)
		}
	}
}

// handleKeys drives the sling from the keyboard: fire grabs it at the
// anchor, arrows pull it, fire again releases and back lets go.
func (g *Game) handleKeys(in core.InputFrame) {
	e := g.engine
	switch e.Status() {
	case StatusReady:
		if in.Has(core.ActionFire) {
			e.BeginAim(e.Anchor())
		}
	case StatusAiming:
		if in.Has(core.ActionBack) {
			e.CancelAim()
			return
		}
		step := g.cfg.Launcher.MaxPull / keyboardSteps
		var d core.Vec2
		if in.Has(core.ActionLeft) {
			d.X -= step
		}
		if in.Has(core.ActionRight) {
			d.X += step
		}
		if in.Has(core.ActionUp) {
			d.Y -= step
		}
		if in.Has(core.ActionDown) {
			d.Y += step
		}
		if d != (core.Vec2{}) {
			e.UpdateAim(e.AimPoint().Add(d))
		}
		if in.Has(core.ActionFire) {
			e.ReleaseAim(e.AimPoint())
		}
	}
}

// State returns the current game state. A run never reports GameOver:
// it restarts on its own and signals the loss through StepResult.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{Paused: g.paused}
	}
	return core.GameState{
		Score:  g.engine.Score(),
		Level:  g.engine.Level(),
		Paused: g.paused,
	}
}

// Row 0 is the HUD; the world is stretched over the rows below it.
func (g *Game) scale() (sx, sy float64) {
	w := max(g.rt.ScreenW, 1)
	h := max(g.rt.ScreenH-1, 1)
	return g.cfg.World.Width / float64(w), g.cfg.World.Height / float64(h)
}

func (g *Game) cellToWorld(x, y int) core.Vec2 {
	sx, sy := g.scale()
	return core.V((float64(x)+0.5)*sx, (float64(y-1)+0.5)*sy)
}

func (g *Game) worldToCell(p core.Vec2) (int, int) {
	sx, sy := g.scale()
	return int(math.Floor(p.X / sx)), int(math.Floor(p.Y/sy)) + 1
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Terminal too small (need %dx%d)", MinScreenW, MinScreenH))
		return
	}
	if g.engine == nil {
		return
	}
	e := g.engine

	_, groundRow := g.worldToCell(core.V(0, g.cfg.World.GroundY))
	dst.DrawHLine(0, groundRow, dst.Width(), GrassChar, core.ColorBrightGreen)
	dst.FillCells(0, groundRow+1, dst.Width(), dst.Height(), GroundChar, core.ColorGreen)

	for _, o := range e.Obstacles() {
		g.fillRect(dst, o.Rect(), ObstacleChar, core.ColorGray)
	}

	for _, t := range e.Targets() {
		switch {
		case t.Hit:
			g.fillRect(dst, t.Rect(), HitTargetChar, core.ColorGray)
		case t.Motion != nil:
			g.fillRect(dst, t.Rect(), TargetChar, core.ColorMagenta)
		default:
			g.fillRect(dst, t.Rect(), TargetChar, core.ColorRed)
		}
	}

	for _, p := range e.Preview() {
		x, y := g.worldToCell(p)
		dst.SetColor(x, y, PreviewChar, core.ColorYellow)
	}

	ax, ay := g.worldToCell(e.Anchor())
	dst.SetColor(ax, ay, AnchorChar, core.ColorOrange)

	if e.Status() == StatusAiming {
		x, y := g.worldToCell(e.AimPoint())
		dst.SetColor(x, y, AimChar, core.ColorBrightYellow)
	}

	if p := e.Projectile(); p.Active || e.Status() == StatusReady {
		x, y := g.worldToCell(p.Pos)
		dst.SetColor(x, y, ProjectileChar, core.ColorWhite)
	}

	g.drawHUD(dst)

	switch {
	case g.paused:
		drawBanner(dst, "PAUSED", "press P to resume")
	case g.message != "":
		drawBanner(dst, g.message, "")
	}
}

// drawBanner draws a boxed message in the upper middle of the screen.
func drawBanner(dst *core.Screen, title, subtitle string) {
	w := max(len([]rune(title)), len([]rune(subtitle))) + 4
	h := 3
	if subtitle != "" {
		h = 4
	}
	x := (dst.Width() - w) / 2
	y := dst.Height() / 4

	dst.FillCells(x, y, x+w, y+h, ' ', core.ColorDefault)
	dst.DrawBox(x, y, w, h)
	dst.DrawTextColor(x+2, y+1, title, core.ColorBrightYellow)
	if subtitle != "" {
		dst.DrawText(x+2, y+2, subtitle)
	}
}

func (g *Game) fillRect(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	sx, sy := g.scale()
	x0, y0 := g.worldToCell(core.V(r.X, r.Y))
	x1 := int(math.Ceil(r.Right() / sx))
	y1 := int(math.Ceil(r.Bottom()/sy)) + 1
	dst.FillCells(x0, y0, max(x1, x0+1), max(y1, y0+1), ch, c)
}

func (g *Game) drawHUD(dst *core.Screen) {
	e := g.engine
	hud := fmt.Sprintf(" Score: %d  Level: %d  Shots: %d  Targets: %d  [%s]",
		e.Score(), e.Level(), e.ShotsLeft(), e.Round().Remaining(), e.Status())
	if left, ok := e.NextTransitionIn(); ok {
		hud += fmt.Sprintf(" %.1fs", left)
	}
	dst.DrawTextColor(0, 0, hud, core.ColorCyan)
}

func init() {
	registry.Register("slingshot", func() registry.Game {
		return New()
	})
}
