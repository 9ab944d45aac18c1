package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slingshot/internal/core"
	"github.com/vovakirdan/tui-slingshot/internal/registry"
	"github.com/vovakirdan/tui-slingshot/internal/storage"
)

//go:generate go run go.uber.org/mock/mockgen -destination=./mocks/score_store_mock.go -package=mocks . ScoreStore

// ScoreStore records finished runs. *storage.Store implements it.
type ScoreStore interface {
	SaveRun(run storage.Run) (int64, error)
	HighScore(gameID string) (int, error)
}

// Resizer is implemented by games that can adapt to a new screen size
// without restarting.
type Resizer interface {
	Resize(w, h int)
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      ScoreStore
	logger     *log.Logger
	player     string
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	showHelp   bool
	inputFrame core.InputFrame
	gameState  core.GameState
	best       int
	lastRun    int  // final score of the previous run, -1 if none
	runSaved   bool // the run still on screen was recorded when it ended
	quitting   bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithLogger sets the logger for save failures and run results.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) { m.logger = l }
}

// WithPlayer sets the player name recorded with scores.
func WithPlayer(name string) ModelOption {
	return func(m *Model) { m.player = name }
}

// NewModel creates a model for game. store may be nil.
func NewModel(game registry.Game, store ScoreStore, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	m := Model{
		game:       game,
		store:      store,
		logger:     log.New(io.Discard),
		player:     storage.LocalPlayer,
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		lastRun:    -1,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(cfg.ScreenW, m.playHeight())

	if m.store != nil {
		best, err := m.store.HighScore(game.ID())
		if err != nil {
			m.logger.Warn("cannot read high score", "game", game.ID(), "err", err)
		}
		m.best = best
	}

	// Reset here rather than in Init: Init has a value receiver.
	m.game.Reset(m.gameConfig())
	m.gameState = m.game.State()
	return m
}

// playHeight is the screen height left for the game below the help line.
func (m Model) playHeight() int {
	return max(m.config.ScreenH-1, 1)
}

func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = m.playHeight()
	return cfg
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if pe, ok := m.keys.MapMouse(msg); ok {
			m.inputFrame.AddPointer(pe.Kind, pe.X, pe.Y)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		if !m.runSaved {
			m.saveRun(m.gameState.Score, m.gameState.Level, "quit")
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, m.playHeight())

	if r, ok := m.game.(Resizer); ok {
		r.Resize(msg.Width, m.playHeight())
	} else {
		m.game.Reset(m.gameConfig())
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	// The lost run's score stays on screen until the game resets; any
	// change after that belongs to a new run.
	if m.runSaved && m.gameState.Score != m.lastRun {
		m.runSaved = false
	}

	if result.RunEnded {
		m.lastRun = result.FinalScore
		m.saveRun(result.FinalScore, result.FinalLevel, "lost")
		m.runSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun records a run with a positive score. Failures are logged and
// otherwise ignored; the game keeps running.
func (m *Model) saveRun(score, level int, reason string) {
	if score <= 0 {
		return
	}
	m.best = max(m.best, score)
	m.logger.Info("run ended", "game", m.game.ID(), "player", m.player, "score", score, "level", level, "reason", reason)

	if m.store == nil {
		return
	}
	_, err := m.store.SaveRun(storage.Run{
		GameID: m.game.ID(),
		Player: m.player,
		Score:  score,
		Level:  level,
	})
	if err != nil {
		m.logger.Warn("cannot save score", "err", err)
	}
}

// saveScreenshot writes the current screen as text under ~/.arcade/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// Best returns the best score known to the model.
func (m Model) Best() int {
	return m.best
}

// View renders the game and a status/help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	status := fmt.Sprintf(" best %d", m.best)
	if m.lastRun >= 0 {
		status += fmt.Sprintf("  last %d", m.lastRun)
	}
	status += "  "
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(status+m.help.View(m.keys.Keys))
}

var helpStyle = fg("241")

// Run starts the Bubble Tea program for game. store may be nil.
func Run(game registry.Game, store ScoreStore, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
