package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/splitjoin/internal/core"
	"github.com/vovakirdan/splitjoin/internal/registry"
	"github.com/vovakirdan/splitjoin/internal/storage"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	palette    Palette
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	runLevel   int  // Highest level reached since the last recorded run
	runActive  bool // The board changed since the last recorded run
	quitting   bool
}

// NewModel creates a model for game and starts a fresh board. store may be
// nil, in which case no run history is written.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}
	if cfg.OnChange == nil {
		cfg.OnChange = func(s core.GameState) {
			logger.Debug("Board changed", "level", s.Level, "score", s.Score, "best", s.BestScore, "mode", s.Mode)
		}
	}

	m := Model{
		game:       game,
		store:      store,
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		palette:    NewPalette(nil),
	}
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(cfg.ScreenW, m.gameHeight())

	gameCfg := cfg
	gameCfg.ScreenH = m.gameHeight()
	game.Reset(gameCfg)
	m.gameState = game.State()
	m.runLevel = m.gameState.Level
	return m
}

// gameHeight is the screen height left after the help bar.
func (m Model) gameHeight() int {
	h := m.config.ScreenH - lipgloss.Height(m.help.View(m.keys))
	if h < 0 {
		return 0
	}
	return h
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
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.inputFrame.Click(msg.X, msg.Y, msg.Shift)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// layout resizes the screen buffer and the game without resetting the board.
func (m *Model) layout() {
	h := m.gameHeight()
	m.screen.Resize(m.config.ScreenW, h)
	m.game.Resize(m.config.ScreenW, h)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		best := m.gameState.BestScore
		if m.gameState.Edited {
			best = 0
		}
		m.recordRun(best)
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick feeds the collected input to the game.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	if result.Finished {
		m.recordRun(result.FinishedBest)
		m.runLevel = result.State.Level
	} else if result.State.Level != m.gameState.Level || result.State.Score != m.gameState.Score {
		m.runActive = true
		m.runLevel = max(m.runLevel, result.State.Level)
	}
	m.gameState = result.State

	return m, tickCmd(m.config.TickRate)
}

// recordRun writes the finished run to the score history, once per run.
func (m *Model) recordRun(best float64) {
	if !m.runActive || best <= 0 || m.store == nil {
		m.runActive = false
		return
	}
	m.runActive = false

	id, err := m.store.SaveScore(m.game.ID(), best, m.runLevel)
	if err != nil {
		m.logger.Error("Failed to save run", "game", m.game.ID(), "err", err)
		return
	}
	m.logger.Info("Run saved", "game", m.game.ID(), "id", id, "best", best, "level", m.runLevel)
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("Screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".splitjoin", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("Screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("Screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("Screenshot saved", "path", path)
}

// State returns the game state seen on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.palette.Render(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
