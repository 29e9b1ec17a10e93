package splitjoin

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/splitjoin/internal/config"
	"github.com/vovakirdan/splitjoin/internal/core"
	"github.com/vovakirdan/splitjoin/internal/registry"
)

// Registry IDs for the two variants.
const (
	GameID      = "splitjoin"
	SetupGameID = "splitjoin_setup"
)

// Package-level configuration shared by all game instances.
var (
	cfgMu     sync.RWMutex
	gameCfg   = config.Default()
	gameTheme = mustTheme(gameCfg.Board)
)

func mustTheme(b config.BoardConfig) config.Theme {
	t, err := b.Theme()
	if err != nil {
		panic(fmt.Sprintf("splitjoin: invalid built-in theme: %v", err))
	}
	return t
}

// SetConfig installs the configuration used by games created afterwards.
func SetConfig(cfg config.Config) error {
	theme, err := cfg.Board.Theme()
	if err != nil {
		return err
	}
	if _, err := ParseMode(cfg.Gameplay.StartMode); err != nil {
		return err
	}

	cfgMu.Lock()
	defer cfgMu.Unlock()
	gameCfg = cfg
	gameTheme = theme
	return nil
}

func currentConfig() (config.Config, config.Theme) {
	cfgMu.RLock()
	defer cfgMu.RUnlock()
	return gameCfg, gameTheme
}

// Game adapts a Session to the platform: a cursor, key/mouse actions, the
// reset confirmation prompt and rendering.
type Game struct {
	setup   bool // Variant that starts in free-edit mode
	session *Session

	cfg   config.Config
	theme config.Theme

	cursor   Cell
	anchor   *Cell // Rectangle anchor set with ActionAnchor
	lastEdit *Cell // Last cell edited, corner for shift-click rectangles

	edited     bool // Free-edit was entered since the last reset
	prompting  bool
	flash      string
	flashTicks int

	screenW  int
	screenH  int
	tooSmall bool
	tick     uint64
}

// New creates a game that starts in the configured mode (play by default).
func New() *Game {
	return &Game{}
}

// NewSetup creates a game that starts in free-edit mode.
func NewSetup() *Game {
	return &Game{setup: true}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
	registry.Register(SetupGameID, func() registry.Game {
		return NewSetup()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.setup {
		return SetupGameID
	}
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.setup {
		return "Split & Join (Setup)"
	}
	return "Split & Join"
}

// Reset starts a new session on the canonical board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg, g.theme = currentConfig()

	startMode, err := ParseMode(g.cfg.Gameplay.StartMode)
	if err != nil {
		startMode = ModePlay
	}
	if g.setup {
		startMode = ModeFreeEdit
	}

	opts := []Option{WithStartMode(startMode)}
	if cfg.Scores != nil {
		opts = append(opts, WithBestScoreStore(cfg.Scores))
	}
	if cfg.OnChange != nil {
		onChange := cfg.OnChange
		opts = append(opts, WithRenderer(RendererFunc(func(s Snapshot) {
			onChange(g.stateFrom(s))
		})))
	}

	g.edited = startMode == ModeFreeEdit
	g.session = NewSession(opts...)
	g.cursor = Corner
	g.anchor = nil
	g.lastEdit = nil
	g.prompting = false
	g.flash = ""
	g.flashTicks = 0
	g.tick = 0
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.tooSmall = width < minScreenW || height < minScreenH
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Cursor returns the cell under the cursor.
func (g *Game) Cursor() Cell {
	return g.cursor
}

// Step applies one tick of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.flashTicks > 0 {
		g.flashTicks--
		if g.flashTicks == 0 {
			g.flash = ""
		}
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.prompting {
		return g.stepPrompt(in)
	}

	if in.Has(core.ActionMode) {
		if g.session.Mode() == ModePlay {
			g.edited = true
		}
		mode := g.session.ToggleMode()
		g.anchor = nil
		g.lastEdit = nil
		if mode == ModeFreeEdit {
			g.setFlash("Edit mode: best score resets when you return to play")
		} else {
			g.setFlash("Play mode: best score reset")
		}
	}

	if in.Has(core.ActionRestart) {
		if g.cfg.Gameplay.ConfirmReset {
			g.prompting = true
			return core.StepResult{State: g.State()}
		}
		return g.reset(AlwaysConfirm)
	}

	g.moveCursor(in)

	if g.session.Mode() == ModeFreeEdit {
		if in.Has(core.ActionAnchor) {
			anchor := g.cursor
			g.anchor = &anchor
			g.setFlash(fmt.Sprintf("Anchor set at %v", anchor))
		}
		if in.Has(core.ActionRect) {
			g.toggleRect()
		}
	}

	if in.Has(core.ActionPrimary) {
		g.activate(g.cursor, false)
	}

	for _, click := range in.Clicks {
		cell, ok := g.CellAt(click.X, click.Y)
		if !ok {
			continue
		}
		g.cursor = cell
		g.activate(cell, click.Shift)
	}

	return core.StepResult{State: g.State()}
}

// stepPrompt handles input while the reset confirmation is showing.
func (g *Game) stepPrompt(in core.InputFrame) core.StepResult {
	switch {
	case in.Has(core.ActionYes):
		g.prompting = false
		return g.reset(ConfirmAnswer(true))
	case in.Has(core.ActionNo):
		g.prompting = false
		g.reset(ConfirmAnswer(false))
		g.setFlash("Reset cancelled")
	}
	return core.StepResult{State: g.State()}
}

// reset passes the answer through the session's confirmation gate.
func (g *Game) reset(c Confirmer) core.StepResult {
	best := g.session.BestScore()
	if g.edited {
		best = 0
	}
	if !g.session.ResetBoardWith(c) {
		return core.StepResult{State: g.State()}
	}

	g.edited = false
	g.cursor = Corner
	g.anchor = nil
	g.lastEdit = nil
	g.setFlash("Board reset")
	return core.StepResult{
		State:        g.State(),
		Finished:     true,
		FinishedBest: best,
	}
}

func (g *Game) moveCursor(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row--
	case in.Has(core.ActionDown):
		g.cursor.Row++
	}
	switch {
	case in.Has(core.ActionLeft):
		g.cursor.Col--
	case in.Has(core.ActionRight):
		g.cursor.Col++
	}
	g.cursor.Row = core.Clamp(g.cursor.Row, 0, N-1)
	g.cursor.Col = core.Clamp(g.cursor.Col, 0, N-1)
}

// activate performs the mode's primary action on a cell. In edit mode a
// shift-click toggles the rectangle between the last edited cell and this one.
func (g *Game) activate(c Cell, shift bool) {
	if g.session.Mode() == ModePlay {
		result, err := g.session.AttemptMoveAt(c.Row, c.Col)
		if err != nil {
			g.setFlash(err.Error())
			return
		}
		if !result.Applied() {
			g.setFlash(fmt.Sprintf("No move at %v", c))
		}
		return
	}

	var err error
	if shift && g.lastEdit != nil {
		err = g.session.ToggleRectangleFreeEdit(g.lastEdit.Row, g.lastEdit.Col, c.Row, c.Col)
	} else {
		err = g.session.ToggleCellFreeEdit(c.Row, c.Col)
	}
	if err != nil {
		g.setFlash(err.Error())
		return
	}
	last := c
	g.lastEdit = &last
}

func (g *Game) toggleRect() {
	if g.anchor == nil {
		g.setFlash("Set an anchor with M first")
		return
	}
	a := *g.anchor
	if err := g.session.ToggleRectangleFreeEdit(a.Row, a.Col, g.cursor.Row, g.cursor.Col); err != nil {
		g.setFlash(err.Error())
		return
	}
	g.anchor = nil
	last := g.cursor
	g.lastEdit = &last
}

func (g *Game) setFlash(msg string) {
	g.flash = msg
	g.flashTicks = g.cfg.Gameplay.FlashTicks
	if g.flashTicks == 0 {
		g.flashTicks = 1
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{Mode: ModePlay.String()}
	}
	return g.stateFrom(g.session.Snapshot())
}

func (g *Game) stateFrom(s Snapshot) core.GameState {
	return core.GameState{
		Level:     s.Level,
		Score:     s.Score,
		BestScore: s.BestScore,
		Mode:      s.Mode.String(),
		Prompting: g.prompting,
		Edited:    g.edited,
	}
}

// Controls returns the control hints for the current mode.
func (g *Game) Controls() string {
	if g.session != nil && g.session.Mode() == ModeFreeEdit {
		return "Arrows: Move | Space/Click: Toggle | M: Anchor | X/Shift+Click: Rect | E: Play | R: Reset | Q: Quit"
	}
	return "Arrows: Move | Space/Click: Split/Join | E: Edit | R: Reset | Q: Quit"
}
