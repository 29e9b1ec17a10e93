package splitjoin

import (
	"strings"
	"testing"

	"github.com/vovakirdan/splitjoin/internal/config"
	"github.com/vovakirdan/splitjoin/internal/core"
)

func newTestGame(t *testing.T, setup bool, rc core.RuntimeConfig) *Game {
	t.Helper()
	if rc.ScreenW == 0 {
		rc.ScreenW, rc.ScreenH = 80, 30
	}
	g := New()
	if setup {
		g = NewSetup()
	}
	g.Reset(rc)
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func click(g *Game, c Cell, shift bool) core.InputFrame {
	x, y := g.cellOrigin(c)
	f := core.NewInputFrame()
	f.Click(x, y, shift)
	return f
}

func withConfig(t *testing.T, mutate func(*config.Config)) {
	t.Helper()
	cfg := config.Default()
	mutate(&cfg)
	if err := SetConfig(cfg); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := SetConfig(config.Default()); err != nil {
			t.Fatal(err)
		}
	})
}

func TestGameIdentity(t *testing.T) {
	if New().ID() != GameID || NewSetup().ID() != SetupGameID {
		t.Error("unexpected game IDs")
	}
	if New().Title() == NewSetup().Title() {
		t.Error("variants should have distinct titles")
	}
}

func TestGamePrimaryActionSplits(t *testing.T) {
	g := newTestGame(t, false, core.RuntimeConfig{})

	result := g.Step(frame(core.ActionPrimary))

	if result.State.Level != 1 || result.State.Score != 1 {
		t.Errorf("state = %+v, want level 1 score 1", result.State)
	}
	if result.Finished {
		t.Error("a move does not finish the run")
	}
}

func TestGameIllegalMoveFlashes(t *testing.T) {
	g := newTestGame(t, false, core.RuntimeConfig{})

	g.Step(frame(core.ActionUp, core.ActionRight, core.ActionPrimary))

	if g.Cursor() != (Cell{14, 1}) {
		t.Fatalf("Cursor() = %v, want (14,1)", g.Cursor())
	}
	if !strings.Contains(g.flash, "No move") {
		t.Errorf("flash = %q, want a no-move message", g.flash)
	}
	if g.Session().Board().Count() != 1 {
		t.Error("illegal move changed the board")
	}
}

func TestGameCursorClamps(t *testing.T) {
	g := newTestGame(t, false, core.RuntimeConfig{})

	g.Step(frame(core.ActionDown, core.ActionLeft))

	if g.Cursor() != Corner {
		t.Errorf("Cursor() = %v, want it clamped at %v", g.Cursor(), Corner)
	}
}

func TestGameResetPrompt(t *testing.T) {
	g := newTestGame(t, false, core.RuntimeConfig{})
	g.Step(frame(core.ActionPrimary))

	result := g.Step(frame(core.ActionRestart))
	if !result.State.Prompting {
		t.Fatal("restart should open the confirmation prompt")
	}

	// Other input is ignored while prompting.
	g.Step(frame(core.ActionPrimary))
	if g.Session().Level() != 1 {
		t.Error("moves must be blocked while prompting")
	}

	result = g.Step(frame(core.ActionNo))
	if result.Finished || result.State.Prompting || g.Session().Level() != 1 {
		t.Errorf("declined reset changed state: %+v", result)
	}

	g.Step(frame(core.ActionRestart))
	result = g.Step(frame(core.ActionYes))
	if !result.Finished || result.FinishedBest != 1 {
		t.Errorf("confirmed reset = %+v, want finished with best 1", result)
	}
	if !g.Session().Board().Equal(NewBoard()) {
		t.Error("board not reset")
	}
	if result.State.BestScore != 1 {
		t.Errorf("reset in play mode should keep best, got %v", result.State.BestScore)
	}
}

func TestGameEditedRunFinishesWithoutBest(t *testing.T) {
	g := newTestGame(t, false, core.RuntimeConfig{})
	if g.State().Edited {
		t.Fatal("a fresh play game is not edited")
	}

	g.Step(frame(core.ActionMode))
	g.Step(frame(core.ActionPrimary))
	g.Step(click(g, Cell{0, 15}, false))
	if state := g.State(); state.BestScore != 30 || !state.Edited {
		t.Fatalf("state = %+v, want an edited board with best 30", state)
	}

	g.Step(frame(core.ActionRestart))
	result := g.Step(frame(core.ActionYes))
	if !result.Finished || result.FinishedBest != 0 {
		t.Errorf("reset of an edited run = %+v, want finished with best 0", result)
	}
	if result.State.Edited {
		t.Error("reset should start an unedited run")
	}
}

func TestGameSetupVariantStartsEdited(t *testing.T) {
	g := newTestGame(t, true, core.RuntimeConfig{})
	if !g.State().Edited {
		t.Error("setup variant runs start edited")
	}
}

func TestGameModeNamesMatchConfig(t *testing.T) {
	for _, name := range []string{"play", "edit", "setup", "chess", ""} {
		cfg := config.Default()
		cfg.Gameplay.StartMode = name
		_, parseErr := ParseMode(name)
		validateErr := cfg.Validate()
		if (parseErr == nil) != (validateErr == nil) {
			t.Errorf("mode %q: ParseMode err = %v, Validate err = %v", name, parseErr, validateErr)
		}
	}
}

func TestGameResetWithoutConfirmation(t *testing.T) {
	withConfig(t, func(c *config.Config) { c.Gameplay.ConfirmReset = false })
	g := newTestGame(t, false, core.RuntimeConfig{})
	g.Step(frame(core.ActionPrimary))

	result := g.Step(frame(core.ActionRestart))
	if !result.Finished || result.State.Prompting {
		t.Errorf("reset without confirmation = %+v, want immediate", result)
	}
}

func TestGameStartModeFromConfig(t *testing.T) {
	withConfig(t, func(c *config.Config) { c.Gameplay.StartMode = "edit" })
	g := newTestGame(t, false, core.RuntimeConfig{})

	if g.Session().Mode() != ModeFreeEdit {
		t.Errorf("Mode() = %v, want edit", g.Session().Mode())
	}
}

func TestGameEditClicksAndShiftRectangle(t *testing.T) {
	g := newTestGame(t, true, core.RuntimeConfig{})
	if g.Session().Mode() != ModeFreeEdit {
		t.Fatal("setup variant should start in edit mode")
	}

	g.Step(click(g, Cell{2, 2}, false))
	if ok, _ := g.Session().IsOccupied(2, 2); !ok {
		t.Fatal("click should toggle (2,2) on")
	}

	g.Step(click(g, Cell{3, 4}, true))

	// (2,2) flips back off, the other five cells of the 2x3 block turn on.
	want := map[Cell]bool{
		{2, 2}: false, {2, 3}: true, {2, 4}: true,
		{3, 2}: true, {3, 3}: true, {3, 4}: true,
	}
	for c, occupied := range want {
		if got, _ := g.Session().IsOccupied(c.Row, c.Col); got != occupied {
			t.Errorf("IsOccupied%v = %v, want %v", c, got, occupied)
		}
	}
	if g.Cursor() != (Cell{3, 4}) {
		t.Errorf("click should move the cursor, got %v", g.Cursor())
	}
}

func TestGameAnchorRectangle(t *testing.T) {
	g := newTestGame(t, true, core.RuntimeConfig{})

	g.Step(frame(core.ActionRect))
	if !strings.Contains(g.flash, "anchor") {
		t.Errorf("rect without anchor should explain, flash = %q", g.flash)
	}

	g.Step(frame(core.ActionUp, core.ActionAnchor))
	g.Step(frame(core.ActionUp, core.ActionRight, core.ActionRect))

	// Rectangle (14,0)-(13,1) plus the untouched corner marker.
	if n := g.Session().Board().Count(); n != 5 {
		t.Errorf("Count() = %d, want 5", n)
	}
}

func TestGameModeToggleResetsBest(t *testing.T) {
	g := newTestGame(t, false, core.RuntimeConfig{})
	g.Step(frame(core.ActionPrimary))

	g.Step(frame(core.ActionMode))
	if g.State().Mode != "edit" || g.State().BestScore != 1 {
		t.Errorf("entering edit: %+v", g.State())
	}

	g.Step(frame(core.ActionMode))
	if g.State().Mode != "play" || g.State().BestScore != 0 {
		t.Errorf("leaving edit: %+v, want play with best 0", g.State())
	}
}

func TestGameOnChangeAndScores(t *testing.T) {
	store := &memoryStore{value: 2.5, ok: true}
	var states []core.GameState
	g := newTestGame(t, false, core.RuntimeConfig{
		Scores:   store,
		OnChange: func(s core.GameState) { states = append(states, s) },
	})

	if g.State().BestScore != 2.5 {
		t.Errorf("best should load from the store, got %v", g.State().BestScore)
	}

	before := len(states)
	g.Step(frame(core.ActionPrimary))
	if len(states) != before+1 {
		t.Errorf("expected one change notification, got %d", len(states)-before)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, false, core.RuntimeConfig{})
	g.Step(frame(core.ActionPrimary))

	screen := core.NewScreen(80, 30)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"SPLIT & JOIN", "L 1", "S 1.00", "H 1.00", "PLAY"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}

	x, y := g.cellOrigin(Cell{14, 0})
	if cell := screen.GetCell(x, y); cell.Rune != g.theme.Marker || cell.Color != g.theme.HighlightColor {
		t.Errorf("marker on the active diagonal = %+v", cell)
	}
	x, y = g.cellOrigin(Corner)
	if screen.Get(x-1, y) != '[' || screen.Get(x+1, y) != ']' {
		t.Error("cursor brackets not drawn at the corner")
	}
}

func TestGameRenderPrompt(t *testing.T) {
	g := newTestGame(t, false, core.RuntimeConfig{})
	g.Step(frame(core.ActionRestart))

	screen := core.NewScreen(80, 30)
	g.Render(screen)
	if !strings.Contains(screen.String(), "start over?") {
		t.Errorf("prompt not rendered:\n%s", screen.String())
	}
}

func TestGameTooSmall(t *testing.T) {
	g := newTestGame(t, false, core.RuntimeConfig{ScreenW: 20, ScreenH: 10})

	g.Step(frame(core.ActionPrimary))
	if g.Session().Level() != 0 {
		t.Error("input should be ignored while the window is too small")
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Errorf("expected too-small message:\n%s", screen.String())
	}

	g.Resize(80, 30)
	g.Step(frame(core.ActionPrimary))
	if g.Session().Level() != 1 {
		t.Error("input should work after resizing")
	}
}

func TestCellAt(t *testing.T) {
	g := newTestGame(t, false, core.RuntimeConfig{})

	for _, c := range []Cell{{0, 0}, {15, 0}, {0, 15}, {7, 9}} {
		x, y := g.cellOrigin(c)
		for _, dx := range []int{0, 1} {
			got, ok := g.CellAt(x+dx, y)
			if !ok || got != c {
				t.Errorf("CellAt(%d, %d) = %v, %v; want %v", x+dx, y, got, ok, c)
			}
		}
	}

	bx, by := g.boardOrigin()
	if _, ok := g.CellAt(bx, by); ok {
		t.Error("board border should not map to a cell")
	}
	if _, ok := g.CellAt(bx+boardW-1, by+1); ok {
		t.Error("right border should not map to a cell")
	}
}
