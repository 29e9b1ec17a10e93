package splitjoin

import (
	"errors"
	"fmt"
)

// Mode is the session's interaction mode.
type Mode int

const (
	// ModePlay drives the board through Split and Join only.
	ModePlay Mode = iota
	// ModeFreeEdit toggles cells directly, ignoring move legality.
	ModeFreeEdit
)

// ErrWrongMode is returned when an operation is not available in the
// session's current mode.
var ErrWrongMode = errors.New("splitjoin: operation not available in current mode")

// String returns the mode name used in config files and the HTTP API.
func (m Mode) String() string {
	switch m {
	case ModePlay:
		return "play"
	case ModeFreeEdit:
		return "edit"
	default:
		return "unknown"
	}
}

// ParseMode converts a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "play":
		return ModePlay, nil
	case "edit":
		return ModeFreeEdit, nil
	default:
		return ModePlay, fmt.Errorf("splitjoin: unknown mode %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if m != ModePlay && m != ModeFreeEdit {
		return nil, fmt.Errorf("splitjoin: invalid mode %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Renderer is notified with a fresh snapshot after every state change.
type Renderer interface {
	Render(Snapshot)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(Snapshot)

// Render calls f(s).
func (f RendererFunc) Render(s Snapshot) { f(s) }

// BestScoreStore persists the best score. Implementations swallow their own
// failures; the session works the same whether or not a save lands.
type BestScoreStore interface {
	Load() (float64, bool)
	Save(best float64)
}

// Confirmer gates a board reset behind a yes/no answer.
type Confirmer interface {
	Confirm() bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func() bool

// Confirm calls f().
func (f ConfirmFunc) Confirm() bool { return f() }

// ConfirmAnswer returns a Confirmer that always gives the same answer.
func ConfirmAnswer(yes bool) Confirmer {
	return ConfirmFunc(func() bool { return yes })
}

// AlwaysConfirm approves every reset.
var AlwaysConfirm = ConfirmAnswer(true)

// Option configures a Session.
type Option func(*Session)

// WithRenderer registers the render collaborator.
func WithRenderer(r Renderer) Option {
	return func(s *Session) { s.renderer = r }
}

// WithBestScoreStore registers the persistence collaborator.
func WithBestScoreStore(store BestScoreStore) Option {
	return func(s *Session) { s.store = store }
}

// WithConfirmer sets the confirmer used by ResetBoard. A nil confirmer
// leaves the default in place.
func WithConfirmer(c Confirmer) Option {
	return func(s *Session) {
		if c != nil {
			s.confirmer = c
		}
	}
}

// WithStartMode sets the mode the session starts in. Starting in free-edit
// does not count as a mode change.
func WithStartMode(m Mode) Option {
	return func(s *Session) { s.mode = m }
}

// Session sequences moves and mode changes over one board and tracks the
// running best score.
//
// A Session is not safe for concurrent use; hosts that call it from several
// goroutines must serialize every call.
type Session struct {
	board *Board
	mode  Mode
	eval  Evaluation
	best  float64

	renderer  Renderer
	store     BestScoreStore
	confirmer Confirmer
}

// NewSession creates a session on the canonical start board. The best score
// starts from the store's persisted value, or 0.
func NewSession(opts ...Option) *Session {
	s := &Session{
		board:     NewBoard(),
		mode:      ModePlay,
		confirmer: AlwaysConfirm,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.store != nil {
		if best, ok := s.store.Load(); ok && best > 0 {
			s.best = best
		}
	}

	s.recompute()
	return s
}

// recompute refreshes the derived state, raises the best score and notifies
// the renderer. Every mutation path ends here exactly once.
func (s *Session) recompute() {
	s.eval = Evaluate(s.board)
	if s.eval.Score > s.best {
		s.best = s.eval.Score
		if s.store != nil {
			s.store.Save(s.best)
		}
	}
	s.notify()
}

func (s *Session) notify() {
	if s.renderer != nil {
		s.renderer.Render(s.Snapshot())
	}
}

// AttemptMoveAt splits an occupied cell or joins into an empty one.
// Illegal moves return MoveNone and leave everything untouched.
func (s *Session) AttemptMoveAt(row, col int) (MoveResult, error) {
	if err := checkBounds(row, col); err != nil {
		return MoveNone, err
	}
	if s.mode != ModePlay {
		return MoveNone, fmt.Errorf("%w: move in %s mode", ErrWrongMode, s.mode)
	}

	result, err := s.board.AttemptMoveAt(row, col)
	if err != nil || !result.Applied() {
		return result, err
	}

	s.recompute()
	return result, nil
}

// ToggleCellFreeEdit flips one cell. Free-edit mode only.
func (s *Session) ToggleCellFreeEdit(row, col int) error {
	if err := checkBounds(row, col); err != nil {
		return err
	}
	if s.mode != ModeFreeEdit {
		return fmt.Errorf("%w: toggle in %s mode", ErrWrongMode, s.mode)
	}

	if err := s.board.Toggle(row, col); err != nil {
		return err
	}
	s.recompute()
	return nil
}

// ToggleRectangleFreeEdit flips every cell in the inclusive rectangle spanned
// by two corner cells, then recomputes once for the whole batch.
// Free-edit mode only. Both corners are checked before any cell changes.
func (s *Session) ToggleRectangleFreeEdit(r1, c1, r2, c2 int) error {
	if err := checkBounds(r1, c1); err != nil {
		return err
	}
	if err := checkBounds(r2, c2); err != nil {
		return err
	}
	if s.mode != ModeFreeEdit {
		return fmt.Errorf("%w: rectangle toggle in %s mode", ErrWrongMode, s.mode)
	}

	for row := min(r1, r2); row <= max(r1, r2); row++ {
		for col := min(c1, c2); col <= max(c1, c2); col++ {
			s.board.cells[row][col] = !s.board.cells[row][col]
		}
	}
	s.recompute()
	return nil
}

// SetMode switches the interaction mode. Leaving free-edit for play resets
// the best score to 0 and persists it.
// Setting the current mode is a no-op.
func (s *Session) SetMode(m Mode) error {
	if m != ModePlay && m != ModeFreeEdit {
		return fmt.Errorf("splitjoin: invalid mode %d", int(m))
	}
	if m == s.mode {
		return nil
	}

	s.enterMode(m)
	s.notify()
	return nil
}

// ToggleMode switches between play and free-edit and returns the new mode.
func (s *Session) ToggleMode() Mode {
	next := ModeFreeEdit
	if s.mode == ModeFreeEdit {
		next = ModePlay
	}
	s.enterMode(next)
	s.notify()
	return next
}

func (s *Session) enterMode(m Mode) {
	leavingEdit := s.mode == ModeFreeEdit && m == ModePlay
	s.mode = m
	if leavingEdit {
		s.best = 0
		if s.store != nil {
			s.store.Save(0)
		}
	}
}

// ResetBoard asks the session's confirmer and, on approval, restores the
// start board. See ResetBoardWith.
func (s *Session) ResetBoard() bool {
	return s.ResetBoardWith(s.confirmer)
}

// ResetBoardWith restores the start board if c approves. A reset in
// free-edit mode also returns to play mode, with the same best score reset
// as SetMode(ModePlay). A reset while already playing keeps the best score.
// Returns false if the reset was declined. A nil confirmer declines.
func (s *Session) ResetBoardWith(c Confirmer) bool {
	if c == nil || !c.Confirm() {
		return false
	}

	s.board.Reset()
	if s.mode == ModeFreeEdit {
		s.enterMode(ModePlay)
	}
	s.recompute()
	return true
}

// Mode returns the current interaction mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Level returns the current level.
func (s *Session) Level() int {
	return s.eval.Level
}

// Score returns the current score.
func (s *Session) Score() float64 {
	return s.eval.Score
}

// BestScore returns the best score observed since the last reset of it.
func (s *Session) BestScore() float64 {
	return s.best
}

// IsOccupied reports whether (row, col) holds a marker.
func (s *Session) IsOccupied(row, col int) (bool, error) {
	return s.board.IsOccupied(row, col)
}

// Board returns a copy of the current board.
func (s *Session) Board() *Board {
	return s.board.Clone()
}

// Snapshot captures everything a renderer needs.
func (s *Session) Snapshot() Snapshot {
	highlighted := make([]Cell, len(s.eval.Highlighted))
	copy(highlighted, s.eval.Highlighted)

	return Snapshot{
		Level:       s.eval.Level,
		Score:       s.eval.Score,
		BestScore:   s.best,
		Highlighted: highlighted,
		Markers:     s.board.Markers(),
		Mode:        s.mode,
	}
}
