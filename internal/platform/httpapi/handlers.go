package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vovakirdan/splitjoin/internal/games/splitjoin"
)

type cellReq struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

type rectReq struct {
	R1 *int `json:"r1"`
	C1 *int `json:"c1"`
	R2 *int `json:"r2"`
	C2 *int `json:"c2"`
}

type modeReq struct {
	Mode *splitjoin.Mode `json:"mode"`
}

type resetReq struct {
	Confirm bool `json:"confirm"`
}

type moveRes struct {
	Result   string             `json:"result"` // "split" | "join" | "none"
	Applied  bool               `json:"applied"`
	Snapshot splitjoin.Snapshot `json:"snapshot"`
}

type resetRes struct {
	Reset    bool               `json:"reset"`
	Snapshot splitjoin.Snapshot `json:"snapshot"`
}

var errMissingCoordinate = errors.New("missing coordinate")

func (c cellReq) coords() (int, int, error) {
	if c.Row == nil || c.Col == nil {
		return 0, 0, errMissingCoordinate
	}
	return *c.Row, *c.Col, nil
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	snap := s.session.Snapshot()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var req cellReq
	if !decode(w, r, &req) {
		return
	}
	row, col, err := req.coords()
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing_coordinate")
		return
	}

	s.mu.Lock()
	result, err := s.session.AttemptMoveAt(row, col)
	snap := s.session.Snapshot()
	s.mu.Unlock()

	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, moveRes{Result: result.String(), Applied: result.Applied(), Snapshot: snap})
}

func (s *Server) handleCell(w http.ResponseWriter, r *http.Request) {
	var req cellReq
	if !decode(w, r, &req) {
		return
	}
	row, col, err := req.coords()
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing_coordinate")
		return
	}

	s.mu.Lock()
	err = s.session.ToggleCellFreeEdit(row, col)
	snap := s.session.Snapshot()
	s.mu.Unlock()

	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleRect(w http.ResponseWriter, r *http.Request) {
	var req rectReq
	if !decode(w, r, &req) {
		return
	}
	if req.R1 == nil || req.C1 == nil || req.R2 == nil || req.C2 == nil {
		writeError(w, http.StatusBadRequest, "missing_coordinate")
		return
	}

	s.mu.Lock()
	err := s.session.ToggleRectangleFreeEdit(*req.R1, *req.C1, *req.R2, *req.C2)
	snap := s.session.Snapshot()
	s.mu.Unlock()

	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleMode(w http.ResponseWriter, r *http.Request) {
	var req modeReq
	if !decode(w, r, &req) {
		return
	}
	if req.Mode == nil {
		writeError(w, http.StatusBadRequest, "missing_mode")
		return
	}

	s.mu.Lock()
	err := s.session.SetMode(*req.Mode)
	snap := s.session.Snapshot()
	s.mu.Unlock()

	if err != nil {
		writeSessionError(w, err)
		return
	}
	s.logger.Info("Mode changed", "mode", snap.Mode, "best", snap.BestScore)
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var req resetReq
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	reset := s.session.ResetBoardWith(splitjoin.ConfirmAnswer(req.Confirm))
	snap := s.session.Snapshot()
	s.mu.Unlock()

	if reset {
		s.logger.Info("Board reset", "best", snap.BestScore)
	}
	writeJSON(w, http.StatusOK, resetRes{Reset: reset, Snapshot: snap})
}

// maxBodyBytes caps request bodies; every request fits in a few dozen bytes.
const maxBodyBytes = 4 << 10

// decode reads a JSON body into v, answering 413 for oversized bodies and
// 400 for anything else that fails.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "body_too_large")
			return false
		}
		writeError(w, http.StatusBadRequest, "bad_json")
		return false
	}
	return true
}

func writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, splitjoin.ErrInvalidCoordinate):
		writeError(w, http.StatusBadRequest, "invalid_coordinate")
	case errors.Is(err, splitjoin.ErrWrongMode):
		writeError(w, http.StatusConflict, "wrong_mode")
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
