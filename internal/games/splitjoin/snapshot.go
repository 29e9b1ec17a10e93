package splitjoin

// Snapshot is the observable session state handed to renderers and the
// HTTP API.
type Snapshot struct {
	Level       int     `json:"level"`
	Score       float64 `json:"score"`
	BestScore   float64 `json:"best_score"`
	Highlighted []Cell  `json:"highlighted"`
	Markers     []Cell  `json:"markers"`
	Mode        Mode    `json:"mode"`
}

// IsHighlighted reports whether c is on the highlighted diagonal.
func (s Snapshot) IsHighlighted(c Cell) bool {
	for _, h := range s.Highlighted {
		if h == c {
			return true
		}
	}
	return false
}

// HasMarker reports whether c holds a marker.
func (s Snapshot) HasMarker(c Cell) bool {
	for _, m := range s.Markers {
		if m == c {
			return true
		}
	}
	return false
}
