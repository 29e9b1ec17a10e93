package core

import "testing"

func TestRectFromCorners(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 int
		expected       Rect
	}{
		{"ordered corners", 1, 2, 3, 5, NewRect(1, 2, 3, 4)},
		{"reversed corners", 3, 5, 1, 2, NewRect(1, 2, 3, 4)},
		{"mixed corners", 3, 2, 1, 5, NewRect(1, 2, 3, 4)},
		{"single cell", 4, 4, 4, 4, NewRect(4, 4, 1, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := RectFromCorners(tc.x1, tc.y1, tc.x2, tc.y2)
			if result != tc.expected {
				t.Errorf("RectFromCorners() = %+v, expected %+v", result, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdgesAndArea(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
	if r.Area() != 300 {
		t.Errorf("Area() = %d, expected 300", r.Area())
	}
	if NewRect(0, 0, 0, 3).Area() != 0 {
		t.Error("zero-width rect should have zero area")
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestParseColor(t *testing.T) {
	if c, ok := ParseColor("Bright_Cyan"); !ok || c != ColorBrightCyan {
		t.Errorf("ParseColor(Bright_Cyan) = %v, %v", c, ok)
	}
	if _, ok := ParseColor("chartreuse"); ok {
		t.Error("ParseColor should reject unknown names")
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("new frame should be empty")
	}

	f.Set(ActionPrimary)
	f.Click(3, 4, true)
	if !f.Has(ActionPrimary) || f.Has(ActionMode) {
		t.Error("Has() does not reflect Set()")
	}
	if len(f.Clicks) != 1 || !f.Clicks[0].Shift {
		t.Errorf("Clicks = %+v, expected one shift click", f.Clicks)
	}

	f.Clear()
	if !f.Empty() {
		t.Error("frame should be empty after Clear")
	}
}
