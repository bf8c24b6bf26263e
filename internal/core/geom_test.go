package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"non-overlapping horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"adjacent horizontal (no overlap)", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"contained rect", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxCorners(t *testing.T) {
	b := NewBox(V2(10, -5), V2(4, 6))

	if got := b.Min(); got != V2(8, -8) {
		t.Errorf("Min() = %+v, expected (8, -8)", got)
	}
	if got := b.Max(); got != V2(12, -2) {
		t.Errorf("Max() = %+v, expected (12, -2)", got)
	}
}

func TestBoxOverlaps(t *testing.T) {
	player := NewBox(V2(0, 0), V2(32, 32))

	tests := []struct {
		name     string
		other    Box
		expected bool
	}{
		{"same box", player, true},
		{"partial overlap", NewBox(V2(20, 10), V2(32, 32)), true},
		{"touching edges", NewBox(V2(32, 0), V2(32, 32)), false},
		{"far away", NewBox(V2(100, 100), V2(10, 10)), false},
		{"inside", NewBox(V2(0, 0), V2(4, 4)), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := player.Overlaps(tc.other); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.other.Overlaps(player); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestVecHelpers(t *testing.T) {
	v := V3(1, 2, 3).Add(V3(1, 1, 1)).Scale(2)
	if v != V3(4, 6, 8) {
		t.Errorf("Add/Scale = %+v, expected (4, 6, 8)", v)
	}
	if v.Truncate() != V2(4, 6) {
		t.Errorf("Truncate() = %+v, expected (4, 6)", v.Truncate())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(15.5, 0, 10); got != 10 {
		t.Errorf("ClampF(15.5, 0, 10) = %f, expected 10", got)
	}
	if got := ClampF(-1, 0, 10); got != 0 {
		t.Errorf("ClampF(-1, 0, 10) = %f, expected 0", got)
	}
}

func TestInputFrameHeld(t *testing.T) {
	in := NewInputFrame()
	in.Hold(ActionLeft)
	in.Set(ActionJump)

	if !in.IsHeld(ActionLeft) {
		t.Error("held action should report IsHeld")
	}
	if in.Has(ActionLeft) {
		t.Error("held action is not an edge")
	}
	if !in.IsHeld(ActionJump) {
		t.Error("a pressed action counts as held for this frame")
	}

	in.Clear()
	if in.IsHeld(ActionLeft) || in.Has(ActionJump) {
		t.Error("Clear should drop edges and levels")
	}
}
