package core

import "testing"

func TestRectFIntersectsCircle(t *testing.T) {
	r := RectF{X: 10, Y: 10, W: 20, H: 40}

	tests := []struct {
		name     string
		center   Vec2
		radius   float64
		expected bool
	}{
		{"center inside", Vec2{X: 20, Y: 30}, 5, true},
		{"touching left edge", Vec2{X: 5, Y: 30}, 5, true},
		{"just off left edge", Vec2{X: 4, Y: 30}, 5, false},
		{"touching top edge", Vec2{X: 20, Y: 5}, 5, true},
		{"corner overlap", Vec2{X: 7, Y: 7}, 5, true},
		{"corner miss", Vec2{X: 5, Y: 5}, 5, false},
		{"far away", Vec2{X: 100, Y: 100}, 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := r.IntersectsCircle(tc.center, tc.radius)
			if got != tc.expected {
				t.Errorf("IntersectsCircle(%v, %v) = %v, expected %v", tc.center, tc.radius, got, tc.expected)
			}
		})
	}
}

func TestRectFInflate(t *testing.T) {
	r := RectF{X: 10, Y: 20, W: 30, H: 40}
	g := r.Inflate(5, 2)

	if g.X != 5 || g.Y != 18 {
		t.Errorf("Inflate origin = (%v, %v), expected (5, 18)", g.X, g.Y)
	}
	if g.W != 40 || g.H != 44 {
		t.Errorf("Inflate size = (%v, %v), expected (40, 44)", g.W, g.H)
	}
}

func TestRectFContains(t *testing.T) {
	r := RectF{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name     string
		p        Vec2
		expected bool
	}{
		{"inside", Vec2{X: 5, Y: 5}, true},
		{"on edge", Vec2{X: 10, Y: 10}, true},
		{"outside right", Vec2{X: 10.1, Y: 5}, false},
		{"outside above", Vec2{X: 5, Y: -0.1}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestVec2Ops(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	b := Vec2{X: 1, Y: -2}

	if sum := a.Add(b); sum.X != 4 || sum.Y != 2 {
		t.Errorf("Add = %v, expected (4, 2)", sum)
	}
	if diff := a.Sub(b); diff.X != 2 || diff.Y != 6 {
		t.Errorf("Sub = %v, expected (2, 6)", diff)
	}
	if sc := a.Scale(2); sc.X != 6 || sc.Y != 8 {
		t.Errorf("Scale = %v, expected (6, 8)", sc)
	}
	if l := a.Len(); l != 5 {
		t.Errorf("Len = %v, expected 5", l)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
