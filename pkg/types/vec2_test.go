package types

import "testing"

func TestMidpoint(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec2
		want Vec2
	}{
		{"origin", Vec2{}, Vec2{}, Vec2{}},
		{"symmetric", Vec2{X: -10, Y: 4}, Vec2{X: 10, Y: -4}, Vec2{}},
		{"offset", Vec2{X: 2, Y: 6}, Vec2{X: 4, Y: 10}, Vec2{X: 3, Y: 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Midpoint(tt.a, tt.b); got != tt.want {
				t.Errorf("Midpoint(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestBoundaryKindString(t *testing.T) {
	for _, kind := range AllBoundaryKinds {
		if kind.String() == "Unknown" {
			t.Errorf("BoundaryKind %d has no name", int(kind))
		}
	}
	if BoundaryKind(99).String() != "Unknown" {
		t.Error("Out-of-range BoundaryKind should be Unknown")
	}
}
