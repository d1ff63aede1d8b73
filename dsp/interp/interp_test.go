package interp

import (
	"math"
	"testing"
)

func TestHermite4IdentityOnLinearRamp(t *testing.T) {
	xm1, x0, x1, x2 := -1.0, 0.0, 1.0, 2.0
	for _, tc := range []struct {
		t float64
		w float64
	}{
		{t: 0.0, w: 0.0},
		{t: 0.25, w: 0.25},
		{t: 0.5, w: 0.5},
		{t: 1.0, w: 1.0},
	} {
		got := Hermite4(tc.t, xm1, x0, x1, x2)
		if diff := got - tc.w; diff < -1e-12 || diff > 1e-12 {
			t.Fatalf("t=%v: got %v want %v", tc.t, got, tc.w)
		}
	}
}

func TestLinear2(t *testing.T) {
	if got := Linear2(0.25, 2, 4); got != 2.5 {
		t.Fatalf("Linear2 got %v want 2.5", got)
	}
}

func TestAtClampsAndInterpolates(t *testing.T) {
	samples := []float64{0, 10, 20, 30}

	tests := []struct {
		name string
		pos  float64
		want float64
	}{
		{name: "before start", pos: -3, want: 0},
		{name: "first", pos: 0, want: 0},
		{name: "between", pos: 1.5, want: 15},
		{name: "integer", pos: 2, want: 20},
		{name: "last", pos: 3, want: 30},
		{name: "past end", pos: 3.7, want: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, mode := range []Mode{ModeLinear, ModeHermite} {
				got := At(samples, tt.pos, mode)
				if math.Abs(got-tt.want) > 1e-12 {
					t.Fatalf("%v: At(%v) = %v, want %v", mode, tt.pos, got, tt.want)
				}
			}
		})
	}
}

func TestAtEmptyAndSingle(t *testing.T) {
	if got := At(nil, 0.5, ModeLinear); got != 0 {
		t.Fatalf("At(nil) = %v, want 0", got)
	}

	if got := At([]float64{7}, 0.5, ModeHermite); got != 7 {
		t.Fatalf("At(single) = %v, want 7", got)
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{ModeLinear, ModeHermite} {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Fatalf("ParseMode(%q) = %v, %v", m.String(), got, err)
		}
	}

	if _, err := ParseMode("sinc"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}
