package flip

import (
	"math"
	"testing"
)

func TestParseEasing(t *testing.T) {
	type tc struct {
		input   string
		wantErr bool
	}

	tests := map[string]tc{
		"empty":          {input: ""},
		"linear":         {input: "linear"},
		"ease":           {input: "ease"},
		"ease-in":        {input: "ease-in"},
		"ease-out":       {input: "ease-out"},
		"ease-in-out":    {input: "ease-in-out"},
		"padded":         {input: "  ease-out "},
		"cubic-bezier":   {input: "cubic-bezier(0.1, 0.7, 1.0, 0.1)"},
		"overshoot y":    {input: "cubic-bezier(0.3, -0.5, 0.7, 1.5)"},
		"steps":          {input: "steps(4)"},
		"expression":     {input: "expr:t * t"},
		"unknown":        {input: "bouncy", wantErr: true},
		"x out of range": {input: "cubic-bezier(1.2, 0, 0.5, 1)", wantErr: true},
		"too few args":   {input: "cubic-bezier(0.1, 0.2)", wantErr: true},
		"not a number":   {input: "cubic-bezier(a, 0, 1, 1)", wantErr: true},
		"zero steps":     {input: "steps(0)", wantErr: true},
		"fraction steps": {input: "steps(2.5)", wantErr: true},
		"empty expr":     {input: "expr:", wantErr: true},
		"bad expr":       {input: "expr:t +", wantErr: true},
		"string expr":    {input: `expr:"fast"`, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e, err := ParseEasing(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseEasing(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := e(0); math.Abs(got) > 1e-6 {
				t.Errorf("easing(0) = %v, want 0", got)
			}
			if got := e(1); math.Abs(got-1) > 1e-6 {
				t.Errorf("easing(1) = %v, want 1", got)
			}
		})
	}
}

func TestCubicBezier_Midpoints(t *testing.T) {
	type tc struct {
		easing Easing
		x      float64
		want   float64
	}

	tests := map[string]tc{
		"linear curve":          {easing: CubicBezier(0, 0, 1, 1), x: 0.3, want: 0.3},
		"ease-in-out symmetric": {easing: CubicBezier(0.42, 0, 0.58, 1), x: 0.5, want: 0.5},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.easing(tt.x); math.Abs(got-tt.want) > 1e-4 {
				t.Errorf("easing(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestCubicBezier_EaseInIsSlowFirst(t *testing.T) {
	e, err := ParseEasing("ease-in")
	if err != nil {
		t.Fatal(err)
	}
	if got := e(0.25); got >= 0.25 {
		t.Errorf("ease-in(0.25) = %v, want < 0.25", got)
	}
}

func TestSteps(t *testing.T) {
	e := Steps(4)
	tests := map[string]struct {
		x, want float64
	}{
		"first step":  {x: 0.1, want: 0},
		"second step": {x: 0.3, want: 0.25},
		"last step":   {x: 0.99, want: 0.75},
		"end":         {x: 1, want: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := e(tt.x); got != tt.want {
				t.Errorf("Steps(4)(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestExprEasing(t *testing.T) {
	e, err := ParseEasing("expr:t * t")
	if err != nil {
		t.Fatal(err)
	}
	if got := e(0.5); got != 0.25 {
		t.Errorf("t*t at 0.5 = %v, want 0.25", got)
	}
}
