package flip

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"
)

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(t float64) float64

// exprPrefix marks an easing written as an expression over t.
const exprPrefix = "expr:"

// Linear is the identity easing.
func Linear(t float64) float64 {
	return t
}

// ParseEasing resolves an easing description. Supported forms:
//
//	linear | ease | ease-in | ease-out | ease-in-out
//	cubic-bezier(x1, y1, x2, y2)
//	steps(n)
//	expr:<expression over t>     e.g. "expr:t * t"
//
// The empty string means linear.
func ParseEasing(s string) (Easing, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "", "linear":
		return Linear, nil
	case "ease":
		return CubicBezier(0.25, 0.1, 0.25, 1), nil
	case "ease-in":
		return CubicBezier(0.42, 0, 1, 1), nil
	case "ease-out":
		return CubicBezier(0, 0, 0.58, 1), nil
	case "ease-in-out":
		return CubicBezier(0.42, 0, 0.58, 1), nil
	}

	switch {
	case strings.HasPrefix(s, exprPrefix):
		return compileExprEasing(strings.TrimPrefix(s, exprPrefix))
	case strings.HasPrefix(s, "cubic-bezier("):
		args, err := parseArgs(s, "cubic-bezier", 4)
		if err != nil {
			return nil, err
		}
		if args[0] < 0 || args[0] > 1 || args[2] < 0 || args[2] > 1 {
			return nil, fmt.Errorf("cubic-bezier x values must be within [0, 1]: %q", s)
		}
		return CubicBezier(args[0], args[1], args[2], args[3]), nil
	case strings.HasPrefix(s, "steps("):
		args, err := parseArgs(s, "steps", 1)
		if err != nil {
			return nil, err
		}
		n := int(args[0])
		if n < 1 || float64(n) != args[0] {
			return nil, fmt.Errorf("steps needs a positive integer: %q", s)
		}
		return Steps(n), nil
	}
	return nil, fmt.Errorf("unknown easing %q", s)
}

func parseArgs(s, name string, want int) ([]float64, error) {
	inner, ok := strings.CutPrefix(s, name+"(")
	if !ok || !strings.HasSuffix(inner, ")") {
		return nil, fmt.Errorf("malformed %s: %q", name, s)
	}
	parts := strings.Split(strings.TrimSuffix(inner, ")"), ",")
	if len(parts) != want {
		return nil, fmt.Errorf("%s takes %d arguments, got %d", name, want, len(parts))
	}
	out := make([]float64, want)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%s argument %d: %w", name, i+1, err)
		}
		out[i] = v
	}
	return out, nil
}

// CubicBezier returns the CSS cubic-bezier timing function with control
// points (x1, y1) and (x2, y2).
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx
	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(t float64) float64 { return ((ax*t+bx)*t + cx) * t }
	sampleY := func(t float64) float64 { return ((ay*t+by)*t + cy) * t }
	slopeX := func(t float64) float64 { return (3*ax*t+2*bx)*t + cx }

	const epsilon = 1e-7
	return func(x float64) float64 {
		if x <= 0 {
			return 0
		}
		if x >= 1 {
			return 1
		}

		// Newton-Raphson first, bisection if the slope flattens out.
		t := x
		for range 8 {
			err := sampleX(t) - x
			if math.Abs(err) < epsilon {
				return sampleY(t)
			}
			d := slopeX(t)
			if math.Abs(d) < 1e-6 {
				break
			}
			t -= err / d
		}

		lo, hi := 0.0, 1.0
		t = x
		for range 64 {
			v := sampleX(t)
			if math.Abs(v-x) < epsilon {
				break
			}
			if x > v {
				lo = t
			} else {
				hi = t
			}
			t = (lo + hi) / 2
		}
		return sampleY(t)
	}
}

// Steps returns a jump-end step function with n intervals.
func Steps(n int) Easing {
	return func(t float64) float64 {
		if t >= 1 {
			return 1
		}
		if t <= 0 {
			return 0
		}
		return math.Floor(t*float64(n)) / float64(n)
	}
}

// compileExprEasing compiles an expr-lang program over the variable t.
func compileExprEasing(src string) (Easing, error) {
	if strings.TrimSpace(src) == "" {
		return nil, fmt.Errorf("expression easing must not be empty")
	}
	program, err := exprlang.Compile(src,
		exprlang.Env(map[string]any{"t": 0.0}),
		exprlang.AsFloat64(),
	)
	if err != nil {
		return nil, fmt.Errorf("compile easing %q: %w", src, err)
	}
	return exprEasing(program), nil
}

func exprEasing(program *exprvm.Program) Easing {
	return func(t float64) float64 {
		out, err := exprlang.Run(program, map[string]any{"t": t})
		if err != nil {
			return t
		}
		v, ok := out.(float64)
		if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
			return t
		}
		return v
	}
}
