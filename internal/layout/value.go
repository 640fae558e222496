package layout

import "math"

// Unit tells Resolve how to read a Value's Amount.
type Unit uint8

const (
	UnitAuto    Unit = iota // sized by content or by the flex pass
	UnitFixed               // cells
	UnitPercent             // 0-100 of the available space
)

// Value is one box dimension.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto leaves the dimension to content and flex.
func Auto() Value { return Value{} }

// Fixed is n cells. Negative n resolves to zero.
func Fixed(n int) Value { return Value{Amount: float64(n), Unit: UnitFixed} }

// Percent is p percent of the available space (50 means half).
func Percent(p float64) Value { return Value{Amount: p, Unit: UnitPercent} }

// Resolve returns the dimension in whole cells, or fallback for auto values.
// Percentages round to the nearest cell.
func (v Value) Resolve(available, fallback int) int {
	var n int
	switch v.Unit {
	case UnitFixed:
		n = int(v.Amount)
	case UnitPercent:
		n = int(math.Round(float64(available) * v.Amount / 100))
	default:
		return fallback
	}
	return max(n, 0)
}

// IsAuto reports whether the flex pass may stretch this dimension.
func (v Value) IsAuto() bool { return v.Unit == UnitAuto }
