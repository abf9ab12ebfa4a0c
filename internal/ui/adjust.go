package ui

import (
	"math"

	"life-ca/internal/core"
)

// adjustedValue returns current moved by one control step in direction,
// clamped to the control's bounds. ok is false when the value cannot move.
func adjustedValue(ctrl core.ParameterControl, current float64, direction int) (float64, bool) {
	if direction == 0 {
		return current, false
	}
	step := ctrl.Step
	switch ctrl.Type {
	case core.ParamTypeInt:
		step = math.Round(step)
		if step <= 0 {
			step = 1
		}
	case core.ParamTypeFloat:
		if step <= 0 {
			step = 0.05
		}
	default:
		return current, false
	}
	target := current + float64(direction)*step
	if ctrl.HasMin && target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		target = ctrl.Max
	}
	if math.Abs(target-current) < 1e-9 {
		return current, false
	}
	return target, true
}
