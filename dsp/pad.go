package dsp

import "math"

// PaddingPlan describes how to zero-pad a series so it spans a
// requested tick window instead of just the analyzed portion.
type PaddingPlan struct {
	TargetLength int
	PadStart     int
	PadEnd       int
}

// PlanPadding reconciles the requested window [startTick, endTick)
// against the analyzed extents. A non-positive or non-finite hop means
// frames cannot be counted, so no padding is planned. The target length
// never drops below max(2, observed).
func PlanPadding(startTick, endTick, trackStartTick, trackEndTick, hopTicks float64, observed int) PaddingPlan {
	plan := PaddingPlan{TargetLength: observed}
	if plan.TargetLength < 2 {
		plan.TargetLength = 2
	}

	if hopTicks <= 0 || math.IsNaN(hopTicks) || math.IsInf(hopTicks, 0) {
		return plan
	}

	missingBefore := math.Max(0, trackStartTick-startTick)
	missingAfter := math.Max(0, endTick-trackEndTick)

	plan.PadStart = int(math.Ceil(missingBefore / hopTicks))
	plan.PadEnd = int(math.Ceil(missingAfter / hopTicks))

	plan.TargetLength = observed + plan.PadStart + plan.PadEnd
	if plan.TargetLength < 2 {
		plan.TargetLength = 2
	}

	return plan
}

// ApplyPadding realizes a plan on one channel series. A series that
// already meets the target length and needs no padding comes back
// unmodified. The result is never shorter than the input.
func ApplyPadding(values []float64, plan PaddingPlan) []float64 {
	if plan.PadStart == 0 && plan.PadEnd == 0 && len(values) >= plan.TargetLength {
		return values
	}

	size := plan.PadStart + len(values) + plan.PadEnd
	if size < plan.TargetLength {
		size = plan.TargetLength
	}

	out := make([]float64, size)

	n := plan.TargetLength - plan.PadStart
	if n > len(values) {
		n = len(values)
	}
	if n > 0 {
		copy(out[plan.PadStart:], values[:n])
	}

	return out
}
