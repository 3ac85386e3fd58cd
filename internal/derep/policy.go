package derep

import (
	"errors"
	"math"
)

// Policy is the stop criteria for a dereplication run. The zero value of
// each field means "not set"; at least one of the three must be set.
type Policy struct {
	// stop once the closest pair of surviving assemblies is at least
	// this far apart. exclusive bounds: must be within (0, 1)
	Distance float64

	// stop once at most this many assemblies survive
	Count int

	// like Count, but as a fraction of the initial assembly count,
	// within (0, 1]. rounded up to a whole assembly
	Fraction float64
}

// Validate rejects a policy with no constraint or with a constraint outside
// its valid domain. Called before any distances are computed so a bad policy
// never produces partial output.
func (p Policy) Validate() error {
	if p.Distance == 0 && p.Count == 0 && p.Fraction == 0 {
		return errors.New("no stop condition: set a distance, count or fraction")
	}
	if p.Distance != 0 && (p.Distance < 0 || p.Distance >= 1) {
		return errors.New("distance must be between 0 and 1, exclusive")
	}
	if p.Count < 0 {
		return errors.New("count must be a positive integer")
	}
	if p.Fraction != 0 && (p.Fraction < 0 || p.Fraction > 1) {
		return errors.New("fraction must be above 0 and at most 1")
	}
	return nil
}

// ceiling folds Count and Fraction into a single effective survivor ceiling
// for a run starting with initial assemblies. When both are set the stricter
// one wins. Zero means no count-family constraint was configured.
func (p Policy) ceiling(initial int) int {
	c := 0
	if p.Fraction > 0 {
		c = int(math.Ceil(p.Fraction * float64(initial)))
		if c < 1 {
			c = 1
		}
	}
	if p.Count > 0 && (c == 0 || p.Count < c) {
		c = p.Count
	}
	return c
}

// stop reports whether the engine should halt before consuming the next
// queued record. next is nil when the queue is exhausted.
//
// A lone ceiling stops the run as soon as few enough assemblies remain. A
// lone floor stops it as soon as the closest unconsumed pair is far enough
// apart. When both are set, both must hold at the same time: a run that has
// reached its ceiling keeps discarding while close pairs remain, and one
// that has reached its floor keeps going while too many assemblies remain.
func stop(remaining int, next *Record, floor float64, ceiling int) bool {
	if remaining == 1 {
		return true
	}

	countSatisfied := ceiling == 0 || remaining <= ceiling
	distanceSatisfied := floor == 0 || next == nil || next.Distance >= floor

	if ceiling == 0 {
		return distanceSatisfied
	}
	if floor == 0 {
		return countSatisfied
	}
	return countSatisfied && distanceSatisfied
}
