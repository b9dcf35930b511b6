/*
Package scale maps trajectory coordinates onto a plot viewport.

Two independent linear scales are derived from the positioned stations: one
for cumulative horizontal distance (left to right) and one for true vertical
depth (top to bottom). Domains are padded asymmetrically, with more room at
the far/deep end, and then rounded outward to tick boundaries of the form
1, 2 or 5 times a power of ten.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package scale

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/wellpath"
	"gonum.org/v1/gonum/floats"
)

// tracer writes to trace with key 'wellpath.scale'
func tracer() tracing.Trace {
	return tracing.Select("wellpath.scale")
}

// MinSpan is the smallest domain extent a scale will use. Degenerate data
// (all values equal) is widened to this span.
const MinSpan = 1.0

var (
	// ErrNoValues indicates an attempt to derive a domain from no data.
	ErrNoValues = errors.New("no values to derive a domain from")
	// ErrViewportTooSmall indicates that margins leave no plot area.
	ErrViewportTooSmall = errors.New("viewport too small for margins")
)

// Linear is a linear mapping from a domain interval onto a range interval.
// Ranges may be inverted (r0 > r1).
type Linear struct {
	d0, d1 float64 // domain
	r0, r1 float64 // range
}

// NewLinear creates a scale. A domain narrower than MinSpan is widened
// upwards to MinSpan.
func NewLinear(d0, d1, r0, r1 float64) *Linear {
	d0, d1 = clampSpan(d0, d1)
	return &Linear{d0: d0, d1: d1, r0: r0, r1: r1}
}

func clampSpan(d0, d1 float64) (float64, float64) {
	if d1 < d0 {
		d0, d1 = d1, d0
	}
	if d1-d0 < MinSpan {
		d1 = d0 + MinSpan
	}
	return d0, d1
}

func (s *Linear) String() string {
	return fmt.Sprintf("[%g,%g]→[%g,%g]", s.d0, s.d1, s.r0, s.r1)
}

// Domain returns the domain interval.
func (s *Linear) Domain() (float64, float64) {
	return s.d0, s.d1
}

// Range returns the range interval.
func (s *Linear) Range() (float64, float64) {
	return s.r0, s.r1
}

// Factor is the range extent per domain unit.
func (s *Linear) Factor() float64 {
	return (s.r1 - s.r0) / (s.d1 - s.d0)
}

// Map maps a domain value onto the range.
func (s *Linear) Map(v float64) float64 {
	return s.r0 + (v-s.d0)*s.Factor()
}

// Invert maps a range value back into the domain.
func (s *Linear) Invert(r float64) float64 {
	return s.d0 + (r-s.r0)/s.Factor()
}

// Nice extends the domain outward to multiples of a tick step suitable for
// roughly count ticks. The step is re-derived from the widened domain until
// it settles.
func (s *Linear) Nice(count int) *Linear {
	d0, d1 := s.d0, s.d1
	prestep := 0.0
	for i := 0; i < 10; i++ {
		step := tickIncrement(d0, d1, count)
		if step == prestep {
			break
		}
		switch {
		case step > 0:
			d0 = math.Floor(d0/step) * step
			d1 = math.Ceil(d1/step) * step
		case step < 0:
			d0 = math.Ceil(d0*step) / step
			d1 = math.Floor(d1*step) / step
		default:
			return s
		}
		prestep = step
	}
	s.d0, s.d1 = d0, d1
	return s
}

// Ticks returns tick values within the domain for roughly count ticks.
func (s *Linear) Ticks(count int) []float64 {
	step := tickIncrement(s.d0, s.d1, count)
	if step == 0 || !wellpath.IsFinite(step) {
		return nil
	}
	var ticks []float64
	if step > 0 {
		i0, i1 := math.Ceil(s.d0/step), math.Floor(s.d1/step)
		for i := i0; i <= i1; i++ {
			ticks = append(ticks, i*step)
		}
	} else {
		inv := -step
		i0, i1 := math.Ceil(s.d0*inv), math.Floor(s.d1*inv)
		for i := i0; i <= i1; i++ {
			ticks = append(ticks, i/inv)
		}
	}
	return ticks
}

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// tickIncrement returns the tick step for [start,stop] and count ticks.
// Steps ≥ 1 are returned as positive values; steps < 1 as the negative
// inverse, which keeps decimal fractions exact when dividing.
func tickIncrement(start, stop float64, count int) float64 {
	if count < 1 {
		count = 1
	}
	step := (stop - start) / float64(count)
	if step <= 0 || !wellpath.IsFinite(step) {
		return 0
	}
	power := math.Floor(math.Log10(step))
	err := step / math.Pow(10, power)
	factor := 1.0
	switch {
	case err >= e10:
		factor = 10
	case err >= e5:
		factor = 5
	case err >= e2:
		factor = 2
	}
	if power >= 0 {
		return factor * math.Pow(10, power)
	}
	return -math.Pow(10, -power) / factor
}

// PaddedDomain derives a domain from data values: the lower bound is the
// minimum reduced by 1% of the maximum, the upper bound is 5% above the
// maximum.
func PaddedDomain(values []float64) (float64, float64, error) {
	if len(values) == 0 {
		return 0, 0, ErrNoValues
	}
	lo, hi := floats.Min(values), floats.Max(values)
	return lo - 0.01*hi, 1.05 * hi, nil
}
