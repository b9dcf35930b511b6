package spline

import (
	"errors"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/wellpath"
)

// tracer writes to trace with key 'wellpath.spline'
func tracer() tracing.Trace {
	return tracing.Select("wellpath.spline")
}

const _epsilon = 0.0000001

var (
	// ErrTooFewKnots indicates path knot count is insufficient for solving.
	ErrTooFewKnots = errors.New("path has too few knots")
	// ErrInvalidKnot indicates a knot coordinate contains NaN/Inf.
	ErrInvalidKnot = errors.New("path has invalid knot coordinate")
	// ErrDegenerateSegment indicates two consecutive knots collapse to one point.
	ErrDegenerateSegment = errors.New("path has degenerate segment")
)

// Controls collects calculated spline control points. Knot i has a
// pre-control (towards knot i-1) and a post-control (towards knot i+1).
type Controls struct {
	prec  []wellpath.Pair // control point i-
	postc []wellpath.Pair // control point i+
}

func newControls(n int) *Controls {
	c := &Controls{
		prec:  make([]wellpath.Pair, n),
		postc: make([]wellpath.Pair, n),
	}
	for i := 0; i < n; i++ {
		c.prec[i] = wellpath.Pair(cmplx.NaN())
		c.postc[i] = wellpath.Pair(cmplx.NaN())
	}
	return c
}

// Pre returns the control point before knot i, or NaN if there is none.
func (ctrls *Controls) Pre(i int) wellpath.Pair {
	if i < 0 || i >= len(ctrls.prec) {
		return wellpath.Pair(cmplx.NaN())
	}
	return ctrls.prec[i]
}

// Post returns the control point after knot i, or NaN if there is none.
func (ctrls *Controls) Post(i int) wellpath.Pair {
	if i < 0 || i >= len(ctrls.postc) {
		return wellpath.Pair(cmplx.NaN())
	}
	return ctrls.postc[i]
}

// Segment is a cubic Bézier curve between two knots.
type Segment struct {
	Start, C1, C2, End wellpath.Pair
}

// At evaluates the segment at parameter t in [0,1].
func (seg Segment) At(t float64) wellpath.Pair {
	s := 1 - t
	return seg.Start.Scaled(s*s*s) + seg.C1.Scaled(3*s*s*t) +
		seg.C2.Scaled(3*s*t*t) + seg.End.Scaled(t*t*t)
}

// Segments returns the Bézier segments of a solved path.
func Segments(knots []wellpath.Pair, controls *Controls) []Segment {
	if len(knots) < 2 {
		return nil
	}
	segs := make([]Segment, len(knots)-1)
	for i := range segs {
		segs[i] = Segment{
			Start: knots[i],
			C1:    controls.Post(i),
			C2:    controls.Pre(i + 1),
			End:   knots[i+1],
		}
	}
	return segs
}
