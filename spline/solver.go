package spline

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/wellpath"
)

// Validate checks if knots are solvable by Hobby interpolation: at least two
// finite knots, no two consecutive knots coinciding.
func Validate(knots []wellpath.Pair) error {
	n := len(knots)
	if n < 2 {
		return fmt.Errorf("%w: open path needs at least 2 knots, got %d", ErrTooFewKnots, n)
	}
	for i, z := range knots {
		if !z.IsFinite() {
			return fmt.Errorf("%w at knot %d", ErrInvalidKnot, i)
		}
	}
	for i := 0; i < n-1; i++ {
		if cmplx.Abs((knots[i+1] - knots[i]).C()) <= _epsilon {
			return fmt.Errorf("%w between knots %d and %d", ErrDegenerateSegment, i, i+1)
		}
	}
	return nil
}

// FindControls finds the Hobby-spline control points for an open path
// through knots.
func FindControls(knots []wellpath.Pair) (*Controls, error) {
	if err := Validate(knots); err != nil {
		return nil, err
	}
	n := len(knots)
	d := make([]float64, n)   // d.i = |z.[i+1] − z.i|
	psi := make([]float64, n) // turning angle at z.i
	for i := 0; i < n-1; i++ {
		d[i] = cmplx.Abs(delta(knots, i).C())
	}
	for i := 1; i < n-1; i++ {
		psi[i] = reduceAngle(cmplx.Phase(delta(knots, i).C()) - cmplx.Phase(delta(knots, i-1).C()))
	}
	theta := solveOpen(d, psi)
	controls := newControls(n)
	for i := 0; i < n-1; i++ {
		phi := -psi[i+1] - theta[i+1]
		p2, p3 := controlPoints(phi, theta[i], delta(knots, i))
		controls.postc[i] = knots[i] + p2
		controls.prec[i+1] = knots[i+1] - p3
	}
	tracer().Debugf("%s", AsString(knots, controls))
	return controls, nil
}

func delta(knots []wellpath.Pair, i int) wellpath.Pair {
	return knots[i+1] - knots[i]
}

// solveOpen solves the tridiagonal system for the outgoing angles theta.i,
// with curl 1 at both ends and tension 1 everywhere.
func solveOpen(d, psi []float64) []float64 {
	n := len(d)
	last := n - 1
	u := make([]float64, n)
	v := make([]float64, n)
	theta := make([]float64, n)
	// start with curl: ((3−a)c + b) / (ac + 3 − b) = 1 for a = b = c = 1
	u[0] = 1
	v[0] = -u[0] * psi[1%n]
	for i := 1; i < last; i++ {
		A := 1 / d[i-1]
		B := 2 / d[i-1]
		C := 2 / d[i]
		D := 1 / d[i]
		t := B - u[i-1]*A + C
		u[i] = D / t
		v[i] = (-B*psi[i] - D*psi[i+1] - A*v[i-1]) / t
	}
	// end with curl, as at the start
	u[last] = 1
	if den := u[last-1] - u[last]; math.Abs(den) > _epsilon {
		theta[last] = v[last-1] / den
	}
	for i := last - 1; i >= 0; i-- {
		theta[i] = v[i] - u[i]*theta[i+1]
	}
	return theta
}
