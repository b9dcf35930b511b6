/*
Package casing computes the offset envelope drawn around a plotted
wellbore centerline.

Every station is offset by a half-width along its normal, giving a left and
a right knot. Knots are connected by Hobby splines (package spline) for
drawing. The straight-line quads between consecutive stations form the
outline, which is what hit-testing works on. A quad whose sides cross,
where the centerline turns sharply compared to the casing width, is left
out of the outline.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package casing

import (
	"errors"
	"fmt"
	"math"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/wellpath"
	"github.com/npillmayer/wellpath/spline"
	"github.com/npillmayer/wellpath/tangent"
)

// tracer writes to trace with key 'wellpath.casing'
func tracer() tracing.Trace {
	return tracing.Select("wellpath.casing")
}

var (
	// ErrInvalidWidth indicates a non-positive or non-finite half-width.
	ErrInvalidWidth = errors.New("casing half-width must be positive")
	// ErrNoStations indicates an envelope request for an empty trajectory.
	ErrNoStations = errors.New("no stations for casing")
)

// Envelope is the casing drawn around a centerline, in plot space.
type Envelope struct {
	Left, Right           []wellpath.Pair   // offset knot per station
	LeftCurve, RightCurve []spline.Segment  // smoothed offsets; empty for a single station
	Outline               [][]wellpath.Pair // outline quads, positive signed area
	Min, Max              wellpath.Pair     // bounding box

	quads polyclip.Polygon
}

// Normal returns the offset vector of length w for normal angle theta.
// Plot space has its y-axis pointing downwards.
func Normal(theta, w float64) wellpath.Pair {
	return wellpath.P(w, 0).Rotated(-theta)
}

// Offsets returns the left and right offset knots of the stations, at
// distance halfWidth from the centerline.
//
// Theta is defined modulo π only. A normal pointing away from the normal of
// the previous station is reversed, so left knots stay on one side of the
// centerline.
func Offsets(stations []tangent.PlottedStation, halfWidth float64) (left, right []wellpath.Pair) {
	left = make([]wellpath.Pair, len(stations))
	right = make([]wellpath.Pair, len(stations))
	var prev wellpath.Pair
	for i, st := range stations {
		n := Normal(st.Theta, halfWidth)
		if i > 0 && dot(prev, n) < 0 {
			n = -n
		}
		left[i], right[i] = st.Point.Shifted(n), st.Point.Shifted(-n)
		prev = n
	}
	return left, right
}

// Build computes the casing envelope of plotted stations.
func Build(stations []tangent.PlottedStation, halfWidth float64) (*Envelope, error) {
	if len(stations) == 0 {
		return nil, ErrNoStations
	}
	if !wellpath.IsFinite(halfWidth) || halfWidth <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidWidth, halfWidth)
	}
	env := &Envelope{}
	env.Left, env.Right = Offsets(stations, halfWidth)
	var err error
	if env.LeftCurve, err = smooth(env.Left); err != nil {
		return nil, err
	}
	if env.RightCurve, err = smooth(env.Right); err != nil {
		return nil, err
	}
	env.quads = quads(stations, env.Left, env.Right)
	for _, c := range env.quads {
		contour := make([]wellpath.Pair, len(c))
		for i, pt := range c {
			contour[i] = wellpath.P(pt.X, pt.Y)
		}
		env.Outline = append(env.Outline, contour)
	}
	env.Min, env.Max = bounds(env.quads, env.Left, env.Right)
	tracer().Debugf("casing: %d stations, %d outline quads, bbox %s..%s",
		len(stations), len(env.Outline), env.Min, env.Max)
	return env, nil
}

// Contains reports whether p lies inside the outline.
func (env *Envelope) Contains(p wellpath.Pair) bool {
	pt := point(p)
	for _, c := range env.quads {
		if c.Contains(pt) {
			return true
		}
	}
	return false
}

// smooth fits a spline through knots, skipping knots which coincide with
// their predecessor. Fewer than two distinct knots give no curve.
func smooth(knots []wellpath.Pair) ([]spline.Segment, error) {
	distinct := make([]wellpath.Pair, 0, len(knots))
	for _, k := range knots {
		if n := len(distinct); n > 0 && distinct[n-1].Dist(k) <= wellpath.Epsilon {
			continue
		}
		distinct = append(distinct, k)
	}
	if len(distinct) < 2 {
		return nil, nil
	}
	controls, err := spline.FindControls(distinct)
	if err != nil {
		return nil, err
	}
	return spline.Segments(distinct, controls), nil
}

// quads collects the quads between consecutive stations, each one oriented
// counter-clockwise. Quads of stations sharing a plot point have no area
// and are skipped, as are quads which are not simple polygons.
// Quads are kept apart: overlaying them is left to the renderer's fill.
func quads(stations []tangent.PlottedStation, left, right []wellpath.Pair) polyclip.Polygon {
	var poly polyclip.Polygon
	for i := 0; i+1 < len(stations); i++ {
		if stations[i].Point.Dist(stations[i+1].Point) <= wellpath.Epsilon {
			continue
		}
		q := []wellpath.Pair{left[i], left[i+1], right[i+1], right[i]}
		if !simple(q) {
			tracer().Debugf("casing: segment %d folds over, no outline quad", i)
			continue
		}
		a := area(q)
		if math.Abs(a) <= wellpath.Epsilon {
			continue
		}
		if a < 0 {
			q[1], q[3] = q[3], q[1]
		}
		c := make(polyclip.Contour, 0, len(q))
		for _, p := range q {
			c.Add(point(p))
		}
		poly.Add(c)
	}
	return poly
}

// simple is true for a quad with finite corners whose opposite sides do not
// meet.
func simple(q []wellpath.Pair) bool {
	for _, p := range q {
		if !p.IsFinite() {
			return false
		}
	}
	return !crosses(q[0], q[1], q[2], q[3]) && !crosses(q[1], q[2], q[3], q[0])
}

// crosses is true if segments ab and cd intersect or touch.
func crosses(a, b, c, d wellpath.Pair) bool {
	d1, d2 := turn(c, d, a), turn(c, d, b)
	d3, d4 := turn(a, b, c), turn(a, b, d)
	return d1*d2 <= 0 && d3*d4 <= 0
}

// turn is positive if o→a→b turns counter-clockwise (in y-up coordinates).
func turn(o, a, b wellpath.Pair) float64 {
	return (a.X()-o.X())*(b.Y()-o.Y()) - (a.Y()-o.Y())*(b.X()-o.X())
}

// area is the signed shoelace area of a polygon.
func area(pts []wellpath.Pair) float64 {
	var sum float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		sum += p.X()*q.Y() - q.X()*p.Y()
	}
	return sum / 2
}

func dot(a, b wellpath.Pair) float64 {
	return a.X()*b.X() + a.Y()*b.Y()
}

func point(p wellpath.Pair) polyclip.Point {
	return polyclip.Point{X: p.X(), Y: p.Y()}
}

func bounds(outline polyclip.Polygon, left, right []wellpath.Pair) (wellpath.Pair, wellpath.Pair) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	if len(outline) > 0 {
		bb := outline.BoundingBox()
		minX, minY, maxX, maxY = bb.Min.X, bb.Min.Y, bb.Max.X, bb.Max.Y
	}
	for _, pts := range [][]wellpath.Pair{left, right} {
		for _, p := range pts {
			minX, maxX = math.Min(minX, p.X()), math.Max(maxX, p.X())
			minY, maxY = math.Min(minY, p.Y()), math.Max(maxY, p.Y())
		}
	}
	return wellpath.P(minX, minY), wellpath.P(maxX, maxY)
}
