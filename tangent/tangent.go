/*
Package tangent estimates, per station, the direction normal to a plotted
trajectory.

Offset curves around the centerline are drawn in plot space and have to
look perpendicular there, so slopes are taken from mapped coordinates
rather than from physical positions. Padding and rounding of the scales
change apparent angles.

The slope at a station is estimated by finite differences, depending on
where the station sits in the survey:

	First     forward secant to the next station
	Interior  mean of forward and backward secants
	Last      backward secant from the previous station
	Sole      no neighbours, no slope

Theta is the angle of the normal, atan(−1/m), in [0, π). Stations where
theta is undefined take it from the fallback policy CarryLast.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package tangent

import (
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/wellpath"
	"github.com/npillmayer/wellpath/mincurve"
)

// tracer writes to trace with key 'wellpath.tangent'
func tracer() tracing.Trace {
	return tracing.Select("wellpath.tangent")
}

// FirstStationTheta is the normal used for a first station whose own
// estimate is undefined. 0 is the normal of a vertical hole.
const FirstStationTheta = 0.0

// Projector maps a (horizontal distance, true vertical depth) position into
// plot space. *scale.Frame is a Projector.
type Projector interface {
	Project(hd, tvd float64) wellpath.Pair
}

// PlottedStation is a positioned station together with its plot-space
// location and normal angle.
type PlottedStation struct {
	mincurve.PositionedStation
	Point wellpath.Pair // location in plot space
	Theta float64       // normal angle in radians, [0, π)
}

func (ps PlottedStation) String() string {
	return fmt.Sprintf("%s @%s θ=%.4f", ps.PositionedStation, ps.Point, ps.Theta)
}

// Position classifies a station by its neighbours.
type Position int8

// Station positions within a survey.
const (
	Sole Position = iota
	First
	Interior
	Last
)

func (p Position) String() string {
	switch p {
	case Sole:
		return "sole"
	case First:
		return "first"
	case Interior:
		return "interior"
	case Last:
		return "last"
	}
	return "?"
}

// PositionOf classifies index i of a survey with n stations.
func PositionOf(i, n int) Position {
	switch {
	case n <= 1:
		return Sole
	case i == 0:
		return First
	case i == n-1:
		return Last
	}
	return Interior
}

// secant is the slope between plot points p and q, with the y-axis
// pointing downwards.
func secant(p, q wellpath.Pair) float64 {
	return (p.Y() - q.Y()) / (q.X() - p.X())
}

// Slope estimates the slope at index i of plot points pts. The result may be
// ±Inf (vertical) or NaN (undefined).
func Slope(pts []wellpath.Pair, i int) float64 {
	switch PositionOf(i, len(pts)) {
	case First:
		return secant(pts[i], pts[i+1])
	case Last:
		return secant(pts[i-1], pts[i])
	case Interior:
		return 0.5*secant(pts[i], pts[i+1]) + 0.5*secant(pts[i-1], pts[i])
	}
	return math.NaN()
}

// Normal returns the angle of the normal to slope m, in [0, π).
// It is NaN if m is NaN.
func Normal(m float64) float64 {
	theta := math.Atan(-1 / m)
	if theta < 0 {
		theta += math.Pi
	}
	if theta >= math.Pi { // tiny negative angles round up to π
		theta -= math.Pi
	}
	if theta == 0 {
		theta = 0 // clear the sign of -0
	}
	return theta
}

// CarryLast is the fallback policy for stations with an undefined normal:
// the theta of the previous station is kept. The first station has no
// predecessor and gets FirstStationTheta.
func CarryLast(plotted []PlottedStation, i int) float64 {
	if i == 0 {
		return FirstStationTheta
	}
	return plotted[i-1].Theta
}

// Estimate projects every station into plot space and computes its normal
// angle. The input is not modified.
func Estimate(stations []mincurve.PositionedStation, proj Projector) []PlottedStation {
	pts := make([]wellpath.Pair, len(stations))
	for i, st := range stations {
		pts[i] = proj.Project(st.HD, st.TVD)
	}
	plotted := make([]PlottedStation, len(stations))
	for i, st := range stations {
		plotted[i] = PlottedStation{PositionedStation: st, Point: pts[i]}
		theta := Normal(Slope(pts, i))
		if math.IsNaN(theta) {
			theta = CarryLast(plotted, i)
			tracer().Debugf("station %d (%s): no normal, using θ=%.4f", i, PositionOf(i, len(pts)), theta)
		}
		plotted[i].Theta = theta
	}
	return plotted
}
