/*
Package mincurve computes wellbore positions from survey stations using the
minimum-curvature method.

Between two consecutive stations the wellbore is modelled as a circular arc.
With inclinations I1, I2 and azimuths A1, A2 (radians) the dogleg angle is

	β = acos( sin I1 · sin I2 · (cos(A2−A1) − 1) + cos(I2−I1) )

and the ratio factor RF = 2/β · tan(β/2), or 1 for a straight segment.
For a course length ΔMD the increments are

	ΔTVD   = ΔMD/2 · RF · (cos I1 + cos I2)
	ΔNorth = ΔMD/2 · RF · (sin I1 · cos A1 + sin I2 · cos A2)
	ΔEast  = ΔMD/2 · RF · (sin I1 · sin A1 + sin I2 · sin A2)

The horizontal distance of the vertical section is the arc length of the
horizontal projection, accumulated as √(ΔNorth² + ΔEast²) per segment.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package mincurve

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/wellpath"
	"github.com/npillmayer/wellpath/survey"
)

// tracer writes to trace with key 'wellpath.mincurve'
func tracer() tracing.Trace {
	return tracing.Select("wellpath.mincurve")
}

// StraightDogleg is the dogleg angle (radians) below which a segment is
// treated as straight and the ratio factor is 1.
const StraightDogleg = 1e-5

// DefaultCourseLength is the course length dogleg severity is expressed for
// (degrees per 100 units of measured depth).
const DefaultCourseLength = 100.0

// ErrNoStations indicates an attempt to integrate an empty station list.
var ErrNoStations = errors.New("no stations to integrate")

// PositionedStation is a survey station with its position relative to the
// first station of the survey.
type PositionedStation struct {
	survey.Station
	North float64 // north/south offset, north positive
	East  float64 // east/west offset, east positive
	TVD   float64 // true vertical depth
	HD    float64 // cumulative horizontal distance along the projected path
	DLS   float64 // dogleg severity of the segment ending here, deg/course
}

func (ps PositionedStation) String() string {
	return fmt.Sprintf("md=%g tvd=%.4f hd=%.4f n=%.4f e=%.4f", ps.MD, ps.TVD, ps.HD, ps.North, ps.East)
}

// Increment is the positional change over one survey segment.
type Increment struct {
	DNorth float64
	DEast  float64
	DTVD   float64
	DS     float64 // horizontal arc distance
	Dogleg float64 // β in radians
}

// Dogleg returns the total angular change between two wellbore directions,
// given as inclination/azimuth in radians.
func Dogleg(i1, a1, i2, a2 float64) float64 {
	c := math.Sin(i1)*math.Sin(i2)*(math.Cos(a2-a1)-1) + math.Cos(i2-i1)
	// rounding may push c slightly outside of acos' domain
	c = math.Max(-1, math.Min(1, c))
	return math.Acos(c)
}

// RatioFactor returns the curvature correction for dogleg beta.
func RatioFactor(beta float64) float64 {
	if math.Abs(beta) <= StraightDogleg {
		return 1
	}
	return 2 * math.Tan(beta/2) / beta
}

// Segment computes the minimum-curvature increment from station st1 to st2.
func Segment(st1, st2 survey.Station) Increment {
	i1, i2 := st1.Inc*wellpath.Deg2Rad, st2.Inc*wellpath.Deg2Rad
	a1, a2 := st1.Azi*wellpath.Deg2Rad, st2.Azi*wellpath.Deg2Rad
	beta := Dogleg(i1, a1, i2, a2)
	rf := RatioFactor(beta)
	dmd := st2.MD - st1.MD
	f := dmd / 2 * rf
	si1, ci1 := math.Sincos(i1)
	si2, ci2 := math.Sincos(i2)
	inc := Increment{
		DTVD:   f * (ci1 + ci2),
		DNorth: f * (si1*math.Cos(a1) + si2*math.Cos(a2)),
		DEast:  f * (si1*math.Sin(a1) + si2*math.Sin(a2)),
		Dogleg: beta,
	}
	inc.DS = math.Sqrt(inc.DEast*inc.DEast + inc.DNorth*inc.DNorth)
	return inc
}

// DoglegSeverity returns the dogleg of a segment in degrees per course
// length. A zero-length segment has severity 0.
func DoglegSeverity(st1, st2 survey.Station, course float64) float64 {
	return severity(Segment(st1, st2).Dogleg, st2.MD-st1.MD, course)
}

func severity(beta, dmd, course float64) float64 {
	if wellpath.Is0(dmd) {
		return 0
	}
	return beta * wellpath.Rad2Deg * course / dmd
}

// Integrate positions every station of a survey. The first station is the
// anchor, all of its derived values are 0. Every other station accumulates
// the increment of the segment ending at it onto its predecessor, so a
// station's position depends on the prefix of the survey only.
//
// Stations are expected in order of non-decreasing measured depth, as
// delivered by survey.Validate.
func Integrate(stations []survey.Station) ([]PositionedStation, error) {
	if len(stations) == 0 {
		return nil, ErrNoStations
	}
	pos := make([]PositionedStation, len(stations))
	pos[0] = PositionedStation{Station: stations[0]}
	for i := 1; i < len(stations); i++ {
		inc := Segment(stations[i-1], stations[i])
		prev := pos[i-1]
		pos[i] = PositionedStation{
			Station: stations[i],
			North:   prev.North + inc.DNorth,
			East:    prev.East + inc.DEast,
			TVD:     prev.TVD + inc.DTVD,
			HD:      prev.HD + inc.DS,
			DLS:     severity(inc.Dogleg, stations[i].MD-stations[i-1].MD, DefaultCourseLength),
		}
		tracer().Debugf("station %d: %s", i, pos[i])
	}
	return pos, nil
}
