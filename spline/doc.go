// Package spline smooths plot-space polylines with John Hobby's spline
// interpolation.
/*

Offset curves of a casing envelope are only known at survey stations.
Connecting them by straight lines gives visible kinks at every station; a
Hobby spline through the same points bends smoothly and stays close to the
polyline. The primary source of information for "Hobby-splines" is:

   Smooth, Easy to Compute Interpolating Splines -- John D. Hobby
   Computer Science Dept. Stanford University
   Report No. STAN-CS-85-1047, Jan 1985

The practical algorithm is explained in

   Computers & Typesetting, Vol. B & D.

This package handles open paths only, with neutral tension (1) at every
join and neutral curl (1) at both ends. In MetaFont notation a path is

   z0 .. z1 .. z2 .. ... .. zn

Usage

   controls, err := spline.FindControls(knots)
   for _, seg := range spline.Segments(knots, controls) {
       // draw cubic Bézier seg.Start, seg.C1, seg.C2, seg.End
   }

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package spline

import (
	"fmt"

	"github.com/npillmayer/wellpath"
)

// AsString returns knots -- optionally including spline control points -- as a
// (debugging) string. The string contains newlines if control point information
// is present. Otherwise it will include the knot coordinates in one line.
//
// Example:
//
//	(0,0) .. controls (0.3333,0.0000) and (0.6667,0.0000)
//	  .. (1,0)
func AsString(knots []wellpath.Pair, contr *Controls) string {
	var s string
	for i, pt := range knots {
		if i > 0 {
			if contr != nil {
				s += fmt.Sprintf(" and %s\n  .. ", ptstring(contr.Pre(i), true))
			} else {
				s += " .. "
			}
		}
		s += ptstring(pt, false)
		if contr != nil && i < len(knots)-1 {
			s += fmt.Sprintf(" .. controls %s", ptstring(contr.Post(i), true))
		}
	}
	return s
}
