package spline

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/wellpath"
)

func hobbyParamsAlphaBeta(theta, phi float64) (float64, float64) {
	constA := 1.41421356         // sqrt(2) -- empiric constants, as explained by J.Hobby
	constB := 0.0625             // 1/16
	constC := 0.38196601125      // (3 - sqrt(5)) / 2
	constCC := 0.61803398875     // 1 - c
	st, ct := math.Sincos(theta) // in-angle
	sf, cf := math.Sincos(phi)   // out-angle
	alpha := constA * (st - constB*sf) * (sf - constB*st) * (ct - cf)
	beta := 1 + constCC*ct + constC*cf
	return alpha, beta
}

func hobbyParamsRhoSigma(alpha, beta float64) (float64, float64) {
	rho := (2 + alpha) / beta
	sigma := (2 - alpha) / beta
	return rho, sigma
}

// Unit vectors of the control directions: dvec rotated by theta, and dvec
// rotated by −phi.
func cunitvecs(theta, phi float64, dvec wellpath.Pair) (wellpath.Pair, wellpath.Pair) {
	return dvec.Rotated(theta), dvec.Rotated(-phi)
}

// Calculate control point offsets between z.i and z.[i+1], for neutral
// tension.
func controlPoints(phi, theta float64, dvec wellpath.Pair) (wellpath.Pair, wellpath.Pair) {
	alpha, beta := hobbyParamsAlphaBeta(theta, phi)
	rho, sigma := hobbyParamsRhoSigma(alpha, beta)
	uv1, uv2 := cunitvecs(theta, phi, dvec)
	return uv1.Scaled(rho / 3), uv2.Scaled(sigma / 3)
}

// Reduce an angle to fit into -pi .. pi.
func reduceAngle(a float64) float64 {
	if math.Abs(a) > math.Pi {
		if a > 0 {
			a -= 2 * math.Pi
		} else {
			a += 2 * math.Pi
		}
	}
	return a
}

func ptstring(p wellpath.Pair, iscontrol bool) string {
	if cmplx.IsNaN(p.C()) {
		return "(<unknown>)"
	}
	if iscontrol {
		return fmt.Sprintf("(%.4f,%.4f)", round(p.X()), round(p.Y()))
	}
	return fmt.Sprintf("(%.4g,%.4g)", round(p.X()), round(p.Y()))
}

func round(x float64) float64 {
	return math.Round(x*10000.0) / 10000.0
}
