package casing

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/wellpath"
	"github.com/npillmayer/wellpath/tangent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plotted(theta float64, pts ...wellpath.Pair) []tangent.PlottedStation {
	stations := make([]tangent.PlottedStation, len(pts))
	for i, p := range pts {
		stations[i] = tangent.PlottedStation{Point: p, Theta: theta}
	}
	return stations
}

func TestNormalDirections(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.True(t, Normal(0, 5).Equal(wellpath.P(5, 0)), "vertical hole offsets sideways")
	assert.True(t, Normal(math.Pi/2, 5).Equal(wellpath.P(0, -5)), "horizontal hole offsets up/down")
	n := Normal(math.Pi/4, 1)
	assert.InDelta(t, math.Sqrt2/2, n.X(), 1e-12)
	assert.InDelta(t, -math.Sqrt2/2, n.Y(), 1e-12)
}

func TestOffsetsKeepDistance(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	stations := []tangent.PlottedStation{
		{Point: wellpath.P(10, 10), Theta: 0.3},
		{Point: wellpath.P(20, 35), Theta: 1.2},
		{Point: wellpath.P(50, 45), Theta: 2.9},
	}
	left, right := Offsets(stations, 4)
	for i, st := range stations {
		assert.InDelta(t, 4.0, st.Point.Dist(left[i]), 1e-9)
		assert.InDelta(t, 4.0, st.Point.Dist(right[i]), 1e-9)
		mid := (left[i] + right[i]).Scaled(0.5)
		assert.True(t, mid.Equal(st.Point), "offsets are symmetric")
	}
}

func TestBuildVerticalWell(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	stations := plotted(0, wellpath.P(100, 0), wellpath.P(100, 50), wellpath.P(100, 100))
	env, err := Build(stations, 5)
	require.NoError(t, err)
	assert.Equal(t, wellpath.P(105, 0), env.Left[0])
	assert.Equal(t, wellpath.P(95, 100), env.Right[2])
	require.Len(t, env.LeftCurve, 2)
	require.Len(t, env.RightCurve, 2)
	assert.InDelta(t, 105.0, env.LeftCurve[0].At(0.5).X(), 1e-9, "straight offsets stay straight")
	assert.NotEmpty(t, env.Outline)
	assert.InDelta(t, 95.0, env.Min.X(), 1e-9)
	assert.InDelta(t, 0.0, env.Min.Y(), 1e-9)
	assert.InDelta(t, 105.0, env.Max.X(), 1e-9)
	assert.InDelta(t, 100.0, env.Max.Y(), 1e-9)
}

func TestBuildSingleStation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	env, err := Build(plotted(0, wellpath.P(60, 40)), 3)
	require.NoError(t, err)
	assert.Empty(t, env.LeftCurve)
	assert.Empty(t, env.RightCurve)
	assert.Empty(t, env.Outline)
	assert.Equal(t, wellpath.P(57, 40), env.Min)
	assert.Equal(t, wellpath.P(63, 40), env.Max)
}

func TestBuildSkipsCoincidentStations(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	stations := plotted(math.Pi/2, wellpath.P(0, 10), wellpath.P(0, 10), wellpath.P(40, 10))
	env, err := Build(stations, 2)
	require.NoError(t, err)
	assert.Len(t, env.LeftCurve, 1)
	assert.NotEmpty(t, env.Outline)
}

func TestBuildRejectsBadInput(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := Build(nil, 1)
	assert.ErrorIs(t, err, ErrNoStations)
	_, err = Build(plotted(0, wellpath.P(0, 0)), 0)
	assert.ErrorIs(t, err, ErrInvalidWidth)
	_, err = Build(plotted(0, wellpath.P(0, 0)), math.NaN())
	assert.ErrorIs(t, err, ErrInvalidWidth)
}

func TestOffsetsKeepSideAcrossThetaWrap(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	stations := []tangent.PlottedStation{
		{Point: wellpath.P(0, 0), Theta: 0.1},
		{Point: wellpath.P(0, 10), Theta: math.Pi - 0.1},
	}
	left, right := Offsets(stations, 1)
	assert.Greater(t, left[0].X(), 0.0)
	assert.Greater(t, left[1].X(), 0.0, "left knot must not swap sides")
	assert.Less(t, right[1].X(), 0.0)
	assert.InDelta(t, 1.0, stations[1].Point.Dist(left[1]), 1e-9)
}

func TestBuildSkipsFoldedQuads(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	stations := []tangent.PlottedStation{
		{Point: wellpath.P(0, 0), Theta: 0},
		{Point: wellpath.P(0, 1), Theta: 1.37},
		{Point: wellpath.P(0, 21), Theta: 1.37},
	}
	env, err := Build(stations, 5)
	require.NoError(t, err)
	require.Len(t, env.Outline, 1, "sharp turn over a short segment gives no quad")
	assert.True(t, env.Outline[0][0].Equal(env.Left[1]))
	assert.Len(t, env.LeftCurve, 2)
}

func TestOutlineQuadsArePositive(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, theta := range []float64{0, 0.4, math.Pi / 2, 2.8} {
		stations := plotted(theta, wellpath.P(10, 10), wellpath.P(30, 40), wellpath.P(70, 60))
		env, err := Build(stations, 3)
		require.NoError(t, err)
		for i, q := range env.Outline {
			assert.Greater(t, area(q), 0.0, "theta %g, quad %d", theta, i)
		}
	}
}

func TestEnvelopeContains(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	env, err := Build(plotted(0, wellpath.P(100, 0), wellpath.P(100, 50), wellpath.P(100, 100)), 5)
	require.NoError(t, err)
	assert.True(t, env.Contains(wellpath.P(100, 50)))
	assert.True(t, env.Contains(wellpath.P(103, 20)))
	assert.False(t, env.Contains(wellpath.P(110, 50)))
	assert.False(t, env.Contains(wellpath.P(100, 150)))
	single, err := Build(plotted(0, wellpath.P(0, 0)), 5)
	require.NoError(t, err)
	assert.False(t, single.Contains(wellpath.P(0, 0)))
}
