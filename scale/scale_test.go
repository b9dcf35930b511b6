package scale

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/wellpath/mincurve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaddedDomain(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	lo, hi, err := PaddedDomain([]float64{0, 100})
	require.NoError(t, err)
	assert.Equal(t, -1.0, lo)
	assert.InDelta(t, 105.0, hi, 1e-12)
	_, _, err = PaddedDomain(nil)
	assert.ErrorIs(t, err, ErrNoValues)
}

func TestNice(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := NewLinear(-1, 105, 0, 1).Nice(20)
	d0, d1 := s.Domain()
	assert.Equal(t, -5.0, d0)
	assert.Equal(t, 105.0, d1)

	s = NewLinear(0.13, 9.87, 0, 1).Nice(10)
	d0, d1 = s.Domain()
	assert.Equal(t, 0.0, d0)
	assert.Equal(t, 10.0, d1)

	s = NewLinear(-9.55, 1002.6, 0, 1).Nice(20)
	d0, d1 = s.Domain()
	assert.Equal(t, -50.0, d0)
	assert.Equal(t, 1050.0, d1)
}

func TestNiceSmallSteps(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := NewLinear(0.23, 1.91, 0, 1).Nice(10)
	d0, d1 := s.Domain()
	assert.InDelta(t, 0.2, d0, 1e-12)
	assert.InDelta(t, 2.0, d1, 1e-12)
}

func TestTicks(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := NewLinear(0, 100, 0, 1)
	assert.Equal(t, []float64{0, 20, 40, 60, 80, 100}, s.Ticks(5))
	s = NewLinear(0, 1, 0, 1)
	assert.Equal(t, []float64{0, 0.5, 1}, s.Ticks(2))
}

func TestDegenerateDomainIsClamped(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := NewLinear(0, 0, 10, 110)
	d0, d1 := s.Domain()
	assert.Equal(t, MinSpan, d1-d0)
	v := s.Map(0)
	assert.False(t, math.IsNaN(v))
	assert.Equal(t, 10.0, v)
	assert.Equal(t, 0.0, s.Invert(10))
}

func TestMapInvert(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := NewLinear(-5, 105, 60, 770)
	assert.InDelta(t, 60.0, s.Map(-5), 1e-9)
	assert.InDelta(t, 770.0, s.Map(105), 1e-9)
	assert.InDelta(t, 42.0, s.Invert(s.Map(42)), 1e-9)
}

func TestMapFrame(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	stations := []mincurve.PositionedStation{
		{HD: 0, TVD: 0},
		{HD: 40, TVD: 500},
		{HD: 100, TVD: 900},
	}
	opts := DefaultOptions()
	f, err := Map(stations, opts)
	require.NoError(t, err)
	xr0, xr1 := f.X.Range()
	assert.Equal(t, opts.Margins.Left, xr0)
	assert.Equal(t, opts.Viewport.Width-opts.Margins.Right, xr1)
	yr0, yr1 := f.Y.Range()
	assert.Equal(t, opts.Margins.Top, yr0)
	assert.Equal(t, opts.Viewport.Height-opts.Margins.Bottom, yr1)
	xd0, xd1 := f.X.Domain()
	assert.Equal(t, -5.0, xd0)
	assert.Equal(t, 105.0, xd1)
	for _, st := range stations {
		p := f.Project(st.HD, st.TVD)
		assert.InDelta(t, f.X.Map(st.HD), p.X(), 1e-9)
		assert.InDelta(t, f.Y.Map(st.TVD), p.Y(), 1e-9)
	}
	// depth increases downwards
	assert.Greater(t, f.Project(0, 900).Y(), f.Project(0, 0).Y())
}

func TestFrameTransformCoefficients(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	x := NewLinear(0, 100, 60, 770)
	y := NewLinear(-10, 1000, 40, 570)
	at := NewFrame(x, y).AT()
	assert.InDelta(t, x.Factor(), at.Coeff(0, 0), 1e-12)
	assert.InDelta(t, y.Factor(), at.Coeff(1, 1), 1e-12)
	assert.InDelta(t, 0.0, at.Coeff(0, 1), 1e-12, "axes are independent")
	assert.InDelta(t, 60.0, at.Coeff(0, 2), 1e-9)
	assert.InDelta(t, 40.0+10*y.Factor(), at.Coeff(1, 2), 1e-9)
}

func TestMapSingleStation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f, err := Map([]mincurve.PositionedStation{{}}, DefaultOptions())
	require.NoError(t, err)
	p := f.Project(0, 0)
	assert.True(t, p.IsFinite())
}

func TestMapViewportTooSmall(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	opts := DefaultOptions()
	opts.Viewport.Width = 50
	_, err := Map([]mincurve.PositionedStation{{}}, opts)
	assert.ErrorIs(t, err, ErrViewportTooSmall)
	_, err = Map(nil, DefaultOptions())
	assert.ErrorIs(t, err, ErrNoValues)
}
