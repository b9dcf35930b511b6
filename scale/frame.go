package scale

import (
	"fmt"

	"github.com/npillmayer/wellpath"
	"github.com/npillmayer/wellpath/mincurve"
)

// Frame is the pair of scales a vertical section is drawn with.
// X maps cumulative horizontal distance, Y maps true vertical depth, with
// depth increasing downwards.
type Frame struct {
	X, Y *Linear
	at   wellpath.AT
}

// NewFrame combines two scales into a frame.
func NewFrame(x, y *Linear) *Frame {
	f := &Frame{X: x, Y: y}
	// v ↦ r0 + (v − d0)·k, per axis
	dx0, _ := x.Domain()
	dy0, _ := y.Domain()
	rx0, _ := x.Range()
	ry0, _ := y.Range()
	f.at = wellpath.Translation(wellpath.P(-dx0, -dy0)).
		Combine(wellpath.Scaling(x.Factor(), y.Factor())).
		Combine(wellpath.Translation(wellpath.P(rx0, ry0)))
	return f
}

func (f *Frame) String() string {
	return fmt.Sprintf("frame{x=%s, y=%s}", f.X, f.Y)
}

// AT returns the affine transform from (HD, TVD) to plot coordinates.
func (f *Frame) AT() wellpath.AT {
	return f.at
}

// Project maps a (horizontal distance, true vertical depth) position into
// plot space.
func (f *Frame) Project(hd, tvd float64) wellpath.Pair {
	return f.at.Transform(wellpath.P(hd, tvd))
}

// Map derives the frame for a positioned survey: horizontal distance onto
// [Left, Width−Right] and true vertical depth onto [Top, Height−Bottom].
// Both domains are padded (see PaddedDomain) and rounded for the configured
// tick count.
func Map(stations []mincurve.PositionedStation, opts Options) (*Frame, error) {
	if len(stations) == 0 {
		return nil, ErrNoValues
	}
	m, vp := opts.Margins, opts.Viewport
	xr0, xr1 := m.Left, vp.Width-m.Right
	yr0, yr1 := m.Top, vp.Height-m.Bottom
	if xr1 <= xr0 || yr1 <= yr0 {
		return nil, fmt.Errorf("%w: plot area %gx%g", ErrViewportTooSmall, xr1-xr0, yr1-yr0)
	}
	hd := make([]float64, len(stations))
	tvd := make([]float64, len(stations))
	for i, st := range stations {
		hd[i], tvd[i] = st.HD, st.TVD
	}
	count := opts.tickCount()
	x, err := axis(hd, xr0, xr1, count)
	if err != nil {
		return nil, err
	}
	y, err := axis(tvd, yr0, yr1, count)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("scales: x=%s, y=%s", x, y)
	return NewFrame(x, y), nil
}

func axis(values []float64, r0, r1 float64, count int) (*Linear, error) {
	d0, d1, err := PaddedDomain(values)
	if err != nil {
		return nil, err
	}
	return NewLinear(d0, d1, r0, r1).Nice(count), nil
}
