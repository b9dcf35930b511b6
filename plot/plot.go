/*
Package plot runs one render cycle of a vertical-section well plot.

A cycle takes the current survey rows and the plot configuration and
produces everything a renderer needs: the plotted stations with their
normal angles, the two scales and the casing envelope. Every cycle starts
from scratch; nothing is carried over from earlier cycles.

	res, err := plot.Run(plot.Request{
	    Enabled: true,
	    Rows:    rows,
	    Fields:  survey.DefaultFields(),
	    Config:  plot.DefaultConfig(),
	})
	overlay.Report(err)

Errors of a cycle are returned, not displayed. Overlay is a small helper
for hosts which show fetch and validation problems in two separate places.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package plot

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/wellpath/casing"
	"github.com/npillmayer/wellpath/mincurve"
	"github.com/npillmayer/wellpath/scale"
	"github.com/npillmayer/wellpath/survey"
	"github.com/npillmayer/wellpath/tangent"
)

// tracer writes to trace with key 'wellpath.plot'
func tracer() tracing.Trace {
	return tracing.Select("wellpath.plot")
}

// Config collects the settings of a cycle.
type Config struct {
	Scale           scale.Options
	CasingHalfWidth float64 // in plot units
}

// DefaultConfig returns the default scale options and a casing half-width
// of 6 plot units.
func DefaultConfig() Config {
	return Config{
		Scale:           scale.DefaultOptions(),
		CasingHalfWidth: 6,
	}
}

// Request is the input of a render cycle.
type Request struct {
	// Enabled gates the cycle. Hosts clear it while an unrelated interaction
	// (e.g. a drag selection) is in progress.
	Enabled bool
	// Rows are the survey rows as delivered by the data source.
	Rows []survey.Row
	// Fields names the survey columns within Rows.
	Fields survey.Fields
	// FetchErr is the error the data source reported, if any. A cycle with
	// a fetch error does not look at Rows.
	FetchErr error
	Config   Config
}

// Result is the output of a render cycle.
type Result struct {
	Skipped   bool // cycle was disabled, nothing computed
	Stations  []tangent.PlottedStation
	Frame     *scale.Frame
	Casing    *casing.Envelope
	// CasingErr is set, with Casing nil, if the envelope could not be built.
	CasingErr error
}

// Run performs one cycle: validate → integrate → scale → estimate normals
// → casing. An error up to the normals ends the cycle; the renderer is
// expected to clear its output then. Casing errors are reported in
// Result.CasingErr only.
func Run(req Request) (*Result, error) {
	if !req.Enabled {
		tracer().Debugf("render cycle disabled")
		return &Result{Skipped: true}, nil
	}
	if req.FetchErr != nil {
		return nil, &FetchError{Err: req.FetchErr}
	}
	stations, err := survey.Load(req.Rows, req.Fields)
	if err != nil {
		return nil, err
	}
	positioned, err := mincurve.Integrate(stations)
	if err != nil {
		return nil, err
	}
	frame, err := scale.Map(positioned, req.Config.Scale)
	if err != nil {
		return nil, err
	}
	plotted := tangent.Estimate(positioned, frame)
	res := &Result{
		Stations: plotted,
		Frame:    frame,
	}
	if res.Casing, res.CasingErr = casing.Build(plotted, req.Config.CasingHalfWidth); res.CasingErr != nil {
		tracer().Errorf("render cycle without casing: %v", res.CasingErr)
	}
	tracer().Infof("render cycle: %d stations, %s", len(plotted), frame)
	return res, nil
}
