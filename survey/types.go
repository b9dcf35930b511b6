package survey

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'wellpath.survey'
func tracer() tracing.Trace {
	return tracing.Select("wellpath.survey")
}

// SurfaceTolerance is the depth above which a survey is considered not to
// start at the wellhead. Such surveys get a synthetic surface station.
const SurfaceTolerance = 0.1

var (
	// ErrEmptySurvey indicates that no usable stations are present.
	ErrEmptySurvey = errors.New("survey has no stations")
	// ErrOutOfRange indicates a value outside of its physical domain.
	ErrOutOfRange = errors.New("value out of range")
	// ErrMissingField indicates a row lacking one of the survey fields.
	ErrMissingField = errors.New("missing field")
)

// Field names of the three survey values, as used in error messages.
const (
	FieldDepth       = "measured depth"
	FieldInclination = "inclination"
	FieldAzimuth     = "azimuth"
)

// RawStation is a survey row as read from the source, before any checks.
// Angles are in degrees.
type RawStation struct {
	MD  float64 // measured depth
	Inc float64 // inclination, [0,180]
	Azi float64 // azimuth, [0,360)
}

// Station is a validated survey station. Stations of a survey are ordered
// by non-decreasing measured depth.
type Station struct {
	MD        float64 // measured depth
	Inc       float64 // inclination in degrees
	Azi       float64 // azimuth in degrees
	Synthetic bool    // inserted surface station, not part of the input
}

func (st Station) String() string {
	return fmt.Sprintf("md=%g inc=%g azi=%g", st.MD, st.Inc, st.Azi)
}

// ValidationError reports a row whose value is outside of its domain.
type ValidationError struct {
	Row   int     // 1-based index into the input rows
	Field string  // one of the Field... constants
	Value float64 // offending value; NaN for missing fields
	Err   error   // ErrOutOfRange or ErrMissingField
}

func (e *ValidationError) Error() string {
	if errors.Is(e.Err, ErrMissingField) {
		return fmt.Sprintf("row %d: %s: %v", e.Row, e.Field, e.Err)
	}
	return fmt.Sprintf("row %d: %s %g: %v", e.Row, e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
