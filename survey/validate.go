package survey

import (
	"slices"

	"github.com/npillmayer/wellpath"
)

// Validate checks every raw station against its physical domain, sorts the
// stations by measured depth and anchors the survey at the surface.
//
// Domains are: measured depth ≥ 0, inclination in [0,180], azimuth in
// [0,360). An azimuth of exactly 360 is rejected; callers must normalize it
// to 0. NaN or infinite values are rejected for every field.
//
// The sort is stable, i.e. stations with equal depth keep their input order.
// If the shallowest station lies deeper than SurfaceTolerance, a synthetic
// station {0, 0, 0} is prepended.
func Validate(raws []RawStation) ([]Station, error) {
	if len(raws) == 0 {
		return nil, ErrEmptySurvey
	}
	stations := make([]Station, len(raws))
	for i, raw := range raws {
		if err := checkStation(i+1, raw); err != nil {
			tracer().Infof("survey rejected: %v", err)
			return nil, err
		}
		stations[i] = Station{MD: raw.MD, Inc: raw.Inc, Azi: raw.Azi}
	}
	slices.SortStableFunc(stations, func(a, b Station) int {
		switch {
		case a.MD < b.MD:
			return -1
		case a.MD > b.MD:
			return 1
		}
		return 0
	})
	if stations[0].MD > SurfaceTolerance {
		tracer().Debugf("survey starts at md=%g, adding surface station", stations[0].MD)
		stations = slices.Insert(stations, 0, Station{Synthetic: true})
	}
	tracer().Debugf("validated %d stations", len(stations))
	return stations, nil
}

// Load extracts and validates a survey in one step.
func Load(rows []Row, fields Fields) ([]Station, error) {
	raws, err := Extract(rows, fields)
	if err != nil {
		return nil, err
	}
	return Validate(raws)
}

// Fields are checked in the order inclination, depth, azimuth; the first
// violation is reported.
func checkStation(row int, raw RawStation) error {
	if !wellpath.IsFinite(raw.Inc) || raw.Inc < 0 || raw.Inc > 180 {
		return &ValidationError{Row: row, Field: FieldInclination, Value: raw.Inc, Err: ErrOutOfRange}
	}
	if !wellpath.IsFinite(raw.MD) || raw.MD < 0 {
		return &ValidationError{Row: row, Field: FieldDepth, Value: raw.MD, Err: ErrOutOfRange}
	}
	if !wellpath.IsFinite(raw.Azi) || raw.Azi < 0 || raw.Azi >= 360 {
		return &ValidationError{Row: row, Field: FieldAzimuth, Value: raw.Azi, Err: ErrOutOfRange}
	}
	return nil
}
