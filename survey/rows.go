package survey

import "math"

// Row is a single record of a survey data source, exposing numeric values
// by column name.
type Row interface {
	Value(field string) (float64, bool)
}

// Record is a Row backed by a map from column name to value.
type Record map[string]float64

// Value implements Row.
func (r Record) Value(field string) (float64, bool) {
	v, ok := r[field]
	return v, ok
}

// Fields names the source columns for the three survey values.
type Fields struct {
	Depth       string
	Inclination string
	Azimuth     string
}

// DefaultFields returns the column names "md", "inc" and "azi".
func DefaultFields() Fields {
	return Fields{Depth: "md", Inclination: "inc", Azimuth: "azi"}
}

// Extract reads measured depth, inclination and azimuth from every row.
// A row lacking one of the columns yields a *ValidationError wrapping
// ErrMissingField. Range checks are left to Validate.
func Extract(rows []Row, fields Fields) ([]RawStation, error) {
	raws := make([]RawStation, 0, len(rows))
	for i, row := range rows {
		var st RawStation
		for _, col := range []struct {
			name, field string
			dst         *float64
		}{
			{fields.Depth, FieldDepth, &st.MD},
			{fields.Inclination, FieldInclination, &st.Inc},
			{fields.Azimuth, FieldAzimuth, &st.Azi},
		} {
			v, ok := row.Value(col.name)
			if !ok {
				return nil, &ValidationError{Row: i + 1, Field: col.field, Value: math.NaN(), Err: ErrMissingField}
			}
			*col.dst = v
		}
		raws = append(raws, st)
	}
	return raws, nil
}
