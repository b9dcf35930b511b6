/*
Package survey turns raw directional-survey rows into validated stations.

A survey is a list of rows, each carrying measured depth, inclination and
azimuth. Clients hand rows to Load, which extracts the three values per
row, checks their physical ranges, sorts by measured depth and anchors the
survey at the wellhead:

	stations, err := survey.Load(rows, survey.DefaultFields())

On failure nothing is returned but the error. A *ValidationError names the
1-based row and the offending field; an empty survey yields ErrEmptySurvey.
Surfacing these to the user is left to the caller.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package survey
