package ingest_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourbench/ingest"
	"github.com/katalvlaran/tourbench/tour"
)

const featureCollection = `{
	"type": "FeatureCollection",
	"features": [
		{"type": "Feature", "geometry": {"type": "Point", "coordinates": [2, 3]}, "properties": {}},
		{"type": "Feature", "geometry": {"type": "MultiPoint", "coordinates": [[4, 5], [6, 7]]}, "properties": {}},
		{"type": "Feature", "geometry": {"type": "LineString", "coordinates": [[0, 0], [1, 1]]}, "properties": {}}
	]
}`

func TestGeoJSON_PointsAndMultiPoints(t *testing.T) {
	cities, err := ingest.GeoJSON(strings.NewReader(featureCollection), ingest.WithScale(1, 1))
	require.NoError(t, err)

	// Three point coordinates survive; the LineString is ignored.
	require.Len(t, cities, 3)
	assert.Contains(t, cities, tour.City{X: 2, Y: 3})
	assert.Contains(t, cities, tour.City{X: 4, Y: 5})
	assert.Contains(t, cities, tour.City{X: 6, Y: 7})
}

func TestGeoJSON_DefaultProjection(t *testing.T) {
	src := `{"type": "FeatureCollection", "features": [
		{"type": "Feature", "geometry": {"type": "Point", "coordinates": [-122.4, 37.8]}, "properties": {}}
	]}`
	cities, err := ingest.GeoJSON(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, cities, 1)

	// Longitude scales by -48 into X, latitude by 69 into Y.
	assert.InDelta(t, ingest.DefaultLongScale*-122.4, cities[0].X, 1e-9)
	assert.InDelta(t, ingest.DefaultLatScale*37.8, cities[0].Y, 1e-9)
}

func TestGeoJSON_Errors(t *testing.T) {
	_, err := ingest.GeoJSON(strings.NewReader(`{"type": "FeatureCollection", "features": []}`))
	require.ErrorIs(t, err, ingest.ErrNoCities)

	_, err = ingest.GeoJSON(strings.NewReader(`not json`))
	require.Error(t, err)

	_, err = ingest.GeoJSON(strings.NewReader(featureCollection), ingest.WithScale(0, 1))
	require.ErrorIs(t, err, ingest.ErrBadScale)
}

const recordText = `[TCL] 33.786594 84.242009 urban stream Atlanta,GA
[TCL] 61.190093 149.868597 urban stream Anchorage,AK
[TCL] 21.306944 157.858333 urban stream Honolulu,HI
[TCL] 41.878114 87.629798 urban stream Chicago,IL
this line does not match at all
[TCL] 40.712775 74.005973 urban stream New York,NY
`

func TestRecords_ParsesAndSkips(t *testing.T) {
	cities, err := ingest.Records(strings.NewReader(recordText))
	require.NoError(t, err)

	// AK and HI are skipped by default; the malformed line is dropped.
	require.Len(t, cities, 3)

	want := tour.City{
		X: ingest.DefaultLongScale * 84.242009,
		Y: ingest.DefaultLatScale * 33.786594,
	}
	assert.Contains(t, cities, want)
}

func TestRecords_CustomSkipAndScale(t *testing.T) {
	cities, err := ingest.Records(strings.NewReader(recordText),
		ingest.WithScale(1, 1), ingest.WithSkip("IL", "NY"))
	require.NoError(t, err)

	// Now AK and HI are allowed again and IL/NY are dropped.
	require.Len(t, cities, 3)
	assert.Contains(t, cities, tour.City{X: 149.868597, Y: 61.190093})
}

func TestRecords_NoMatches(t *testing.T) {
	_, err := ingest.Records(strings.NewReader("nothing useful here\n"))
	require.ErrorIs(t, err, ingest.ErrNoCities)
}
