// Package ingest turns external geographic data into tour.Cities
// instances. It is a boundary adapter: the only contract it fulfils is
// "produce a finite set of City values" - no algorithmic logic lives here.
//
// Two sources are supported:
//
//   - GeoJSON - Point and MultiPoint features of a FeatureCollection,
//     decoded with github.com/paulmach/orb/geojson.
//   - Records - whitespace-separated "latitude longitude ... ST" lines in
//     the classic US-map format, with a skip list for unwanted state codes.
//
// Both apply a configurable linear projection (longitude*LongScale,
// latitude*LatScale) to obtain planar coordinates; the defaults match the
// historical continental-US benchmark map, where one degree of longitude
// spans about -48 planar units (negative: west is left) and one degree of
// latitude about 69.
package ingest
