package ingest

import (
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/tourbench/tour"
)

// GeoJSON decodes a GeoJSON FeatureCollection and returns one City per
// Point feature (MultiPoint features contribute one City per member).
// Non-point geometries are ignored. Coordinates are projected with the
// configured scales; GeoJSON order is (longitude, latitude).
//
// Errors: decoding errors from orb/geojson, ErrBadScale, or ErrNoCities
// when no point geometry survived.
func GeoJSON(r io.Reader, opts ...Option) (tour.Cities, error) {
	o, err := apply(opts)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, err
	}

	var pts []tour.City
	for _, f := range fc.Features {
		switch g := f.Geometry.(type) {
		case orb.Point:
			pts = append(pts, project(g, o))
		case orb.MultiPoint:
			for _, p := range g {
				pts = append(pts, project(p, o))
			}
		}
	}
	if len(pts) == 0 {
		return nil, ErrNoCities
	}
	return tour.NewCities(pts...), nil
}

// project maps one lon/lat point onto the planar benchmark map.
func project(p orb.Point, o Options) tour.City {
	return tour.City{X: o.LongScale * p.Lon(), Y: o.LatScale * p.Lat()}
}
