package ingest

import (
	"bufio"
	"io"
	"regexp"
	"strconv"

	"github.com/katalvlaran/tourbench/tour"
)

// recordRe matches "latitude longitude ... ST" lines: two decimal numbers
// followed by anything ending in a two-letter state code.
var recordRe = regexp.MustCompile(`([\d.]+)\s+([\d.]+).*\b([A-Z][A-Z])\b`)

// Records parses whitespace-separated geographic records, one city per
// matching line; lines that do not match and lines whose state code is in
// the skip list are dropped. Latitude scales into Y, longitude into X.
//
// Errors: scanner errors from the reader, ErrBadScale, or ErrNoCities
// when nothing matched.
func Records(r io.Reader, opts ...Option) (tour.Cities, error) {
	o, err := apply(opts)
	if err != nil {
		return nil, err
	}

	var (
		pts []tour.City
		sc  = bufio.NewScanner(r)
	)
	for sc.Scan() {
		m := recordRe.FindStringSubmatch(sc.Text())
		if m == nil || o.Skip[m[3]] {
			continue
		}
		lat, errLat := strconv.ParseFloat(m[1], 64)
		long, errLong := strconv.ParseFloat(m[2], 64)
		if errLat != nil || errLong != nil {
			continue // malformed number: treat like a non-matching line
		}
		pts = append(pts, tour.City{X: o.LongScale * long, Y: o.LatScale * lat})
	}
	if err = sc.Err(); err != nil {
		return nil, err
	}
	if len(pts) == 0 {
		return nil, ErrNoCities
	}
	return tour.NewCities(pts...), nil
}
