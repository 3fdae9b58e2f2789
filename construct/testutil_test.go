package construct_test

import (
	"testing"

	"github.com/katalvlaran/tourbench/sample"
	"github.com/katalvlaran/tourbench/tour"
)

// mustCities draws a seeded instance or fails the test.
func mustCities(t *testing.T, n int, seed int64) tour.Cities {
	t.Helper()
	cs, err := sample.RandomCities(n, seed, sample.DefaultWidth, sample.DefaultHeight)
	if err != nil {
		t.Fatalf("RandomCities(%d, %d): %v", n, seed, err)
	}
	return cs
}

// checkTour fails unless got is a valid tour over cities.
func checkTour(t *testing.T, name string, got tour.Tour, cities tour.Cities) {
	t.Helper()
	if !tour.ValidTour(got, cities) {
		t.Fatalf("%s produced an invalid tour over %d cities: %v", name, len(cities), got)
	}
}

// square is the unit-rectangle instance whose optimal tour is the boundary.
func square() tour.Cities {
	return tour.NewCities(
		tour.City{X: 0, Y: 0},
		tour.City{X: 3, Y: 0},
		tour.City{X: 3, Y: 4},
		tour.City{X: 0, Y: 4},
	)
}
