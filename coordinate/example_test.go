package coordinate_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/vec2d/coordinate"
)

// ExampleCoordinate_GeoDistAndBearing measures the Tel Aviv → Jerusalem leg.
func ExampleCoordinate_GeoDistAndBearing() {
	tlv, _ := coordinate.New([]float64{32.0853}, []float64{34.7818}, coordinate.WithDegrees())
	jlm, _ := coordinate.New([]float64{31.7683}, []float64{35.2137}, coordinate.WithDegrees())

	dist, bearing, err := tlv.GeoDistAndBearing(jlm)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("distance: %.0f km\n", dist[0]/1000)
	fmt.Printf("heading:  %.0f°\n", bearing[0]*180/math.Pi)

	// Output:
	// distance: 54 km
	// heading:  131°
}

// ExampleCoordinate_CircleAround builds a 4-point ring around a center.
func ExampleCoordinate_CircleAround() {
	center, _ := coordinate.New([]float64{0}, []float64{0})

	ring, err := center.CircleAround(1000, 4)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	d, _ := center.GeoDist(ring)
	for i, v := range d {
		fmt.Printf("sample %d: %.0f m\n", i, v)
	}

	// Output:
	// sample 0: 998 m
	// sample 1: 998 m
	// sample 2: 998 m
	// sample 3: 998 m
}
