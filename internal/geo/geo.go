// Package geo holds the proximity rule used by the nearby-food query.
//
// The rule is a planar approximation: the distance between two points is the
// Euclidean norm of their latitude/longitude difference in degrees, compared
// against a radius expressed in radians (5 km over Earth's radius). There is no
// cos(latitude) scaling and degrees are never converted to radians, so the
// effective radius is roughly 87 m north-south near the equator and shrinks in
// the east-west direction away from it. Clients depend on this exact result set,
// so the formula and constants must not be "corrected" in place.
package geo

import "math"

const (
	NearbyRadiusKm = 5.0
	EarthRadiusKm  = 6378.1
)

// NearbyRadius is the cutoff compared against PlanarDistance.
const NearbyRadius = NearbyRadiusKm / EarthRadiusKm

// PlanarDistance is the raw degree distance between two coordinates.
func PlanarDistance(lat1, lng1, lat2, lng2 float64) float64 {
	return math.Sqrt(math.Pow(lat1-lat2, 2) + math.Pow(lng1-lng2, 2))
}

// Within reports whether the second point falls inside the nearby radius of the first.
func Within(lat1, lng1, lat2, lng2 float64) bool {
	return PlanarDistance(lat1, lng1, lat2, lng2) <= NearbyRadius
}
