package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNearbyRadiusConstant(t *testing.T) {
	assert.InDelta(t, 0.000783932, NearbyRadius, 1e-9)
}

func TestWithinSamePointAlwaysIncluded(t *testing.T) {
	points := [][2]float64{{0, 0}, {12.9716, 77.5946}, {-33.86, 151.2}, {89.9, -179.9}}
	for _, p := range points {
		assert.True(t, Within(p[0], p[1], p[0], p[1]), "point %v", p)
	}
}

func TestWithinUsesPlanarDegrees(t *testing.T) {
	// 0.0005 degrees on both axes is ~0.000707 in planar distance: inside.
	assert.True(t, Within(10, 10, 10.0005, 10.0005))
	// 0.0008 degrees on one axis is outside, whatever the latitude.
	assert.False(t, Within(10, 10, 10.0008, 10))
	assert.False(t, Within(60, 10, 60, 10.0008))
}

func TestPlanarDistance(t *testing.T) {
	assert.InDelta(t, 5.0, PlanarDistance(0, 0, 3, 4), 1e-12)
}
