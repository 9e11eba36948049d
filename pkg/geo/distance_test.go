package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm(t *testing.T) {
	// Teku to Baneshwor, Kathmandu: roughly 5km apart.
	d := DistanceKm(27.7000, 85.3000, 27.6833, 85.3500)
	assert.Greater(t, d, 4.0)
	assert.Less(t, d, 7.0)
}

func TestDistanceKmZero(t *testing.T) {
	assert.InDelta(t, 0, DistanceKm(27.7, 85.3, 27.7, 85.3), 1e-9)
}

func TestDistanceKmSymmetry(t *testing.T) {
	a := DistanceKm(27.7000, 85.3000, 27.6667, 85.3167)
	b := DistanceKm(27.6667, 85.3167, 27.7000, 85.3000)
	assert.InDelta(t, a, b, 1e-9)
}
