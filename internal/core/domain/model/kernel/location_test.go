package kernel_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocation(t *testing.T) {
	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		wantErr   bool
	}{
		{name: "valid location", latitude: -23.55, longitude: -46.63},
		{name: "valid location at min bounds", latitude: kernel.LatitudeMin, longitude: kernel.LongitudeMin},
		{name: "valid location at max bounds", latitude: kernel.LatitudeMax, longitude: kernel.LongitudeMax},
		{name: "invalid latitude too small", latitude: -90.01, longitude: 0, wantErr: true},
		{name: "invalid latitude too large", latitude: 90.01, longitude: 0, wantErr: true},
		{name: "invalid longitude too small", latitude: 0, longitude: -180.5, wantErr: true},
		{name: "invalid longitude too large", latitude: 0, longitude: 180.5, wantErr: true},
		{name: "both coordinates invalid", latitude: 100, longitude: 200, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := kernel.NewLocation(tt.latitude, tt.longitude)

			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				assert.Zero(t, loc)
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tt.latitude, loc.Latitude(), 1e-12)
			assert.InDelta(t, tt.longitude, loc.Longitude(), 1e-12)
			assert.NoError(t, loc.Validate())
		})
	}
}

func TestLocation_Validate(t *testing.T) {
	t.Run("zero value location is rejected", func(t *testing.T) {
		var loc kernel.Location

		err := loc.Validate()

		require.ErrorIs(t, err, kernel.ErrLocationIsNotConstructed)
	})
}

func TestLocation_IsEqual(t *testing.T) {
	a, _ := kernel.NewLocation(-23.55, -46.63)
	b, _ := kernel.NewLocation(-23.55, -46.63)
	c, _ := kernel.NewLocation(-23.60, -46.70)

	equal, err := a.IsEqual(b)
	require.NoError(t, err)
	assert.True(t, equal)

	equal, err = a.IsEqual(c)
	require.NoError(t, err)
	assert.False(t, equal)

	_, err = a.IsEqual(kernel.Location{})
	require.Error(t, err)
}

func TestLocation_DistanceTo(t *testing.T) {
	saoPaulo, _ := kernel.NewLocation(-23.55, -46.63)
	nearby, _ := kernel.NewLocation(-23.60, -46.70)

	t.Run("distance matches haversine and is symmetric", func(t *testing.T) {
		ab, err := saoPaulo.DistanceTo(nearby)
		require.NoError(t, err)
		ba, err := nearby.DistanceTo(saoPaulo)
		require.NoError(t, err)

		assert.InDelta(t, ab, ba, 1e-9)
		assert.InDelta(t, 9.05, ab, 0.1)
	})

	t.Run("distance to self is zero", func(t *testing.T) {
		d, err := saoPaulo.DistanceTo(saoPaulo)

		require.NoError(t, err)
		assert.Zero(t, d)
	})

	t.Run("unconstructed location fails", func(t *testing.T) {
		_, err := saoPaulo.DistanceTo(kernel.Location{})

		require.ErrorIs(t, err, kernel.ErrLocationIsNotConstructed)
	})
}
