package shipment_test

import (
	"testing"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackageType_Validate(t *testing.T) {
	t.Run("should accept the known classifications", func(t *testing.T) {
		for _, pkgType := range []shipment.PackageType{
			shipment.PackageTypeParcel,
			shipment.PackageTypeDocument,
			shipment.PackageTypeFragile,
		} {
			require.NoError(t, pkgType.Validate())
		}
	})

	t.Run("should reject unknown classifications", func(t *testing.T) {
		for _, pkgType := range []shipment.PackageType{"", "parcel", "BOX"} {
			err := pkgType.Validate()

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})
}

func TestDimensions_Validate(t *testing.T) {
	t.Run("should accept positive measurements", func(t *testing.T) {
		d := shipment.Dimensions{Height: 10, Width: 20, Length: 30}
		require.NoError(t, d.Validate())
	})

	t.Run("should reject any non-positive side", func(t *testing.T) {
		testCases := []shipment.Dimensions{
			{Height: 0, Width: 20, Length: 30},
			{Height: 10, Width: -1, Length: 30},
			{Height: 10, Width: 20, Length: 0},
		}

		for _, d := range testCases {
			require.Error(t, d.Validate())
		}
	})
}

func TestNewPackage(t *testing.T) {
	t.Run("should create a validated package", func(t *testing.T) {
		id := kernel.NewUUID()
		shipmentID := kernel.NewUUID()
		dims := &shipment.Dimensions{Height: 10, Width: 20, Length: 30}

		p, err := shipment.NewPackage(id, shipmentID, 2.5, dims, shipment.PackageTypeFragile)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.True(t, p.ShipmentID().IsEqual(shipmentID))
		assert.InDelta(t, 2.5, p.Weight(), 0.0001)
		assert.Equal(t, dims, p.Dimensions())
		assert.Equal(t, shipment.PackageTypeFragile, p.Type())
	})

	t.Run("should default an empty type to PARCEL", func(t *testing.T) {
		p, err := shipment.NewPackage(kernel.NewUUID(), kernel.NewUUID(), 1.0, nil, "")

		require.NoError(t, err)
		assert.Equal(t, shipment.PackageTypeParcel, p.Type())
	})

	t.Run("should allow omitting dimensions", func(t *testing.T) {
		p, err := shipment.NewPackage(kernel.NewUUID(), kernel.NewUUID(), 1.0, nil, shipment.PackageTypeParcel)

		require.NoError(t, err)
		assert.Nil(t, p.Dimensions())
	})

	t.Run("should reject non-positive weight", func(t *testing.T) {
		for _, weight := range []float64{0, -2.5} {
			_, err := shipment.NewPackage(kernel.NewUUID(), kernel.NewUUID(), weight, nil, shipment.PackageTypeParcel)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "is not greater than 0")
		}
	})

	t.Run("should reject invalid dimensions", func(t *testing.T) {
		dims := &shipment.Dimensions{Height: 0, Width: 20, Length: 30}

		_, err := shipment.NewPackage(kernel.NewUUID(), kernel.NewUUID(), 1.0, dims, shipment.PackageTypeParcel)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "non-positive side")
	})

	t.Run("should reject unconstructed identifiers", func(t *testing.T) {
		_, err := shipment.NewPackage(kernel.UUID{}, kernel.NewUUID(), 1.0, nil, shipment.PackageTypeParcel)
		require.Error(t, err)

		_, err = shipment.NewPackage(kernel.NewUUID(), kernel.UUID{}, 1.0, nil, shipment.PackageTypeParcel)
		require.Error(t, err)
	})

	t.Run("should reject a zero-value package on Validate", func(t *testing.T) {
		var p shipment.Package
		require.ErrorIs(t, p.Validate(), shipment.ErrPackageIsNotConstructed)
	})
}
