package shipment_test

import (
	"testing"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParty(t *testing.T, name string) kernel.Party {
	t.Helper()
	party, err := kernel.NewParty(name, "30123456", "+54 11 5555-0001", "")
	require.NoError(t, err)
	return party
}

func testAddress(t *testing.T, street string) kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress(street, "1234", "", "", "Buenos Aires", "CABA", "C1043")
	require.NoError(t, err)
	return addr
}

func newTestShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(
		kernel.NewUUID(),
		shipment.NewTrackingID(),
		shipment.PaymentPending,
		testParty(t, "Maria Lopez"),
		testParty(t, "Juan Perez"),
		testAddress(t, "Av. Corrientes"),
		testAddress(t, "Calle Falsa"),
		nil,
		time.Now(),
	)
	require.NoError(t, err)
	return s
}

func TestNewShipment(t *testing.T) {
	t.Run("should create shipment in Created status with version 1", func(t *testing.T) {
		now := time.Now()
		id := kernel.NewUUID()
		trackingID := shipment.NewTrackingID()

		s, err := shipment.NewShipment(
			id,
			trackingID,
			shipment.PaymentPending,
			testParty(t, "Maria Lopez"),
			testParty(t, "Juan Perez"),
			testAddress(t, "Av. Corrientes"),
			testAddress(t, "Calle Falsa"),
			nil,
			now,
		)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.True(t, s.ID().IsEqual(id))
		assert.True(t, s.TrackingID().IsEqual(trackingID))
		assert.Equal(t, shipment.Created, s.Status())
		assert.Equal(t, now, s.StatusDate())
		assert.Equal(t, now, s.CreatedAt())
		assert.Equal(t, shipment.PaymentPending, s.Payment())
		assert.Equal(t, 1, s.Version())
		assert.Nil(t, s.CarrierID())
		assert.Empty(t, s.Packages())
	})

	t.Run("should keep an optional carrier reference", func(t *testing.T) {
		carrierID := kernel.NewUUID()

		s, err := shipment.NewShipment(
			kernel.NewUUID(),
			shipment.NewTrackingID(),
			shipment.PaymentPending,
			testParty(t, "Maria Lopez"),
			testParty(t, "Juan Perez"),
			testAddress(t, "Av. Corrientes"),
			testAddress(t, "Calle Falsa"),
			&carrierID,
			time.Now(),
		)

		require.NoError(t, err)
		require.NotNil(t, s.CarrierID())
		assert.True(t, s.CarrierID().IsEqual(carrierID))
	})

	t.Run("should reject unconstructed value objects", func(t *testing.T) {
		_, err := shipment.NewShipment(
			kernel.UUID{},
			shipment.TrackingID{},
			shipment.PaymentStatus("INVALID"),
			kernel.Party{},
			kernel.Party{},
			kernel.Address{},
			kernel.Address{},
			nil,
			time.Now(),
		)

		require.Error(t, err)
	})

	t.Run("should reject a zero-value shipment on Validate", func(t *testing.T) {
		var s shipment.Shipment
		require.ErrorIs(t, s.Validate(), shipment.ErrShipmentIsNotConstructed)

		var nilShipment *shipment.Shipment
		require.ErrorIs(t, nilShipment.Validate(), shipment.ErrShipmentIsNotConstructed)
	})
}

func TestRestoreShipment(t *testing.T) {
	t.Run("should restore stored status, dates, and version", func(t *testing.T) {
		createdAt := time.Now().Add(-48 * time.Hour)
		statusDate := time.Now().Add(-2 * time.Hour)

		s, err := shipment.RestoreShipment(
			kernel.NewUUID(),
			shipment.NewTrackingID(),
			shipment.InTransit,
			statusDate,
			createdAt,
			shipment.PaymentPaid,
			testParty(t, "Maria Lopez"),
			testParty(t, "Juan Perez"),
			testAddress(t, "Av. Corrientes"),
			testAddress(t, "Calle Falsa"),
			nil,
			3,
		)

		require.NoError(t, err)
		assert.Equal(t, shipment.InTransit, s.Status())
		assert.Equal(t, statusDate, s.StatusDate())
		assert.Equal(t, createdAt, s.CreatedAt())
		assert.Equal(t, shipment.PaymentPaid, s.Payment())
		assert.Equal(t, 3, s.Version())
	})

	t.Run("should reject an invalid stored status", func(t *testing.T) {
		_, err := shipment.RestoreShipment(
			kernel.NewUUID(),
			shipment.NewTrackingID(),
			shipment.Unknown,
			time.Now(),
			time.Now(),
			shipment.PaymentPending,
			testParty(t, "Maria Lopez"),
			testParty(t, "Juan Perez"),
			testAddress(t, "Av. Corrientes"),
			testAddress(t, "Calle Falsa"),
			nil,
			1,
		)

		require.Error(t, err)
	})

	t.Run("should reject a version below 1", func(t *testing.T) {
		_, err := shipment.RestoreShipment(
			kernel.NewUUID(),
			shipment.NewTrackingID(),
			shipment.Created,
			time.Now(),
			time.Now(),
			shipment.PaymentPending,
			testParty(t, "Maria Lopez"),
			testParty(t, "Juan Perez"),
			testAddress(t, "Av. Corrientes"),
			testAddress(t, "Calle Falsa"),
			nil,
			0,
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "0 is not a valid version")
	})
}

func TestShipment_AddPackage(t *testing.T) {
	t.Run("should attach packages in insertion order", func(t *testing.T) {
		s := newTestShipment(t)

		first, err := shipment.NewPackage(kernel.NewUUID(), s.ID(), 2.5, nil, shipment.PackageTypeParcel)
		require.NoError(t, err)
		second, err := shipment.NewPackage(kernel.NewUUID(), s.ID(), 0.3, nil, shipment.PackageTypeDocument)
		require.NoError(t, err)

		require.NoError(t, s.AddPackage(first))
		require.NoError(t, s.AddPackage(second))

		require.Len(t, s.Packages(), 2)
		assert.True(t, s.Packages()[0].ID().IsEqual(first.ID()))
		assert.True(t, s.Packages()[1].ID().IsEqual(second.ID()))
	})

	t.Run("should reject a package owned by another shipment", func(t *testing.T) {
		s := newTestShipment(t)
		other := newTestShipment(t)

		p, err := shipment.NewPackage(kernel.NewUUID(), other.ID(), 1.0, nil, shipment.PackageTypeParcel)
		require.NoError(t, err)

		err = s.AddPackage(p)

		require.ErrorIs(t, err, shipment.ErrPackageBelongsToOtherShipment)
		assert.Empty(t, s.Packages())
	})

	t.Run("should reject an unconstructed package", func(t *testing.T) {
		s := newTestShipment(t)

		err := s.AddPackage(nil)

		require.ErrorIs(t, err, shipment.ErrPackageIsNotConstructed)
	})
}

func TestShipment_TransitionTo(t *testing.T) {
	t.Run("should move status, stamp statusDate, and return the snapshot", func(t *testing.T) {
		s := newTestShipment(t)
		transitionTime := time.Now().Add(time.Hour)

		snapshot, err := s.TransitionTo(shipment.PickedUp, transitionTime)

		require.NoError(t, err)
		assert.Equal(t, shipment.Created, snapshot.From)
		assert.Equal(t, shipment.PickedUp, snapshot.To)
		assert.Equal(t, shipment.PickedUp, s.Status())
		assert.Equal(t, transitionTime, s.StatusDate())
	})

	t.Run("should leave the shipment untouched on a rejected transition", func(t *testing.T) {
		s := newTestShipment(t)
		before := s.StatusDate()

		_, err := s.TransitionTo(shipment.Delivered, time.Now().Add(time.Hour))

		require.ErrorIs(t, err, shipment.ErrInvalidTransition)
		assert.Equal(t, shipment.Created, s.Status())
		assert.Equal(t, before, s.StatusDate())
	})

	t.Run("should not change the version", func(t *testing.T) {
		s := newTestShipment(t)

		_, err := s.TransitionTo(shipment.PickedUp, time.Now())

		require.NoError(t, err)
		assert.Equal(t, 1, s.Version())
	})
}

func TestShipment_Snapshots(t *testing.T) {
	t.Run("should capture status and tracking code at creation", func(t *testing.T) {
		s := newTestShipment(t)

		snapshot := s.CreationSnapshot()

		assert.Equal(t, shipment.Created, snapshot.Status)
		assert.Equal(t, s.TrackingID().String(), snapshot.TrackingID)
	})

	t.Run("should capture the pre-deletion state with package count", func(t *testing.T) {
		s := newTestShipment(t)
		p, err := shipment.NewPackage(kernel.NewUUID(), s.ID(), 2.5, nil, shipment.PackageTypeParcel)
		require.NoError(t, err)
		require.NoError(t, s.AddPackage(p))

		_, err = s.TransitionTo(shipment.Cancelled, time.Now())
		require.NoError(t, err)

		snapshot := s.DeletionSnapshot()

		assert.Equal(t, shipment.Cancelled, snapshot.Status)
		assert.Equal(t, s.TrackingID().String(), snapshot.TrackingID)
		assert.Equal(t, 1, snapshot.PackageCount)
	})
}

func TestShipment_MarkPaid(t *testing.T) {
	t.Run("should record payment receipt", func(t *testing.T) {
		s := newTestShipment(t)

		s.MarkPaid()

		assert.Equal(t, shipment.PaymentPaid, s.Payment())
	})
}

func TestShipment_IsEqual(t *testing.T) {
	t.Run("should compare by identifier only", func(t *testing.T) {
		s := newTestShipment(t)
		other := newTestShipment(t)

		assert.True(t, s.IsEqual(s))
		assert.False(t, s.IsEqual(other))
		assert.False(t, s.IsEqual(nil))
	})
}
