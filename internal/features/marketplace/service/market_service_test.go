package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"shipment-market/internal/core/identity"
	eventdomain "shipment-market/internal/features/events/domain"
	"shipment-market/internal/features/marketplace/domain"
	"shipment-market/internal/features/marketplace/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// secretDigest is the lowercase hex SHA-256 of "secret".
const secretDigest = "2bb80d537b1da3e38bd30361aa855686bde0eacd7162fef6a25fe97bf527a25b"

// recorderStub captures recorded events in order.
type recorderStub struct {
	events []eventdomain.Event
}

func (r *recorderStub) Record(event eventdomain.Event) {
	r.events = append(r.events, event)
}

// MockSnapshotStore is a mock implementation of ports.SnapshotStore.
type MockSnapshotStore struct {
	mock.Mock
}

func (m *MockSnapshotStore) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *MockSnapshotStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Snapshot), args.Error(1)
}

type fixture struct {
	svc      *MarketService
	recorder *recorderStub
	snaps    *MockSnapshotStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	recorder := &recorderStub{}
	snaps := new(MockSnapshotStore)
	now := func() time.Time { return time.Unix(1_700_000_000, 0) }

	svc := NewMarketService(
		store.NewCustomerRegistry(),
		store.NewCarrierRegistry(),
		store.NewShipmentStore(),
		store.NewIDGenerator(0),
		recorder,
		snaps,
		identity.NewSet("admin"),
		now,
	)

	return &fixture{svc: svc, recorder: recorder, snaps: snaps}
}

func testInfo() domain.ShipmentInfo {
	return domain.ShipmentInfo{
		Value:        100,
		Price:        10,
		Source:       domain.Location{Label: "Warsaw", Lat: 52.23, Lng: 21.01},
		Destination:  domain.Location{Label: "Krakow", Lat: 50.06, Lng: 19.94},
		SizeCategory: domain.SizeCategory{Kind: domain.SizeKindEnvelope},
	}
}

func strPtr(s string) *string {
	return &s
}

// TestCreateShipment_IDsAreMonotonic verifies ids are distinct and strictly
// increasing across successful creations.
func TestCreateShipment_IDsAreMonotonic(t *testing.T) {
	f := newFixture(t)

	for want := uint64(0); want < 5; want++ {
		id, err := f.svc.CreateShipment("alice", "Alice", "box", secretDigest, testInfo())
		require.NoError(t, err)
		assert.Equal(t, want, id)
	}

	assert.Len(t, f.recorder.events, 5)
}

// TestCreateShipment_Anonymous verifies unauthenticated creation is rejected
// without touching any store.
func TestCreateShipment_Anonymous(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateShipment(identity.Anonymous, "Nobody", "box", secretDigest, testInfo())

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Empty(t, f.svc.Shipments())
	assert.Empty(t, f.recorder.events)
}

// TestBuyAndFinalizeScenario verifies the full happy path: buy succeeds once,
// a second buy fails, finalize by the owner completes both counters.
func TestBuyAndFinalizeScenario(t *testing.T) {
	f := newFixture(t)

	id, err := f.svc.CreateShipment("alice", "Alice", "box", secretDigest, testInfo())
	require.NoError(t, err)

	require.NoError(t, f.svc.BuyShipment("bob", "Bob", id))

	shipment, ok := f.svc.Shipment(id)
	require.True(t, ok)
	assert.Equal(t, domain.StatusInTransit, shipment.Status)
	assert.Equal(t, identity.ID("bob"), shipment.Carrier)

	err = f.svc.BuyShipment("carol", "Carol", id)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	require.NoError(t, f.svc.FinalizeShipment("alice", id, nil))

	shipment, ok = f.svc.Shipment(id)
	require.True(t, ok)
	assert.Equal(t, domain.StatusDelivered, shipment.Status)

	// One event per successful command, in admission order.
	require.Len(t, f.recorder.events, 3)
	assert.Equal(t, eventdomain.EventKindCreated, f.recorder.events[0].Kind)
	assert.Equal(t, eventdomain.EventKindCarrierAssigned, f.recorder.events[1].Kind)
	assert.Equal(t, identity.ID("bob"), f.recorder.events[1].Carrier)
	assert.Equal(t, eventdomain.EventKindFinalized, f.recorder.events[2].Kind)
	assert.Equal(t, identity.ID("alice"), f.recorder.events[2].Party)

	isCarrier, isCustomer := f.svc.Roles("bob")
	assert.True(t, isCarrier)
	assert.False(t, isCustomer)
}

// TestBuyShipment_Failures verifies the buy failure taxonomy and that failed
// buys create no carrier profile.
func TestBuyShipment_Failures(t *testing.T) {
	f := newFixture(t)
	id, err := f.svc.CreateShipment("alice", "Alice", "box", secretDigest, testInfo())
	require.NoError(t, err)

	err = f.svc.BuyShipment(identity.Anonymous, "Nobody", id)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	err = f.svc.BuyShipment("bob", "Bob", 42)
	assert.ErrorIs(t, err, domain.ErrShipmentNotFound)

	require.NoError(t, f.svc.BuyShipment("bob", "Bob", id))
	err = f.svc.BuyShipment("carol", "Carol", id)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	// Carol's failed buy must not have created a carrier profile.
	isCarrier, _ := f.svc.Roles("carol")
	assert.False(t, isCarrier)

	// Only create and the one successful buy were recorded.
	assert.Len(t, f.recorder.events, 2)
}

// TestFinalizeShipment_BeforeBuy verifies finalize on a pending shipment
// is an invalid-state failure.
func TestFinalizeShipment_BeforeBuy(t *testing.T) {
	f := newFixture(t)
	id, err := f.svc.CreateShipment("alice", "Alice", "box", secretDigest, testInfo())
	require.NoError(t, err)

	err = f.svc.FinalizeShipment("alice", id, nil)

	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	assert.Len(t, f.recorder.events, 1)
}

// TestFinalizeShipment_BearerSecret verifies a third party holding the
// pre-shared secret can finalize, and counters land on the right profiles.
func TestFinalizeShipment_BearerSecret(t *testing.T) {
	f := newFixture(t)
	id, err := f.svc.CreateShipment("alice", "Alice", "box", secretDigest, testInfo())
	require.NoError(t, err)
	require.NoError(t, f.svc.BuyShipment("bob", "Bob", id))

	err = f.svc.FinalizeShipment("recipient", id, strPtr("wrong"))
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	require.NoError(t, f.svc.FinalizeShipment("recipient", id, strPtr("secret")))

	shipment, ok := f.svc.Shipment(id)
	require.True(t, ok)
	assert.Equal(t, domain.StatusDelivered, shipment.Status)
	assert.Equal(t, identity.ID("recipient"), f.recorder.events[len(f.recorder.events)-1].Party)
}

// TestFinalizeShipment_NotFound verifies the missing-shipment failure.
func TestFinalizeShipment_NotFound(t *testing.T) {
	f := newFixture(t)

	err := f.svc.FinalizeShipment("alice", 7, nil)

	assert.ErrorIs(t, err, domain.ErrShipmentNotFound)
}

// TestQueries verifies the read-only projections.
func TestQueries(t *testing.T) {
	f := newFixture(t)

	first, err := f.svc.CreateShipment("alice", "Alice", "first", secretDigest, testInfo())
	require.NoError(t, err)
	second, err := f.svc.CreateShipment("alice", "Alice", "second", secretDigest, testInfo())
	require.NoError(t, err)
	require.NoError(t, f.svc.BuyShipment("bob", "Bob", first))

	pending := f.svc.PendingShipments()
	require.Len(t, pending, 1)
	assert.Equal(t, second, pending[0].ID)

	asCarrier, asCustomer := f.svc.UserShipments("bob")
	require.Len(t, asCarrier, 1)
	assert.Equal(t, first, asCarrier[0].ID)
	assert.Empty(t, asCustomer)

	asCarrier, asCustomer = f.svc.UserShipments("alice")
	assert.Empty(t, asCarrier)
	assert.Len(t, asCustomer, 2)

	all := f.svc.Shipments()
	assert.Len(t, all, 2)

	_, ok := f.svc.Shipment(99)
	assert.False(t, ok)
}

// TestSaveSnapshot verifies the admin gate and the persisted image.
func TestSaveSnapshot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateShipment("alice", "Alice", "box", secretDigest, testInfo())
	require.NoError(t, err)

	err = f.svc.SaveSnapshot(ctx, "mallory")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	f.snaps.On("Save", ctx, mock.AnythingOfType("*domain.Snapshot")).Return(nil).Once().Run(func(args mock.Arguments) {
		snapshot := args.Get(1).(*domain.Snapshot)
		assert.Equal(t, uint64(1), snapshot.NextShipmentID)
		assert.Len(t, snapshot.Shipments, 1)
		assert.Len(t, snapshot.Customers, 1)
	})

	require.NoError(t, f.svc.SaveSnapshot(ctx, "admin"))
	f.snaps.AssertExpectations(t)
}

// TestRestoreSnapshot verifies restore replaces the stores and repositions
// the id generator.
func TestRestoreSnapshot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.snaps.On("Load", ctx).Return(&domain.Snapshot{
		NextShipmentID: 3,
		Customers:      []domain.Customer{*domain.NewCustomer("alice", "Alice")},
		Carriers:       []domain.Carrier{*domain.NewCarrier("bob", "Bob")},
		Shipments: []domain.Shipment{
			{ID: 2, Customer: "alice", Status: domain.StatusPending, HashedSecret: secretDigest},
		},
	}, nil).Once()

	require.NoError(t, f.svc.RestoreSnapshot(ctx))

	id, err := f.svc.CreateShipment("alice", "Alice", "next", secretDigest, testInfo())
	require.NoError(t, err)
	assert.Equal(t, uint64(3), id)

	isCarrier, _ := f.svc.Roles("bob")
	assert.True(t, isCarrier)
	f.snaps.AssertExpectations(t)
}

// TestRestoreSnapshot_Empty verifies a missing snapshot is not an error.
func TestRestoreSnapshot_Empty(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.snaps.On("Load", ctx).Return(nil, nil).Once()

	require.NoError(t, f.svc.RestoreSnapshot(ctx))
	f.snaps.AssertExpectations(t)
}

// TestRestoreSnapshot_LoadError verifies store failures propagate wrapped.
func TestRestoreSnapshot_LoadError(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.snaps.On("Load", ctx).Return(nil, errors.New("redis down")).Once()

	err := f.svc.RestoreSnapshot(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load snapshot")
}
