package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"shipment-market/internal/core/identity"
	"shipment-market/internal/core/logger"
	eventdomain "shipment-market/internal/features/events/domain"
	"shipment-market/internal/features/marketplace/domain"
	"shipment-market/internal/features/marketplace/ports"
	"shipment-market/internal/features/marketplace/store"

	"go.uber.org/zap"
)

// MarketService is the command layer of the marketplace. Every command runs
// to completion under one mutex covering the customer registry, carrier
// registry, shipment store, and id generator, so no two commands interleave
// and no reader observes a half-applied transition. The event append happens
// inside the same critical section, which makes the log's sequence numbers
// reflect exactly the order commands were admitted.
//
// Commands validate every precondition before mutating anything: a failed
// command leaves all state unchanged and records no event.
type MarketService struct {
	mu sync.Mutex

	customers *store.CustomerRegistry
	carriers  *store.CarrierRegistry
	shipments *store.ShipmentStore
	ids       *store.IDGenerator

	events    ports.EventRecorder
	snapshots ports.SnapshotStore
	admins    identity.Set
	now       func() time.Time
}

// NewMarketService wires the stores and collaborators. snapshots may be nil
// when no persistence boundary is configured.
func NewMarketService(
	customers *store.CustomerRegistry,
	carriers *store.CarrierRegistry,
	shipments *store.ShipmentStore,
	ids *store.IDGenerator,
	events ports.EventRecorder,
	snapshots ports.SnapshotStore,
	admins identity.Set,
	now func() time.Time,
) *MarketService {
	if now == nil {
		now = time.Now
	}

	return &MarketService{
		customers: customers,
		carriers:  carriers,
		shipments: shipments,
		ids:       ids,
		events:    events,
		snapshots: snapshots,
		admins:    admins,
		now:       now,
	}
}

// CreateShipment posts a new shipment in PENDING owned by the caller's
// customer profile (created on first use) and returns its id.
func (s *MarketService) CreateShipment(caller identity.ID, customerName, shipmentName, hashedSecret string, info domain.ShipmentInfo) (uint64, error) {
	if caller.IsAnonymous() {
		return 0, fmt.Errorf("%w: creating a shipment requires an authenticated caller", domain.ErrUnauthorized)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	customer := s.customers.GetOrCreate(caller, customerName)
	id := s.ids.Next()

	shipment := domain.NewShipment(customer, id, hashedSecret, shipmentName, info, uint64(s.now().Unix()))
	s.shipments.Insert(shipment)

	s.events.Record(eventdomain.NewCreated(id))

	return id, nil
}

// BuyShipment assigns the caller as carrier of a pending shipment and moves
// it to IN_TRANSIT. The carrier profile is created on first use, but only
// after the preconditions hold, so a failed buy creates nothing.
func (s *MarketService) BuyShipment(caller identity.ID, carrierName string, id uint64) error {
	if caller.IsAnonymous() {
		return fmt.Errorf("%w: buying a shipment requires an authenticated caller", domain.ErrUnauthorized)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	shipment, ok := s.shipments.Get(id)
	if !ok {
		return fmt.Errorf("%w: id %d", domain.ErrShipmentNotFound, id)
	}
	if shipment.Status != domain.StatusPending {
		return fmt.Errorf("%w: shipment %d is %s, not %s", domain.ErrInvalidStatus, id, shipment.Status, domain.StatusPending)
	}

	carrier := s.carriers.GetOrCreate(caller, carrierName)
	if err := shipment.Buy(carrier); err != nil {
		return err
	}

	s.events.Record(eventdomain.NewCarrierAssigned(id, caller))

	return nil
}

// FinalizeShipment confirms delivery of an in-transit shipment. The owning
// customer needs no secret; anyone else must present the pre-shared secret.
func (s *MarketService) FinalizeShipment(caller identity.ID, id uint64, secret *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	shipment, ok := s.shipments.Get(id)
	if !ok {
		return fmt.Errorf("%w: id %d", domain.ErrShipmentNotFound, id)
	}

	carrier, ok := s.carriers.Get(shipment.Carrier)
	if !ok && shipment.Status == domain.StatusInTransit {
		// An in-transit shipment always has a carrier profile by invariant.
		logger.Get().Error("Carrier profile missing for in-transit shipment",
			zap.Uint64("shipment_id", id),
			zap.String("carrier", string(shipment.Carrier)),
		)
		return fmt.Errorf("%w: carrier %q", domain.ErrInconsistentState, shipment.Carrier)
	}

	customer, ok := s.customers.Get(shipment.Customer)
	if !ok {
		logger.Get().Error("Customer profile missing for shipment",
			zap.Uint64("shipment_id", id),
			zap.String("customer", string(shipment.Customer)),
		)
		return fmt.Errorf("%w: customer %q", domain.ErrInconsistentState, shipment.Customer)
	}

	if err := shipment.Finalize(carrier, customer, secret, caller); err != nil {
		return err
	}

	s.events.Record(eventdomain.NewFinalized(id, caller))

	return nil
}

// PendingShipments returns every shipment still waiting for a carrier.
func (s *MarketService) PendingShipments() []domain.Shipment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shipments.Pending()
}

// UserShipments returns the caller's shipments, split by role.
func (s *MarketService) UserShipments(caller identity.ID) (asCarrier, asCustomer []domain.Shipment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shipments.ForCarrier(caller), s.shipments.ForCustomer(caller)
}

// Roles reports whether the caller has ever acted as carrier or customer.
func (s *MarketService) Roles(caller identity.ID) (isCarrier, isCustomer bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.carriers.Has(caller), s.customers.Has(caller)
}

// Shipments returns every shipment.
func (s *MarketService) Shipments() []domain.Shipment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shipments.All()
}

// Shipment returns the shipment with the given id, if present.
func (s *MarketService) Shipment(id uint64) (domain.Shipment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	shipment, ok := s.shipments.Get(id)
	if !ok {
		return domain.Shipment{}, false
	}
	return *shipment, true
}

// SaveSnapshot writes the current store image to the persistence boundary.
// Restricted to the admin set.
func (s *MarketService) SaveSnapshot(ctx context.Context, caller identity.ID) error {
	if !s.admins.Contains(caller) {
		return fmt.Errorf("%w: snapshot requires an admin caller", domain.ErrUnauthorized)
	}
	if s.snapshots == nil {
		return fmt.Errorf("no snapshot store is configured")
	}

	s.mu.Lock()
	snapshot := &domain.Snapshot{
		NextShipmentID: s.ids.Position(),
		Customers:      s.customers.All(),
		Carriers:       s.carriers.All(),
		Shipments:      s.shipments.All(),
	}
	s.mu.Unlock()

	if err := s.snapshots.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("service: failed to save snapshot: %w", err)
	}

	logger.Get().Info("Saved marketplace snapshot",
		zap.Uint64("next_shipment_id", snapshot.NextShipmentID),
		zap.Int("shipments", len(snapshot.Shipments)),
	)

	return nil
}

// RestoreSnapshot replaces the store contents with the persisted image, if
// one exists. Intended for process start, before the server accepts requests.
func (s *MarketService) RestoreSnapshot(ctx context.Context) error {
	if s.snapshots == nil {
		return nil
	}

	snapshot, err := s.snapshots.Load(ctx)
	if err != nil {
		return fmt.Errorf("service: failed to load snapshot: %w", err)
	}
	if snapshot == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.customers.Replace(snapshot.Customers)
	s.carriers.Replace(snapshot.Carriers)
	s.shipments.Replace(snapshot.Shipments)
	*s.ids = *store.NewIDGenerator(snapshot.NextShipmentID)

	logger.Get().Info("Restored marketplace snapshot",
		zap.Uint64("next_shipment_id", snapshot.NextShipmentID),
		zap.Int("shipments", len(snapshot.Shipments)),
	)

	return nil
}
