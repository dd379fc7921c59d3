package masterdata

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/partner"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/model/stock"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// ErrLoaderIsNotConstructed is returned when a Loader was not created through
// NewLoader.
var ErrLoaderIsNotConstructed = errors.New("Loader must be created via NewLoader constructor")

// Loader seeds master data into all three subsystems and verifies catalog
// consistency afterwards. Loading an already seeded database is a no-op
// except for the reconciliation check, so running it on every startup is safe.
type Loader struct {
	ledgerUoWFactory    ports.LedgerUnitOfWorkFactory
	warehouseUoWFactory ports.WarehouseUnitOfWorkFactory
	transportUoWFactory ports.TransportUnitOfWorkFactory
	reconciler          services.CatalogReconciler
}

// NewLoader creates a master data loader over the three subsystem unit-of-work
// factories.
func NewLoader(
	ledgerUoWFactory ports.LedgerUnitOfWorkFactory,
	warehouseUoWFactory ports.WarehouseUnitOfWorkFactory,
	transportUoWFactory ports.TransportUnitOfWorkFactory,
) (*Loader, error) {
	if ledgerUoWFactory == nil {
		return nil, errors.New("ledgerUoWFactory is required")
	}
	if warehouseUoWFactory == nil {
		return nil, errors.New("warehouseUoWFactory is required")
	}
	if transportUoWFactory == nil {
		return nil, errors.New("transportUoWFactory is required")
	}

	return &Loader{
		ledgerUoWFactory:    ledgerUoWFactory,
		warehouseUoWFactory: warehouseUoWFactory,
		transportUoWFactory: transportUoWFactory,
		reconciler:          services.NewCatalogReconciler(),
	}, nil
}

// Load seeds the dataset and runs the catalog reconciliation check. When the
// ledger catalog already has products the seeding is skipped; the
// reconciliation check runs either way.
func (l *Loader) Load(ctx context.Context, ds Dataset) error {
	seeded, err := l.isSeeded(ctx)
	if err != nil {
		return err
	}

	if !seeded {
		if err = l.seedLedger(ctx, ds); err != nil {
			return err
		}
		if err = l.seedWarehouse(ctx, ds); err != nil {
			return err
		}
		if err = l.seedTransport(ctx, ds); err != nil {
			return err
		}
	}

	return l.Reconcile(ctx)
}

// Reconcile verifies that every ledger product has a warehouse item master
// record. The reconciliation job reuses this entry point.
func (l *Loader) Reconcile(ctx context.Context) error {
	products, err := l.ledgerUoWFactory.Create().ProductRepository().GetAll(ctx)
	if err != nil {
		return err
	}

	items, err := l.warehouseUoWFactory.Create().ItemRepository().GetAll(ctx)
	if err != nil {
		return err
	}

	return l.reconciler.Reconcile(products, items)
}

func (l *Loader) isSeeded(ctx context.Context) (bool, error) {
	products, err := l.ledgerUoWFactory.Create().ProductRepository().GetAll(ctx)
	if err != nil {
		return false, err
	}
	return len(products) > 0, nil
}

func (l *Loader) seedLedger(ctx context.Context, ds Dataset) error {
	uow := l.ledgerUoWFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	for _, spec := range ds.Products {
		p, err := product.NewProduct(spec.SKU, spec.Name, spec.SalePrice, spec.AverageCost)
		if err != nil {
			return err
		}
		if err = uow.ProductRepository().Add(ctx, p); err != nil {
			return err
		}
	}

	for _, spec := range ds.Customers {
		address, err := newAddress(spec.Address)
		if err != nil {
			return err
		}
		c, err := partner.NewCustomer(spec.ID, spec.Name, spec.TaxID, address, spec.CreditLimit)
		if err != nil {
			return err
		}
		if err = uow.PartnerRepository().Add(ctx, c); err != nil {
			return err
		}
	}

	for _, spec := range ds.Suppliers {
		address, err := newAddress(spec.Address)
		if err != nil {
			return err
		}
		s, err := partner.NewSupplier(spec.ID, spec.Name, spec.TaxID, address, spec.LeadTimeDays)
		if err != nil {
			return err
		}
		if err = uow.PartnerRepository().Add(ctx, s); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func (l *Loader) seedWarehouse(ctx context.Context, ds Dataset) error {
	uow := l.warehouseUoWFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	for _, spec := range ds.Items {
		item, err := stock.NewItem(spec.SKU, spec.Name, spec.Description, spec.UnitWeight, spec.UnitVolume)
		if err != nil {
			return err
		}
		if err = uow.ItemRepository().Add(ctx, item); err != nil {
			return err
		}
	}

	for _, id := range ds.Locations {
		location, err := stock.NewLocation(id)
		if err != nil {
			return err
		}
		if err = uow.LocationRepository().Add(ctx, location); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func (l *Loader) seedTransport(ctx context.Context, ds Dataset) error {
	uow := l.transportUoWFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	for _, spec := range ds.Carriers {
		c, err := shipment.NewCarrier(spec.ID, spec.Name, spec.RatePerKmKg)
		if err != nil {
			return err
		}
		if err = uow.CarrierRepository().Add(ctx, c); err != nil {
			return err
		}
	}

	for _, spec := range ds.Distances {
		if err := uow.DistanceRepository().Add(ctx, spec.OriginCity, spec.DestinationCity, spec.Km); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func newAddress(spec AddressSpec) (kernel.Address, error) {
	return kernel.NewAddress(spec.Street, spec.Number, spec.City, spec.State, spec.Zip)
}
