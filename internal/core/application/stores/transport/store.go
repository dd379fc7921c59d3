// Package transport is the application service of the shipment planning
// subsystem. It owns the carrier registry, the route distance table and the
// shipment records, and advances shipments through their strictly linear
// lifecycle.
package transport

import (
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// Store exposes the transport subsystem's operations.
type Store struct {
	uowFactory ports.TransportUnitOfWorkFactory
	selector   services.CarrierSelector
}

// NewStore creates a transport store backed by the given unit-of-work
// factory.
func NewStore(uowFactory ports.TransportUnitOfWorkFactory) Store {
	return Store{
		uowFactory: uowFactory,
		selector:   services.NewCarrierSelector(),
	}
}
