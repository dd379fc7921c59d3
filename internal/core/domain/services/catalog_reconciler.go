package services

import (
	"fmt"
	"sort"

	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/core/domain/model/stock"
	"fulfillment/internal/pkg/errs"
)

// CatalogReconciler is a domain service that verifies the ledger's product
// catalog and the warehouse's item catalog name the same SKU set. SKU is the
// join key between the two subsystems; nothing keeps the catalogs aligned
// automatically, so the reconciler runs at startup and fails fast on any
// divergence instead of letting sagas hit phantom SKUs later.
type CatalogReconciler struct{}

// NewCatalogReconciler creates a new CatalogReconciler instance.
func NewCatalogReconciler() CatalogReconciler {
	return CatalogReconciler{}
}

// Reconcile compares the two catalogs and returns a ValueIsInvalidError
// naming every SKU present on only one side. A nil error means the catalogs
// agree exactly.
func (cr CatalogReconciler) Reconcile(products []*product.Product, items []*stock.Item) error {
	ledger := make(map[string]bool, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return err
		}
		ledger[p.SKU()] = true
	}

	warehouse := make(map[string]bool, len(items))
	for _, i := range items {
		if err := i.Validate(); err != nil {
			return err
		}
		warehouse[i.SKU()] = true
	}

	var missing []string
	for sku := range ledger {
		if !warehouse[sku] {
			missing = append(missing, fmt.Sprintf("%s is not in the warehouse catalog", sku))
		}
	}
	for sku := range warehouse {
		if !ledger[sku] {
			missing = append(missing, fmt.Sprintf("%s is not in the ledger catalog", sku))
		}
	}

	if len(missing) == 0 {
		return nil
	}

	sort.Strings(missing)
	return errs.NewValueIsInvalidErrorWithCause("catalogs",
		fmt.Errorf("catalogs diverge: %v", missing))
}
