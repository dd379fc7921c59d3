package http

import (
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// SubmitPurchaseRequest is the body of POST /api/v1/purchases.
type SubmitPurchaseRequest struct {
	OrderID    string                      `json:"order_id"`
	SupplierID string                      `json:"supplier_id"`
	Lines      []SubmitPurchaseRequestLine `json:"lines"`
}

// SubmitPurchaseRequestLine is one purchased line of a purchase request.
type SubmitPurchaseRequestLine struct {
	SKU               string          `json:"sku"`
	Qty               int             `json:"qty"`
	UnitCost          decimal.Decimal `json:"unit_cost"`
	StorageLocationID string          `json:"storage_location_id"`
}

// SubmitPurchaseResponse reports the outcome of a procurement saga.
type SubmitPurchaseResponse struct {
	OrderID     string       `json:"order_id"`
	Status      string       `json:"status"`
	AllReceived bool         `json:"all_received"`
	Lines       []LineOutcome `json:"lines"`
}

// SubmitSaleRequest is the body of POST /api/v1/sales.
type SubmitSaleRequest struct {
	OrderID    string                  `json:"order_id"`
	CustomerID string                  `json:"customer_id"`
	Lines      []SubmitSaleRequestLine `json:"lines"`
}

// SubmitSaleRequestLine is one sold line of a sale request.
type SubmitSaleRequestLine struct {
	SKU            string `json:"sku"`
	Qty            int    `json:"qty"`
	FromLocationID string `json:"from_location_id"`
}

// SubmitSaleResponse reports the outcome of an order-to-cash saga.
type SubmitSaleResponse struct {
	OrderID     string          `json:"order_id"`
	Status      string          `json:"status"`
	ShipmentID  *string         `json:"shipment_id,omitempty"`
	Revenue     decimal.Decimal `json:"revenue"`
	COGS        decimal.Decimal `json:"cogs"`
	DeliveredAt *time.Time      `json:"delivered_at,omitempty"`
	Picks       []LineOutcome   `json:"picks"`
}

// LineOutcome reports the per-line result of a saga step.
type LineOutcome struct {
	SKU   string `json:"sku"`
	Error string `json:"error,omitempty"`
}

// PurchaseOrderResponse is the read model returned by GET /purchase-orders/:id.
type PurchaseOrderResponse struct {
	ID         string                      `json:"id"`
	SupplierID string                      `json:"supplier_id"`
	Status     string                      `json:"status"`
	Lines      []PurchaseOrderLineResponse `json:"lines"`
}

// PurchaseOrderLineResponse is one line of a purchase order read model.
type PurchaseOrderLineResponse struct {
	SKU      string          `json:"sku"`
	Ordered  int             `json:"ordered"`
	UnitCost decimal.Decimal `json:"unit_cost"`
	Received int             `json:"received"`
}

// SalesOrderResponse is the read model returned by GET /sales-orders/:id.
type SalesOrderResponse struct {
	ID          string                   `json:"id"`
	CustomerID  string                   `json:"customer_id"`
	Status      string                   `json:"status"`
	ShipmentID  *string                  `json:"shipment_id,omitempty"`
	DeliveredAt *time.Time               `json:"delivered_at,omitempty"`
	TotalValue  decimal.Decimal          `json:"total_value"`
	Lines       []SalesOrderLineResponse `json:"lines"`
}

// SalesOrderLineResponse is one line of a sales order read model.
type SalesOrderLineResponse struct {
	SKU        string          `json:"sku"`
	Qty        int             `json:"qty"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	CostAtSale decimal.Decimal `json:"cost_at_sale"`
	Picked     int             `json:"picked"`
}

// ShipmentResponse is the read model returned by GET /shipments/:id.
type ShipmentResponse struct {
	ID              string                 `json:"id"`
	OriginCity      string                 `json:"origin_city"`
	DestinationCity string                 `json:"destination_city"`
	CarrierID       string                 `json:"carrier_id,omitempty"`
	EstimatedCost   decimal.Decimal        `json:"estimated_cost"`
	Status          string                 `json:"status"`
	DeliveredAt     *time.Time             `json:"delivered_at,omitempty"`
	TotalWeight     decimal.Decimal        `json:"total_weight"`
	Lines           []ShipmentLineResponse `json:"lines"`
}

// ShipmentLineResponse is one line of a shipment read model.
type ShipmentLineResponse struct {
	SKU        string          `json:"sku"`
	Qty        int             `json:"qty"`
	UnitWeight decimal.Decimal `json:"unit_weight"`
	UnitVolume decimal.Decimal `json:"unit_volume"`
}

// StockResponse is the warehouse snapshot returned by GET /stock.
type StockResponse struct {
	Locations map[string]map[string]int `json:"locations"`
	Totals    map[string]int            `json:"totals"`
}

// JournalEntryResponse is one journal entry returned by GET /journal.
type JournalEntryResponse struct {
	ID         string          `json:"id"`
	Kind       string          `json:"kind"`
	Amount     decimal.Decimal `json:"amount"`
	OrderID    string          `json:"order_id"`
	ShipmentID *string         `json:"shipment_id,omitempty"`
	PostedAt   time.Time       `json:"posted_at"`
}

func newSubmitPurchaseResponse(result commands.SubmitPurchaseResult) SubmitPurchaseResponse {
	return SubmitPurchaseResponse{
		OrderID:     result.OrderID,
		Status:      result.Status.String(),
		AllReceived: result.AllReceived,
		Lines:       newLineOutcomes(result.Lines),
	}
}

func newSubmitSaleResponse(result commands.SubmitSaleResult) SubmitSaleResponse {
	var shipmentID *string
	if result.ShipmentID != nil {
		s := result.ShipmentID.String()
		shipmentID = &s
	}

	return SubmitSaleResponse{
		OrderID:     result.OrderID,
		Status:      result.Status.String(),
		ShipmentID:  shipmentID,
		Revenue:     result.Revenue,
		COGS:        result.COGS,
		DeliveredAt: result.DeliveredAt,
		Picks:       newLineOutcomes(result.PickResults),
	}
}

func newLineOutcomes(lines []commands.LineResult) []LineOutcome {
	outcomes := make([]LineOutcome, 0, len(lines))
	for _, l := range lines {
		outcome := LineOutcome{SKU: l.SKU}
		if l.Err != nil {
			outcome.Error = l.Err.Error()
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

func newPurchaseOrderResponse(po queries.GetPurchaseOrderQueryResponse) PurchaseOrderResponse {
	lines := make([]PurchaseOrderLineResponse, 0, len(po.Lines))
	for _, l := range po.Lines {
		lines = append(lines, PurchaseOrderLineResponse{
			SKU:      l.SKU,
			Ordered:  l.Ordered,
			UnitCost: l.UnitCost,
			Received: l.Received,
		})
	}

	return PurchaseOrderResponse{
		ID:         po.ID,
		SupplierID: po.SupplierID,
		Status:     po.Status,
		Lines:      lines,
	}
}

func newSalesOrderResponse(so queries.GetSalesOrderQueryResponse) SalesOrderResponse {
	var shipmentID *string
	if so.ShipmentID != nil {
		s := so.ShipmentID.String()
		shipmentID = &s
	}

	lines := make([]SalesOrderLineResponse, 0, len(so.Lines))
	for _, l := range so.Lines {
		lines = append(lines, SalesOrderLineResponse{
			SKU:        l.SKU,
			Qty:        l.Qty,
			UnitPrice:  l.UnitPrice,
			CostAtSale: l.CostAtSale,
			Picked:     l.Picked,
		})
	}

	return SalesOrderResponse{
		ID:          so.ID,
		CustomerID:  so.CustomerID,
		Status:      so.Status,
		ShipmentID:  shipmentID,
		DeliveredAt: so.DeliveredAt,
		TotalValue:  so.TotalValue,
		Lines:       lines,
	}
}

func newShipmentResponse(sh queries.GetShipmentQueryResponse) ShipmentResponse {
	lines := make([]ShipmentLineResponse, 0, len(sh.Lines))
	for _, l := range sh.Lines {
		lines = append(lines, ShipmentLineResponse{
			SKU:        l.SKU,
			Qty:        l.Qty,
			UnitWeight: l.UnitWeight,
			UnitVolume: l.UnitVolume,
		})
	}

	return ShipmentResponse{
		ID:              sh.ID.String(),
		OriginCity:      sh.OriginCity,
		DestinationCity: sh.DestinationCity,
		CarrierID:       sh.CarrierID,
		EstimatedCost:   sh.EstimatedCost,
		Status:          sh.Status,
		DeliveredAt:     sh.DeliveredAt,
		TotalWeight:     sh.TotalWeight,
		Lines:           lines,
	}
}

func newJournalEntryResponse(e queries.GetJournalQueryResponse) JournalEntryResponse {
	var shipmentID *string
	if e.ShipmentID != nil {
		s := e.ShipmentID.String()
		shipmentID = &s
	}

	return JournalEntryResponse{
		ID:         e.ID.String(),
		Kind:       e.Kind,
		Amount:     e.Amount,
		OrderID:    e.OrderID,
		ShipmentID: shipmentID,
		PostedAt:   e.PostedAt,
	}
}
