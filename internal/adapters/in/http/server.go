// Package http exposes the fulfillment API over HTTP using Echo.
package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	submitPurchaseHandler *commands.SubmitPurchaseCommandHandler
	submitSaleHandler     *commands.SubmitSaleCommandHandler

	// Query handlers
	getPurchaseOrderHandler queries.GetPurchaseOrderQueryHandler
	getSalesOrderHandler    queries.GetSalesOrderQueryHandler
	getShipmentHandler      queries.GetShipmentQueryHandler
	getStockHandler         queries.GetStockQueryHandler
	getJournalHandler       queries.GetJournalQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	submitPurchaseHandler *commands.SubmitPurchaseCommandHandler,
	submitSaleHandler *commands.SubmitSaleCommandHandler,
	getPurchaseOrderHandler queries.GetPurchaseOrderQueryHandler,
	getSalesOrderHandler queries.GetSalesOrderQueryHandler,
	getShipmentHandler queries.GetShipmentQueryHandler,
	getStockHandler queries.GetStockQueryHandler,
	getJournalHandler queries.GetJournalQueryHandler,
) *Server {
	return &Server{
		submitPurchaseHandler:   submitPurchaseHandler,
		submitSaleHandler:       submitSaleHandler,
		getPurchaseOrderHandler: getPurchaseOrderHandler,
		getSalesOrderHandler:    getSalesOrderHandler,
		getShipmentHandler:      getShipmentHandler,
		getStockHandler:         getStockHandler,
		getJournalHandler:       getJournalHandler,
	}
}

// RegisterRoutes binds the API routes to the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/purchases", s.SubmitPurchase)
	v1.POST("/sales", s.SubmitSale)
	v1.GET("/purchase-orders/:id", s.GetPurchaseOrder)
	v1.GET("/sales-orders/:id", s.GetSalesOrder)
	v1.GET("/shipments/:id", s.GetShipment)
	v1.GET("/stock", s.GetStock)
	v1.GET("/journal", s.GetJournal)
}

// SubmitPurchase handles POST /api/v1/purchases - runs the procurement saga.
func (s *Server) SubmitPurchase(ctx echo.Context) error {
	var req SubmitPurchaseRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	lines := make([]commands.SubmitPurchaseLine, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, commands.SubmitPurchaseLine{
			SKU:               l.SKU,
			Qty:               l.Qty,
			UnitCost:          l.UnitCost,
			StorageLocationID: l.StorageLocationID,
		})
	}

	cmd, err := commands.NewSubmitPurchaseCommand(req.OrderID, req.SupplierID, lines)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid purchase data: "+err.Error())
	}

	result, err := s.submitPurchaseHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newSubmitPurchaseResponse(result))
}

// SubmitSale handles POST /api/v1/sales - runs the order-to-cash saga.
func (s *Server) SubmitSale(ctx echo.Context) error {
	var req SubmitSaleRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	lines := make([]commands.SubmitSaleLine, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, commands.SubmitSaleLine{
			SKU:            l.SKU,
			Qty:            l.Qty,
			FromLocationID: l.FromLocationID,
		})
	}

	cmd, err := commands.NewSubmitSaleCommand(req.OrderID, req.CustomerID, lines)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid sale data: "+err.Error())
	}

	result, err := s.submitSaleHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newSubmitSaleResponse(result))
}

// GetPurchaseOrder handles GET /api/v1/purchase-orders/:id.
func (s *Server) GetPurchaseOrder(ctx echo.Context) error {
	query, err := queries.NewGetPurchaseOrderQuery(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid purchase order id")
	}

	po, err := s.getPurchaseOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newPurchaseOrderResponse(po))
}

// GetSalesOrder handles GET /api/v1/sales-orders/:id.
func (s *Server) GetSalesOrder(ctx echo.Context) error {
	query, err := queries.NewGetSalesOrderQuery(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid sales order id")
	}

	so, err := s.getSalesOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newSalesOrderResponse(so))
}

// GetShipment handles GET /api/v1/shipments/:id.
func (s *Server) GetShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid shipment id")
	}

	query, err := queries.NewGetShipmentQuery(shipmentID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid shipment id")
	}

	sh, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newShipmentResponse(sh))
}

// GetStock handles GET /api/v1/stock - the warehouse-wide balance snapshot.
func (s *Server) GetStock(ctx echo.Context) error {
	snapshot, err := s.getStockHandler.Handle(ctx.Request().Context(), queries.NewGetStockQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StockResponse{
		Locations: snapshot.Locations,
		Totals:    snapshot.Totals,
	})
}

// GetJournal handles GET /api/v1/journal - the financial journal listing.
// An optional order_id query parameter narrows the listing to one order.
func (s *Server) GetJournal(ctx echo.Context) error {
	query := queries.NewGetJournalQuery()
	if orderID := ctx.QueryParam("order_id"); orderID != "" {
		query = queries.NewGetJournalQueryForOrder(orderID)
	}

	entries, err := s.getJournalHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]JournalEntryResponse, 0, len(entries))
	for _, e := range entries {
		response = append(response, newJournalEntryResponse(e))
	}

	return ctx.JSON(http.StatusOK, response)
}

// domainError maps domain error categories to HTTP status codes.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrInsufficientResource):
		return errorJSON(ctx, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, errs.ErrStateConflict):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, "Internal error")
	}
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}
