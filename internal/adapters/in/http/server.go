// Package http exposes the shop's commands and queries as a JSON API.
//
// The order listing is served by several endpoints, one per retrieval
// strategy, kept separate so their query behavior can be compared against
// the same data:
//
//	GET /api/v1/orders    naive per-association loading
//	GET /api/v2/orders    to-one associations joined
//	GET /api/v3/orders    single join including lines
//	GET /api/v3.1/orders  paged roots with batched line loading
//	GET /api/v4/orders    direct summary projection
//	GET /api/v5/orders    summary projection with batched lines
//	GET /api/v6/orders    flat join regrouped in memory
//	GET /api/orders       filtered search (memberName, status)
package http

import (
	"errors"
	"net/http"
	"strconv"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createMemberHandler     commands.CreateMemberCommandHandler
	createItemHandler       commands.CreateItemCommandHandler
	changeItemHandler       commands.ChangeItemCommandHandler
	placeOrderHandler       commands.PlaceOrderCommandHandler
	cancelOrderHandler      commands.CancelOrderCommandHandler
	shipDeliveryHandler     commands.ShipDeliveryCommandHandler
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler

	getOrdersHandler                queries.GetOrdersQueryHandler
	getOrdersEagerHandler           queries.GetOrdersEagerQueryHandler
	getOrdersWithLinesHandler       queries.GetOrdersWithLinesQueryHandler
	getOrdersPagedHandler           queries.GetOrdersPagedQueryHandler
	getOrderSummariesHandler        queries.GetOrderSummariesQueryHandler
	getOrderSummariesBatchedHandler queries.GetOrderSummariesBatchedQueryHandler
	getOrdersFlatHandler            queries.GetOrdersFlatQueryHandler
	findOrdersHandler               queries.FindOrdersQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createMemberHandler commands.CreateMemberCommandHandler,
	createItemHandler commands.CreateItemCommandHandler,
	changeItemHandler commands.ChangeItemCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	shipDeliveryHandler commands.ShipDeliveryCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrdersEagerHandler queries.GetOrdersEagerQueryHandler,
	getOrdersWithLinesHandler queries.GetOrdersWithLinesQueryHandler,
	getOrdersPagedHandler queries.GetOrdersPagedQueryHandler,
	getOrderSummariesHandler queries.GetOrderSummariesQueryHandler,
	getOrderSummariesBatchedHandler queries.GetOrderSummariesBatchedQueryHandler,
	getOrdersFlatHandler queries.GetOrdersFlatQueryHandler,
	findOrdersHandler queries.FindOrdersQueryHandler,
) *Server {
	return &Server{
		createMemberHandler:       createMemberHandler,
		createItemHandler:         createItemHandler,
		changeItemHandler:         changeItemHandler,
		placeOrderHandler:         placeOrderHandler,
		cancelOrderHandler:        cancelOrderHandler,
		shipDeliveryHandler:       shipDeliveryHandler,
		completeDeliveryHandler:   completeDeliveryHandler,
		getOrdersHandler:                getOrdersHandler,
		getOrdersEagerHandler:           getOrdersEagerHandler,
		getOrdersWithLinesHandler:       getOrdersWithLinesHandler,
		getOrdersPagedHandler:           getOrdersPagedHandler,
		getOrderSummariesHandler:        getOrderSummariesHandler,
		getOrderSummariesBatchedHandler: getOrderSummariesBatchedHandler,
		getOrdersFlatHandler:            getOrdersFlatHandler,
		findOrdersHandler:               findOrdersHandler,
	}
}

// RegisterRoutes attaches all API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/members", s.CreateMember)
	e.POST("/api/v1/items", s.CreateItem)
	e.PUT("/api/v1/items/:id", s.ChangeItem)

	e.POST("/api/v1/orders", s.PlaceOrder)
	e.POST("/api/v1/orders/:id/cancel", s.CancelOrder)
	e.POST("/api/v1/orders/:id/ship", s.ShipDelivery)
	e.POST("/api/v1/orders/:id/complete", s.CompleteDelivery)

	e.GET("/api/v1/orders", s.GetOrders)
	e.GET("/api/v2/orders", s.GetOrdersEager)
	e.GET("/api/v3/orders", s.GetOrdersWithLines)
	e.GET("/api/v3.1/orders", s.GetOrdersPaged)
	e.GET("/api/v4/orders", s.GetOrderSummaries)
	e.GET("/api/v5/orders", s.GetOrderSummariesBatched)
	e.GET("/api/v6/orders", s.GetOrdersFlat)
	e.GET("/api/orders", s.FindOrders)
}

// CreateMember handles POST /api/v1/members.
func (s *Server) CreateMember(ctx echo.Context) error {
	var newMember NewMember
	if err := ctx.Bind(&newMember); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	address, err := kernel.NewAddress(newMember.Address.City, newMember.Address.Street, newMember.Address.ZipCode)
	if err != nil {
		return badRequest(ctx, "Invalid address: "+err.Error())
	}

	memberID := kernel.NewUUID()
	cmd, err := commands.NewCreateMemberCommand(memberID, newMember.Name, address)
	if err != nil {
		return badRequest(ctx, "Invalid member data: "+err.Error())
	}

	if handleErr := s.createMemberHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: memberID.Bytes()})
}

// CreateItem handles POST /api/v1/items.
func (s *Server) CreateItem(ctx echo.Context) error {
	var newItem NewItem
	if err := ctx.Bind(&newItem); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	kind, err := item.KindFromString(newItem.Kind)
	if err != nil {
		return badRequest(ctx, "Invalid item kind: "+err.Error())
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewCreateItemCommand(itemID, kind, newItem.Name, newItem.Price, newItem.Stock)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	if handleErr := s.createItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: itemID.Bytes()})
}

// ChangeItem handles PUT /api/v1/items/:id.
func (s *Server) ChangeItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	var changeItem ChangeItem
	if err = ctx.Bind(&changeItem); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeItemCommand(itemID, changeItem.Name, changeItem.Price)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	if handleErr := s.changeItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	memberID, err := kernel.UUIDFromBytes(newOrder.MemberID[:])
	if err != nil {
		return badRequest(ctx, "Invalid member id")
	}

	itemID, err := kernel.UUIDFromBytes(newOrder.ItemID[:])
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, memberID, itemID, newOrder.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: orderID.Bytes()})
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ShipDelivery handles POST /api/v1/orders/:id/ship.
func (s *Server) ShipDelivery(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewShipDeliveryCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	if handleErr := s.shipDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteDelivery handles POST /api/v1/orders/:id/complete.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCompleteDeliveryCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	if handleErr := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetOrdersQuery())
	if err != nil {
		return queryError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetOrdersEager handles GET /api/v2/orders.
func (s *Server) GetOrdersEager(ctx echo.Context) error {
	orders, err := s.getOrdersEagerHandler.Handle(ctx.Request().Context(), queries.NewGetOrdersEagerQuery())
	if err != nil {
		return queryError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetOrdersWithLines handles GET /api/v3/orders.
func (s *Server) GetOrdersWithLines(ctx echo.Context) error {
	orders, err := s.getOrdersWithLinesHandler.Handle(ctx.Request().Context(), queries.NewGetOrdersWithLinesQuery())
	if err != nil {
		return queryError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetOrdersPaged handles GET /api/v3.1/orders with offset and limit parameters.
func (s *Server) GetOrdersPaged(ctx echo.Context) error {
	offset, err := intQueryParam(ctx, "offset", 0)
	if err != nil {
		return badRequest(ctx, "Invalid offset: must be an integer")
	}
	limit, err := intQueryParam(ctx, "limit", 100)
	if err != nil {
		return badRequest(ctx, "Invalid limit: must be an integer")
	}

	query, err := queries.NewGetOrdersPagedQuery(offset, limit)
	if err != nil {
		return badRequest(ctx, "Invalid paging: "+err.Error())
	}

	orders, err := s.getOrdersPagedHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return queryError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetOrderSummaries handles GET /api/v4/orders.
func (s *Server) GetOrderSummaries(ctx echo.Context) error {
	summaries, err := s.getOrderSummariesHandler.Handle(ctx.Request().Context(), queries.NewGetOrderSummariesQuery())
	if err != nil {
		return queryError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderSummaries(summaries))
}

// GetOrderSummariesBatched handles GET /api/v5/orders.
func (s *Server) GetOrderSummariesBatched(ctx echo.Context) error {
	summaries, err := s.getOrderSummariesBatchedHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetOrderSummariesBatchedQuery(),
	)
	if err != nil {
		return queryError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderSummaries(summaries))
}

// GetOrdersFlat handles GET /api/v6/orders.
func (s *Server) GetOrdersFlat(ctx echo.Context) error {
	orders, err := s.getOrdersFlatHandler.Handle(ctx.Request().Context(), queries.NewGetOrdersFlatQuery())
	if err != nil {
		return queryError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// FindOrders handles GET /api/orders with memberName and status parameters.
func (s *Server) FindOrders(ctx echo.Context) error {
	query, err := queries.NewFindOrdersQuery(
		ctx.QueryParam("memberName"),
		ctx.QueryParam("status"),
	)
	if err != nil {
		return badRequest(ctx, "Invalid filter: "+err.Error())
	}

	orders, err := s.findOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return queryError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

func toAddress(address kernel.Address) Address {
	return Address{
		City:    address.City(),
		Street:  address.Street(),
		ZipCode: address.ZipCode(),
	}
}

func toOrderSummaries(summaries []queries.OrderSummaryResponse) []OrderSummary {
	response := make([]OrderSummary, len(summaries))
	for i, summary := range summaries {
		lines := make([]OrderLine, len(summary.Lines))
		for n, line := range summary.Lines {
			lines[n] = OrderLine{
				ItemName: line.ItemName,
				Price:    line.Price,
				Quantity: line.Quantity,
			}
		}

		response[i] = OrderSummary{
			ID:         summary.ID.Bytes(),
			MemberName: summary.MemberName,
			PlacedAt:   summary.PlacedAt,
			Status:     summary.Status,
			Address:    toAddress(summary.Address),
			Lines:      lines,
		}
	}
	return response
}

func toOrderResponses(orders []queries.OrderResponse) []Order {
	response := make([]Order, len(orders))
	for i, o := range orders {
		lines := make([]OrderLine, len(o.Lines))
		for n, line := range o.Lines {
			lines[n] = OrderLine{
				ItemName: line.ItemName,
				Price:    line.Price,
				Quantity: line.Quantity,
			}
		}

		response[i] = Order{
			ID:         o.ID.Bytes(),
			MemberName: o.MemberName,
			PlacedAt:   o.PlacedAt,
			Status:     o.Status,
			Address:    toAddress(o.Address),
			Lines:      lines,
		}
	}
	return response
}

// intQueryParam parses an integer query parameter. An absent parameter yields
// the fallback; a present but malformed one is an error so callers can reject
// the request instead of silently ignoring the value.
func intQueryParam(ctx echo.Context, name string, fallback int) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	return strconv.Atoi(raw)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// commandError maps domain failures onto HTTP statuses: missing aggregates
// become 404, rejected business operations become 409, everything else is
// treated as an infrastructure failure.
func commandError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, item.ErrInsufficientStock),
		errors.Is(err, order.ErrIllegalCancellation),
		errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Operation failed",
		})
	}
}

func queryError(ctx echo.Context, _ error) error {
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: "Failed to retrieve orders",
	})
}
