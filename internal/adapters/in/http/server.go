// Package http exposes the order lifecycle over a JSON API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"mezzo/internal/adapters/in/ws"
	"mezzo/internal/core/application/usecases/commands"
	"mezzo/internal/core/application/usecases/queries"
	"mezzo/internal/core/domain/model/kernel"
	"mezzo/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server wires the HTTP routes to the command and query handlers.
type Server struct {
	// Command handlers
	createOrderHandler         commands.CreateOrderCommandHandler
	advanceOrderHandler        commands.AdvanceOrderCommandHandler
	cancelOrderHandler         commands.CancelOrderCommandHandler
	requestCancellationHandler commands.RequestCancellationCommandHandler
	resolveCancellationHandler commands.ResolveCancellationCommandHandler
	addNoteHandler             commands.AddNoteCommandHandler

	// Query handlers
	getAllOrdersHandler      queries.GetAllOrdersQueryHandler
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
	getAnalyticsHandler      queries.GetAnalyticsQueryHandler

	hub    *ws.Hub
	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	requestCancellationHandler commands.RequestCancellationCommandHandler,
	resolveCancellationHandler commands.ResolveCancellationCommandHandler,
	addNoteHandler commands.AddNoteCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getAnalyticsHandler queries.GetAnalyticsQueryHandler,
	hub *ws.Hub,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		advanceOrderHandler:        advanceOrderHandler,
		cancelOrderHandler:         cancelOrderHandler,
		requestCancellationHandler: requestCancellationHandler,
		resolveCancellationHandler: resolveCancellationHandler,
		addNoteHandler:             addNoteHandler,
		getAllOrdersHandler:        getAllOrdersHandler,
		getCustomerOrdersHandler:   getCustomerOrdersHandler,
		getAnalyticsHandler:        getAnalyticsHandler,
		hub:                        hub,
		logger:                     logger,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/ws", s.Subscribe)

	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.GetOrders)
	v1.POST("/orders/:id/advance", s.AdvanceOrder)
	v1.POST("/orders/:id/cancel", s.CancelOrder)
	v1.POST("/orders/:id/cancellation-request", s.RequestCancellation)
	v1.POST("/orders/:id/cancellation-resolution", s.ResolveCancellation)
	v1.POST("/orders/:id/notes", s.AddNote)
	v1.GET("/customers/:phone/orders", s.GetCustomerOrders)
	v1.GET("/analytics", s.GetAnalytics)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Subscribe handles GET /ws?scope=orders - joins the change feed.
func (s *Server) Subscribe(ctx echo.Context) error {
	ws.ServeWS(s.hub, s.logger, ctx.Response(), ctx.Request())
	return nil
}

type orderLineRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

type createOrderRequest struct {
	CustomerName  string             `json:"customer_name"`
	CustomerPhone string             `json:"customer_phone"`
	Street        string             `json:"street"`
	Area          string             `json:"area"`
	City          string             `json:"city"`
	PaymentMethod string             `json:"payment_method"`
	Items         []orderLineRequest `json:"items"`
}

// CreateOrder handles POST /api/v1/orders - checkout.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}

	paymentMethod, err := order.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid payment method")
	}

	lines := make([]commands.OrderLine, 0, len(req.Items))
	for _, line := range req.Items {
		itemID, lineErr := kernel.UUIDFromString(line.ItemID)
		if lineErr != nil {
			return errorJSON(ctx, http.StatusBadRequest, "invalid item id")
		}
		lines = append(lines, commands.OrderLine{ItemID: itemID, Quantity: line.Quantity})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		req.CustomerName, req.CustomerPhone,
		req.Street, req.Area, req.City,
		paymentMethod, lines,
	)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

type advanceOrderRequest struct {
	Target string `json:"target"`
}

// AdvanceOrder handles POST /api/v1/orders/:id/advance.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid order id")
	}

	var req advanceOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}
	target, err := order.StatusFromString(req.Target)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid target status")
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID, target)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.commandError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

type reasonRequest struct {
	Reason string `json:"reason"`
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - operator cancellation.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid order id")
	}

	var req reasonRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.commandError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RequestCancellation handles POST /api/v1/orders/:id/cancellation-request.
func (s *Server) RequestCancellation(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid order id")
	}

	var req reasonRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewRequestCancellationCommand(orderID, req.Reason)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	result, err := s.requestCancellationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.commandError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, map[string]bool{"loss_warning": result.LossWarning})
}

type resolutionRequest struct {
	Approve *bool `json:"approve"`
}

// ResolveCancellation handles POST /api/v1/orders/:id/cancellation-resolution.
func (s *Server) ResolveCancellation(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid order id")
	}

	var req resolutionRequest
	if err = ctx.Bind(&req); err != nil || req.Approve == nil {
		return errorJSON(ctx, http.StatusBadRequest, "approve is required")
	}

	cmd, err := commands.NewResolveCancellationCommand(orderID, *req.Approve)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.resolveCancellationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.commandError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

type noteRequest struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// AddNote handles POST /api/v1/orders/:id/notes.
func (s *Server) AddNote(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid order id")
	}

	var req noteRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}
	author, err := order.ActorFromString(req.Author)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid author")
	}

	noteID := kernel.NewUUID()
	cmd, err := commands.NewAddNoteCommand(noteID, orderID, req.Text, author)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.addNoteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.commandError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, map[string]string{"id": noteID.String()})
}

// GetOrders handles GET /api/v1/orders - the operator's full order list.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		s.logger.Error("order list query failed", "error", err)
		return errorJSON(ctx, http.StatusInternalServerError, "failed to retrieve orders")
	}
	return ctx.JSON(http.StatusOK, toOrderJSONList(orders))
}

// GetCustomerOrders handles GET /api/v1/customers/:phone/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	query, err := queries.NewGetCustomerOrdersQuery(ctx.Param("phone"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid phone")
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		s.logger.Error("customer orders query failed", "error", err)
		return errorJSON(ctx, http.StatusInternalServerError, "failed to retrieve orders")
	}
	return ctx.JSON(http.StatusOK, toOrderJSONList(orders))
}

// GetAnalytics handles GET /api/v1/analytics.
func (s *Server) GetAnalytics(ctx echo.Context) error {
	resp, err := s.getAnalyticsHandler.Handle(ctx.Request().Context(), queries.NewGetAnalyticsQuery())
	if err != nil {
		s.logger.Error("analytics query failed", "error", err)
		return errorJSON(ctx, http.StatusInternalServerError, "failed to compute analytics")
	}
	return ctx.JSON(http.StatusOK, toAnalyticsJSON(resp))
}

type orderItemJSON struct {
	ItemID    string `json:"item_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Subtotal  string `json:"subtotal"`
}

type orderNoteJSON struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

type orderJSON struct {
	ID                 string          `json:"id"`
	OrderNumber        string          `json:"order_number"`
	CustomerID         string          `json:"customer_id"`
	CustomerName       string          `json:"customer_name"`
	CustomerPhone      string          `json:"customer_phone"`
	Status             string          `json:"status"`
	PaymentMethod      string          `json:"payment_method"`
	TotalAmount        string          `json:"total_amount"`
	CancellationReason string          `json:"cancellation_reason,omitempty"`
	CancelledBy        string          `json:"cancelled_by,omitempty"`
	CancellationStage  string          `json:"cancellation_stage,omitempty"`
	Items              []orderItemJSON `json:"items"`
	Notes              []orderNoteJSON `json:"notes"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

func toOrderJSONList(orders []queries.OrderResponse) []orderJSON {
	out := make([]orderJSON, 0, len(orders))
	for _, o := range orders {
		items := make([]orderItemJSON, 0, len(o.Items))
		for _, item := range o.Items {
			items = append(items, orderItemJSON{
				ItemID:    item.ItemID.String(),
				Name:      item.Name,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice.String(),
				Subtotal:  item.Subtotal.String(),
			})
		}
		notes := make([]orderNoteJSON, 0, len(o.Notes))
		for _, n := range o.Notes {
			notes = append(notes, orderNoteJSON{
				ID:        n.ID.String(),
				Text:      n.Text,
				Author:    n.Author,
				CreatedAt: n.CreatedAt,
			})
		}
		out = append(out, orderJSON{
			ID:                 o.ID.String(),
			OrderNumber:        o.OrderNumber,
			CustomerID:         o.CustomerID.String(),
			CustomerName:       o.CustomerName,
			CustomerPhone:      o.CustomerPhone,
			Status:             o.Status,
			PaymentMethod:      o.PaymentMethod,
			TotalAmount:        o.TotalAmount.String(),
			CancellationReason: o.CancellationReason,
			CancelledBy:        o.CancelledBy,
			CancellationStage:  o.CancellationStage,
			Items:              items,
			Notes:              notes,
			CreatedAt:          o.CreatedAt,
			UpdatedAt:          o.UpdatedAt,
		})
	}
	return out
}

type popularityJSON struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Revenue  string `json:"revenue"`
}

type analyticsJSON struct {
	TotalOrders     int              `json:"total_orders"`
	CompletedOrders int              `json:"completed_orders"`
	CancelledOrders int              `json:"cancelled_orders"`
	CountsByStatus  map[string]int   `json:"counts_by_status"`
	Revenue         string           `json:"revenue"`
	Losses          string           `json:"losses"`
	AverageOrder    string           `json:"average_order"`
	TopItems        []popularityJSON `json:"top_items"`
	TopCategories   []popularityJSON `json:"top_categories"`
}

func toAnalyticsJSON(resp queries.GetAnalyticsQueryResponse) analyticsJSON {
	report := resp.Report

	counts := make(map[string]int, len(report.CountsByStatus))
	for status, count := range report.CountsByStatus {
		counts[status.String()] = count
	}

	topItems := make([]popularityJSON, 0, len(report.TopItems))
	for _, item := range report.TopItems {
		topItems = append(topItems, popularityJSON{
			Name:     item.Name,
			Quantity: item.Quantity,
			Revenue:  item.Revenue.String(),
		})
	}
	topCategories := make([]popularityJSON, 0, len(report.TopCategories))
	for _, category := range report.TopCategories {
		topCategories = append(topCategories, popularityJSON{
			Name:     category.Category,
			Quantity: category.Quantity,
			Revenue:  category.Revenue.String(),
		})
	}

	return analyticsJSON{
		TotalOrders:     report.TotalOrders,
		CompletedOrders: report.CompletedOrders,
		CancelledOrders: report.CancelledOrders,
		CountsByStatus:  counts,
		Revenue:         report.Revenue.String(),
		Losses:          report.Losses.String(),
		AverageOrder:    report.AverageOrder.String(),
		TopItems:        topItems,
		TopCategories:   topCategories,
	}
}
