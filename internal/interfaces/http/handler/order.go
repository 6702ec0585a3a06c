package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	orderapp "github.com/baerenfell/backend/internal/application/order"
	"github.com/baerenfell/backend/internal/domain/shared"
	"github.com/baerenfell/backend/internal/interfaces/http/dto"
	"github.com/baerenfell/backend/internal/interfaces/http/middleware"
)

// IdempotencyKeyHeader carries the client-generated key that guards order
// placement against duplicate submission.
const IdempotencyKeyHeader = "Idempotency-Key"

// OrderHandler handles order HTTP requests
type OrderHandler struct {
	BaseHandler
	orderService     *orderapp.OrderService
	idempotencyStore shared.IdempotencyStore
	idempotencyTTL   time.Duration
	logger           *zap.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(
	orderService *orderapp.OrderService,
	idempotencyStore shared.IdempotencyStore,
	idempotencyTTL time.Duration,
	logger *zap.Logger,
) *OrderHandler {
	return &OrderHandler{
		orderService:     orderService,
		idempotencyStore: idempotencyStore,
		idempotencyTTL:   idempotencyTTL,
		logger:           logger,
	}
}

// Place handles POST /api/orders. When the client supplies an
// Idempotency-Key header, a repeated submission with the same key is
// rejected as a duplicate instead of creating a second order.
func (h *OrderHandler) Place(c *gin.Context) {
	var req orderapp.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	key := c.GetHeader(IdempotencyKeyHeader)
	if key != "" {
		fresh, err := h.idempotencyStore.MarkProcessed(c.Request.Context(), key, h.idempotencyTTL)
		if err != nil {
			h.logger.Error("idempotency check failed", zap.Error(err))
			h.InternalError(c, "Failed to process order")
			return
		}
		if !fresh {
			h.Conflict(c, "DUPLICATE_REQUEST", "This order has already been submitted")
			return
		}
	}

	placed, err := h.orderService.Place(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.logger.Info("order placed",
		zap.String("order_number", placed.OrderNumber),
		zap.String("customer_email", placed.CustomerEmail),
	)
	h.Created(c, placed)
}

// List handles GET /api/orders for the admin view
func (h *OrderHandler) List(c *gin.Context) {
	var listReq dto.ListRequest
	if err := c.ShouldBindQuery(&listReq); err != nil {
		h.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}
	listReq = listReq.WithDefaults()

	filter := orderapp.OrderListFilter{
		Status:   c.Query("status"),
		Page:     listReq.Page,
		PageSize: listReq.PageSize,
	}

	orders, total, err := h.orderService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Paginated(c, orders, total, listReq.Page, listReq.PageSize)
}

// Get handles GET /api/orders/:id. Customers only see their own orders,
// admins see everything.
func (h *OrderHandler) Get(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	o, err := h.orderService.GetByID(c.Request.Context(), orderID,
		middleware.GetUserEmail(c), middleware.IsAdmin(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, o)
}

// UpdateStatus handles PUT /api/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	var req orderapp.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	o, err := h.orderService.UpdateStatus(c.Request.Context(), orderID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.logger.Info("order status updated",
		zap.String("order_number", o.OrderNumber),
		zap.String("status", o.Status),
	)
	h.Success(c, o)
}

// MyOrders handles GET /api/orders/my/orders for the authenticated customer
func (h *OrderHandler) MyOrders(c *gin.Context) {
	email := middleware.GetUserEmail(c)
	if email == "" {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orders, err := h.orderService.ListByCustomer(c.Request.Context(), email)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, orders)
}
