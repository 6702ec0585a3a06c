package order

import (
	"time"

	appcatalog "github.com/baerenfell/backend/internal/application/catalog"
	"github.com/baerenfell/backend/internal/domain/order"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItemRequest represents one requested line in a new order
type OrderItemRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
	Size      string    `json:"size" binding:"max=20"`
}

// CreateOrderRequest represents a request to place an order
type CreateOrderRequest struct {
	CustomerEmail      string             `json:"customerEmail" binding:"required,email"`
	CustomerName       string             `json:"customerName" binding:"required,min=1,max=200"`
	CustomerPhone      string             `json:"customerPhone" binding:"max=50"`
	ShippingAddress    string             `json:"shippingAddress" binding:"required,max=500"`
	ShippingCity       string             `json:"shippingCity" binding:"required,max=200"`
	ShippingPostalCode string             `json:"shippingPostalCode" binding:"required,max=20"`
	ShippingCountry    string             `json:"shippingCountry" binding:"max=100"`
	CustomerNotes      string             `json:"customerNotes" binding:"max=2000"`
	Items              []OrderItemRequest `json:"items"`
}

// UpdateOrderStatusRequest represents an admin status change
type UpdateOrderStatusRequest struct {
	Status         string  `json:"status" binding:"required"`
	TrackingNumber *string `json:"trackingNumber" binding:"omitempty,max=100"`
	AdminNotes     *string `json:"adminNotes" binding:"omitempty,max=5000"`
}

// OrderListFilter represents filter options for listing orders
type OrderListFilter struct {
	Status   string
	Page     int
	PageSize int
}

// OrderItemResponse represents a line item in API responses
// Product is attached only when the referenced product still exists
type OrderItemResponse struct {
	ID           uuid.UUID                    `json:"id"`
	ProductID    uuid.UUID                    `json:"productId"`
	ProductName  string                       `json:"productName"`
	ProductImage string                       `json:"productImage"`
	Size         string                       `json:"size"`
	Quantity     int                          `json:"quantity"`
	Price        decimal.Decimal              `json:"price"`
	Product      *appcatalog.ProductResponse  `json:"product,omitempty"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID                 uuid.UUID           `json:"id"`
	OrderNumber        string              `json:"orderNumber"`
	Status             string              `json:"status"`
	CustomerEmail      string              `json:"customerEmail"`
	CustomerName       string              `json:"customerName"`
	CustomerPhone      string              `json:"customerPhone"`
	ShippingAddress    string              `json:"shippingAddress"`
	ShippingCity       string              `json:"shippingCity"`
	ShippingPostalCode string              `json:"shippingPostalCode"`
	ShippingCountry    string              `json:"shippingCountry"`
	Subtotal           decimal.Decimal     `json:"subtotal"`
	ShippingCost       decimal.Decimal     `json:"shippingCost"`
	Tax                decimal.Decimal     `json:"tax"`
	Total              decimal.Decimal     `json:"total"`
	PaymentMethod      string              `json:"paymentMethod"`
	IsPaid             bool                `json:"isPaid"`
	PaidAt             *time.Time          `json:"paidAt"`
	IsShipped          bool                `json:"isShipped"`
	ShippedAt          *time.Time          `json:"shippedAt"`
	TrackingNumber     string              `json:"trackingNumber"`
	CustomerNotes      string              `json:"customerNotes"`
	AdminNotes         string              `json:"adminNotes"`
	Items              []OrderItemResponse `json:"items"`
	CreatedAt          time.Time           `json:"createdAt"`
	UpdatedAt          time.Time           `json:"updatedAt"`
}

// ToOrderItemResponse converts an order item to its API representation
func ToOrderItemResponse(item *order.OrderItem) OrderItemResponse {
	response := OrderItemResponse{
		ID:           item.ID,
		ProductID:    item.ProductID,
		ProductName:  item.ProductName,
		ProductImage: item.ProductImage,
		Size:         item.Size,
		Quantity:     item.Quantity,
		Price:        item.Price,
	}
	if item.Product != nil {
		product := appcatalog.ToProductResponse(item.Product)
		response.Product = &product
	}
	return response
}

// ToOrderResponse converts an order to its API representation
func ToOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i := range o.Items {
		items[i] = ToOrderItemResponse(&o.Items[i])
	}

	return OrderResponse{
		ID:                 o.ID,
		OrderNumber:        o.OrderNumber,
		Status:             o.Status.String(),
		CustomerEmail:      o.CustomerEmail,
		CustomerName:       o.CustomerName,
		CustomerPhone:      o.CustomerPhone,
		ShippingAddress:    o.ShippingAddress,
		ShippingCity:       o.ShippingCity,
		ShippingPostalCode: o.ShippingPostalCode,
		ShippingCountry:    o.ShippingCountry,
		Subtotal:           o.Subtotal,
		ShippingCost:       o.ShippingCost,
		Tax:                o.Tax,
		Total:              o.Total,
		PaymentMethod:      o.PaymentMethod,
		IsPaid:             o.IsPaid,
		PaidAt:             o.PaidAt,
		IsShipped:          o.IsShipped,
		ShippedAt:          o.ShippedAt,
		TrackingNumber:     o.TrackingNumber,
		CustomerNotes:      o.CustomerNotes,
		AdminNotes:         o.AdminNotes,
		Items:              items,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

// ToOrderResponses converts an order slice to API representations
func ToOrderResponses(orders []order.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return responses
}
