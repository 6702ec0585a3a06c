package order

import (
	"time"

	"github.com/baerenfell/backend/internal/domain/catalog"
	"github.com/baerenfell/backend/internal/domain/shared"
	"github.com/baerenfell/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the status of an order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// IsTerminal returns true for states that allow no further transitions
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo checks if the status can transition to the target status
// The fulfilment path is pending -> paid -> processing -> shipped -> delivered,
// with cancellation allowed from any non-terminal state
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	if target == OrderStatusCancelled {
		return !s.IsTerminal()
	}
	switch s {
	case OrderStatusPending:
		return target == OrderStatusPaid
	case OrderStatusPaid:
		return target == OrderStatusProcessing
	case OrderStatusProcessing:
		return target == OrderStatusShipped
	case OrderStatusShipped:
		return target == OrderStatusDelivered
	}
	return false
}

// OrderItem represents a line item in an order
// Product name, image and price are snapshotted at order time; ProductID is a
// soft reference that survives later product deletion
type OrderItem struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName  string          `gorm:"type:varchar(200);not null"`
	ProductImage string          `gorm:"type:varchar(500)"`
	Size         string          `gorm:"type:varchar(20)"`
	Quantity     int             `gorm:"not null"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Attached for responses when the product still exists
	Product *catalog.Product `gorm:"foreignKey:ProductID"`
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// NewOrderItem creates a line item snapshotting the product's current state
func NewOrderItem(product *catalog.Product, size string, quantity int) (*OrderItem, error) {
	if product == nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product cannot be empty")
	}
	if quantity < 1 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}

	now := time.Now()
	return &OrderItem{
		ID:           uuid.New(),
		ProductID:    product.ID,
		ProductName:  product.Name,
		ProductImage: product.MainImage,
		Size:         size,
		Quantity:     quantity,
		Price:        product.Price,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// LineTotal returns price * quantity for this item
func (i *OrderItem) LineTotal() valueobject.Money {
	return valueobject.NewMoneyCHF(i.Price).MultiplyByInt(int64(i.Quantity))
}

// Order represents a customer order aggregate root
type Order struct {
	shared.BaseAggregateRoot
	OrderNumber string      `gorm:"type:varchar(50);not null;uniqueIndex"`
	Status      OrderStatus `gorm:"type:varchar(20);not null;default:'pending'"`

	CustomerEmail string `gorm:"type:varchar(200);not null;index"`
	CustomerName  string `gorm:"type:varchar(200);not null"`
	CustomerPhone string `gorm:"type:varchar(50)"`

	ShippingAddress    string `gorm:"type:varchar(500);not null"`
	ShippingCity       string `gorm:"type:varchar(200);not null"`
	ShippingPostalCode string `gorm:"type:varchar(20);not null"`
	ShippingCountry    string `gorm:"type:varchar(100);not null;default:'Switzerland'"`

	Subtotal     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	ShippingCost decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Tax          decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Total        decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`

	PaymentMethod string     `gorm:"type:varchar(50);not null;default:'stripe'"`
	PaymentID     string     `gorm:"type:varchar(200)"`
	IsPaid        bool       `gorm:"not null;default:false"`
	PaidAt        *time.Time ``

	IsShipped      bool       `gorm:"not null;default:false"`
	ShippedAt      *time.Time ``
	TrackingNumber string     `gorm:"type:varchar(100)"`

	CustomerNotes string `gorm:"type:text"`
	AdminNotes    string `gorm:"type:text"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// CustomerInfo carries the customer contact fields for a new order
type CustomerInfo struct {
	Email string
	Name  string
	Phone string
}

// ShippingInfo carries the shipping destination fields for a new order
type ShippingInfo struct {
	Address    string
	City       string
	PostalCode string
	Country    string
}

// NewOrder creates a new pending order with a generated order number.
// Totals stay zero until items are added and CalculateTotals is called.
func NewOrder(customer CustomerInfo, shipping ShippingInfo, customerNotes string) (*Order, error) {
	if customer.Email == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer email cannot be empty")
	}
	if customer.Name == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer name cannot be empty")
	}
	if shipping.Address == "" || shipping.City == "" || shipping.PostalCode == "" {
		return nil, shared.NewDomainError("INVALID_SHIPPING", "Shipping address, city and postal code are required")
	}
	if shipping.Country == "" {
		shipping.Country = DefaultCountry
	}

	return &Order{
		BaseAggregateRoot:  shared.NewBaseAggregateRoot(),
		OrderNumber:        GenerateOrderNumber(),
		Status:             OrderStatusPending,
		CustomerEmail:      customer.Email,
		CustomerName:       customer.Name,
		CustomerPhone:      customer.Phone,
		ShippingAddress:    shipping.Address,
		ShippingCity:       shipping.City,
		ShippingPostalCode: shipping.PostalCode,
		ShippingCountry:    shipping.Country,
		Subtotal:           decimal.Zero,
		ShippingCost:       decimal.Zero,
		Tax:                decimal.Zero,
		Total:              decimal.Zero,
		PaymentMethod:      "stripe",
		CustomerNotes:      customerNotes,
	}, nil
}

// AddItem appends a line item to the order
func (o *Order) AddItem(item *OrderItem) {
	item.OrderID = o.ID
	o.Items = append(o.Items, *item)
}

// CalculateTotals recomputes subtotal, shipping, tax and total from the items
func (o *Order) CalculateTotals() error {
	if len(o.Items) == 0 {
		return shared.ErrEmptyOrder
	}

	subtotal := valueobject.ZeroCHF()
	for i := range o.Items {
		subtotal = subtotal.MustAdd(o.Items[i].LineTotal())
	}
	shipping := ShippingCostFor(o.ShippingCountry)
	tax := TaxOn(subtotal)

	o.Subtotal = subtotal.Amount()
	o.ShippingCost = shipping.Amount()
	o.Tax = tax.Amount()
	o.Total = subtotal.MustAdd(shipping).MustAdd(tax).Amount()
	o.UpdatedAt = time.Now()

	return nil
}

// TransitionTo moves the order to the target status, enforcing the machine.
// Transitioning to paid stamps the payment flag, to shipped the shipping flag.
func (o *Order) TransitionTo(target OrderStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown order status")
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION",
			"Cannot transition order from "+o.Status.String()+" to "+target.String())
	}

	now := time.Now()
	switch target {
	case OrderStatusPaid:
		o.IsPaid = true
		o.PaidAt = &now
	case OrderStatusShipped:
		o.IsShipped = true
		o.ShippedAt = &now
	}

	o.Status = target
	o.UpdatedAt = now
	o.IncrementVersion()

	return nil
}

// SetTrackingNumber attaches a carrier tracking number
func (o *Order) SetTrackingNumber(trackingNumber string) {
	o.TrackingNumber = trackingNumber
	o.UpdatedAt = time.Now()
}

// SetAdminNotes attaches internal notes
func (o *Order) SetAdminNotes(notes string) {
	o.AdminNotes = notes
	o.UpdatedAt = time.Now()
}

// BelongsTo returns true if the order was placed with the given email
func (o *Order) BelongsTo(email string) bool {
	return email != "" && o.CustomerEmail == email
}

// GetTotalMoney returns the total as a Money value object
func (o *Order) GetTotalMoney() valueobject.Money {
	return valueobject.NewMoneyCHF(o.Total)
}
