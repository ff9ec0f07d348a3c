package model

import "time"

type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	PublicCode  string      `gorm:"uniqueIndex;size:20" json:"public_code"`
	TableID     uint        `gorm:"not null" json:"table_id"`
	Table       Table       `json:"-"`
	Status      string      `gorm:"not null;default:pending" json:"status"` // pending, in-progress, completed, served
	PlacedAt    time.Time   `json:"placed_at"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`
	TotalAmount float64     `json:"total_amount"`
	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

// OrderItem is created only inside the order-placement transaction and is
// immutable afterward. PriceSnapshot freezes the line price at placement time.
type OrderItem struct {
	ID            uint     `gorm:"primaryKey" json:"id"`
	OrderID       uint     `gorm:"not null;index" json:"order_id"`
	MenuItemID    uint     `gorm:"not null" json:"menu_item_id"`
	MenuItem      MenuItem `json:"-"`
	Quantity      int      `gorm:"not null" json:"quantity"`
	PriceSnapshot float64  `gorm:"not null" json:"price_snapshot"`
}

type PlaceOrderItemInput struct {
	ID       uint    `json:"id" validate:"required"`
	Quantity int     `json:"quantity" validate:"required,gt=0"`
	Price    float64 `json:"price" validate:"required,gt=0"`
}

type PlaceOrderInput struct {
	TableID uint                  `json:"tableId" validate:"required"`
	Items   []PlaceOrderItemInput `json:"items" validate:"required,min=1,dive"`
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" validate:"required"`
}

type LastHourOrdersInput struct {
	TableID uint `json:"tableId" validate:"required"`
}

// OrderItemDetail is an order line joined with its menu item.
type OrderItemDetail struct {
	ID            uint    `json:"id"`
	MenuItemID    uint    `json:"menu_item_id"`
	Quantity      int     `json:"quantity"`
	PriceSnapshot float64 `json:"price_snapshot"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
}

// OrderWithItems is the full order payload returned by the orders API and
// carried by the new_order event.
type OrderWithItems struct {
	ID          uint              `json:"id"`
	PublicCode  string            `json:"public_code"`
	TableID     uint              `json:"table_id"`
	TableNumber string            `json:"table_number"`
	Status      string            `json:"status"`
	PlacedAt    time.Time         `json:"placed_at"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`
	TotalAmount float64           `json:"total_amount"`
	Items       []OrderItemDetail `json:"items"`
}

// UpdatedOrder mirrors the row returned after a status transition.
type UpdatedOrder struct {
	ID          uint       `json:"id"`
	TableID     uint       `json:"table_id"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completed_at"`
}

// RecentOrderRow is one line of the trailing-window activity feed.
type RecentOrderRow struct {
	TableNumber string    `json:"table_number"`
	ItemName    string    `json:"item_name"`
	Quantity    int       `json:"quantity"`
	OrderTime   time.Time `json:"order_time"`
}
