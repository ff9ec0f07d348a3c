package model

import "time"

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type PendingOrderItem struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type PendingOrder struct {
	ID          uint               `json:"id"`
	Status      string             `json:"status"`
	PlacedAt    time.Time          `json:"placed_at"`
	TotalAmount float64            `json:"total_amount"`
	TableNumber string             `json:"table_number"`
	Items       []PendingOrderItem `json:"items"`
}

// DashboardSnapshot is the aggregate view recomputed from the store on every
// request and broadcast tick. Subscribers treat it as a full replace.
type DashboardSnapshot struct {
	TotalSales            float64        `json:"total_sales"`
	AvgFulfillmentMinutes string         `json:"avg_fulfillment_minutes"`
	PendingOrders         []PendingOrder `json:"pending_orders"`
	OrdersByStatus        []StatusCount  `json:"orders_by_status"`
}
