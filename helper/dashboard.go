package helper

import (
	"log"
	"strconv"

	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/realtime"

	"gorm.io/gorm"
)

// ComputeDashboardSnapshot derives the live dashboard view from current store
// state. Nothing is cached; calling it twice without an intervening mutation
// yields identical output.
func ComputeDashboardSnapshot(db *gorm.DB) (model.DashboardSnapshot, error) {
	var snapshot model.DashboardSnapshot

	if err := db.Model(&model.Order{}).
		Where("status IN ?", constants.SalesStatuses).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&snapshot.TotalSales).Error; err != nil {
		return snapshot, err
	}

	// Fulfillment times are averaged in Go so the same path runs against
	// Postgres and the in-memory test store.
	var closed []model.Order
	if err := db.
		Where("status IN ? AND completed_at IS NOT NULL", constants.SalesStatuses).
		Find(&closed).Error; err != nil {
		return snapshot, err
	}
	avg := 0.0
	if len(closed) > 0 {
		total := 0.0
		for _, order := range closed {
			total += order.CompletedAt.Sub(order.PlacedAt).Minutes()
		}
		avg = total / float64(len(closed))
	}
	snapshot.AvgFulfillmentMinutes = strconv.FormatFloat(avg, 'f', 2, 64)

	snapshot.OrdersByStatus = []model.StatusCount{}
	if err := db.Model(&model.Order{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&snapshot.OrdersByStatus).Error; err != nil {
		return snapshot, err
	}

	// Kitchen priority: longest-waiting order first.
	var open []model.Order
	if err := db.
		Preload("Items").
		Preload("Items.MenuItem").
		Preload("Table").
		Where("status IN ?", []string{constants.ORDER_PENDING, constants.ORDER_INPROGRESS}).
		Order("placed_at ASC").
		Find(&open).Error; err != nil {
		return snapshot, err
	}

	snapshot.PendingOrders = make([]model.PendingOrder, 0, len(open))
	for _, order := range open {
		items := make([]model.PendingOrderItem, 0, len(order.Items))
		for _, item := range order.Items {
			items = append(items, model.PendingOrderItem{
				ID:       item.ID,
				Name:     item.MenuItem.Name,
				Quantity: item.Quantity,
				Price:    item.PriceSnapshot,
			})
		}
		snapshot.PendingOrders = append(snapshot.PendingOrders, model.PendingOrder{
			ID:          order.ID,
			Status:      order.Status,
			PlacedAt:    order.PlacedAt,
			TotalAmount: order.TotalAmount,
			TableNumber: order.Table.TableNumber,
			Items:       items,
		})
	}

	return snapshot, nil
}

// PublishDashboard recomputes the snapshot and pushes it to every subscriber.
// A failed computation skips this tick; the next mutation catches viewers up.
func PublishDashboard(b realtime.Broadcaster, db *gorm.DB) {
	snapshot, err := ComputeDashboardSnapshot(db)
	if err != nil {
		log.Printf("dashboard broadcast skipped: %v", err)
		return
	}
	b.Publish(constants.EVENT_DASHBOARD_UPDATE, snapshot)
}
