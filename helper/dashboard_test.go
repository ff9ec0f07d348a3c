package helper

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func openTestStore(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&model.Table{}, &model.MenuItem{}, &model.Order{}, &model.OrderItem{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedDashboardFixture(t *testing.T, db *gorm.DB) {
	t.Helper()

	tables := []model.Table{
		{TableNumber: "1", Status: constants.TABLE_AVAILABLE},
		{TableNumber: "2", Status: constants.TABLE_AVAILABLE},
	}
	if err := db.Create(&tables).Error; err != nil {
		t.Fatalf("seed tables: %v", err)
	}

	item := model.MenuItem{Name: "Pizza", Slug: "pizza", Price: 10.0, Category: "Mains", IsAvailable: true}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed menu: %v", err)
	}

	now := time.Now()
	orders := []model.Order{
		{
			PublicCode: "ORD-1", TableID: tables[0].ID, Status: constants.ORDER_PENDING,
			PlacedAt: now.Add(-30 * time.Minute), TotalAmount: 20,
			Items: []model.OrderItem{{MenuItemID: item.ID, Quantity: 2, PriceSnapshot: 10}},
		},
		{
			PublicCode: "ORD-2", TableID: tables[1].ID, Status: constants.ORDER_INPROGRESS,
			PlacedAt: now.Add(-10 * time.Minute), TotalAmount: 10,
			Items: []model.OrderItem{{MenuItemID: item.ID, Quantity: 1, PriceSnapshot: 10}},
		},
		{
			PublicCode: "ORD-3", TableID: tables[0].ID, Status: constants.ORDER_COMPLETED,
			PlacedAt:    now.Add(-60 * time.Minute),
			CompletedAt: ptrTime(now.Add(-40 * time.Minute)), // 20 minutes
			TotalAmount: 15.5,
			Items:       []model.OrderItem{{MenuItemID: item.ID, Quantity: 1, PriceSnapshot: 15.5}},
		},
		{
			PublicCode: "ORD-4", TableID: tables[1].ID, Status: constants.ORDER_SERVED,
			PlacedAt:    now.Add(-90 * time.Minute),
			CompletedAt: ptrTime(now.Add(-80 * time.Minute)), // 10 minutes
			TotalAmount: 4.5,
			Items:       []model.OrderItem{{MenuItemID: item.ID, Quantity: 1, PriceSnapshot: 4.5}},
		},
	}
	if err := db.Create(&orders).Error; err != nil {
		t.Fatalf("seed orders: %v", err)
	}
}

func ptrTime(t time.Time) *time.Time { return &t }

func TestComputeDashboardSnapshot(t *testing.T) {
	t.Parallel()

	db := openTestStore(t)
	seedDashboardFixture(t, db)

	snapshot, err := ComputeDashboardSnapshot(db)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}

	// completed + served both count toward sales.
	if snapshot.TotalSales != 20.0 {
		t.Fatalf("total_sales = %v, want 20", snapshot.TotalSales)
	}

	// (20 + 10) / 2 = 15 minutes, formatted with two decimals.
	if snapshot.AvgFulfillmentMinutes != "15.00" {
		t.Fatalf("avg_fulfillment_minutes = %q, want 15.00", snapshot.AvgFulfillmentMinutes)
	}

	var total int64
	db.Model(&model.Order{}).Count(&total)
	var sum int64
	for _, sc := range snapshot.OrdersByStatus {
		sum += sc.Count
	}
	if sum != total {
		t.Fatalf("orders_by_status sums to %d, want %d", sum, total)
	}

	// pending and in-progress both appear, longest-waiting first.
	if len(snapshot.PendingOrders) != 2 {
		t.Fatalf("pending_orders len = %d, want 2", len(snapshot.PendingOrders))
	}
	if !snapshot.PendingOrders[0].PlacedAt.Before(snapshot.PendingOrders[1].PlacedAt) {
		t.Fatal("pending_orders not sorted oldest first")
	}
	if snapshot.PendingOrders[0].TableNumber != "1" {
		t.Fatalf("table_number = %q, want 1", snapshot.PendingOrders[0].TableNumber)
	}
	if len(snapshot.PendingOrders[0].Items) != 1 || snapshot.PendingOrders[0].Items[0].Name != "Pizza" {
		t.Fatalf("unexpected pending order items: %+v", snapshot.PendingOrders[0].Items)
	}
}

func TestComputeDashboardSnapshotEmptyStore(t *testing.T) {
	t.Parallel()

	db := openTestStore(t)

	snapshot, err := ComputeDashboardSnapshot(db)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}

	if snapshot.TotalSales != 0 {
		t.Fatalf("total_sales = %v, want 0", snapshot.TotalSales)
	}
	if snapshot.AvgFulfillmentMinutes != "0.00" {
		t.Fatalf("avg_fulfillment_minutes = %q, want 0.00", snapshot.AvgFulfillmentMinutes)
	}
	if len(snapshot.PendingOrders) != 0 || len(snapshot.OrdersByStatus) != 0 {
		t.Fatalf("expected empty aggregates, got %+v", snapshot)
	}
}

func TestComputeDashboardSnapshotIdempotent(t *testing.T) {
	t.Parallel()

	db := openTestStore(t)
	seedDashboardFixture(t, db)

	first, err := ComputeDashboardSnapshot(db)
	if err != nil {
		t.Fatalf("first compute: %v", err)
	}
	second, err := ComputeDashboardSnapshot(db)
	if err != nil {
		t.Fatalf("second compute: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatal("snapshots differ with no intervening mutation")
	}
}
