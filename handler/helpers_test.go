package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/model"
	"restaurant_manager/validate"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type recordedEvent struct {
	name string
	data any
}

type recorderBroadcaster struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (r *recorderBroadcaster) Publish(event string, data any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, recordedEvent{name: event, data: data})
}

func (r *recorderBroadcaster) eventNames() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.events))
	for _, e := range r.events {
		names = append(names, e.name)
	}
	return names
}

func (r *recorderBroadcaster) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

type fixture struct {
	tables    []model.Table
	menuItems []model.MenuItem
}

// newTestApp wires the order routes against an isolated in-memory store and
// a recording broadcaster.
func newTestApp(t *testing.T) (*fiber.App, *recorderBroadcaster, fixture) {
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

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	database.DB = db

	rec := &recorderBroadcaster{}
	prev := live
	live = rec
	t.Cleanup(func() { live = prev })

	fx := fixture{
		tables: []model.Table{
			{TableNumber: "1", Status: constants.TABLE_AVAILABLE},
			{TableNumber: "2", Status: constants.TABLE_AVAILABLE},
			{TableNumber: "3", Status: constants.TABLE_AVAILABLE},
		},
		menuItems: []model.MenuItem{
			{Name: "Margherita Pizza", Slug: "margherita-pizza", Price: 10.99, Category: "Mains", IsAvailable: true},
			{Name: "Caesar Salad", Slug: "caesar-salad", Price: 7.50, Category: "Starters", IsAvailable: true},
		},
	}
	if err := db.Create(&fx.tables).Error; err != nil {
		t.Fatalf("seed tables: %v", err)
	}
	if err := db.Create(&fx.menuItems).Error; err != nil {
		t.Fatalf("seed menu: %v", err)
	}

	app := fiber.New()
	app.Get("/orders", GetOrders)
	app.Post("/orders", validate.PlaceOrder(), PlaceOrder)
	app.Post("/orders/last-hour-orders", validate.LastHourOrders(), GetLastHourOrders)
	app.Put("/orders/:id/status", validate.GetById("id"), validate.UpdateOrderStatus(), UpdateOrderStatus)
	app.Get("/dashboard/metrics", GetDashboardMetrics)

	return app, rec, fx
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
		reader = buf
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, target any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
