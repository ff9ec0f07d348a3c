package handler

import (
	"errors"
	"strings"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	errTableNotFound    = errors.New("table not found")
	errMenuItemNotFound = errors.New("menu item not found")
)

func newOrderCode() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}

// PlaceOrder creates an order with its line items and computed total inside a
// single transaction. A failure at any step rolls back everything; no partial
// order is ever visible.
func PlaceOrder(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.PlaceOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_VALIDATION, errors.New("missing input"))
	}

	db := database.DB
	var orderId uint

	err := db.Transaction(func(tx *gorm.DB) error {
		var table model.Table
		if err := tx.First(&table, input.TableID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errTableNotFound
			}
			return err
		}

		order := model.Order{
			PublicCode: newOrderCode(),
			TableID:    input.TableID,
			Status:     constants.ORDER_PENDING,
			PlacedAt:   time.Now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// The caller's price is the snapshot; later menu edits must not
		// change what this order charges.
		totalAmount := 0.0
		for _, item := range input.Items {
			var menuItem model.MenuItem
			if err := tx.First(&menuItem, item.ID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errMenuItemNotFound
				}
				return err
			}

			totalAmount += item.Price * float64(item.Quantity)

			orderItem := model.OrderItem{
				OrderID:       order.ID,
				MenuItemID:    item.ID,
				Quantity:      item.Quantity,
				PriceSnapshot: item.Price,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&model.Order{}).Where("id = ?", order.ID).Update("total_amount", totalAmount).Error; err != nil {
			return err
		}

		orderId = order.ID
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, errTableNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TABLE_NOT_FOUND, err)
		case errors.Is(err, errMenuItemNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MENU_ITEM_NOT_FOUND, err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_TRANSACTION_FAILED, err)
		}
	}

	orderWithItems, err := getOrderWithItems(db, orderId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	live.Publish(constants.EVENT_NEW_ORDER, orderWithItems)
	helper.PublishDashboard(live, db)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Order placed",
		"orderId": orderId,
		"order":   orderWithItems,
	})
}

// UpdateOrderStatus writes the new status in one UPDATE. A transition to
// completed (or its served alias) stamps completed_at in the same statement;
// any other status leaves an existing completed_at untouched.
func UpdateOrderStatus(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_VALIDATION, errors.New("missing order id"))
	}
	status, ok := c.Locals("status").(string)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_VALIDATION, errors.New("missing status"))
	}

	db := database.DB

	updates := map[string]interface{}{"status": status}
	if status == constants.ORDER_COMPLETED || status == constants.ORDER_SERVED {
		updates["completed_at"] = time.Now()
	}

	result := db.Model(&model.Order{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, errors.New("unknown order id"))
	}

	var order model.Order
	if err := db.First(&order, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	updated := model.UpdatedOrder{
		ID:          order.ID,
		TableID:     order.TableID,
		Status:      order.Status,
		CompletedAt: order.CompletedAt,
	}

	live.Publish(constants.EVENT_ORDER_UPDATED, updated)
	helper.PublishDashboard(live, db)

	return c.JSON(updated)
}

// GetOrders returns all orders, optionally filtered to a comma-separated set
// of statuses, newest placement first, each joined with its line items.
func GetOrders(c *fiber.Ctx) error {
	db := database.DB

	query := db.Preload("Items").Preload("Items.MenuItem").Preload("Table")
	if statusFilter := c.Query("status"); statusFilter != "" {
		statuses := strings.Split(statusFilter, ",")
		for i := range statuses {
			statuses[i] = strings.ToLower(strings.TrimSpace(statuses[i]))
		}
		query = query.Where("status IN ?", statuses)
	}

	var orders []model.Order
	if err := query.Order("placed_at DESC").Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := make([]model.OrderWithItems, 0, len(orders))
	for _, order := range orders {
		response = append(response, mapOrderWithItems(order))
	}

	return c.JSON(response)
}

// GetLastHourOrders lists (table, item, quantity, time) rows for one table's
// placements in the trailing hour, newest first.
func GetLastHourOrders(c *fiber.Ctx) error {
	tableId, ok := c.Locals("tableId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_VALIDATION, errors.New("missing table id"))
	}

	db := database.DB
	since := time.Now().Add(-1 * time.Hour)

	rows := []model.RecentOrderRow{}
	err := db.Model(&model.Order{}).
		Select("tables.table_number AS table_number, menu_items.name AS item_name, order_items.quantity AS quantity, orders.placed_at AS order_time").
		Joins("JOIN tables ON tables.id = orders.table_id").
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Joins("JOIN menu_items ON menu_items.id = order_items.menu_item_id").
		Where("orders.table_id = ? AND orders.placed_at >= ?", tableId, since).
		Order("orders.placed_at DESC").
		Scan(&rows).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.JSON(rows)
}

func getOrderWithItems(db *gorm.DB, orderId uint) (*model.OrderWithItems, error) {
	var order model.Order
	if err := db.
		Preload("Items").
		Preload("Items.MenuItem").
		Preload("Table").
		First(&order, orderId).Error; err != nil {
		return nil, err
	}
	result := mapOrderWithItems(order)
	return &result, nil
}

func mapOrderWithItems(order model.Order) model.OrderWithItems {
	items := make([]model.OrderItemDetail, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, model.OrderItemDetail{
			ID:            item.ID,
			MenuItemID:    item.MenuItemID,
			Quantity:      item.Quantity,
			PriceSnapshot: item.PriceSnapshot,
			Name:          item.MenuItem.Name,
			Description:   item.MenuItem.Description,
			Category:      item.MenuItem.Category,
		})
	}
	return model.OrderWithItems{
		ID:          order.ID,
		PublicCode:  order.PublicCode,
		TableID:     order.TableID,
		TableNumber: order.Table.TableNumber,
		Status:      order.Status,
		PlacedAt:    order.PlacedAt,
		CompletedAt: order.CompletedAt,
		TotalAmount: order.TotalAmount,
		Items:       items,
	}
}
