package handler

import (
	"encoding/base64"
	"errors"
	"fmt"

	"restaurant_manager/config"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func CreateTable(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateTableInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_VALIDATION, errors.New("missing input"))
	}

	table := model.Table{
		TableNumber: input.TableNumber,
		Status:      input.Status,
	}
	if table.Status == "" {
		table.Status = constants.TABLE_AVAILABLE
	}

	if err := database.DB.Create(&table).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Status(fiber.StatusCreated).JSON(table)
}

func GetTables(c *fiber.Ctx) error {
	var tables []model.Table
	if err := database.DB.Order("id").Find(&tables).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return c.JSON(tables)
}

func GetTable(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	var table model.Table
	if err := database.DB.First(&table, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TABLE_NOT_FOUND, err)
	}
	return c.JSON(table)
}

func UpdateTable(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)
	input, ok := c.Locals("input").(model.UpdateTableInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_VALIDATION, errors.New("missing input"))
	}

	var table model.Table
	if err := database.DB.First(&table, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TABLE_NOT_FOUND, err)
	}

	copier.Copy(&table, &input)

	if err := database.DB.Save(&table).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return c.JSON(table)
}

func DeleteTable(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)
	db := database.DB

	var table model.Table
	if err := db.First(&table, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TABLE_NOT_FOUND, err)
	}

	// Historical orders reference the table; removing it would orphan them.
	var orderCount int64
	db.Model(&model.Order{}).Where("table_id = ?", id).Count(&orderCount)
	if orderCount > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.TABLE_IN_USE, fmt.Errorf("table has %d orders", orderCount))
	}

	if err := db.Delete(&table).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.JSON(fiber.Map{"message": "Table deleted", "table": table})
}

// GetTableQR renders the guest ordering link for one table as a QR code.
func GetTableQR(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	var table model.Table
	if err := database.DB.First(&table, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TABLE_NOT_FOUND, err)
	}

	baseUrl := config.Config("GUEST_ORDER_URL")
	if baseUrl == "" {
		baseUrl = "http://localhost:3000/order"
	}
	content := fmt.Sprintf("%s?table=%d", baseUrl, table.ID)

	qrBytes, err := utils.GenerateQRCode(content, 400)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.JSON(fiber.Map{
		"table_number": table.TableNumber,
		"qr_code":      "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes),
	})
}
