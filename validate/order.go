package validate

import (
	"errors"
	"strings"

	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// PlaceOrder rejects malformed placements before any store access.
func PlaceOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.PlaceOrderInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_VALIDATION, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_VALIDATION, err)
		}

		c.Locals("input", input)
		return c.Next()
	}
}

// UpdateOrderStatus normalizes the requested status and rejects values
// outside the closed set.
func UpdateOrderStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateOrderStatusInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_VALIDATION, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_VALIDATION, err)
		}

		status := strings.ToLower(strings.TrimSpace(input.Status))
		known := false
		for _, s := range constants.OrderStatuses {
			if s == status {
				known = true
				break
			}
		}
		if !known {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_ORDER_STATUS, errors.New("unknown status: "+input.Status))
		}

		c.Locals("status", status)
		return c.Next()
	}
}

func LastHourOrders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.LastHourOrdersInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_VALIDATION, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_VALIDATION, err)
		}

		c.Locals("tableId", input.TableID)
		return c.Next()
	}
}
