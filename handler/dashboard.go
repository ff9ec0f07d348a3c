package handler

import (
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// GetDashboardMetrics recomputes the aggregate view from current store state.
func GetDashboardMetrics(c *fiber.Ctx) error {
	snapshot, err := helper.ComputeDashboardSnapshot(database.DB)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return c.JSON(snapshot)
}
