package handler

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func CreateMenuItem(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateMenuItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_VALIDATION, errors.New("missing input"))
	}

	item := model.MenuItem{IsAvailable: true}
	copier.Copy(&item, &input)
	item.Slug = helper.GenerateUniqueMenuItemSlug(database.DB, input.Name)

	if err := database.DB.Create(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func GetMenuItems(c *fiber.Ctx) error {
	var items []model.MenuItem
	if err := database.DB.Order("id").Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return c.JSON(items)
}

func GetMenuItem(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	var item model.MenuItem
	if err := database.DB.First(&item, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MENU_ITEM_NOT_FOUND, err)
	}
	return c.JSON(item)
}

func UpdateMenuItem(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)
	input, ok := c.Locals("input").(model.UpdateMenuItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_VALIDATION, errors.New("missing input"))
	}

	var item model.MenuItem
	if err := database.DB.First(&item, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MENU_ITEM_NOT_FOUND, err)
	}

	copier.Copy(&item, &input)
	if input.Name != nil {
		item.Slug = helper.GenerateUniqueMenuItemSlug(database.DB, *input.Name)
	}

	if err := database.DB.Save(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return c.JSON(item)
}

func DeleteMenuItem(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)
	db := database.DB

	var item model.MenuItem
	if err := db.First(&item, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MENU_ITEM_NOT_FOUND, err)
	}

	// Order lines snapshot the price but still reference the item row for
	// name/category joins; block deletion while history exists.
	var refCount int64
	db.Model(&model.OrderItem{}).Where("menu_item_id = ?", id).Count(&refCount)
	if refCount > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MENU_ITEM_IN_USE, fmt.Errorf("menu item referenced by %d order lines", refCount))
	}

	if err := db.Delete(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.JSON(fiber.Map{"message": "Menu item deleted", "item": item})
}

// GenerateUploadSignature signs direct-to-Cloudinary upload params for the
// admin frontend.
func GenerateUploadSignature(c *fiber.Ctx) error {
	type SigParams struct {
		Folder   string `json:"folder"`
		PublicID string `json:"public_id"`
	}

	var params SigParams
	if err := c.BodyParser(&params); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_VALIDATION, err)
	}

	timestamp := time.Now().Unix()

	values := url.Values{}
	if params.Folder != "" {
		values.Set("folder", params.Folder)
	}
	if params.PublicID != "" {
		values.Set("public_id", params.PublicID)
	}
	values.Set("timestamp", strconv.FormatInt(timestamp, 10))

	signature, err := api.SignParameters(values, os.Getenv("CLOUDINARY_API_SECRET"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"apiKey":    os.Getenv("CLOUDINARY_API_KEY"),
		"cloudName": os.Getenv("CLOUDINARY_CLOUD_NAME"),
	})
}

// UploadMenuItemImage uploads a photo server-side and stores its URL.
func UploadMenuItemImage(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	var item model.MenuItem
	if err := database.DB.First(&item, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MENU_ITEM_NOT_FOUND, err)
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_VALIDATION, err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	defer file.Close()

	cld := helper.InitCloudinary()
	resp, err := cld.Upload.Upload(c.Context(), file, uploader.UploadParams{
		Folder:   "menu-items",
		PublicID: item.Slug,
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Model(&item).Update("image_url", resp.SecureURL).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	item.ImageUrl = resp.SecureURL
	return c.JSON(item)
}
