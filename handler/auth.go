package handler

import (
	"errors"

	"restaurant_manager/constants"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func setAuthCookies(c *fiber.Ctx, tokens model.TokenData) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    tokens.AccessToken,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    tokens.RefreshToken,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
	})
}

func issueTokens(claim model.TokenClaim) (model.TokenData, error) {
	accessToken, err := helper.GenerateAccessToken(claim)
	if err != nil {
		return model.TokenData{}, err
	}
	refreshToken, err := helper.GenerateRefreshToken(claim)
	if err != nil {
		return model.TokenData{}, err
	}
	return model.TokenData{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Login checks the email/password pair against the stored bcrypt hash and
// hands back signed session tokens.
func Login(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.LoginInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, errors.New("missing input"))
	}

	admin, err := helper.GetAdminByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if admin == nil || !helper.CheckPasswordHash(input.Password, admin.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS, errors.New("invalid credentials"))
	}

	tokens, err := issueTokens(model.TokenClaim{AdminId: admin.ID, Email: admin.Email})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	setAuthCookies(c, tokens)

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"admin": fiber.Map{
			"id":    admin.ID,
			"name":  admin.Name,
			"email": admin.Email,
			"role":  admin.Role,
		},
		"token": tokens,
	})
}

func RefreshToken(c *fiber.Ctx) error {
	refreshToken := c.Cookies("refresh_token")
	if refreshToken == "" {
		type refreshRequest struct {
			RefreshToken string `json:"refreshToken"`
		}
		var req refreshRequest
		if err := c.BodyParser(&req); err == nil {
			refreshToken = req.RefreshToken
		}
	}
	if refreshToken == "" {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing token", errors.New("no refresh token"))
	}

	token, err := helper.ParseToken(refreshToken)
	if err != nil || !token.Valid {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", errors.New("malformed claims"))
	}
	adminId, ok := claims["adminId"].(float64)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", errors.New("malformed claims"))
	}
	email, _ := claims["email"].(string)

	tokens, err := issueTokens(model.TokenClaim{AdminId: uint(adminId), Email: email})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	setAuthCookies(c, tokens)
	return utils.SuccessResponse(c, fiber.StatusOK, tokens)
}

func Me(c *fiber.Ctx) error {
	_, admin, err := helper.GetInfoAdminFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"id":    admin.ID,
		"name":  admin.Name,
		"email": admin.Email,
		"role":  admin.Role,
	})
}
