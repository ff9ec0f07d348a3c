package helper

import (
	"errors"
	"fmt"
	"time"

	"restaurant_manager/config"
	"restaurant_manager/database"
	"restaurant_manager/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// JwtSecret is resolved per call so the key is picked up after the env file
// is loaded.
func JwtSecret() []byte {
	return []byte(config.Config("JWT_SECRET"))
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetAdminByEmail(e string) (*model.AdminUser, error) {
	db := database.DB
	var admin model.AdminUser
	if err := db.Where(&model.AdminUser{Email: e}).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["adminId"] = tokenClaim.AdminId
	claims["email"] = tokenClaim.Email
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	t, err := token.SignedString(JwtSecret())
	return t, err
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["adminId"] = tokenClaim.AdminId
	claims["email"] = tokenClaim.Email
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	t, err := token.SignedString(JwtSecret())
	return t, err
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret(), nil
	})

	return token, err
}

// GetInfoAdminFromToken resolves the authenticated admin from the parsed
// token stashed by middleware.Protected.
func GetInfoAdminFromToken(c *fiber.Ctx) (model.TokenClaim, *model.AdminUser, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, nil, errors.New("missing token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, nil, errors.New("malformed claims")
	}
	adminId, ok := claims["adminId"].(float64)
	if !ok {
		return model.TokenClaim{}, nil, errors.New("malformed claims")
	}
	email, _ := claims["email"].(string)

	var admin model.AdminUser
	if err := database.DB.First(&admin, uint(adminId)).Error; err != nil {
		return model.TokenClaim{}, nil, err
	}

	return model.TokenClaim{AdminId: uint(adminId), Email: email}, &admin, nil
}
