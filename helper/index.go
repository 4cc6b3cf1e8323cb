package helper

import (
	"errors"
	"fmt"
	"time"

	"essence_store/config"
	"essence_store/database"
	"essence_store/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetAdminByEmail(e string) (*model.Admin, error) {
	db := database.DB
	var admin model.Admin
	if err := db.Where(&model.Admin{Email: e}).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

func jwtSecret() []byte {
	return []byte(config.Config("JWT_SECRET"))
}

// GenerateAdminToken issues a 24h HS256 session token for the back office.
func GenerateAdminToken(claim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["adminId"] = claim.AdminId
	claims["email"] = claim.Email
	claims["name"] = claim.Name
	claims["jti"] = uuid.NewString()
	claims["exp"] = time.Now().Add(24 * time.Hour).Unix()

	return token.SignedString(jwtSecret())
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})
}

// GetAdminFromToken resolves the authenticated admin set by the middleware.
func GetAdminFromToken(c *fiber.Ctx) (model.TokenClaim, error) {
	token, ok := c.Locals("admin").(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, errors.New("no token in context")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, errors.New("unexpected claims type")
	}

	claim := model.TokenClaim{}
	if id, ok := claims["adminId"].(float64); ok {
		claim.AdminId = uint(id)
	}
	if email, ok := claims["email"].(string); ok {
		claim.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		claim.Name = name
	}
	if claim.AdminId == 0 {
		return model.TokenClaim{}, errors.New("token has no admin id")
	}
	return claim, nil
}
