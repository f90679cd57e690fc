package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/noah-isme/banner-admin-api/internal/models"
	appErrors "github.com/noah-isme/banner-admin-api/pkg/errors"
	"github.com/noah-isme/banner-admin-api/pkg/response"
)

// ContextShopKey is the gin context key storing the shop session claims.
const ContextShopKey = "currentShop"

// ShopSession protects admin routes by requiring a valid shop session token
// minted by the hosting platform.
func ShopSession(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "invalid authorization header"))
			c.Abort()
			return
		}

		claims, err := parseShopToken(parts[1], secret)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(ContextShopKey, claims)
		c.Next()
	}
}

func parseShopToken(tokenString, secret string) (*models.ShopClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.ShopClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid session token")
	}

	claims, ok := token.Claims.(*models.ShopClaims)
	if !ok || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid session claims")
	}
	if claims.ShopID == "" {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "session missing shop")
	}

	return claims, nil
}
