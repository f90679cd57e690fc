package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/banner-admin-api/internal/middleware"
	"github.com/noah-isme/banner-admin-api/internal/models"
)

func shopFromContext(c *gin.Context) *models.ShopClaims {
	value, exists := c.Get(middleware.ContextShopKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.ShopClaims)
	if !ok {
		return nil
	}
	return claims
}
