package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/banner-admin-api/internal/middleware"
	"github.com/noah-isme/banner-admin-api/internal/models"
	appErrors "github.com/noah-isme/banner-admin-api/pkg/errors"
	"github.com/noah-isme/banner-admin-api/pkg/response"
)

type storefrontService interface {
	Resolve(ctx context.Context, shopID, currentPath string) ([]models.AnnouncementDetail, bool, error)
}

// StorefrontHandler serves the public endpoint the storefront widget polls
// for currently visible announcements.
type StorefrontHandler struct {
	service storefrontService
}

// NewStorefrontHandler builds a new handler.
func NewStorefrontHandler(service storefrontService) *StorefrontHandler {
	return &StorefrontHandler{service: service}
}

// Resolve godoc
// @Summary Resolve active announcements for a storefront page
// @Tags Storefront
// @Produce json
// @Param shop query string true "Shop identifier"
// @Param path query string false "Current page path; when omitted, no pattern filtering is applied"
// @Success 200 {object} response.Envelope
// @Router /storefront/announcements [get]
func (h *StorefrontHandler) Resolve(c *gin.Context) {
	shop := c.Query("shop")
	if shop == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "shop query parameter is required"))
		return
	}

	// An omitted path means "every page": the service skips the pattern
	// filter entirely for an empty path.
	path := c.Query("path")

	details, cacheHit, err := h.service.Resolve(c.Request.Context(), shop, path)
	if err != nil {
		response.Error(c, err)
		return
	}

	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, details, middleware.ExtractMeta(c))
}
