package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/banner-admin-api/internal/dto"
	"github.com/noah-isme/banner-admin-api/internal/models"
	appErrors "github.com/noah-isme/banner-admin-api/pkg/errors"
	"github.com/noah-isme/banner-admin-api/pkg/response"
)

type announcementService interface {
	Create(ctx context.Context, shopID string, req dto.NewAnnouncement) (*models.AnnouncementDetail, error)
	Get(ctx context.Context, shopID, id string) (*models.AnnouncementDetail, error)
	List(ctx context.Context, shopID string) ([]models.AnnouncementDetail, error)
	Update(ctx context.Context, shopID, id string, upd dto.AnnouncementUpdate) (*models.AnnouncementDetail, error)
	SetActive(ctx context.Context, shopID, id string, isActive bool) (*models.AnnouncementDetail, error)
	Delete(ctx context.Context, shopID, id string) error
	ValidateEditor(payload dto.BannerFormPayload) (*dto.BannerConfig, error)
	PublishEditor(ctx context.Context, shopID string, payload dto.BannerFormPayload) (*models.AnnouncementDetail, error)
}

// AnnouncementHandler exposes the admin announcement endpoints.
type AnnouncementHandler struct {
	service announcementService
}

// NewAnnouncementHandler builds a new handler.
func NewAnnouncementHandler(service announcementService) *AnnouncementHandler {
	return &AnnouncementHandler{service: service}
}

// Create godoc
// @Summary Create an announcement
// @Tags Announcements
// @Accept json
// @Produce json
// @Param payload body dto.NewAnnouncement true "Announcement payload"
// @Success 201 {object} response.Envelope
// @Router /announcements [post]
func (h *AnnouncementHandler) Create(c *gin.Context) {
	shop := shopFromContext(c)
	if shop == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var req dto.NewAnnouncement
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid announcement payload"))
		return
	}
	detail, err := h.service.Create(c.Request.Context(), shop.ShopID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, detail)
}

// List godoc
// @Summary List the shop's announcements
// @Tags Announcements
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /announcements [get]
func (h *AnnouncementHandler) List(c *gin.Context) {
	shop := shopFromContext(c)
	if shop == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	details, err := h.service.List(c.Request.Context(), shop.ShopID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, details)
}

// Get godoc
// @Summary Get an announcement by id
// @Tags Announcements
// @Produce json
// @Param id path string true "Announcement id"
// @Success 200 {object} response.Envelope
// @Router /announcements/{id} [get]
func (h *AnnouncementHandler) Get(c *gin.Context) {
	shop := shopFromContext(c)
	if shop == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	detail, err := h.service.Get(c.Request.Context(), shop.ShopID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail)
}

// Update godoc
// @Summary Partially update an announcement
// @Tags Announcements
// @Accept json
// @Produce json
// @Param id path string true "Announcement id"
// @Param payload body dto.AnnouncementUpdate true "Partial announcement payload"
// @Success 200 {object} response.Envelope
// @Router /announcements/{id} [patch]
func (h *AnnouncementHandler) Update(c *gin.Context) {
	shop := shopFromContext(c)
	if shop == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var req dto.AnnouncementUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid announcement payload"))
		return
	}
	detail, err := h.service.Update(c.Request.Context(), shop.ShopID, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail)
}

// SetActive godoc
// @Summary Flip the active flag
// @Tags Announcements
// @Accept json
// @Produce json
// @Param id path string true "Announcement id"
// @Param payload body dto.SetActiveRequest true "Status payload"
// @Success 200 {object} response.Envelope
// @Router /announcements/{id}/status [patch]
func (h *AnnouncementHandler) SetActive(c *gin.Context) {
	shop := shopFromContext(c)
	if shop == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var req dto.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid status payload"))
		return
	}
	detail, err := h.service.SetActive(c.Request.Context(), shop.ShopID, c.Param("id"), req.IsActive)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail)
}

// Delete godoc
// @Summary Delete an announcement
// @Tags Announcements
// @Param id path string true "Announcement id"
// @Success 204
// @Router /announcements/{id} [delete]
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	shop := shopFromContext(c)
	if shop == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	if err := h.service.Delete(c.Request.Context(), shop.ShopID, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ValidateEditor godoc
// @Summary Validate a banner editor payload
// @Tags Announcements
// @Accept json
// @Produce json
// @Param payload body dto.BannerFormPayload true "Editor payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /announcements/validate [post]
func (h *AnnouncementHandler) ValidateEditor(c *gin.Context) {
	shop := shopFromContext(c)
	if shop == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var payload dto.BannerFormPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid editor payload"))
		return
	}
	config, err := h.service.ValidateEditor(payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, config)
}

// PublishEditor godoc
// @Summary Validate and persist a banner editor payload
// @Tags Announcements
// @Accept json
// @Produce json
// @Param payload body dto.BannerFormPayload true "Editor payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /announcements/editor [post]
func (h *AnnouncementHandler) PublishEditor(c *gin.Context) {
	shop := shopFromContext(c)
	if shop == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var payload dto.BannerFormPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid editor payload"))
		return
	}
	detail, err := h.service.PublishEditor(c.Request.Context(), shop.ShopID, payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, detail)
}
