package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/banner-admin-api/internal/dto"
	"github.com/noah-isme/banner-admin-api/internal/middleware"
	"github.com/noah-isme/banner-admin-api/internal/models"
	appErrors "github.com/noah-isme/banner-admin-api/pkg/errors"
)

type announcementServiceMock struct {
	detail     *models.AnnouncementDetail
	listResp   []models.AnnouncementDetail
	getErr     error
	deleteErr  error
	deletedIDs []string
}

func (m *announcementServiceMock) Create(ctx context.Context, shopID string, req dto.NewAnnouncement) (*models.AnnouncementDetail, error) {
	return m.detail, nil
}

func (m *announcementServiceMock) Get(ctx context.Context, shopID, id string) (*models.AnnouncementDetail, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.detail, nil
}

func (m *announcementServiceMock) List(ctx context.Context, shopID string) ([]models.AnnouncementDetail, error) {
	return m.listResp, nil
}

func (m *announcementServiceMock) Update(ctx context.Context, shopID, id string, upd dto.AnnouncementUpdate) (*models.AnnouncementDetail, error) {
	return m.detail, nil
}

func (m *announcementServiceMock) SetActive(ctx context.Context, shopID, id string, isActive bool) (*models.AnnouncementDetail, error) {
	return m.detail, nil
}

func (m *announcementServiceMock) Delete(ctx context.Context, shopID, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedIDs = append(m.deletedIDs, id)
	return nil
}

func (m *announcementServiceMock) ValidateEditor(payload dto.BannerFormPayload) (*dto.BannerConfig, error) {
	return &dto.BannerConfig{}, nil
}

func (m *announcementServiceMock) PublishEditor(ctx context.Context, shopID string, payload dto.BannerFormPayload) (*models.AnnouncementDetail, error) {
	return m.detail, nil
}

func newTestContext(t *testing.T, method, target string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(method, target, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func withShop(c *gin.Context) {
	c.Set(middleware.ContextShopKey, &models.ShopClaims{ShopID: "shop-1"})
}

func TestAnnouncementHandlerGetMissingSession(t *testing.T) {
	handler := NewAnnouncementHandler(&announcementServiceMock{})
	c, w := newTestContext(t, http.MethodGet, "/announcements/a1", nil)
	c.Params = gin.Params{{Key: "id", Value: "a1"}}

	handler.Get(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAnnouncementHandlerGet(t *testing.T) {
	handler := NewAnnouncementHandler(&announcementServiceMock{
		detail: &models.AnnouncementDetail{Announcement: models.Announcement{ID: "a1", ShopID: "shop-1"}},
	})
	c, w := newTestContext(t, http.MethodGet, "/announcements/a1", nil)
	c.Params = gin.Params{{Key: "id", Value: "a1"}}
	withShop(c)

	handler.Get(c)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data models.AnnouncementDetail `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "a1", envelope.Data.ID)
}

func TestAnnouncementHandlerGetNotFound(t *testing.T) {
	handler := NewAnnouncementHandler(&announcementServiceMock{
		getErr: appErrors.Clone(appErrors.ErrNotFound, "announcement not found"),
	})
	c, w := newTestContext(t, http.MethodGet, "/announcements/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}
	withShop(c)

	handler.Get(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAnnouncementHandlerCreateInvalidBody(t *testing.T) {
	handler := NewAnnouncementHandler(&announcementServiceMock{})
	c, w := newTestContext(t, http.MethodPost, "/announcements", []byte(`not json`))
	withShop(c)

	handler.Create(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnnouncementHandlerDelete(t *testing.T) {
	mock := &announcementServiceMock{}
	handler := NewAnnouncementHandler(mock)
	c, w := newTestContext(t, http.MethodDelete, "/announcements/a1", nil)
	c.Params = gin.Params{{Key: "id", Value: "a1"}}
	withShop(c)

	handler.Delete(c)
	c.Writer.WriteHeaderNow()
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, []string{"a1"}, mock.deletedIDs)
}

func TestAnnouncementHandlerSetActive(t *testing.T) {
	handler := NewAnnouncementHandler(&announcementServiceMock{
		detail: &models.AnnouncementDetail{Announcement: models.Announcement{ID: "a1", IsActive: false}},
	})
	body, _ := json.Marshal(dto.SetActiveRequest{IsActive: false})
	c, w := newTestContext(t, http.MethodPatch, "/announcements/a1/status", body)
	c.Params = gin.Params{{Key: "id", Value: "a1"}}
	withShop(c)

	handler.SetActive(c)
	assert.Equal(t, http.StatusOK, w.Code)
}
