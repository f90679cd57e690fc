package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/banner-admin-api/internal/dto"
	"github.com/noah-isme/banner-admin-api/internal/models"
)

func TestAssembleDetailsNestsChildrenByForeignKey(t *testing.T) {
	headers := []models.Announcement{
		{ID: "a1", ShopID: "shop-1"},
		{ID: "a2", ShopID: "shop-1"},
	}
	texts := []models.AnnouncementText{
		{ID: "t1", AnnouncementID: "a1", TextMessage: "First"},
		{ID: "t2", AnnouncementID: "a1", TextMessage: "Second"},
		{ID: "t3", AnnouncementID: "a2", TextMessage: "Other banner"},
	}
	ctas := []models.CallToAction{
		{ID: "c1", AnnouncementTextID: "t1", Type: models.CTATypeLink},
		{ID: "c2", AnnouncementTextID: "t3", Type: models.CTATypeBar},
	}
	backgrounds := []models.BannerBackground{
		{ID: "b1", AnnouncementID: "a2", Color1: "#000000"},
	}
	fields := []models.BannerFormField{
		{ID: "f1", AnnouncementID: "a2", InputType: "email"},
	}
	links := []patternLink{
		{AnnouncementID: "a1", Pattern: "^/products"},
		{AnnouncementID: "a1", Pattern: "^/cart$"},
	}

	details := assembleDetails(headers, texts, ctas, backgrounds, fields, links)
	require.Len(t, details, 2)

	first := details[0]
	assert.Equal(t, "a1", first.ID)
	require.Len(t, first.Texts, 2)
	assert.Equal(t, "First", first.Texts[0].TextMessage)
	require.Len(t, first.Texts[0].CallToActions, 1)
	assert.Equal(t, "c1", first.Texts[0].CallToActions[0].ID)
	assert.Empty(t, first.Texts[1].CallToActions)
	assert.Nil(t, first.Background)
	assert.Equal(t, []string{"^/products", "^/cart$"}, first.PagePatterns)

	second := details[1]
	assert.Equal(t, "a2", second.ID)
	require.NotNil(t, second.Background)
	assert.Equal(t, "b1", second.Background.ID)
	require.Len(t, second.Form, 1)
	assert.Equal(t, "f1", second.Form[0].ID)
	require.Len(t, second.Texts, 1)
	assert.Equal(t, "c2", second.Texts[0].CallToActions[0].ID)
}

func TestAssembleDetailsMaterializesEmptyCollections(t *testing.T) {
	headers := []models.Announcement{{ID: "a1"}}

	details := assembleDetails(headers, nil, nil, nil, nil, nil)
	require.Len(t, details, 1)

	detail := details[0]
	assert.NotNil(t, detail.Texts)
	assert.Empty(t, detail.Texts)
	assert.NotNil(t, detail.Form)
	assert.Empty(t, detail.Form)
	assert.NotNil(t, detail.PagePatterns)
	assert.Empty(t, detail.PagePatterns)
	assert.Nil(t, detail.Background)
}

func TestAssembleDetailsPreservesHeaderOrder(t *testing.T) {
	headers := []models.Announcement{{ID: "z"}, {ID: "a"}, {ID: "m"}}

	details := assembleDetails(headers, nil, nil, nil, nil, nil)
	require.Len(t, details, 3)
	assert.Equal(t, "z", details[0].ID)
	assert.Equal(t, "a", details[1].ID)
	assert.Equal(t, "m", details[2].ID)
}

func TestNewAnnouncementRowCopiesWriteShape(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	height := 60
	in := dto.NewAnnouncement{
		Type:                models.AnnouncementTypeBasic,
		Title:               "Summer Sale",
		Size:                models.AnnouncementSizeCustom,
		HeightPx:            &height,
		StartDate:           now,
		EndDate:             now.AddDate(0, 1, 0),
		CloseButtonPosition: "right",
		IsActive:            true,
	}

	row := newAnnouncementRow("shop-1", in, now)
	assert.NotEmpty(t, row.ID)
	assert.Equal(t, "shop-1", row.ShopID)
	assert.Equal(t, models.AnnouncementSizeCustom, row.Size)
	require.NotNil(t, row.HeightPx)
	assert.Equal(t, 60, *row.HeightPx)
	assert.True(t, row.IsActive)
	assert.Equal(t, now, row.CreatedAt)
	assert.Equal(t, now, row.UpdatedAt)
}

func TestNewCTARowFlattensPadding(t *testing.T) {
	fontColor := "#ffffff"
	row := newCTARow("t1", dto.CTAInput{
		Type:            models.CTATypeRegular,
		Text:            "Shop now",
		Link:            "https://example.com",
		ButtonFontColor: &fontColor,
		Padding:         dto.Padding{Top: 4, Right: 8, Bottom: 4, Left: 8},
	})

	assert.Equal(t, "t1", row.AnnouncementTextID)
	assert.Equal(t, 4, row.PaddingTop)
	assert.Equal(t, 8, row.PaddingRight)
	assert.Equal(t, 4, row.PaddingBottom)
	assert.Equal(t, 8, row.PaddingLeft)
	require.NotNil(t, row.ButtonFontColor)
	assert.Equal(t, "#ffffff", *row.ButtonFontColor)
}
