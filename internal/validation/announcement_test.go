package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/banner-admin-api/internal/dto"
	"github.com/noah-isme/banner-admin-api/internal/models"
)

func intPtr(i int) *int { return &i }

func validNewAnnouncement() dto.NewAnnouncement {
	return dto.NewAnnouncement{
		Type:                models.AnnouncementTypeBasic,
		Title:               "Summer Sale",
		Size:                models.AnnouncementSizeSmall,
		StartDate:           time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:             time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
		CloseButtonPosition: "right",
		Texts: []dto.TextInput{{
			TextMessage: "Free shipping on all orders",
			FontSize:    16,
		}},
	}
}

func TestValidateNewAnnouncementValid(t *testing.T) {
	assert.Empty(t, ValidateNewAnnouncement(validNewAnnouncement()))
}

func TestValidateNewAnnouncementCustomSize(t *testing.T) {
	in := validNewAnnouncement()
	in.Size = models.AnnouncementSizeCustom

	messages := fieldMessages(ValidateNewAnnouncement(in))
	assert.Contains(t, messages, "Height must be a positive number")
	assert.Contains(t, messages, "Width must be a positive number")

	in.HeightPx = intPtr(60)
	in.WidthPercent = intPtr(101)
	messages = fieldMessages(ValidateNewAnnouncement(in))
	assert.Equal(t, []string{"Width cannot be more than 100%"}, messages)

	in.WidthPercent = intPtr(100)
	assert.Empty(t, ValidateNewAnnouncement(in))
}

func TestValidateNewAnnouncementWindowOrdering(t *testing.T) {
	in := validNewAnnouncement()
	in.EndDate = in.StartDate

	messages := fieldMessages(ValidateNewAnnouncement(in))
	assert.Contains(t, messages, "End date must be after start date")
}

func TestValidateNewAnnouncementCTAPaths(t *testing.T) {
	in := validNewAnnouncement()
	in.Texts[0].CallToActions = []dto.CTAInput{{
		Type: models.CTATypeRegular,
		Text: "Shop now",
		Link: "https://example.com/sale",
	}}

	fields := ValidateNewAnnouncement(in)
	require.Len(t, fields, 2)
	assert.Equal(t, []string{"texts", "0", "call_to_actions", "0", "button_font_color"}, fields[0].Path)
	assert.Equal(t, []string{"texts", "0", "call_to_actions", "0", "button_background_color"}, fields[1].Path)
}

func TestValidateAnnouncementUpdateSkipsOmittedSections(t *testing.T) {
	assert.Empty(t, ValidateAnnouncementUpdate(dto.AnnouncementUpdate{}))

	start := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 9, 0, 0, 0, 0, time.UTC)
	messages := fieldMessages(ValidateAnnouncementUpdate(dto.AnnouncementUpdate{
		StartDate: &start,
		EndDate:   &end,
	}))
	assert.Contains(t, messages, "End date must be after start date")
}
