package repository

import (
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/banner-admin-api/internal/dto"
	"github.com/noah-isme/banner-admin-api/internal/models"
)

// This file is the relational mapping layer: write-side decomposition of the
// nested announcement shape into rows, and read-side assembly of fetched rows
// back into the nested shape. There is no lazy loading; the repository fetches
// each owned collection explicitly and assembly groups rows by foreign key.

// patternLink is the joined projection of a link row with its pattern value.
type patternLink struct {
	AnnouncementID string `db:"announcement_id"`
	Pattern        string `db:"pattern"`
}

func newAnnouncementRow(shopID string, in dto.NewAnnouncement, now time.Time) models.Announcement {
	return models.Announcement{
		ID:                  uuid.NewString(),
		ShopID:              shopID,
		Type:                in.Type,
		Title:               in.Title,
		Size:                in.Size,
		HeightPx:            in.HeightPx,
		WidthPercent:        in.WidthPercent,
		StartDate:           in.StartDate,
		EndDate:             in.EndDate,
		CloseButtonPosition: in.CloseButtonPosition,
		IsActive:            in.IsActive,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

func newTextRow(announcementID string, in dto.TextInput) models.AnnouncementText {
	return models.AnnouncementText{
		ID:             uuid.NewString(),
		AnnouncementID: announcementID,
		TextMessage:    in.TextMessage,
		TextColor:      in.TextColor,
		FontSize:       in.FontSize,
		FontType:       in.FontType,
	}
}

func newCTARow(textID string, in dto.CTAInput) models.CallToAction {
	return models.CallToAction{
		ID:                    uuid.NewString(),
		AnnouncementTextID:    textID,
		Type:                  in.Type,
		Text:                  in.Text,
		Link:                  in.Link,
		ButtonFontColor:       in.ButtonFontColor,
		ButtonBackgroundColor: in.ButtonBackgroundColor,
		FontType:              in.FontType,
		PaddingTop:            in.Padding.Top,
		PaddingRight:          in.Padding.Right,
		PaddingBottom:         in.Padding.Bottom,
		PaddingLeft:           in.Padding.Left,
	}
}

func newBackgroundRow(announcementID string, in dto.BackgroundInput) models.BannerBackground {
	return models.BannerBackground{
		ID:             uuid.NewString(),
		AnnouncementID: announcementID,
		BackgroundType: in.BackgroundType,
		Color1:         in.Color1,
		Color2:         in.Color2,
		Color3:         in.Color3,
		Pattern:        in.Pattern,
		PaddingRight:   in.PaddingRight,
	}
}

func newFormFieldRow(announcementID string, in dto.FormFieldInput) models.BannerFormField {
	return models.BannerFormField{
		ID:              uuid.NewString(),
		AnnouncementID:  announcementID,
		InputType:       in.InputType,
		Placeholder:     in.Placeholder,
		Label:           in.Label,
		IsRequired:      in.IsRequired,
		ValidationRegex: in.ValidationRegex,
	}
}

// assembleDetails rebuilds the nested texts→ctas shape from flat row sets,
// preserving header order. Owned collections are always materialized: an
// announcement with no texts, form fields or patterns gets empty slices,
// never nil.
func assembleDetails(
	headers []models.Announcement,
	texts []models.AnnouncementText,
	ctas []models.CallToAction,
	backgrounds []models.BannerBackground,
	fields []models.BannerFormField,
	links []patternLink,
) []models.AnnouncementDetail {
	ctasByText := make(map[string][]models.CallToAction, len(texts))
	for _, cta := range ctas {
		ctasByText[cta.AnnouncementTextID] = append(ctasByText[cta.AnnouncementTextID], cta)
	}

	textsByAnnouncement := make(map[string][]models.TextWithCTAs, len(headers))
	for _, text := range texts {
		withCTAs := models.TextWithCTAs{AnnouncementText: text, CallToActions: []models.CallToAction{}}
		if owned, ok := ctasByText[text.ID]; ok {
			withCTAs.CallToActions = owned
		}
		textsByAnnouncement[text.AnnouncementID] = append(textsByAnnouncement[text.AnnouncementID], withCTAs)
	}

	backgroundByAnnouncement := make(map[string]models.BannerBackground, len(backgrounds))
	for _, bg := range backgrounds {
		backgroundByAnnouncement[bg.AnnouncementID] = bg
	}

	fieldsByAnnouncement := make(map[string][]models.BannerFormField, len(fields))
	for _, field := range fields {
		fieldsByAnnouncement[field.AnnouncementID] = append(fieldsByAnnouncement[field.AnnouncementID], field)
	}

	patternsByAnnouncement := make(map[string][]string, len(links))
	for _, link := range links {
		patternsByAnnouncement[link.AnnouncementID] = append(patternsByAnnouncement[link.AnnouncementID], link.Pattern)
	}

	details := make([]models.AnnouncementDetail, 0, len(headers))
	for _, header := range headers {
		detail := models.AnnouncementDetail{
			Announcement: header,
			Texts:        []models.TextWithCTAs{},
			Form:         []models.BannerFormField{},
			PagePatterns: []string{},
		}
		if owned, ok := textsByAnnouncement[header.ID]; ok {
			detail.Texts = owned
		}
		if bg, ok := backgroundByAnnouncement[header.ID]; ok {
			background := bg
			detail.Background = &background
		}
		if owned, ok := fieldsByAnnouncement[header.ID]; ok {
			detail.Form = owned
		}
		if owned, ok := patternsByAnnouncement[header.ID]; ok {
			detail.PagePatterns = owned
		}
		details = append(details, detail)
	}
	return details
}
