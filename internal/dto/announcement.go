package dto

import (
	"time"

	"github.com/noah-isme/banner-admin-api/internal/models"
)

// Padding holds the four edge values of a call-to-action, in pixels.
type Padding struct {
	Top    int `json:"top" validate:"min=0"`
	Right  int `json:"right" validate:"min=0"`
	Bottom int `json:"bottom" validate:"min=0"`
	Left   int `json:"left" validate:"min=0"`
}

// CTAInput describes one call-to-action of a text block.
type CTAInput struct {
	Type                  models.CTAType `json:"cta_type" validate:"oneof=none link bar regular"`
	Text                  string         `json:"cta_text"`
	Link                  string         `json:"cta_link"`
	ButtonFontColor       *string        `json:"button_font_color,omitempty"`
	ButtonBackgroundColor *string        `json:"button_background_color,omitempty"`
	FontType              string         `json:"font_type"`
	Padding               Padding        `json:"padding"`
}

// TextInput describes one text block with its call-to-actions.
type TextInput struct {
	TextMessage   string     `json:"text_message" validate:"required"`
	TextColor     string     `json:"text_color"`
	FontSize      int        `json:"font_size" validate:"min=8,max=72"`
	FontType      string     `json:"font_type"`
	CallToActions []CTAInput `json:"call_to_actions" validate:"dive"`
}

// BackgroundInput describes the optional banner background.
type BackgroundInput struct {
	BackgroundType string `json:"background_type"`
	Color1         string `json:"color1"`
	Color2         string `json:"color2"`
	Color3         string `json:"color3"`
	Pattern        string `json:"pattern"`
	PaddingRight   int    `json:"padding_right" validate:"min=0"`
}

// FormFieldInput describes one signup form input.
type FormFieldInput struct {
	InputType       string  `json:"input_type" validate:"oneof=email text checkbox"`
	Placeholder     string  `json:"placeholder"`
	Label           string  `json:"label"`
	IsRequired      bool    `json:"is_required"`
	ValidationRegex *string `json:"validation_regex,omitempty"`
}

// NewAnnouncement is the full write shape: header fields plus every owned
// collection. The shop id is supplied by the session, never by the payload.
type NewAnnouncement struct {
	Type                models.AnnouncementType `json:"type" validate:"oneof=basic countdown email_signup multi_text"`
	Title               string                  `json:"title" validate:"required"`
	Size                models.AnnouncementSize `json:"size" validate:"oneof=small medium large custom"`
	HeightPx            *int                    `json:"height_px,omitempty"`
	WidthPercent        *int                    `json:"width_percent,omitempty"`
	StartDate           time.Time               `json:"start_date" validate:"required"`
	EndDate             time.Time               `json:"end_date" validate:"required"`
	CloseButtonPosition string                  `json:"close_button_position" validate:"oneof=left right"`
	IsActive            bool                    `json:"is_active"`
	Texts               []TextInput             `json:"texts" validate:"min=1,dive"`
	Background          *BackgroundInput        `json:"background,omitempty"`
	Form                []FormFieldInput        `json:"form,omitempty" validate:"dive"`
	PagePatterns        []string                `json:"page_patterns,omitempty"`
}

// AnnouncementUpdate is the partial write shape. Nil header fields are left
// untouched. Owned collections follow replace-all semantics: Texts is
// replaced when non-empty; Background, Form and PagePatterns are replaced
// whenever the key is present (pointer non-nil), including with an empty set.
type AnnouncementUpdate struct {
	Type                *models.AnnouncementType `json:"type,omitempty" validate:"omitempty,oneof=basic countdown email_signup multi_text"`
	Title               *string                  `json:"title,omitempty"`
	Size                *models.AnnouncementSize `json:"size,omitempty" validate:"omitempty,oneof=small medium large custom"`
	HeightPx            *int                     `json:"height_px,omitempty"`
	WidthPercent        *int                     `json:"width_percent,omitempty"`
	StartDate           *time.Time               `json:"start_date,omitempty"`
	EndDate             *time.Time               `json:"end_date,omitempty"`
	CloseButtonPosition *string                  `json:"close_button_position,omitempty" validate:"omitempty,oneof=left right"`
	IsActive            *bool                    `json:"is_active,omitempty"`
	Texts               []TextInput              `json:"texts,omitempty" validate:"dive"`
	Background          *BackgroundInput         `json:"background,omitempty"`
	Form                *[]FormFieldInput        `json:"form,omitempty"`
	PagePatterns        *[]string                `json:"page_patterns,omitempty"`
}

// HasHeaderChanges reports whether any header column is being patched.
func (u *AnnouncementUpdate) HasHeaderChanges() bool {
	return u.Type != nil || u.Title != nil || u.Size != nil ||
		u.HeightPx != nil || u.WidthPercent != nil ||
		u.StartDate != nil || u.EndDate != nil ||
		u.CloseButtonPosition != nil || u.IsActive != nil
}

// SetActiveRequest flips only the active flag.
type SetActiveRequest struct {
	IsActive bool `json:"is_active"`
}
