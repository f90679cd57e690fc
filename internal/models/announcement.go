package models

import "time"

// AnnouncementType discriminates the banner flavour.
type AnnouncementType string

const (
	AnnouncementTypeBasic       AnnouncementType = "basic"
	AnnouncementTypeCountdown   AnnouncementType = "countdown"
	AnnouncementTypeEmailSignup AnnouncementType = "email_signup"
	AnnouncementTypeMultiText   AnnouncementType = "multi_text"
)

// AnnouncementSize selects one of the preset banner heights or a custom one.
type AnnouncementSize string

const (
	AnnouncementSizeSmall  AnnouncementSize = "small"
	AnnouncementSizeMedium AnnouncementSize = "medium"
	AnnouncementSizeLarge  AnnouncementSize = "large"
	AnnouncementSizeCustom AnnouncementSize = "custom"
)

// CTAType discriminates the call-to-action behaviour. The required-field set
// of a CallToAction depends on this tag.
type CTAType string

const (
	CTATypeNone    CTAType = "none"
	CTATypeLink    CTAType = "link"
	CTATypeBar     CTAType = "bar"
	CTATypeRegular CTAType = "regular"
)

// GlobalPagePattern is the sentinel pattern matching every storefront path.
const GlobalPagePattern = "__global"

// Announcement represents a persisted announcement header row.
type Announcement struct {
	ID                  string           `db:"id" json:"id"`
	ShopID              string           `db:"shop_id" json:"shop_id"`
	Type                AnnouncementType `db:"type" json:"type"`
	Title               string           `db:"title" json:"title"`
	Size                AnnouncementSize `db:"size" json:"size"`
	HeightPx            *int             `db:"height_px" json:"height_px,omitempty"`
	WidthPercent        *int             `db:"width_percent" json:"width_percent,omitempty"`
	StartDate           time.Time        `db:"start_date" json:"start_date"`
	EndDate             time.Time        `db:"end_date" json:"end_date"`
	CloseButtonPosition string           `db:"close_button_position" json:"close_button_position"`
	IsActive            bool             `db:"is_active" json:"is_active"`
	CreatedAt           time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time        `db:"updated_at" json:"updated_at"`
}

// AnnouncementText is one message block owned by an announcement.
type AnnouncementText struct {
	ID             string `db:"id" json:"id"`
	AnnouncementID string `db:"announcement_id" json:"announcement_id"`
	TextMessage    string `db:"text_message" json:"text_message"`
	TextColor      string `db:"text_color" json:"text_color"`
	FontSize       int    `db:"font_size" json:"font_size"`
	FontType       string `db:"font_type" json:"font_type"`
}

// CallToAction is a clickable element owned by a text block.
type CallToAction struct {
	ID                    string  `db:"id" json:"id"`
	AnnouncementTextID    string  `db:"announcement_text_id" json:"announcement_text_id"`
	Type                  CTAType `db:"cta_type" json:"cta_type"`
	Text                  string  `db:"cta_text" json:"cta_text"`
	Link                  string  `db:"cta_link" json:"cta_link"`
	ButtonFontColor       *string `db:"button_font_color" json:"button_font_color,omitempty"`
	ButtonBackgroundColor *string `db:"button_background_color" json:"button_background_color,omitempty"`
	FontType              string  `db:"font_type" json:"font_type"`
	PaddingTop            int     `db:"padding_top" json:"padding_top"`
	PaddingRight          int     `db:"padding_right" json:"padding_right"`
	PaddingBottom         int     `db:"padding_bottom" json:"padding_bottom"`
	PaddingLeft           int     `db:"padding_left" json:"padding_left"`
}

// BannerBackground is the zero-or-one background row of an announcement.
type BannerBackground struct {
	ID             string `db:"id" json:"id"`
	AnnouncementID string `db:"announcement_id" json:"announcement_id"`
	BackgroundType string `db:"background_type" json:"background_type"`
	Color1         string `db:"color1" json:"color1"`
	Color2         string `db:"color2" json:"color2"`
	Color3         string `db:"color3" json:"color3"`
	Pattern        string `db:"pattern" json:"pattern"`
	PaddingRight   int    `db:"padding_right" json:"padding_right"`
}

// BannerFormField is one input of an email-signup banner form.
type BannerFormField struct {
	ID              string  `db:"id" json:"id"`
	AnnouncementID  string  `db:"announcement_id" json:"announcement_id"`
	InputType       string  `db:"input_type" json:"input_type"`
	Placeholder     string  `db:"placeholder" json:"placeholder"`
	Label           string  `db:"label" json:"label"`
	IsRequired      bool    `db:"is_required" json:"is_required"`
	ValidationRegex *string `db:"validation_regex" json:"validation_regex,omitempty"`
}

// PagePattern is a shared dictionary entry; announcements reference patterns
// through a link table.
type PagePattern struct {
	ID      string `db:"id" json:"id"`
	Pattern string `db:"pattern" json:"pattern"`
}

// AnnouncementPagePattern links an announcement to a page pattern.
type AnnouncementPagePattern struct {
	AnnouncementID string `db:"announcement_id" json:"announcement_id"`
	PagePatternID  string `db:"page_pattern_id" json:"page_pattern_id"`
}

// TextWithCTAs is a text block with its owned call-to-actions.
type TextWithCTAs struct {
	AnnouncementText
	CallToActions []CallToAction `json:"call_to_actions"`
}

// AnnouncementDetail is the recomposed nested shape: the header row plus all
// owned associations. Owned collections are always non-nil, empty when absent.
type AnnouncementDetail struct {
	Announcement
	Texts        []TextWithCTAs    `json:"texts"`
	Background   *BannerBackground `json:"background,omitempty"`
	Form         []BannerFormField `json:"form"`
	PagePatterns []string          `json:"page_patterns"`
}

// HasGlobalPattern reports whether the announcement carries the sentinel
// pattern that matches every storefront path.
func (d *AnnouncementDetail) HasGlobalPattern() bool {
	for _, p := range d.PagePatterns {
		if p == GlobalPagePattern {
			return true
		}
	}
	return false
}
