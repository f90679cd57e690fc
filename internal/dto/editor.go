package dto

import (
	"time"

	"github.com/noah-isme/banner-admin-api/internal/models"
)

// BannerFormPayload is the raw, five-section shape submitted by the banner
// editor UI. Numeric size fields arrive as strings exactly as typed; every
// cross-field rule is enforced by validation.ValidateBannerForm.
type BannerFormPayload struct {
	Basic      BasicSection      `json:"basic"`
	Text       TextSection       `json:"text"`
	CTA        CTASection        `json:"cta"`
	Background BackgroundSection `json:"background"`
	Other      OtherSection      `json:"other"`
}

// BasicSection carries campaign identity, size mode and schedule.
type BasicSection struct {
	Size          string  `json:"size"`
	SizeHeight    string  `json:"sizeHeight"`
	SizeWidth     string  `json:"sizeWidth"`
	CampaignTitle string  `json:"campaignTitle"`
	StartType     string  `json:"startType"`
	EndType       string  `json:"endType"`
	StartDate     *string `json:"startDate"` // YYYY-MM-DD
	EndDate       *string `json:"endDate"`
	StartTime     *string `json:"startTime"` // HH:mm
	EndTime       *string `json:"endTime"`
}

// TextSection carries the campaign message styling.
type TextSection struct {
	AnnouncementText string  `json:"announcementText"`
	TextColor        string  `json:"textColor"`
	FontSize         float64 `json:"fontSize"`
	FontType         string  `json:"fontType"`
}

// CTASection carries the call-to-action choice; which fields are required
// depends on CTAType.
type CTASection struct {
	CTAType               string  `json:"ctaType"`
	CTAText               string  `json:"ctaText"`
	CTALink               string  `json:"ctaLink"`
	Padding               Padding `json:"padding"`
	FontType              string  `json:"fontType"`
	ButtonFontColor       string  `json:"buttonFontColor"`
	ButtonBackgroundColor string  `json:"buttonBackgroundColor"`
}

// BackgroundSection carries banner background styling.
type BackgroundSection struct {
	BackgroundType string `json:"backgroundType"`
	Color1         string `json:"color1"`
	Color2         string `json:"color2"`
	Color3         string `json:"color3"`
	Pattern        string `json:"pattern"`
	PaddingRight   int    `json:"paddingRight"`
}

// OtherSection carries close-button placement, page targeting and the
// display-timing knobs. The timing fields are free-form strings interpreted
// by the storefront widget, passed through untouched.
type OtherSection struct {
	CloseButtonPosition string   `json:"closeButtonPosition"`
	DisplayBeforeDelay  string   `json:"displayBeforeDelay"`
	ShowAfterClosing    string   `json:"showAfterClosing"`
	ShowAfterCTA        string   `json:"showAfterCTA"`
	SelectedPages       []string `json:"selectedPages"`
	CampaignTiming      string   `json:"campaignTiming"`
}

// BannerConfig is the normalized result of a successful editor validation:
// all strings parsed, all defaults applied.
type BannerConfig struct {
	Size                models.AnnouncementSize
	HeightPx            *int
	WidthPercent        *int
	CampaignTitle       string
	Schedule            Schedule
	Text                TextSection
	FontSize            int
	CTA                 CTASection
	CTAType             models.CTAType
	Background          BackgroundSection
	Other               OtherSection
	CloseButtonPosition string
	SelectedPages       []string
}

// Schedule is the normalized campaign window. Start and End are resolved
// instants: Start is now for startType=now, End is far-future for
// endType=until_stop.
type Schedule struct {
	StartType string
	EndType   string
	Start     time.Time
	End       time.Time
}

// ToNewAnnouncement converts a normalized editor config into the store write
// shape. The editor always produces a single-text basic banner.
func (c *BannerConfig) ToNewAnnouncement() NewAnnouncement {
	cta := CTAInput{
		Type:     c.CTAType,
		Text:     c.CTA.CTAText,
		Link:     c.CTA.CTALink,
		FontType: c.CTA.FontType,
		Padding:  c.CTA.Padding,
	}
	if c.CTA.ButtonFontColor != "" {
		fontColor := c.CTA.ButtonFontColor
		cta.ButtonFontColor = &fontColor
	}
	if c.CTA.ButtonBackgroundColor != "" {
		bgColor := c.CTA.ButtonBackgroundColor
		cta.ButtonBackgroundColor = &bgColor
	}

	return NewAnnouncement{
		Type:                models.AnnouncementTypeBasic,
		Title:               c.CampaignTitle,
		Size:                c.Size,
		HeightPx:            c.HeightPx,
		WidthPercent:        c.WidthPercent,
		StartDate:           c.Schedule.Start,
		EndDate:             c.Schedule.End,
		CloseButtonPosition: c.CloseButtonPosition,
		IsActive:            true,
		Texts: []TextInput{{
			TextMessage:   c.Text.AnnouncementText,
			TextColor:     c.Text.TextColor,
			FontSize:      c.FontSize,
			FontType:      c.Text.FontType,
			CallToActions: []CTAInput{cta},
		}},
		Background: &BackgroundInput{
			BackgroundType: c.Background.BackgroundType,
			Color1:         c.Background.Color1,
			Color2:         c.Background.Color2,
			Color3:         c.Background.Color3,
			Pattern:        c.Background.Pattern,
			PaddingRight:   c.Background.PaddingRight,
		},
		PagePatterns: c.SelectedPages,
	}
}
