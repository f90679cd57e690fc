package validation

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/banner-admin-api/internal/dto"
	"github.com/noah-isme/banner-admin-api/internal/models"
	appErrors "github.com/noah-isme/banner-admin-api/pkg/errors"
)

const dateLayout = "2006-01-02"

// untilStopEnd is the resolved campaign end for endType=until_stop: the
// banner stays active until the merchant stops it.
var untilStopEnd = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)

var urlValidator = validator.New()

// collector accumulates field errors across all sections so the editor can
// render every violation in one round trip.
type collector struct {
	errs []appErrors.FieldError
}

func (c *collector) add(message string, path ...string) {
	c.errs = append(c.errs, appErrors.FieldError{Path: path, Message: message})
}

// ValidateBannerForm validates the raw five-section editor payload against
// the conditional-requirement rules for size, schedule, text, call-to-action
// and page targeting. It is total: all sections are checked in one pass. On
// success it returns the normalized config with defaults applied; on failure
// it returns one entry per violated constraint and no config.
func ValidateBannerForm(p dto.BannerFormPayload, now time.Time) (*dto.BannerConfig, []appErrors.FieldError) {
	c := &collector{}

	heightPx, widthPercent := validateBasic(c, p.Basic)
	schedule := validateSchedule(c, p.Basic, now)
	fontSize := validateText(c, p.Text)
	ctaType := validateCTA(c, p.CTA)
	closePosition, pages := validateOther(c, p.Other)

	if len(c.errs) > 0 {
		return nil, c.errs
	}

	return &dto.BannerConfig{
		Size:                models.AnnouncementSize(p.Basic.Size),
		HeightPx:            heightPx,
		WidthPercent:        widthPercent,
		CampaignTitle:       p.Basic.CampaignTitle,
		Schedule:            schedule,
		Text:                p.Text,
		FontSize:            fontSize,
		CTA:                 p.CTA,
		CTAType:             ctaType,
		Background:          p.Background,
		Other:               p.Other,
		CloseButtonPosition: closePosition,
		SelectedPages:       pages,
	}, nil
}

func validateBasic(c *collector, basic dto.BasicSection) (heightPx, widthPercent *int) {
	switch models.AnnouncementSize(basic.Size) {
	case models.AnnouncementSizeSmall, models.AnnouncementSizeMedium, models.AnnouncementSizeLarge:
	case models.AnnouncementSizeCustom:
		heightPx = validateCustomHeight(c, basic.SizeHeight)
		widthPercent = validateCustomWidth(c, basic.SizeWidth)
	default:
		c.add("Invalid banner size", "basic", "size")
	}

	if strings.TrimSpace(basic.CampaignTitle) == "" {
		c.add("Campaign title is required", "basic", "campaignTitle")
	}
	return heightPx, widthPercent
}

func validateCustomHeight(c *collector, raw string) *int {
	if strings.TrimSpace(raw) == "" {
		c.add("Height is required for custom size", "basic", "sizeHeight")
		return nil
	}
	height, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || height <= 0 {
		c.add("Height must be a positive number", "basic", "sizeHeight")
		return nil
	}
	px := int(height)
	return &px
}

func validateCustomWidth(c *collector, raw string) *int {
	if strings.TrimSpace(raw) == "" {
		c.add("Width is required for custom size", "basic", "sizeWidth")
		return nil
	}
	width, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || width <= 0 {
		c.add("Width must be a positive number", "basic", "sizeWidth")
		return nil
	}
	if width > 100 {
		c.add("Width cannot be more than 100%", "basic", "sizeWidth")
		return nil
	}
	percent := int(width)
	return &percent
}

func validateSchedule(c *collector, basic dto.BasicSection, now time.Time) dto.Schedule {
	schedule := dto.Schedule{StartType: basic.StartType, EndType: basic.EndType}

	if basic.StartType != "now" && basic.StartType != "specific" {
		c.add("Invalid start type", "basic", "startType")
	}
	if basic.EndType != "until_stop" && basic.EndType != "specific" {
		c.add("Invalid end type", "basic", "endType")
	}

	var startDate, endDate *time.Time
	var startMinutes, endMinutes = -1, -1

	if basic.StartType == "specific" {
		startDate = requireDate(c, basic.StartDate, "Start date is required when start type is specific", "startDate")
		startMinutes = requireTime(c, basic.StartTime, "Start time is required when start type is specific", "startTime")
	}
	if basic.EndType == "specific" {
		endDate = requireDate(c, basic.EndDate, "End date is required when end type is specific", "endDate")
		endMinutes = requireTime(c, basic.EndTime, "End time is required when end type is specific", "endTime")
	}

	if startDate != nil && endDate != nil {
		if endDate.Before(*startDate) {
			c.add("End date must be after start date", "basic", "endDate")
		} else if startDate.Equal(*endDate) && startMinutes >= 0 && endMinutes >= 0 && startMinutes >= endMinutes {
			c.add("End time must be after start time", "basic", "endTime")
		}
	}

	schedule.Start = now.UTC()
	if startDate != nil && startMinutes >= 0 {
		schedule.Start = startDate.Add(time.Duration(startMinutes) * time.Minute)
	}
	schedule.End = untilStopEnd
	if endDate != nil && endMinutes >= 0 {
		schedule.End = endDate.Add(time.Duration(endMinutes) * time.Minute)
	}
	return schedule
}

func requireDate(c *collector, raw *string, message, field string) *time.Time {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		c.add(message, "basic", field)
		return nil
	}
	d, err := time.ParseInLocation(dateLayout, strings.TrimSpace(*raw), time.UTC)
	if err != nil {
		c.add("Invalid date", "basic", field)
		return nil
	}
	return &d
}

func requireTime(c *collector, raw *string, message, field string) int {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		c.add(message, "basic", field)
		return -1
	}
	minutes, ok := timeOfDayMinutes(*raw)
	if !ok {
		c.add("Invalid time", "basic", field)
		return -1
	}
	return minutes
}

func validateText(c *collector, text dto.TextSection) int {
	if strings.TrimSpace(text.AnnouncementText) == "" {
		c.add("Campaign Message is required", "text", "announcementText")
	}
	if text.FontSize < 8 || text.FontSize > 72 {
		c.add("Font size must be between 8 and 72", "text", "fontSize")
	}
	return int(text.FontSize)
}

// validateCTA applies the discriminated requirement set: none needs nothing,
// link needs text+URL, bar needs only a URL, regular needs text, URL and both
// button colors. Padding edges must be non-negative for every variant.
func validateCTA(c *collector, cta dto.CTASection) models.CTAType {
	ctaType := models.CTAType(cta.CTAType)
	switch ctaType {
	case models.CTATypeNone:
	case models.CTATypeLink:
		if strings.TrimSpace(cta.CTAText) == "" {
			c.add("CTA text is required for link type", "cta", "ctaText")
		}
		requireURL(c, cta.CTALink)
	case models.CTATypeBar:
		requireURL(c, cta.CTALink)
	case models.CTATypeRegular:
		if strings.TrimSpace(cta.CTAText) == "" {
			c.add("CTA text is required for button type", "cta", "ctaText")
		}
		requireURL(c, cta.CTALink)
		if cta.ButtonFontColor == "" {
			c.add("Button font color is required", "cta", "buttonFontColor")
		}
		if cta.ButtonBackgroundColor == "" {
			c.add("Button background color is required", "cta", "buttonBackgroundColor")
		}
	default:
		c.add("Invalid CTA type", "cta", "ctaType")
	}

	validatePadding(c, cta.Padding)
	return ctaType
}

func requireURL(c *collector, link string) {
	if err := urlValidator.Var(link, "required,url"); err != nil {
		c.add("Please enter a valid URL", "cta", "ctaLink")
	}
}

func validatePadding(c *collector, padding dto.Padding) {
	edges := []struct {
		name  string
		value int
	}{
		{"top", padding.Top},
		{"right", padding.Right},
		{"bottom", padding.Bottom},
		{"left", padding.Left},
	}
	for _, edge := range edges {
		if edge.value < 0 {
			c.add("Padding must not be negative", "cta", "padding", edge.name)
		}
	}
}

func validateOther(c *collector, other dto.OtherSection) (string, []string) {
	if other.CloseButtonPosition != "left" && other.CloseButtonPosition != "right" {
		c.add("Invalid close button position", "other", "closeButtonPosition")
	}

	pages := other.SelectedPages
	if len(pages) == 0 {
		pages = []string{models.GlobalPagePattern}
	}
	return other.CloseButtonPosition, pages
}
