package validation

import (
	"strconv"
	"strings"

	"github.com/noah-isme/banner-admin-api/internal/dto"
	"github.com/noah-isme/banner-admin-api/internal/models"
	appErrors "github.com/noah-isme/banner-admin-api/pkg/errors"
)

// ValidateNewAnnouncement applies the cross-field rules that struct tags
// cannot express to the full write shape: custom-size requirements, window
// ordering and the per-CTA discriminated requirement sets. Returns one entry
// per violated constraint.
func ValidateNewAnnouncement(in dto.NewAnnouncement) []appErrors.FieldError {
	c := &collector{}

	if in.Size == models.AnnouncementSizeCustom {
		if in.HeightPx == nil || *in.HeightPx <= 0 {
			c.add("Height must be a positive number", "height_px")
		}
		if in.WidthPercent == nil || *in.WidthPercent <= 0 {
			c.add("Width must be a positive number", "width_percent")
		} else if *in.WidthPercent > 100 {
			c.add("Width cannot be more than 100%", "width_percent")
		}
	}

	if !in.EndDate.After(in.StartDate) {
		c.add("End date must be after start date", "end_date")
	}

	for i, text := range in.Texts {
		for j, cta := range text.CallToActions {
			validateCTAInput(c, cta, "texts", strconv.Itoa(i), "call_to_actions", strconv.Itoa(j))
		}
	}

	return c.errs
}

// ValidateAnnouncementUpdate checks the sections present in a partial update;
// omitted sections are not validated.
func ValidateAnnouncementUpdate(upd dto.AnnouncementUpdate) []appErrors.FieldError {
	c := &collector{}

	if upd.StartDate != nil && upd.EndDate != nil && !upd.EndDate.After(*upd.StartDate) {
		c.add("End date must be after start date", "end_date")
	}

	for i, text := range upd.Texts {
		for j, cta := range text.CallToActions {
			validateCTAInput(c, cta, "texts", strconv.Itoa(i), "call_to_actions", strconv.Itoa(j))
		}
	}

	return c.errs
}

func validateCTAInput(c *collector, cta dto.CTAInput, base ...string) {
	path := func(field string) []string {
		return append(append([]string{}, base...), field)
	}

	switch cta.Type {
	case models.CTATypeNone:
	case models.CTATypeLink:
		if strings.TrimSpace(cta.Text) == "" {
			c.add("CTA text is required for link type", path("cta_text")...)
		}
		if err := urlValidator.Var(cta.Link, "required,url"); err != nil {
			c.add("Please enter a valid URL", path("cta_link")...)
		}
	case models.CTATypeBar:
		if err := urlValidator.Var(cta.Link, "required,url"); err != nil {
			c.add("Please enter a valid URL", path("cta_link")...)
		}
	case models.CTATypeRegular:
		if strings.TrimSpace(cta.Text) == "" {
			c.add("CTA text is required for button type", path("cta_text")...)
		}
		if err := urlValidator.Var(cta.Link, "required,url"); err != nil {
			c.add("Please enter a valid URL", path("cta_link")...)
		}
		if cta.ButtonFontColor == nil || *cta.ButtonFontColor == "" {
			c.add("Button font color is required", path("button_font_color")...)
		}
		if cta.ButtonBackgroundColor == nil || *cta.ButtonBackgroundColor == "" {
			c.add("Button background color is required", path("button_background_color")...)
		}
	default:
		c.add("Invalid CTA type", path("cta_type")...)
	}

	for _, edge := range []struct {
		name  string
		value int
	}{
		{"top", cta.Padding.Top},
		{"right", cta.Padding.Right},
		{"bottom", cta.Padding.Bottom},
		{"left", cta.Padding.Left},
	} {
		if edge.value < 0 {
			c.add("Padding must not be negative", append(path("padding"), edge.name)...)
		}
	}
}
