package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/banner-admin-api/internal/dto"
	"github.com/noah-isme/banner-admin-api/internal/models"
	appErrors "github.com/noah-isme/banner-admin-api/pkg/errors"
)

func strPtr(s string) *string { return &s }

func validPayload() dto.BannerFormPayload {
	return dto.BannerFormPayload{
		Basic: dto.BasicSection{
			Size:          "small",
			CampaignTitle: "Summer Sale",
			StartType:     "now",
			EndType:       "until_stop",
		},
		Text: dto.TextSection{
			AnnouncementText: "Free shipping on all orders",
			TextColor:        "#ffffff",
			FontSize:         16,
		},
		CTA: dto.CTASection{
			CTAType: "none",
		},
		Other: dto.OtherSection{
			CloseButtonPosition: "right",
		},
	}
}

func fieldMessages(fields []appErrors.FieldError) []string {
	messages := make([]string, 0, len(fields))
	for _, f := range fields {
		messages = append(messages, f.Message)
	}
	return messages
}

func TestValidateBannerFormValid(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	config, fields := ValidateBannerForm(validPayload(), now)
	require.Empty(t, fields)
	require.NotNil(t, config)

	assert.Equal(t, models.AnnouncementSizeSmall, config.Size)
	assert.Nil(t, config.HeightPx)
	assert.Nil(t, config.WidthPercent)
	assert.Equal(t, now.UTC(), config.Schedule.Start)
	assert.Equal(t, untilStopEnd, config.Schedule.End)
	assert.Equal(t, []string{models.GlobalPagePattern}, config.SelectedPages)
}

func TestValidateBannerFormCustomSizeRequiresDimensions(t *testing.T) {
	p := validPayload()
	p.Basic.Size = "custom"

	_, fields := ValidateBannerForm(p, time.Now())
	messages := fieldMessages(fields)
	assert.Contains(t, messages, "Height is required for custom size")
	assert.Contains(t, messages, "Width is required for custom size")
}

func TestValidateBannerFormCustomWidthBounds(t *testing.T) {
	cases := []struct {
		name    string
		width   string
		message string
	}{
		{"over limit", "150", "Width cannot be more than 100%"},
		{"barely over limit", "100.01", "Width cannot be more than 100%"},
		{"zero", "0", "Width must be a positive number"},
		{"not a number", "wide", "Width must be a positive number"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validPayload()
			p.Basic.Size = "custom"
			p.Basic.SizeHeight = "60"
			p.Basic.SizeWidth = tc.width

			_, fields := ValidateBannerForm(p, time.Now())
			assert.Contains(t, fieldMessages(fields), tc.message)
		})
	}
}

func TestValidateBannerFormCustomWidthAtLimit(t *testing.T) {
	p := validPayload()
	p.Basic.Size = "custom"
	p.Basic.SizeHeight = "60"
	p.Basic.SizeWidth = "100"

	config, fields := ValidateBannerForm(p, time.Now())
	require.Empty(t, fields)
	require.NotNil(t, config.WidthPercent)
	assert.Equal(t, 100, *config.WidthPercent)
	require.NotNil(t, config.HeightPx)
	assert.Equal(t, 60, *config.HeightPx)
}

func TestValidateBannerFormSpecificScheduleRequiresDateAndTime(t *testing.T) {
	p := validPayload()
	p.Basic.StartType = "specific"
	p.Basic.EndType = "specific"

	_, fields := ValidateBannerForm(p, time.Now())
	messages := fieldMessages(fields)
	assert.Contains(t, messages, "Start date is required when start type is specific")
	assert.Contains(t, messages, "Start time is required when start type is specific")
	assert.Contains(t, messages, "End date is required when end type is specific")
	assert.Contains(t, messages, "End time is required when end type is specific")
}

func TestValidateBannerFormEndDateBeforeStartDate(t *testing.T) {
	p := validPayload()
	p.Basic.StartType = "specific"
	p.Basic.EndType = "specific"
	p.Basic.StartDate = strPtr("2026-06-10")
	p.Basic.StartTime = strPtr("09:00")
	p.Basic.EndDate = strPtr("2026-06-09")
	p.Basic.EndTime = strPtr("18:00")

	_, fields := ValidateBannerForm(p, time.Now())
	assert.Contains(t, fieldMessages(fields), "End date must be after start date")
}

func TestValidateBannerFormSameDayTimeOrdering(t *testing.T) {
	cases := []struct {
		name      string
		startTime string
		endTime   string
		wantErr   bool
	}{
		{"end after start", "09:00", "18:30", false},
		{"end equals start", "09:00", "09:00", true},
		{"end before start", "10:00", "09:30", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validPayload()
			p.Basic.StartType = "specific"
			p.Basic.EndType = "specific"
			p.Basic.StartDate = strPtr("2026-06-10")
			p.Basic.EndDate = strPtr("2026-06-10")
			p.Basic.StartTime = strPtr(tc.startTime)
			p.Basic.EndTime = strPtr(tc.endTime)

			_, fields := ValidateBannerForm(p, time.Now())
			if tc.wantErr {
				assert.Contains(t, fieldMessages(fields), "End time must be after start time")
			} else {
				assert.Empty(t, fields)
			}
		})
	}
}

func TestValidateBannerFormDifferentDatesIgnoreTimeOrdering(t *testing.T) {
	p := validPayload()
	p.Basic.StartType = "specific"
	p.Basic.EndType = "specific"
	p.Basic.StartDate = strPtr("2026-06-10")
	p.Basic.StartTime = strPtr("23:00")
	p.Basic.EndDate = strPtr("2026-06-11")
	p.Basic.EndTime = strPtr("00:30")

	_, fields := ValidateBannerForm(p, time.Now())
	assert.Empty(t, fields)
}

func TestValidateBannerFormSpecificScheduleResolvesInstants(t *testing.T) {
	p := validPayload()
	p.Basic.StartType = "specific"
	p.Basic.EndType = "specific"
	p.Basic.StartDate = strPtr("2026-06-10")
	p.Basic.StartTime = strPtr("09:30")
	p.Basic.EndDate = strPtr("2026-06-12")
	p.Basic.EndTime = strPtr("18:00")

	config, fields := ValidateBannerForm(p, time.Now())
	require.Empty(t, fields)
	assert.Equal(t, time.Date(2026, 6, 10, 9, 30, 0, 0, time.UTC), config.Schedule.Start)
	assert.Equal(t, time.Date(2026, 6, 12, 18, 0, 0, 0, time.UTC), config.Schedule.End)
}

func TestValidateBannerFormTextRules(t *testing.T) {
	p := validPayload()
	p.Text.AnnouncementText = "   "
	p.Text.FontSize = 7

	_, fields := ValidateBannerForm(p, time.Now())
	messages := fieldMessages(fields)
	assert.Contains(t, messages, "Campaign Message is required")
	assert.Contains(t, messages, "Font size must be between 8 and 72")
}

func TestValidateBannerFormFontSizeBounds(t *testing.T) {
	for _, size := range []float64{8, 72} {
		p := validPayload()
		p.Text.FontSize = size
		_, fields := ValidateBannerForm(p, time.Now())
		assert.Empty(t, fields)
	}

	p := validPayload()
	p.Text.FontSize = 73
	_, fields := ValidateBannerForm(p, time.Now())
	assert.Contains(t, fieldMessages(fields), "Font size must be between 8 and 72")
}

func TestValidateBannerFormCTALinkType(t *testing.T) {
	p := validPayload()
	p.CTA.CTAType = "link"
	p.CTA.CTALink = "not a url"

	_, fields := ValidateBannerForm(p, time.Now())
	messages := fieldMessages(fields)
	assert.Contains(t, messages, "CTA text is required for link type")
	assert.Contains(t, messages, "Please enter a valid URL")
}

func TestValidateBannerFormCTABarNeedsOnlyURL(t *testing.T) {
	p := validPayload()
	p.CTA.CTAType = "bar"
	p.CTA.CTALink = "https://example.com/sale"

	_, fields := ValidateBannerForm(p, time.Now())
	assert.Empty(t, fields)
}

func TestValidateBannerFormCTARegularRequiresColors(t *testing.T) {
	p := validPayload()
	p.CTA.CTAType = "regular"
	p.CTA.CTAText = "Shop now"
	p.CTA.CTALink = "https://example.com/sale"

	_, fields := ValidateBannerForm(p, time.Now())
	messages := fieldMessages(fields)
	assert.Contains(t, messages, "Button font color is required")
	assert.Contains(t, messages, "Button background color is required")
}

func TestValidateBannerFormNegativePadding(t *testing.T) {
	p := validPayload()
	p.CTA.Padding.Left = -1

	_, fields := ValidateBannerForm(p, time.Now())
	require.Len(t, fields, 1)
	assert.Equal(t, "Padding must not be negative", fields[0].Message)
	assert.Equal(t, []string{"cta", "padding", "left"}, fields[0].Path)
}

func TestValidateBannerFormAccumulatesAcrossSections(t *testing.T) {
	p := validPayload()
	p.Basic.CampaignTitle = ""
	p.Text.AnnouncementText = ""
	p.Other.CloseButtonPosition = "top"

	_, fields := ValidateBannerForm(p, time.Now())
	messages := fieldMessages(fields)
	assert.Contains(t, messages, "Campaign title is required")
	assert.Contains(t, messages, "Campaign Message is required")
	assert.Contains(t, messages, "Invalid close button position")
}

func TestValidateBannerFormPassesTimingFieldsThrough(t *testing.T) {
	p := validPayload()
	p.Other.DisplayBeforeDelay = "5s"
	p.Other.ShowAfterClosing = "1d"
	p.Other.ShowAfterCTA = "never"
	p.Other.CampaignTiming = "delayed"

	config, fields := ValidateBannerForm(p, time.Now())
	require.Empty(t, fields)
	assert.Equal(t, "5s", config.Other.DisplayBeforeDelay)
	assert.Equal(t, "1d", config.Other.ShowAfterClosing)
	assert.Equal(t, "never", config.Other.ShowAfterCTA)
	assert.Equal(t, "delayed", config.Other.CampaignTiming)
}

func TestValidateBannerFormKeepsExplicitPages(t *testing.T) {
	p := validPayload()
	p.Other.SelectedPages = []string{"^/products", "^/cart$"}

	config, fields := ValidateBannerForm(p, time.Now())
	require.Empty(t, fields)
	assert.Equal(t, []string{"^/products", "^/cart$"}, config.SelectedPages)
}

func TestTimeOfDayMinutes(t *testing.T) {
	cases := []struct {
		clock   string
		minutes int
		ok      bool
	}{
		{"00:00", 0, true},
		{"09:30", 570, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"noon", 0, false},
		{"", 0, false},
	}

	for _, tc := range cases {
		minutes, ok := timeOfDayMinutes(tc.clock)
		assert.Equal(t, tc.ok, ok, tc.clock)
		if tc.ok {
			assert.Equal(t, tc.minutes, minutes, tc.clock)
		}
	}
}
