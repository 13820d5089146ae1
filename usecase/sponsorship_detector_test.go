package usecase_test

import (
	"testing"

	"github.com/argha-paul/youtube-adInsights/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSponsorshipDetector_Detect_DescriptionPhrases(t *testing.T) {
	detector := usecase.NewSponsorshipDetector(nil)

	info := detector.Detect("Big thanks to Acme® for sponsoring this video!", nil)

	assert.True(t, info.HasSponsorship)
	assert.Contains(t, info.AdIndicators, "sponsor")
	assert.Contains(t, info.AdIndicators, "thanks to")
	assert.Contains(t, info.DetectedBrands, "Acme")
	assert.Contains(t, info.SponsorshipDetails, "Big thanks to Acme® for sponsoring this video")
}

func TestSponsorshipDetector_Detect_Clean(t *testing.T) {
	detector := usecase.NewSponsorshipDetector(nil)

	info := detector.Detect("Just a regular vlog about my day.", []string{"vlog", "daily"})

	assert.False(t, info.HasSponsorship)
	assert.Empty(t, info.SponsorshipDetails)
	// Slices are non-nil even when empty so callers can range and marshal
	assert.NotNil(t, info.AdIndicators)
	assert.NotNil(t, info.DetectedBrands)
	assert.Len(t, info.AdIndicators, 0)
	assert.Nil(t, info.AdDuration)
}

func TestSponsorshipDetector_Detect_Tags(t *testing.T) {
	detector := usecase.NewSponsorshipDetector(nil)

	info := detector.Detect("Nothing suspicious here.", []string{"sponsored content", "TechBrand"})

	assert.True(t, info.HasSponsorship)
	assert.Contains(t, info.AdIndicators, "sponsor")
	assert.Contains(t, info.DetectedBrands, "TechBrand")
}

func TestSponsorshipDetector_Detect_ShortOrLowercaseTagsAreNotBrands(t *testing.T) {
	detector := usecase.NewSponsorshipDetector(nil)

	info := detector.Detect("", []string{"Abc", "techbrand"})

	assert.NotContains(t, info.DetectedBrands, "Abc")
	assert.NotContains(t, info.DetectedBrands, "techbrand")
}

func TestSponsorshipDetector_Detect_TimestampDuration(t *testing.T) {
	detector := usecase.NewSponsorshipDetector(nil)

	info := detector.Detect("Skip 1:00 - 2:30 sponsored segment if you want.", nil)

	assert.True(t, info.HasSponsorship)
	assert.Contains(t, info.AdIndicators, "timestamp marker")
	require.NotNil(t, info.AdDuration)
	assert.Equal(t, 90, *info.AdDuration)
}

func TestSponsorshipDetector_Detect_TimestampWithoutEnd(t *testing.T) {
	detector := usecase.NewSponsorshipDetector(nil)

	info := detector.Detect("The 2:15 ad is easy to skip.", nil)

	assert.True(t, info.HasSponsorship)
	assert.Contains(t, info.SponsorshipDetails, "Ad segment referenced at 2:15")
	assert.Nil(t, info.AdDuration)
}

func TestSponsorshipDetector_Detect_IsDeterministic(t *testing.T) {
	detector := usecase.NewSponsorshipDetector(nil)
	description := "Use code SAVE10, big thanks to Acme and NordPass™!"
	tags := []string{"Sponsored", "TechBrand"}

	first := detector.Detect(description, tags)
	second := detector.Detect(description, tags)

	assert.Equal(t, first, second)
}

func TestParseTimestamp(t *testing.T) {
	cases := []struct {
		input   string
		seconds int
		ok      bool
	}{
		{"90", 90, true},
		{"1:30", 90, true},
		{"1:00:30", 3630, true},
		{" 2:15 ", 135, true},
		{"0:00", 0, true},
		{"abc", 0, false},
		{"1:2:3:4", 0, false},
		{"-5", 0, false},
		{"1:-30", 0, false},
		{"", 0, false},
	}

	for _, tc := range cases {
		seconds, ok := usecase.ParseTimestamp(tc.input)
		assert.Equal(t, tc.ok, ok, "input %q", tc.input)
		assert.Equal(t, tc.seconds, seconds, "input %q", tc.input)
	}
}

func TestExtractBrands(t *testing.T) {
	brands := usecase.ExtractBrands("Sponsored by Acme and NordPass™, check nordpass.com!")

	assert.Contains(t, brands, "Acme")
	assert.Contains(t, brands, "NordPass")
	assert.Contains(t, brands, "Sponsored")
	assert.NotContains(t, brands, "and")
}

func TestExtractBrands_TrademarkRun(t *testing.T) {
	brands := usecase.ExtractBrands("try XYZ123® today")

	assert.Contains(t, brands, "XYZ123")
}
