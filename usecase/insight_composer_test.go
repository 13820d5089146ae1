package usecase_test

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/argha-paul/youtube-adInsights/domain/model"
	"github.com/argha-paul/youtube-adInsights/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockInsightGenerator struct {
	mock.Mock
}

func (m *MockInsightGenerator) GenerateInsights(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func newComposer(generator *MockInsightGenerator) *usecase.InsightComposer {
	analyzer := usecase.NewSentimentAnalyzer(nil, 0, 0)
	scorer := usecase.NewEffectivenessScorer(0, 0)
	return usecase.NewInsightComposer(generator, analyzer, scorer, 0)
}

func sponsoredVideo() *model.YouTubeVideo {
	return &model.YouTubeVideo{
		ID:          "vid-1",
		Title:       "Honest review",
		Description: "Thanks to Acme for sponsoring!",
		Tags:        []string{"review"},
	}
}

func TestInsightComposer_Compose(t *testing.T) {
	generator := new(MockInsightGenerator)
	generator.On("GenerateInsights", mock.Anything, mock.AnythingOfType("string")).
		Return("Reads like a short-form ad placement.", nil).
		Once()

	composer := newComposer(generator)
	insight := composer.Compose(context.Background(), usecase.AnalyzedVideo{
		Video:       sponsoredVideo(),
		Sponsorship: model.SponsorshipInfo{HasSponsorship: true},
		Engagement:  model.EngagementMetrics{AdEffectivenessScore: 3.8},
	}, comments("I love this video"))

	assert.Equal(t, "Reads like a short-form ad placement.", insight.AIInsights)
	assert.Equal(t, model.AdStyleShortForm, insight.AdStyle)
	assert.Equal(t, 1, insight.Sentiment.TotalComments)
	assert.Positive(t, insight.AdEffectiveness)
	assert.False(t, insight.LastAnalyzed.IsZero())
	generator.AssertExpectations(t)
}

func TestInsightComposer_Compose_PromptContents(t *testing.T) {
	generator := new(MockInsightGenerator)
	generator.On("GenerateInsights", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "Honest review") &&
			strings.Contains(prompt, "Thanks to Acme for sponsoring!") &&
			strings.Contains(prompt, "Has sponsorship: true") &&
			strings.Contains(prompt, "I love this video")
	})).Return("ok", nil).Once()

	composer := newComposer(generator)
	composer.Compose(context.Background(), usecase.AnalyzedVideo{
		Video:       sponsoredVideo(),
		Sponsorship: model.SponsorshipInfo{HasSponsorship: true},
	}, comments("I love this video"))

	generator.AssertExpectations(t)
}

func TestInsightComposer_Compose_TruncatesDescriptionOnRuneBoundary(t *testing.T) {
	generator := new(MockInsightGenerator)
	generator.On("GenerateInsights", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return utf8.ValidString(prompt) && strings.Contains(prompt, "...")
	})).Return("ok", nil).Once()

	// 1200 multi-byte runes; a byte-wise cut at 1000 would split one
	video := sponsoredVideo()
	video.Description = strings.Repeat("é", 1200)

	composer := newComposer(generator)
	composer.Compose(context.Background(), usecase.AnalyzedVideo{
		Video:       video,
		Sponsorship: model.SponsorshipInfo{HasSponsorship: true},
	}, nil)

	generator.AssertExpectations(t)
}

func TestInsightComposer_Compose_GeneratorFailure(t *testing.T) {
	generator := new(MockInsightGenerator)
	generator.On("GenerateInsights", mock.Anything, mock.AnythingOfType("string")).
		Return("", assert.AnError).
		Once()

	composer := newComposer(generator)
	insight := composer.Compose(context.Background(), usecase.AnalyzedVideo{
		Video:       sponsoredVideo(),
		Sponsorship: model.SponsorshipInfo{HasSponsorship: true},
		Engagement:  model.EngagementMetrics{AdEffectivenessScore: 3.8},
	}, comments("I love this video"))

	assert.Equal(t, model.AIInsightsFailed, insight.AIInsights)
	assert.Equal(t, model.AdStyleUnknown, insight.AdStyle)
	assert.Zero(t, insight.AdEffectiveness)
	assert.Zero(t, insight.Sentiment.TotalComments)
	assert.Zero(t, insight.Sentiment.PositivePercentage)
	generator.AssertExpectations(t)
}

func TestInsightComposer_AdStyle_DurationWins(t *testing.T) {
	generator := new(MockInsightGenerator)
	generator.On("GenerateInsights", mock.Anything, mock.AnythingOfType("string")).
		Return("Definitely a short-form spot.", nil)

	composer := newComposer(generator)

	long := 90
	insight := composer.Compose(context.Background(), usecase.AnalyzedVideo{
		Video:       sponsoredVideo(),
		Sponsorship: model.SponsorshipInfo{HasSponsorship: true, AdDuration: &long},
	}, nil)
	assert.Equal(t, model.AdStyleLongForm, insight.AdStyle)

	short := 30
	insight = composer.Compose(context.Background(), usecase.AnalyzedVideo{
		Video:       sponsoredVideo(),
		Sponsorship: model.SponsorshipInfo{HasSponsorship: true, AdDuration: &short},
	}, nil)
	assert.Equal(t, model.AdStyleShortForm, insight.AdStyle)
}

func TestInsightComposer_AdStyle_NoSponsorship(t *testing.T) {
	generator := new(MockInsightGenerator)
	generator.On("GenerateInsights", mock.Anything, mock.AnythingOfType("string")).
		Return("Looks like long-form content.", nil).
		Once()

	composer := newComposer(generator)
	insight := composer.Compose(context.Background(), usecase.AnalyzedVideo{
		Video:       sponsoredVideo(),
		Sponsorship: model.SponsorshipInfo{HasSponsorship: false},
	}, nil)

	assert.Equal(t, model.AdStyleUnknown, insight.AdStyle)
}
