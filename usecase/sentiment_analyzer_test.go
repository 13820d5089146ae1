package usecase_test

import (
	"testing"

	"github.com/argha-paul/youtube-adInsights/domain/model"
	"github.com/argha-paul/youtube-adInsights/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func comments(texts ...string) []model.YouTubeComment {
	out := make([]model.YouTubeComment, 0, len(texts))
	for _, text := range texts {
		out = append(out, model.YouTubeComment{Text: text})
	}
	return out
}

func TestSentimentAnalyzer_Analyze_Empty(t *testing.T) {
	analyzer := usecase.NewSentimentAnalyzer(nil, 0, 0)

	summary := analyzer.Analyze(nil)

	assert.Zero(t, summary.TotalComments)
	assert.Zero(t, summary.AverageSentiment)
	assert.Zero(t, summary.PositivePercentage)
	assert.Zero(t, summary.NegativePercentage)
	assert.Zero(t, summary.NeutralPercentage)
	// Every tracked keyword is present with zero counts
	require.Contains(t, summary.KeywordSentiment, "sponsor")
	assert.Zero(t, summary.KeywordSentiment["sponsor"].Count)
}

func TestSentimentAnalyzer_Analyze_Classification(t *testing.T) {
	analyzer := usecase.NewSentimentAnalyzer(nil, 0, 0)

	summary := analyzer.Analyze(comments(
		"I love this video",
		"This is terrible",
		"Just a comment",
	))

	assert.Equal(t, 3, summary.TotalComments)
	assert.InDelta(t, 33.33, summary.PositivePercentage, 0.01)
	assert.InDelta(t, 33.33, summary.NegativePercentage, 0.01)
	assert.InDelta(t, 33.33, summary.NeutralPercentage, 0.01)
	assert.InDelta(t, 100.0, summary.PositivePercentage+summary.NegativePercentage+summary.NeutralPercentage, 1e-9)
}

func TestSentimentAnalyzer_Analyze_KeywordAggregation(t *testing.T) {
	analyzer := usecase.NewSentimentAnalyzer(nil, 0, 0)

	summary := analyzer.Analyze(comments(
		"I love this sponsor",
		"This sponsor is terrible",
	))

	sponsor := summary.KeywordSentiment["sponsor"]
	assert.Equal(t, 2, sponsor.Count)
	assert.InDelta(t, 0.0, sponsor.AverageSentiment, 1e-9)

	brand := summary.KeywordSentiment["brand"]
	assert.Zero(t, brand.Count)
	assert.Zero(t, brand.AverageSentiment)
}

func TestSentimentAnalyzer_Score(t *testing.T) {
	analyzer := usecase.NewSentimentAnalyzer(nil, 0, 0)

	assert.InDelta(t, 0.25, analyzer.Score("I love this video"), 1e-9)
	assert.InDelta(t, -0.25, analyzer.Score("a terrible idea bro"), 1e-9)
	assert.Zero(t, analyzer.Score("completely neutral words here"))
	assert.Zero(t, analyzer.Score(""))
}

func TestSentimentAnalyzer_Score_StripsPunctuation(t *testing.T) {
	analyzer := usecase.NewSentimentAnalyzer(nil, 0, 0)

	assert.Positive(t, analyzer.Score("love!!"))
	assert.Negative(t, analyzer.Score("terrible, really."))
}

func TestSentimentAnalyzer_Score_Clamped(t *testing.T) {
	analyzer := usecase.NewSentimentAnalyzer(nil, 0, 0)

	assert.InDelta(t, 1.0, analyzer.Score("love awesome"), 1e-9)
	assert.InDelta(t, -1.0, analyzer.Score("hate worst"), 1e-9)
}
