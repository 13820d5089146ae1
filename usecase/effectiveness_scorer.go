package usecase

import "github.com/argha-paul/youtube-adInsights/domain/model"

// Blend weights for the final effectiveness score
const (
	DefaultEngagementWeight = 0.5
	DefaultSentimentWeight  = 0.5
)

// EffectivenessScorer blends normalized engagement with audience sentiment
// into a single 0-100 effectiveness score.
type EffectivenessScorer struct {
	engagementWeight float64
	sentimentWeight  float64
}

func NewEffectivenessScorer(engagementWeight, sentimentWeight float64) *EffectivenessScorer {
	if engagementWeight == 0 && sentimentWeight == 0 {
		engagementWeight = DefaultEngagementWeight
		sentimentWeight = DefaultSentimentWeight
	}
	return &EffectivenessScorer{engagementWeight: engagementWeight, sentimentWeight: sentimentWeight}
}

// Score normalizes the raw weighted engagement score to 0-100 by a factor of
// 10, maps the positive/negative percentage spread onto 0-100, blends the
// two, and clamps the result to [0, 100].
func (s *EffectivenessScorer) Score(engagement model.EngagementMetrics, sentiment model.SentimentSummary) float64 {
	normalizedEngagement := engagement.AdEffectivenessScore * 10
	if normalizedEngagement > 100 {
		normalizedEngagement = 100
	}

	sentimentTerm := (sentiment.PositivePercentage - sentiment.NegativePercentage + 100) / 2

	score := s.engagementWeight*normalizedEngagement + s.sentimentWeight*sentimentTerm
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
