package model

import "time"

// Ad style classification values
const (
	AdStyleLongForm  = "Long-form"
	AdStyleShortForm = "Short-form"
	AdStyleUnknown   = "Unknown"
)

// AIInsightsFailed is stored in a report when the generative service could
// not produce narrative insight; the rest of the report is still valid.
const AIInsightsFailed = "Analysis failed"

// SponsorshipInfo is the result of heuristic sponsorship detection over a
// video's description and tags.
type SponsorshipInfo struct {
	HasSponsorship     bool     `json:"has_sponsorship" bson:"has_sponsorship"`
	SponsorshipDetails string   `json:"sponsorship_details" bson:"sponsorship_details"`
	AdIndicators       []string `json:"ad_indicators" bson:"ad_indicators"`
	DetectedBrands     []string `json:"detected_brands" bson:"detected_brands"`
	// AdDuration is set only when both a start and an end timestamp were
	// parsed and the computed value is non-negative.
	AdDuration *int `json:"ad_duration,omitempty" bson:"ad_duration,omitempty"`
}

// EngagementMetrics holds ratio metrics derived from raw counts. All ratio
// fields are percentages and are 0 when the view count is 0.
// AdEffectivenessScore is the raw weighted engagement score; it is NOT
// bounded to 100 — the blended, bounded score lives on AdInsightReport.
type EngagementMetrics struct {
	LikeToViewRatio       float64 `json:"like_to_view_ratio" bson:"like_to_view_ratio"`
	CommentToViewRatio    float64 `json:"comment_to_view_ratio" bson:"comment_to_view_ratio"`
	OverallEngagementRate float64 `json:"overall_engagement_rate" bson:"overall_engagement_rate"`
	AdEffectivenessScore  float64 `json:"ad_effectiveness_score" bson:"ad_effectiveness_score"`
}

// KeywordSentiment aggregates comment polarity for a single ad-related keyword
type KeywordSentiment struct {
	Count            int     `json:"count" bson:"count"`
	AverageSentiment float64 `json:"average_sentiment" bson:"average_sentiment"`
}

// SentimentSummary is the aggregate of per-comment polarity scoring.
// The three percentage fields sum to 100 (within rounding) when
// TotalComments > 0 and are all 0 otherwise.
type SentimentSummary struct {
	AverageSentiment   float64                     `json:"average_sentiment" bson:"average_sentiment"`
	PositivePercentage float64                     `json:"positive_percentage" bson:"positive_percentage"`
	NegativePercentage float64                     `json:"negative_percentage" bson:"negative_percentage"`
	NeutralPercentage  float64                     `json:"neutral_percentage" bson:"neutral_percentage"`
	TotalComments      int                         `json:"total_comments" bson:"total_comments"`
	KeywordSentiment   map[string]KeywordSentiment `json:"keyword_sentiment" bson:"keyword_sentiment"`
}

// AdData is the sponsorship snapshot embedded in a report
type AdData struct {
	HasSponsorship     bool     `json:"has_sponsorship" bson:"has_sponsorship"`
	SponsorshipDetails string   `json:"sponsorship_details" bson:"sponsorship_details"`
	AdIndicators       []string `json:"ad_indicators" bson:"ad_indicators"`
	DetectedBrands     []string `json:"detected_brands" bson:"detected_brands"`
	AdDuration         *int     `json:"ad_duration,omitempty" bson:"ad_duration,omitempty"`
}

// EngagementSnapshot embeds the ratio metrics plus the raw counts they were
// derived from
type EngagementSnapshot struct {
	ViewCount             int64   `json:"view_count" bson:"view_count"`
	LikeCount             int64   `json:"like_count" bson:"like_count"`
	CommentCount          int64   `json:"comment_count" bson:"comment_count"`
	LikeToViewRatio       float64 `json:"like_to_view_ratio" bson:"like_to_view_ratio"`
	CommentToViewRatio    float64 `json:"comment_to_view_ratio" bson:"comment_to_view_ratio"`
	OverallEngagementRate float64 `json:"overall_engagement_rate" bson:"overall_engagement_rate"`
}

// AdInsightReport is the final analysis artifact, persisted by upsert on
// VideoID. A new analysis run produces a new report; reports handed to
// callers are never mutated afterwards.
type AdInsightReport struct {
	VideoID           string             `json:"video_id" bson:"video_id"`
	Title             string             `json:"title" bson:"title"`
	ChannelID         string             `json:"channel_id" bson:"channel_id"`
	ChannelName       string             `json:"channel_name" bson:"channel_name"`
	AdData            AdData             `json:"ad_data" bson:"ad_data"`
	Engagement        EngagementSnapshot `json:"engagement" bson:"engagement"`
	SentimentAnalysis SentimentSummary   `json:"sentiment_analysis" bson:"sentiment_analysis"`
	AdStyle           string             `json:"ad_style" bson:"ad_style"`
	AdEffectiveness   float64            `json:"ad_effectiveness" bson:"ad_effectiveness"`
	AIInsights        string             `json:"ai_insights" bson:"ai_insights"`
	GeneratedAt       time.Time          `json:"generated_at" bson:"generated_at"`
}

// ReportStats is the aggregate view consumed by dashboards
type ReportStats struct {
	TotalReports         int64            `json:"total_reports" bson:"total_reports"`
	SponsoredCount       int64            `json:"sponsored_count" bson:"sponsored_count"`
	AverageEffectiveness float64          `json:"average_effectiveness" bson:"average_effectiveness"`
	AdStyleCounts        map[string]int64 `json:"ad_style_counts" bson:"ad_style_counts"`
}
