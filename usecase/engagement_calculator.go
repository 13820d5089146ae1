package usecase

import "github.com/argha-paul/youtube-adInsights/domain/model"

// Default weights for the raw weighted engagement score. Likes dominate
// because a like is a cheaper action than a comment at comparable reach.
const (
	DefaultLikeWeight    = 0.7
	DefaultCommentWeight = 0.3
)

// EngagementCalculator derives percentage ratios and a raw weighted score
// from view, like and comment counts.
type EngagementCalculator struct {
	likeWeight    float64
	commentWeight float64
}

func NewEngagementCalculator(likeWeight, commentWeight float64) *EngagementCalculator {
	if likeWeight == 0 && commentWeight == 0 {
		likeWeight = DefaultLikeWeight
		commentWeight = DefaultCommentWeight
	}
	return &EngagementCalculator{likeWeight: likeWeight, commentWeight: commentWeight}
}

// Compute returns all-zero metrics when viewCount is zero or negative.
// AdEffectivenessScore is the raw weighted sum of the two ratios and is
// intentionally unbounded; normalization happens at scoring time.
func (c *EngagementCalculator) Compute(viewCount, likeCount, commentCount int64) model.EngagementMetrics {
	if viewCount <= 0 {
		return model.EngagementMetrics{}
	}

	views := float64(viewCount)
	likeToView := float64(likeCount) / views * 100
	commentToView := float64(commentCount) / views * 100

	return model.EngagementMetrics{
		LikeToViewRatio:       likeToView,
		CommentToViewRatio:    commentToView,
		OverallEngagementRate: float64(likeCount+commentCount) / views * 100,
		AdEffectivenessScore:  c.likeWeight*likeToView + c.commentWeight*commentToView,
	}
}
