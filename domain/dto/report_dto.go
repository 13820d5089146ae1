package dto

import "github.com/argha-paul/youtube-adInsights/domain/model"

// ReportResult is the terminal outcome of a single-video analysis run
type ReportResult struct {
	Success bool                   `json:"success"`
	Report  *model.AdInsightReport `json:"report,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

// BatchItemError records one failed video inside a channel batch
type BatchItemError struct {
	VideoID string `json:"video_id"`
	Error   string `json:"error"`
}

// ChannelBatchResult is the terminal outcome of a channel-level batch run.
// A batch succeeds even when individual videos fail; per-item failures are
// listed in Errors and counted in Failed.
type ChannelBatchResult struct {
	Success   bool                    `json:"success"`
	ChannelID string                  `json:"channel_id"`
	Total     int                     `json:"total"`
	Processed int                     `json:"processed"`
	Failed    int                     `json:"failed"`
	Reports   []model.AdInsightReport `json:"reports"`
	Errors    []BatchItemError        `json:"errors,omitempty"`
	Error     string                  `json:"error,omitempty"`
}

// ReportListRequest represents pagination for listing stored reports
type ReportListRequest struct {
	Page      int    `json:"page,omitempty"`
	PageSize  int    `json:"page_size,omitempty"`
	ChannelID string `json:"channel_id,omitempty"`
}

// ReportListResponse is a page of stored reports
type ReportListResponse struct {
	Total    int64                   `json:"total"`
	Page     int                     `json:"page"`
	PageSize int                     `json:"page_size"`
	Items    []model.AdInsightReport `json:"items"`
}

// SponsorshipRequest represents a direct sponsorship-detection call
type SponsorshipRequest struct {
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// EngagementRequest represents a direct engagement computation over raw counts
type EngagementRequest struct {
	ViewCount    int64 `json:"view_count"`
	LikeCount    int64 `json:"like_count"`
	CommentCount int64 `json:"comment_count"`
}

// SentimentRequest represents a direct sentiment analysis over comment texts
type SentimentRequest struct {
	Comments []CommentInput `json:"comments" binding:"required"`
}

// CommentInput is the minimal comment shape accepted by the sentiment endpoint
type CommentInput struct {
	Text string `json:"text"`
}
