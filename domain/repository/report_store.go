package repository

import (
	"context"

	"github.com/argha-paul/youtube-adInsights/domain/model"
)

// IReportStore persists AdInsightReport documents keyed by video ID.
// Upsert must be atomic per key (last write wins).
type IReportStore interface {
	Upsert(ctx context.Context, report *model.AdInsightReport) error
	GetByVideoID(ctx context.Context, videoID string) (*model.AdInsightReport, error)
	List(ctx context.Context, channelID string, limit, offset int) ([]model.AdInsightReport, int64, error)
	Stats(ctx context.Context) (*model.ReportStats, error)
}
