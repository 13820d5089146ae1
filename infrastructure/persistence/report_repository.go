package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/argha-paul/youtube-adInsights/domain/model"
	"github.com/argha-paul/youtube-adInsights/domain/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const reportCollection = "ad_insight_reports"

// ReportRepository persists AdInsightReport documents in MongoDB, one
// document per video, replaced on each analysis run. Implements
// repository.IReportStore.
type ReportRepository struct {
	collection *mongo.Collection
}

func NewReportRepository(db *mongo.Database) *ReportRepository {
	return &ReportRepository{collection: db.Collection(reportCollection)}
}

// Upsert replaces the report for the video, inserting when absent
func (r *ReportRepository) Upsert(ctx context.Context, report *model.AdInsightReport) error {
	filter := bson.D{{Key: "video_id", Value: report.VideoID}}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, filter, report, opts); err != nil {
		return fmt.Errorf("failed to upsert report for video %s: %w", report.VideoID, err)
	}
	return nil
}

// GetByVideoID returns the stored report or repository.ErrReportNotFound
func (r *ReportRepository) GetByVideoID(ctx context.Context, videoID string) (*model.AdInsightReport, error) {
	var report model.AdInsightReport
	err := r.collection.FindOne(ctx, bson.D{{Key: "video_id", Value: videoID}}).Decode(&report)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report for video %s: %w", videoID, err)
	}
	return &report, nil
}

// List returns one page of reports, newest first, optionally filtered by channel
func (r *ReportRepository) List(ctx context.Context, channelID string, limit, offset int) ([]model.AdInsightReport, int64, error) {
	filter := bson.D{}
	if channelID != "" {
		filter = bson.D{{Key: "channel_id", Value: channelID}}
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count reports: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "generated_at", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reports: %w", err)
	}
	defer cursor.Close(ctx)

	reports := make([]model.AdInsightReport, 0, limit)
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, 0, fmt.Errorf("failed to decode reports: %w", err)
	}
	return reports, total, nil
}

// Stats aggregates the stored reports into dashboard counters
func (r *ReportRepository) Stats(ctx context.Context) (*model.ReportStats, error) {
	stats := &model.ReportStats{AdStyleCounts: make(map[string]int64)}

	total, err := r.collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to count reports: %w", err)
	}
	stats.TotalReports = total

	sponsored, err := r.collection.CountDocuments(ctx, bson.D{{Key: "ad_data.has_sponsorship", Value: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to count sponsored reports: %w", err)
	}
	stats.SponsoredCount = sponsored

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$ad_style"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "avg_effectiveness", Value: bson.D{{Key: "$avg", Value: "$ad_effectiveness"}}},
		}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate report stats: %w", err)
	}
	defer cursor.Close(ctx)

	var sum float64
	for cursor.Next(ctx) {
		var row struct {
			Style            string  `bson:"_id"`
			Count            int64   `bson:"count"`
			AvgEffectiveness float64 `bson:"avg_effectiveness"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode stats row: %w", err)
		}
		stats.AdStyleCounts[row.Style] = row.Count
		sum += row.AvgEffectiveness * float64(row.Count)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate stats rows: %w", err)
	}
	if total > 0 {
		stats.AverageEffectiveness = sum / float64(total)
	}
	return stats, nil
}
