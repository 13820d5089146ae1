package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/argha-paul/youtube-adInsights/domain/dto"
	"github.com/argha-paul/youtube-adInsights/domain/model"
	"github.com/argha-paul/youtube-adInsights/domain/repository"
	"github.com/argha-paul/youtube-adInsights/infrastructure/logger"
)

// Pipeline defaults, overridable through the With* options
const (
	DefaultVideoCacheTTL   = time.Hour
	DefaultCommentCacheTTL = 10 * time.Minute
	DefaultMaxComments     = 100
	DefaultBatchSize       = 10
	DefaultPageSize        = 20
	MaxPageSize            = 100
)

// IReportPublisher broadcasts a freshly generated report to a message broker.
// Publishing is best-effort; failures never affect the pipeline result.
type IReportPublisher interface {
	PublishReportGenerated(ctx context.Context, report *model.AdInsightReport) error
}

// IReportUseCase is the analysis engine surface consumed by the HTTP layer
// and the background refresher.
type IReportUseCase interface {
	GenerateReport(ctx context.Context, videoID string) *dto.ReportResult
	GenerateChannelReports(ctx context.Context, channelID string) *dto.ChannelBatchResult
	ListReports(ctx context.Context, req dto.ReportListRequest) (*dto.ReportListResponse, error)
	GetReport(ctx context.Context, videoID string) (*model.AdInsightReport, error)
	GetStats(ctx context.Context) (*model.ReportStats, error)
	DetectSponsorship(description string, tags []string) model.SponsorshipInfo
	ComputeEngagement(viewCount, likeCount, commentCount int64) model.EngagementMetrics
	AnalyzeSentiment(comments []model.YouTubeComment) model.SentimentSummary
}

// ReportUseCase runs the per-video pipeline: fetch, detect, measure, compose,
// assemble, persist. Channel batches run the same pipeline sequentially with
// per-video failure isolation.
type ReportUseCase struct {
	videoSource   repository.IVideoSource
	commentSource repository.ICommentSource
	store         repository.IReportStore
	detector      *SponsorshipDetector
	calculator    *EngagementCalculator
	analyzer      *SentimentAnalyzer
	composer      *InsightComposer

	videoCache   repository.IVideoCache
	commentCache repository.ICommentCache
	publishers   []IReportPublisher

	videoCacheTTL   time.Duration
	commentCacheTTL time.Duration
	maxComments     int64
	batchSize       int64
}

func NewReportUseCase(
	videoSource repository.IVideoSource,
	commentSource repository.ICommentSource,
	store repository.IReportStore,
	detector *SponsorshipDetector,
	calculator *EngagementCalculator,
	analyzer *SentimentAnalyzer,
	composer *InsightComposer,
) *ReportUseCase {
	return &ReportUseCase{
		videoSource:     videoSource,
		commentSource:   commentSource,
		store:           store,
		detector:        detector,
		calculator:      calculator,
		analyzer:        analyzer,
		composer:        composer,
		videoCacheTTL:   DefaultVideoCacheTTL,
		commentCacheTTL: DefaultCommentCacheTTL,
		maxComments:     DefaultMaxComments,
		batchSize:       DefaultBatchSize,
	}
}

// WithVideoCache attaches a metadata cache consulted before the video source
func (u *ReportUseCase) WithVideoCache(cache repository.IVideoCache, ttl time.Duration) *ReportUseCase {
	u.videoCache = cache
	if ttl > 0 {
		u.videoCacheTTL = ttl
	}
	return u
}

// WithCommentCache attaches a comment cache consulted before the comment source
func (u *ReportUseCase) WithCommentCache(cache repository.ICommentCache, ttl time.Duration) *ReportUseCase {
	u.commentCache = cache
	if ttl > 0 {
		u.commentCacheTTL = ttl
	}
	return u
}

// WithPublisher registers a broker notified after a successful persist
func (u *ReportUseCase) WithPublisher(publisher IReportPublisher) *ReportUseCase {
	u.publishers = append(u.publishers, publisher)
	return u
}

// WithLimits overrides the comment fetch cap and the channel batch size
func (u *ReportUseCase) WithLimits(maxComments, batchSize int64) *ReportUseCase {
	if maxComments > 0 {
		u.maxComments = maxComments
	}
	if batchSize > 0 {
		u.batchSize = batchSize
	}
	return u
}

// GenerateReport runs the full pipeline for one video. Metadata fetch
// failures abort the run; comment fetch, insight generation, persistence and
// event publishing all degrade without failing it.
func (u *ReportUseCase) GenerateReport(ctx context.Context, videoID string) *dto.ReportResult {
	video, err := u.fetchVideo(ctx, videoID)
	if err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return &dto.ReportResult{Error: "Video not found"}
		}
		logger.GetLogger().WithField("error", err).WithField("videoId", videoID).Error("video fetch failed")
		return &dto.ReportResult{Error: err.Error()}
	}

	sponsorship := u.detector.Detect(video.Description, video.Tags)
	engagement := u.calculator.Compute(video.ViewCount, video.LikeCount, video.CommentCount)
	comments := u.fetchComments(ctx, videoID)

	insight := u.composer.Compose(ctx, AnalyzedVideo{
		Video:       video,
		Sponsorship: sponsorship,
		Engagement:  engagement,
	}, comments)

	report := assembleReport(video, sponsorship, engagement, insight)

	if err := u.store.Upsert(ctx, report); err != nil {
		logger.GetLogger().WithField("error", err).WithField("videoId", videoID).Error("report persist failed")
	} else {
		u.publish(ctx, report)
	}

	return &dto.ReportResult{Success: true, Report: report}
}

// GenerateChannelReports fetches the channel's recent uploads and runs the
// per-video pipeline for each, sequentially. One video's failure never stops
// the batch.
func (u *ReportUseCase) GenerateChannelReports(ctx context.Context, channelID string) *dto.ChannelBatchResult {
	videos, err := u.videoSource.GetChannelVideos(ctx, channelID, u.batchSize)
	if err != nil {
		if errors.Is(err, repository.ErrChannelNotFound) {
			return &dto.ChannelBatchResult{ChannelID: channelID, Error: "Channel not found"}
		}
		logger.GetLogger().WithField("error", err).WithField("channelId", channelID).Error("channel videos fetch failed")
		return &dto.ChannelBatchResult{ChannelID: channelID, Error: err.Error()}
	}
	if len(videos) == 0 {
		return &dto.ChannelBatchResult{ChannelID: channelID, Error: "No videos found for channel"}
	}

	result := &dto.ChannelBatchResult{
		Success:   true,
		ChannelID: channelID,
		Total:     len(videos),
		Reports:   []model.AdInsightReport{},
	}

	for _, video := range videos {
		itemResult := u.GenerateReport(ctx, video.ID)
		if itemResult.Success {
			result.Processed++
			result.Reports = append(result.Reports, *itemResult.Report)
			continue
		}
		result.Failed++
		result.Errors = append(result.Errors, dto.BatchItemError{VideoID: video.ID, Error: itemResult.Error})
	}

	return result
}

// ListReports returns one page of stored reports, newest first
func (u *ReportUseCase) ListReports(ctx context.Context, req dto.ReportListRequest) (*dto.ReportListResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	items, total, err := u.store.List(ctx, req.ChannelID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.AdInsightReport{}
	}

	return &dto.ReportListResponse{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		Items:    items,
	}, nil
}

func (u *ReportUseCase) GetReport(ctx context.Context, videoID string) (*model.AdInsightReport, error) {
	return u.store.GetByVideoID(ctx, videoID)
}

func (u *ReportUseCase) GetStats(ctx context.Context) (*model.ReportStats, error) {
	return u.store.Stats(ctx)
}

// DetectSponsorship exposes the detector for direct analysis calls
func (u *ReportUseCase) DetectSponsorship(description string, tags []string) model.SponsorshipInfo {
	return u.detector.Detect(description, tags)
}

// ComputeEngagement exposes the calculator for direct analysis calls
func (u *ReportUseCase) ComputeEngagement(viewCount, likeCount, commentCount int64) model.EngagementMetrics {
	return u.calculator.Compute(viewCount, likeCount, commentCount)
}

// AnalyzeSentiment exposes the analyzer for direct analysis calls
func (u *ReportUseCase) AnalyzeSentiment(comments []model.YouTubeComment) model.SentimentSummary {
	return u.analyzer.Analyze(comments)
}

func (u *ReportUseCase) fetchVideo(ctx context.Context, videoID string) (*model.YouTubeVideo, error) {
	if u.videoCache != nil {
		cached, err := u.videoCache.GetVideo(ctx, videoID)
		if err != nil {
			logger.GetLogger().WithField("error", err).WithField("videoId", videoID).Warn("video cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	video, err := u.videoSource.GetVideoDetails(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if u.videoCache != nil {
		if err := u.videoCache.UpsertVideo(ctx, videoID, video, u.videoCacheTTL); err != nil {
			logger.GetLogger().WithField("error", err).WithField("videoId", videoID).Warn("video cache write failed")
		}
	}
	return video, nil
}

// fetchComments is best-effort: any failure yields an empty comment set
func (u *ReportUseCase) fetchComments(ctx context.Context, videoID string) []model.YouTubeComment {
	if u.commentCache != nil {
		cached, err := u.commentCache.GetComments(ctx, videoID)
		if err != nil {
			logger.GetLogger().WithField("error", err).WithField("videoId", videoID).Warn("comment cache read failed")
		} else if cached != nil {
			return cached
		}
	}

	comments, err := u.commentSource.GetVideoComments(ctx, videoID, u.maxComments)
	if err != nil {
		logger.GetLogger().WithField("error", err).WithField("videoId", videoID).Warn("comment fetch failed, continuing without comments")
		return nil
	}

	if u.commentCache != nil && len(comments) > 0 {
		if err := u.commentCache.SetComments(ctx, videoID, comments, u.commentCacheTTL); err != nil {
			logger.GetLogger().WithField("error", err).WithField("videoId", videoID).Warn("comment cache write failed")
		}
	}
	return comments
}

func (u *ReportUseCase) publish(ctx context.Context, report *model.AdInsightReport) {
	for _, publisher := range u.publishers {
		if err := publisher.PublishReportGenerated(ctx, report); err != nil {
			logger.GetLogger().WithField("error", err).WithField("videoId", report.VideoID).Warn("report event publish failed")
		}
	}
}

func assembleReport(video *model.YouTubeVideo, sponsorship model.SponsorshipInfo, engagement model.EngagementMetrics, insight Insight) *model.AdInsightReport {
	return &model.AdInsightReport{
		VideoID:     video.ID,
		Title:       video.Title,
		ChannelID:   video.ChannelID,
		ChannelName: video.ChannelName,
		AdData: model.AdData{
			HasSponsorship:     sponsorship.HasSponsorship,
			SponsorshipDetails: sponsorship.SponsorshipDetails,
			AdIndicators:       sponsorship.AdIndicators,
			DetectedBrands:     sponsorship.DetectedBrands,
			AdDuration:         sponsorship.AdDuration,
		},
		Engagement: model.EngagementSnapshot{
			ViewCount:             video.ViewCount,
			LikeCount:             video.LikeCount,
			CommentCount:          video.CommentCount,
			LikeToViewRatio:       engagement.LikeToViewRatio,
			CommentToViewRatio:    engagement.CommentToViewRatio,
			OverallEngagementRate: engagement.OverallEngagementRate,
		},
		SentimentAnalysis: insight.Sentiment,
		AdStyle:           insight.AdStyle,
		AdEffectiveness:   insight.AdEffectiveness,
		AIInsights:        insight.AIInsights,
		GeneratedAt:       insight.LastAnalyzed,
	}
}
