package repository

import (
	"context"
	"time"

	"github.com/argha-paul/youtube-adInsights/domain/model"
)

// IVideoCache caches fetched video metadata with a TTL so repeated report
// runs do not burn YouTube API quota. A nil video with nil error is a miss.
type IVideoCache interface {
	GetVideo(ctx context.Context, videoID string) (*model.YouTubeVideo, error)
	UpsertVideo(ctx context.Context, videoID string, video *model.YouTubeVideo, ttl time.Duration) error
}

// ICommentCache caches comment pages with a short TTL. Best-effort: errors
// are logged by callers, never fatal.
type ICommentCache interface {
	GetComments(ctx context.Context, videoID string) ([]model.YouTubeComment, error)
	SetComments(ctx context.Context, videoID string, comments []model.YouTubeComment, ttl time.Duration) error
}
