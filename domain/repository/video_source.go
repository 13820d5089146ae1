package repository

import (
	"context"

	"github.com/argha-paul/youtube-adInsights/domain/model"
)

// IVideoSource defines the video platform collaborator. Implementations
// return ErrVideoNotFound / ErrChannelNotFound when the upstream reports
// absence, and any other error for transport or quota failures.
type IVideoSource interface {
	GetVideoDetails(ctx context.Context, videoID string) (*model.YouTubeVideo, error)
	GetChannelVideos(ctx context.Context, channelID string, maxResults int64) ([]model.YouTubeVideo, error)
}

// ICommentSource defines the comment collaborator. Ordering is most relevant
// first; an empty slice is a valid result.
type ICommentSource interface {
	GetVideoComments(ctx context.Context, videoID string, maxResults int64) ([]model.YouTubeComment, error)
}
