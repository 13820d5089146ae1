package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/argha-paul/youtube-adInsights/domain/model"

	"github.com/redis/go-redis/v9"
)

const commentKeyPrefix = "comments:"

// CommentCache stores fetched comment pages in Redis with a short TTL.
// Implements repository.ICommentCache. A nil client degrades to a no-op so
// the pipeline runs without Redis.
type CommentCache struct {
	client *redis.Client
}

func NewCommentCache(client *redis.Client) *CommentCache {
	return &CommentCache{client: client}
}

// GetComments returns the cached comments or (nil, nil) on a miss
func (c *CommentCache) GetComments(ctx context.Context, videoID string) ([]model.YouTubeComment, error) {
	if c.client == nil {
		return nil, nil
	}
	raw, err := c.client.Get(ctx, commentKeyPrefix+videoID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var comments []model.YouTubeComment
	if err := json.Unmarshal(raw, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// SetComments stores the comments with the given TTL
func (c *CommentCache) SetComments(ctx context.Context, videoID string, comments []model.YouTubeComment, ttl time.Duration) error {
	if c.client == nil {
		return nil
	}
	raw, err := json.Marshal(comments)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, commentKeyPrefix+videoID, raw, ttl).Err()
}
