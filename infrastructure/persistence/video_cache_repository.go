package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/argha-paul/youtube-adInsights/domain/model"
	"github.com/argha-paul/youtube-adInsights/infrastructure/logger"
)

// EnsureVideoCacheSchema creates the table for caching video metadata if not exists
func EnsureVideoCacheSchema(db *sql.DB) error {
	ddl := `CREATE TABLE IF NOT EXISTS video_metadata_cache (
        video_id TEXT PRIMARY KEY,
        data JSONB NOT NULL,
        expires_at TIMESTAMPTZ NOT NULL,
        updated_at TIMESTAMPTZ NOT NULL
    )`
	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("create video_metadata_cache table: %w", err)
	}

	// Helpful index to purge or check expiry
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_video_metadata_cache_expires_at ON video_metadata_cache(expires_at)`); err != nil {
		logger.GetLogger().WithField("error", err).Warn("failed creating idx_video_metadata_cache_expires_at")
	}

	return nil
}

// VideoCacheRepository caches video metadata as JSONB with a TTL so repeated
// report runs do not re-hit the YouTube API. Implements repository.IVideoCache.
type VideoCacheRepository struct{ db *sql.DB }

func NewVideoCacheRepository(db *sql.DB) *VideoCacheRepository {
	return &VideoCacheRepository{db: db}
}

// GetVideo returns the cached video if present and not expired; an expired or
// missing row is a miss (nil, nil)
func (r *VideoCacheRepository) GetVideo(ctx context.Context, videoID string) (*model.YouTubeVideo, error) {
	if r.db == nil {
		return nil, nil
	}
	row := r.db.QueryRowContext(ctx, `SELECT data, expires_at FROM video_metadata_cache WHERE video_id=$1`, videoID)
	var raw []byte
	var expiresAt time.Time
	if err := row.Scan(&raw, &expiresAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if time.Now().After(expiresAt) {
		return nil, nil
	}
	var v model.YouTubeVideo
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// UpsertVideo stores or updates the cache row with TTL from now
func (r *VideoCacheRepository) UpsertVideo(ctx context.Context, videoID string, video *model.YouTubeVideo, ttl time.Duration) error {
	if r.db == nil {
		return nil
	}
	raw, err := json.Marshal(video)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	q := `INSERT INTO video_metadata_cache(video_id, data, expires_at, updated_at)
          VALUES ($1,$2,$3,$4)
          ON CONFLICT (video_id) DO UPDATE SET data=EXCLUDED.data, expires_at=EXCLUDED.expires_at, updated_at=EXCLUDED.updated_at`
	_, err = r.db.ExecContext(ctx, q, videoID, raw, now.Add(ttl), now)
	return err
}
