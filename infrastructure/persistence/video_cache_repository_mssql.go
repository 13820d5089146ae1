package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/argha-paul/youtube-adInsights/domain/model"
)

// EnsureVideoCacheSchemaMSSQL creates the cache table on MSSQL if not exists
func EnsureVideoCacheSchemaMSSQL(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("db is nil")
	}
	ddl := `IF NOT EXISTS (SELECT * FROM sys.objects WHERE object_id = OBJECT_ID(N'dbo.video_metadata_cache') AND type in (N'U'))
BEGIN
    CREATE TABLE dbo.video_metadata_cache (
        video_id NVARCHAR(64) NOT NULL PRIMARY KEY,
        data NVARCHAR(MAX) NOT NULL,
        expires_at DATETIMEOFFSET NOT NULL,
        updated_at DATETIMEOFFSET NOT NULL
    );
END`
	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("create video_metadata_cache table (mssql): %w", err)
	}
	if _, err := db.Exec(`IF NOT EXISTS (SELECT * FROM sys.indexes WHERE name = 'idx_video_metadata_cache_expires_at' AND object_id = OBJECT_ID('dbo.video_metadata_cache'))
CREATE INDEX idx_video_metadata_cache_expires_at ON dbo.video_metadata_cache(expires_at)`); err != nil {
		// Non-fatal
	}
	return nil
}

// VideoCacheRepositoryMSSQL implements repository.IVideoCache on MSSQL
type VideoCacheRepositoryMSSQL struct {
	db *sql.DB
}

func NewVideoCacheRepositoryMSSQL(db *sql.DB) *VideoCacheRepositoryMSSQL {
	return &VideoCacheRepositoryMSSQL{db: db}
}

// GetVideo returns the cached video if not expired
func (r *VideoCacheRepositoryMSSQL) GetVideo(ctx context.Context, videoID string) (*model.YouTubeVideo, error) {
	if r.db == nil {
		return nil, nil
	}
	row := r.db.QueryRowContext(ctx, `SELECT data, expires_at FROM dbo.video_metadata_cache WHERE video_id=@p1`, videoID)
	var raw string
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
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// UpsertVideo stores/updates one row
func (r *VideoCacheRepositoryMSSQL) UpsertVideo(ctx context.Context, videoID string, video *model.YouTubeVideo, ttl time.Duration) error {
	if r.db == nil {
		return nil
	}
	raw, err := json.Marshal(video)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	q := `MERGE dbo.video_metadata_cache AS target
USING (SELECT @p1 AS video_id) AS src
ON (target.video_id = src.video_id)
WHEN MATCHED THEN UPDATE SET data=@p2, expires_at=@p3, updated_at=@p4
WHEN NOT MATCHED THEN INSERT (video_id, data, expires_at, updated_at)
VALUES (@p1, @p2, @p3, @p4);`
	_, err = r.db.ExecContext(ctx, q, videoID, string(raw), now.Add(ttl), now)
	return err
}
