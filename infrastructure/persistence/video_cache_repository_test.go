package persistence

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/argha-paul/youtube-adInsights/domain/model"
	"github.com/stretchr/testify/require"
)

func TestVideoCacheRepository_GetVideo_Hit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repository := NewVideoCacheRepository(db)

	video := model.YouTubeVideo{
		ID:        "vid-1",
		Title:     "Cached video",
		ViewCount: 1000,
		LikeCount: 50,
	}
	raw, err := json.Marshal(&video)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT data, expires_at FROM video_metadata_cache WHERE video_id=$1`)).
		WithArgs("vid-1").
		WillReturnRows(sqlmock.NewRows([]string{"data", "expires_at"}).
			AddRow(raw, time.Now().Add(time.Hour)))

	res, err := repository.GetVideo(context.Background(), "vid-1")

	require.NoError(t, err)
	require.NotNil(t, res)
	require.Equal(t, "Cached video", res.Title)
	require.Equal(t, int64(1000), res.ViewCount)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoCacheRepository_GetVideo_Miss(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repository := NewVideoCacheRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT data, expires_at FROM video_metadata_cache WHERE video_id=$1`)).
		WithArgs("unknown").
		WillReturnRows(sqlmock.NewRows([]string{"data", "expires_at"}))

	res, err := repository.GetVideo(context.Background(), "unknown")

	require.NoError(t, err)
	require.Nil(t, res)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoCacheRepository_GetVideo_ExpiredIsMiss(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repository := NewVideoCacheRepository(db)

	raw, err := json.Marshal(&model.YouTubeVideo{ID: "vid-1"})
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT data, expires_at FROM video_metadata_cache WHERE video_id=$1`)).
		WithArgs("vid-1").
		WillReturnRows(sqlmock.NewRows([]string{"data", "expires_at"}).
			AddRow(raw, time.Now().Add(-time.Minute)))

	res, err := repository.GetVideo(context.Background(), "vid-1")

	require.NoError(t, err)
	require.Nil(t, res)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoCacheRepository_UpsertVideo(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repository := NewVideoCacheRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO video_metadata_cache(video_id, data, expires_at, updated_at)`)).
		WithArgs("vid-1", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repository.UpsertVideo(context.Background(), "vid-1", &model.YouTubeVideo{ID: "vid-1"}, time.Hour)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoCacheRepository_NilDbIsNoop(t *testing.T) {
	repository := NewVideoCacheRepository(nil)

	res, err := repository.GetVideo(context.Background(), "vid-1")
	require.NoError(t, err)
	require.Nil(t, res)

	err = repository.UpsertVideo(context.Background(), "vid-1", &model.YouTubeVideo{}, time.Hour)
	require.NoError(t, err)
}
