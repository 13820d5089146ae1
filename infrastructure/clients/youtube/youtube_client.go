package youtube

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/argha-paul/youtube-adInsights/domain/model"
	"github.com/argha-paul/youtube-adInsights/domain/repository"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// Client wraps the YouTube Data API as the pipeline's video and comment
// source. It implements repository.IVideoSource and repository.ICommentSource.
type Client struct {
	service     *youtube.Service
	accessToken string
	oauthConfig *oauth2.Config
	token       *oauth2.Token
	ctx         context.Context
}

// Config represents YouTube API configuration
type Config struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	RedirectURL  string `json:"redirect_url"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	APIKey       string `json:"api_key"`
}

// NewYouTubeClient creates a new YouTube API client. With only an API key it
// runs in read-only mode, which covers everything the analysis pipeline needs.
func NewYouTubeClient(ctx context.Context, config *Config) (*Client, error) {
	if (config.AccessToken == "" || config.RefreshToken == "") && config.APIKey != "" {
		service, err := youtube.NewService(ctx, option.WithAPIKey(config.APIKey))
		if err != nil {
			return nil, fmt.Errorf("failed to create YouTube service with API key: %w", err)
		}
		return &Client{
			service: service,
			ctx:     ctx,
		}, nil
	}

	// Full OAuth2 mode
	oauth2Config := &oauth2.Config{
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		RedirectURL:  config.RedirectURL,
		Scopes: []string{
			youtube.YoutubeReadonlyScope,
			youtube.YoutubeForceSslScope,
		},
		Endpoint: google.Endpoint,
	}

	token := &oauth2.Token{
		AccessToken:  config.AccessToken,
		RefreshToken: config.RefreshToken,
		TokenType:    "Bearer",
		Expiry:       time.Now().Add(-1 * time.Minute), // Force refresh on first use
	}

	httpClient := oauth2Config.Client(ctx, token)
	service, err := youtube.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &Client{
		service:     service,
		accessToken: config.AccessToken,
		oauthConfig: oauth2Config,
		token:       token,
		ctx:         ctx,
	}, nil
}

// GetVideoDetails retrieves snippet, statistics and content details for one
// video. A missing video maps to repository.ErrVideoNotFound.
func (c *Client) GetVideoDetails(ctx context.Context, videoID string) (*model.YouTubeVideo, error) {
	if err := c.refreshTokenIfNeeded(); err != nil {
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}

	call := c.service.Videos.List([]string{"snippet", "statistics", "contentDetails", "status"}).
		Id(videoID).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrVideoNotFound
		}
		return nil, fmt.Errorf("failed to get video details: %w", err)
	}

	if len(response.Items) == 0 {
		return nil, repository.ErrVideoNotFound
	}

	video := c.convertToYouTubeVideo(response.Items[0])
	return &video, nil
}

// GetChannelVideos lists the channel's most recent uploads with full details.
// An unknown channel maps to repository.ErrChannelNotFound.
func (c *Client) GetChannelVideos(ctx context.Context, channelID string, maxResults int64) ([]model.YouTubeVideo, error) {
	if err := c.refreshTokenIfNeeded(); err != nil {
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}

	if maxResults <= 0 {
		maxResults = 10
	}

	call := c.service.Search.List([]string{"id", "snippet"}).
		ChannelId(channelID).
		Type("video").
		Order("date").
		MaxResults(maxResults).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrChannelNotFound
		}
		return nil, fmt.Errorf("failed to get channel videos: %w", err)
	}

	var videoIDs []string
	for _, item := range response.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			videoIDs = append(videoIDs, item.Id.VideoId)
		}
	}

	videos := make([]model.YouTubeVideo, 0, len(videoIDs))
	if len(videoIDs) > 0 {
		videoDetails, err := c.service.Videos.List([]string{"snippet", "statistics", "contentDetails", "status"}).
			Id(strings.Join(videoIDs, ",")).
			Context(ctx).
			Do()
		if err != nil {
			return nil, fmt.Errorf("failed to get video details: %w", err)
		}
		for _, video := range videoDetails.Items {
			videos = append(videos, c.convertToYouTubeVideo(video))
		}
	}

	return videos, nil
}

// GetVideoComments fetches top-level comments ordered by relevance. Videos
// with comments disabled surface as an API error for the caller to degrade on.
func (c *Client) GetVideoComments(ctx context.Context, videoID string, maxResults int64) ([]model.YouTubeComment, error) {
	if err := c.refreshTokenIfNeeded(); err != nil {
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}

	if maxResults <= 0 {
		maxResults = 100
	}

	call := c.service.CommentThreads.List([]string{"snippet"}).
		VideoId(videoID).
		Order("relevance").
		TextFormat("plainText").
		MaxResults(maxResults).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get video comments: %w", err)
	}

	comments := make([]model.YouTubeComment, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Snippet == nil || item.Snippet.TopLevelComment == nil || item.Snippet.TopLevelComment.Snippet == nil {
			continue
		}
		snippet := item.Snippet.TopLevelComment.Snippet
		publishedAt, _ := time.Parse(time.RFC3339, snippet.PublishedAt)
		updatedAt, _ := time.Parse(time.RFC3339, snippet.UpdatedAt)

		comments = append(comments, model.YouTubeComment{
			ID:              item.Snippet.TopLevelComment.Id,
			VideoID:         videoID,
			Text:            snippet.TextDisplay,
			AuthorName:      snippet.AuthorDisplayName,
			AuthorAvatarURL: snippet.AuthorProfileImageUrl,
			LikeCount:       snippet.LikeCount,
			PublishedAt:     publishedAt,
			UpdatedAt:       updatedAt,
		})
	}

	return comments, nil
}

// convertToYouTubeVideo converts a YouTube API video to our model
func (c *Client) convertToYouTubeVideo(video *youtube.Video) model.YouTubeVideo {
	publishedAt, _ := time.Parse(time.RFC3339, video.Snippet.PublishedAt)

	ytVideo := model.YouTubeVideo{
		ID:                   video.Id,
		Title:                video.Snippet.Title,
		Description:          video.Snippet.Description,
		PublishedAt:          publishedAt,
		ChannelID:            video.Snippet.ChannelId,
		ChannelName:          video.Snippet.ChannelTitle,
		CategoryID:           video.Snippet.CategoryId,
		DefaultLanguage:      video.Snippet.DefaultLanguage,
		DefaultAudioLanguage: video.Snippet.DefaultAudioLanguage,
		Tags:                 video.Snippet.Tags,
	}

	if video.Statistics != nil {
		ytVideo.ViewCount = int64(video.Statistics.ViewCount)
		ytVideo.LikeCount = int64(video.Statistics.LikeCount)
		ytVideo.CommentCount = int64(video.Statistics.CommentCount)
		ytVideo.FavoriteCount = int64(video.Statistics.FavoriteCount)
	}

	if video.ContentDetails != nil {
		ytVideo.Duration = video.ContentDetails.Duration
		ytVideo.Definition = video.ContentDetails.Definition
		ytVideo.Dimension = video.ContentDetails.Dimension
		ytVideo.Caption = video.ContentDetails.Caption == "true"
		ytVideo.LicensedContent = video.ContentDetails.LicensedContent
	}

	if video.Snippet.Thumbnails != nil {
		if video.Snippet.Thumbnails.Default != nil {
			ytVideo.Thumbnails.Default.URL = video.Snippet.Thumbnails.Default.Url
			ytVideo.Thumbnails.Default.Width = int(video.Snippet.Thumbnails.Default.Width)
			ytVideo.Thumbnails.Default.Height = int(video.Snippet.Thumbnails.Default.Height)
		}
		if video.Snippet.Thumbnails.Medium != nil {
			ytVideo.Thumbnails.Medium.URL = video.Snippet.Thumbnails.Medium.Url
			ytVideo.Thumbnails.Medium.Width = int(video.Snippet.Thumbnails.Medium.Width)
			ytVideo.Thumbnails.Medium.Height = int(video.Snippet.Thumbnails.Medium.Height)
		}
		if video.Snippet.Thumbnails.High != nil {
			ytVideo.Thumbnails.High.URL = video.Snippet.Thumbnails.High.Url
			ytVideo.Thumbnails.High.Width = int(video.Snippet.Thumbnails.High.Width)
			ytVideo.Thumbnails.High.Height = int(video.Snippet.Thumbnails.High.Height)
		}
	}

	return ytVideo
}

// refreshTokenIfNeeded checks if the token is expired and refreshes it
// automatically. In API key mode there is nothing to do.
func (c *Client) refreshTokenIfNeeded() error {
	if c.oauthConfig == nil || c.token == nil {
		return nil
	}
	if c.token.Expiry.IsZero() || time.Until(c.token.Expiry) < 5*time.Minute {
		newToken, err := c.oauthConfig.TokenSource(c.ctx, c.token).Token()
		if err != nil {
			return fmt.Errorf("failed to refresh token: %w", err)
		}
		c.token = newToken
		c.accessToken = newToken.AccessToken
		httpClient := c.oauthConfig.Client(c.ctx, newToken)
		service, err := youtube.NewService(c.ctx, option.WithHTTPClient(httpClient))
		if err != nil {
			return fmt.Errorf("failed to recreate YouTube service with refreshed token: %w", err)
		}
		c.service = service
	}
	return nil
}

func isNotFound(err error) bool {
	if apiErr, ok := err.(*googleapi.Error); ok {
		return apiErr.Code == 404
	}
	return false
}
