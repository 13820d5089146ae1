package model

import "time"

// YouTubeVideo represents a YouTube video with the snippet, statistics and
// content details the analysis pipeline consumes
type YouTubeVideo struct {
	ID                   string    `json:"id" bson:"id"`
	Title                string    `json:"title" bson:"title"`
	Description          string    `json:"description" bson:"description"`
	PublishedAt          time.Time `json:"published_at" bson:"published_at"`
	ChannelID            string    `json:"channel_id" bson:"channel_id"`
	ChannelName          string    `json:"channel_name" bson:"channel_name"`
	CategoryID           string    `json:"category_id" bson:"category_id"`
	DefaultLanguage      string    `json:"default_language,omitempty" bson:"default_language,omitempty"`
	DefaultAudioLanguage string    `json:"default_audio_language,omitempty" bson:"default_audio_language,omitempty"`
	Tags                 []string  `json:"tags" bson:"tags"`

	// Raw statistics
	ViewCount     int64 `json:"view_count" bson:"view_count"`
	LikeCount     int64 `json:"like_count" bson:"like_count"`
	CommentCount  int64 `json:"comment_count" bson:"comment_count"`
	FavoriteCount int64 `json:"favorite_count" bson:"favorite_count"`

	// Content attributes
	Duration        string `json:"duration" bson:"duration"` // ISO 8601, e.g. PT4M13S
	Definition      string `json:"definition" bson:"definition"`
	Dimension       string `json:"dimension" bson:"dimension"`
	Caption         bool   `json:"caption" bson:"caption"`
	LicensedContent bool   `json:"licensed_content" bson:"licensed_content"`

	Thumbnails struct {
		Default struct {
			URL    string `json:"url" bson:"url"`
			Width  int    `json:"width" bson:"width"`
			Height int    `json:"height" bson:"height"`
		} `json:"default" bson:"default"`
		Medium struct {
			URL    string `json:"url" bson:"url"`
			Width  int    `json:"width" bson:"width"`
			Height int    `json:"height" bson:"height"`
		} `json:"medium" bson:"medium"`
		High struct {
			URL    string `json:"url" bson:"url"`
			Width  int    `json:"width" bson:"width"`
			Height int    `json:"height" bson:"height"`
		} `json:"high" bson:"high"`
	} `json:"thumbnails" bson:"thumbnails"`
}

// YouTubeComment represents a single top-level comment on a video
type YouTubeComment struct {
	ID              string    `json:"id"`
	VideoID         string    `json:"video_id"`
	Text            string    `json:"text"`
	AuthorName      string    `json:"author_name"`
	AuthorAvatarURL string    `json:"author_avatar_url"`
	LikeCount       int64     `json:"like_count"`
	PublishedAt     time.Time `json:"published_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// YouTubeChannel represents a YouTube channel
type YouTubeChannel struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	CustomURL       string    `json:"custom_url"`
	PublishedAt     time.Time `json:"published_at"`
	SubscriberCount int64     `json:"subscriber_count"`
	VideoCount      int64     `json:"video_count"`
	ViewCount       int64     `json:"view_count"`
}
