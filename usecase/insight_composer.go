package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/argha-paul/youtube-adInsights/domain/model"
	"github.com/argha-paul/youtube-adInsights/domain/repository"
	"github.com/argha-paul/youtube-adInsights/infrastructure/logger"
)

// DefaultLongFormSeconds is the ad duration above which a detected ad
// segment is classified as Long-form.
const DefaultLongFormSeconds = 60

const maxPromptDescription = 1000

const maxPromptComments = 5

// AnalyzedVideo bundles a video with its locally computed analysis, ready
// for narrative insight composition.
type AnalyzedVideo struct {
	Video       *model.YouTubeVideo
	Sponsorship model.SponsorshipInfo
	Engagement  model.EngagementMetrics
}

// Insight is the composed AI layer of a report
type Insight struct {
	AIInsights      string
	AdStyle         string
	AdEffectiveness float64
	Sentiment       model.SentimentSummary
	LastAnalyzed    time.Time
}

// InsightComposer asks the generative collaborator for narrative insight and
// derives ad style, sentiment and the final effectiveness score. A generator
// failure degrades the insight layer without failing the pipeline.
type InsightComposer struct {
	generator       repository.IInsightGenerator
	analyzer        *SentimentAnalyzer
	scorer          *EffectivenessScorer
	longFormSeconds int
}

func NewInsightComposer(generator repository.IInsightGenerator, analyzer *SentimentAnalyzer, scorer *EffectivenessScorer, longFormSeconds int) *InsightComposer {
	if longFormSeconds <= 0 {
		longFormSeconds = DefaultLongFormSeconds
	}
	return &InsightComposer{
		generator:       generator,
		analyzer:        analyzer,
		scorer:          scorer,
		longFormSeconds: longFormSeconds,
	}
}

// Compose builds the prompt, calls the generator and assembles the insight
// layer. When the generator fails the returned Insight carries the failure
// marker, Unknown ad style, zero effectiveness and an all-zero sentiment
// summary.
func (c *InsightComposer) Compose(ctx context.Context, analyzed AnalyzedVideo, comments []model.YouTubeComment) Insight {
	prompt := c.buildPrompt(analyzed, comments)

	reply, err := c.generator.GenerateInsights(ctx, prompt)
	if err != nil {
		logger.GetLogger().WithField("error", err).WithField("videoId", analyzed.Video.ID).Error("insight generation failed")
		return Insight{
			AIInsights:   model.AIInsightsFailed,
			AdStyle:      model.AdStyleUnknown,
			Sentiment:    c.analyzer.Analyze(nil),
			LastAnalyzed: time.Now(),
		}
	}

	sentiment := c.analyzer.Analyze(comments)
	return Insight{
		AIInsights:      reply,
		AdStyle:         c.resolveAdStyle(analyzed.Sponsorship, reply),
		AdEffectiveness: c.scorer.Score(analyzed.Engagement, sentiment),
		Sentiment:       sentiment,
		LastAnalyzed:    time.Now(),
	}
}

func (c *InsightComposer) buildPrompt(analyzed AnalyzedVideo, comments []model.YouTubeComment) string {
	video := analyzed.Video

	description := video.Description
	// Truncate on rune boundaries; a byte slice could split a multi-byte
	// character and feed the generator invalid UTF-8.
	if runes := []rune(description); len(runes) > maxPromptDescription {
		description = string(runes[:maxPromptDescription]) + "..."
	}

	var sb strings.Builder
	sb.WriteString("Analyze this YouTube video for advertisement insights:\n\n")
	fmt.Fprintf(&sb, "Title: %s\n", video.Title)
	fmt.Fprintf(&sb, "Description: %s\n", description)
	fmt.Fprintf(&sb, "Tags: %s\n", strings.Join(video.Tags, ", "))
	fmt.Fprintf(&sb, "Has sponsorship: %t\n", analyzed.Sponsorship.HasSponsorship)
	if analyzed.Sponsorship.SponsorshipDetails != "" {
		fmt.Fprintf(&sb, "Sponsorship details: %s\n", analyzed.Sponsorship.SponsorshipDetails)
	}
	fmt.Fprintf(&sb, "Overall engagement rate: %.2f%%\n", analyzed.Engagement.OverallEngagementRate)

	if len(comments) > 0 {
		sb.WriteString("\nSample comments:\n")
		for i, comment := range comments {
			if i >= maxPromptComments {
				break
			}
			fmt.Fprintf(&sb, "- %s\n", comment.Text)
		}
	}

	sb.WriteString("\nProvide insights on:\n")
	sb.WriteString("1. Ad style (short-form or long-form) and presentation\n")
	sb.WriteString("2. Brand and product placement\n")
	sb.WriteString("3. Audience engagement with the ad content\n")
	sb.WriteString("4. Effectiveness of the ad placement\n")
	sb.WriteString("5. Recommendations to improve ad performance\n")
	return sb.String()
}

// resolveAdStyle prefers the measured ad duration over the generator's
// wording; without either signal the style stays Unknown.
func (c *InsightComposer) resolveAdStyle(sponsorship model.SponsorshipInfo, reply string) string {
	if !sponsorship.HasSponsorship {
		return model.AdStyleUnknown
	}
	if sponsorship.AdDuration != nil {
		if *sponsorship.AdDuration > c.longFormSeconds {
			return model.AdStyleLongForm
		}
		return model.AdStyleShortForm
	}

	lowered := strings.ToLower(reply)
	if strings.Contains(lowered, "long-form") {
		return model.AdStyleLongForm
	}
	if strings.Contains(lowered, "short-form") {
		return model.AdStyleShortForm
	}
	return model.AdStyleUnknown
}
