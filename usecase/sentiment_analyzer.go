package usecase

import (
	"strings"

	"github.com/argha-paul/youtube-adInsights/domain/model"
)

// Classification thresholds for per-comment polarity scores
const (
	DefaultPositiveThreshold = 0.05
	DefaultNegativeThreshold = -0.05
)

// DefaultAdKeywords returns the ad-related keywords tracked per-keyword in
// the sentiment summary.
func DefaultAdKeywords() []string {
	return []string{"ad", "sponsor", "promotion", "sponsored", "brand", "product"}
}

// Lexicon weights are in [0.5, 1.0]; a comment's score is the signed sum of
// matched weights normalized by word count, clamped to [-1, 1].
var positiveWords = map[string]float64{
	"love":        1.0,
	"awesome":     1.0,
	"amazing":     1.0,
	"excellent":   1.0,
	"perfect":     0.9,
	"fantastic":   0.9,
	"best":        0.9,
	"great":       0.8,
	"helpful":     0.8,
	"informative": 0.8,
	"recommend":   0.8,
	"enjoyed":     0.7,
	"good":        0.7,
	"useful":      0.7,
	"thanks":      0.6,
	"thank":       0.6,
	"nice":        0.6,
	"cool":        0.6,
	"liked":       0.6,
	"subscribed":  0.6,
	"interesting": 0.5,
	"wow":         0.5,
}

var negativeWords = map[string]float64{
	"hate":          1.0,
	"worst":         1.0,
	"terrible":      1.0,
	"awful":         1.0,
	"scam":          1.0,
	"misleading":    0.9,
	"clickbait":     0.9,
	"fake":          0.9,
	"waste":         0.8,
	"bad":           0.8,
	"useless":       0.8,
	"annoying":      0.7,
	"boring":        0.7,
	"disappointed":  0.7,
	"disappointing": 0.7,
	"dislike":       0.6,
	"spam":          0.6,
	"stupid":        0.6,
	"meh":           0.5,
	"cringe":        0.5,
}

// SentimentAnalyzer scores comment text with a word lexicon and aggregates
// polarity plus per-keyword sentiment for ad-related terms. Scoring is pure
// and deterministic.
type SentimentAnalyzer struct {
	adKeywords        []string
	positiveThreshold float64
	negativeThreshold float64
}

func NewSentimentAnalyzer(adKeywords []string, positiveThreshold, negativeThreshold float64) *SentimentAnalyzer {
	if len(adKeywords) == 0 {
		adKeywords = DefaultAdKeywords()
	}
	if positiveThreshold == 0 && negativeThreshold == 0 {
		positiveThreshold = DefaultPositiveThreshold
		negativeThreshold = DefaultNegativeThreshold
	}
	return &SentimentAnalyzer{
		adKeywords:        adKeywords,
		positiveThreshold: positiveThreshold,
		negativeThreshold: negativeThreshold,
	}
}

// Analyze aggregates per-comment scores into a SentimentSummary. An empty
// input yields an all-zero summary with every tracked keyword at zero.
func (a *SentimentAnalyzer) Analyze(comments []model.YouTubeComment) model.SentimentSummary {
	summary := model.SentimentSummary{
		KeywordSentiment: make(map[string]model.KeywordSentiment, len(a.adKeywords)),
	}

	keywordTotals := make(map[string]float64, len(a.adKeywords))
	keywordCounts := make(map[string]int, len(a.adKeywords))

	var sum float64
	var positive, negative, neutral int

	for _, comment := range comments {
		score := a.Score(comment.Text)
		sum += score

		switch {
		case score > a.positiveThreshold:
			positive++
		case score < a.negativeThreshold:
			negative++
		default:
			neutral++
		}

		lowered := strings.ToLower(comment.Text)
		for _, keyword := range a.adKeywords {
			if strings.Contains(lowered, keyword) {
				keywordCounts[keyword]++
				keywordTotals[keyword] += score
			}
		}
	}

	for _, keyword := range a.adKeywords {
		ks := model.KeywordSentiment{Count: keywordCounts[keyword]}
		if ks.Count > 0 {
			ks.AverageSentiment = keywordTotals[keyword] / float64(ks.Count)
		}
		summary.KeywordSentiment[keyword] = ks
	}

	total := len(comments)
	summary.TotalComments = total
	if total == 0 {
		return summary
	}

	summary.AverageSentiment = sum / float64(total)
	summary.PositivePercentage = float64(positive) / float64(total) * 100
	summary.NegativePercentage = float64(negative) / float64(total) * 100
	summary.NeutralPercentage = float64(neutral) / float64(total) * 100
	return summary
}

// Score returns a polarity score in [-1, 1] for a single piece of text.
// Text with no lexicon matches scores 0.
func (a *SentimentAnalyzer) Score(text string) float64 {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return 0
	}

	var score float64
	for _, word := range words {
		word = strings.Trim(word, ".,!?;:()\"'")
		if w, ok := positiveWords[word]; ok {
			score += w
		}
		if w, ok := negativeWords[word]; ok {
			score -= w
		}
	}

	score = score / float64(len(words))
	if score > 1 {
		return 1
	}
	if score < -1 {
		return -1
	}
	return score
}
