package usecase

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/argha-paul/youtube-adInsights/domain/model"
)

// DefaultIndicatorPhrases returns the sponsorship-indicator phrases used when
// no custom list is configured. Matching is case-insensitive substring search.
func DefaultIndicatorPhrases() []string {
	return []string{
		"sponsor",
		"sponsored by",
		"paid promotion",
		"paid partnership",
		"promo code",
		"discount code",
		"use code",
		"affiliate",
		"brand deal",
		"thanks to",
		"check out",
	}
}

var (
	// <time> [-] [<time>] followed by an ad word, e.g. "2:15 - 3:40 sponsor"
	timestampAdPattern = regexp.MustCompile(`(?i)(\d{1,2}:\d{1,2}(?::\d{1,2})?)\s*-?\s*(\d{1,2}:\d{1,2}(?::\d{1,2})?)?\s*(?:ad|sponsor|promotion|sponsored)`)

	capitalizedWordPattern = regexp.MustCompile(`^[A-Z][a-z]{2,}$`)
	trademarkPattern       = regexp.MustCompile(`([A-Za-z0-9]+)[™®]`)

	sentenceSplitPattern = regexp.MustCompile(`[.!?]`)
)

// SponsorshipDetector scans descriptions and tags for sponsorship signals.
// Detection is a pure function of its inputs: no external calls, no state.
type SponsorshipDetector struct {
	phrases []string
}

// NewSponsorshipDetector creates a detector with the given indicator phrases
// (expected lower-case). Pass DefaultIndicatorPhrases() for the stock list.
func NewSponsorshipDetector(phrases []string) *SponsorshipDetector {
	if len(phrases) == 0 {
		phrases = DefaultIndicatorPhrases()
	}
	return &SponsorshipDetector{phrases: phrases}
}

// Detect scans a video description and its tags for sponsorship signals and
// returns the aggregated SponsorshipInfo.
func (d *SponsorshipDetector) Detect(description string, tags []string) model.SponsorshipInfo {
	indicators := newStringSet()
	brands := newStringSet()
	var details []string
	hasSponsorship := false

	lowerDesc := strings.ToLower(description)
	sentences := sentenceSplitPattern.Split(description, -1)

	for _, phrase := range d.phrases {
		if !strings.Contains(lowerDesc, phrase) {
			continue
		}
		hasSponsorship = true
		indicators.Add(phrase)
		for _, sentence := range sentences {
			if !strings.Contains(strings.ToLower(sentence), phrase) {
				continue
			}
			trimmed := strings.TrimSpace(sentence)
			if trimmed != "" {
				details = append(details, trimmed)
			}
			for _, brand := range ExtractBrands(trimmed) {
				brands.Add(brand)
			}
		}
	}

	for _, tag := range tags {
		lowerTag := strings.ToLower(tag)
		for _, phrase := range d.phrases {
			if strings.Contains(lowerTag, phrase) && !indicators.Has(phrase) {
				hasSponsorship = true
				indicators.Add(phrase)
			}
		}
		// Capitalized multi-letter tags are higher-confidence brand signals
		// than free text.
		runes := []rune(tag)
		if len(runes) > 3 && unicode.IsUpper(runes[0]) {
			brands.Add(tag)
		}
	}

	info := model.SponsorshipInfo{HasSponsorship: hasSponsorship}

	if m := timestampAdPattern.FindStringSubmatch(description); m != nil {
		info.HasSponsorship = true
		indicators.Add("timestamp marker")
		details = append(details, "Ad segment referenced at "+m[1])
		if m[2] != "" {
			start, okStart := ParseTimestamp(m[1])
			end, okEnd := ParseTimestamp(m[2])
			if okStart && okEnd && end-start >= 0 {
				duration := end - start
				info.AdDuration = &duration
			}
		}
	}

	info.AdIndicators = indicators.Values()
	info.DetectedBrands = brands.Values()
	info.SponsorshipDetails = strings.TrimSpace(strings.Join(details, "; "))
	return info
}

// ExtractBrands pulls candidate brand names out of free text with two
// heuristics: capitalized words, and alphanumeric runs carrying a trademark
// or registered symbol. Duplicates are allowed; callers deduplicate.
func ExtractBrands(text string) []string {
	var candidates []string

	for _, token := range strings.Fields(text) {
		cleaned := strings.TrimFunc(token, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if capitalizedWordPattern.MatchString(cleaned) {
			candidates = append(candidates, cleaned)
		}
	}

	for _, m := range trademarkPattern.FindAllStringSubmatch(text, -1) {
		candidates = append(candidates, strings.TrimSpace(m[1]))
	}

	return candidates
}

// ParseTimestamp converts "s", "m:s" or "h:m:s" strings to seconds. The
// second return value is false when the input does not match any of those
// forms or a part is not a non-negative integer.
func ParseTimestamp(text string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(text), ":")
	if len(parts) < 1 || len(parts) > 3 {
		return 0, false
	}
	values := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, false
		}
		values = append(values, n)
	}
	switch len(values) {
	case 1:
		return values[0], true
	case 2:
		return values[0]*60 + values[1], true
	default:
		return values[0]*3600 + values[1]*60 + values[2], true
	}
}

// stringSet is an insertion-ordered set used for indicator and brand dedup
type stringSet struct {
	seen   map[string]struct{}
	values []string
}

func newStringSet() *stringSet {
	return &stringSet{seen: make(map[string]struct{})}
}

func (s *stringSet) Add(value string) {
	if _, ok := s.seen[value]; ok {
		return
	}
	s.seen[value] = struct{}{}
	s.values = append(s.values, value)
}

func (s *stringSet) Has(value string) bool {
	_, ok := s.seen[value]
	return ok
}

func (s *stringSet) Values() []string {
	if s.values == nil {
		return []string{}
	}
	return s.values
}
