package classifier

import (
	"context"
	"strings"
	"unicode"

	"github.com/abadojack/whatlanggo"
	"github.com/vfg2006/sales-insights-api/internal/domain"
)

const lexiconModelVersion = "lexicon-v1"

// Word lists tuned on the seed feedback corpus. The scoring is intentionally
// simple: the adapter only needs a finite label set and determinism.
var (
	positiveWords = map[string]struct{}{
		"great": {}, "good": {}, "happy": {}, "loved": {}, "love": {},
		"amazing": {}, "helpful": {}, "perfect": {}, "stylish": {},
		"affordable": {}, "recommended": {}, "comfortable": {}, "value": {},
		"easy": {}, "smooth": {}, "efficient": {}, "fast": {}, "useful": {},
		"high": {}, "super": {},
	}
	negativeWords = map[string]struct{}{
		"bad": {}, "late": {}, "expensive": {}, "noisy": {}, "damaged": {},
		"wrong": {}, "faded": {}, "drains": {}, "small": {}, "average": {},
		"pricey": {}, "stopped": {}, "broken": {}, "worst": {}, "poor": {},
		"not": {}, "never": {},
	}
)

// Lexicon is a deterministic in-process classifier. It scores English text
// against fixed word lists; other languages come back NEUTRAL since the
// lexicon cannot judge them.
type Lexicon struct{}

func NewLexicon() *Lexicon {
	return &Lexicon{}
}

func (l *Lexicon) ModelVersion() string {
	return lexiconModelVersion
}

func (l *Lexicon) Classify(_ context.Context, text string) (domain.Classification, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Classification{Label: domain.SentimentNeutral, Confidence: 1}, nil
	}

	// Short feedback snippets make language detection unreliable, so only a
	// confident non-English verdict bypasses the lexicon.
	info := whatlanggo.Detect(text)
	if info.Lang != whatlanggo.Eng && info.IsReliable() {
		return domain.Classification{Label: domain.SentimentNeutral, Confidence: 0.5}, nil
	}

	var positives, negatives int
	for _, word := range tokenize(text) {
		if _, ok := positiveWords[word]; ok {
			positives++
		}
		if _, ok := negativeWords[word]; ok {
			negatives++
		}
	}

	total := positives + negatives
	if total == 0 {
		return domain.Classification{Label: domain.SentimentNeutral, Confidence: 0.5}, nil
	}

	confidence := float64(abs(positives-negatives)) / float64(total)

	switch {
	case positives > negatives:
		return domain.Classification{Label: domain.SentimentPositive, Confidence: confidence}, nil
	case negatives > positives:
		return domain.Classification{Label: domain.SentimentNegative, Confidence: confidence}, nil
	default:
		return domain.Classification{Label: domain.SentimentNeutral, Confidence: 0.5}, nil
	}
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
