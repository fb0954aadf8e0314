package types

import (
	"fmt"
	"strconv"
	"strings"
)

// BookID identifies one book in the corpus. The Goodreads dump is not
// consistent about the field's JSON type (quoted digit strings in most rows,
// bare numbers in others), so decoding accepts both. Zero means the id was
// missing; the corpus reader rejects such records.
type BookID int64

func (b *BookID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*b = 0
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" {
		*b = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("book_id %q: %w", s, err)
	}
	*b = BookID(n)
	return nil
}

// ReviewRecord is one raw corpus entry. Text may be empty; an empty review
// still counts toward the book's review total.
type ReviewRecord struct {
	BookID BookID `json:"book_id"`
	Text   string `json:"review_text"`
}

// Category tags one keyword bucket of the lexicon.
type Category int

const (
	Abandonment Category = iota
	EngagementPositive
	EngagementNegative
	Complexity
	Simplicity
	PaceFast
	PaceSlow
	Emotional
	SentimentPositive
	SentimentNegative
)

// NumCategories sizes per-category counter arrays.
const NumCategories = 10

var categoryNames = [NumCategories]string{
	"abandonment",
	"engagement_positive",
	"engagement_negative",
	"complexity",
	"simplicity",
	"pace_fast",
	"pace_slow",
	"emotional",
	"sentiment_positive",
	"sentiment_negative",
}

func (c Category) String() string {
	if c < 0 || c >= NumCategories {
		return "unknown"
	}
	return categoryNames[c]
}

// Bucket classifies one review by its polarity sign. Exactly one bucket
// applies per review.
type Bucket int

const (
	BucketNegative Bucket = -1
	BucketNeutral  Bucket = 0
	BucketPositive Bucket = 1
)

func (b Bucket) String() string {
	switch b {
	case BucketNegative:
		return "negative"
	case BucketPositive:
		return "positive"
	default:
		return "neutral"
	}
}

// ReviewScore is the per-review feature tuple handed from the scanner to the
// aggregator and then discarded. The zero value is the score of an empty
// review: no hits, zero stats, neutral bucket.
type ReviewScore struct {
	Hits       [NumCategories]int
	WordMean   float64
	WordMedian float64
	WordStd    float64
	Polarity   float64
	Bucket     Bucket
}

// BookFeatureVector is the finalized per-book output row. JSON tags match the
// output table's column names. Score fields are unbounded ratios; percentage
// fields lie in [0, 1].
type BookFeatureVector struct {
	BookID            BookID  `json:"book_id"`
	NumReviews        int     `json:"num_reviews_analyzed"`
	AbandonmentScore  float64 `json:"abandono_score"`
	EngagementScore   float64 `json:"engagement_score"`
	ComplexityScore   float64 `json:"complejidad_score"`
	PaceScore         float64 `json:"ritmo_score"`
	EmotionalScore    float64 `json:"emocional_score"`
	AbandonmentHits   int     `json:"menciones_abandono"`
	EngagementPosHits int     `json:"menciones_engagement_positivo"`
	ComplexityHits    int     `json:"menciones_complejidad"`
	PaceSlowHits      int     `json:"menciones_ritmo_lento"`
	EmotionalHits     int     `json:"menciones_emocional"`
	WordLenMean       float64 `json:"longitud_palabra_promedio"`
	WordLenMedian     float64 `json:"longitud_palabra_mediana"`
	WordLenStd        float64 `json:"longitud_palabra_std"`
	SentimentMean     float64 `json:"sentimiento_promedio"`
	SentimentStd      float64 `json:"sentimiento_std"`
	PositivePct       float64 `json:"sentimiento_positivo_pct"`
	NegativePct       float64 `json:"sentimiento_negativo_pct"`
}
