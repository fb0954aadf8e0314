package scanner

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"review-insights-go/internal/lexicon"
	"review-insights-go/internal/types"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "GREAT Book", "great book"},
		{"strips html tags", "so <b>good</b> it hurts", "so good it hurts"},
		{"collapses whitespace", "too   many\n\nspaces\there", "too many spaces here"},
		{"trims edges", "  edges  ", "edges"},
		{"tags only", "<br><p></p>", ""},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.in))
		})
	}
}

func TestScoreEmptyText(t *testing.T) {
	s := New(lexicon.New())
	for _, txt := range []string{"", "   ", "\n\t", "<br>"} {
		sc := s.Score(txt)
		assert.Equal(t, types.ReviewScore{}, sc, "input %q", txt)
		assert.Equal(t, types.BucketNeutral, sc.Bucket)
	}
}

func TestScoreWordStats(t *testing.T) {
	s := New(lexicon.New())

	sc := s.Score("a bb ccc")
	assert.InDelta(t, 2.0, sc.WordMean, 1e-9)
	assert.InDelta(t, 2.0, sc.WordMedian, 1e-9)
	assert.InDelta(t, math.Sqrt(2.0/3.0), sc.WordStd, 1e-9)

	// even word count: median averages the middle pair
	sc = s.Score("a bb ccc dddd")
	assert.InDelta(t, 2.5, sc.WordMean, 1e-9)
	assert.InDelta(t, 2.5, sc.WordMedian, 1e-9)
}

func TestScoreSplitsOnPunctuation(t *testing.T) {
	sc := New(lexicon.New()).Score("wow... just-wow!")
	// tokens: wow, just, wow
	assert.InDelta(t, 10.0/3.0, sc.WordMean, 1e-9)
	assert.InDelta(t, 3.0, sc.WordMedian, 1e-9)
}

func TestScoreCountsRunesNotBytes(t *testing.T) {
	sc := New(lexicon.New()).Score("café")
	assert.InDelta(t, 4.0, sc.WordMean, 1e-9)
}

func TestScoreKeepsApostrophes(t *testing.T) {
	// apostrophe counts as part of the word: didn't → 6 runes
	sc := New(lexicon.New()).Score("didn't")
	assert.InDelta(t, 6.0, sc.WordMean, 1e-9)
}

func TestScoreHitsAndPositiveBucket(t *testing.T) {
	sc := New(lexicon.New()).Score("Great book, loved it")
	assert.Equal(t, 3, sc.Hits[types.SentimentPositive]) // great, love, loved
	assert.Zero(t, sc.Hits[types.SentimentNegative])
	assert.InDelta(t, 1.0, sc.Polarity, 1e-9)
	assert.Equal(t, types.BucketPositive, sc.Bucket)
}

func TestScoreNegativeBucket(t *testing.T) {
	sc := New(lexicon.New()).Score("terrible waste of time")
	assert.Negative(t, sc.Polarity)
	assert.Equal(t, types.BucketNegative, sc.Bucket)
}

func TestScoreMixedSentimentIsNeutral(t *testing.T) {
	// one positive and one negative keyword cancel out
	sc := New(lexicon.New()).Score("great but terrible")
	assert.Zero(t, sc.Polarity)
	assert.Equal(t, types.BucketNeutral, sc.Bucket)
}

func TestScorePageTurner(t *testing.T) {
	sc := New(lexicon.New()).Score("Page-turner! Couldn't put it down!")
	assert.Equal(t, 1, sc.Hits[types.EngagementPositive])
	assert.Zero(t, sc.Hits[types.Abandonment])
}

func TestBucketThresholdEdges(t *testing.T) {
	// ±0.1 itself is still neutral; only strictly beyond flips the bucket
	assert.Equal(t, types.BucketNeutral, bucketFor(0.1))
	assert.Equal(t, types.BucketNeutral, bucketFor(-0.1))
	assert.Equal(t, types.BucketPositive, bucketFor(0.11))
	assert.Equal(t, types.BucketNegative, bucketFor(-0.11))
	assert.Equal(t, types.BucketPositive, bucketFor(1))
	assert.Equal(t, types.BucketNegative, bucketFor(-1))
}
