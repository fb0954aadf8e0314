// Package aggregator reduces the per-review score stream into one feature
// vector per book.
package aggregator

import (
	"errors"
	"math"
	"sort"

	"review-insights-go/internal/types"
)

// ErrFinalized is returned by Accumulate once Finalize has run; accumulating
// into a finalized snapshot is a programming error, not a data condition.
var ErrFinalized = errors.New("aggregator already finalized")

// Limits bounds corpus sampling. Zero values mean unlimited.
type Limits struct {
	MaxBooks          int
	MaxReviewsPerBook int
}

// bookAggregate is the fixed-size running state kept per book. Every field is
// additive, so partial aggregates from a sharded scan could be merged
// field-wise.
type bookAggregate struct {
	reviews       int
	hits          [types.NumCategories]int
	wordMeanSum   float64
	wordMedianSum float64
	wordStdSum    float64
	polaritySum   float64
	polaritySumSq float64
	buckets       [3]int // negative, neutral, positive
}

// Aggregator accumulates review scores keyed by book id and finalizes them
// into sorted feature vectors. Single writer; no internal locking.
type Aggregator struct {
	limits    Limits
	books     map[types.BookID]*bookAggregate
	finalized bool
	snapshot  []types.BookFeatureVector
}

func New(limits Limits) *Aggregator {
	return &Aggregator{
		limits: limits,
		books:  make(map[types.BookID]*bookAggregate),
	}
}

// Accumulate folds one review score into its book's aggregate, creating the
// aggregate on first sight. It reports false when a sampling limit dropped
// the review.
func (a *Aggregator) Accumulate(id types.BookID, sc types.ReviewScore) (bool, error) {
	if a.finalized {
		return false, ErrFinalized
	}

	agg, ok := a.books[id]
	if !ok {
		if a.limits.MaxBooks > 0 && len(a.books) >= a.limits.MaxBooks {
			return false, nil
		}
		agg = &bookAggregate{}
		a.books[id] = agg
	}
	if a.limits.MaxReviewsPerBook > 0 && agg.reviews >= a.limits.MaxReviewsPerBook {
		return false, nil
	}

	agg.reviews++
	for c, h := range sc.Hits {
		agg.hits[c] += h
	}
	agg.wordMeanSum += sc.WordMean
	agg.wordMedianSum += sc.WordMedian
	agg.wordStdSum += sc.WordStd
	agg.polaritySum += sc.Polarity
	agg.polaritySumSq += sc.Polarity * sc.Polarity
	agg.buckets[sc.Bucket+1]++
	return true, nil
}

// Books reports how many distinct books have an aggregate so far.
func (a *Aggregator) Books() int {
	return len(a.books)
}

// Finalize derives the feature vectors, sorted by book id, and moves the
// aggregator into its finalized state. Repeat calls return the same
// snapshot. Books that never received a review never appear, so there is no
// zero-review division path.
func (a *Aggregator) Finalize() []types.BookFeatureVector {
	if a.finalized {
		return a.snapshot
	}
	a.finalized = true

	out := make([]types.BookFeatureVector, 0, len(a.books))
	for id, agg := range a.books {
		out = append(out, agg.vector(id))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BookID < out[j].BookID })
	a.snapshot = out
	return out
}

func (g *bookAggregate) vector(id types.BookID) types.BookFeatureVector {
	n := float64(g.reviews)
	mean := g.polaritySum / n
	variance := g.polaritySumSq/n - mean*mean
	if variance < 0 {
		variance = 0 // round-off on near-constant polarity
	}

	return types.BookFeatureVector{
		BookID:     id,
		NumReviews: g.reviews,

		AbandonmentScore: float64(g.hits[types.Abandonment]) / n,
		EngagementScore:  float64(g.hits[types.EngagementPositive]-g.hits[types.EngagementNegative]) / n,
		ComplexityScore:  float64(g.hits[types.Complexity]-g.hits[types.Simplicity]) / n,
		PaceScore:        float64(g.hits[types.PaceFast]-g.hits[types.PaceSlow]) / n,
		EmotionalScore:   float64(g.hits[types.Emotional]) / n,

		AbandonmentHits:   g.hits[types.Abandonment],
		EngagementPosHits: g.hits[types.EngagementPositive],
		ComplexityHits:    g.hits[types.Complexity],
		PaceSlowHits:      g.hits[types.PaceSlow],
		EmotionalHits:     g.hits[types.Emotional],

		WordLenMean:   g.wordMeanSum / n,
		WordLenMedian: g.wordMedianSum / n,
		WordLenStd:    g.wordStdSum / n,

		SentimentMean: mean,
		SentimentStd:  math.Sqrt(variance),
		PositivePct:   float64(g.buckets[2]) / n,
		NegativePct:   float64(g.buckets[0]) / n,
	}
}
