// Package lexicon holds the fixed category keyword tables used to score
// review text, plus the matching and polarity primitives built on them.
package lexicon

import (
	"strings"

	"review-insights-go/internal/types"
)

// keywords maps each category to its curated phrase list. Multi-word phrases
// assume normalized text (lowercase, single-space separated). Matching is
// plain substring, so a phrase inside a longer word still counts, and some
// words ("slow", "dragged", "boring", "dull") intentionally appear in more
// than one category.
var keywords = map[types.Category][]string{
	types.Abandonment: {
		"abandon", "dnf", "did not finish", "could not finish", "gave up",
		"stopped reading", "quit", "dropped", "couldn't finish",
		"never finished",
	},
	types.EngagementPositive: {
		"addictive", "page turner", "page-turner", "couldn't put down",
		"could not put down", "gripping", "compelling", "captivating",
		"engrossing", "unputdownable", "hooked", "riveting", "fast paced",
		"fast-paced", "kept me reading",
	},
	types.EngagementNegative: {
		"boring", "dull", "tedious", "dragged", "slow", "uninteresting",
		"monotonous", "struggled to read",
	},
	types.Complexity: {
		"complex", "complicated", "dense", "difficult", "challenging",
		"hard to follow", "confusing", "intricate", "convoluted",
		"hard to understand", "requires concentration", "demanding",
	},
	types.Simplicity: {
		"easy read", "easy to read", "simple", "straightforward",
		"accessible", "light", "quick read", "breeze", "simple prose",
		"easy to follow", "effortless",
	},
	types.PaceFast: {
		"fast", "fast paced", "fast-paced", "quick", "action packed",
		"action-packed", "thrilling", "moves quickly", "rapid", "brisk pace",
	},
	types.PaceSlow: {
		"slow", "slow paced", "slow-paced", "dragged", "takes time",
		"slow start", "slow beginning", "plodding", "meandering", "sluggish",
	},
	types.Emotional: {
		"emotional", "moving", "touching", "cried", "tears", "heartbreaking",
		"powerful", "deep", "profound", "made me feel",
		"emotional rollercoaster", "impactful",
	},
	types.SentimentPositive: {
		"love", "loved", "amazing", "great", "excellent", "wonderful",
		"fantastic", "brilliant", "perfect", "beautiful", "favorite",
		"enjoyed", "masterpiece", "incredible", "outstanding",
	},
	types.SentimentNegative: {
		"hate", "hated", "terrible", "awful", "horrible", "worst",
		"disappointing", "disappointed", "waste", "bad", "poor", "boring",
		"dull", "annoying", "frustrating",
	},
}

// Registry answers keyword-hit queries against the static category tables.
// It is read-only; construct once and share freely.
type Registry struct {
	table map[types.Category][]string
}

func New() *Registry {
	return &Registry{table: keywords}
}

// Keywords returns the configured phrases for one category. Callers must not
// modify the returned slice.
func (r *Registry) Keywords(cat types.Category) []string {
	return r.table[cat]
}

// Match counts the distinct configured keywords of cat present in text. Each
// keyword counts at most once no matter how often it repeats. Empty text
// scores 0; Match never fails.
func (r *Registry) Match(text string, cat types.Category) int {
	return countHits(strings.ToLower(text), r.table[cat])
}

// MatchAll runs every category's match over a single lowered copy of text.
func (r *Registry) MatchAll(text string) [types.NumCategories]int {
	var hits [types.NumCategories]int
	lower := strings.ToLower(text)
	for cat, kws := range r.table {
		hits[cat] = countHits(lower, kws)
	}
	return hits
}

// Polarity scores text in [-1, 1] from the balance of positive and negative
// sentiment keywords. Text with no sentiment keywords scores 0.
func (r *Registry) Polarity(text string) float64 {
	lower := strings.ToLower(text)
	pos := countHits(lower, r.table[types.SentimentPositive])
	neg := countHits(lower, r.table[types.SentimentNegative])
	return PolarityScore(pos, neg)
}

// PolarityScore derives the signed polarity from raw sentiment hit counts:
// (pos - neg) / max(1, pos + neg).
func PolarityScore(pos, neg int) float64 {
	total := pos + neg
	if total < 1 {
		total = 1
	}
	return float64(pos-neg) / float64(total)
}

func countHits(lower string, kws []string) int {
	n := 0
	for _, kw := range kws {
		if strings.Contains(lower, kw) {
			n++
		}
	}
	return n
}
