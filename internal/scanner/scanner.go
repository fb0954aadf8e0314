// Package scanner turns raw review text into per-review feature scores.
package scanner

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"review-insights-go/internal/lexicon"
	"review-insights-go/internal/types"
)

// Polarity beyond ±bucketThreshold classifies a review as positive or
// negative; everything in between is neutral.
const bucketThreshold = 0.1

var (
	htmlTagRE = regexp.MustCompile(`<[^>]+>`)
	wordRE    = regexp.MustCompile(`[\p{L}\p{N}']+`)
)

// Scanner scores one review at a time against a shared lexicon. It holds no
// per-review state, so a single instance serves a whole scan.
type Scanner struct {
	lex *lexicon.Registry
}

func New(lex *lexicon.Registry) *Scanner {
	return &Scanner{lex: lex}
}

// Normalize lowercases text, strips HTML tags (the dump keeps <br>, <i> and
// friends inline) and collapses all whitespace runs to single spaces.
// Multi-word lexicon phrases depend on the collapse step.
func Normalize(text string) string {
	t := strings.ToLower(text)
	t = htmlTagRE.ReplaceAllString(t, "")
	return strings.Join(strings.Fields(t), " ")
}

// Score computes the full per-review feature tuple. Empty or whitespace-only
// text yields the zero score, which still counts as one review downstream.
func (s *Scanner) Score(text string) types.ReviewScore {
	var sc types.ReviewScore
	norm := Normalize(text)
	if norm == "" {
		return sc
	}

	sc.Hits = s.lex.MatchAll(norm)
	sc.Polarity = lexicon.PolarityScore(
		sc.Hits[types.SentimentPositive], sc.Hits[types.SentimentNegative])
	sc.Bucket = bucketFor(sc.Polarity)
	sc.WordMean, sc.WordMedian, sc.WordStd = lengthStats(wordLengths(norm))
	return sc
}

func bucketFor(polarity float64) types.Bucket {
	switch {
	case polarity > bucketThreshold:
		return types.BucketPositive
	case polarity < -bucketThreshold:
		return types.BucketNegative
	default:
		return types.BucketNeutral
	}
}

// wordLengths tokenizes normalized text into letter/digit/apostrophe runs and
// returns each word's rune count.
func wordLengths(norm string) []int {
	words := wordRE.FindAllString(norm, -1)
	lengths := make([]int, 0, len(words))
	for _, w := range words {
		lengths = append(lengths, utf8.RuneCountInString(w))
	}
	return lengths
}

// lengthStats returns the mean, median and population standard deviation of
// the word lengths. No words means all zeros. The input slice is sorted in
// place for the median.
func lengthStats(lengths []int) (mean, median, std float64) {
	n := len(lengths)
	if n == 0 {
		return 0, 0, 0
	}

	sum := 0
	for _, l := range lengths {
		sum += l
	}
	mean = float64(sum) / float64(n)

	var sq float64
	for _, l := range lengths {
		d := float64(l) - mean
		sq += d * d
	}
	std = math.Sqrt(sq / float64(n))

	sort.Ints(lengths)
	mid := n / 2
	if n%2 == 1 {
		median = float64(lengths[mid])
	} else {
		median = (float64(lengths[mid-1]) + float64(lengths[mid])) / 2
	}
	return mean, median, std
}
