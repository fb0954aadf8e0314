package report

import (
	"math"

	"review-insights-go/internal/types"
)

// Summary holds run-level descriptive statistics over the finalized vectors,
// the same numbers the downstream notebooks inspect before modeling. The
// High* counters use the score thresholds those notebooks treat as signal.
type Summary struct {
	Books int

	AbandonmentMean float64
	AbandonmentStd  float64
	EngagementMean  float64
	EngagementStd   float64
	ComplexityMean  float64
	ComplexityStd   float64
	PaceMean        float64
	PaceStd         float64
	EmotionalMean   float64
	EmotionalStd    float64
	SentimentMean   float64
	SentimentStd    float64

	HighAbandonment int // abandono_score > 0.1
	HighEngagement  int // engagement_score > 0.5
	HighComplexity  int // complejidad_score > 0.3
}

// Summarize computes the summary in one pass. An empty input yields the zero
// summary.
func Summarize(vectors []types.BookFeatureVector) Summary {
	s := Summary{Books: len(vectors)}
	if len(vectors) == 0 {
		return s
	}

	var ab, en, cx, pa, em, se runningStat
	for _, v := range vectors {
		ab.add(v.AbandonmentScore)
		en.add(v.EngagementScore)
		cx.add(v.ComplexityScore)
		pa.add(v.PaceScore)
		em.add(v.EmotionalScore)
		se.add(v.SentimentMean)

		if v.AbandonmentScore > 0.1 {
			s.HighAbandonment++
		}
		if v.EngagementScore > 0.5 {
			s.HighEngagement++
		}
		if v.ComplexityScore > 0.3 {
			s.HighComplexity++
		}
	}

	s.AbandonmentMean, s.AbandonmentStd = ab.stats()
	s.EngagementMean, s.EngagementStd = en.stats()
	s.ComplexityMean, s.ComplexityStd = cx.stats()
	s.PaceMean, s.PaceStd = pa.stats()
	s.EmotionalMean, s.EmotionalStd = em.stats()
	s.SentimentMean, s.SentimentStd = se.stats()
	return s
}

// Fields flattens the summary for structured logging.
func (s Summary) Fields() map[string]interface{} {
	return map[string]interface{}{
		"books":                  s.Books,
		"abandono_mean":          s.AbandonmentMean,
		"abandono_std":           s.AbandonmentStd,
		"engagement_mean":        s.EngagementMean,
		"engagement_std":         s.EngagementStd,
		"complejidad_mean":       s.ComplexityMean,
		"complejidad_std":        s.ComplexityStd,
		"ritmo_mean":             s.PaceMean,
		"ritmo_std":              s.PaceStd,
		"emocional_mean":         s.EmotionalMean,
		"emocional_std":          s.EmotionalStd,
		"sentimiento_mean":       s.SentimentMean,
		"sentimiento_std":        s.SentimentStd,
		"high_abandonment_books": s.HighAbandonment,
		"high_engagement_books":  s.HighEngagement,
		"high_complexity_books":  s.HighComplexity,
	}
}

type runningStat struct {
	sum   float64
	sumSq float64
	n     int
}

func (r *runningStat) add(x float64) {
	r.sum += x
	r.sumSq += x * x
	r.n++
}

// stats returns the mean and population standard deviation.
func (r *runningStat) stats() (mean, std float64) {
	if r.n == 0 {
		return 0, 0
	}
	mean = r.sum / float64(r.n)
	variance := r.sumSq/float64(r.n) - mean*mean
	if variance < 0 {
		variance = 0
	}
	return mean, math.Sqrt(variance)
}
