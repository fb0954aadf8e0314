// Package pipeline wires the full stage together: stream the corpus, score
// every review, aggregate per book, write the feature table.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"review-insights-go/internal/aggregator"
	"review-insights-go/internal/config"
	"review-insights-go/internal/corpus"
	"review-insights-go/internal/lexicon"
	"review-insights-go/internal/logger"
	"review-insights-go/internal/report"
	"review-insights-go/internal/scanner"
)

// Stats reports what one full scan did.
type Stats struct {
	Processed int // reviews folded into aggregates
	Skipped   int // malformed records dropped
	Capped    int // reviews dropped by sampling limits
	Books     int
	Elapsed   time.Duration
}

// Run executes the whole stage once. Per-record parse failures are counted
// and skipped; a corpus read failure or cancellation aborts with the stats
// gathered so far.
func Run(ctx context.Context, cfg config.Config) (Stats, error) {
	log := logger.New().WithRun("pipeline")
	start := time.Now()

	lex := lexicon.New()
	sc := scanner.New(lex)
	agg := aggregator.New(aggregator.Limits{
		MaxBooks:          cfg.MaxBooks,
		MaxReviewsPerBook: cfg.MaxReviewsPerBook,
	})

	log.WithField("source", cfg.ReviewsFile).Info("opening review corpus")
	src, err := corpus.Open(ctx, cfg.ReviewsFile, time.Duration(cfg.HTTPRetrySec)*time.Second)
	if err != nil {
		return Stats{}, err
	}
	defer src.Close()

	var st Stats
	for rec, err := range corpus.NewReader(src).All() {
		if ctx.Err() != nil {
			return st, ctx.Err()
		}
		if err != nil {
			var pe *corpus.ParseError
			if errors.As(err, &pe) {
				st.Skipped++
				log.WithError(err).Debug("skipping malformed record")
				continue
			}
			return st, err
		}

		counted, accErr := agg.Accumulate(rec.BookID, sc.Score(rec.Text))
		if accErr != nil {
			return st, fmt.Errorf("accumulate book %d: %w", rec.BookID, accErr)
		}
		if !counted {
			st.Capped++
			continue
		}
		st.Processed++

		if cfg.ProgressEvery > 0 && st.Processed%cfg.ProgressEvery == 0 {
			log.WithFields(map[string]interface{}{
				"processed": st.Processed,
				"skipped":   st.Skipped,
				"books":     agg.Books(),
			}).Info("scan progress")
		}
	}

	vectors := agg.Finalize()
	st.Books = len(vectors)
	log.WithFields(map[string]interface{}{
		"processed": st.Processed,
		"skipped":   st.Skipped,
		"capped":    st.Capped,
		"books":     st.Books,
	}).Info("scan complete")

	if err := report.Write(cfg.OutputFile, vectors); err != nil {
		return st, err
	}
	log.WithField("output", cfg.OutputFile).Info("feature table written")

	log.WithFields(report.Summarize(vectors).Fields()).Info("feature summary")

	st.Elapsed = time.Since(start)
	return st, nil
}
