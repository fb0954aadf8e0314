// Package report persists finalized feature vectors as a tabular file and
// derives run-level descriptive statistics.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"review-insights-go/internal/types"
)

// columns is the output header. Order is the downstream contract; do not
// reorder.
var columns = []string{
	"book_id",
	"num_reviews_analyzed",
	"abandono_score",
	"engagement_score",
	"complejidad_score",
	"ritmo_score",
	"emocional_score",
	"menciones_abandono",
	"menciones_engagement_positivo",
	"menciones_complejidad",
	"menciones_ritmo_lento",
	"menciones_emocional",
	"longitud_palabra_promedio",
	"longitud_palabra_mediana",
	"longitud_palabra_std",
	"sentimiento_promedio",
	"sentimiento_std",
	"sentimiento_positivo_pct",
	"sentimiento_negativo_pct",
}

// Write persists the vectors to path. An ".xlsx" destination gets a
// spreadsheet with an extra summary sheet; anything else is CSV.
func Write(path string, vectors []types.BookFeatureVector) error {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return writeXLSX(path, vectors)
	}
	return writeCSV(path, vectors)
}

func writeCSV(path string, vectors []types.BookFeatureVector) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, v := range vectors {
		if err := w.Write(record(v)); err != nil {
			f.Close()
			return fmt.Errorf("write book %d: %w", v.BookID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush output: %w", err)
	}
	return f.Close()
}

func record(v types.BookFeatureVector) []string {
	return []string{
		strconv.FormatInt(int64(v.BookID), 10),
		strconv.Itoa(v.NumReviews),
		ff(v.AbandonmentScore),
		ff(v.EngagementScore),
		ff(v.ComplexityScore),
		ff(v.PaceScore),
		ff(v.EmotionalScore),
		strconv.Itoa(v.AbandonmentHits),
		strconv.Itoa(v.EngagementPosHits),
		strconv.Itoa(v.ComplexityHits),
		strconv.Itoa(v.PaceSlowHits),
		strconv.Itoa(v.EmotionalHits),
		ff(v.WordLenMean),
		ff(v.WordLenMedian),
		ff(v.WordLenStd),
		ff(v.SentimentMean),
		ff(v.SentimentStd),
		ff(v.PositivePct),
		ff(v.NegativePct),
	}
}

// ff renders floats as the shortest decimal that round-trips.
func ff(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
