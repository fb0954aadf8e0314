package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"review-insights-go/internal/types"
)

const (
	featureSheet = "features"
	summarySheet = "summary"
)

// Excel's hard per-sheet row limit, minus the header row.
const maxXLSXRows = 1048576 - 1

func writeXLSX(path string, vectors []types.BookFeatureVector) error {
	if len(vectors) > maxXLSXRows {
		return fmt.Errorf("xlsx output: %d books exceed the sheet row limit, write csv instead", len(vectors))
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", featureSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(featureSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, v := range vectors {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		row := []interface{}{
			int64(v.BookID),
			v.NumReviews,
			v.AbandonmentScore,
			v.EngagementScore,
			v.ComplexityScore,
			v.PaceScore,
			v.EmotionalScore,
			v.AbandonmentHits,
			v.EngagementPosHits,
			v.ComplexityHits,
			v.PaceSlowHits,
			v.EmotionalHits,
			v.WordLenMean,
			v.WordLenMedian,
			v.WordLenStd,
			v.SentimentMean,
			v.SentimentStd,
			v.PositivePct,
			v.NegativePct,
		}
		if err := f.SetSheetRow(featureSheet, cell, &row); err != nil {
			return fmt.Errorf("write book %d: %w", v.BookID, err)
		}
	}

	if err := writeSummarySheet(f, Summarize(vectors)); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save output: %w", err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, s Summary) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("summary sheet: %w", err)
	}

	rows := [][]interface{}{
		{"metric", "value"},
		{"books", s.Books},
		{"abandono_score_mean", s.AbandonmentMean},
		{"abandono_score_std", s.AbandonmentStd},
		{"engagement_score_mean", s.EngagementMean},
		{"engagement_score_std", s.EngagementStd},
		{"complejidad_score_mean", s.ComplexityMean},
		{"complejidad_score_std", s.ComplexityStd},
		{"ritmo_score_mean", s.PaceMean},
		{"ritmo_score_std", s.PaceStd},
		{"emocional_score_mean", s.EmotionalMean},
		{"emocional_score_std", s.EmotionalStd},
		{"sentimiento_promedio_mean", s.SentimentMean},
		{"sentimiento_promedio_std", s.SentimentStd},
		{"high_abandonment_books", s.HighAbandonment},
		{"high_engagement_books", s.HighEngagement},
		{"high_complexity_books", s.HighComplexity},
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("summary row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(summarySheet, cell, &r); err != nil {
			return fmt.Errorf("write summary row %d: %w", i+1, err)
		}
	}
	return nil
}
