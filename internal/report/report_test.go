package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"review-insights-go/internal/types"
)

func sampleVectors() []types.BookFeatureVector {
	return []types.BookFeatureVector{
		{
			BookID:            1,
			NumReviews:        2,
			AbandonmentScore:  0.5,
			EngagementScore:   -1,
			ComplexityScore:   1.5,
			PaceScore:         -0.5,
			EmotionalScore:    1,
			AbandonmentHits:   1,
			EngagementPosHits: 0,
			ComplexityHits:    3,
			PaceSlowHits:      1,
			EmotionalHits:     2,
			WordLenMean:       4.25,
			WordLenMedian:     4,
			WordLenStd:        1.1,
			SentimentMean:     0.5,
			SentimentStd:      0.5,
			PositivePct:       0.5,
			NegativePct:       0,
		},
		{BookID: 9, NumReviews: 1, EngagementScore: 1, SentimentMean: 1, PositivePct: 1},
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "features.csv")
	require.NoError(t, Write(path, sampleVectors()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, columns, rows[0])
	assert.Equal(t, []string{
		"1", "2",
		"0.5", "-1", "1.5", "-0.5", "1",
		"1", "0", "3", "1", "2",
		"4.25", "4", "1.1",
		"0.5", "0.5", "0.5", "0",
	}, rows[1])
	assert.Equal(t, "9", rows[2][0])
	assert.Equal(t, "1", rows[2][1])
}

func TestWriteCSVEmpty(t *testing.T) {
	// no books still produces a file with the header row
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, Write(path, nil))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, columns, rows[0])
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "features.xlsx")
	require.NoError(t, Write(path, sampleVectors()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(featureSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, columns, rows[0])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "2", rows[1][1])
	assert.Equal(t, "0.5", rows[1][2])

	srows, err := f.GetRows(summarySheet)
	require.NoError(t, err)
	require.Len(t, srows, 17)
	assert.Equal(t, []string{"metric", "value"}, srows[0])
	assert.Equal(t, "books", srows[1][0])
	assert.Equal(t, "2", srows[1][1])
}

func TestSummarize(t *testing.T) {
	vectors := []types.BookFeatureVector{
		{AbandonmentScore: 0.2, EngagementScore: 1.0, ComplexityScore: 0.4, SentimentMean: 0.5},
		{AbandonmentScore: 0.0, EngagementScore: 0.0, ComplexityScore: 0.2, SentimentMean: -0.5},
	}
	s := Summarize(vectors)
	assert.Equal(t, 2, s.Books)
	assert.InDelta(t, 0.1, s.AbandonmentMean, 1e-9)
	assert.InDelta(t, 0.1, s.AbandonmentStd, 1e-9)
	assert.InDelta(t, 0.5, s.EngagementMean, 1e-9)
	assert.InDelta(t, 0.5, s.EngagementStd, 1e-9)
	assert.InDelta(t, 0.3, s.ComplexityMean, 1e-9)
	assert.InDelta(t, 0.0, s.SentimentMean, 1e-9)
	assert.InDelta(t, 0.5, s.SentimentStd, 1e-9)
	assert.Equal(t, 1, s.HighAbandonment)
	assert.Equal(t, 1, s.HighEngagement)
	assert.Equal(t, 1, s.HighComplexity)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.Books)
	assert.Zero(t, s.AbandonmentMean)
	assert.Zero(t, s.HighAbandonment)
}

func TestSummaryFieldsCoverEveryMetric(t *testing.T) {
	fields := Summarize(sampleVectors()).Fields()
	assert.Len(t, fields, 16)
	assert.Contains(t, fields, "books")
	assert.Contains(t, fields, "abandono_mean")
	assert.Contains(t, fields, "high_complexity_books")
}
